package main

import "github.com/zenith-todo/zenith-api/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()
	app.MustMigratePostgres()

	app.MustListenAndServeHTTP()
}
