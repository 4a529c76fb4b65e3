package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/zenith-todo/zenith-api/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("http_port", cfg.HTTP.Port).
		Dur("access_token_ttl", cfg.JWT.AccessTokenTTL).
		Dur("refresh_token_ttl", cfg.JWT.RefreshTokenTTL).
		Msg("read env")

	config.SetGlobal(cfg)
}
