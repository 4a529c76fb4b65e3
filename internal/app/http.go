package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/zenith-todo/zenith-api/internal/config"
	v1 "github.com/zenith-todo/zenith-api/internal/delivery/http/v1"
	"github.com/zenith-todo/zenith-api/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT

	authService := services.NewAuthService(globalLogger, globalPostgresPool)
	tokenService := services.NewTokenService(
		globalLogger,
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
		jwtCfg.AccessTokenTTL,
		jwtCfg.RefreshTokenTTL,
	)
	taskService := services.NewTaskService(globalLogger, globalPostgresPool)

	v1Handler := v1.New(globalLogger, authService, tokenService, taskService)

	api := router.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/register", v1Handler.HandleRegister)
	authRouter.POST("/login", v1Handler.HandleLogin)
	authRouter.POST("/refresh", v1Handler.HandleRefresh)
	authRouter.GET("/me", v1Handler.HandleAuthMiddleware, v1Handler.HandleMe)

	taskRouter := api.Group("/tasks", v1Handler.HandleAuthMiddleware)
	taskRouter.GET("", v1Handler.HandleGetTasks)
	taskRouter.POST("", v1Handler.HandleCreateTask)
	taskRouter.PUT("/:id", v1Handler.HandleUpdateTask)
	taskRouter.DELETE("/:id", v1Handler.HandleDeleteTask)
}
