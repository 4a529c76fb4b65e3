package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenith-todo/zenith-api/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleRefresh(c *gin.Context)
	HandleMe(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tokens services.TokenService
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	tokenService services.TokenService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tokens: tokenService,
		tasks:  taskService,
	}
}
