package v1

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zenith-todo/zenith-api/internal/models"
	"github.com/zenith-todo/zenith-api/internal/services"
)

type fakeAuthService struct {
	registerFunc    func(ctx context.Context, params services.RegisterParams) (*models.User, error)
	loginFunc       func(ctx context.Context, params services.LoginParams) (*models.User, error)
	getUserByIDFunc func(ctx context.Context, userID int64) (*models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, params services.RegisterParams) (*models.User, error) {
	if f.registerFunc != nil {
		return f.registerFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeAuthService) Login(ctx context.Context, params services.LoginParams) (*models.User, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeAuthService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if f.getUserByIDFunc != nil {
		return f.getUserByIDFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

type fakeTaskService struct {
	listFunc   func(ctx context.Context, userID int64) ([]*models.Task, error)
	createFunc func(ctx context.Context, params services.CreateTaskParams) (*models.Task, error)
	updateFunc func(ctx context.Context, params services.UpdateTaskParams) (*models.Task, error)
	deleteFunc func(ctx context.Context, userID, taskID int64) error
}

func (f *fakeTaskService) ListTasks(ctx context.Context, userID int64) ([]*models.Task, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeTaskService) CreateTask(ctx context.Context, params services.CreateTaskParams) (*models.Task, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, params services.UpdateTaskParams) (*models.Task, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, params)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, userID, taskID)
	}
	return errors.New("not implemented")
}

// newTestTokenService returns a real token service so handler tests
// exercise genuine signing and verification.
func newTestTokenService(accessTTL, refreshTTL time.Duration) services.TokenService {
	return services.NewTokenService(
		zerolog.Nop(),
		"test-issuer",
		[]byte("test-signing-key"),
		accessTTL,
		refreshTTL,
	)
}

func newTestRouter(auth services.AuthService, tokens services.TokenService, tasks services.TaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(zerolog.Nop(), auth, tokens, tasks)

	router := gin.New()
	api := router.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/register", h.HandleRegister)
	authRouter.POST("/login", h.HandleLogin)
	authRouter.POST("/refresh", h.HandleRefresh)
	authRouter.GET("/me", h.HandleAuthMiddleware, h.HandleMe)

	taskRouter := api.Group("/tasks", h.HandleAuthMiddleware)
	taskRouter.GET("", h.HandleGetTasks)
	taskRouter.POST("", h.HandleCreateTask)
	taskRouter.PUT("/:id", h.HandleUpdateTask)
	taskRouter.DELETE("/:id", h.HandleDeleteTask)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func mustAccessToken(t *testing.T, tokens services.TokenService, userID int64) string {
	t.Helper()

	token, err := tokens.IssueAccessToken(userID)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	return token
}

var errBoom = errors.New("boom")
