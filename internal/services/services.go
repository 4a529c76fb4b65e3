package services

import (
	"context"
	"errors"

	"github.com/zenith-todo/zenith-api/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)

type AuthService interface {
	// Register persists a user with a one-way salted hash of the
	// password. The plaintext is never stored.
	//
	// It returns ErrUserAlreadyExists if the username or email is
	// already taken. Uniqueness is enforced by the storage layer,
	// so concurrent registrations cannot race past the check.
	Register(ctx context.Context, params RegisterParams) (*models.User, error)

	// Login authenticates the user by username and password.
	//
	// It returns ErrInvalidCredentials both when the user doesn't
	// exist and when the password doesn't match, so callers cannot
	// probe for registered usernames.
	Login(ctx context.Context, params LoginParams) (*models.User, error)

	// GetUserByID returns ErrUserNotFound if the user doesn't exist.
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// TokenService mints and verifies stateless signed tokens. There is
// no server-side session state: any holder of a structurally valid,
// unexpired, correctly signed token is treated as authenticated, and
// expiry is the only form of invalidation.
type TokenService interface {
	IssueAccessToken(userID int64) (string, error)
	IssueRefreshToken(userID int64) (string, error)

	// VerifyAccessToken returns the subject user ID, ErrTokenExpired
	// if the token is past its expiry, or ErrTokenInvalid if the
	// signature, structure or type claim is wrong.
	VerifyAccessToken(token string) (int64, error)

	// VerifyRefreshToken behaves like VerifyAccessToken but requires
	// the refresh type claim, so an access token cannot be replayed
	// against the refresh endpoint.
	VerifyRefreshToken(token string) (int64, error)
}

// TaskService performs task CRUD scoped to an owning user. Every
// operation filters by the owner, so a task that exists but belongs
// to someone else is indistinguishable from a missing one.
type TaskService interface {
	// ListTasks returns the user's tasks ordered by creation time,
	// newest first. The result is never nil.
	ListTasks(ctx context.Context, userID int64) ([]*models.Task, error)

	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask merges the set fields into the stored task. Nil
	// fields retain their previous value. UpdatedAt is refreshed on
	// every successful call, even when no field changes.
	//
	// It returns ErrTaskNotFound if no task with the given ID is
	// owned by the user.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask hard-deletes the task. Deleting twice returns
	// ErrTaskNotFound the second time.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type LoginParams struct {
	Username string
	Password string
}

type CreateTaskParams struct {
	UserID      int64
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *string
	Tags        []string
	Subtasks    []models.Subtask
}

type UpdateTaskParams struct {
	UserID      int64
	TaskID      int64
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
	Tags        *[]string
	Subtasks    *[]models.Subtask
}
