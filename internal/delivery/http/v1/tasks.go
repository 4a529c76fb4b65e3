package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zenith-todo/zenith-api/internal/models"
	"github.com/zenith-todo/zenith-api/internal/services"
)

type taskResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	DueDate     *string          `json:"due_date"`
	Tags        []string         `json:"tags"`
	Subtasks    []models.Subtask `json:"subtasks"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Tags:        task.Tags,
		Subtasks:    task.Subtasks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	tasks, err := h.tasks.ListTasks(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newInternalError(err))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": response})
}

// Clients send the original camelCase dueDate key; responses use the
// snake_case due_date shape.
type createTaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	DueDate     *string          `json:"dueDate"`
	Tags        []string         `json:"tags"`
	Subtasks    []models.Subtask `json:"subtasks"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		abort(c, newBadRequestError(errTitleRequired.Error()))
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		abort(c, newBadRequestError(errInvalidStatus.Error()))
		return
	}
	if req.Priority != "" && !models.ValidPriority(req.Priority) {
		abort(c, newBadRequestError(errInvalidPriority.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		UserID:      userID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Subtasks:    req.Subtasks,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newInternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "task created successfully",
		"task":    newTaskResponse(task),
	})
}

type updateTaskRequest struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Status      *string           `json:"status,omitempty"`
	Priority    *string           `json:"priority,omitempty"`
	DueDate     *string           `json:"dueDate,omitempty"`
	Tags        *[]string         `json:"tags,omitempty"`
	Subtasks    *[]models.Subtask `json:"subtasks,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	taskID, ok := taskIDFromPath(c)
	if !ok {
		h.logger.Error().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			abort(c, newBadRequestError(errTitleRequired.Error()))
			return
		}
		req.Title = &title
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		abort(c, newBadRequestError(errInvalidStatus.Error()))
		return
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		abort(c, newBadRequestError(errInvalidPriority.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		UserID:      userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Subtasks:    req.Subtasks,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "task updated successfully",
		"task":    newTaskResponse(task),
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errAuthTokenRequired.Error()))
		return
	}

	taskID, ok := taskIDFromPath(c)
	if !ok {
		h.logger.Error().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		return
	}

	err := h.tasks.DeleteTask(c, userID, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func taskIDFromPath(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return taskID, true
}
