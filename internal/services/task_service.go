package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/zenith-todo/zenith-api/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, userID int64) ([]*models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       title,
       description,
       status,
       priority,
       due_date,
       tags,
       subtasks,
       created_at,
       updated_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to select tasks by user id")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{UserID: userID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.Tags,
			&task.Subtasks,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		normalizeTask(task)
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Int64("user_id", userID).
		Msg("selected tasks by user id")

	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	task := &models.Task{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		Tags:        params.Tags,
		Subtasks:    params.Subtasks,
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	normalizeTask(task)

	const insertTaskQuery = `
INSERT INTO tasks (user_id,
                   title,
                   description,
                   status,
                   priority,
                   due_date,
                   tags,
                   subtasks)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.Tags,
		task.Subtasks,
	).Scan(
		&task.ID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", task.UserID).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	task := &models.Task{
		ID:     params.TaskID,
		UserID: params.UserID,
	}

	// Read then write without a transaction. Concurrent updates to the
	// same task by the same owner may interleave, last write wins.
	const selectTaskQuery = `
SELECT title,
       description,
       status,
       priority,
       due_date,
       tags,
       subtasks,
       created_at
FROM tasks
WHERE id = $1 AND user_id = $2
`
	err := s.pgPool.QueryRow(
		ctx,
		selectTaskQuery,
		task.ID,
		task.UserID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.Tags,
		&task.Subtasks,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing and not-owned are deliberately the same error.
			s.logger.Error().
				Int64("task_id", task.ID).
				Int64("user_id", task.UserID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to select task")
		return nil, err
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	if params.DueDate != nil {
		task.DueDate = params.DueDate
	}
	if params.Tags != nil {
		task.Tags = *params.Tags
	}
	if params.Subtasks != nil {
		task.Subtasks = *params.Subtasks
	}
	normalizeTask(task)
	task.UpdatedAt = time.Now()

	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    status = $3,
    priority = $4,
    due_date = $5,
    tags = $6,
    subtasks = $7,
    updated_at = $8
WHERE id = $9 AND user_id = $10
`
	_, err = s.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.Tags,
		task.Subtasks,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("updated task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		taskID,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Error().
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("task not found")
		return ErrTaskNotFound
	}
	s.logger.Debug().
		Int64("task_id", taskID).
		Msg("deleted task")

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("user_id", userID).
		Msg("deleted task")
	return nil
}

// normalizeTask keeps tags and subtasks as empty lists instead of nil,
// so they round-trip to JSON as [] and never null.
func normalizeTask(task *models.Task) {
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
}
