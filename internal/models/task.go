package models

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidStatus reports whether s is one of the closed set of task statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// ValidPriority reports whether p is one of the closed set of task priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Subtask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *string
	Tags        []string
	Subtasks    []Subtask
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
