package services

import (
	"testing"

	"github.com/zenith-todo/zenith-api/internal/models"
)

func TestNormalizeTask(t *testing.T) {
	t.Run("nil collections become empty lists", func(t *testing.T) {
		task := &models.Task{}
		normalizeTask(task)

		if task.Tags == nil {
			t.Error("Tags = nil, want empty slice")
		}
		if len(task.Tags) != 0 {
			t.Errorf("len(Tags) = %d, want 0", len(task.Tags))
		}
		if task.Subtasks == nil {
			t.Error("Subtasks = nil, want empty slice")
		}
	})

	t.Run("existing collections keep their order", func(t *testing.T) {
		task := &models.Task{
			Tags: []string{"a", "b"},
			Subtasks: []models.Subtask{
				{Title: "first"},
				{Title: "second", Completed: true},
			},
		}
		normalizeTask(task)

		if task.Tags[0] != "a" || task.Tags[1] != "b" {
			t.Errorf("Tags = %v, want [a b]", task.Tags)
		}
		if task.Subtasks[0].Title != "first" || task.Subtasks[1].Title != "second" {
			t.Errorf("Subtasks out of order: %v", task.Subtasks)
		}
	})
}
