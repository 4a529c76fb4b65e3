package models

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "todo", want: true},
		{status: "in-progress", want: true},
		{status: "done", want: true},
		{status: "", want: false},
		{status: "in_progress", want: false},
		{status: "archived", want: false},
		{status: "TODO", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestValidPriority(t *testing.T) {
	tests := []struct {
		priority string
		want     bool
	}{
		{priority: "low", want: true},
		{priority: "medium", want: true},
		{priority: "high", want: true},
		{priority: "", want: false},
		{priority: "urgent", want: false},
		{priority: "High", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.priority, func(t *testing.T) {
			if got := ValidPriority(tt.priority); got != tt.want {
				t.Errorf("ValidPriority(%q) = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}
