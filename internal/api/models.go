package api

import (
	"time"

	"github.com/taskwell/tasks-api/internal/domain"
)

// timestampLayout is the wire format for task timestamps: whole-second UTC.
const timestampLayout = "2006-01-02T15:04:05Z"

// CreateTaskRequest defines the payload for the task creation endpoint.
// Status and priority default to pending/medium when omitted, but an
// unrecognized value rejects the request as a whole.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"`
}

// UpdateTaskRequest defines the payload for the task update endpoint. Every
// field is optional; a present field is validated by the creation rules. An
// empty object is a valid no-op update that still refreshes updated_at.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// TaskResponse represents the response data for a task. DueDate serializes
// as null when unset.
type TaskResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// DeleteTaskResponse confirms a successful deletion.
type DeleteTaskResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	var dueDate *string
	if task.DueDate != "" {
		d := task.DueDate
		dueDate = &d
	}

	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     dueDate,
		CreatedAt:   formatTimestamp(task.CreatedAt),
		UpdatedAt:   formatTimestamp(task.UpdatedAt),
	}
}

// tasksToResponse converts a slice of tasks, always producing a non-nil
// slice so collections serialize as [] rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
