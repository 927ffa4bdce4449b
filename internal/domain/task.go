package domain

import (
	"fmt"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ParseTaskStatus converts a string into a TaskStatus.
// Unlike list filtering, which passes raw values through, mutation paths
// must reject anything outside the enumerated set.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, s)
}

// ParseTaskPriority converts a string into a TaskPriority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return TaskPriority(s), nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidPriority, s)
}

// Task represents one unit of work tracked by the service.
// The id is assigned by the store and never reused; timestamps are UTC.
type Task struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTitleEmpty
	}

	if _, err := ParseTaskStatus(string(t.Status)); err != nil {
		return err
	}

	if _, err := ParseTaskPriority(string(t.Priority)); err != nil {
		return err
	}

	return nil
}

// StatusCounts breaks down task totals by status. A struct rather than a
// map so that every enumerated key serializes even when its count is zero.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// PriorityCounts breaks down task totals by priority.
type PriorityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// TaskStats is an aggregate snapshot of the store, computed under a single
// lock acquisition so the breakdowns always sum to Total.
type TaskStats struct {
	Total      int            `json:"total"`
	ByStatus   StatusCounts   `json:"by_status"`
	ByPriority PriorityCounts `json:"by_priority"`
}
