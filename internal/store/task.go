package store

import (
	"context"

	"github.com/taskwell/tasks-api/internal/domain"
)

// CreateTaskParams carries the fields accepted when creating a task.
// Status and Priority are raw strings; implementations must reject values
// outside the enumerated sets and default empty strings to pending/medium.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
}

// UpdateTaskParams carries a partial update. Nil fields are left unchanged.
// Every present field is validated by the creation rules; if any present
// field is invalid the whole update fails and nothing is applied.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
}

// ListTasksParams selects a page of tasks. Status and Priority are raw
// equality filters (empty means no constraint, an unrecognized value simply
// matches nothing). The page is the window [Offset, Offset+Limit) over the
// filtered set.
type ListTasksParams struct {
	Status   string
	Priority string
	Limit    int
	Offset   int
}

// TaskStore defines the interface for task data access.
//
// All methods are safe for concurrent use. Implementations never retain
// callers' data or hand out aliases into their own state: every returned
// task is a copy. Methods accept a context to match the rest of the store
// layer but perform no blocking I/O, so they never observe cancellation.
type TaskStore interface {
	// Create validates the params, allocates the next id, and inserts a new
	// task. Ids are strictly increasing from 1 and never reused, even after
	// deletion. Returns ErrInvalidEntity (wrapping the specific domain
	// error) if the title is empty or an enum value is unrecognized.
	Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// Get retrieves a task by its id.
	// Returns ErrTaskNotFound if the task does not exist.
	Get(ctx context.Context, id uint64) (*domain.Task, error)

	// List returns the page of tasks selected by params, ordered by
	// ascending id. An offset beyond the filtered count yields an empty,
	// non-nil slice.
	List(ctx context.Context, params ListTasksParams) ([]*domain.Task, error)

	// Update applies a partial update to an existing task and refreshes
	// its UpdatedAt timestamp. An update with no fields set is a valid
	// no-op that still refreshes UpdatedAt.
	// Returns ErrTaskNotFound if the task does not exist and
	// ErrInvalidEntity if any present field is invalid; on validation
	// failure no field is changed.
	Update(ctx context.Context, id uint64, params UpdateTaskParams) (*domain.Task, error)

	// Delete removes a task by its id. The id counter is unaffected.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uint64) error

	// Stats computes aggregate counts over a single consistent snapshot.
	// Every enumerated status and priority key is present in the result
	// even when its count is zero.
	Stats(ctx context.Context) (*domain.TaskStats, error)
}
