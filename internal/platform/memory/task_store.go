// Package memory provides an in-memory implementation of the store
// interfaces. All state lives in process and is lost on restart.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taskwell/tasks-api/internal/domain"
	"github.com/taskwell/tasks-api/internal/store"
)

// TaskStore is an in-memory store.TaskStore backed by a map guarded by a
// single mutex. The mutex covers both the task map and the id counter, so
// concurrent creates always observe strictly ordered ids. No method blocks
// on anything other than the mutex itself.
type TaskStore struct {
	mu     sync.Mutex
	tasks  map[uint64]*domain.Task
	nextID uint64

	logger *slog.Logger
}

// Statically verify the interface is satisfied.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty task store. The first allocated id is 1.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[uint64]*domain.Task),
		nextID: 1,
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, params store.CreateTaskParams) (*domain.Task, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTitleEmpty)
	}

	status := domain.TaskStatusPending
	if params.Status != "" {
		parsed, err := domain.ParseTaskStatus(params.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		status = parsed
	}

	priority := domain.TaskPriorityMedium
	if params.Priority != "" {
		parsed, err := domain.ParseTaskPriority(params.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		priority = parsed
	}

	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &domain.Task{
		ID:          s.nextID,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     params.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.tasks[task.ID] = task

	s.logger.Debug("task created",
		slog.Uint64("task_id", task.ID),
		slog.String("status", string(task.Status)),
		slog.String("priority", string(task.Priority)))

	return copyTask(task), nil
}

// Get implements store.TaskStore.Get.
func (s *TaskStore) Get(ctx context.Context, id uint64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	return copyTask(task), nil
}

// List implements store.TaskStore.List. Results are ordered by ascending id,
// which is deterministic across calls regardless of map iteration order.
func (s *TaskStore) List(ctx context.Context, params store.ListTasksParams) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if params.Status != "" && string(task.Status) != params.Status {
			continue
		}
		if params.Priority != "" && string(task.Priority) != params.Priority {
			continue
		}
		filtered = append(filtered, task)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	if params.Offset >= len(filtered) {
		return []*domain.Task{}, nil
	}

	end := params.Offset + params.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]*domain.Task, 0, end-params.Offset)
	for _, task := range filtered[params.Offset:end] {
		page = append(page, copyTask(task))
	}

	return page, nil
}

// Update implements store.TaskStore.Update. All present fields are validated
// before any of them is applied, so a rejected update leaves the task
// untouched, including its UpdatedAt timestamp.
func (s *TaskStore) Update(ctx context.Context, id uint64, params store.UpdateTaskParams) (*domain.Task, error) {
	var (
		status   domain.TaskStatus
		priority domain.TaskPriority
	)

	if params.Title != nil && *params.Title == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTitleEmpty)
	}
	if params.Status != nil {
		parsed, err := domain.ParseTaskStatus(*params.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		status = parsed
	}
	if params.Priority != nil {
		parsed, err := domain.ParseTaskPriority(*params.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		priority = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = status
	}
	if params.Priority != nil {
		task.Priority = priority
	}
	if params.DueDate != nil {
		task.DueDate = *params.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	s.logger.Debug("task updated", slog.Uint64("task_id", task.ID))

	return copyTask(task), nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)

	s.logger.Debug("task deleted", slog.Uint64("task_id", id))

	return nil
}

// Stats implements store.TaskStore.Stats.
func (s *TaskStore) Stats(ctx context.Context) (*domain.TaskStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.TaskStats{Total: len(s.tasks)}

	for _, task := range s.tasks {
		switch task.Status {
		case domain.TaskStatusPending:
			stats.ByStatus.Pending++
		case domain.TaskStatusInProgress:
			stats.ByStatus.InProgress++
		case domain.TaskStatusCompleted:
			stats.ByStatus.Completed++
		}

		switch task.Priority {
		case domain.TaskPriorityLow:
			stats.ByPriority.Low++
		case domain.TaskPriorityMedium:
			stats.ByPriority.Medium++
		case domain.TaskPriorityHigh:
			stats.ByPriority.High++
		}
	}

	return stats, nil
}

// copyTask returns a snapshot the caller may hold outside the lock.
func copyTask(t *domain.Task) *domain.Task {
	c := *t
	return &c
}
