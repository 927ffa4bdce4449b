package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskwell/tasks-api/internal/domain"
	"github.com/taskwell/tasks-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidStatus), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"empty title", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTitleEmpty), "Title cannot be empty"},
		{"invalid status", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidStatus), "Invalid task status"},
		{"invalid priority", fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidPriority), "Invalid task priority"},
		{"bare invalid entity", store.ErrInvalidEntity, "Invalid task data"},
		{"unknown", errors.New("secret detail"), "An unexpected error occurred"},
		{"nil", nil, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.err != nil {
				assert.NotContains(t, got, "secret")
			}
		})
	}
}
