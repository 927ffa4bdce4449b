package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrTitleEmpty is returned when a task title is empty or absent.
	ErrTitleEmpty = errors.New("task title cannot be empty")

	// ErrInvalidStatus is returned when a status value is not one of
	// pending, in_progress, or completed.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority is returned when a priority value is not one of
	// low, medium, or high.
	ErrInvalidPriority = errors.New("invalid task priority")
)
