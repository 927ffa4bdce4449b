package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrTaskNotFoundWrapsErrNotFound(t *testing.T) {
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(errors.New("other")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidEntity))
	assert.True(t, IsValidationError(fmt.Errorf("%w: bad status", ErrInvalidEntity)))
	assert.False(t, IsValidationError(ErrTaskNotFound))
}
