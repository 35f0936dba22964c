package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorKind(t *testing.T) {
	err := NewValidationError("stars must be between %d and %d", 1, 5)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "stars must be between 1 and 5", err.Error())
	assert.False(t, IsStorage(err))
}

func TestStorageErrorWrapsBackendMessage(t *testing.T) {
	backend := errors.New("connection refused")
	err := NewStorageError("create posts", backend)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, backend)
	assert.Contains(t, err.Error(), "create posts")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("adding rating: %w", NewStorageError("patch posts", ErrNotFound))
	assert.True(t, IsStorage(wrapped))
	assert.ErrorIs(t, wrapped, ErrNotFound)
}
