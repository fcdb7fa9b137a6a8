package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	typed := Clone(ErrNotFound, "registration not found")
	wrapped := fmt.Errorf("lookup: %w", typed)

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "registration not found", got.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	got := FromError(errors.New("disk full"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Empty(t, got.Detail())
}

func TestDetailOnlyForClientErrors(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	assert.Equal(t, cause.Error(), Integrity(cause, "integrity error").Detail())
	assert.Empty(t, Internal(cause, "failed").Detail())
	assert.Empty(t, Clone(ErrValidation, "name required").Detail())
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrValidation, "name required")
	assert.Equal(t, "name required", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Nil(t, Clone(nil, "x"))
}
