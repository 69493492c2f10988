package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsPendingError(t *testing.T) {
	err := NewReviewsPendingError(3)

	var pending *ReviewsPendingError
	require.ErrorAs(t, err, &pending)
	assert.Equal(t, 3, pending.Count)
	assert.Equal(t, "3 volunteer review(s) still pending for this event", err.Error())
}

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("rating must be between 1 and 5")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "rating must be between 1 and 5", err.Error())

	err = NewConflictError("already taken")
	assert.ErrorIs(t, err, ErrConflict)

	// Sentinels survive an extra fmt wrap
	wrapped := fmt.Errorf("during update: %w", NewBadRequestError("bad input"))
	assert.ErrorIs(t, wrapped, ErrBadRequest)
}

func TestCollaboratorErrorCarriesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewCollaboratorError(cause)

	assert.ErrorIs(t, err, ErrCollaboratorUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCustomErrorWithDetails(t *testing.T) {
	custom := &CustomError{Err: ErrValidationFailed}
	custom.WithDetails(map[string]interface{}{"field": "zip"})

	assert.Equal(t, "zip", custom.Details["field"])
	assert.Equal(t, ErrValidationFailed.Error(), custom.Error(),
		"falls back to the sentinel message when no message is set")
}
