package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Event workflow errors. Each names the precondition it protects; the
// workflow service returns these verbatim so the operator sees which rule
// was violated.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventNotPending      = errors.New("event is not in pending state")
	ErrEventNotFinalized    = errors.New("event is not finalized")
	ErrEventFullyStaffed    = errors.New("event is already fully staffed")
	ErrNotFullyStaffed      = errors.New("event is not fully staffed")
	ErrInvalidState         = errors.New("operation not allowed in current event state")
	ErrAlreadyAssigned      = errors.New("volunteer is already assigned to this event")
	ErrAssignmentNotFound   = errors.New("volunteer is not assigned to this event")
	ErrVolunteerNotEligible = errors.New("volunteer is not eligible for this event")

	// Review errors
	ErrInvalidStatus = errors.New("participation status must be 'Volunteered' or 'Did Not Show'")
	ErrMissingRating = errors.New("performance rating (1-5) is required for volunteers")

	// Capacity errors
	ErrCapacityBelowRegistered = errors.New("volunteers needed cannot be reduced below registered count")
)

// ErrCollaboratorUnavailable marks failures of the backing services
// (database, matching) as retryable; no partial state change is committed.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// ReviewsPendingError rejects a complete transition while assignments still
// await review, naming how many remain.
type ReviewsPendingError struct {
	Count int
}

func (e *ReviewsPendingError) Error() string {
	return fmt.Sprintf("%d volunteer review(s) still pending for this event", e.Count)
}

// NewReviewsPendingError creates a ReviewsPendingError for the given count
func NewReviewsPendingError(count int) error {
	return &ReviewsPendingError{Count: count}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewCollaboratorError wraps a backing-service failure so callers can retry
// the whole operation.
func NewCollaboratorError(cause error) error {
	return &CustomError{
		Err:     ErrCollaboratorUnavailable,
		Message: fmt.Sprintf("operation aborted: %v", cause),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
