package dto

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_004"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_005"
	ErrorCodeForbidden          ErrorCode = "AUTH_006"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_002"

	// Workflow errors - event/assignment lifecycle preconditions
	ErrorCodeAlreadyAssigned   ErrorCode = "WKF_001"
	ErrorCodeEventNotPending   ErrorCode = "WKF_002"
	ErrorCodeEventFullyStaffed ErrorCode = "WKF_003"
	ErrorCodeNotFullyStaffed   ErrorCode = "WKF_004"
	ErrorCodeInvalidState      ErrorCode = "WKF_005"
	ErrorCodeEventNotFinalized ErrorCode = "WKF_006"
	ErrorCodeInvalidStatus     ErrorCode = "WKF_007"
	ErrorCodeMissingRating     ErrorCode = "WKF_008"
	ErrorCodeReviewsPending    ErrorCode = "WKF_009"
	ErrorCodeNotEligible       ErrorCode = "WKF_010"

	// Server errors
	ErrorCodeInternalServer          ErrorCode = "SRV_001"
	ErrorCodeCollaboratorUnavailable ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityInfo     ErrorSeverity = "INFO"
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"WKF_001"`
	Message  string        `json:"message" example:"volunteer is already assigned to this event"`
	Field    string        `json:"field,omitempty" example:"rating"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-28T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// NewValidationError creates a field-level validation error detail
func NewValidationError(field, format string, args ...interface{}) *ErrorDetail {
	return &ErrorDetail{
		Code:     ErrorCodeValidationFailed,
		Message:  fmt.Sprintf(format, args...),
		Field:    field,
		Severity: ErrorSeverityError,
	}
}
