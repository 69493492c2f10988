package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Lifecycle
// precondition failures map to 409 so clients can distinguish a stale
// state from a malformed request.
func HandleAPIError(c *gin.Context, err error) {
	var reviewsPending *apperrors.ReviewsPendingError
	if errors.As(err, &reviewsPending) {
		detail := dto.NewErrorDetail(dto.ErrorCodeReviewsPending, reviewsPending.Error()).
			WithDetails(map[string]int{"pendingReviews": reviewsPending.Count})
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))
		return
	}

	switch {
	// Workflow preconditions
	case errors.Is(err, apperrors.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyAssigned, err.Error())))
	case errors.Is(err, apperrors.ErrEventNotPending):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEventNotPending, err.Error())))
	case errors.Is(err, apperrors.ErrEventFullyStaffed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEventFullyStaffed, err.Error())))
	case errors.Is(err, apperrors.ErrNotFullyStaffed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotFullyStaffed, err.Error())))
	case errors.Is(err, apperrors.ErrEventNotFinalized):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEventNotFinalized, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidState, err.Error())))
	case errors.Is(err, apperrors.ErrCapacityBelowRegistered):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidState, err.Error())))
	case errors.Is(err, apperrors.ErrVolunteerNotEligible):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotEligible, err.Error())))

	// Review input errors
	case errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidStatus, err.Error()).WithField("participationStatus")))
	case errors.Is(err, apperrors.ErrMissingRating):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingRating, err.Error()).WithField("rating")))

	// Not found
	case errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")))
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	// Validation and conflicts
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	// Retryable backing-service failures
	case errors.Is(err, apperrors.ErrCollaboratorUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCollaboratorUnavailable, "Service temporarily unavailable, please retry").
				WithSeverity(dto.ErrorSeverityWarning)))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
