package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code     string         `json:"code"`
		Message  string         `json:"message"`
		Field    string         `json:"field"`
		Severity string         `json:"severity"`
		Details  map[string]any `json:"details"`
	} `json:"error"`
}

func callHandleAPIError(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorWorkflowConflicts(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"already assigned", apperrors.ErrAlreadyAssigned, "WKF_001"},
		{"event not pending", apperrors.ErrEventNotPending, "WKF_002"},
		{"fully staffed", apperrors.ErrEventFullyStaffed, "WKF_003"},
		{"not fully staffed", apperrors.ErrNotFullyStaffed, "WKF_004"},
		{"invalid state", apperrors.ErrInvalidState, "WKF_005"},
		{"capacity below registered", apperrors.ErrCapacityBelowRegistered, "WKF_005"},
		{"not finalized", apperrors.ErrEventNotFinalized, "WKF_006"},
		{"not eligible", apperrors.ErrVolunteerNotEligible, "WKF_010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := callHandleAPIError(t, tt.err)
			assert.Equal(t, http.StatusConflict, status)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIErrorReviewsPending(t *testing.T) {
	status, body := callHandleAPIError(t, apperrors.NewReviewsPendingError(3))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "WKF_009", body.Error.Code)
	assert.Equal(t, float64(3), body.Error.Details["pendingReviews"])
}

func TestHandleAPIErrorReviewInput(t *testing.T) {
	status, body := callHandleAPIError(t, apperrors.ErrInvalidStatus)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "WKF_007", body.Error.Code)
	assert.Equal(t, "participationStatus", body.Error.Field)

	status, body = callHandleAPIError(t, apperrors.ErrMissingRating)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "WKF_008", body.Error.Code)
	assert.Equal(t, "rating", body.Error.Field)
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrEventNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrResourceNotFound,
	} {
		status, body := callHandleAPIError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "RES_001", body.Error.Code)
	}
}

func TestHandleAPIErrorAuth(t *testing.T) {
	status, body := callHandleAPIError(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body.Error.Code)

	status, body = callHandleAPIError(t, apperrors.ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", body.Error.Code)

	status, body = callHandleAPIError(t, apperrors.ErrPermissionDenied)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_006", body.Error.Code)
}

func TestHandleAPIErrorWrappedCustomError(t *testing.T) {
	status, body := callHandleAPIError(t, apperrors.NewValidationError("rating must be between 1 and 5"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", body.Error.Code)
	assert.Equal(t, "rating must be between 1 and 5", body.Error.Message)
}

func TestHandleAPIErrorCollaboratorUnavailable(t *testing.T) {
	status, body := callHandleAPIError(t, apperrors.NewCollaboratorError(errors.New("connection refused")))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "SRV_002", body.Error.Code)
	assert.Equal(t, "WARNING", body.Error.Severity)
}

func TestHandleAPIErrorUnknownFallsBackTo500(t *testing.T) {
	status, body := callHandleAPIError(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "SRV_001", body.Error.Code)
	assert.Equal(t, "Internal server error", body.Error.Message,
		"internal details must not leak to clients")
}
