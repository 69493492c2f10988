package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, accessExp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "volunteerhub.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/me", authMiddleware.JWTAuth(), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": id, "admin": IsAdmin(c)})
	})
	router.GET("/admin", authMiddleware.JWTAuth(), authMiddleware.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	t.Run("accepts a valid token", func(t *testing.T) {
		token, _, _, _, err := jwtService.GenerateTokenPair(7, "vol@example.com", string(models.RoleVolunteer))
		require.NoError(t, err)

		recorder := doRequest(router, "/me", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userID":7`)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		recorder := doRequest(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		recorder := doRequest(router, "/me", "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejects an expired token with the expired code", func(t *testing.T) {
		expiredRouter, expiredJWT := newAuthTestRouter(t, -time.Minute)
		token, _, _, _, err := expiredJWT.GenerateTokenPair(7, "vol@example.com", string(models.RoleVolunteer))
		require.NoError(t, err)

		recorder := doRequest(expiredRouter, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "AUTH_003")
	})
}

func TestAdminRequired(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	t.Run("allows an admin", func(t *testing.T) {
		token, _, _, _, err := jwtService.GenerateTokenPair(1, "admin@example.com", string(models.RoleAdmin))
		require.NoError(t, err)

		recorder := doRequest(router, "/admin", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejects a volunteer", func(t *testing.T) {
		token, _, _, _, err := jwtService.GenerateTokenPair(7, "vol@example.com", string(models.RoleVolunteer))
		require.NoError(t, err)

		recorder := doRequest(router, "/admin", token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestIsAdminReflectsRole(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, _, _, _, err := jwtService.GenerateTokenPair(1, "admin@example.com", string(models.RoleAdmin))
	require.NoError(t, err)

	recorder := doRequest(router, "/me", token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"admin":true`)
}
