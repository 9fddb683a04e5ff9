package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cannadex/config"
	"cannadex/internal/domain/service"
	"cannadex/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "middleware-access-secret"
	cfg.SecretKey.Refresh = "middleware-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedHandler := false
	mw := NewAuthMiddleware(tokenSvc)
	err := mw.Authenticate(func(c echo.Context) error {
		reachedHandler = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, reachedHandler
}

func TestAuthenticate(t *testing.T) {
	tokenSvc := newTestTokenService(t)

	t.Run("accepts a valid access token", func(t *testing.T) {
		userID := uuid.New()
		accessToken, _, err := tokenSvc.GenerateTokens(userID)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := NewAuthMiddleware(tokenSvc)
		err = mw.Authenticate(func(c echo.Context) error {
			// The middleware must expose the authenticated user ID.
			gotID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
			require.True(t, ok)
			assert.Equal(t, userID, gotID)

			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a refresh token", func(t *testing.T) {
		_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New())
		require.NoError(t, err)

		rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer "+refreshToken)
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec, reached := invokeAuthenticate(t, tokenSvc, "")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		rec, reached := invokeAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer not.a.jwt")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		otherCfg := &config.Config{}
		otherCfg.SecretKey.Access = "other-access-secret"
		otherCfg.SecretKey.Refresh = "other-refresh-secret"
		otherSvc, err := auth.NewJWTService(otherCfg)
		require.NoError(t, err)

		accessToken, _, err := otherSvc.GenerateTokens(uuid.New())
		require.NoError(t, err)

		rec, reached := invokeAuthenticate(t, tokenSvc, "Bearer "+accessToken)
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
