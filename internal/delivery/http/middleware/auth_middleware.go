package middleware

import (
	"strings"

	"cannadex/internal/delivery/http/response"
	"cannadex/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where the authenticated user's ID lands on echo.Context.
const ContextKeyUserID = "userID"

// AuthMiddleware validates JWT access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the user ID on
// the request context. Every failure mode returns the same 401 so the
// response doesn't leak why the token was rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		// Refresh tokens must not grant API access.
		if claims.Type != service.TokenTypeAccess {
			return unauthorized(c)
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or missing access token")
}
