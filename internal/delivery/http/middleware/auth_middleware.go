// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "adminapi/internal/delivery/context"
	"adminapi/internal/delivery/http/response"
	"adminapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind a valid JWT access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the admin identity on the
// request context. Refresh tokens are rejected here; they are only good for
// the refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if claims.TokenType != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}

		deliverycontext.SetAdminID(c, claims.AdminID)
		deliverycontext.SetUsername(c, claims.Username)

		return next(c)
	}
}
