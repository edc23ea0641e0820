// Package middleware contains reusable HTTP middleware for protected routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-api/internal/utils"
)

// contextUserKey is the echo context key under which the authenticated user
// id is stored.
const contextUserKey = "user_id"

// TokenAuth returns an Echo middleware that validates the access token
// carried in the Authorization header and injects the caller's user id into
// the request context. The header value is the raw token; a "Bearer "
// prefix is tolerated and stripped. The provided secret must match the one
// used when issuing tokens.
func TokenAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get("Authorization"))
			raw = strings.TrimPrefix(raw, "Bearer ")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
			}
			uid, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(contextUserKey, uid)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id stored by TokenAuth. It returns
// an empty string when the request did not pass through the middleware.
func UserID(c echo.Context) string {
	if v, ok := c.Get(contextUserKey).(string); ok {
		return v
	}
	return ""
}
