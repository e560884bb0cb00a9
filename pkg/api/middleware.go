package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/pkg/models"
)

// identity is the caller identity asserted by the fronting gateway.
// Authentication happens upstream; these headers arrive pre-verified.
type identity struct {
	UserID string
	Role   models.Role
}

// callerIdentity extracts the gateway identity headers. Both fields are
// empty for anonymous callers.
func callerIdentity(c *echo.Context) identity {
	return identity{
		UserID: c.Request().Header.Get("X-User-ID"),
		Role:   models.Role(c.Request().Header.Get("X-User-Role")),
	}
}

// requireRole returns middleware that rejects anonymous callers with 401
// and callers outside the allowed roles with 403.
func requireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			caller := callerIdentity(c)
			if caller.UserID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, role := range roles {
				if caller.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}
