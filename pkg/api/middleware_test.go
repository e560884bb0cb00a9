package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/factforge/factforge/pkg/models"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	guarded := e.Group("/guarded", requireRole(models.RoleReviewer, models.RoleAdmin))
	guarded.GET("/resource", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		userID   string
		role     string
		wantCode int
	}{
		{name: "anonymous caller", wantCode: http.StatusUnauthorized},
		{name: "role header without identity", role: "admin", wantCode: http.StatusUnauthorized},
		{name: "plain user", userID: "u1", role: "user", wantCode: http.StatusForbidden},
		{name: "unknown role", userID: "u1", role: "superuser", wantCode: http.StatusForbidden},
		{name: "reviewer", userID: "r1", role: "reviewer", wantCode: http.StatusOK},
		{name: "admin", userID: "a1", role: "admin", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded/resource", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCallerIdentity(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "u42")
	req.Header.Set("X-User-Role", "reviewer")
	c := e.NewContext(req, httptest.NewRecorder())

	caller := callerIdentity(c)
	assert.Equal(t, "u42", caller.UserID)
	assert.Equal(t, models.RoleReviewer, caller.Role)

	anon := callerIdentity(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	assert.Empty(t, anon.UserID)
	assert.Empty(t, string(anon.Role))
}
