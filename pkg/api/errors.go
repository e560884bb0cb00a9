package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Database constraint violations additionally leave an audit record, since
// they mean pipeline state and schema disagree.
func (s *Server) mapServiceError(ctx context.Context, err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, audit.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrDependencyUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "a required dependency is unavailable")
	}
	if ent.IsConstraintError(err) {
		slog.Error("Constraint violation reached the API", "error", err)
		if s.auditService != nil {
			s.auditService.BestEffort(ctx, audit.EventError, map[string]any{
				"kind":  "constraint_violation",
				"error": err.Error(),
			})
		}
		s.publish(ctx, events.EventAdminAlert, map[string]any{
			"kind":  "constraint_violation",
			"error": err.Error(),
		}, events.RoleTarget(events.RoleAdmin))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
