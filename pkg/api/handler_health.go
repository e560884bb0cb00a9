package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/pkg/database"
	"github.com/factforge/factforge/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the database flips the overall
// status to unhealthy: the pipeline degrades through its fallbacks when the
// broker, index, or a model provider is down, so those report degraded
// without telling the orchestrator to restart the process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy
	degrade := func() {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.fabric != nil {
		if s.fabric.Healthy() {
			checks["broker"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			degrade()
			checks["broker"] = HealthCheck{Status: healthStatusDegraded, Message: "connection is closed"}
		}
	}

	if s.store != nil {
		if err := s.store.Flush(reqCtx); err != nil {
			degrade()
			checks["vector_index"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["vector_index"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	anyAvailable := false
	for _, p := range s.selector.Status(reqCtx) {
		if p.Available {
			anyAvailable = true
			break
		}
	}
	if anyAvailable {
		checks["llm"] = HealthCheck{Status: healthStatusHealthy}
	} else {
		// Verdicts still come back UNVERIFIED through the deterministic
		// fallback, so this is a degradation, not an outage.
		degrade()
		checks["llm"] = HealthCheck{Status: healthStatusDegraded, Message: "no provider is available"}
	}

	if n := s.auditService.Failures(); n > 0 {
		degrade()
		checks["audit"] = HealthCheck{Status: healthStatusDegraded,
			Message: "some audit appends have failed since startup"}
	} else {
		checks["audit"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
