package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
)

// Audit retention bounds for the cleanup endpoint. Anything shorter than a
// month defeats the trail's purpose; anything past ten years is a typo.
const (
	minRetentionDays     = 30
	maxRetentionDays     = 3650
	defaultRetentionDays = 365
)

// listModelsHandler handles GET /api/admin/models.
func (s *Server) listModelsHandler(c *echo.Context) error {
	rows, err := s.modelService.List(c.Request().Context())
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, rows)
}

// activateModelHandler handles POST /api/admin/models: records a new model
// bundle and makes it the active one.
func (s *Server) activateModelHandler(c *echo.Context) error {
	var req models.ActivateModelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ctx := c.Request().Context()

	created, err := s.modelService.Activate(ctx, req)
	if err != nil {
		return s.mapServiceError(ctx, err)
	}

	caller := callerIdentity(c)
	s.auditService.BestEffort(ctx, audit.EventModelActivated, map[string]any{
		"model_id":           created.ID,
		"classifier_version": created.ClassifierVersion,
		"embedding_model":    created.EmbeddingModel,
		"llm_version":        created.LlmVersion,
		"activated_by":       caller.UserID,
	})
	s.publish(ctx, events.EventModelActivated, map[string]any{
		"model_id":           created.ID,
		"classifier_version": created.ClassifierVersion,
	}, events.TargetAll)

	return c.JSON(http.StatusCreated, &ModelActivatedResponse{
		Message:           "Model bundle activated",
		ModelID:           created.ID,
		ClassifierVersion: created.ClassifierVersion,
	})
}

// listAuditHandler handles GET /api/admin/audit.
func (s *Server) listAuditHandler(c *echo.Context) error {
	var limit, offset int
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "offset must be a non-negative integer")
		}
		offset = n
	}

	rows, err := s.auditService.List(c.Request().Context(), c.QueryParam("event_type"), limit, offset)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, rows)
}

// verifyAuditHandler handles GET /api/admin/audit/verify.
func (s *Server) verifyAuditHandler(c *echo.Context) error {
	auditID := c.QueryParam("audit_id")
	if auditID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "audit_id is required")
	}

	valid, err := s.auditService.Verify(c.Request().Context(), auditID)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, &AuditVerifyResponse{AuditID: auditID, Valid: valid})
}

// auditCleanupHandler handles POST /api/admin/audit/cleanup: purges audit
// records older than the given retention window. The purge itself is
// audited.
func (s *Server) auditCleanupHandler(c *echo.Context) error {
	days := defaultRetentionDays
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < minRetentionDays || n > maxRetentionDays {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("days must be between %d and %d", minRetentionDays, maxRetentionDays))
		}
		days = n
	}
	ctx := c.Request().Context()

	deleted, err := s.auditService.Purge(ctx, days)
	if err != nil {
		return s.mapServiceError(ctx, err)
	}

	s.auditService.BestEffort(ctx, audit.EventAuditCleanup, map[string]any{
		"deleted_count":  deleted,
		"retention_days": days,
		"cleaned_by":     callerIdentity(c).UserID,
	})

	return c.JSON(http.StatusOK, &AuditCleanupResponse{
		Message: fmt.Sprintf("Deleted audit records older than %d days", days),
		Deleted: deleted,
	})
}

// llmStatusHandler handles GET /api/admin/llm/status.
func (s *Server) llmStatusHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &LLMStatusResponse{
		Active:    s.selector.ActiveName(),
		Providers: s.selector.Status(c.Request().Context()),
	})
}

// llmSwitchHandler handles POST /api/admin/llm/switch. The selector notifies
// its switch listener, which owns the audit record and bus event, so the
// handler does not append its own.
func (s *Server) llmSwitchHandler(c *echo.Context) error {
	var req LLMSwitchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Provider == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider is required")
	}

	if err := s.selector.Switch(req.Provider); err != nil {
		if errors.Is(err, llm.ErrUnknownProvider) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return s.mapServiceError(c.Request().Context(), err)
	}

	return c.JSON(http.StatusOK, &LLMSwitchResponse{
		Message: fmt.Sprintf("Active provider is now %s", req.Provider),
		Active:  s.selector.ActiveName(),
	})
}

// crawlerStatusHandler handles GET /api/admin/crawler/status.
func (s *Server) crawlerStatusHandler(c *echo.Context) error {
	if s.crawlerService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "crawler control is not available")
	}

	status, err := s.crawlerService.Status(c.Request().Context())
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, status)
}

// crawlerTriggerHandler handles POST /api/admin/crawler/trigger: raises the
// on-demand crawl flag for the fleet.
func (s *Server) crawlerTriggerHandler(c *echo.Context) error {
	if s.crawlerService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "crawler control is not available")
	}
	ctx := c.Request().Context()

	if err := s.crawlerService.Trigger(ctx); err != nil {
		return s.mapServiceError(ctx, err)
	}

	caller := callerIdentity(c)
	s.auditService.BestEffort(ctx, audit.EventCrawlerTriggered, map[string]any{
		"triggered_by": caller.UserID,
	})
	s.publish(ctx, events.EventCrawlerTriggered, map[string]any{
		"triggered_by": caller.UserID,
	}, events.TargetAll)

	return c.JSON(http.StatusOK, &MessageResponse{Message: "Crawl triggered"})
}
