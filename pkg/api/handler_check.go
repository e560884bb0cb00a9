package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/pkg/models"
)

// checkHandler handles POST /api/check: one synchronous fact-check. The
// endpoint is open; an authenticated caller gets the completion event
// delivered to their own WebSocket target.
func (s *Server) checkHandler(c *echo.Context) error {
	var req models.CheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = callerIdentity(c).UserID
	}

	result, err := s.checkService.Check(c.Request().Context(), req)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, result)
}
