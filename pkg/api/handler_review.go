package api

import (
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/pkg/models"
)

// maxReviewNoteLen bounds reviewer notes; anything longer belongs in an
// escalation ticket, not the queue.
const maxReviewNoteLen = 1000

// reviewQueueHandler handles GET /api/review/queue.
func (s *Server) reviewQueueHandler(c *echo.Context) error {
	filters := models.ReviewQueueFilters{
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assigned_to"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		filters.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "offset must be a non-negative integer")
		}
		filters.Offset = n
	}

	queue, err := s.reviewService.Queue(c.Request().Context(), filters)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, queue)
}

// reviewStatsHandler handles GET /api/review/stats.
func (s *Server) reviewStatsHandler(c *echo.Context) error {
	stats, err := s.reviewService.Stats(c.Request().Context(), callerIdentity(c).UserID)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, stats)
}

// getReviewHandler handles GET /api/review/:id.
func (s *Server) getReviewHandler(c *echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "review id is required")
	}

	entry, err := s.reviewService.GetEntry(c.Request().Context(), reviewID)
	if err != nil {
		return s.mapServiceError(c.Request().Context(), err)
	}
	return c.JSON(http.StatusOK, reviewDetailFromRow(entry))
}

// assignReviewHandler handles POST /api/review/:id/assign. The caller claims
// the entry for themselves; the first writer wins.
func (s *Server) assignReviewHandler(c *echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "review id is required")
	}
	caller := callerIdentity(c)
	ctx := c.Request().Context()

	// The assignment column references users, so the gateway identity must
	// exist as a row before the claim.
	if _, err := s.userService.Ensure(ctx, caller.UserID, caller.UserID, caller.Role); err != nil {
		return s.mapServiceError(ctx, err)
	}

	entry, err := s.reviewService.Assign(ctx, reviewID, caller.UserID)
	if err != nil {
		return s.mapServiceError(ctx, err)
	}

	resp := &ReviewActionResponse{
		Message:  "Review item assigned",
		ReviewID: entry.ID,
		Status:   string(entry.Status),
	}
	if entry.AssignedTo != nil {
		resp.AssignedTo = *entry.AssignedTo
	}
	return c.JSON(http.StatusOK, resp)
}

// reviewActionHandler handles POST /api/review/:id/action.
func (s *Server) reviewActionHandler(c *echo.Context) error {
	reviewID := c.Param("id")
	if reviewID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "review id is required")
	}

	var req ReviewActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Note) > maxReviewNoteLen {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("note must be at most %d characters", maxReviewNoteLen))
	}
	caller := callerIdentity(c)
	ctx := c.Request().Context()

	if _, err := s.userService.Ensure(ctx, caller.UserID, caller.UserID, caller.Role); err != nil {
		return s.mapServiceError(ctx, err)
	}

	entry, err := s.reviewService.Act(ctx, reviewID, caller.UserID, models.ReviewAction(req.Action), req.Note)
	if err != nil {
		return s.mapServiceError(ctx, err)
	}

	resp := &ReviewActionResponse{
		Message:  fmt.Sprintf("Review action %q recorded", req.Action),
		ReviewID: entry.ID,
		Status:   string(entry.Status),
	}
	if entry.AssignedTo != nil {
		resp.AssignedTo = *entry.AssignedTo
	}
	return c.JSON(http.StatusOK, resp)
}

// reviewDetailFromRow flattens an entry and its loaded document into the
// detail response.
func reviewDetailFromRow(entry *ent.ReviewEntry) *ReviewDetailResponse {
	detail := &ReviewDetailResponse{
		ID:        entry.ID,
		DocID:     entry.DocID,
		Status:    string(entry.Status),
		Priority:  entry.Priority,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	if entry.Note != nil {
		detail.Note = *entry.Note
	}
	if entry.AssignedTo != nil {
		detail.AssignedTo = *entry.AssignedTo
	}

	doc := entry.Edges.Doc
	if doc == nil {
		return detail
	}
	detail.Doc = ReviewDocDetail{
		ReviewDocSummary: models.ReviewDocSummary{
			URL:             doc.URL,
			Domain:          doc.Domain,
			CleanText:       doc.CleanText,
			Language:        string(doc.Language),
			LangConfidence:  doc.LangConfidence,
			HeuristicScore:  doc.HeuristicScore,
			ClassifierScore: doc.ClassifierScore,
			Label:           string(doc.Label),
		},
		Translit:    doc.Translit,
		ImageHashes: doc.ImageHashes,
		WhoisData:   doc.WhoisData,
		Metadata:    doc.Metadata,
		IngestedAt:  doc.IngestedAt,
	}
	if doc.RawHTMLPath != nil {
		detail.Doc.RawHTMLPath = *doc.RawHTMLPath
	}
	if doc.ScreenshotPath != nil {
		detail.Doc.ScreenshotPath = *doc.ScreenshotPath
	}
	return detail
}
