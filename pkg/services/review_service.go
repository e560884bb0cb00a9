package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
)

// ReviewService runs the human review state machine:
//
//	pending → in_review → {approved, rejected, escalated}
//	pending → escalated
//
// Transitions out of pending and in_review use conditional updates so two
// reviewers racing on one entry resolve to exactly one winner; the loser
// gets ErrConflict. Approving feeds the document back into the vector
// index, which is how human judgment teaches retrieval.
type ReviewService struct {
	client  *ent.Client
	indexer *Indexer
	audit   *audit.Service
	bus     events.Publisher
	logger  *slog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *ent.Client, indexer *Indexer, auditSvc *audit.Service, bus events.Publisher, logger *slog.Logger) *ReviewService {
	if client == nil {
		panic("ReviewService requires a non-nil ent client")
	}
	if indexer == nil {
		panic("ReviewService requires a non-nil indexer")
	}
	if auditSvc == nil {
		panic("ReviewService requires a non-nil audit service")
	}
	if bus == nil {
		panic("ReviewService requires a non-nil event publisher")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		client:  client,
		indexer: indexer,
		audit:   auditSvc,
		bus:     bus,
		logger:  logger,
	}
}

// Queue lists review entries with their document summaries, ordered by
// priority desc then created_at asc, so escalations surface first and ties
// break oldest-first.
func (s *ReviewService) Queue(ctx context.Context, filters models.ReviewQueueFilters) (*models.ReviewQueueResponse, error) {
	query := s.client.ReviewEntry.Query()

	if filters.Status != "" {
		status := reviewentry.Status(filters.Status)
		if err := reviewentry.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(reviewentry.StatusEQ(status))
	}
	if filters.AssignedTo != "" {
		query = query.Where(reviewentry.AssignedToEQ(filters.AssignedTo))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := query.
		WithDoc().
		Order(ent.Desc(reviewentry.FieldPriority), ent.Asc(reviewentry.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}

	totalPending, err := s.client.ReviewEntry.Query().
		Where(reviewentry.StatusEQ(reviewentry.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending entries: %w", err)
	}

	items := make([]models.ReviewQueueEntry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, queueEntryFromRow(entry))
	}

	return &models.ReviewQueueResponse{
		Items:        items,
		TotalPending: totalPending,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// GetEntry retrieves one review entry with its document loaded.
func (s *ReviewService) GetEntry(ctx context.Context, reviewID string) (*ent.ReviewEntry, error) {
	entry, err := s.client.ReviewEntry.Query().
		Where(reviewentry.IDEQ(reviewID)).
		WithDoc().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review entry: %w", err)
	}
	return entry, nil
}

// Assign claims a pending entry for a reviewer, moving it to in_review.
// Re-assigning an entry the same reviewer already holds is a no-op
// success; an entry held by someone else, or already decided, is a
// conflict.
func (s *ReviewService) Assign(ctx context.Context, reviewID, reviewerID string) (*ent.ReviewEntry, error) {
	if reviewerID == "" {
		return nil, NewValidationError("reviewer_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	entry, err := tx.ReviewEntry.Query().
		Where(reviewentry.IDEQ(reviewID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review entry: %w", err)
	}

	switch entry.Status {
	case reviewentry.StatusPending:
		count, err := tx.ReviewEntry.Update().
			Where(
				reviewentry.IDEQ(reviewID),
				reviewentry.StatusEQ(reviewentry.StatusPending),
			).
			SetStatus(reviewentry.StatusInReview).
			SetAssignedTo(reviewerID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to assign review entry: %w", err)
		}
		if count == 0 {
			// Someone else claimed it between the read and the update.
			return nil, ErrConflict
		}
	case reviewentry.StatusInReview:
		if entry.AssignedTo != nil && *entry.AssignedTo == reviewerID {
			return entry, nil
		}
		return nil, ErrConflict
	default:
		return nil, ErrConflict
	}

	entry, err = tx.ReviewEntry.Get(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch review entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.BestEffort(ctx, audit.EventReviewAssigned, map[string]any{
		"review_id":   reviewID,
		"assigned_to": reviewerID,
	})

	return entry, nil
}

// Act applies a reviewer's decision. The entry update and the item label
// change commit together; an approve additionally writes the document's
// vector through the same path auto-labeling uses. Acting on a pending
// entry claims it for the actor in the same update, so a decided entry
// always carries its reviewer. Acting on an entry that already left the
// active states is a conflict, so concurrent decisions resolve to exactly
// one winner.
func (s *ReviewService) Act(ctx context.Context, reviewID, reviewerID string, action models.ReviewAction, note string) (*ent.ReviewEntry, error) {
	if reviewerID == "" {
		return nil, NewValidationError("reviewer_id", "required")
	}
	if !action.Valid() {
		return nil, NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	entry, err := s.client.ReviewEntry.Query().
		Where(reviewentry.IDEQ(reviewID)).
		WithDoc().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review entry: %w", err)
	}
	doc := entry.Edges.Doc
	if doc == nil {
		return nil, fmt.Errorf("review entry %s has no document", reviewID)
	}

	// Embed before opening the transaction so the sidecar round trip does
	// not hold a connection and row locks open.
	var vector []float32
	if action == models.ReviewActionApprove {
		vector, err = s.indexer.Embed(ctx, doc.CleanText)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.ReviewEntry.Update().
		Where(
			reviewentry.IDEQ(reviewID),
			reviewentry.StatusIn(reviewentry.StatusPending, reviewentry.StatusInReview),
		).
		SetStatus(actionStatus(action)).
		SetAssignedTo(reviewerID)
	if note != "" {
		update.SetNote(note)
	}
	if action == models.ReviewActionEscalate {
		update.SetPriority(models.EscalatedPriority)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update review entry: %w", err)
	}
	if count == 0 {
		return nil, ErrConflict
	}

	indexed := false
	switch action {
	case models.ReviewActionApprove:
		err = tx.CrawledItem.UpdateOneID(doc.ID).
			SetLabel(crawleditem.LabelScam).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to relabel item: %w", err)
		}
		if err := s.indexer.Index(ctx, tx, doc, vector); err != nil {
			return nil, err
		}
		indexed = true
	case models.ReviewActionReject:
		err = tx.CrawledItem.UpdateOneID(doc.ID).
			SetLabel(crawleditem.LabelBenign).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to relabel item: %w", err)
		}
	case models.ReviewActionEscalate:
		// Label stays needs_review; the entry just jumps the queue.
	}

	entry, err = tx.ReviewEntry.Get(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch review entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if indexed {
			// The vector landed but the bookkeeping did not; take it back
			// out so the index only holds committed documents.
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if delErr := s.indexer.Unindex(cleanupCtx, doc.ID); delErr != nil {
				s.logger.Warn("failed to remove vector after aborted commit",
					"doc_id", doc.ID, "error", delErr)
			}
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.BestEffort(ctx, audit.EventReviewAction, map[string]any{
		"review_id":   reviewID,
		"doc_id":      doc.ID,
		"action":      string(action),
		"reviewer_id": reviewerID,
		"note":        note,
	})

	if err := s.bus.Publish(ctx, events.EventReviewAction, map[string]any{
		"review_id":   reviewID,
		"doc_id":      doc.ID,
		"action":      string(action),
		"status":      string(entry.Status),
		"reviewer_id": reviewerID,
	}, events.RoleTarget(string(models.RoleReviewer))); err != nil {
		s.logger.Warn("failed to publish review event", "review_id", reviewID, "error", err)
	}

	return entry, nil
}

// Stats returns per-status counts plus the caller's active assignments.
func (s *ReviewService) Stats(ctx context.Context, reviewerID string) (*models.ReviewStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.ReviewEntry.Query().
		GroupBy(reviewentry.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count review entries: %w", err)
	}

	stats := &models.ReviewStats{}
	for _, row := range rows {
		switch reviewentry.Status(row.Status) {
		case reviewentry.StatusPending:
			stats.Pending = row.Count
		case reviewentry.StatusInReview:
			stats.InReview = row.Count
		case reviewentry.StatusApproved:
			stats.Approved = row.Count
		case reviewentry.StatusRejected:
			stats.Rejected = row.Count
		case reviewentry.StatusEscalated:
			stats.Escalated = row.Count
		}
	}

	if reviewerID != "" {
		mine, err := s.client.ReviewEntry.Query().
			Where(
				reviewentry.AssignedToEQ(reviewerID),
				reviewentry.StatusIn(reviewentry.StatusPending, reviewentry.StatusInReview),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count assigned entries: %w", err)
		}
		stats.MyAssigned = mine
	}

	return stats, nil
}

func actionStatus(action models.ReviewAction) reviewentry.Status {
	switch action {
	case models.ReviewActionApprove:
		return reviewentry.StatusApproved
	case models.ReviewActionReject:
		return reviewentry.StatusRejected
	default:
		return reviewentry.StatusEscalated
	}
}

func queueEntryFromRow(entry *ent.ReviewEntry) models.ReviewQueueEntry {
	item := models.ReviewQueueEntry{
		ID:        entry.ID,
		DocID:     entry.DocID,
		Status:    string(entry.Status),
		Priority:  entry.Priority,
		CreatedAt: entry.CreatedAt,
	}
	if entry.Note != nil {
		item.Note = *entry.Note
	}
	if entry.AssignedTo != nil {
		item.AssignedTo = *entry.AssignedTo
	}
	if doc := entry.Edges.Doc; doc != nil {
		item.Doc = models.ReviewDocSummary{
			URL:             doc.URL,
			Domain:          doc.Domain,
			CleanText:       doc.CleanText,
			Language:        string(doc.Language),
			LangConfidence:  doc.LangConfidence,
			HeuristicScore:  doc.HeuristicScore,
			ClassifierScore: doc.ClassifierScore,
			Label:           string(doc.Label),
		}
	}
	return item
}
