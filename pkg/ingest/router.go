package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
)

// Routing band edges. Thresholds above reviewFloor come from the active
// model bundle per language; reviewFloor itself is fixed.
const (
	reviewFloor       = 0.6
	highPriorityScore = 0.8
)

// Review queue priorities assigned at routing time.
const (
	reviewPriorityNormal = 3
	reviewPriorityHigh   = 5
)

// Router applies the label decision for one enriched document: score it,
// compare against the active per-language threshold, and commit the label
// together with its side effects (vector index write for scam, review
// entry for the uncertain band) in one transaction.
type Router struct {
	client     *ent.Client
	classifier Classifier
	models     *services.ModelService
	indexer    *services.Indexer
	bus        events.Publisher
	logger     *slog.Logger
}

// NewRouter creates a Router. bus may be nil (bus disabled).
func NewRouter(client *ent.Client, classifier Classifier, modelSvc *services.ModelService, indexer *services.Indexer, bus events.Publisher, logger *slog.Logger) *Router {
	if client == nil {
		panic("ingest.NewRouter: client must not be nil")
	}
	if classifier == nil {
		panic("ingest.NewRouter: classifier must not be nil")
	}
	if modelSvc == nil {
		panic("ingest.NewRouter: model service must not be nil")
	}
	if indexer == nil {
		panic("ingest.NewRouter: indexer must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		client:     client,
		classifier: classifier,
		models:     modelSvc,
		indexer:    indexer,
		bus:        bus,
		logger:     logger.With("component", "ingest.router"),
	}
}

// Route classifies and labels the document behind msg. The item update and
// any vector or review-entry insert commit atomically; the caller acks the
// message only when Route returns nil.
func (r *Router) Route(ctx context.Context, msg models.IngestMessage) error {
	item, err := r.client.CrawledItem.Query().
		Where(crawleditem.URLEQ(msg.URL)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("no item for url %s: %w", msg.URL, services.ErrNotFound)
		}
		return fmt.Errorf("failed to load item for %s: %w", msg.URL, err)
	}

	snap, err := r.models.Active(ctx)
	if err != nil {
		return err
	}

	lang := models.Language(item.Language)
	score, err := r.classifier.Score(ctx, item.CleanText, lang)
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", msg.URL, err)
	}

	threshold := snap.ThresholdFor(lang)
	label := labelForScore(score, threshold)

	// Embed before opening the transaction so the sidecar round trip does
	// not hold a connection and row locks open.
	var vector []float32
	if label == crawleditem.LabelScam {
		vector, err = r.indexer.Embed(ctx, item.CleanText)
		if err != nil {
			return err
		}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.CrawledItem.UpdateOneID(item.ID).
		SetClassifierScore(score).
		SetLabel(label).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to label item %s: %w", item.ID, err)
	}

	indexed := false
	var reviewID string
	priority := reviewPriorityNormal

	switch label {
	case crawleditem.LabelScam:
		if err := r.indexer.Index(ctx, tx, item, vector); err != nil {
			return err
		}
		indexed = true
	case crawleditem.LabelNeedsReview:
		if score > highPriorityScore {
			priority = reviewPriorityHigh
		}
		entry, err := tx.ReviewEntry.Create().
			SetID(uuid.New().String()).
			SetDocID(item.ID).
			SetPriority(priority).
			SetNote(fmt.Sprintf("Auto-queued: score=%.3f, lang=%s", score, lang)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create review entry for %s: %w", item.ID, err)
		}
		reviewID = entry.ID
	}

	if err := tx.Commit(); err != nil {
		if indexed {
			// The vector landed but the bookkeeping did not; take it back
			// out so the index only holds committed documents.
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if delErr := r.indexer.Unindex(cleanupCtx, item.ID); delErr != nil {
				r.logger.Warn("failed to remove vector after aborted commit",
					"doc_id", item.ID, "error", delErr)
			}
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("routed item",
		"url", item.URL,
		"label", label,
		"score", score,
		"threshold", threshold)

	switch label {
	case crawleditem.LabelScam:
		r.publish(ctx, events.EventIngestCompleted, map[string]any{
			"url":    item.URL,
			"doc_id": item.ID,
			"label":  string(label),
			"score":  score,
		}, events.TargetAll)
	case crawleditem.LabelNeedsReview:
		r.publish(ctx, events.EventReviewQueued, map[string]any{
			"review_id": reviewID,
			"doc_id":    item.ID,
			"url":       item.URL,
			"priority":  priority,
			"score":     score,
		}, events.RoleTarget(events.RoleReviewer))
	}

	return nil
}

func labelForScore(score, threshold float64) crawleditem.Label {
	switch {
	case score >= threshold:
		return crawleditem.LabelScam
	case score >= reviewFloor:
		return crawleditem.LabelNeedsReview
	default:
		return crawleditem.LabelBenign
	}
}

func (r *Router) publish(ctx context.Context, eventType string, data map[string]any, target events.Target) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(ctx, eventType, data, target); err != nil {
		r.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
