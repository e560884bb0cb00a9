package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/auditrecord"
)

// ErrNotFound is returned when an audit record id does not exist.
var ErrNotFound = errors.New("audit record not found")

// Event types written by the core. Free-form types are allowed; these are
// the ones the pipeline itself emits.
const (
	EventCheck            = "check"
	EventCheckError       = "check_error"
	EventReviewAction     = "review_action"
	EventReviewAssigned   = "review_assigned"
	EventLLMSwitch        = "llm_switch"
	EventModelActivated   = "model_activated"
	EventCrawlerTriggered = "crawler_triggered"
	EventAuditCleanup     = "audit_cleanup"
	EventError            = "error"
)

// Service appends, verifies, lists, and purges signed audit records.
type Service struct {
	client *ent.Client
	signer *Signer

	// failures counts append failures since process start; surfaced as
	// health degradation, never as an error to BestEffort callers.
	failures atomic.Int64
}

// NewService creates the audit service.
func NewService(client *ent.Client, signer *Signer) *Service {
	if client == nil {
		panic("audit.NewService: client must not be nil")
	}
	if signer == nil {
		panic("audit.NewService: signer must not be nil")
	}
	return &Service{
		client: client,
		signer: signer,
	}
}

// Append signs the payload and inserts the record. Returns the new id.
func (s *Service) Append(ctx context.Context, eventType string, payload map[string]any) (string, error) {
	if eventType == "" {
		return "", fmt.Errorf("event type is required")
	}
	if payload == nil {
		payload = map[string]any{}
	}

	signature, err := s.signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign audit payload: %w", err)
	}

	id := uuid.New().String()
	_, err = s.client.AuditRecord.Create().
		SetID(id).
		SetEventType(eventType).
		SetPayload(payload).
		SetSignature(signature).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("insert audit record: %w", err)
	}
	return id, nil
}

// BestEffort appends without ever failing the caller. Append errors are
// logged and counted; the pipeline and the check path use this so a broken
// audit store cannot take down an operation.
func (s *Service) BestEffort(ctx context.Context, eventType string, payload map[string]any) {
	if _, err := s.Append(ctx, eventType, payload); err != nil {
		s.failures.Add(1)
		slog.Warn("Audit append failed",
			"event_type", eventType,
			"error", err)
	}
}

// Verify refetches the record and recomputes its signature with the current
// key. The comparison is constant-time. A mismatch is (false, nil), not an
// error: the caller gets the verdict verbatim.
func (s *Service) Verify(ctx context.Context, id string) (bool, error) {
	rec, err := s.client.AuditRecord.Query().
		Where(auditrecord.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, fmt.Errorf("audit record %s: %w", id, ErrNotFound)
		}
		return false, fmt.Errorf("fetch audit record: %w", err)
	}
	return s.signer.Verify(rec.Payload, rec.Signature)
}

// List returns records in reverse chronological order, optionally filtered
// by event type.
func (s *Service) List(ctx context.Context, eventType string, limit, offset int) ([]*ent.AuditRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := s.client.AuditRecord.Query()
	if eventType != "" {
		q = q.Where(auditrecord.EventTypeEQ(eventType))
	}
	records, err := q.
		Order(ent.Desc(auditrecord.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return records, nil
}

// Purge deletes records older than the retention window and returns the
// number removed.
func (s *Service) Purge(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", days)
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := s.client.AuditRecord.Delete().
		Where(auditrecord.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge audit records: %w", err)
	}
	return n, nil
}

// Failures returns the append-failure count since process start.
func (s *Service) Failures() int64 {
	return s.failures.Load()
}
