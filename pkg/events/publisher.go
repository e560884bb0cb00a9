package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Publisher announces a pipeline state change to the bus. Implementations
// must be safe for concurrent use. Callers treat delivery as best-effort:
// publish failures are logged, never propagated into the triggering
// operation.
type Publisher interface {
	Publish(ctx context.Context, eventType string, data map[string]any, target Target) error
}

// notifyPayloadMax keeps NOTIFY frames under the Postgres 8000-byte payload
// limit with headroom for the transport wrapper.
const notifyPayloadMax = 7900

// PGPublisher persists events and broadcasts them through Postgres NOTIFY.
// The INSERT and pg_notify share one transaction, so listeners only ever see
// committed events and the row keeps the full payload even when the NOTIFY
// copy had to be truncated.
type PGPublisher struct {
	db  *sql.DB
	now func() time.Time
}

// NewPGPublisher creates a publisher over the shared database handle.
func NewPGPublisher(db *sql.DB) *PGPublisher {
	if db == nil {
		panic("events.NewPGPublisher: db must not be nil")
	}
	return &PGPublisher{db: db, now: time.Now}
}

// Publish writes the envelope row and fires the NOTIFY in one transaction.
// An empty target means everyone.
func (p *PGPublisher) Publish(ctx context.Context, eventType string, data map[string]any, target Target) error {
	if target == "" {
		target = TargetAll
	}
	env := Envelope{
		Type:      eventType,
		Data:      data,
		Timestamp: formatTimestamp(p.now()),
	}
	envJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", eventType, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO events (target, payload) VALUES ($1, $2) RETURNING id`,
		string(target), string(envJSON),
	).Scan(&id); err != nil {
		return fmt.Errorf("persist event %s: %w", eventType, err)
	}

	frame, err := buildFrame(id, target, env, envJSON)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, NotifyChannel, frame); err != nil {
		return fmt.Errorf("pg_notify %s: %w", eventType, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event %s: %w", eventType, err)
	}
	return nil
}

// buildFrame wraps an envelope for NOTIFY transport. Oversized envelopes are
// swapped for a marker copy carrying only the routing fields; clients that
// need the full payload read the events row by id.
func buildFrame(id int64, target Target, env Envelope, envJSON []byte) (string, error) {
	frame, err := json.Marshal(wireFrame{ID: id, Target: target, Event: envJSON})
	if err != nil {
		return "", fmt.Errorf("marshal notify frame: %w", err)
	}
	if len(frame) <= notifyPayloadMax {
		return string(frame), nil
	}

	marker := Envelope{
		Type:      env.Type,
		Data:      map[string]any{"truncated": true, "event_id": id},
		Timestamp: env.Timestamp,
	}
	markerJSON, err := json.Marshal(marker)
	if err != nil {
		return "", fmt.Errorf("marshal truncated envelope: %w", err)
	}
	frame, err = json.Marshal(wireFrame{ID: id, Target: target, Event: markerJSON})
	if err != nil {
		return "", fmt.Errorf("marshal truncated notify frame: %w", err)
	}
	return string(frame), nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// RecordedEvent is one Publish call captured by a Recorder.
type RecordedEvent struct {
	Type   string
	Data   map[string]any
	Target Target
}

// Recorder is an in-memory Publisher for tests.
type Recorder struct {
	mu     sync.Mutex
	events []RecordedEvent
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish captures the event.
func (r *Recorder) Publish(_ context.Context, eventType string, data map[string]any, target Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if target == "" {
		target = TargetAll
	}
	r.events = append(r.events, RecordedEvent{Type: eventType, Data: data, Target: target})
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ByType returns the captured events with the given type, in publish order.
func (r *Recorder) ByType(eventType string) []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RecordedEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
