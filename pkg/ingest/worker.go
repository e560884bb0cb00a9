package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/models"
)

// handleTimeout bounds the routing pass for a single message, classifier
// call and transaction included.
const handleTimeout = 30 * time.Second

// Worker consumes ingest.queue deliveries and routes each document. A
// message is acked only after the label and its side effects committed;
// anything else rejects, and the broker dead-letters rejected messages
// rather than redelivering them.
type Worker struct {
	consumer broker.Consumer
	router   *Router
	audit    *audit.Service
	logger   *slog.Logger
	workers  int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	processed atomic.Int64
	failed    atomic.Int64
}

// NewWorker creates an ingest.queue consumer running workers goroutines
// over one prefetch-1 subscription. auditSvc may be nil (failures are then
// only logged).
func NewWorker(consumer broker.Consumer, router *Router, auditSvc *audit.Service, workers int, logger *slog.Logger) *Worker {
	if consumer == nil {
		panic("ingest.NewWorker: consumer must not be nil")
	}
	if router == nil {
		panic("ingest.NewWorker: router must not be nil")
	}
	if logger == nil {
		panic("ingest.NewWorker: logger must not be nil")
	}
	if workers <= 0 {
		workers = 1
	}
	return &Worker{
		consumer: consumer,
		router:   router,
		audit:    auditSvc,
		logger:   logger,
		workers:  workers,
		stopCh:   make(chan struct{}),
	}
}

// Start opens the subscription and launches the consume goroutines.
func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.consumer.Consume(ctx, broker.QueueIngest)
	if err != nil {
		return fmt.Errorf("consume %s: %w", broker.QueueIngest, err)
	}

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.run(ctx, i, deliveries)
	}
	w.logger.Info("ingest workers started",
		"queue", broker.QueueIngest, "workers", w.workers)
	return nil
}

// Stop ends consumption and waits for in-flight messages to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
}

// Stats reports how many messages routed successfully and how many were
// rejected since start.
func (w *Worker) Stats() (processed, failed int64) {
	return w.processed.Load(), w.failed.Load()
}

func (w *Worker) run(ctx context.Context, id int, deliveries <-chan broker.Delivery) {
	defer w.wg.Done()
	log := w.logger.With("worker", id)

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				log.Warn("ingest delivery channel closed, resubscribing")
				deliveries = w.resubscribe(ctx, log)
				if deliveries == nil {
					return
				}
				continue
			}
			w.handle(ctx, log, d)
		}
	}
}

// resubscribe reopens the queue subscription after a broker disconnect,
// retrying once a second. Returns nil when shutdown was requested before a
// new channel could be opened.
func (w *Worker) resubscribe(ctx context.Context, log *slog.Logger) <-chan broker.Delivery {
	for {
		select {
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case <-time.After(time.Second):
		}
		deliveries, err := w.consumer.Consume(ctx, broker.QueueIngest)
		if err != nil {
			log.Error("resubscribe failed", "queue", broker.QueueIngest, "error", err)
			continue
		}
		log.Info("resubscribed", "queue", broker.QueueIngest)
		return deliveries
	}
}

func (w *Worker) handle(ctx context.Context, log *slog.Logger, d broker.Delivery) {
	var msg models.IngestMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Error("dropping malformed ingest message", "error", err)
		w.reject(log, d, "")
		return
	}
	if msg.URL == "" {
		log.Error("dropping ingest message without url")
		w.reject(log, d, "")
		return
	}

	hctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	if err := w.router.Route(hctx, msg); err != nil {
		log.Error("routing failed", "url", msg.URL, "error", err)
		if w.audit != nil {
			w.audit.BestEffort(ctx, audit.EventCheckError, map[string]any{
				"url":   msg.URL,
				"error": err.Error(),
			})
		}
		w.reject(log, d, msg.URL)
		return
	}

	w.processed.Add(1)
	if err := d.Ack(); err != nil {
		log.Error("ack failed", "url", msg.URL, "error", err)
	}
}

func (w *Worker) reject(log *slog.Logger, d broker.Delivery, url string) {
	w.failed.Add(1)
	if err := d.Reject(); err != nil {
		log.Error("reject failed", "url", url, "error", err)
	}
}
