package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
)

// handleTimeout bounds the enrichment pass for a single message, OCR and
// WHOIS included.
const handleTimeout = 30 * time.Second

// Worker consumes crawl.items deliveries and runs the enrichment pass over
// each one. A message is acked only after the enriched item is persisted and
// forwarded to ingest.queue; anything else rejects, and the broker
// dead-letters rejected messages rather than redelivering them.
type Worker struct {
	consumer broker.Consumer
	enricher *Enricher
	events   events.Publisher
	logger   *slog.Logger
	workers  int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	processed atomic.Int64
	failed    atomic.Int64
}

// NewWorker creates a crawl.items consumer running workers goroutines over
// one prefetch-1 subscription. eventBus may be nil (bus disabled).
func NewWorker(consumer broker.Consumer, enricher *Enricher, eventBus events.Publisher, workers int, logger *slog.Logger) *Worker {
	if consumer == nil {
		panic("enrich.NewWorker: consumer must not be nil")
	}
	if enricher == nil {
		panic("enrich.NewWorker: enricher must not be nil")
	}
	if logger == nil {
		panic("enrich.NewWorker: logger must not be nil")
	}
	if workers <= 0 {
		workers = 1
	}
	return &Worker{
		consumer: consumer,
		enricher: enricher,
		events:   eventBus,
		logger:   logger,
		workers:  workers,
		stopCh:   make(chan struct{}),
	}
}

// Start opens the subscription and launches the consume goroutines.
func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.consumer.Consume(ctx, broker.QueueCrawlItems)
	if err != nil {
		return fmt.Errorf("consume %s: %w", broker.QueueCrawlItems, err)
	}

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.run(ctx, i, deliveries)
	}
	w.logger.Info("enrich workers started",
		"queue", broker.QueueCrawlItems, "workers", w.workers)
	return nil
}

// Stop ends consumption and waits for in-flight messages to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
}

// Stats reports how many messages enriched successfully and how many were
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
				log.Warn("crawl delivery channel closed, resubscribing")
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
		deliveries, err := w.consumer.Consume(ctx, broker.QueueCrawlItems)
		if err != nil {
			log.Error("resubscribe failed", "queue", broker.QueueCrawlItems, "error", err)
			continue
		}
		log.Info("resubscribed", "queue", broker.QueueCrawlItems)
		return deliveries
	}
}

func (w *Worker) handle(ctx context.Context, log *slog.Logger, d broker.Delivery) {
	var msg models.CrawlItemMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Error("dropping malformed crawl message", "error", err)
		w.reject(log, d, "")
		return
	}
	if msg.URL == "" {
		log.Error("dropping crawl message without url")
		w.reject(log, d, "")
		return
	}

	hctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	w.publishStarted(hctx, msg)

	if err := w.enricher.Enrich(hctx, msg); err != nil {
		log.Error("enrichment failed", "url", msg.URL, "error", err)
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

// publishStarted announces that the item entered the pipeline. Best-effort.
func (w *Worker) publishStarted(ctx context.Context, msg models.CrawlItemMessage) {
	if w.events == nil {
		return
	}
	data := map[string]any{"url": msg.URL, "domain": msg.Domain}
	if err := w.events.Publish(ctx, events.EventIngestStarted, data, events.TargetAll); err != nil {
		w.logger.Warn("publish ingest:started failed", "url", msg.URL, "error", err)
	}
}
