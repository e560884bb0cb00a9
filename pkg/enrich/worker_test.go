package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
)

func startWorker(t *testing.T, mem *broker.MemBroker, store *fakeStore, bus events.Publisher) *Worker {
	t.Helper()
	enricher := NewEnricher(NewFileStore(t.TempDir()), store, mem, nil, nil, slog.Default())
	w := NewWorker(mem, enricher, bus, 1, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() {
		cancel()
		w.Stop()
	})
	return w
}

func publishCrawl(t *testing.T, mem *broker.MemBroker, msg models.CrawlItemMessage) {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, mem.Publish(context.Background(), broker.QueueCrawlItems, body))
}

func TestWorkerProcessesDelivery(t *testing.T) {
	mem := broker.NewMemBroker()
	store := &fakeStore{}
	rec := events.NewRecorder()
	w := startWorker(t, mem, store, rec)

	publishCrawl(t, mem, models.CrawlItemMessage{
		URL:    "https://fraud.example/win",
		Domain: "fraud.example",
		Text:   "You are a guaranteed lottery winner",
	})

	require.Eventually(t, func() bool {
		return mem.Acked(broker.QueueCrawlItems) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.Len(t, store.all(), 1)
	assert.Equal(t, 1, mem.Pending(broker.QueueIngest))

	started := rec.ByType(events.EventIngestStarted)
	require.Len(t, started, 1)
	assert.Equal(t, "https://fraud.example/win", started[0].Data["url"])
	assert.Equal(t, events.TargetAll, started[0].Target)

	processed, failed := w.Stats()
	assert.Equal(t, int64(1), processed)
	assert.Equal(t, int64(0), failed)
}

func TestWorkerRejectsMalformedMessage(t *testing.T) {
	mem := broker.NewMemBroker()
	store := &fakeStore{}
	rec := events.NewRecorder()
	w := startWorker(t, mem, store, rec)

	require.NoError(t, mem.Publish(context.Background(), broker.QueueCrawlItems, []byte("{broken")))

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueCrawlItems)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Empty(t, store.all())
	assert.Empty(t, rec.Events(), "no start event for a message that never parsed")

	_, failed := w.Stats()
	assert.Equal(t, int64(1), failed)
}

func TestWorkerRejectsMissingURL(t *testing.T) {
	mem := broker.NewMemBroker()
	store := &fakeStore{}
	startWorker(t, mem, store, nil)

	publishCrawl(t, mem, models.CrawlItemMessage{Domain: "a.example", Text: "no url"})

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueCrawlItems)) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, store.all())
}

func TestWorkerRejectsWhenEnrichmentFails(t *testing.T) {
	mem := broker.NewMemBroker()
	store := &fakeStore{err: errors.New("database down")}
	rec := events.NewRecorder()
	w := startWorker(t, mem, store, rec)

	publishCrawl(t, mem, models.CrawlItemMessage{
		URL:    "https://fraud.example/win",
		Domain: "fraud.example",
		Text:   "text",
	})

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueCrawlItems)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Processing did begin, so the start event still went out.
	assert.Len(t, rec.ByType(events.EventIngestStarted), 1)
	assert.Zero(t, mem.Pending(broker.QueueIngest))

	processed, failed := w.Stats()
	assert.Equal(t, int64(0), processed)
	assert.Equal(t, int64(1), failed)
}

func TestWorkerRunsWithoutEventBus(t *testing.T) {
	mem := broker.NewMemBroker()
	store := &fakeStore{}
	startWorker(t, mem, store, nil)

	publishCrawl(t, mem, models.CrawlItemMessage{
		URL:    "https://quiet.example",
		Domain: "quiet.example",
		Text:   "plain text",
	})

	require.Eventually(t, func() bool {
		return mem.Acked(broker.QueueCrawlItems) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, store.all(), 1)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	mem := broker.NewMemBroker()
	w := startWorker(t, mem, &fakeStore{}, nil)
	w.Stop()
	w.Stop()
}
