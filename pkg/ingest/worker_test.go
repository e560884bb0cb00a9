package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/models"
	testdb "github.com/factforge/factforge/test/database"
)

func startIngestWorker(t *testing.T, mem *broker.MemBroker, fix *routerFixture) *Worker {
	t.Helper()
	w := NewWorker(mem, fix.router, fix.audit, 1, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() {
		cancel()
		w.Stop()
	})
	return w
}

func publishIngest(t *testing.T, mem *broker.MemBroker, msg models.IngestMessage) {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, mem.Publish(context.Background(), broker.QueueIngest, body))
}

func TestWorkerRoutesDelivery(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.95})
	mem := broker.NewMemBroker()
	w := startIngestWorker(t, mem, fix)

	item := createPendingItem(t, client.Client, crawleditem.LanguageEn)
	publishIngest(t, mem, models.IngestMessage{URL: item.URL, Language: models.LanguageEnglish})

	require.Eventually(t, func() bool {
		return mem.Acked(broker.QueueIngest) == 1
	}, 5*time.Second, 10*time.Millisecond)

	got, err := client.Client.CrawledItem.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, got.Label)

	processed, failed := w.Stats()
	assert.Equal(t, int64(1), processed)
	assert.Equal(t, int64(0), failed)
}

func TestWorkerRejectsMalformedMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.95})
	mem := broker.NewMemBroker()
	w := startIngestWorker(t, mem, fix)

	require.NoError(t, mem.Publish(context.Background(), broker.QueueIngest, []byte("{broken")))

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueIngest)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	_, failed := w.Stats()
	assert.Equal(t, int64(1), failed)
}

func TestWorkerRejectsMissingURL(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.95})
	mem := broker.NewMemBroker()
	startIngestWorker(t, mem, fix)

	publishIngest(t, mem, models.IngestMessage{Language: models.LanguageEnglish})

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueIngest)) == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerDeadLettersFailedRouting(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.95})
	mem := broker.NewMemBroker()
	w := startIngestWorker(t, mem, fix)

	// No crawled item behind this URL, so routing fails.
	publishIngest(t, mem, models.IngestMessage{URL: "https://never-crawled.example/"})

	require.Eventually(t, func() bool {
		return len(mem.DeadLetters(broker.QueueIngest)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	records, err := fix.audit.List(context.Background(), audit.EventCheckError, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://never-crawled.example/", records[0].Payload["url"])
	assert.NotEmpty(t, records[0].Payload["error"])

	_, failed := w.Stats()
	assert.Equal(t, int64(1), failed)
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.5})
	mem := broker.NewMemBroker()
	w := startIngestWorker(t, mem, fix)
	w.Stop()
	w.Stop()
}
