package ingest

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/vectorrecord"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
	testdb "github.com/factforge/factforge/test/database"
)

const testVectorDim = 8

// fixedClassifier returns the same score for every document.
type fixedClassifier struct {
	score float64
	err   error
}

func (f *fixedClassifier) Score(context.Context, string, models.Language) (float64, error) {
	return f.score, f.err
}

// routerFixture bundles a Router with the fakes behind it so tests can
// assert on the index and bus sides of a routing decision.
type routerFixture struct {
	router   *Router
	store    *vectorindex.MemStore
	recorder *events.Recorder
	audit    *audit.Service
	client   *ent.Client
}

func newRouterFixture(t *testing.T, client *ent.Client, classifier Classifier) *routerFixture {
	t.Helper()

	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)

	store := vectorindex.NewMemStore(testVectorDim)
	recorder := events.NewRecorder()
	indexer := services.NewIndexer(store, embedding.NewHashEmbedder(testVectorDim))

	return &routerFixture{
		router:   NewRouter(client, classifier, services.NewModelService(client), indexer, recorder, nil),
		store:    store,
		recorder: recorder,
		audit:    audit.NewService(client, signer),
		client:   client,
	}
}

func createPendingItem(t *testing.T, client *ent.Client, lang crawleditem.Language) *ent.CrawledItem {
	t.Helper()

	id := uuid.New().String()
	item, err := client.CrawledItem.Create().
		SetID(id).
		SetURL("https://example.com/" + id).
		SetDomain("example.com").
		SetCleanText("congratulations you won a free prize click to claim").
		SetLanguage(lang).
		SetLangConfidence(0.95).
		SetHeuristicScore(40).
		SetLabel(crawleditem.LabelPending).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func TestRouterAutoLabelsScam(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.95})
	ctx := context.Background()

	item := createPendingItem(t, client.Client, crawleditem.LanguageEn)
	err := fix.router.Route(ctx, models.IngestMessage{URL: item.URL, Language: models.LanguageEnglish})
	require.NoError(t, err)

	got, err := client.Client.CrawledItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, got.Label)
	require.NotNil(t, got.ClassifierScore)
	assert.InDelta(t, 0.95, *got.ClassifierScore, 1e-9)

	assert.Equal(t, 1, fix.store.Len())
	record, err := client.Client.VectorRecord.Query().
		Where(vectorrecord.DocIDEQ(item.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, embedding.NewHashEmbedder(testVectorDim).ModelName(), record.EmbeddingID)

	completed := fix.recorder.ByType(events.EventIngestCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, events.TargetAll, completed[0].Target)
	assert.Equal(t, item.URL, completed[0].Data["url"])
	assert.Equal(t, item.ID, completed[0].Data["doc_id"])
	assert.Equal(t, string(crawleditem.LabelScam), completed[0].Data["label"])

	entries, err := client.Client.ReviewEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, entries, "auto-labeled scam skips the review queue")
}

func TestRouterQueuesUncertainBandForReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("just under the threshold with high priority", func(t *testing.T) {
		// en threshold is 0.92, so 0.90 misses auto-label but tops the queue.
		fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.90})
		item := createPendingItem(t, client.Client, crawleditem.LanguageEn)

		require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: item.URL}))

		got, err := client.Client.CrawledItem.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, crawleditem.LabelNeedsReview, got.Label)
		assert.Zero(t, fix.store.Len(), "no vector until a human approves")

		entry, err := client.Client.ReviewEntry.Query().
			Where(reviewentry.DocIDEQ(item.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusPending, entry.Status)
		assert.Equal(t, reviewPriorityHigh, entry.Priority)
		require.NotNil(t, entry.Note)
		assert.Equal(t, "Auto-queued: score=0.900, lang=en", *entry.Note)

		queued := fix.recorder.ByType(events.EventReviewQueued)
		require.Len(t, queued, 1)
		assert.Equal(t, events.RoleTarget(events.RoleReviewer), queued[0].Target)
		assert.Equal(t, entry.ID, queued[0].Data["review_id"])
		assert.Equal(t, reviewPriorityHigh, queued[0].Data["priority"])
	})

	t.Run("middle of the band with normal priority", func(t *testing.T) {
		fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.7})
		item := createPendingItem(t, client.Client, crawleditem.LanguageTa)

		require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: item.URL}))

		entry, err := client.Client.ReviewEntry.Query().
			Where(reviewentry.DocIDEQ(item.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, reviewPriorityNormal, entry.Priority)
		require.NotNil(t, entry.Note)
		assert.Equal(t, "Auto-queued: score=0.700, lang=ta", *entry.Note)
	})
}

func TestRouterLabelsBenign(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.2})
	ctx := context.Background()

	item := createPendingItem(t, client.Client, crawleditem.LanguageHi)
	require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: item.URL}))

	got, err := client.Client.CrawledItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelBenign, got.Label)
	require.NotNil(t, got.ClassifierScore)
	assert.InDelta(t, 0.2, *got.ClassifierScore, 1e-9)

	assert.Zero(t, fix.store.Len())
	count, err := client.Client.ReviewEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, fix.recorder.Events())
}

func TestRouterNeutralScoreStaysBenign(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: NeutralScore})
	ctx := context.Background()

	item := createPendingItem(t, client.Client, crawleditem.LanguageEn)
	require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: item.URL}))

	got, err := client.Client.CrawledItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelBenign, got.Label)
	assert.Zero(t, fix.store.Len())
}

func TestRouterPerLanguageThresholds(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// 0.91 clears the 0.90 Hindi default but not the 0.92 English one.
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.91})

	hiItem := createPendingItem(t, client.Client, crawleditem.LanguageHi)
	require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: hiItem.URL}))
	got, err := client.Client.CrawledItem.Get(ctx, hiItem.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, got.Label)

	enItem := createPendingItem(t, client.Client, crawleditem.LanguageEn)
	require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: enItem.URL}))
	got, err = client.Client.CrawledItem.Get(ctx, enItem.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelNeedsReview, got.Label)
}

func TestRouterUsesActiveModelThresholds(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.65})
	ctx := context.Background()

	_, err := services.NewModelService(client.Client).Activate(ctx, models.ActivateModelRequest{
		ClassifierVersion: "tuned-v2",
		EmbeddingModel:    embedding.DefaultModel,
		LLMVersion:        "default",
		Dimension:         testVectorDim,
		Thresholds:        map[string]float64{"en": 0.6},
	})
	require.NoError(t, err)

	item := createPendingItem(t, client.Client, crawleditem.LanguageEn)
	require.NoError(t, fix.router.Route(ctx, models.IngestMessage{URL: item.URL}))

	got, err := client.Client.CrawledItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, got.Label,
		"a lowered active threshold auto-labels what the defaults would queue")
}

func TestRouterUnknownDocument(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newRouterFixture(t, client.Client, &fixedClassifier{score: 0.9})

	err := fix.router.Route(context.Background(), models.IngestMessage{URL: "https://never-crawled.example/"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}
