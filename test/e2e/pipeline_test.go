package e2e

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/pkg/enrich"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Scenario 4: Crawl to label, one message per routing band
// ────────────────────────────────────────────────────────────

func TestE2E_PipelineRoutesByScore(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	// Classifier scores in publish order: clear scam, the uncertain band
	// just under the English threshold of 0.92, and a clear benign.
	app.Gemini.AddClassifier(ProviderScriptEntry{Text: "0.97"})
	app.Gemini.AddClassifier(ProviderScriptEntry{Text: "0.90"})
	app.Gemini.AddClassifier(ProviderScriptEntry{Text: "0.30"})

	// The scam document arrives as a stored HTML artifact, the way the
	// fetcher delivers it; the other two carry inline text.
	scamURL := "https://kbc-lottery-winner.example/claim"
	scamHTML := `<html><head><title>KBC Lottery Winner</title></head>` +
		`<body><p>Congratulations, it is the prize of a lifetime. ` +
		`Send the fee to the number in the message to claim it now.</p></body></html>`
	htmlRel := filepath.Join("raw", enrich.ItemKey(scamURL)+".html")
	require.NoError(t, os.MkdirAll(filepath.Join(app.StorageRoot, "raw"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app.StorageRoot, htmlRel), []byte(scamHTML), 0o644))

	reviewURL := "https://recharge-offer.example/bonus"
	benignURL := "https://city-news.example/festival"

	app.PublishCrawl(t, models.CrawlItemMessage{
		URL: scamURL, Domain: "kbc-lottery-winner.example", HTMLPath: htmlRel,
	})
	app.PublishCrawl(t, models.CrawlItemMessage{
		URL: reviewURL, Domain: "recharge-offer.example",
		Text: "The offer is in the message and it is sent to a number with a fee.",
	})
	app.PublishCrawl(t, models.CrawlItemMessage{
		URL: benignURL, Domain: "city-news.example",
		Text: "The festival is in the city and it is free to attend with the family.",
	})

	scam := app.WaitForRouted(t, scamURL)
	review := app.WaitForRouted(t, reviewURL)
	benign := app.WaitForRouted(t, benignURL)

	// Band edges: 0.97 ≥ 0.92 auto-labels, 0.90 falls to review, 0.30 is
	// below the review floor.
	assert.Equal(t, crawleditem.LabelScam, scam.Label)
	assert.InDelta(t, 0.97, *scam.ClassifierScore, 1e-9)
	assert.Equal(t, crawleditem.LabelNeedsReview, review.Label)
	assert.Equal(t, crawleditem.LabelBenign, benign.Label)

	// Enrichment extracted the artifact before classification ran.
	assert.Equal(t, crawleditem.LanguageEn, scam.Language)
	assert.Contains(t, scam.CleanText, "prize of a lifetime")
	assert.Equal(t, "KBC Lottery Winner", scam.Metadata["title"])
	assert.Equal(t, htmlRel, *scam.RawHTMLPath)

	// Only the auto-labeled scam landed in the vector index.
	records, err := app.EntClient.VectorRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, scam.ID, records[0].DocID)
	assert.Equal(t, 1, app.Store.Len())

	// Only the uncertain document produced a queue entry, at high
	// priority because 0.90 is above 0.8.
	entries, err := app.EntClient.ReviewEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, review.ID, entries[0].DocID)
	assert.Equal(t, 5, entries[0].Priority)
	assert.Equal(t, reviewentry.StatusPending, entries[0].Status)

	// Event audience per band: started and completed go to everyone,
	// queue notifications only to reviewers, benign stays silent.
	started := app.WaitForBusEvents(t, events.EventIngestStarted, 3)
	assert.Equal(t, events.TargetAll, started[0].Target)

	completed := app.WaitForBusEvents(t, events.EventIngestCompleted, 1)
	assert.Equal(t, events.TargetAll, completed[0].Target)
	assert.Equal(t, scamURL, completed[0].Data["url"])
	assert.Equal(t, string(crawleditem.LabelScam), completed[0].Data["label"])

	queued := app.WaitForBusEvents(t, events.EventReviewQueued, 1)
	assert.Equal(t, events.RoleTarget(events.RoleReviewer), queued[0].Target)
	assert.Equal(t, entries[0].ID, queued[0].Data["review_id"])
	assert.EqualValues(t, 5, queued[0].Data["priority"])
}

// ────────────────────────────────────────────────────────────
// Scenario 5: The review band closes the loop through a human
// ────────────────────────────────────────────────────────────

func TestE2E_PipelineReviewApproval(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	app.Gemini.AddClassifier(ProviderScriptEntry{Text: "0.85"})
	url := "https://job-offer.example/earn"
	app.PublishCrawl(t, models.CrawlItemMessage{
		URL: url, Domain: "job-offer.example",
		Text: "The job is easy and it is paid in advance, send a deposit to the account with the form.",
	})

	doc := app.WaitForRouted(t, url)
	require.Equal(t, crawleditem.LabelNeedsReview, doc.Label)
	queued := app.WaitForBusEvents(t, events.EventReviewQueued, 1)
	reviewID := queued[0].Data["review_id"].(string)

	// The reviewer sees the entry, claims it, and approves.
	queue := app.getJSON(t, "/api/review/queue?status=pending", asReviewer, http.StatusOK)
	items := queue["items"].([]any)
	require.Len(t, items, 1)

	app.postJSON(t, "/api/review/"+reviewID+"/assign", nil, asReviewer, http.StatusOK)
	app.postJSON(t, "/api/review/"+reviewID+"/action",
		map[string]any{"action": "approve", "note": "classic advance-fee pattern"},
		asReviewer, http.StatusOK)

	// Approval relabels the document and writes its vector through the
	// same path auto-labeling uses.
	relabeled, err := app.EntClient.CrawledItem.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, relabeled.Label)
	assert.Equal(t, 1, app.Store.Len())

	entry, err := app.EntClient.ReviewEntry.Get(ctx, reviewID)
	require.NoError(t, err)
	assert.Equal(t, reviewentry.StatusApproved, entry.Status)
	require.NotNil(t, entry.AssignedTo)
	assert.Equal(t, "rev-1", *entry.AssignedTo)

	actions := app.WaitForBusEvents(t, events.EventReviewAction, 1)
	assert.Equal(t, "approve", actions[0].Data["action"])
}
