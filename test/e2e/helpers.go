package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Caller identities
// ────────────────────────────────────────────────────────────

// caller is the gateway identity a request runs under. The zero value is
// an anonymous request.
type caller struct {
	id   string
	role string
}

var (
	anonymous  = caller{}
	asUser     = caller{id: "usr-1", role: "user"}
	asReviewer = caller{id: "rev-1", role: "reviewer"}
	asAdmin    = caller{id: "adm-1", role: "admin"}
)

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

// request performs one HTTP call with the caller's identity headers and
// returns the status code plus the decoded JSON body.
func (app *TestApp) request(t *testing.T, method, path string, body any, as caller) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as.id != "" {
		req.Header.Set("X-User-ID", as.id)
		req.Header.Set("X-User-Role", as.role)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded),
		"%s %s: response body is not a JSON object", method, path)
	return resp.StatusCode, decoded
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, as caller, expectedStatus int) map[string]any {
	t.Helper()
	status, decoded := app.request(t, http.MethodPost, path, body, as)
	require.Equal(t, expectedStatus, status, "POST %s: unexpected status, body %v", path, decoded)
	return decoded
}

func (app *TestApp) getJSON(t *testing.T, path string, as caller, expectedStatus int) map[string]any {
	t.Helper()
	status, decoded := app.request(t, http.MethodGet, path, nil, as)
	require.Equal(t, expectedStatus, status, "GET %s: unexpected status, body %v", path, decoded)
	return decoded
}

// CheckClaim posts a claim to the check endpoint and returns the parsed
// response. An empty language leaves detection to the pipeline.
func (app *TestApp) CheckClaim(t *testing.T, as caller, claim, language string) map[string]any {
	t.Helper()
	body := map[string]any{"claim_text": claim}
	if language != "" {
		body["language"] = language
	}
	return app.postJSON(t, "/api/check", body, as, http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// Pipeline seeding
// ────────────────────────────────────────────────────────────

// PublishCrawl drops one message on crawl.items, exactly as the fetcher
// would.
func (app *TestApp) PublishCrawl(t *testing.T, msg models.CrawlItemMessage) {
	t.Helper()
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, app.Fabric.Publish(context.Background(), broker.QueueCrawlItems, payload))
}

// SeedReviewItem inserts a needs_review document with a pending queue
// entry, bypassing the pipeline.
func (app *TestApp) SeedReviewItem(t *testing.T) (docID, reviewID string) {
	t.Helper()
	ctx := context.Background()
	docID = uuid.NewString()
	reviewID = uuid.NewString()

	err := app.EntClient.CrawledItem.Create().
		SetID(docID).
		SetURL("https://seeded.example/" + docID).
		SetDomain("seeded.example").
		SetCleanText("You have won a lottery, pay the release fee to claim your prize").
		SetLanguage(crawleditem.LanguageEn).
		SetLangConfidence(0.98).
		SetHeuristicScore(55).
		SetClassifierScore(0.75).
		SetLabel(crawleditem.LabelNeedsReview).
		Exec(ctx)
	require.NoError(t, err)

	err = app.EntClient.ReviewEntry.Create().
		SetID(reviewID).
		SetDocID(docID).
		SetPriority(3).
		SetNote("Auto-queued: score=0.750, lang=en").
		Exec(ctx)
	require.NoError(t, err)
	return docID, reviewID
}

// ────────────────────────────────────────────────────────────
// Polling helpers
// ────────────────────────────────────────────────────────────

const (
	waitTimeout = 10 * time.Second
	waitStep    = 25 * time.Millisecond
)

// WaitForRouted polls until the document behind url has been classified
// and labeled by the ingest worker, then returns the fresh row.
func (app *TestApp) WaitForRouted(t *testing.T, url string) *ent.CrawledItem {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		item, err := app.EntClient.CrawledItem.Query().
			Where(crawleditem.URLEQ(url)).
			Only(context.Background())
		if err == nil && item.ClassifierScore != nil {
			return item
		}
		time.Sleep(waitStep)
	}
	t.Fatalf("document %s was not routed within %s", url, waitTimeout)
	return nil
}

// WaitForAuditCount polls until exactly want audit records of eventType
// exist and returns them, newest first.
func (app *TestApp) WaitForAuditCount(t *testing.T, eventType string, want int) []*ent.AuditRecord {
	t.Helper()
	var rows []*ent.AuditRecord
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		var err error
		rows, err = app.Audit.List(context.Background(), eventType, 100, 0)
		require.NoError(t, err)
		if len(rows) == want {
			return rows
		}
		time.Sleep(waitStep)
	}
	t.Fatalf("expected %d %q audit records, have %d after %s",
		want, eventType, len(rows), waitTimeout)
	return nil
}

// WaitForBusEvents polls until at least want events of eventType were
// published and returns them in publish order.
func (app *TestApp) WaitForBusEvents(t *testing.T, eventType string, want int) []events.RecordedEvent {
	t.Helper()
	var got []events.RecordedEvent
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		got = app.Bus.ByType(eventType)
		if len(got) >= want {
			return got
		}
		time.Sleep(waitStep)
	}
	t.Fatalf("expected %d %q events, have %d after %s",
		want, eventType, len(got), waitTimeout)
	return nil
}
