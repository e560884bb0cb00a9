package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/check"
	"github.com/factforge/factforge/pkg/database"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
	testdb "github.com/factforge/factforge/test/database"
)

const testDim = 8

// stubProvider satisfies both llm.Provider and check.Generator.
type stubProvider struct {
	name string
	down bool
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(context.Context, string, llm.Options) (string, error) {
	if p.down {
		return "", fmt.Errorf("provider %s is down", p.name)
	}
	return `{"verdict":"UNVERIFIED","confidence":0.4,"explanation":"insufficient evidence","evidence":[]}`, nil
}

func (p *stubProvider) Available(context.Context) bool { return !p.down }

type testEnv struct {
	server   *Server
	client   *database.Client
	bus      *events.Recorder
	selector *llm.Selector
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)
	auditSvc := audit.NewService(client.Client, signer)

	embedder := embedding.NewHashEmbedder(testDim)
	store := vectorindex.NewMemStore(testDim)
	bus := events.NewRecorder()

	checkSvc := check.NewService(embedder, store, &stubProvider{name: "gemini"}, auditSvc, bus, logger)
	indexer := services.NewIndexer(store, embedder)
	reviewSvc := services.NewReviewService(client.Client, indexer, auditSvc, bus, logger)
	userSvc := services.NewUserService(client.Client)
	modelSvc := services.NewModelService(client.Client)
	selector := llm.NewSelector(logger, &stubProvider{name: "gemini"}, &stubProvider{name: "ollama"})

	s := NewServer(client, checkSvc, reviewSvc, userSvc, modelSvc, auditSvc, selector)
	s.SetBroker(broker.NewMemBroker())
	s.SetVectorStore(store)
	s.SetEventPublisher(bus)

	return &testEnv{server: s, client: client, bus: bus, selector: selector}
}

// request runs one HTTP request through the full router, identity headers
// included when caller is non-empty.
func (env *testEnv) request(t *testing.T, method, path, body string, caller identity) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller.UserID != "" {
		req.Header.Set("X-User-ID", caller.UserID)
		req.Header.Set("X-User-Role", string(caller.Role))
	}
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out),
		"body: %s", rec.Body.String())
	return out
}

func seedReviewEntry(t *testing.T, client *database.Client) (docID, reviewID string) {
	t.Helper()
	ctx := context.Background()
	docID = uuid.NewString()
	reviewID = uuid.NewString()

	err := client.CrawledItem.Create().
		SetID(docID).
		SetURL("https://lottery-win.example/" + docID).
		SetDomain("lottery-win.example").
		SetCleanText("You have won a lottery, pay the release fee to claim your prize").
		SetLanguage(crawleditem.LanguageEn).
		SetLangConfidence(0.98).
		SetHeuristicScore(55).
		SetLabel(crawleditem.LabelNeedsReview).
		Exec(ctx)
	require.NoError(t, err)

	err = client.ReviewEntry.Create().
		SetID(reviewID).
		SetDocID(docID).
		SetPriority(3).
		SetNote("Auto-queued: score=0.750, lang=en").
		Exec(ctx)
	require.NoError(t, err)
	return docID, reviewID
}

var (
	asUser     = identity{UserID: "usr-1", Role: models.RoleUser}
	asReviewer = identity{UserID: "rev-1", Role: models.RoleReviewer}
	asAdmin    = identity{UserID: "adm-1", Role: models.RoleAdmin}
)

func TestServerRoleEnforcement(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		method   string
		path     string
		caller   identity
		wantCode int
	}{
		{name: "queue anonymous", method: http.MethodGet, path: "/api/review/queue", wantCode: http.StatusUnauthorized},
		{name: "queue as user", method: http.MethodGet, path: "/api/review/queue", caller: asUser, wantCode: http.StatusForbidden},
		{name: "queue as reviewer", method: http.MethodGet, path: "/api/review/queue", caller: asReviewer, wantCode: http.StatusOK},
		{name: "queue as admin", method: http.MethodGet, path: "/api/review/queue", caller: asAdmin, wantCode: http.StatusOK},
		{name: "models anonymous", method: http.MethodGet, path: "/api/admin/models", wantCode: http.StatusUnauthorized},
		{name: "models as reviewer", method: http.MethodGet, path: "/api/admin/models", caller: asReviewer, wantCode: http.StatusForbidden},
		{name: "models as admin", method: http.MethodGet, path: "/api/admin/models", caller: asAdmin, wantCode: http.StatusOK},
		{name: "llm status as user", method: http.MethodGet, path: "/api/admin/llm/status", caller: asUser, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(t, tt.method, tt.path, "", tt.caller)
			assert.Equal(t, tt.wantCode, rec.Code, "body: %s", rec.Body.String())
		})
	}

	t.Run("check endpoint is open", func(t *testing.T) {
		// Anonymous callers get validation, not a 401.
		rec := env.request(t, http.MethodPost, "/api/check", `{"claim_text":""}`, identity{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "claim_text")
	})
}

func TestCheckEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/check",
		`{"claim_text":"You have won a free lottery, transfer the fee to claim","language":"en"}`, asUser)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	result := decodeJSON[models.CheckResult](t, rec)
	assert.Equal(t, models.VerdictUnverified, result.Verdict)
	assert.NotEmpty(t, result.RequestID)
	assert.GreaterOrEqual(t, result.LatencyMs, int64(1))

	// The check left an audit trace.
	rows, err := env.server.auditService.List(context.Background(), audit.EventCheck, 10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReviewLifecycle(t *testing.T) {
	env := newTestEnv(t)
	docID, reviewID := seedReviewEntry(t, env.client)

	queue := decodeJSON[models.ReviewQueueResponse](t,
		env.request(t, http.MethodGet, "/api/review/queue?status=pending", "", asReviewer))
	require.Len(t, queue.Items, 1)
	assert.Equal(t, reviewID, queue.Items[0].ID)
	assert.Equal(t, 1, queue.TotalPending)

	detail := decodeJSON[ReviewDetailResponse](t,
		env.request(t, http.MethodGet, "/api/review/"+reviewID, "", asReviewer))
	assert.Equal(t, docID, detail.DocID)
	assert.Equal(t, "lottery-win.example", detail.Doc.Domain)
	assert.Equal(t, "needs_review", detail.Doc.Label)

	rec := env.request(t, http.MethodPost, "/api/review/"+reviewID+"/assign", "", asReviewer)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assigned := decodeJSON[ReviewActionResponse](t, rec)
	assert.Equal(t, "in_review", assigned.Status)
	assert.Equal(t, asReviewer.UserID, assigned.AssignedTo)

	// A second reviewer loses the claim race.
	other := identity{UserID: "rev-2", Role: models.RoleReviewer}
	rec = env.request(t, http.MethodPost, "/api/review/"+reviewID+"/assign", "", other)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/review/"+reviewID+"/action",
		`{"action":"approve","note":"confirmed scam"}`, asReviewer)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	acted := decodeJSON[ReviewActionResponse](t, rec)
	assert.Equal(t, "approved", acted.Status)

	// Approval relabels the document.
	doc, err := env.client.CrawledItem.Get(context.Background(), docID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, doc.Label)

	stats := decodeJSON[models.ReviewStats](t,
		env.request(t, http.MethodGet, "/api/review/stats", "", asReviewer))
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 0, stats.Pending)
}

func TestModelAdminFlow(t *testing.T) {
	env := newTestEnv(t)

	body := `{"classifier_version":"clf-v2","embedding_model":"hash-8","llm_version":"gemini-2.0-flash","dimension":8}`
	rec := env.request(t, http.MethodPost, "/api/admin/models", body, asAdmin)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	activated := decodeJSON[ModelActivatedResponse](t, rec)
	assert.NotEmpty(t, activated.ModelID)
	assert.Equal(t, "clf-v2", activated.ClassifierVersion)

	rec = env.request(t, http.MethodGet, "/api/admin/models", "", asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive)

	// The activation is audited and announced.
	rec = env.request(t, http.MethodGet, "/api/admin/audit?event_type=model_activated", "", asAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	var auditRows []struct {
		ID        string `json:"id"`
		EventType string `json:"event_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auditRows))
	require.Len(t, auditRows, 1)

	verify := decodeJSON[AuditVerifyResponse](t,
		env.request(t, http.MethodGet, "/api/admin/audit/verify?audit_id="+auditRows[0].ID, "", asAdmin))
	assert.True(t, verify.Valid)

	assert.Len(t, env.bus.ByType(events.EventModelActivated), 1)
}

func TestAuditCleanupEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/admin/audit/cleanup?days=30", "", asAdmin)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	resp := decodeJSON[AuditCleanupResponse](t, rec)
	assert.Equal(t, 0, resp.Deleted)

	// The purge itself leaves a record.
	rows, err := env.server.auditService.List(context.Background(), audit.EventAuditCleanup, 10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLLMAdminFlow(t *testing.T) {
	env := newTestEnv(t)

	status := decodeJSON[LLMStatusResponse](t,
		env.request(t, http.MethodGet, "/api/admin/llm/status", "", asAdmin))
	assert.Equal(t, "gemini", status.Active)
	assert.Len(t, status.Providers, 2)

	rec := env.request(t, http.MethodPost, "/api/admin/llm/switch", `{"provider":"ollama"}`, asAdmin)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	switched := decodeJSON[LLMSwitchResponse](t, rec)
	assert.Equal(t, "ollama", switched.Active)
	assert.Equal(t, "ollama", env.selector.ActiveName())

	rec = env.request(t, http.MethodPost, "/api/admin/llm/switch", `{"provider":"gpt4"}`, asAdmin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown llm provider")
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/health", "", identity{})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	health := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, healthStatusHealthy, health.Status)
	for _, component := range []string{"database", "broker", "vector_index", "llm", "audit"} {
		hc, ok := health.Checks[component]
		if assert.True(t, ok, "missing check %q", component) {
			assert.Equal(t, healthStatusHealthy, hc.Status, "component %q", component)
		}
	}
}

func TestWSEndpointWithoutManager(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/ws/events", "", identity{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
