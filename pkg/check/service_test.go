package check

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
	testdb "github.com/factforge/factforge/test/database"
)

const testVectorDim = 8

// scriptedGenerator replays canned outputs in call order and captures the
// prompts it saw.
type scriptedGenerator struct {
	mu      sync.Mutex
	outputs []string
	err     error
	prompts []string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string, _ llm.Options) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.prompts) > len(g.outputs) {
		return "", errors.New("scripted generator exhausted")
	}
	return g.outputs[len(g.prompts)-1], nil
}

func (g *scriptedGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// failingEmbedder simulates an embedding sidecar outage.
type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("sidecar unreachable")
}

func (failingEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("sidecar unreachable")
}

func (failingEmbedder) Dimension() int    { return testVectorDim }
func (failingEmbedder) ModelName() string { return "failing" }

type checkFixture struct {
	service  *Service
	store    *vectorindex.MemStore
	recorder *events.Recorder
	audit    *audit.Service
	gen      *scriptedGenerator
}

func newCheckFixture(t *testing.T, gen *scriptedGenerator) *checkFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)

	store := vectorindex.NewMemStore(testVectorDim)
	recorder := events.NewRecorder()
	auditSvc := audit.NewService(client.Client, signer)

	return &checkFixture{
		service:  NewService(embedding.NewHashEmbedder(testVectorDim), store, gen, auditSvc, recorder, nil),
		store:    store,
		recorder: recorder,
		audit:    auditSvc,
		gen:      gen,
	}
}

// seedEvidence indexes one document the way the pipeline would.
func seedEvidence(t *testing.T, store *vectorindex.MemStore, docID, url, text string) {
	t.Helper()
	vec, err := embedding.NewHashEmbedder(testVectorDim).Embed(context.Background(), text)
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), docID, vec, map[string]any{
		"url":         url,
		"domain":      "evidence.example",
		"label":       "scam",
		"language":    "en",
		"text_sample": text,
	})
	require.NoError(t, err)
}

func TestCheckVerdictWithEvidence(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{
		`{"verdict": "TRUE", "trust_score": 88, "confidence": 90,
		  "reasons": ["matches official statement"],
		  "evidence_list": ["https://evidence.example/a"],
		  "one_line_tip": "Cross-check before sharing."}`,
	}}
	fix := newCheckFixture(t, gen)
	seedEvidence(t, fix.store, "doc-1", "https://evidence.example/a", "lottery scam warning issued")
	seedEvidence(t, fix.store, "doc-2", "https://evidence.example/b", "prize claim hoax detected")

	result, err := fix.service.Check(context.Background(), models.CheckRequest{
		ClaimText: "the lottery board issued a scam warning",
		Language:  models.LanguageEnglish,
		UserID:    "user-7",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, models.VerdictTrue, result.Verdict)
	assert.InDelta(t, 88, result.TrustScore, 1e-9)
	assert.InDelta(t, 90, result.Confidence, 1e-9)
	assert.Equal(t, []string{"matches official statement"}, result.Reasons)
	assert.Nil(t, result.MiniLesson, "no lesson for TRUE verdicts")
	assert.Empty(t, result.LanguageDetected, "explicit language skips detection")
	assert.GreaterOrEqual(t, result.LatencyMs, int64(1))

	require.Len(t, result.RetrievedIDs, 2)
	assert.ElementsMatch(t, []string{"doc-1", "doc-2"}, result.RetrievedIDs)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "the lottery board issued a scam warning")
	assert.Contains(t, prompts[0], "https://evidence.example/a")
	assert.Contains(t, prompts[0], "[scam]")

	records, err := fix.audit.List(context.Background(), audit.EventCheck, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.RequestID, records[0].Payload["request_id"])
	assert.Equal(t, "TRUE", records[0].Payload["verdict"])
	assert.Equal(t, "user-7", records[0].Payload["user_id"])

	completed := fix.recorder.ByType(events.EventCheckCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, events.UserTarget("user-7"), completed[0].Target)
}

func TestCheckFalseVerdictAddsLesson(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{
		`{"verdict": "FALSE", "trust_score": 10, "confidence": 85,
		  "reasons": ["official denial exists"], "evidence_list": [],
		  "one_line_tip": "Do not forward this."}`,
		`{"mini_lesson": "Urgent money offers are a classic scam pattern.",
		  "tips": ["Check the sender"],
		  "quiz": {"question": "What should you check first?",
		           "options": ["A) Nothing", "B) The source"], "answer": "b"}}`,
	}}
	fix := newCheckFixture(t, gen)

	result, err := fix.service.Check(context.Background(), models.CheckRequest{
		ClaimText: "RBI is giving away free money today only",
		Language:  models.LanguageEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictFalse, result.Verdict)
	require.NotNil(t, result.MiniLesson)
	assert.Equal(t, "Urgent money offers are a classic scam pattern.", result.MiniLesson.MiniLesson)
	assert.Equal(t, "B", result.MiniLesson.Quiz.Answer)

	prompts := gen.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[1], "FALSE")
	assert.Contains(t, prompts[1], "RBI is giving away free money today only")
}

func TestCheckAutoDetectsLanguage(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{
		`{"verdict": "UNVERIFIED", "trust_score": 0, "confidence": 0,
		  "reasons": [], "evidence_list": [], "one_line_tip": ""}`,
	}}
	fix := newCheckFixture(t, gen)

	result, err := fix.service.Check(context.Background(), models.CheckRequest{
		ClaimText: "सरकार सबको पाँच हज़ार रुपये दे रही है",
		Language:  models.LanguageAuto,
	})
	require.NoError(t, err)

	assert.Equal(t, "hi", result.LanguageDetected)
	assert.Contains(t, gen.Prompts()[0], "Hindi")
}

func TestCheckValidation(t *testing.T) {
	gen := &scriptedGenerator{}
	fix := newCheckFixture(t, gen)
	ctx := context.Background()

	t.Run("empty claim", func(t *testing.T) {
		_, err := fix.service.Check(ctx, models.CheckRequest{ClaimText: "   "})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("oversized claim", func(t *testing.T) {
		_, err := fix.service.Check(ctx, models.CheckRequest{
			ClaimText: strings.Repeat("x", models.MaxClaimChars+1),
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := fix.service.Check(ctx, models.CheckRequest{
			ClaimText: "some claim",
			Language:  models.Language("fr"),
		})
		assert.True(t, services.IsValidationError(err))
	})

	assert.Empty(t, gen.Prompts(), "validation failures never reach the LLM")
	records, err := fix.audit.List(ctx, audit.EventCheck, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, records, "validation failures are not audited")
}

func TestCheckLLMOutageFallsBack(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("all llm providers failed")}
	fix := newCheckFixture(t, gen)

	result, err := fix.service.Check(context.Background(), models.CheckRequest{
		ClaimText: "aliens confirmed in parliament",
		Language:  models.LanguageEnglish,
	})
	require.NoError(t, err, "a dead LLM degrades, never errors")

	assert.Equal(t, models.VerdictUnverified, result.Verdict)
	assert.Zero(t, result.TrustScore)
	assert.Zero(t, result.Confidence)
	assert.NotEmpty(t, result.Reasons)

	records, err := fix.audit.List(context.Background(), audit.EventCheck, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "UNVERIFIED", records[0].Payload["verdict"])
}

func TestCheckUnparseableVerdictFallsBack(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{"Well, it is probably true I guess?"}}
	fix := newCheckFixture(t, gen)

	result, err := fix.service.Check(context.Background(), models.CheckRequest{
		ClaimText: "some claim",
		Language:  models.LanguageEnglish,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictUnverified, result.Verdict)
}

func TestCheckRetrievalOutageDegrades(t *testing.T) {
	gen := &scriptedGenerator{outputs: []string{
		`{"verdict": "UNVERIFIED", "trust_score": 0, "confidence": 0,
		  "reasons": [], "evidence_list": [], "one_line_tip": ""}`,
	}}

	client := testdb.NewTestClient(t)
	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)
	service := NewService(failingEmbedder{}, vectorindex.NewMemStore(testVectorDim), gen,
		audit.NewService(client.Client, signer), nil, nil)

	result, err := service.Check(context.Background(), models.CheckRequest{
		ClaimText: "a claim with no reachable evidence",
		Language:  models.LanguageEnglish,
	})
	require.NoError(t, err)

	assert.Empty(t, result.RetrievedIDs)
	require.Len(t, gen.Prompts(), 1)
	assert.Contains(t, gen.Prompts()[0], "No similar previously-seen content")
}

func TestCheckCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &scriptedGenerator{err: context.Canceled}
	fix := newCheckFixture(t, gen)

	_, err := fix.service.Check(ctx, models.CheckRequest{
		ClaimText: "claim",
		Language:  models.LanguageEnglish,
	})
	assert.ErrorIs(t, err, context.Canceled)

	records, listErr := fix.audit.List(context.Background(), audit.EventCheck, 10, 0)
	require.NoError(t, listErr)
	assert.Empty(t, records)
}
