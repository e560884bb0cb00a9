// Package e2e provides end-to-end test infrastructure for the triage
// pipeline: a real PostgreSQL schema per test, the in-memory broker and
// vector index, scripted LLM providers behind the real failover selector,
// and the HTTP server on a random port.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/pkg/api"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/check"
	"github.com/factforge/factforge/pkg/database"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/enrich"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/ingest"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
	testdb "github.com/factforge/factforge/test/database"
)

// testDim keeps embedding vectors small; similarity quality is irrelevant
// here, only the plumbing.
const testDim = 16

// TestApp boots a complete pipeline instance for e2e testing.
type TestApp struct {
	// Core
	DBClient  *database.Client
	EntClient *ent.Client

	// Mocks / test wiring
	Gemini *ScriptedProvider
	Ollama *ScriptedProvider
	Bus    *events.Recorder

	// Real infrastructure
	Fabric       *broker.MemBroker
	Store        *vectorindex.MemStore
	Audit        *audit.Service
	Selector     *llm.Selector
	CheckService *check.Service
	Reviews      *services.ReviewService
	Models       *services.ModelService
	EnrichWorker *enrich.Worker
	IngestWorker *ingest.Worker
	Server       *api.Server

	// Runtime
	BaseURL     string // e.g. "http://127.0.0.1:54321"
	StorageRoot string // crawler artifact root backing the enrich FileStore

	t *testing.T
}

// NewTestApp creates and starts a full pipeline test instance: both queue
// workers are consuming and the HTTP server is listening when it returns.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// 1. Database: per-test schema on a pgvector container (or the CI
	// service database), migrations and auxiliary objects applied.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	// 2. Audit chain.
	signer, err := audit.NewSigner(bytes.Repeat([]byte("e"), audit.MinKeyBytes))
	require.NoError(t, err)
	auditService := audit.NewService(entClient, signer)

	// 3. Message fabric, vector index, and embeddings, all in-process.
	fabric := broker.NewMemBroker()
	store := vectorindex.NewMemStore(testDim)
	embedder := embedding.NewHashEmbedder(testDim)

	// 4. Scripted providers behind the real failover selector.
	gemini := NewScriptedProvider(llm.ProviderGemini)
	ollama := NewScriptedProvider(llm.ProviderOllama)
	selector := llm.NewSelector(logger, gemini, ollama)

	// 5. Event bus: a recording publisher scenarios assert on directly.
	bus := events.NewRecorder()

	// Provider switches are recorded and announced exactly as in
	// production wiring: detached, so the listener never blocks.
	selector.OnSwitch(func(from, to, reason string) {
		go func() {
			switchCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			payload := map[string]any{"from": from, "to": to, "reason": reason}
			auditService.BestEffort(switchCtx, audit.EventLLMSwitch, payload)
			_ = bus.Publish(switchCtx, events.EventLLMSwitched, payload, events.TargetAll)
		}()
	})

	// 6. Domain services.
	itemService := services.NewItemService(entClient)
	indexer := services.NewIndexer(store, embedder)
	reviewService := services.NewReviewService(entClient, indexer, auditService, bus, logger)
	userService := services.NewUserService(entClient)
	modelService := services.NewModelService(entClient)
	checkService := check.NewService(embedder, store, selector, auditService, bus, logger)

	// 7. Enrichment worker over crawl.items. OCR and WHOIS stay disabled;
	// their passes degrade to missing fields by design of the enricher.
	storageRoot := t.TempDir()
	files := enrich.NewFileStore(storageRoot)
	enricher := enrich.NewEnricher(files, itemService, fabric, nil, nil, logger)
	enrichWorker := enrich.NewWorker(fabric, enricher, bus, 1, logger)
	require.NoError(t, enrichWorker.Start(ctx))

	// 8. Ingest worker over ingest.queue.
	classifier := ingest.NewLLMClassifier(selector, logger)
	router := ingest.NewRouter(entClient, classifier, modelService, indexer, bus, logger)
	ingestWorker := ingest.NewWorker(fabric, router, auditService, 1, logger)
	require.NoError(t, ingestWorker.Start(ctx))

	// 9. HTTP server on a random port.
	server := api.NewServer(dbClient, checkService, reviewService, userService, modelService, auditService, selector)
	server.SetBroker(fabric)
	server.SetVectorStore(store)
	server.SetEventPublisher(bus)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		DBClient:     dbClient,
		EntClient:    entClient,
		Gemini:       gemini,
		Ollama:       ollama,
		Bus:          bus,
		Fabric:       fabric,
		Store:        store,
		Audit:        auditService,
		Selector:     selector,
		CheckService: checkService,
		Reviews:      reviewService,
		Models:       modelService,
		EnrichWorker: enrichWorker,
		IngestWorker: ingestWorker,
		Server:       server,
		BaseURL:      fmt.Sprintf("http://%s", ln.Addr().String()),
		StorageRoot:  storageRoot,
		t:            t,
	}

	// Register cleanup in reverse-creation order. Workers stop before the
	// broker closes so in-flight deliveries settle first.
	t.Cleanup(func() {
		ingestWorker.Stop()
		enrichWorker.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		_ = fabric.Close()
		// DB cleanup handled by testdb.NewTestClient
	})

	return app
}
