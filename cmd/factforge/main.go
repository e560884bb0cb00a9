// FactForge triage server: serves the check, review, and admin APIs, runs
// the enrichment and ingest workers, and streams pipeline events over
// WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/factforge/factforge/pkg/api"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/check"
	"github.com/factforge/factforge/pkg/cleanup"
	"github.com/factforge/factforge/pkg/config"
	"github.com/factforge/factforge/pkg/database"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/enrich"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/ingest"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
	"github.com/factforge/factforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	slog.Info("Starting FactForge", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Audit trail
	signer, err := audit.NewSigner(cfg.HMACKey)
	if err != nil {
		slog.Error("Failed to initialize audit signer", "error", err)
		os.Exit(1)
	}
	auditService := audit.NewService(dbClient.Client, signer)

	// 4. Message fabric
	fabric, err := broker.Dial(cfg.BrokerURL)
	if err != nil {
		slog.Error("Failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := fabric.Close(); err != nil {
			slog.Error("Error closing broker connection", "error", err)
		}
	}()

	// 5. Vector index and embedder
	var store vectorindex.Store
	switch cfg.VectorBackend {
	case config.VectorBackendMemory:
		store = vectorindex.NewMemStore(cfg.VectorDimension)
	default:
		store = vectorindex.NewPgStore(dbClient.DB(), cfg.VectorDimension)
	}

	logger := slog.Default()
	hashEmbedder := embedding.NewHashEmbedder(cfg.VectorDimension)
	var embedder embedding.Embedder = hashEmbedder
	if cfg.EmbeddingServiceURL != "" {
		sidecar := embedding.NewHTTPEmbedder(cfg.EmbeddingServiceURL, cfg.EmbeddingModel,
			cfg.VectorDimension, logger)
		embedder = embedding.NewFailover(sidecar, hashEmbedder, logger)
	} else {
		slog.Warn("EMBEDDING_SERVICE_URL is not set, using the deterministic hash embedder")
	}

	// 6. Model providers
	selector, err := buildSelector(ctx, cfg, logger)
	if err != nil {
		slog.Error("Failed to initialize llm providers", "error", err)
		os.Exit(1)
	}
	probeCtx, probeCancel := context.WithTimeout(ctx, 5*time.Second)
	for _, p := range selector.Status(probeCtx) {
		slog.Info("LLM provider", "name", p.Name, "active", p.Active, "available", p.Available)
	}
	probeCancel()

	// 7. Event bus and streaming infrastructure
	bus := events.NewPGPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(logger, 10*time.Second)
	notifyListener := events.NewNotifyListener(dbClient.DSN(), connManager, logger)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// Every provider switch, manual or failover, is recorded and announced.
	// The listener must not block, so the writes run detached.
	selector.OnSwitch(func(from, to, reason string) {
		go func() {
			switchCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			payload := map[string]any{"from": from, "to": to, "reason": reason}
			auditService.BestEffort(switchCtx, audit.EventLLMSwitch, payload)
			if err := bus.Publish(switchCtx, events.EventLLMSwitched, payload, events.TargetAll); err != nil {
				slog.Warn("Failed to publish llm switch event", "error", err)
			}
		}()
	})

	// 8. Domain services
	itemService := services.NewItemService(dbClient.Client)
	indexer := services.NewIndexer(store, embedder)
	reviewService := services.NewReviewService(dbClient.Client, indexer, auditService, bus, logger)
	userService := services.NewUserService(dbClient.Client)
	modelService := services.NewModelService(dbClient.Client)
	checkService := check.NewService(embedder, store, selector, auditService, bus, logger)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("Invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	rdb := redis.NewClient(redisOpts)
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()
	crawlerService := services.NewCrawlerService(rdb)
	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	if err := crawlerService.Ping(pingCtx); err != nil {
		slog.Warn("Redis is unreachable, crawler endpoints answer 503 until it returns", "error", err)
	}
	pingCancel()
	slog.Info("Services initialized")

	// 9. Enrichment worker
	files := enrich.NewFileStore(cfg.StorageRoot)
	var ocr enrich.OCR
	if cfg.TesseractPath != "" {
		ocr = enrich.NewTesseract(cfg.TesseractPath, logger)
	}
	domains := enrich.NewWhoisResolver(cfg.WhoisTimeout, logger)
	enricher := enrich.NewEnricher(files, itemService, fabric, ocr, domains, logger)
	enrichWorker := enrich.NewWorker(fabric, enricher, bus, cfg.EnrichWorkers, logger)
	if err := enrichWorker.Start(ctx); err != nil {
		slog.Error("Failed to start enrichment worker", "error", err)
		os.Exit(1)
	}

	// 10. Ingest worker
	classifier := ingest.NewLLMClassifier(selector, logger)
	router := ingest.NewRouter(dbClient.Client, classifier, modelService, indexer, bus, logger)
	ingestWorker := ingest.NewWorker(fabric, router, auditService, cfg.IngestWorkers, logger)
	if err := ingestWorker.Start(ctx); err != nil {
		slog.Error("Failed to start ingest worker", "error", err)
		os.Exit(1)
	}

	// 11. Retention
	cleanupService := cleanup.NewService(cfg, dbClient.DB(), auditService, logger)
	cleanupService.Start(ctx)

	// 12. HTTP server
	httpServer := api.NewServer(dbClient, checkService, reviewService, userService,
		modelService, auditService, selector)
	httpServer.SetCrawlerService(crawlerService)
	httpServer.SetBroker(fabric)
	httpServer.SetVectorStore(store)
	httpServer.SetEventPublisher(bus)
	httpServer.SetConnectionManager(connManager)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("FactForge started successfully",
		"enrich_workers", cfg.EnrichWorkers,
		"ingest_workers", cfg.IngestWorkers,
		"vector_backend", cfg.VectorBackend,
		"llm_active", selector.ActiveName())

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown. Intake stops first so in-flight deliveries are
	// acked or requeued before their connections drop.
	ingestWorker.Stop()
	enrichWorker.Stop()
	slog.Info("Pipeline workers stopped")

	cleanupService.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	connManager.CloseAll()

	slog.Info("Shutdown complete")
}

// buildSelector assembles the provider rotation from configuration. A
// missing Gemini key drops that provider instead of failing the boot;
// Ollama needs no credentials and is always in the rotation.
func buildSelector(ctx context.Context, cfg *config.Settings, logger *slog.Logger) (*llm.Selector, error) {
	ollama := llm.NewOllamaProvider(cfg.OllamaURL, cfg.OllamaModel, logger)

	var gemini llm.Provider
	if cfg.GeminiAPIKey != "" {
		p, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize gemini provider: %w", err)
		}
		gemini = p
	}

	if cfg.LLMPrimary == llm.ProviderOllama {
		return llm.NewSelector(logger, ollama, gemini), nil
	}
	if gemini == nil {
		slog.Warn("GEMINI_API_KEY is not set, running on ollama alone")
		return llm.NewSelector(logger, ollama), nil
	}
	return llm.NewSelector(logger, gemini, ollama), nil
}
