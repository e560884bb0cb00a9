// Package api exposes the HTTP surface: the synchronous check endpoint,
// the review queue, the admin plane, health, and the WebSocket event feed.
// Authentication lives in the fronting gateway; handlers trust the identity
// headers it injects.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/check"
	"github.com/factforge/factforge/pkg/database"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
)

// Server is the HTTP server for the public and admin APIs.
type Server struct {
	echo *echo.Echo
	http *http.Server

	dbClient      *database.Client
	checkService  *check.Service
	reviewService *services.ReviewService
	userService   *services.UserService
	modelService  *services.ModelService
	auditService  *audit.Service
	selector      *llm.Selector

	// Optional collaborators, wired through setters.
	crawlerService *services.CrawlerService
	fabric         broker.Broker
	store          vectorindex.Store
	bus            events.Publisher
	connManager    *events.ConnectionManager
}

// NewServer creates the server and registers all routes.
func NewServer(
	dbClient *database.Client,
	checkService *check.Service,
	reviewService *services.ReviewService,
	userService *services.UserService,
	modelService *services.ModelService,
	auditService *audit.Service,
	selector *llm.Selector,
) *Server {
	if dbClient == nil {
		panic("api.NewServer: dbClient must not be nil")
	}
	if checkService == nil {
		panic("api.NewServer: checkService must not be nil")
	}
	if reviewService == nil {
		panic("api.NewServer: reviewService must not be nil")
	}
	if userService == nil {
		panic("api.NewServer: userService must not be nil")
	}
	if modelService == nil {
		panic("api.NewServer: modelService must not be nil")
	}
	if auditService == nil {
		panic("api.NewServer: auditService must not be nil")
	}
	if selector == nil {
		panic("api.NewServer: selector must not be nil")
	}

	s := &Server{
		dbClient:      dbClient,
		checkService:  checkService,
		reviewService: reviewService,
		userService:   userService,
		modelService:  modelService,
		auditService:  auditService,
		selector:      selector,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws/events", s.wsHandler)

	apiGroup := e.Group("/api")
	apiGroup.POST("/check", s.checkHandler)

	review := apiGroup.Group("/review", requireRole(models.RoleReviewer, models.RoleAdmin))
	review.GET("/queue", s.reviewQueueHandler)
	review.GET("/stats", s.reviewStatsHandler)
	review.GET("/:id", s.getReviewHandler)
	review.POST("/:id/assign", s.assignReviewHandler)
	review.POST("/:id/action", s.reviewActionHandler)

	admin := apiGroup.Group("/admin", requireRole(models.RoleAdmin))
	admin.GET("/models", s.listModelsHandler)
	admin.POST("/models", s.activateModelHandler)
	admin.GET("/audit", s.listAuditHandler)
	admin.GET("/audit/verify", s.verifyAuditHandler)
	admin.POST("/audit/cleanup", s.auditCleanupHandler)
	admin.GET("/llm/status", s.llmStatusHandler)
	admin.POST("/llm/switch", s.llmSwitchHandler)
	admin.GET("/crawler/status", s.crawlerStatusHandler)
	admin.POST("/crawler/trigger", s.crawlerTriggerHandler)

	s.echo = e
	s.http = &http.Server{
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// SetCrawlerService wires the Redis-backed crawler control plane. Without it
// the crawler admin endpoints answer 503.
func (s *Server) SetCrawlerService(svc *services.CrawlerService) {
	s.crawlerService = svc
}

// SetBroker wires the message fabric for health reporting.
func (s *Server) SetBroker(b broker.Broker) {
	s.fabric = b
}

// SetVectorStore wires the vector index for health reporting.
func (s *Server) SetVectorStore(store vectorindex.Store) {
	s.store = store
}

// SetEventPublisher wires the event bus used by admin mutations.
func (s *Server) SetEventPublisher(bus events.Publisher) {
	s.bus = bus
}

// SetConnectionManager wires the WebSocket connection manager. Without it
// /ws/events answers 503.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) {
	s.connManager = m
}

// Start begins serving on addr and blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Tests bind port 0
// and read the assigned address back before calling this.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// ServeHTTP exposes the router directly, for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// publish sends an event on the bus when one is wired. Delivery is
// best-effort; admin mutations never fail on a bus error.
func (s *Server) publish(ctx context.Context, eventType string, data map[string]any, target events.Target) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, eventType, data, target); err != nil {
		slog.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
