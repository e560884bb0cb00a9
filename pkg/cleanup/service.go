// Package cleanup enforces data retention in the background.
package cleanup

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/config"
	"github.com/factforge/factforge/pkg/events"
)

// purgeTimeout bounds each retention write independently of the loop
// context, so shutdown does not abandon a half-finished purge.
const purgeTimeout = 30 * time.Second

// Service periodically enforces retention policies:
//   - Purges audit records past the retention window
//   - Removes event rows past their TTL
//
// Both operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    *config.Settings
	db     *sql.DB
	audit  *audit.Service
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service over the shared database handle.
func NewService(cfg *config.Settings, db *sql.DB, auditService *audit.Service, logger *slog.Logger) *Service {
	if cfg == nil {
		panic("cleanup.NewService: cfg must not be nil")
	}
	if db == nil {
		panic("cleanup.NewService: db must not be nil")
	}
	if auditService == nil {
		panic("cleanup.NewService: auditService must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		db:     db,
		audit:  auditService,
		logger: logger.With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"audit_retention_days", s.cfg.AuditRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeAuditRecords(ctx)
	s.purgeExpiredEvents(ctx)
}

func (s *Service) purgeAuditRecords(_ context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	count, err := s.audit.Purge(ctx, s.cfg.AuditRetentionDays)
	if err != nil {
		s.logger.Error("retention: audit purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged audit records",
			"count", count, "retention_days", s.cfg.AuditRetentionDays)
	}
}

func (s *Service) purgeExpiredEvents(_ context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	count, err := events.DeleteOlderThan(ctx, s.db, s.cfg.EventTTL)
	if err != nil {
		s.logger.Error("retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: removed expired events",
			"count", count, "ttl", s.cfg.EventTTL)
	}
}
