package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/factforge/factforge/pkg/models"
)

// Redis keys the crawler fleet maintains and this service reads. The
// crawler itself is a separate deployment; Redis is the only contract
// between it and the API.
const (
	crawlerKeyRunning       = "crawler:running"
	crawlerKeyLastRun       = "crawler:last_run"
	crawlerKeyURLsProcessed = "crawler:urls_processed"
	crawlerKeyErrors        = "crawler:errors"
	crawlerKeyActiveWorkers = "crawler:active_workers"
	crawlerKeyTrigger       = "crawler:trigger"
)

// crawlerTriggerTTL bounds how long an unconsumed trigger flag survives.
const crawlerTriggerTTL = 5 * time.Minute

// CrawlerService reads crawler fleet status from Redis and raises the
// trigger flag the fleet polls for on-demand runs.
type CrawlerService struct {
	rdb *redis.Client
}

// NewCrawlerService creates a new CrawlerService
func NewCrawlerService(rdb *redis.Client) *CrawlerService {
	if rdb == nil {
		panic("CrawlerService requires a non-nil redis client")
	}
	return &CrawlerService{rdb: rdb}
}

// Status reads the fleet's published counters. Missing keys read as zero
// values, so a fleet that has never run reports an idle status rather than
// an error.
func (s *CrawlerService) Status(ctx context.Context) (*models.CrawlerStatus, error) {
	values, err := s.rdb.MGet(ctx,
		crawlerKeyRunning,
		crawlerKeyLastRun,
		crawlerKeyURLsProcessed,
		crawlerKeyErrors,
		crawlerKeyActiveWorkers,
	).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	status := &models.CrawlerStatus{
		IsRunning:     asString(values[0]) == "true",
		LastRun:       asString(values[1]),
		URLsProcessed: asInt(values[2]),
		Errors:        asInt(values[3]),
		ActiveWorkers: asInt(values[4]),
	}
	return status, nil
}

// Trigger raises the on-demand crawl flag. The flag expires on its own if
// no crawler picks it up, so a dead fleet cannot accumulate stale
// triggers.
func (s *CrawlerService) Trigger(ctx context.Context) error {
	if err := s.rdb.Set(ctx, crawlerKeyTrigger, "true", crawlerTriggerTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	return nil
}

// Ping reports whether Redis answers, for health checks.
func (s *CrawlerService) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
