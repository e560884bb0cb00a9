package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCrawlerService(t *testing.T) (*CrawlerService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewCrawlerService(rdb), mr
}

func TestCrawlerService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("idle fleet reads as zero values", func(t *testing.T) {
		service, _ := newTestCrawlerService(t)

		status, err := service.Status(ctx)
		require.NoError(t, err)
		assert.False(t, status.IsRunning)
		assert.Empty(t, status.LastRun)
		assert.Zero(t, status.URLsProcessed)
		assert.Zero(t, status.Errors)
		assert.Zero(t, status.ActiveWorkers)
	})

	t.Run("reads published counters", func(t *testing.T) {
		service, mr := newTestCrawlerService(t)

		mr.Set("crawler:running", "true")
		mr.Set("crawler:last_run", "2026-08-25T10:00:00Z")
		mr.Set("crawler:urls_processed", "1234")
		mr.Set("crawler:errors", "7")
		mr.Set("crawler:active_workers", "4")

		status, err := service.Status(ctx)
		require.NoError(t, err)
		assert.True(t, status.IsRunning)
		assert.Equal(t, "2026-08-25T10:00:00Z", status.LastRun)
		assert.Equal(t, 1234, status.URLsProcessed)
		assert.Equal(t, 7, status.Errors)
		assert.Equal(t, 4, status.ActiveWorkers)
	})

	t.Run("garbage counters read as zero", func(t *testing.T) {
		service, mr := newTestCrawlerService(t)
		mr.Set("crawler:urls_processed", "not-a-number")

		status, err := service.Status(ctx)
		require.NoError(t, err)
		assert.Zero(t, status.URLsProcessed)
	})

	t.Run("redis down surfaces as dependency error", func(t *testing.T) {
		service, mr := newTestCrawlerService(t)
		mr.Close()

		_, err := service.Status(ctx)
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
	})
}

func TestCrawlerService_Trigger(t *testing.T) {
	ctx := context.Background()

	t.Run("raises the flag with an expiry", func(t *testing.T) {
		service, mr := newTestCrawlerService(t)

		require.NoError(t, service.Trigger(ctx))

		got, err := mr.Get("crawler:trigger")
		require.NoError(t, err)
		assert.Equal(t, "true", got)
		assert.Equal(t, 5*time.Minute, mr.TTL("crawler:trigger"))

		// A fleet that never picks it up loses the flag.
		mr.FastForward(6 * time.Minute)
		assert.False(t, mr.Exists("crawler:trigger"))
	})

	t.Run("redis down surfaces as dependency error", func(t *testing.T) {
		service, mr := newTestCrawlerService(t)
		mr.Close()

		assert.ErrorIs(t, service.Trigger(ctx), ErrDependencyUnavailable)
	})
}
