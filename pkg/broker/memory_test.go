package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, ch <-chan Delivery) Delivery {
	t.Helper()
	select {
	case d, ok := <-ch:
		require.True(t, ok, "delivery channel closed early")
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
		return Delivery{}
	}
}

func TestMemBroker_PublishConsumeAck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewMemBroker()
	defer b.Close()

	require.NoError(t, b.Publish(ctx, QueueCrawlItems, []byte(`{"url":"https://a.example"}`)))

	ch, err := b.Consume(ctx, QueueCrawlItems)
	require.NoError(t, err)

	d := receiveOne(t, ch)
	assert.JSONEq(t, `{"url":"https://a.example"}`, string(d.Body))
	require.NoError(t, d.Ack())

	assert.Equal(t, 1, b.Acked(QueueCrawlItems))
	assert.Empty(t, b.DeadLetters(QueueCrawlItems))
}

func TestMemBroker_RejectDeadLetters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewMemBroker()
	defer b.Close()

	require.NoError(t, b.Publish(ctx, QueueIngest, []byte("not json")))

	ch, err := b.Consume(ctx, QueueIngest)
	require.NoError(t, err)

	d := receiveOne(t, ch)
	require.NoError(t, d.Reject())

	dead := b.DeadLetters(QueueIngest)
	require.Len(t, dead, 1)
	assert.Equal(t, "not json", string(dead[0]))
	assert.Equal(t, 0, b.Acked(QueueIngest))
}

func TestMemBroker_ConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	b := NewMemBroker()
	defer b.Close()

	ch, err := b.Consume(ctx, QueueCrawlItems)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("delivery channel did not close after cancel")
	}
}

func TestMemBroker_ClosedRejectsPublish(t *testing.T) {
	b := NewMemBroker()
	require.NoError(t, b.Close())

	err := b.Publish(context.Background(), QueueCrawlItems, []byte("x"))
	assert.Error(t, err)
}

func TestMemBroker_HealthyUntilClosed(t *testing.T) {
	b := NewMemBroker()
	assert.True(t, b.Healthy())

	require.NoError(t, b.Close())
	assert.False(t, b.Healthy())
}

func TestDeadQueueNaming(t *testing.T) {
	assert.Equal(t, "crawl.items.dead", DeadQueue(QueueCrawlItems))
	assert.Equal(t, "ingest.queue.dead", DeadQueue(QueueIngest))
}
