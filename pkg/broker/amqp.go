package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPBroker is the RabbitMQ-backed fabric. One connection per process; the
// publisher owns a dedicated channel behind a mutex, each consumer gets its
// own channel with prefetch 1.
type AMQPBroker struct {
	url string

	mu    sync.Mutex
	conn  *amqp.Connection
	pubCh *amqp.Channel
}

// Dial connects, declares the topology, and returns the broker.
func Dial(url string) (*AMQPBroker, error) {
	b := &AMQPBroker{url: url}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b, nil
}

// connect (re)establishes the connection, publisher channel, and topology.
// Caller must not hold b.mu.
func (b *AMQPBroker) connect() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connectLocked()
}

func (b *AMQPBroker) connectLocked() error {
	conn, err := amqp.Dial(b.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open publisher channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		_ = conn.Close()
		return err
	}

	b.conn = conn
	b.pubCh = ch
	slog.Info("Broker connected", "url_host", conn.LocalAddr().String())
	return nil
}

// declareTopology declares both pipeline queues durable, with rejected
// messages routed through the dead-letter exchange to <queue>.dead.
func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(deadLetterExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	for _, queue := range []string{QueueCrawlItems, QueueIngest} {
		_, err := ch.QueueDeclare(queue, true, false, false, false, amqp.Table{
			"x-dead-letter-exchange":    deadLetterExchange,
			"x-dead-letter-routing-key": queue,
		})
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}

		dead := DeadQueue(queue)
		if _, err := ch.QueueDeclare(dead, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare dead-letter queue %s: %w", dead, err)
		}
		if err := ch.QueueBind(dead, queue, deadLetterExchange, false, nil); err != nil {
			return fmt.Errorf("bind dead-letter queue %s: %w", dead, err)
		}
	}
	return nil
}

// Publish implements Publisher with persistent delivery. A closed connection
// triggers one reconnect attempt before giving up.
func (b *AMQPBroker) Publish(ctx context.Context, queue string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		if err := b.connectLocked(); err != nil {
			return err
		}
	}

	err := b.pubCh.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", queue, err)
	}
	return nil
}

// Consume implements Consumer. The channel closes when the underlying AMQP
// channel dies or ctx is cancelled.
func (b *AMQPBroker) Consume(ctx context.Context, queue string) (<-chan Delivery, error) {
	b.mu.Lock()
	if b.conn == nil || b.conn.IsClosed() {
		if err := b.connectLocked(); err != nil {
			b.mu.Unlock()
			return nil, err
		}
	}
	conn := b.conn
	b.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consumer channel: %w", err)
	}

	// One unacked message at a time keeps backpressure on the queue.
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("set prefetch on %s: %w", queue, err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("consume %s: %w", queue, err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer ch.Close()
		for d := range deliveries {
			d := d
			wrapped := Delivery{
				Body: d.Body,
				ack:  func() error { return d.Ack(false) },
				// requeue=false diverts the message to the dead-letter queue
				reject: func() error { return d.Nack(false, false) },
			}
			select {
			case out <- wrapped:
			case <-ctx.Done():
				_ = d.Nack(false, true) // undelivered; back to the queue
				return
			}
		}
	}()
	return out, nil
}

// Healthy reports whether the connection is open. It never reconnects;
// Publish and Consume handle that on the next call.
func (b *AMQPBroker) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn != nil && !b.conn.IsClosed()
}

// Close shuts down the connection and all channels.
func (b *AMQPBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	b.pubCh = nil
	return err
}
