// Package broker provides the durable message fabric: the two pipeline
// queues on RabbitMQ with manual acks, prefetch 1, and dead-lettering for
// rejected messages, plus an in-process implementation for tests.
package broker

import "context"

// Queue names carried by the fabric.
const (
	QueueCrawlItems = "crawl.items"
	QueueIngest     = "ingest.queue"
)

// deadLetterExchange receives rejected messages; each queue binds its
// <queue>.dead counterpart to it.
const deadLetterExchange = "factforge.dlx"

// DeadQueue returns the dead-letter queue name for a source queue.
func DeadQueue(queue string) string {
	return queue + ".dead"
}

// Delivery is one in-flight message. Exactly one of Ack or Reject must be
// called; Reject never requeues, the broker dead-letters instead.
type Delivery struct {
	Body []byte

	ack    func() error
	reject func() error
}

// Ack confirms all downstream side effects committed.
func (d Delivery) Ack() error {
	if d.ack == nil {
		return nil
	}
	return d.ack()
}

// Reject gives the message up to the dead-letter queue.
func (d Delivery) Reject() error {
	if d.reject == nil {
		return nil
	}
	return d.reject()
}

// Publisher sends persistent JSON payloads to a queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Consumer opens a prefetch-1 subscription on a queue. The returned channel
// closes when the connection drops or ctx is done; callers re-consume with
// backoff.
type Consumer interface {
	Consume(ctx context.Context, queue string) (<-chan Delivery, error)
}

// Broker is the full fabric capability handed to the pipeline.
type Broker interface {
	Publisher
	Consumer

	// Healthy reports whether the underlying connection is usable.
	Healthy() bool

	Close() error
}
