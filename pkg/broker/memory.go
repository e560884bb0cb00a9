package broker

import (
	"context"
	"fmt"
	"sync"
)

// MemBroker is an in-process Broker for tests and single-node development.
// Rejected deliveries land in a per-queue dead-letter slice that tests can
// inspect.
type MemBroker struct {
	mu          sync.Mutex
	queues      map[string]chan Delivery
	acked       map[string]int
	deadLetters map[string][][]byte
	closed      bool
}

// NewMemBroker creates an in-process broker with buffered queues.
func NewMemBroker() *MemBroker {
	return &MemBroker{
		queues:      make(map[string]chan Delivery),
		acked:       make(map[string]int),
		deadLetters: make(map[string][][]byte),
	}
}

func (b *MemBroker) queue(name string) chan Delivery {
	if q, ok := b.queues[name]; ok {
		return q
	}
	q := make(chan Delivery, 256)
	b.queues[name] = q
	return q
}

// Publish implements Publisher.
func (b *MemBroker) Publish(_ context.Context, queue string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("broker is closed")
	}

	payload := append([]byte(nil), body...)
	d := Delivery{
		Body: payload,
		ack: func() error {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.acked[queue]++
			return nil
		},
		reject: func() error {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.deadLetters[queue] = append(b.deadLetters[queue], payload)
			return nil
		},
	}

	select {
	case b.queue(queue) <- d:
		return nil
	default:
		return fmt.Errorf("queue %s is full", queue)
	}
}

// Consume implements Consumer.
func (b *MemBroker) Consume(ctx context.Context, queue string) (<-chan Delivery, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("broker is closed")
	}
	q := b.queue(queue)
	b.mu.Unlock()

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case d, ok := <-q:
				if !ok {
					return
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Healthy implements Broker.
func (b *MemBroker) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed
}

// Close implements Broker.
func (b *MemBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, q := range b.queues {
		close(q)
	}
	return nil
}

// Acked returns how many deliveries on queue were acknowledged.
func (b *MemBroker) Acked(queue string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acked[queue]
}

// DeadLetters returns the rejected payloads for queue.
func (b *MemBroker) DeadLetters(queue string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]byte, len(b.deadLetters[queue]))
	copy(out, b.deadLetters[queue])
	return out
}

// Pending returns the number of undelivered messages in queue.
func (b *MemBroker) Pending(queue string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue(queue))
}
