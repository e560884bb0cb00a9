package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// NotifyListener holds one replica's dedicated LISTEN connection and feeds
// received frames to the local ConnectionManager. The receive loop is the
// only goroutine that touches the pgx connection; reconnects re-issue LISTEN
// before resuming, so at most the events during the outage are missed.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager
	logger     *slog.Logger

	connMu sync.Mutex
	conn   *pgx.Conn

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener for the factforge_events channel.
func NewNotifyListener(connString string, manager *ConnectionManager, logger *slog.Logger) *NotifyListener {
	if manager == nil {
		panic("events.NewNotifyListener: manager must not be nil")
	}
	if logger == nil {
		panic("events.NewNotifyListener: logger must not be nil")
	}
	return &NotifyListener{connString: connString, manager: manager, logger: logger}
}

// Start connects, issues LISTEN, and launches the receive loop. LISTEN
// completes before Start returns, so no event committed afterwards is lost.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s: %w", NotifyChannel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	l.logger.Info("event listener started", "channel", NotifyChannel)
	return nil
}

// Stop signals the receive loop to exit, waits for it, then closes the
// LISTEN connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("notify receive failed", "error", err)
			l.reconnect(ctx)
			continue
		}
		l.dispatch([]byte(notification.Payload))
	}
}

// dispatch unwraps one NOTIFY frame and hands the envelope to the manager.
func (l *NotifyListener) dispatch(payload []byte) {
	var frame wireFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		l.logger.Warn("dropping malformed notify frame", "error", err)
		return
	}
	l.manager.Dispatch(frame.Target, frame.Event)
}

// reconnect re-establishes the LISTEN connection with exponential backoff.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	l.connMu.Unlock()

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			l.logger.Error("event listener reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
			_ = conn.Close(ctx)
			l.logger.Error("re-LISTEN failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.connMu.Lock()
		l.conn = conn
		l.connMu.Unlock()
		l.logger.Info("event listener reconnected")
		return
	}
}
