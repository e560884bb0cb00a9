package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// DefaultWriteTimeout bounds one WebSocket send; a client slower than this
// is dropped rather than allowed to stall the fan-out.
const DefaultWriteTimeout = 5 * time.Second

// Connection is one WebSocket client with its routing identity. UserID may
// be empty (anonymous); Role defaults to user.
type Connection struct {
	ID     string
	UserID string
	Role   string

	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	// filters is written by the connection's read loop and read by the
	// dispatch goroutine.
	mu      sync.RWMutex
	filters []string
}

// wantsEvent reports whether the subscription filters admit an event type.
// No filters means everything the target routing already allows.
func (c *Connection) wantsEvent(eventType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.filters) == 0 {
		return true
	}
	for _, f := range c.filters {
		if f == "*" || f == eventType || strings.HasPrefix(eventType, f) {
			return true
		}
	}
	return false
}

// setFilters replaces the subscription filters. An empty list clears them.
func (c *Connection) setFilters(eventTypes []string) {
	c.mu.Lock()
	c.filters = append([]string(nil), eventTypes...)
	c.mu.Unlock()
}

// ConnectionManager tracks this replica's WebSocket connections and fans
// envelopes out to the ones each event targets.
type ConnectionManager struct {
	logger       *slog.Logger
	writeTimeout time.Duration

	mu          sync.RWMutex
	connections map[string]*Connection
}

// NewConnectionManager creates a manager. writeTimeout <= 0 selects
// DefaultWriteTimeout.
func NewConnectionManager(logger *slog.Logger, writeTimeout time.Duration) *ConnectionManager {
	if logger == nil {
		panic("events.NewConnectionManager: logger must not be nil")
	}
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &ConnectionManager{
		logger:       logger,
		writeTimeout: writeTimeout,
		connections:  make(map[string]*Connection),
	}
}

// HandleConnection runs one client's read loop until the socket closes or
// parentCtx is canceled. Inbound frames follow the ClientMessage protocol:
// ping is answered with pong, subscribe installs event-type filters and is
// acknowledged with subscription_confirmed, anything else gets an error
// frame.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, userID, role string) {
	if role == "" {
		role = RoleUser
	}
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:     uuid.New().String(),
		UserID: userID,
		Role:   role,
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.register(c)
	defer m.unregister(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.sendJSON(c, map[string]any{
				"type":      "error",
				"message":   "invalid JSON message",
				"timestamp": formatTimestamp(time.Now()),
			})
			continue
		}
		m.handleClientMessage(c, &msg)
	}
}

func (m *ConnectionManager) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Type {
	case "ping":
		m.sendJSON(c, map[string]any{
			"type":      "pong",
			"timestamp": formatTimestamp(time.Now()),
		})
	case "subscribe":
		c.setFilters(msg.EventTypes)
		m.sendJSON(c, map[string]any{
			"type":        "subscription_confirmed",
			"event_types": msg.EventTypes,
			"timestamp":   formatTimestamp(time.Now()),
		})
	default:
		m.sendJSON(c, map[string]any{
			"type":      "error",
			"message":   "unknown message type: " + msg.Type,
			"timestamp": formatTimestamp(time.Now()),
		})
	}
}

// Dispatch routes one envelope to every connection the target covers whose
// filters admit the event type. A failed send drops only that connection.
func (m *ConnectionManager) Dispatch(target Target, envelope []byte) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(envelope, &head); err != nil {
		m.logger.Warn("dropping malformed event envelope", "error", err)
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		if target.Matches(c.UserID, c.Role) && c.wantsEvent(head.Type) {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		if err := m.sendRaw(c, envelope); err != nil {
			m.logger.Warn("dropping websocket client after failed send",
				"connection_id", c.ID, "event_type", head.Type, "error", err)
			c.cancel()
		}
	}
}

// ActiveConnections returns the number of connections on this replica.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// CloseAll disconnects every client. Called during shutdown before the HTTP
// server drains, so long-lived read loops do not hold Shutdown open.
func (m *ConnectionManager) CloseAll() {
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	for _, c := range conns {
		c.cancel()
	}
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
	m.logger.Debug("websocket connected",
		"connection_id", c.ID, "user_id", c.UserID, "role", c.Role)
}

func (m *ConnectionManager) unregister(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
	m.logger.Debug("websocket disconnected", "connection_id", c.ID)
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("marshal websocket message failed",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		m.logger.Warn("websocket send failed, dropping client",
			"connection_id", c.ID, "error", err)
		c.cancel()
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
