package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(slog.Default(), 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("websocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, r.URL.Query().Get("user_id"), r.URL.Query().Get("role"))
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server, userID, role string) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):] + "/?user_id=" + userID + "&role=" + role
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func waitForConnections(t *testing.T, manager *ConnectionManager, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == n
	}, 2*time.Second, 10*time.Millisecond)
}

func envelopeBytes(t *testing.T, eventType string, data map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(Envelope{
		Type:      eventType,
		Data:      data,
		Timestamp: formatTimestamp(time.Now()),
	})
	require.NoError(t, err)
	return raw
}

func TestConnectionManagerPingPong(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "", "")
	waitForConnections(t, manager, 1)

	writeJSON(t, conn, ClientMessage{Type: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
	assert.NotEmpty(t, msg["timestamp"])
}

func TestConnectionManagerSubscribeFilters(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "", "")
	waitForConnections(t, manager, 1)

	writeJSON(t, conn, ClientMessage{Type: "subscribe", EventTypes: []string{"review:"}})

	confirmed := readJSON(t, conn)
	assert.Equal(t, "subscription_confirmed", confirmed["type"])
	assert.Equal(t, []any{"review:"}, confirmed["event_types"])

	// The check event must be filtered out, so the first delivered frame is
	// the review one.
	manager.Dispatch(TargetAll, envelopeBytes(t, EventCheckCompleted, map[string]any{"request_id": "r1"}))
	manager.Dispatch(TargetAll, envelopeBytes(t, EventReviewQueued, map[string]any{"doc_id": "d1"}))

	msg := readJSON(t, conn)
	assert.Equal(t, EventReviewQueued, msg["type"])
	data, ok := msg["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "d1", data["doc_id"])
}

func TestConnectionManagerTargetRouting(t *testing.T) {
	manager, server := setupTestManager(t)
	reviewer := connectWS(t, server, "u1", "reviewer")
	user := connectWS(t, server, "u2", "user")
	waitForConnections(t, manager, 2)

	manager.Dispatch(RoleTarget("reviewer"), envelopeBytes(t, EventReviewQueued, nil))
	manager.Dispatch(UserTarget("u2"), envelopeBytes(t, EventCheckCompleted, nil))
	manager.Dispatch(TargetAll, envelopeBytes(t, EventIngestCompleted, nil))

	// Reviewer sees the role event then the broadcast; the user connection
	// sees its personal event then the broadcast. Neither sees the other's.
	msg := readJSON(t, reviewer)
	assert.Equal(t, EventReviewQueued, msg["type"])
	msg = readJSON(t, reviewer)
	assert.Equal(t, EventIngestCompleted, msg["type"])

	msg = readJSON(t, user)
	assert.Equal(t, EventCheckCompleted, msg["type"])
	msg = readJSON(t, user)
	assert.Equal(t, EventIngestCompleted, msg["type"])
}

func TestConnectionManagerUnknownMessageType(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "", "")
	waitForConnections(t, manager, 1)

	writeJSON(t, conn, ClientMessage{Type: "bogus"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "unknown message type")
}

func TestConnectionManagerInvalidJSON(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "", "")
	waitForConnections(t, manager, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("not json")))

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "invalid JSON message", msg["message"])
}

func TestConnectionManagerCloseAll(t *testing.T) {
	manager, server := setupTestManager(t)
	connectWS(t, server, "u1", "user")
	connectWS(t, server, "u2", "reviewer")
	waitForConnections(t, manager, 2)

	manager.CloseAll()

	waitForConnections(t, manager, 0)
}
