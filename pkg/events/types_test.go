package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetMatches(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		userID string
		role   string
		want   bool
	}{
		{name: "all matches anonymous", target: TargetAll, userID: "", role: "user", want: true},
		{name: "empty target matches everyone", target: Target(""), userID: "u1", role: "admin", want: true},
		{name: "user target matches owner", target: UserTarget("u1"), userID: "u1", role: "user", want: true},
		{name: "user target rejects other user", target: UserTarget("u1"), userID: "u2", role: "user", want: false},
		{name: "user target rejects anonymous", target: UserTarget("u1"), userID: "", role: "user", want: false},
		{name: "role target matches role", target: RoleTarget("reviewer"), userID: "u1", role: "reviewer", want: true},
		{name: "role target is exact", target: RoleTarget("reviewer"), userID: "u1", role: "admin", want: false},
		{name: "garbage target matches nothing", target: Target("everything"), userID: "u1", role: "admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Matches(tt.userID, tt.role))
		})
	}
}

func TestTargetConstructors(t *testing.T) {
	assert.Equal(t, Target("user:abc"), UserTarget("abc"))
	assert.Equal(t, Target("role:admin"), RoleTarget("admin"))
}

func TestEnvelopeWireShape(t *testing.T) {
	raw, err := json.Marshal(Envelope{
		Type:      EventCheckCompleted,
		Data:      map[string]any{"request_id": "r1", "latency_ms": 42},
		Timestamp: "2026-01-02T15:04:05Z",
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "check:completed", decoded["type"])
	assert.Equal(t, "2026-01-02T15:04:05Z", decoded["timestamp"])
	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "r1", data["request_id"])
}

func TestClientMessageDecoding(t *testing.T) {
	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(`{"type":"subscribe","event_types":["review:","check:completed"]}`), &msg))
	assert.Equal(t, "subscribe", msg.Type)
	assert.Equal(t, []string{"review:", "check:completed"}, msg.EventTypes)
}
