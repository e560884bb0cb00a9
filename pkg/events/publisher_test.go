package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFramePassthrough(t *testing.T) {
	env := Envelope{
		Type:      EventIngestCompleted,
		Data:      map[string]any{"doc_id": "d1", "label": "scam"},
		Timestamp: "2026-01-02T15:04:05Z",
	}
	envJSON, err := json.Marshal(env)
	require.NoError(t, err)

	frame, err := buildFrame(7, RoleTarget("reviewer"), env, envJSON)
	require.NoError(t, err)

	var decoded wireFrame
	require.NoError(t, json.Unmarshal([]byte(frame), &decoded))
	assert.Equal(t, int64(7), decoded.ID)
	assert.Equal(t, RoleTarget("reviewer"), decoded.Target)

	var got Envelope
	require.NoError(t, json.Unmarshal(decoded.Event, &got))
	assert.Equal(t, env.Type, got.Type)
	assert.Equal(t, "d1", got.Data["doc_id"])
}

func TestBuildFrameTruncatesOversizedPayload(t *testing.T) {
	env := Envelope{
		Type:      EventCheckCompleted,
		Data:      map[string]any{"blob": strings.Repeat("x", 10_000)},
		Timestamp: "2026-01-02T15:04:05Z",
	}
	envJSON, err := json.Marshal(env)
	require.NoError(t, err)

	frame, err := buildFrame(42, TargetAll, env, envJSON)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(frame), notifyPayloadMax)

	var decoded wireFrame
	require.NoError(t, json.Unmarshal([]byte(frame), &decoded))
	assert.Equal(t, int64(42), decoded.ID)

	var got Envelope
	require.NoError(t, json.Unmarshal(decoded.Event, &got))
	assert.Equal(t, EventCheckCompleted, got.Type)
	assert.Equal(t, env.Timestamp, got.Timestamp)
	assert.Equal(t, true, got.Data["truncated"])
	assert.Equal(t, float64(42), got.Data["event_id"])
	assert.NotContains(t, got.Data, "blob")
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Publish(ctx, EventIngestStarted, map[string]any{"url": "https://a.example"}, ""))
	require.NoError(t, rec.Publish(ctx, EventReviewQueued, map[string]any{"doc_id": "d1"}, RoleTarget("reviewer")))
	require.NoError(t, rec.Publish(ctx, EventIngestStarted, nil, TargetAll))

	all := rec.Events()
	require.Len(t, all, 3)
	assert.Equal(t, TargetAll, all[0].Target, "empty target defaults to all")

	started := rec.ByType(EventIngestStarted)
	require.Len(t, started, 2)
	assert.Equal(t, "https://a.example", started[0].Data["url"])

	queued := rec.ByType(EventReviewQueued)
	require.Len(t, queued, 1)
	assert.Equal(t, RoleTarget("reviewer"), queued[0].Target)
}
