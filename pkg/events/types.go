// Package events delivers pipeline state changes to WebSocket clients.
//
// Publishers write an envelope row to the events table and pg_notify the
// factforge_events channel in the same transaction, so the NOTIFY fires only
// for committed events. Every replica runs a NotifyListener holding one
// dedicated LISTEN connection; received frames are handed to the local
// ConnectionManager, which routes them by target (all, a user id, or a role)
// and honors per-connection event-type subscription filters. Delivery is
// best-effort: a failed or slow send drops only the affected connection.
package events

import (
	"encoding/json"
	"strings"
)

// NotifyChannel is the single Postgres NOTIFY channel all replicas listen on.
const NotifyChannel = "factforge_events"

// Event types published by the pipeline. The family prefix decides the
// default audience: crawler:* and ingest:* go to everyone, review:* to the
// reviewer role, admin:* to the admin role, and check:* to the requesting
// user when known.
const (
	EventCrawlerTriggered = "crawler:triggered"

	EventIngestStarted   = "ingest:started"
	EventIngestCompleted = "ingest:completed"

	EventReviewQueued = "review:queued"
	EventReviewAction = "review:action"

	EventCheckCompleted = "check:completed"

	EventLLMSwitched    = "admin:llm_switched"
	EventModelActivated = "admin:model_activated"
	EventAdminAlert     = "admin:alert"
)

// Roles referenced by event routing.
const (
	RoleUser     = "user"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// Target selects the audience of an event: every connection, one user's
// connections, or every connection authenticated with a role.
type Target string

// TargetAll delivers to every active connection.
const TargetAll = Target("all")

// UserTarget delivers to all connections of one user.
func UserTarget(userID string) Target {
	return Target("user:" + userID)
}

// RoleTarget delivers to all connections holding a role.
func RoleTarget(role string) Target {
	return Target("role:" + role)
}

// Matches reports whether a connection with the given identity is in this
// target's audience. Role targets match the exact role only; broadening
// (admins seeing reviewer traffic) is the publisher's choice, not routing's.
func (t Target) Matches(userID, role string) bool {
	switch {
	case t == TargetAll || t == "":
		return true
	case strings.HasPrefix(string(t), "user:"):
		return userID != "" && userID == strings.TrimPrefix(string(t), "user:")
	case strings.HasPrefix(string(t), "role:"):
		return role == strings.TrimPrefix(string(t), "role:")
	default:
		return false
	}
}

// Envelope is the wire shape delivered to WebSocket clients.
type Envelope struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// wireFrame is the NOTIFY transport wrapper. The envelope rides inside it
// untouched; ID and Target never reach clients.
type wireFrame struct {
	ID     int64           `json:"id"`
	Target Target          `json:"target"`
	Event  json.RawMessage `json:"event"`
}

// ClientMessage is a client-to-server WebSocket frame. Type is "ping" or
// "subscribe"; EventTypes carries subscription prefixes ("review:",
// "check:completed").
type ClientMessage struct {
	Type       string   `json:"type"`
	EventTypes []string `json:"event_types,omitempty"`
}
