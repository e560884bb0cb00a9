package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditRecord holds the schema definition for the AuditRecord entity: one
// append-only, HMAC-signed event. Rows are written once and never updated;
// the signature covers the canonical JSON form of the payload.
type AuditRecord struct {
	ent.Schema
}

// Fields of the AuditRecord.
func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.String("signature").
			Immutable().
			Comment("hex(HMAC-SHA256(key, canonical JSON of payload))"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditRecord.
func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "created_at"),
		index.Fields("created_at"),
	}
}
