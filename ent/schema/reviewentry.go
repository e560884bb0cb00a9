package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEntry holds the schema definition for the ReviewEntry entity: one
// document awaiting (or past) human judgment.
//
// Status lifecycle:
//
//	pending → in_review → {approved, rejected, escalated}
//	pending → escalated
//
// Transitions out of pending are guarded by conditional updates so only the
// first writer wins; later writers observe zero affected rows.
type ReviewEntry struct {
	ent.Schema
}

// Fields of the ReviewEntry.
func (ReviewEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("doc_id").
			Immutable(),
		field.String("assigned_to").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "in_review", "approved", "rejected", "escalated").
			Default("pending"),
		field.Int("priority").
			Default(3).
			Comment("Queue ordering: priority desc, then created_at asc"),
		field.Text("note").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ReviewEntry.
func (ReviewEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doc", CrawledItem.Type).
			Ref("review_entries").
			Field("doc_id").
			Unique().
			Required().
			Immutable(),
		edge.From("assignee", User.Type).
			Ref("assigned_reviews").
			Field("assigned_to").
			Unique(),
	}
}

// Indexes of the ReviewEntry.
func (ReviewEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Queue listing: filter on status, order by priority/created_at
		index.Fields("status", "priority", "created_at"),
		index.Fields("assigned_to", "status"),
		index.Fields("doc_id"),
	}
}
