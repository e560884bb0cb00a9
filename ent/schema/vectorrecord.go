package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VectorRecord holds the schema definition for the VectorRecord entity:
// bookkeeping that maps a document id to its handle inside the vector index.
// At most one record exists per document in the active index.
type VectorRecord struct {
	ent.Schema
}

// Fields of the VectorRecord.
func (VectorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("vector_id").
			Unique().
			Immutable(),
		field.String("doc_id").
			Unique().
			Immutable(),
		field.String("embedding_id").
			Comment("Embedding model identifier the vector was produced with"),
		field.String("external_id").
			Comment("Opaque handle into the vector index"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the VectorRecord.
func (VectorRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doc", CrawledItem.Type).
			Ref("vector_record").
			Field("doc_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the VectorRecord.
func (VectorRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("embedding_id"),
	}
}
