package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelVersion holds the schema definition for the ModelVersion entity: the
// classifier/embedding/LLM bundle plus per-language routing thresholds.
// Activating a new bundle deactivates the previous one in the same
// transaction; rows form an activation history and are never edited in
// place. A partial unique index (raw SQL, see pkg/database) enforces at most
// one active row.
type ModelVersion struct {
	ent.Schema
}

// Fields of the ModelVersion.
func (ModelVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("classifier_version").
			Immutable(),
		field.String("embedding_model").
			Immutable(),
		field.String("llm_version").
			Immutable(),
		field.Int("dimension").
			Immutable().
			Comment("Embedding dimension; fixed for the life of the bundle"),
		field.JSON("thresholds", map[string]float64{}).
			Immutable().
			Comment("Per-language auto-label thresholds in [0,1], keyed hi/ta/kn/en"),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ModelVersion.
func (ModelVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("created_at"),
	}
}
