package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity. Authentication lives
// in the fronting gateway; this table records identity, role, and review
// assignment ownership.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("username").
			Unique(),
		field.String("email").
			Optional(),
		field.Enum("role").
			Values("user", "reviewer", "admin").
			Default("user"),
		field.Bool("verified").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assigned_reviews", ReviewEntry.Type),
	}
}
