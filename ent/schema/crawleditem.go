package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CrawledItem holds the schema definition for the CrawledItem entity: the
// canonical unit of ingested content. Created by the enrichment stage,
// relabeled by classification and by reviewer actions, never deleted by the
// pipeline.
type CrawledItem struct {
	ent.Schema
}

// Fields of the CrawledItem.
func (CrawledItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("url").
			Unique().
			Comment("Canonical URL; re-enrichment replaces contents in place"),
		field.String("domain"),
		field.String("raw_html_path").
			Optional().
			Nillable().
			Comment("Path under the storage root, named by MD5 of the URL"),
		field.String("screenshot_path").
			Optional().
			Nillable(),
		field.Text("clean_text").
			Default(""),
		field.Enum("language").
			Values("hi", "ta", "kn", "en").
			Default("en"),
		field.Float("lang_confidence").
			Default(0).
			Comment("Detector confidence in [0,1]"),
		field.Bool("translit").
			Default(false).
			Comment("Romanized Hindi markers found in English-detected text"),
		field.Float("heuristic_score").
			Default(0).
			Comment("Rule-based fraud signal in [0,100]"),
		field.Float("classifier_score").
			Optional().
			Nillable().
			Comment("Learned scam probability in [0,1]; nil until classified"),
		field.Enum("label").
			Values("pending", "benign", "scam", "needs_review").
			Default("pending"),
		field.JSON("image_hashes", []string{}).
			Optional().
			Comment("Perceptual hashes of the screenshot: average, perception, difference, wavelet"),
		field.JSON("whois_data", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("ingested_at").
			Default(time.Now),
	}
}

// Edges of the CrawledItem.
func (CrawledItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("vector_record", VectorRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("review_entries", ReviewEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CrawledItem.
func (CrawledItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("label"),
		index.Fields("domain"),
		index.Fields("ingested_at"),
	}
}
