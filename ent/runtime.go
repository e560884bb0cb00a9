// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/factforge/factforge/ent/auditrecord"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/schema"
	"github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescCreatedAt is the schema descriptor for created_at field.
	auditrecordDescCreatedAt := auditrecordFields[4].Descriptor()
	// auditrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditrecord.DefaultCreatedAt = auditrecordDescCreatedAt.Default.(func() time.Time)
	crawleditemFields := schema.CrawledItem{}.Fields()
	_ = crawleditemFields
	// crawleditemDescCleanText is the schema descriptor for clean_text field.
	crawleditemDescCleanText := crawleditemFields[5].Descriptor()
	// crawleditem.DefaultCleanText holds the default value on creation for the clean_text field.
	crawleditem.DefaultCleanText = crawleditemDescCleanText.Default.(string)
	// crawleditemDescLangConfidence is the schema descriptor for lang_confidence field.
	crawleditemDescLangConfidence := crawleditemFields[7].Descriptor()
	// crawleditem.DefaultLangConfidence holds the default value on creation for the lang_confidence field.
	crawleditem.DefaultLangConfidence = crawleditemDescLangConfidence.Default.(float64)
	// crawleditemDescTranslit is the schema descriptor for translit field.
	crawleditemDescTranslit := crawleditemFields[8].Descriptor()
	// crawleditem.DefaultTranslit holds the default value on creation for the translit field.
	crawleditem.DefaultTranslit = crawleditemDescTranslit.Default.(bool)
	// crawleditemDescHeuristicScore is the schema descriptor for heuristic_score field.
	crawleditemDescHeuristicScore := crawleditemFields[9].Descriptor()
	// crawleditem.DefaultHeuristicScore holds the default value on creation for the heuristic_score field.
	crawleditem.DefaultHeuristicScore = crawleditemDescHeuristicScore.Default.(float64)
	// crawleditemDescIngestedAt is the schema descriptor for ingested_at field.
	crawleditemDescIngestedAt := crawleditemFields[15].Descriptor()
	// crawleditem.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	crawleditem.DefaultIngestedAt = crawleditemDescIngestedAt.Default.(func() time.Time)
	modelversionFields := schema.ModelVersion{}.Fields()
	_ = modelversionFields
	// modelversionDescIsActive is the schema descriptor for is_active field.
	modelversionDescIsActive := modelversionFields[6].Descriptor()
	// modelversion.DefaultIsActive holds the default value on creation for the is_active field.
	modelversion.DefaultIsActive = modelversionDescIsActive.Default.(bool)
	// modelversionDescCreatedAt is the schema descriptor for created_at field.
	modelversionDescCreatedAt := modelversionFields[7].Descriptor()
	// modelversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelversion.DefaultCreatedAt = modelversionDescCreatedAt.Default.(func() time.Time)
	reviewentryFields := schema.ReviewEntry{}.Fields()
	_ = reviewentryFields
	// reviewentryDescPriority is the schema descriptor for priority field.
	reviewentryDescPriority := reviewentryFields[4].Descriptor()
	// reviewentry.DefaultPriority holds the default value on creation for the priority field.
	reviewentry.DefaultPriority = reviewentryDescPriority.Default.(int)
	// reviewentryDescCreatedAt is the schema descriptor for created_at field.
	reviewentryDescCreatedAt := reviewentryFields[6].Descriptor()
	// reviewentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewentry.DefaultCreatedAt = reviewentryDescCreatedAt.Default.(func() time.Time)
	// reviewentryDescUpdatedAt is the schema descriptor for updated_at field.
	reviewentryDescUpdatedAt := reviewentryFields[7].Descriptor()
	// reviewentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewentry.DefaultUpdatedAt = reviewentryDescUpdatedAt.Default.(func() time.Time)
	// reviewentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewentry.UpdateDefaultUpdatedAt = reviewentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescVerified is the schema descriptor for verified field.
	userDescVerified := userFields[4].Descriptor()
	// user.DefaultVerified holds the default value on creation for the verified field.
	user.DefaultVerified = userDescVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	vectorrecordFields := schema.VectorRecord{}.Fields()
	_ = vectorrecordFields
	// vectorrecordDescCreatedAt is the schema descriptor for created_at field.
	vectorrecordDescCreatedAt := vectorrecordFields[5].Descriptor()
	// vectorrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	vectorrecord.DefaultCreatedAt = vectorrecordDescCreatedAt.Default.(func() time.Time)
}
