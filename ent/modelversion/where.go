// Code generated by ent, DO NOT EDIT.

package modelversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/factforge/factforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContainsFold(FieldID, id))
}

// ClassifierVersion applies equality check predicate on the "classifier_version" field. It's identical to ClassifierVersionEQ.
func ClassifierVersion(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldClassifierVersion, v))
}

// EmbeddingModel applies equality check predicate on the "embedding_model" field. It's identical to EmbeddingModelEQ.
func EmbeddingModel(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldEmbeddingModel, v))
}

// LlmVersion applies equality check predicate on the "llm_version" field. It's identical to LlmVersionEQ.
func LlmVersion(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldLlmVersion, v))
}

// Dimension applies equality check predicate on the "dimension" field. It's identical to DimensionEQ.
func Dimension(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldDimension, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// ClassifierVersionEQ applies the EQ predicate on the "classifier_version" field.
func ClassifierVersionEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldClassifierVersion, v))
}

// ClassifierVersionNEQ applies the NEQ predicate on the "classifier_version" field.
func ClassifierVersionNEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldClassifierVersion, v))
}

// ClassifierVersionIn applies the In predicate on the "classifier_version" field.
func ClassifierVersionIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldClassifierVersion, vs...))
}

// ClassifierVersionNotIn applies the NotIn predicate on the "classifier_version" field.
func ClassifierVersionNotIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldClassifierVersion, vs...))
}

// ClassifierVersionGT applies the GT predicate on the "classifier_version" field.
func ClassifierVersionGT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldClassifierVersion, v))
}

// ClassifierVersionGTE applies the GTE predicate on the "classifier_version" field.
func ClassifierVersionGTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldClassifierVersion, v))
}

// ClassifierVersionLT applies the LT predicate on the "classifier_version" field.
func ClassifierVersionLT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldClassifierVersion, v))
}

// ClassifierVersionLTE applies the LTE predicate on the "classifier_version" field.
func ClassifierVersionLTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldClassifierVersion, v))
}

// ClassifierVersionContains applies the Contains predicate on the "classifier_version" field.
func ClassifierVersionContains(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContains(FieldClassifierVersion, v))
}

// ClassifierVersionHasPrefix applies the HasPrefix predicate on the "classifier_version" field.
func ClassifierVersionHasPrefix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasPrefix(FieldClassifierVersion, v))
}

// ClassifierVersionHasSuffix applies the HasSuffix predicate on the "classifier_version" field.
func ClassifierVersionHasSuffix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasSuffix(FieldClassifierVersion, v))
}

// ClassifierVersionEqualFold applies the EqualFold predicate on the "classifier_version" field.
func ClassifierVersionEqualFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEqualFold(FieldClassifierVersion, v))
}

// ClassifierVersionContainsFold applies the ContainsFold predicate on the "classifier_version" field.
func ClassifierVersionContainsFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContainsFold(FieldClassifierVersion, v))
}

// EmbeddingModelEQ applies the EQ predicate on the "embedding_model" field.
func EmbeddingModelEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelNEQ applies the NEQ predicate on the "embedding_model" field.
func EmbeddingModelNEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelIn applies the In predicate on the "embedding_model" field.
func EmbeddingModelIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelNotIn applies the NotIn predicate on the "embedding_model" field.
func EmbeddingModelNotIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelGT applies the GT predicate on the "embedding_model" field.
func EmbeddingModelGT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldEmbeddingModel, v))
}

// EmbeddingModelGTE applies the GTE predicate on the "embedding_model" field.
func EmbeddingModelGTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldEmbeddingModel, v))
}

// EmbeddingModelLT applies the LT predicate on the "embedding_model" field.
func EmbeddingModelLT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldEmbeddingModel, v))
}

// EmbeddingModelLTE applies the LTE predicate on the "embedding_model" field.
func EmbeddingModelLTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldEmbeddingModel, v))
}

// EmbeddingModelContains applies the Contains predicate on the "embedding_model" field.
func EmbeddingModelContains(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContains(FieldEmbeddingModel, v))
}

// EmbeddingModelHasPrefix applies the HasPrefix predicate on the "embedding_model" field.
func EmbeddingModelHasPrefix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasPrefix(FieldEmbeddingModel, v))
}

// EmbeddingModelHasSuffix applies the HasSuffix predicate on the "embedding_model" field.
func EmbeddingModelHasSuffix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasSuffix(FieldEmbeddingModel, v))
}

// EmbeddingModelEqualFold applies the EqualFold predicate on the "embedding_model" field.
func EmbeddingModelEqualFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEqualFold(FieldEmbeddingModel, v))
}

// EmbeddingModelContainsFold applies the ContainsFold predicate on the "embedding_model" field.
func EmbeddingModelContainsFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContainsFold(FieldEmbeddingModel, v))
}

// LlmVersionEQ applies the EQ predicate on the "llm_version" field.
func LlmVersionEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldLlmVersion, v))
}

// LlmVersionNEQ applies the NEQ predicate on the "llm_version" field.
func LlmVersionNEQ(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldLlmVersion, v))
}

// LlmVersionIn applies the In predicate on the "llm_version" field.
func LlmVersionIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldLlmVersion, vs...))
}

// LlmVersionNotIn applies the NotIn predicate on the "llm_version" field.
func LlmVersionNotIn(vs ...string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldLlmVersion, vs...))
}

// LlmVersionGT applies the GT predicate on the "llm_version" field.
func LlmVersionGT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldLlmVersion, v))
}

// LlmVersionGTE applies the GTE predicate on the "llm_version" field.
func LlmVersionGTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldLlmVersion, v))
}

// LlmVersionLT applies the LT predicate on the "llm_version" field.
func LlmVersionLT(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldLlmVersion, v))
}

// LlmVersionLTE applies the LTE predicate on the "llm_version" field.
func LlmVersionLTE(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldLlmVersion, v))
}

// LlmVersionContains applies the Contains predicate on the "llm_version" field.
func LlmVersionContains(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContains(FieldLlmVersion, v))
}

// LlmVersionHasPrefix applies the HasPrefix predicate on the "llm_version" field.
func LlmVersionHasPrefix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasPrefix(FieldLlmVersion, v))
}

// LlmVersionHasSuffix applies the HasSuffix predicate on the "llm_version" field.
func LlmVersionHasSuffix(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldHasSuffix(FieldLlmVersion, v))
}

// LlmVersionEqualFold applies the EqualFold predicate on the "llm_version" field.
func LlmVersionEqualFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEqualFold(FieldLlmVersion, v))
}

// LlmVersionContainsFold applies the ContainsFold predicate on the "llm_version" field.
func LlmVersionContainsFold(v string) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldContainsFold(FieldLlmVersion, v))
}

// DimensionEQ applies the EQ predicate on the "dimension" field.
func DimensionEQ(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldDimension, v))
}

// DimensionNEQ applies the NEQ predicate on the "dimension" field.
func DimensionNEQ(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldDimension, v))
}

// DimensionIn applies the In predicate on the "dimension" field.
func DimensionIn(vs ...int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldDimension, vs...))
}

// DimensionNotIn applies the NotIn predicate on the "dimension" field.
func DimensionNotIn(vs ...int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldDimension, vs...))
}

// DimensionGT applies the GT predicate on the "dimension" field.
func DimensionGT(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldDimension, v))
}

// DimensionGTE applies the GTE predicate on the "dimension" field.
func DimensionGTE(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldDimension, v))
}

// DimensionLT applies the LT predicate on the "dimension" field.
func DimensionLT(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldDimension, v))
}

// DimensionLTE applies the LTE predicate on the "dimension" field.
func DimensionLTE(v int) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldDimension, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelVersion {
	return predicate.ModelVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelVersion) predicate.ModelVersion {
	return predicate.ModelVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelVersion) predicate.ModelVersion {
	return predicate.ModelVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelVersion) predicate.ModelVersion {
	return predicate.ModelVersion(sql.NotPredicates(p))
}
