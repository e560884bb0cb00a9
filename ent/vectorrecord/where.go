// Code generated by ent, DO NOT EDIT.

package vectorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/factforge/factforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContainsFold(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldDocID, v))
}

// EmbeddingID applies equality check predicate on the "embedding_id" field. It's identical to EmbeddingIDEQ.
func EmbeddingID(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldEmbeddingID, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldExternalID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContainsFold(FieldDocID, v))
}

// EmbeddingIDEQ applies the EQ predicate on the "embedding_id" field.
func EmbeddingIDEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldEmbeddingID, v))
}

// EmbeddingIDNEQ applies the NEQ predicate on the "embedding_id" field.
func EmbeddingIDNEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNEQ(FieldEmbeddingID, v))
}

// EmbeddingIDIn applies the In predicate on the "embedding_id" field.
func EmbeddingIDIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIn(FieldEmbeddingID, vs...))
}

// EmbeddingIDNotIn applies the NotIn predicate on the "embedding_id" field.
func EmbeddingIDNotIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotIn(FieldEmbeddingID, vs...))
}

// EmbeddingIDGT applies the GT predicate on the "embedding_id" field.
func EmbeddingIDGT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGT(FieldEmbeddingID, v))
}

// EmbeddingIDGTE applies the GTE predicate on the "embedding_id" field.
func EmbeddingIDGTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGTE(FieldEmbeddingID, v))
}

// EmbeddingIDLT applies the LT predicate on the "embedding_id" field.
func EmbeddingIDLT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLT(FieldEmbeddingID, v))
}

// EmbeddingIDLTE applies the LTE predicate on the "embedding_id" field.
func EmbeddingIDLTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLTE(FieldEmbeddingID, v))
}

// EmbeddingIDContains applies the Contains predicate on the "embedding_id" field.
func EmbeddingIDContains(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContains(FieldEmbeddingID, v))
}

// EmbeddingIDHasPrefix applies the HasPrefix predicate on the "embedding_id" field.
func EmbeddingIDHasPrefix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasPrefix(FieldEmbeddingID, v))
}

// EmbeddingIDHasSuffix applies the HasSuffix predicate on the "embedding_id" field.
func EmbeddingIDHasSuffix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasSuffix(FieldEmbeddingID, v))
}

// EmbeddingIDEqualFold applies the EqualFold predicate on the "embedding_id" field.
func EmbeddingIDEqualFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEqualFold(FieldEmbeddingID, v))
}

// EmbeddingIDContainsFold applies the ContainsFold predicate on the "embedding_id" field.
func EmbeddingIDContainsFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContainsFold(FieldEmbeddingID, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldContainsFold(FieldExternalID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VectorRecord {
	return predicate.VectorRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDoc applies the HasEdge predicate on the "doc" edge.
func HasDoc() predicate.VectorRecord {
	return predicate.VectorRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocTable, DocColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocWith applies the HasEdge predicate on the "doc" edge with a given conditions (other predicates).
func HasDocWith(preds ...predicate.CrawledItem) predicate.VectorRecord {
	return predicate.VectorRecord(func(s *sql.Selector) {
		step := newDocStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VectorRecord) predicate.VectorRecord {
	return predicate.VectorRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VectorRecord) predicate.VectorRecord {
	return predicate.VectorRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VectorRecord) predicate.VectorRecord {
	return predicate.VectorRecord(sql.NotPredicates(p))
}
