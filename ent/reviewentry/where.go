// Code generated by ent, DO NOT EDIT.

package reviewentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/factforge/factforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldDocID, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldAssignedTo, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldPriority, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldDocID, v))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToContains applies the Contains predicate on the "assigned_to" field.
func AssignedToContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldAssignedTo, v))
}

// AssignedToHasPrefix applies the HasPrefix predicate on the "assigned_to" field.
func AssignedToHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldAssignedTo, v))
}

// AssignedToHasSuffix applies the HasSuffix predicate on the "assigned_to" field.
func AssignedToHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotNull(FieldAssignedTo))
}

// AssignedToEqualFold applies the EqualFold predicate on the "assigned_to" field.
func AssignedToEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldAssignedTo, v))
}

// AssignedToContainsFold applies the ContainsFold predicate on the "assigned_to" field.
func AssignedToContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldAssignedTo, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldPriority, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDoc applies the HasEdge predicate on the "doc" edge.
func HasDoc() predicate.ReviewEntry {
	return predicate.ReviewEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocTable, DocColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocWith applies the HasEdge predicate on the "doc" edge with a given conditions (other predicates).
func HasDocWith(preds ...predicate.CrawledItem) predicate.ReviewEntry {
	return predicate.ReviewEntry(func(s *sql.Selector) {
		step := newDocStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignee applies the HasEdge predicate on the "assignee" edge.
func HasAssignee() predicate.ReviewEntry {
	return predicate.ReviewEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssigneeTable, AssigneeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssigneeWith applies the HasEdge predicate on the "assignee" edge with a given conditions (other predicates).
func HasAssigneeWith(preds ...predicate.User) predicate.ReviewEntry {
	return predicate.ReviewEntry(func(s *sql.Selector) {
		step := newAssigneeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.NotPredicates(p))
}
