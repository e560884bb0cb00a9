// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// VectorRecordUpdate is the builder for updating VectorRecord entities.
type VectorRecordUpdate struct {
	config
	hooks    []Hook
	mutation *VectorRecordMutation
}

// Where appends a list predicates to the VectorRecordUpdate builder.
func (_u *VectorRecordUpdate) Where(ps ...predicate.VectorRecord) *VectorRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmbeddingID sets the "embedding_id" field.
func (_u *VectorRecordUpdate) SetEmbeddingID(v string) *VectorRecordUpdate {
	_u.mutation.SetEmbeddingID(v)
	return _u
}

// SetNillableEmbeddingID sets the "embedding_id" field if the given value is not nil.
func (_u *VectorRecordUpdate) SetNillableEmbeddingID(v *string) *VectorRecordUpdate {
	if v != nil {
		_u.SetEmbeddingID(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *VectorRecordUpdate) SetExternalID(v string) *VectorRecordUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *VectorRecordUpdate) SetNillableExternalID(v *string) *VectorRecordUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *VectorRecordUpdate) SetMetadata(v map[string]interface{}) *VectorRecordUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *VectorRecordUpdate) ClearMetadata() *VectorRecordUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the VectorRecordMutation object of the builder.
func (_u *VectorRecordUpdate) Mutation() *VectorRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VectorRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VectorRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorRecordUpdate) check() error {
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VectorRecord.doc"`)
	}
	return nil
}

func (_u *VectorRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectorrecord.Table, vectorrecord.Columns, sqlgraph.NewFieldSpec(vectorrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmbeddingID(); ok {
		_spec.SetField(vectorrecord.FieldEmbeddingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(vectorrecord.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(vectorrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(vectorrecord.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VectorRecordUpdateOne is the builder for updating a single VectorRecord entity.
type VectorRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VectorRecordMutation
}

// SetEmbeddingID sets the "embedding_id" field.
func (_u *VectorRecordUpdateOne) SetEmbeddingID(v string) *VectorRecordUpdateOne {
	_u.mutation.SetEmbeddingID(v)
	return _u
}

// SetNillableEmbeddingID sets the "embedding_id" field if the given value is not nil.
func (_u *VectorRecordUpdateOne) SetNillableEmbeddingID(v *string) *VectorRecordUpdateOne {
	if v != nil {
		_u.SetEmbeddingID(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *VectorRecordUpdateOne) SetExternalID(v string) *VectorRecordUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *VectorRecordUpdateOne) SetNillableExternalID(v *string) *VectorRecordUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *VectorRecordUpdateOne) SetMetadata(v map[string]interface{}) *VectorRecordUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *VectorRecordUpdateOne) ClearMetadata() *VectorRecordUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the VectorRecordMutation object of the builder.
func (_u *VectorRecordUpdateOne) Mutation() *VectorRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the VectorRecordUpdate builder.
func (_u *VectorRecordUpdateOne) Where(ps ...predicate.VectorRecord) *VectorRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VectorRecordUpdateOne) Select(field string, fields ...string) *VectorRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VectorRecord entity.
func (_u *VectorRecordUpdateOne) Save(ctx context.Context) (*VectorRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorRecordUpdateOne) SaveX(ctx context.Context) *VectorRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VectorRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorRecordUpdateOne) check() error {
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VectorRecord.doc"`)
	}
	return nil
}

func (_u *VectorRecordUpdateOne) sqlSave(ctx context.Context) (_node *VectorRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectorrecord.Table, vectorrecord.Columns, sqlgraph.NewFieldSpec(vectorrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VectorRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vectorrecord.FieldID)
		for _, f := range fields {
			if !vectorrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vectorrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmbeddingID(); ok {
		_spec.SetField(vectorrecord.FieldEmbeddingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(vectorrecord.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(vectorrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(vectorrecord.FieldMetadata, field.TypeJSON)
	}
	_node = &VectorRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
