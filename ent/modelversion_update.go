// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/ent/predicate"
)

// ModelVersionUpdate is the builder for updating ModelVersion entities.
type ModelVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ModelVersionMutation
}

// Where appends a list predicates to the ModelVersionUpdate builder.
func (_u *ModelVersionUpdate) Where(ps ...predicate.ModelVersion) *ModelVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ModelVersionUpdate) SetIsActive(v bool) *ModelVersionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ModelVersionUpdate) SetNillableIsActive(v *bool) *ModelVersionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ModelVersionMutation object of the builder.
func (_u *ModelVersionUpdate) Mutation() *ModelVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelversion.Table, modelversion.Columns, sqlgraph.NewFieldSpec(modelversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(modelversion.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelVersionUpdateOne is the builder for updating a single ModelVersion entity.
type ModelVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelVersionMutation
}

// SetIsActive sets the "is_active" field.
func (_u *ModelVersionUpdateOne) SetIsActive(v bool) *ModelVersionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ModelVersionUpdateOne) SetNillableIsActive(v *bool) *ModelVersionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ModelVersionMutation object of the builder.
func (_u *ModelVersionUpdateOne) Mutation() *ModelVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelVersionUpdate builder.
func (_u *ModelVersionUpdateOne) Where(ps ...predicate.ModelVersion) *ModelVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelVersionUpdateOne) Select(field string, fields ...string) *ModelVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelVersion entity.
func (_u *ModelVersionUpdateOne) Save(ctx context.Context) (*ModelVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelVersionUpdateOne) SaveX(ctx context.Context) *ModelVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelVersionUpdateOne) sqlSave(ctx context.Context) (_node *ModelVersion, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelversion.Table, modelversion.Columns, sqlgraph.NewFieldSpec(modelversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelversion.FieldID)
		for _, f := range fields {
			if !modelversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelversion.FieldID {
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
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(modelversion.FieldIsActive, field.TypeBool, value)
	}
	_node = &ModelVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
