// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/user"
)

// ReviewEntryCreate is the builder for creating a ReviewEntry entity.
type ReviewEntryCreate struct {
	config
	mutation *ReviewEntryMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *ReviewEntryCreate) SetDocID(v string) *ReviewEntryCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *ReviewEntryCreate) SetAssignedTo(v string) *ReviewEntryCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableAssignedTo(v *string) *ReviewEntryCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewEntryCreate) SetStatus(v reviewentry.Status) *ReviewEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableStatus(v *reviewentry.Status) *ReviewEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ReviewEntryCreate) SetPriority(v int) *ReviewEntryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillablePriority(v *int) *ReviewEntryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ReviewEntryCreate) SetNote(v string) *ReviewEntryCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableNote(v *string) *ReviewEntryCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewEntryCreate) SetCreatedAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableCreatedAt(v *time.Time) *ReviewEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewEntryCreate) SetUpdatedAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableUpdatedAt(v *time.Time) *ReviewEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewEntryCreate) SetID(v string) *ReviewEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDoc sets the "doc" edge to the CrawledItem entity.
func (_c *ReviewEntryCreate) SetDoc(v *CrawledItem) *ReviewEntryCreate {
	return _c.SetDocID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_c *ReviewEntryCreate) SetAssigneeID(id string) *ReviewEntryCreate {
	_c.mutation.SetAssigneeID(id)
	return _c
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableAssigneeID(id *string) *ReviewEntryCreate {
	if id != nil {
		_c = _c.SetAssigneeID(*id)
	}
	return _c
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_c *ReviewEntryCreate) SetAssignee(v *User) *ReviewEntryCreate {
	return _c.SetAssigneeID(v.ID)
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_c *ReviewEntryCreate) Mutation() *ReviewEntryMutation {
	return _c.mutation
}

// Save creates the ReviewEntry in the database.
func (_c *ReviewEntryCreate) Save(ctx context.Context) (*ReviewEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEntryCreate) SaveX(ctx context.Context) *ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reviewentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := reviewentry.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEntryCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "ReviewEntry.doc_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reviewentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ReviewEntry.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewEntry.updated_at"`)}
	}
	if len(_c.mutation.DocIDs()) == 0 {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required edge "ReviewEntry.doc"`)}
	}
	return nil
}

func (_c *ReviewEntryCreate) sqlSave(ctx context.Context) (*ReviewEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ReviewEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewEntryCreate) createSpec() (*ReviewEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewentry.Table, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(reviewentry.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(reviewentry.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewentry.DocTable,
			Columns: []string{reviewentry.DocColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crawleditem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewentry.AssigneeTable,
			Columns: []string{reviewentry.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignedTo = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewEntryCreateBulk is the builder for creating many ReviewEntry entities in bulk.
type ReviewEntryCreateBulk struct {
	config
	err      error
	builders []*ReviewEntryCreate
}

// Save creates the ReviewEntry entities in the database.
func (_c *ReviewEntryCreateBulk) Save(ctx context.Context) ([]*ReviewEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewEntryCreateBulk) SaveX(ctx context.Context) []*ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
