// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/user"
)

// ReviewEntryUpdate is the builder for updating ReviewEntry entities.
type ReviewEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdate) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *ReviewEntryUpdate) SetAssignedTo(v string) *ReviewEntryUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableAssignedTo(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *ReviewEntryUpdate) ClearAssignedTo() *ReviewEntryUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewEntryUpdate) SetStatus(v reviewentry.Status) *ReviewEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableStatus(v *reviewentry.Status) *ReviewEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReviewEntryUpdate) SetPriority(v int) *ReviewEntryUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillablePriority(v *int) *ReviewEntryUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ReviewEntryUpdate) AddPriority(v int) *ReviewEntryUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *ReviewEntryUpdate) SetNote(v string) *ReviewEntryUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableNote(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ReviewEntryUpdate) ClearNote() *ReviewEntryUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewEntryUpdate) SetUpdatedAt(v time.Time) *ReviewEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_u *ReviewEntryUpdate) SetAssigneeID(id string) *ReviewEntryUpdate {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableAssigneeID(id *string) *ReviewEntryUpdate {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_u *ReviewEntryUpdate) SetAssignee(v *User) *ReviewEntryUpdate {
	return _u.SetAssigneeID(v.ID)
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdate) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (_u *ReviewEntryUpdate) ClearAssignee() *ReviewEntryUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.status": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEntry.doc"`)
	}
	return nil
}

func (_u *ReviewEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(reviewentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(reviewentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(reviewentry.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(reviewentry.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEntryUpdateOne is the builder for updating a single ReviewEntry entity.
type ReviewEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *ReviewEntryUpdateOne) SetAssignedTo(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableAssignedTo(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *ReviewEntryUpdateOne) ClearAssignedTo() *ReviewEntryUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewEntryUpdateOne) SetStatus(v reviewentry.Status) *ReviewEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableStatus(v *reviewentry.Status) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReviewEntryUpdateOne) SetPriority(v int) *ReviewEntryUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillablePriority(v *int) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ReviewEntryUpdateOne) AddPriority(v int) *ReviewEntryUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *ReviewEntryUpdateOne) SetNote(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableNote(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ReviewEntryUpdateOne) ClearNote() *ReviewEntryUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewEntryUpdateOne) SetUpdatedAt(v time.Time) *ReviewEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (_u *ReviewEntryUpdateOne) SetAssigneeID(id string) *ReviewEntryUpdateOne {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableAssigneeID(id *string) *ReviewEntryUpdateOne {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the User entity.
func (_u *ReviewEntryUpdateOne) SetAssignee(v *User) *ReviewEntryUpdateOne {
	return _u.SetAssigneeID(v.ID)
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdateOne) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (_u *ReviewEntryUpdateOne) ClearAssignee() *ReviewEntryUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdateOne) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEntryUpdateOne) Select(field string, fields ...string) *ReviewEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEntry entity.
func (_u *ReviewEntryUpdateOne) Save(ctx context.Context) (*ReviewEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) SaveX(ctx context.Context) *ReviewEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.status": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEntry.doc"`)
	}
	return nil
}

func (_u *ReviewEntryUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewentry.FieldID)
		for _, f := range fields {
			if !reviewentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewentry.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(reviewentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(reviewentry.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(reviewentry.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(reviewentry.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReviewEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
