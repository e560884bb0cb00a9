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
	"github.com/factforge/factforge/ent/vectorrecord"
)

// VectorRecordCreate is the builder for creating a VectorRecord entity.
type VectorRecordCreate struct {
	config
	mutation *VectorRecordMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *VectorRecordCreate) SetDocID(v string) *VectorRecordCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetEmbeddingID sets the "embedding_id" field.
func (_c *VectorRecordCreate) SetEmbeddingID(v string) *VectorRecordCreate {
	_c.mutation.SetEmbeddingID(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *VectorRecordCreate) SetExternalID(v string) *VectorRecordCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *VectorRecordCreate) SetMetadata(v map[string]interface{}) *VectorRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VectorRecordCreate) SetCreatedAt(v time.Time) *VectorRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VectorRecordCreate) SetNillableCreatedAt(v *time.Time) *VectorRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VectorRecordCreate) SetID(v string) *VectorRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDoc sets the "doc" edge to the CrawledItem entity.
func (_c *VectorRecordCreate) SetDoc(v *CrawledItem) *VectorRecordCreate {
	return _c.SetDocID(v.ID)
}

// Mutation returns the VectorRecordMutation object of the builder.
func (_c *VectorRecordCreate) Mutation() *VectorRecordMutation {
	return _c.mutation
}

// Save creates the VectorRecord in the database.
func (_c *VectorRecordCreate) Save(ctx context.Context) (*VectorRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VectorRecordCreate) SaveX(ctx context.Context) *VectorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VectorRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vectorrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VectorRecordCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "VectorRecord.doc_id"`)}
	}
	if _, ok := _c.mutation.EmbeddingID(); !ok {
		return &ValidationError{Name: "embedding_id", err: errors.New(`ent: missing required field "VectorRecord.embedding_id"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "VectorRecord.external_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VectorRecord.created_at"`)}
	}
	if len(_c.mutation.DocIDs()) == 0 {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required edge "VectorRecord.doc"`)}
	}
	return nil
}

func (_c *VectorRecordCreate) sqlSave(ctx context.Context) (*VectorRecord, error) {
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
			return nil, fmt.Errorf("unexpected VectorRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VectorRecordCreate) createSpec() (*VectorRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &VectorRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vectorrecord.Table, sqlgraph.NewFieldSpec(vectorrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EmbeddingID(); ok {
		_spec.SetField(vectorrecord.FieldEmbeddingID, field.TypeString, value)
		_node.EmbeddingID = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(vectorrecord.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(vectorrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vectorrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vectorrecord.DocTable,
			Columns: []string{vectorrecord.DocColumn},
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
	return _node, _spec
}

// VectorRecordCreateBulk is the builder for creating many VectorRecord entities in bulk.
type VectorRecordCreateBulk struct {
	config
	err      error
	builders []*VectorRecordCreate
}

// Save creates the VectorRecord entities in the database.
func (_c *VectorRecordCreateBulk) Save(ctx context.Context) ([]*VectorRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VectorRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VectorRecordMutation)
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
func (_c *VectorRecordCreateBulk) SaveX(ctx context.Context) []*VectorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
