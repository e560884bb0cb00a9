// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/modelversion"
)

// ModelVersionCreate is the builder for creating a ModelVersion entity.
type ModelVersionCreate struct {
	config
	mutation *ModelVersionMutation
	hooks    []Hook
}

// SetClassifierVersion sets the "classifier_version" field.
func (_c *ModelVersionCreate) SetClassifierVersion(v string) *ModelVersionCreate {
	_c.mutation.SetClassifierVersion(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *ModelVersionCreate) SetEmbeddingModel(v string) *ModelVersionCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetLlmVersion sets the "llm_version" field.
func (_c *ModelVersionCreate) SetLlmVersion(v string) *ModelVersionCreate {
	_c.mutation.SetLlmVersion(v)
	return _c
}

// SetDimension sets the "dimension" field.
func (_c *ModelVersionCreate) SetDimension(v int) *ModelVersionCreate {
	_c.mutation.SetDimension(v)
	return _c
}

// SetThresholds sets the "thresholds" field.
func (_c *ModelVersionCreate) SetThresholds(v map[string]float64) *ModelVersionCreate {
	_c.mutation.SetThresholds(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ModelVersionCreate) SetIsActive(v bool) *ModelVersionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ModelVersionCreate) SetNillableIsActive(v *bool) *ModelVersionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelVersionCreate) SetCreatedAt(v time.Time) *ModelVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelVersionCreate) SetNillableCreatedAt(v *time.Time) *ModelVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelVersionCreate) SetID(v string) *ModelVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelVersionMutation object of the builder.
func (_c *ModelVersionCreate) Mutation() *ModelVersionMutation {
	return _c.mutation
}

// Save creates the ModelVersion in the database.
func (_c *ModelVersionCreate) Save(ctx context.Context) (*ModelVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelVersionCreate) SaveX(ctx context.Context) *ModelVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelVersionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := modelversion.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelVersionCreate) check() error {
	if _, ok := _c.mutation.ClassifierVersion(); !ok {
		return &ValidationError{Name: "classifier_version", err: errors.New(`ent: missing required field "ModelVersion.classifier_version"`)}
	}
	if _, ok := _c.mutation.EmbeddingModel(); !ok {
		return &ValidationError{Name: "embedding_model", err: errors.New(`ent: missing required field "ModelVersion.embedding_model"`)}
	}
	if _, ok := _c.mutation.LlmVersion(); !ok {
		return &ValidationError{Name: "llm_version", err: errors.New(`ent: missing required field "ModelVersion.llm_version"`)}
	}
	if _, ok := _c.mutation.Dimension(); !ok {
		return &ValidationError{Name: "dimension", err: errors.New(`ent: missing required field "ModelVersion.dimension"`)}
	}
	if _, ok := _c.mutation.Thresholds(); !ok {
		return &ValidationError{Name: "thresholds", err: errors.New(`ent: missing required field "ModelVersion.thresholds"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ModelVersion.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelVersion.created_at"`)}
	}
	return nil
}

func (_c *ModelVersionCreate) sqlSave(ctx context.Context) (*ModelVersion, error) {
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
			return nil, fmt.Errorf("unexpected ModelVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelVersionCreate) createSpec() (*ModelVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelversion.Table, sqlgraph.NewFieldSpec(modelversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClassifierVersion(); ok {
		_spec.SetField(modelversion.FieldClassifierVersion, field.TypeString, value)
		_node.ClassifierVersion = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(modelversion.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = value
	}
	if value, ok := _c.mutation.LlmVersion(); ok {
		_spec.SetField(modelversion.FieldLlmVersion, field.TypeString, value)
		_node.LlmVersion = value
	}
	if value, ok := _c.mutation.Dimension(); ok {
		_spec.SetField(modelversion.FieldDimension, field.TypeInt, value)
		_node.Dimension = value
	}
	if value, ok := _c.mutation.Thresholds(); ok {
		_spec.SetField(modelversion.FieldThresholds, field.TypeJSON, value)
		_node.Thresholds = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(modelversion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ModelVersionCreateBulk is the builder for creating many ModelVersion entities in bulk.
type ModelVersionCreateBulk struct {
	config
	err      error
	builders []*ModelVersionCreate
}

// Save creates the ModelVersion entities in the database.
func (_c *ModelVersionCreateBulk) Save(ctx context.Context) ([]*ModelVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelVersionMutation)
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
func (_c *ModelVersionCreateBulk) SaveX(ctx context.Context) []*ModelVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
