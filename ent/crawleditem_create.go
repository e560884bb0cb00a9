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
	"github.com/factforge/factforge/ent/vectorrecord"
)

// CrawledItemCreate is the builder for creating a CrawledItem entity.
type CrawledItemCreate struct {
	config
	mutation *CrawledItemMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *CrawledItemCreate) SetURL(v string) *CrawledItemCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *CrawledItemCreate) SetDomain(v string) *CrawledItemCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetRawHTMLPath sets the "raw_html_path" field.
func (_c *CrawledItemCreate) SetRawHTMLPath(v string) *CrawledItemCreate {
	_c.mutation.SetRawHTMLPath(v)
	return _c
}

// SetNillableRawHTMLPath sets the "raw_html_path" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableRawHTMLPath(v *string) *CrawledItemCreate {
	if v != nil {
		_c.SetRawHTMLPath(*v)
	}
	return _c
}

// SetScreenshotPath sets the "screenshot_path" field.
func (_c *CrawledItemCreate) SetScreenshotPath(v string) *CrawledItemCreate {
	_c.mutation.SetScreenshotPath(v)
	return _c
}

// SetNillableScreenshotPath sets the "screenshot_path" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableScreenshotPath(v *string) *CrawledItemCreate {
	if v != nil {
		_c.SetScreenshotPath(*v)
	}
	return _c
}

// SetCleanText sets the "clean_text" field.
func (_c *CrawledItemCreate) SetCleanText(v string) *CrawledItemCreate {
	_c.mutation.SetCleanText(v)
	return _c
}

// SetNillableCleanText sets the "clean_text" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableCleanText(v *string) *CrawledItemCreate {
	if v != nil {
		_c.SetCleanText(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CrawledItemCreate) SetLanguage(v crawleditem.Language) *CrawledItemCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableLanguage(v *crawleditem.Language) *CrawledItemCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetLangConfidence sets the "lang_confidence" field.
func (_c *CrawledItemCreate) SetLangConfidence(v float64) *CrawledItemCreate {
	_c.mutation.SetLangConfidence(v)
	return _c
}

// SetNillableLangConfidence sets the "lang_confidence" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableLangConfidence(v *float64) *CrawledItemCreate {
	if v != nil {
		_c.SetLangConfidence(*v)
	}
	return _c
}

// SetTranslit sets the "translit" field.
func (_c *CrawledItemCreate) SetTranslit(v bool) *CrawledItemCreate {
	_c.mutation.SetTranslit(v)
	return _c
}

// SetNillableTranslit sets the "translit" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableTranslit(v *bool) *CrawledItemCreate {
	if v != nil {
		_c.SetTranslit(*v)
	}
	return _c
}

// SetHeuristicScore sets the "heuristic_score" field.
func (_c *CrawledItemCreate) SetHeuristicScore(v float64) *CrawledItemCreate {
	_c.mutation.SetHeuristicScore(v)
	return _c
}

// SetNillableHeuristicScore sets the "heuristic_score" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableHeuristicScore(v *float64) *CrawledItemCreate {
	if v != nil {
		_c.SetHeuristicScore(*v)
	}
	return _c
}

// SetClassifierScore sets the "classifier_score" field.
func (_c *CrawledItemCreate) SetClassifierScore(v float64) *CrawledItemCreate {
	_c.mutation.SetClassifierScore(v)
	return _c
}

// SetNillableClassifierScore sets the "classifier_score" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableClassifierScore(v *float64) *CrawledItemCreate {
	if v != nil {
		_c.SetClassifierScore(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *CrawledItemCreate) SetLabel(v crawleditem.Label) *CrawledItemCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableLabel(v *crawleditem.Label) *CrawledItemCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetImageHashes sets the "image_hashes" field.
func (_c *CrawledItemCreate) SetImageHashes(v []string) *CrawledItemCreate {
	_c.mutation.SetImageHashes(v)
	return _c
}

// SetWhoisData sets the "whois_data" field.
func (_c *CrawledItemCreate) SetWhoisData(v map[string]interface{}) *CrawledItemCreate {
	_c.mutation.SetWhoisData(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CrawledItemCreate) SetMetadata(v map[string]interface{}) *CrawledItemCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *CrawledItemCreate) SetIngestedAt(v time.Time) *CrawledItemCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableIngestedAt(v *time.Time) *CrawledItemCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CrawledItemCreate) SetID(v string) *CrawledItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID.
func (_c *CrawledItemCreate) SetVectorRecordID(id string) *CrawledItemCreate {
	_c.mutation.SetVectorRecordID(id)
	return _c
}

// SetNillableVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID if the given value is not nil.
func (_c *CrawledItemCreate) SetNillableVectorRecordID(id *string) *CrawledItemCreate {
	if id != nil {
		_c = _c.SetVectorRecordID(*id)
	}
	return _c
}

// SetVectorRecord sets the "vector_record" edge to the VectorRecord entity.
func (_c *CrawledItemCreate) SetVectorRecord(v *VectorRecord) *CrawledItemCreate {
	return _c.SetVectorRecordID(v.ID)
}

// AddReviewEntryIDs adds the "review_entries" edge to the ReviewEntry entity by IDs.
func (_c *CrawledItemCreate) AddReviewEntryIDs(ids ...string) *CrawledItemCreate {
	_c.mutation.AddReviewEntryIDs(ids...)
	return _c
}

// AddReviewEntries adds the "review_entries" edges to the ReviewEntry entity.
func (_c *CrawledItemCreate) AddReviewEntries(v ...*ReviewEntry) *CrawledItemCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewEntryIDs(ids...)
}

// Mutation returns the CrawledItemMutation object of the builder.
func (_c *CrawledItemCreate) Mutation() *CrawledItemMutation {
	return _c.mutation
}

// Save creates the CrawledItem in the database.
func (_c *CrawledItemCreate) Save(ctx context.Context) (*CrawledItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CrawledItemCreate) SaveX(ctx context.Context) *CrawledItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrawledItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrawledItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CrawledItemCreate) defaults() {
	if _, ok := _c.mutation.CleanText(); !ok {
		v := crawleditem.DefaultCleanText
		_c.mutation.SetCleanText(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := crawleditem.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.LangConfidence(); !ok {
		v := crawleditem.DefaultLangConfidence
		_c.mutation.SetLangConfidence(v)
	}
	if _, ok := _c.mutation.Translit(); !ok {
		v := crawleditem.DefaultTranslit
		_c.mutation.SetTranslit(v)
	}
	if _, ok := _c.mutation.HeuristicScore(); !ok {
		v := crawleditem.DefaultHeuristicScore
		_c.mutation.SetHeuristicScore(v)
	}
	if _, ok := _c.mutation.Label(); !ok {
		v := crawleditem.DefaultLabel
		_c.mutation.SetLabel(v)
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := crawleditem.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CrawledItemCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "CrawledItem.url"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "CrawledItem.domain"`)}
	}
	if _, ok := _c.mutation.CleanText(); !ok {
		return &ValidationError{Name: "clean_text", err: errors.New(`ent: missing required field "CrawledItem.clean_text"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CrawledItem.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := crawleditem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LangConfidence(); !ok {
		return &ValidationError{Name: "lang_confidence", err: errors.New(`ent: missing required field "CrawledItem.lang_confidence"`)}
	}
	if _, ok := _c.mutation.Translit(); !ok {
		return &ValidationError{Name: "translit", err: errors.New(`ent: missing required field "CrawledItem.translit"`)}
	}
	if _, ok := _c.mutation.HeuristicScore(); !ok {
		return &ValidationError{Name: "heuristic_score", err: errors.New(`ent: missing required field "CrawledItem.heuristic_score"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "CrawledItem.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := crawleditem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "CrawledItem.ingested_at"`)}
	}
	return nil
}

func (_c *CrawledItemCreate) sqlSave(ctx context.Context) (*CrawledItem, error) {
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
			return nil, fmt.Errorf("unexpected CrawledItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CrawledItemCreate) createSpec() (*CrawledItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CrawledItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crawleditem.Table, sqlgraph.NewFieldSpec(crawleditem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(crawleditem.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(crawleditem.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.RawHTMLPath(); ok {
		_spec.SetField(crawleditem.FieldRawHTMLPath, field.TypeString, value)
		_node.RawHTMLPath = &value
	}
	if value, ok := _c.mutation.ScreenshotPath(); ok {
		_spec.SetField(crawleditem.FieldScreenshotPath, field.TypeString, value)
		_node.ScreenshotPath = &value
	}
	if value, ok := _c.mutation.CleanText(); ok {
		_spec.SetField(crawleditem.FieldCleanText, field.TypeString, value)
		_node.CleanText = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(crawleditem.FieldLanguage, field.TypeEnum, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.LangConfidence(); ok {
		_spec.SetField(crawleditem.FieldLangConfidence, field.TypeFloat64, value)
		_node.LangConfidence = value
	}
	if value, ok := _c.mutation.Translit(); ok {
		_spec.SetField(crawleditem.FieldTranslit, field.TypeBool, value)
		_node.Translit = value
	}
	if value, ok := _c.mutation.HeuristicScore(); ok {
		_spec.SetField(crawleditem.FieldHeuristicScore, field.TypeFloat64, value)
		_node.HeuristicScore = value
	}
	if value, ok := _c.mutation.ClassifierScore(); ok {
		_spec.SetField(crawleditem.FieldClassifierScore, field.TypeFloat64, value)
		_node.ClassifierScore = &value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(crawleditem.FieldLabel, field.TypeEnum, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.ImageHashes(); ok {
		_spec.SetField(crawleditem.FieldImageHashes, field.TypeJSON, value)
		_node.ImageHashes = value
	}
	if value, ok := _c.mutation.WhoisData(); ok {
		_spec.SetField(crawleditem.FieldWhoisData, field.TypeJSON, value)
		_node.WhoisData = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(crawleditem.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(crawleditem.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if nodes := _c.mutation.VectorRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   crawleditem.VectorRecordTable,
			Columns: []string{crawleditem.VectorRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vectorrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crawleditem.ReviewEntriesTable,
			Columns: []string{crawleditem.ReviewEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CrawledItemCreateBulk is the builder for creating many CrawledItem entities in bulk.
type CrawledItemCreateBulk struct {
	config
	err      error
	builders []*CrawledItemCreate
}

// Save creates the CrawledItem entities in the database.
func (_c *CrawledItemCreateBulk) Save(ctx context.Context) ([]*CrawledItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CrawledItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CrawledItemMutation)
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
func (_c *CrawledItemCreateBulk) SaveX(ctx context.Context) []*CrawledItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrawledItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrawledItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
