// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// CrawledItemUpdate is the builder for updating CrawledItem entities.
type CrawledItemUpdate struct {
	config
	hooks    []Hook
	mutation *CrawledItemMutation
}

// Where appends a list predicates to the CrawledItemUpdate builder.
func (_u *CrawledItemUpdate) Where(ps ...predicate.CrawledItem) *CrawledItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *CrawledItemUpdate) SetURL(v string) *CrawledItemUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableURL(v *string) *CrawledItemUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CrawledItemUpdate) SetDomain(v string) *CrawledItemUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableDomain(v *string) *CrawledItemUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetRawHTMLPath sets the "raw_html_path" field.
func (_u *CrawledItemUpdate) SetRawHTMLPath(v string) *CrawledItemUpdate {
	_u.mutation.SetRawHTMLPath(v)
	return _u
}

// SetNillableRawHTMLPath sets the "raw_html_path" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableRawHTMLPath(v *string) *CrawledItemUpdate {
	if v != nil {
		_u.SetRawHTMLPath(*v)
	}
	return _u
}

// ClearRawHTMLPath clears the value of the "raw_html_path" field.
func (_u *CrawledItemUpdate) ClearRawHTMLPath() *CrawledItemUpdate {
	_u.mutation.ClearRawHTMLPath()
	return _u
}

// SetScreenshotPath sets the "screenshot_path" field.
func (_u *CrawledItemUpdate) SetScreenshotPath(v string) *CrawledItemUpdate {
	_u.mutation.SetScreenshotPath(v)
	return _u
}

// SetNillableScreenshotPath sets the "screenshot_path" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableScreenshotPath(v *string) *CrawledItemUpdate {
	if v != nil {
		_u.SetScreenshotPath(*v)
	}
	return _u
}

// ClearScreenshotPath clears the value of the "screenshot_path" field.
func (_u *CrawledItemUpdate) ClearScreenshotPath() *CrawledItemUpdate {
	_u.mutation.ClearScreenshotPath()
	return _u
}

// SetCleanText sets the "clean_text" field.
func (_u *CrawledItemUpdate) SetCleanText(v string) *CrawledItemUpdate {
	_u.mutation.SetCleanText(v)
	return _u
}

// SetNillableCleanText sets the "clean_text" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableCleanText(v *string) *CrawledItemUpdate {
	if v != nil {
		_u.SetCleanText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CrawledItemUpdate) SetLanguage(v crawleditem.Language) *CrawledItemUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableLanguage(v *crawleditem.Language) *CrawledItemUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLangConfidence sets the "lang_confidence" field.
func (_u *CrawledItemUpdate) SetLangConfidence(v float64) *CrawledItemUpdate {
	_u.mutation.ResetLangConfidence()
	_u.mutation.SetLangConfidence(v)
	return _u
}

// SetNillableLangConfidence sets the "lang_confidence" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableLangConfidence(v *float64) *CrawledItemUpdate {
	if v != nil {
		_u.SetLangConfidence(*v)
	}
	return _u
}

// AddLangConfidence adds value to the "lang_confidence" field.
func (_u *CrawledItemUpdate) AddLangConfidence(v float64) *CrawledItemUpdate {
	_u.mutation.AddLangConfidence(v)
	return _u
}

// SetTranslit sets the "translit" field.
func (_u *CrawledItemUpdate) SetTranslit(v bool) *CrawledItemUpdate {
	_u.mutation.SetTranslit(v)
	return _u
}

// SetNillableTranslit sets the "translit" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableTranslit(v *bool) *CrawledItemUpdate {
	if v != nil {
		_u.SetTranslit(*v)
	}
	return _u
}

// SetHeuristicScore sets the "heuristic_score" field.
func (_u *CrawledItemUpdate) SetHeuristicScore(v float64) *CrawledItemUpdate {
	_u.mutation.ResetHeuristicScore()
	_u.mutation.SetHeuristicScore(v)
	return _u
}

// SetNillableHeuristicScore sets the "heuristic_score" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableHeuristicScore(v *float64) *CrawledItemUpdate {
	if v != nil {
		_u.SetHeuristicScore(*v)
	}
	return _u
}

// AddHeuristicScore adds value to the "heuristic_score" field.
func (_u *CrawledItemUpdate) AddHeuristicScore(v float64) *CrawledItemUpdate {
	_u.mutation.AddHeuristicScore(v)
	return _u
}

// SetClassifierScore sets the "classifier_score" field.
func (_u *CrawledItemUpdate) SetClassifierScore(v float64) *CrawledItemUpdate {
	_u.mutation.ResetClassifierScore()
	_u.mutation.SetClassifierScore(v)
	return _u
}

// SetNillableClassifierScore sets the "classifier_score" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableClassifierScore(v *float64) *CrawledItemUpdate {
	if v != nil {
		_u.SetClassifierScore(*v)
	}
	return _u
}

// AddClassifierScore adds value to the "classifier_score" field.
func (_u *CrawledItemUpdate) AddClassifierScore(v float64) *CrawledItemUpdate {
	_u.mutation.AddClassifierScore(v)
	return _u
}

// ClearClassifierScore clears the value of the "classifier_score" field.
func (_u *CrawledItemUpdate) ClearClassifierScore() *CrawledItemUpdate {
	_u.mutation.ClearClassifierScore()
	return _u
}

// SetLabel sets the "label" field.
func (_u *CrawledItemUpdate) SetLabel(v crawleditem.Label) *CrawledItemUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableLabel(v *crawleditem.Label) *CrawledItemUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetImageHashes sets the "image_hashes" field.
func (_u *CrawledItemUpdate) SetImageHashes(v []string) *CrawledItemUpdate {
	_u.mutation.SetImageHashes(v)
	return _u
}

// AppendImageHashes appends value to the "image_hashes" field.
func (_u *CrawledItemUpdate) AppendImageHashes(v []string) *CrawledItemUpdate {
	_u.mutation.AppendImageHashes(v)
	return _u
}

// ClearImageHashes clears the value of the "image_hashes" field.
func (_u *CrawledItemUpdate) ClearImageHashes() *CrawledItemUpdate {
	_u.mutation.ClearImageHashes()
	return _u
}

// SetWhoisData sets the "whois_data" field.
func (_u *CrawledItemUpdate) SetWhoisData(v map[string]interface{}) *CrawledItemUpdate {
	_u.mutation.SetWhoisData(v)
	return _u
}

// ClearWhoisData clears the value of the "whois_data" field.
func (_u *CrawledItemUpdate) ClearWhoisData() *CrawledItemUpdate {
	_u.mutation.ClearWhoisData()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CrawledItemUpdate) SetMetadata(v map[string]interface{}) *CrawledItemUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CrawledItemUpdate) ClearMetadata() *CrawledItemUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *CrawledItemUpdate) SetIngestedAt(v time.Time) *CrawledItemUpdate {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableIngestedAt(v *time.Time) *CrawledItemUpdate {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// SetVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID.
func (_u *CrawledItemUpdate) SetVectorRecordID(id string) *CrawledItemUpdate {
	_u.mutation.SetVectorRecordID(id)
	return _u
}

// SetNillableVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID if the given value is not nil.
func (_u *CrawledItemUpdate) SetNillableVectorRecordID(id *string) *CrawledItemUpdate {
	if id != nil {
		_u = _u.SetVectorRecordID(*id)
	}
	return _u
}

// SetVectorRecord sets the "vector_record" edge to the VectorRecord entity.
func (_u *CrawledItemUpdate) SetVectorRecord(v *VectorRecord) *CrawledItemUpdate {
	return _u.SetVectorRecordID(v.ID)
}

// AddReviewEntryIDs adds the "review_entries" edge to the ReviewEntry entity by IDs.
func (_u *CrawledItemUpdate) AddReviewEntryIDs(ids ...string) *CrawledItemUpdate {
	_u.mutation.AddReviewEntryIDs(ids...)
	return _u
}

// AddReviewEntries adds the "review_entries" edges to the ReviewEntry entity.
func (_u *CrawledItemUpdate) AddReviewEntries(v ...*ReviewEntry) *CrawledItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEntryIDs(ids...)
}

// Mutation returns the CrawledItemMutation object of the builder.
func (_u *CrawledItemUpdate) Mutation() *CrawledItemMutation {
	return _u.mutation
}

// ClearVectorRecord clears the "vector_record" edge to the VectorRecord entity.
func (_u *CrawledItemUpdate) ClearVectorRecord() *CrawledItemUpdate {
	_u.mutation.ClearVectorRecord()
	return _u
}

// ClearReviewEntries clears all "review_entries" edges to the ReviewEntry entity.
func (_u *CrawledItemUpdate) ClearReviewEntries() *CrawledItemUpdate {
	_u.mutation.ClearReviewEntries()
	return _u
}

// RemoveReviewEntryIDs removes the "review_entries" edge to ReviewEntry entities by IDs.
func (_u *CrawledItemUpdate) RemoveReviewEntryIDs(ids ...string) *CrawledItemUpdate {
	_u.mutation.RemoveReviewEntryIDs(ids...)
	return _u
}

// RemoveReviewEntries removes "review_entries" edges to ReviewEntry entities.
func (_u *CrawledItemUpdate) RemoveReviewEntries(v ...*ReviewEntry) *CrawledItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CrawledItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CrawledItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CrawledItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CrawledItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CrawledItemUpdate) check() error {
	if v, ok := _u.mutation.Language(); ok {
		if err := crawleditem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := crawleditem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.label": %w`, err)}
		}
	}
	return nil
}

func (_u *CrawledItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crawleditem.Table, crawleditem.Columns, sqlgraph.NewFieldSpec(crawleditem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(crawleditem.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(crawleditem.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawHTMLPath(); ok {
		_spec.SetField(crawleditem.FieldRawHTMLPath, field.TypeString, value)
	}
	if _u.mutation.RawHTMLPathCleared() {
		_spec.ClearField(crawleditem.FieldRawHTMLPath, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenshotPath(); ok {
		_spec.SetField(crawleditem.FieldScreenshotPath, field.TypeString, value)
	}
	if _u.mutation.ScreenshotPathCleared() {
		_spec.ClearField(crawleditem.FieldScreenshotPath, field.TypeString)
	}
	if value, ok := _u.mutation.CleanText(); ok {
		_spec.SetField(crawleditem.FieldCleanText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(crawleditem.FieldLanguage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LangConfidence(); ok {
		_spec.SetField(crawleditem.FieldLangConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLangConfidence(); ok {
		_spec.AddField(crawleditem.FieldLangConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Translit(); ok {
		_spec.SetField(crawleditem.FieldTranslit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HeuristicScore(); ok {
		_spec.SetField(crawleditem.FieldHeuristicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeuristicScore(); ok {
		_spec.AddField(crawleditem.FieldHeuristicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClassifierScore(); ok {
		_spec.SetField(crawleditem.FieldClassifierScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassifierScore(); ok {
		_spec.AddField(crawleditem.FieldClassifierScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClassifierScoreCleared() {
		_spec.ClearField(crawleditem.FieldClassifierScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(crawleditem.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageHashes(); ok {
		_spec.SetField(crawleditem.FieldImageHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crawleditem.FieldImageHashes, value)
		})
	}
	if _u.mutation.ImageHashesCleared() {
		_spec.ClearField(crawleditem.FieldImageHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.WhoisData(); ok {
		_spec.SetField(crawleditem.FieldWhoisData, field.TypeJSON, value)
	}
	if _u.mutation.WhoisDataCleared() {
		_spec.ClearField(crawleditem.FieldWhoisData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(crawleditem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(crawleditem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(crawleditem.FieldIngestedAt, field.TypeTime, value)
	}
	if _u.mutation.VectorRecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VectorRecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEntriesIDs(); len(nodes) > 0 && !_u.mutation.ReviewEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crawleditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CrawledItemUpdateOne is the builder for updating a single CrawledItem entity.
type CrawledItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CrawledItemMutation
}

// SetURL sets the "url" field.
func (_u *CrawledItemUpdateOne) SetURL(v string) *CrawledItemUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableURL(v *string) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CrawledItemUpdateOne) SetDomain(v string) *CrawledItemUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableDomain(v *string) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetRawHTMLPath sets the "raw_html_path" field.
func (_u *CrawledItemUpdateOne) SetRawHTMLPath(v string) *CrawledItemUpdateOne {
	_u.mutation.SetRawHTMLPath(v)
	return _u
}

// SetNillableRawHTMLPath sets the "raw_html_path" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableRawHTMLPath(v *string) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetRawHTMLPath(*v)
	}
	return _u
}

// ClearRawHTMLPath clears the value of the "raw_html_path" field.
func (_u *CrawledItemUpdateOne) ClearRawHTMLPath() *CrawledItemUpdateOne {
	_u.mutation.ClearRawHTMLPath()
	return _u
}

// SetScreenshotPath sets the "screenshot_path" field.
func (_u *CrawledItemUpdateOne) SetScreenshotPath(v string) *CrawledItemUpdateOne {
	_u.mutation.SetScreenshotPath(v)
	return _u
}

// SetNillableScreenshotPath sets the "screenshot_path" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableScreenshotPath(v *string) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetScreenshotPath(*v)
	}
	return _u
}

// ClearScreenshotPath clears the value of the "screenshot_path" field.
func (_u *CrawledItemUpdateOne) ClearScreenshotPath() *CrawledItemUpdateOne {
	_u.mutation.ClearScreenshotPath()
	return _u
}

// SetCleanText sets the "clean_text" field.
func (_u *CrawledItemUpdateOne) SetCleanText(v string) *CrawledItemUpdateOne {
	_u.mutation.SetCleanText(v)
	return _u
}

// SetNillableCleanText sets the "clean_text" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableCleanText(v *string) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetCleanText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CrawledItemUpdateOne) SetLanguage(v crawleditem.Language) *CrawledItemUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableLanguage(v *crawleditem.Language) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLangConfidence sets the "lang_confidence" field.
func (_u *CrawledItemUpdateOne) SetLangConfidence(v float64) *CrawledItemUpdateOne {
	_u.mutation.ResetLangConfidence()
	_u.mutation.SetLangConfidence(v)
	return _u
}

// SetNillableLangConfidence sets the "lang_confidence" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableLangConfidence(v *float64) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetLangConfidence(*v)
	}
	return _u
}

// AddLangConfidence adds value to the "lang_confidence" field.
func (_u *CrawledItemUpdateOne) AddLangConfidence(v float64) *CrawledItemUpdateOne {
	_u.mutation.AddLangConfidence(v)
	return _u
}

// SetTranslit sets the "translit" field.
func (_u *CrawledItemUpdateOne) SetTranslit(v bool) *CrawledItemUpdateOne {
	_u.mutation.SetTranslit(v)
	return _u
}

// SetNillableTranslit sets the "translit" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableTranslit(v *bool) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetTranslit(*v)
	}
	return _u
}

// SetHeuristicScore sets the "heuristic_score" field.
func (_u *CrawledItemUpdateOne) SetHeuristicScore(v float64) *CrawledItemUpdateOne {
	_u.mutation.ResetHeuristicScore()
	_u.mutation.SetHeuristicScore(v)
	return _u
}

// SetNillableHeuristicScore sets the "heuristic_score" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableHeuristicScore(v *float64) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetHeuristicScore(*v)
	}
	return _u
}

// AddHeuristicScore adds value to the "heuristic_score" field.
func (_u *CrawledItemUpdateOne) AddHeuristicScore(v float64) *CrawledItemUpdateOne {
	_u.mutation.AddHeuristicScore(v)
	return _u
}

// SetClassifierScore sets the "classifier_score" field.
func (_u *CrawledItemUpdateOne) SetClassifierScore(v float64) *CrawledItemUpdateOne {
	_u.mutation.ResetClassifierScore()
	_u.mutation.SetClassifierScore(v)
	return _u
}

// SetNillableClassifierScore sets the "classifier_score" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableClassifierScore(v *float64) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetClassifierScore(*v)
	}
	return _u
}

// AddClassifierScore adds value to the "classifier_score" field.
func (_u *CrawledItemUpdateOne) AddClassifierScore(v float64) *CrawledItemUpdateOne {
	_u.mutation.AddClassifierScore(v)
	return _u
}

// ClearClassifierScore clears the value of the "classifier_score" field.
func (_u *CrawledItemUpdateOne) ClearClassifierScore() *CrawledItemUpdateOne {
	_u.mutation.ClearClassifierScore()
	return _u
}

// SetLabel sets the "label" field.
func (_u *CrawledItemUpdateOne) SetLabel(v crawleditem.Label) *CrawledItemUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableLabel(v *crawleditem.Label) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetImageHashes sets the "image_hashes" field.
func (_u *CrawledItemUpdateOne) SetImageHashes(v []string) *CrawledItemUpdateOne {
	_u.mutation.SetImageHashes(v)
	return _u
}

// AppendImageHashes appends value to the "image_hashes" field.
func (_u *CrawledItemUpdateOne) AppendImageHashes(v []string) *CrawledItemUpdateOne {
	_u.mutation.AppendImageHashes(v)
	return _u
}

// ClearImageHashes clears the value of the "image_hashes" field.
func (_u *CrawledItemUpdateOne) ClearImageHashes() *CrawledItemUpdateOne {
	_u.mutation.ClearImageHashes()
	return _u
}

// SetWhoisData sets the "whois_data" field.
func (_u *CrawledItemUpdateOne) SetWhoisData(v map[string]interface{}) *CrawledItemUpdateOne {
	_u.mutation.SetWhoisData(v)
	return _u
}

// ClearWhoisData clears the value of the "whois_data" field.
func (_u *CrawledItemUpdateOne) ClearWhoisData() *CrawledItemUpdateOne {
	_u.mutation.ClearWhoisData()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CrawledItemUpdateOne) SetMetadata(v map[string]interface{}) *CrawledItemUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CrawledItemUpdateOne) ClearMetadata() *CrawledItemUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *CrawledItemUpdateOne) SetIngestedAt(v time.Time) *CrawledItemUpdateOne {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableIngestedAt(v *time.Time) *CrawledItemUpdateOne {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// SetVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID.
func (_u *CrawledItemUpdateOne) SetVectorRecordID(id string) *CrawledItemUpdateOne {
	_u.mutation.SetVectorRecordID(id)
	return _u
}

// SetNillableVectorRecordID sets the "vector_record" edge to the VectorRecord entity by ID if the given value is not nil.
func (_u *CrawledItemUpdateOne) SetNillableVectorRecordID(id *string) *CrawledItemUpdateOne {
	if id != nil {
		_u = _u.SetVectorRecordID(*id)
	}
	return _u
}

// SetVectorRecord sets the "vector_record" edge to the VectorRecord entity.
func (_u *CrawledItemUpdateOne) SetVectorRecord(v *VectorRecord) *CrawledItemUpdateOne {
	return _u.SetVectorRecordID(v.ID)
}

// AddReviewEntryIDs adds the "review_entries" edge to the ReviewEntry entity by IDs.
func (_u *CrawledItemUpdateOne) AddReviewEntryIDs(ids ...string) *CrawledItemUpdateOne {
	_u.mutation.AddReviewEntryIDs(ids...)
	return _u
}

// AddReviewEntries adds the "review_entries" edges to the ReviewEntry entity.
func (_u *CrawledItemUpdateOne) AddReviewEntries(v ...*ReviewEntry) *CrawledItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEntryIDs(ids...)
}

// Mutation returns the CrawledItemMutation object of the builder.
func (_u *CrawledItemUpdateOne) Mutation() *CrawledItemMutation {
	return _u.mutation
}

// ClearVectorRecord clears the "vector_record" edge to the VectorRecord entity.
func (_u *CrawledItemUpdateOne) ClearVectorRecord() *CrawledItemUpdateOne {
	_u.mutation.ClearVectorRecord()
	return _u
}

// ClearReviewEntries clears all "review_entries" edges to the ReviewEntry entity.
func (_u *CrawledItemUpdateOne) ClearReviewEntries() *CrawledItemUpdateOne {
	_u.mutation.ClearReviewEntries()
	return _u
}

// RemoveReviewEntryIDs removes the "review_entries" edge to ReviewEntry entities by IDs.
func (_u *CrawledItemUpdateOne) RemoveReviewEntryIDs(ids ...string) *CrawledItemUpdateOne {
	_u.mutation.RemoveReviewEntryIDs(ids...)
	return _u
}

// RemoveReviewEntries removes "review_entries" edges to ReviewEntry entities.
func (_u *CrawledItemUpdateOne) RemoveReviewEntries(v ...*ReviewEntry) *CrawledItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEntryIDs(ids...)
}

// Where appends a list predicates to the CrawledItemUpdate builder.
func (_u *CrawledItemUpdateOne) Where(ps ...predicate.CrawledItem) *CrawledItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CrawledItemUpdateOne) Select(field string, fields ...string) *CrawledItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CrawledItem entity.
func (_u *CrawledItemUpdateOne) Save(ctx context.Context) (*CrawledItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CrawledItemUpdateOne) SaveX(ctx context.Context) *CrawledItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CrawledItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CrawledItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CrawledItemUpdateOne) check() error {
	if v, ok := _u.mutation.Language(); ok {
		if err := crawleditem.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := crawleditem.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "CrawledItem.label": %w`, err)}
		}
	}
	return nil
}

func (_u *CrawledItemUpdateOne) sqlSave(ctx context.Context) (_node *CrawledItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crawleditem.Table, crawleditem.Columns, sqlgraph.NewFieldSpec(crawleditem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CrawledItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crawleditem.FieldID)
		for _, f := range fields {
			if !crawleditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crawleditem.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(crawleditem.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(crawleditem.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawHTMLPath(); ok {
		_spec.SetField(crawleditem.FieldRawHTMLPath, field.TypeString, value)
	}
	if _u.mutation.RawHTMLPathCleared() {
		_spec.ClearField(crawleditem.FieldRawHTMLPath, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenshotPath(); ok {
		_spec.SetField(crawleditem.FieldScreenshotPath, field.TypeString, value)
	}
	if _u.mutation.ScreenshotPathCleared() {
		_spec.ClearField(crawleditem.FieldScreenshotPath, field.TypeString)
	}
	if value, ok := _u.mutation.CleanText(); ok {
		_spec.SetField(crawleditem.FieldCleanText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(crawleditem.FieldLanguage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LangConfidence(); ok {
		_spec.SetField(crawleditem.FieldLangConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLangConfidence(); ok {
		_spec.AddField(crawleditem.FieldLangConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Translit(); ok {
		_spec.SetField(crawleditem.FieldTranslit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HeuristicScore(); ok {
		_spec.SetField(crawleditem.FieldHeuristicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeuristicScore(); ok {
		_spec.AddField(crawleditem.FieldHeuristicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClassifierScore(); ok {
		_spec.SetField(crawleditem.FieldClassifierScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassifierScore(); ok {
		_spec.AddField(crawleditem.FieldClassifierScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClassifierScoreCleared() {
		_spec.ClearField(crawleditem.FieldClassifierScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(crawleditem.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageHashes(); ok {
		_spec.SetField(crawleditem.FieldImageHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crawleditem.FieldImageHashes, value)
		})
	}
	if _u.mutation.ImageHashesCleared() {
		_spec.ClearField(crawleditem.FieldImageHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.WhoisData(); ok {
		_spec.SetField(crawleditem.FieldWhoisData, field.TypeJSON, value)
	}
	if _u.mutation.WhoisDataCleared() {
		_spec.ClearField(crawleditem.FieldWhoisData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(crawleditem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(crawleditem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(crawleditem.FieldIngestedAt, field.TypeTime, value)
	}
	if _u.mutation.VectorRecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VectorRecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEntriesIDs(); len(nodes) > 0 && !_u.mutation.ReviewEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CrawledItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crawleditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
