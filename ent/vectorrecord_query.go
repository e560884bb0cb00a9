// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// VectorRecordQuery is the builder for querying VectorRecord entities.
type VectorRecordQuery struct {
	config
	ctx        *QueryContext
	order      []vectorrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.VectorRecord
	withDoc    *CrawledItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VectorRecordQuery builder.
func (_q *VectorRecordQuery) Where(ps ...predicate.VectorRecord) *VectorRecordQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VectorRecordQuery) Limit(limit int) *VectorRecordQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VectorRecordQuery) Offset(offset int) *VectorRecordQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VectorRecordQuery) Unique(unique bool) *VectorRecordQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VectorRecordQuery) Order(o ...vectorrecord.OrderOption) *VectorRecordQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDoc chains the current query on the "doc" edge.
func (_q *VectorRecordQuery) QueryDoc() *CrawledItemQuery {
	query := (&CrawledItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(vectorrecord.Table, vectorrecord.FieldID, selector),
			sqlgraph.To(crawleditem.Table, crawleditem.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, vectorrecord.DocTable, vectorrecord.DocColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VectorRecord entity from the query.
// Returns a *NotFoundError when no VectorRecord was found.
func (_q *VectorRecordQuery) First(ctx context.Context) (*VectorRecord, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vectorrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VectorRecordQuery) FirstX(ctx context.Context) *VectorRecord {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VectorRecord ID from the query.
// Returns a *NotFoundError when no VectorRecord ID was found.
func (_q *VectorRecordQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vectorrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VectorRecordQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VectorRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VectorRecord entity is found.
// Returns a *NotFoundError when no VectorRecord entities are found.
func (_q *VectorRecordQuery) Only(ctx context.Context) (*VectorRecord, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vectorrecord.Label}
	default:
		return nil, &NotSingularError{vectorrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VectorRecordQuery) OnlyX(ctx context.Context) *VectorRecord {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VectorRecord ID in the query.
// Returns a *NotSingularError when more than one VectorRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VectorRecordQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vectorrecord.Label}
	default:
		err = &NotSingularError{vectorrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VectorRecordQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VectorRecords.
func (_q *VectorRecordQuery) All(ctx context.Context) ([]*VectorRecord, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VectorRecord, *VectorRecordQuery]()
	return withInterceptors[[]*VectorRecord](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VectorRecordQuery) AllX(ctx context.Context) []*VectorRecord {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VectorRecord IDs.
func (_q *VectorRecordQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(vectorrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VectorRecordQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VectorRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VectorRecordQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VectorRecordQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VectorRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VectorRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VectorRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VectorRecordQuery) Clone() *VectorRecordQuery {
	if _q == nil {
		return nil
	}
	return &VectorRecordQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]vectorrecord.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.VectorRecord{}, _q.predicates...),
		withDoc:    _q.withDoc.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDoc tells the query-builder to eager-load the nodes that are connected to
// the "doc" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VectorRecordQuery) WithDoc(opts ...func(*CrawledItemQuery)) *VectorRecordQuery {
	query := (&CrawledItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoc = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocID string `json:"doc_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VectorRecord.Query().
//		GroupBy(vectorrecord.FieldDocID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VectorRecordQuery) GroupBy(field string, fields ...string) *VectorRecordGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VectorRecordGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = vectorrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocID string `json:"doc_id,omitempty"`
//	}
//
//	client.VectorRecord.Query().
//		Select(vectorrecord.FieldDocID).
//		Scan(ctx, &v)
func (_q *VectorRecordQuery) Select(fields ...string) *VectorRecordSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VectorRecordSelect{VectorRecordQuery: _q}
	sbuild.label = vectorrecord.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VectorRecordSelect configured with the given aggregations.
func (_q *VectorRecordQuery) Aggregate(fns ...AggregateFunc) *VectorRecordSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VectorRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !vectorrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VectorRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VectorRecord, error) {
	var (
		nodes       = []*VectorRecord{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withDoc != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VectorRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VectorRecord{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDoc; query != nil {
		if err := _q.loadDoc(ctx, query, nodes, nil,
			func(n *VectorRecord, e *CrawledItem) { n.Edges.Doc = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VectorRecordQuery) loadDoc(ctx context.Context, query *CrawledItemQuery, nodes []*VectorRecord, init func(*VectorRecord), assign func(*VectorRecord, *CrawledItem)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*VectorRecord)
	for i := range nodes {
		fk := nodes[i].DocID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(crawleditem.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "doc_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *VectorRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VectorRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vectorrecord.Table, vectorrecord.Columns, sqlgraph.NewFieldSpec(vectorrecord.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vectorrecord.FieldID)
		for i := range fields {
			if fields[i] != vectorrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDoc != nil {
			_spec.Node.AddColumnOnce(vectorrecord.FieldDocID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VectorRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(vectorrecord.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = vectorrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VectorRecordGroupBy is the group-by builder for VectorRecord entities.
type VectorRecordGroupBy struct {
	selector
	build *VectorRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VectorRecordGroupBy) Aggregate(fns ...AggregateFunc) *VectorRecordGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VectorRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VectorRecordQuery, *VectorRecordGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VectorRecordGroupBy) sqlScan(ctx context.Context, root *VectorRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VectorRecordSelect is the builder for selecting fields of VectorRecord entities.
type VectorRecordSelect struct {
	*VectorRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VectorRecordSelect) Aggregate(fns ...AggregateFunc) *VectorRecordSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VectorRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VectorRecordQuery, *VectorRecordSelect](ctx, _s.VectorRecordQuery, _s, _s.inters, v)
}

func (_s *VectorRecordSelect) sqlScan(ctx context.Context, root *VectorRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
