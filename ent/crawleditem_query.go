// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// CrawledItemQuery is the builder for querying CrawledItem entities.
type CrawledItemQuery struct {
	config
	ctx               *QueryContext
	order             []crawleditem.OrderOption
	inters            []Interceptor
	predicates        []predicate.CrawledItem
	withVectorRecord  *VectorRecordQuery
	withReviewEntries *ReviewEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CrawledItemQuery builder.
func (_q *CrawledItemQuery) Where(ps ...predicate.CrawledItem) *CrawledItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CrawledItemQuery) Limit(limit int) *CrawledItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CrawledItemQuery) Offset(offset int) *CrawledItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CrawledItemQuery) Unique(unique bool) *CrawledItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CrawledItemQuery) Order(o ...crawleditem.OrderOption) *CrawledItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVectorRecord chains the current query on the "vector_record" edge.
func (_q *CrawledItemQuery) QueryVectorRecord() *VectorRecordQuery {
	query := (&VectorRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crawleditem.Table, crawleditem.FieldID, selector),
			sqlgraph.To(vectorrecord.Table, vectorrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, crawleditem.VectorRecordTable, crawleditem.VectorRecordColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReviewEntries chains the current query on the "review_entries" edge.
func (_q *CrawledItemQuery) QueryReviewEntries() *ReviewEntryQuery {
	query := (&ReviewEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crawleditem.Table, crawleditem.FieldID, selector),
			sqlgraph.To(reviewentry.Table, reviewentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crawleditem.ReviewEntriesTable, crawleditem.ReviewEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CrawledItem entity from the query.
// Returns a *NotFoundError when no CrawledItem was found.
func (_q *CrawledItemQuery) First(ctx context.Context) (*CrawledItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{crawleditem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CrawledItemQuery) FirstX(ctx context.Context) *CrawledItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CrawledItem ID from the query.
// Returns a *NotFoundError when no CrawledItem ID was found.
func (_q *CrawledItemQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{crawleditem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CrawledItemQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CrawledItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CrawledItem entity is found.
// Returns a *NotFoundError when no CrawledItem entities are found.
func (_q *CrawledItemQuery) Only(ctx context.Context) (*CrawledItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{crawleditem.Label}
	default:
		return nil, &NotSingularError{crawleditem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CrawledItemQuery) OnlyX(ctx context.Context) *CrawledItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CrawledItem ID in the query.
// Returns a *NotSingularError when more than one CrawledItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CrawledItemQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{crawleditem.Label}
	default:
		err = &NotSingularError{crawleditem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CrawledItemQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CrawledItems.
func (_q *CrawledItemQuery) All(ctx context.Context) ([]*CrawledItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CrawledItem, *CrawledItemQuery]()
	return withInterceptors[[]*CrawledItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CrawledItemQuery) AllX(ctx context.Context) []*CrawledItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CrawledItem IDs.
func (_q *CrawledItemQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(crawleditem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CrawledItemQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CrawledItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CrawledItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CrawledItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CrawledItemQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CrawledItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CrawledItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CrawledItemQuery) Clone() *CrawledItemQuery {
	if _q == nil {
		return nil
	}
	return &CrawledItemQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]crawleditem.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.CrawledItem{}, _q.predicates...),
		withVectorRecord:  _q.withVectorRecord.Clone(),
		withReviewEntries: _q.withReviewEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVectorRecord tells the query-builder to eager-load the nodes that are connected to
// the "vector_record" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CrawledItemQuery) WithVectorRecord(opts ...func(*VectorRecordQuery)) *CrawledItemQuery {
	query := (&VectorRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVectorRecord = query
	return _q
}

// WithReviewEntries tells the query-builder to eager-load the nodes that are connected to
// the "review_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CrawledItemQuery) WithReviewEntries(opts ...func(*ReviewEntryQuery)) *CrawledItemQuery {
	query := (&ReviewEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReviewEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		URL string `json:"url,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CrawledItem.Query().
//		GroupBy(crawleditem.FieldURL).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CrawledItemQuery) GroupBy(field string, fields ...string) *CrawledItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CrawledItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = crawleditem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		URL string `json:"url,omitempty"`
//	}
//
//	client.CrawledItem.Query().
//		Select(crawleditem.FieldURL).
//		Scan(ctx, &v)
func (_q *CrawledItemQuery) Select(fields ...string) *CrawledItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CrawledItemSelect{CrawledItemQuery: _q}
	sbuild.label = crawleditem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CrawledItemSelect configured with the given aggregations.
func (_q *CrawledItemQuery) Aggregate(fns ...AggregateFunc) *CrawledItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CrawledItemQuery) prepareQuery(ctx context.Context) error {
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
		if !crawleditem.ValidColumn(f) {
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

func (_q *CrawledItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CrawledItem, error) {
	var (
		nodes       = []*CrawledItem{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withVectorRecord != nil,
			_q.withReviewEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CrawledItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CrawledItem{config: _q.config}
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
	if query := _q.withVectorRecord; query != nil {
		if err := _q.loadVectorRecord(ctx, query, nodes, nil,
			func(n *CrawledItem, e *VectorRecord) { n.Edges.VectorRecord = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReviewEntries; query != nil {
		if err := _q.loadReviewEntries(ctx, query, nodes,
			func(n *CrawledItem) { n.Edges.ReviewEntries = []*ReviewEntry{} },
			func(n *CrawledItem, e *ReviewEntry) { n.Edges.ReviewEntries = append(n.Edges.ReviewEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CrawledItemQuery) loadVectorRecord(ctx context.Context, query *VectorRecordQuery, nodes []*CrawledItem, init func(*CrawledItem), assign func(*CrawledItem, *VectorRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CrawledItem)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vectorrecord.FieldDocID)
	}
	query.Where(predicate.VectorRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crawleditem.VectorRecordColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "doc_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CrawledItemQuery) loadReviewEntries(ctx context.Context, query *ReviewEntryQuery, nodes []*CrawledItem, init func(*CrawledItem), assign func(*CrawledItem, *ReviewEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CrawledItem)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reviewentry.FieldDocID)
	}
	query.Where(predicate.ReviewEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crawleditem.ReviewEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "doc_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CrawledItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CrawledItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(crawleditem.Table, crawleditem.Columns, sqlgraph.NewFieldSpec(crawleditem.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crawleditem.FieldID)
		for i := range fields {
			if fields[i] != crawleditem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CrawledItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(crawleditem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = crawleditem.Columns
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

// CrawledItemGroupBy is the group-by builder for CrawledItem entities.
type CrawledItemGroupBy struct {
	selector
	build *CrawledItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CrawledItemGroupBy) Aggregate(fns ...AggregateFunc) *CrawledItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CrawledItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CrawledItemQuery, *CrawledItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CrawledItemGroupBy) sqlScan(ctx context.Context, root *CrawledItemQuery, v any) error {
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

// CrawledItemSelect is the builder for selecting fields of CrawledItem entities.
type CrawledItemSelect struct {
	*CrawledItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CrawledItemSelect) Aggregate(fns ...AggregateFunc) *CrawledItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CrawledItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CrawledItemQuery, *CrawledItemSelect](ctx, _s.CrawledItemQuery, _s, _s.inters, v)
}

func (_s *CrawledItemSelect) sqlScan(ctx context.Context, root *CrawledItemQuery, v any) error {
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
