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
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

// BankQuestionQuery is the builder for querying BankQuestion entities.
type BankQuestionQuery struct {
	config
	ctx        *QueryContext
	order      []bankquestion.OrderOption
	inters     []Interceptor
	predicates []predicate.BankQuestion
	withVerb   *VerbQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BankQuestionQuery builder.
func (_q *BankQuestionQuery) Where(ps ...predicate.BankQuestion) *BankQuestionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BankQuestionQuery) Limit(limit int) *BankQuestionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BankQuestionQuery) Offset(offset int) *BankQuestionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BankQuestionQuery) Unique(unique bool) *BankQuestionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BankQuestionQuery) Order(o ...bankquestion.OrderOption) *BankQuestionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVerb chains the current query on the "verb" edge.
func (_q *BankQuestionQuery) QueryVerb() *VerbQuery {
	query := (&VerbClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bankquestion.Table, bankquestion.FieldID, selector),
			sqlgraph.To(verb.Table, verb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bankquestion.VerbTable, bankquestion.VerbColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BankQuestion entity from the query.
// Returns a *NotFoundError when no BankQuestion was found.
func (_q *BankQuestionQuery) First(ctx context.Context) (*BankQuestion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bankquestion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BankQuestionQuery) FirstX(ctx context.Context) *BankQuestion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BankQuestion ID from the query.
// Returns a *NotFoundError when no BankQuestion ID was found.
func (_q *BankQuestionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bankquestion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BankQuestionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BankQuestion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BankQuestion entity is found.
// Returns a *NotFoundError when no BankQuestion entities are found.
func (_q *BankQuestionQuery) Only(ctx context.Context) (*BankQuestion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bankquestion.Label}
	default:
		return nil, &NotSingularError{bankquestion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BankQuestionQuery) OnlyX(ctx context.Context) *BankQuestion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BankQuestion ID in the query.
// Returns a *NotSingularError when more than one BankQuestion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BankQuestionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bankquestion.Label}
	default:
		err = &NotSingularError{bankquestion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BankQuestionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BankQuestions.
func (_q *BankQuestionQuery) All(ctx context.Context) ([]*BankQuestion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BankQuestion, *BankQuestionQuery]()
	return withInterceptors[[]*BankQuestion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BankQuestionQuery) AllX(ctx context.Context) []*BankQuestion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BankQuestion IDs.
func (_q *BankQuestionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bankquestion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BankQuestionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BankQuestionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BankQuestionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BankQuestionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BankQuestionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BankQuestionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BankQuestionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BankQuestionQuery) Clone() *BankQuestionQuery {
	if _q == nil {
		return nil
	}
	return &BankQuestionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]bankquestion.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.BankQuestion{}, _q.predicates...),
		withVerb:   _q.withVerb.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVerb tells the query-builder to eager-load the nodes that are connected to
// the "verb" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BankQuestionQuery) WithVerb(opts ...func(*VerbQuery)) *BankQuestionQuery {
	query := (&VerbClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVerb = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		VerbID int `json:"verb_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BankQuestion.Query().
//		GroupBy(bankquestion.FieldVerbID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BankQuestionQuery) GroupBy(field string, fields ...string) *BankQuestionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BankQuestionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bankquestion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		VerbID int `json:"verb_id,omitempty"`
//	}
//
//	client.BankQuestion.Query().
//		Select(bankquestion.FieldVerbID).
//		Scan(ctx, &v)
func (_q *BankQuestionQuery) Select(fields ...string) *BankQuestionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BankQuestionSelect{BankQuestionQuery: _q}
	sbuild.label = bankquestion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BankQuestionSelect configured with the given aggregations.
func (_q *BankQuestionQuery) Aggregate(fns ...AggregateFunc) *BankQuestionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BankQuestionQuery) prepareQuery(ctx context.Context) error {
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
		if !bankquestion.ValidColumn(f) {
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

func (_q *BankQuestionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BankQuestion, error) {
	var (
		nodes       = []*BankQuestion{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withVerb != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BankQuestion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BankQuestion{config: _q.config}
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
	if query := _q.withVerb; query != nil {
		if err := _q.loadVerb(ctx, query, nodes, nil,
			func(n *BankQuestion, e *Verb) { n.Edges.Verb = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BankQuestionQuery) loadVerb(ctx context.Context, query *VerbQuery, nodes []*BankQuestion, init func(*BankQuestion), assign func(*BankQuestion, *Verb)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*BankQuestion)
	for i := range nodes {
		fk := nodes[i].VerbID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(verb.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "verb_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *BankQuestionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BankQuestionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bankquestion.Table, bankquestion.Columns, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bankquestion.FieldID)
		for i := range fields {
			if fields[i] != bankquestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withVerb != nil {
			_spec.Node.AddColumnOnce(bankquestion.FieldVerbID)
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

func (_q *BankQuestionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bankquestion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bankquestion.Columns
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

// BankQuestionGroupBy is the group-by builder for BankQuestion entities.
type BankQuestionGroupBy struct {
	selector
	build *BankQuestionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BankQuestionGroupBy) Aggregate(fns ...AggregateFunc) *BankQuestionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BankQuestionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BankQuestionQuery, *BankQuestionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BankQuestionGroupBy) sqlScan(ctx context.Context, root *BankQuestionQuery, v any) error {
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

// BankQuestionSelect is the builder for selecting fields of BankQuestion entities.
type BankQuestionSelect struct {
	*BankQuestionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BankQuestionSelect) Aggregate(fns ...AggregateFunc) *BankQuestionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BankQuestionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BankQuestionQuery, *BankQuestionSelect](ctx, _s.BankQuestionQuery, _s, _s.inters, v)
}

func (_s *BankQuestionSelect) sqlScan(ctx context.Context, root *BankQuestionQuery, v any) error {
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
