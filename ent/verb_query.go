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
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

// VerbQuery is the builder for querying Verb entities.
type VerbQuery struct {
	config
	ctx              *QueryContext
	order            []verb.OrderOption
	inters           []Interceptor
	predicates       []predicate.Verb
	withConjugations *ConjugationQuery
	withQuestions    *BankQuestionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VerbQuery builder.
func (_q *VerbQuery) Where(ps ...predicate.Verb) *VerbQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VerbQuery) Limit(limit int) *VerbQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VerbQuery) Offset(offset int) *VerbQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VerbQuery) Unique(unique bool) *VerbQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VerbQuery) Order(o ...verb.OrderOption) *VerbQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryConjugations chains the current query on the "conjugations" edge.
func (_q *VerbQuery) QueryConjugations() *ConjugationQuery {
	query := (&ConjugationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(verb.Table, verb.FieldID, selector),
			sqlgraph.To(conjugation.Table, conjugation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verb.ConjugationsTable, verb.ConjugationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *VerbQuery) QueryQuestions() *BankQuestionQuery {
	query := (&BankQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(verb.Table, verb.FieldID, selector),
			sqlgraph.To(bankquestion.Table, bankquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verb.QuestionsTable, verb.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Verb entity from the query.
// Returns a *NotFoundError when no Verb was found.
func (_q *VerbQuery) First(ctx context.Context) (*Verb, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{verb.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VerbQuery) FirstX(ctx context.Context) *Verb {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Verb ID from the query.
// Returns a *NotFoundError when no Verb ID was found.
func (_q *VerbQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{verb.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VerbQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Verb entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Verb entity is found.
// Returns a *NotFoundError when no Verb entities are found.
func (_q *VerbQuery) Only(ctx context.Context) (*Verb, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{verb.Label}
	default:
		return nil, &NotSingularError{verb.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VerbQuery) OnlyX(ctx context.Context) *Verb {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Verb ID in the query.
// Returns a *NotSingularError when more than one Verb ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VerbQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{verb.Label}
	default:
		err = &NotSingularError{verb.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VerbQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Verbs.
func (_q *VerbQuery) All(ctx context.Context) ([]*Verb, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Verb, *VerbQuery]()
	return withInterceptors[[]*Verb](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VerbQuery) AllX(ctx context.Context) []*Verb {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Verb IDs.
func (_q *VerbQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(verb.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VerbQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VerbQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VerbQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VerbQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VerbQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *VerbQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VerbQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VerbQuery) Clone() *VerbQuery {
	if _q == nil {
		return nil
	}
	return &VerbQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]verb.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Verb{}, _q.predicates...),
		withConjugations: _q.withConjugations.Clone(),
		withQuestions:    _q.withQuestions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithConjugations tells the query-builder to eager-load the nodes that are connected to
// the "conjugations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VerbQuery) WithConjugations(opts ...func(*ConjugationQuery)) *VerbQuery {
	query := (&ConjugationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConjugations = query
	return _q
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VerbQuery) WithQuestions(opts ...func(*BankQuestionQuery)) *VerbQuery {
	query := (&BankQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Infinitive string `json:"infinitive,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Verb.Query().
//		GroupBy(verb.FieldInfinitive).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VerbQuery) GroupBy(field string, fields ...string) *VerbGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VerbGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = verb.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Infinitive string `json:"infinitive,omitempty"`
//	}
//
//	client.Verb.Query().
//		Select(verb.FieldInfinitive).
//		Scan(ctx, &v)
func (_q *VerbQuery) Select(fields ...string) *VerbSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VerbSelect{VerbQuery: _q}
	sbuild.label = verb.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VerbSelect configured with the given aggregations.
func (_q *VerbQuery) Aggregate(fns ...AggregateFunc) *VerbSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VerbQuery) prepareQuery(ctx context.Context) error {
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
		if !verb.ValidColumn(f) {
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

func (_q *VerbQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Verb, error) {
	var (
		nodes       = []*Verb{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withConjugations != nil,
			_q.withQuestions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Verb).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Verb{config: _q.config}
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
	if query := _q.withConjugations; query != nil {
		if err := _q.loadConjugations(ctx, query, nodes,
			func(n *Verb) { n.Edges.Conjugations = []*Conjugation{} },
			func(n *Verb, e *Conjugation) { n.Edges.Conjugations = append(n.Edges.Conjugations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *Verb) { n.Edges.Questions = []*BankQuestion{} },
			func(n *Verb, e *BankQuestion) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VerbQuery) loadConjugations(ctx context.Context, query *ConjugationQuery, nodes []*Verb, init func(*Verb), assign func(*Verb, *Conjugation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Verb)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conjugation.FieldVerbID)
	}
	query.Where(predicate.Conjugation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(verb.ConjugationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VerbID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "verb_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *VerbQuery) loadQuestions(ctx context.Context, query *BankQuestionQuery, nodes []*Verb, init func(*Verb), assign func(*Verb, *BankQuestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Verb)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(bankquestion.FieldVerbID)
	}
	query.Where(predicate.BankQuestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(verb.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VerbID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "verb_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *VerbQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VerbQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(verb.Table, verb.Columns, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verb.FieldID)
		for i := range fields {
			if fields[i] != verb.FieldID {
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

func (_q *VerbQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(verb.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = verb.Columns
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

// VerbGroupBy is the group-by builder for Verb entities.
type VerbGroupBy struct {
	selector
	build *VerbQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VerbGroupBy) Aggregate(fns ...AggregateFunc) *VerbGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VerbGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerbQuery, *VerbGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VerbGroupBy) sqlScan(ctx context.Context, root *VerbQuery, v any) error {
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

// VerbSelect is the builder for selecting fields of Verb entities.
type VerbSelect struct {
	*VerbQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VerbSelect) Aggregate(fns ...AggregateFunc) *VerbSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VerbSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerbQuery, *VerbSelect](ctx, _s.VerbQuery, _s, _s.inters, v)
}

func (_s *VerbSelect) sqlScan(ctx context.Context, root *VerbQuery, v any) error {
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
