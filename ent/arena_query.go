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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// ArenaQuery is the builder for querying Arena entities.
type ArenaQuery struct {
	config
	ctx              *QueryContext
	order            []arena.OrderOption
	inters           []Interceptor
	predicates       []predicate.Arena
	withStrategies   *StrategyQuery
	withRounds       *DiscussionRoundQuery
	withMessages     *ThinkingMessageQuery
	withEliminations *EliminationEventQuery
	withReports      *EvaluationReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ArenaQuery builder.
func (_q *ArenaQuery) Where(ps ...predicate.Arena) *ArenaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ArenaQuery) Limit(limit int) *ArenaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ArenaQuery) Offset(offset int) *ArenaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ArenaQuery) Unique(unique bool) *ArenaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ArenaQuery) Order(o ...arena.OrderOption) *ArenaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStrategies chains the current query on the "strategies" edge.
func (_q *ArenaQuery) QueryStrategies() *StrategyQuery {
	query := (&StrategyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, selector),
			sqlgraph.To(strategy.Table, strategy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.StrategiesTable, arena.StrategiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRounds chains the current query on the "rounds" edge.
func (_q *ArenaQuery) QueryRounds() *DiscussionRoundQuery {
	query := (&DiscussionRoundClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, selector),
			sqlgraph.To(discussionround.Table, discussionround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.RoundsTable, arena.RoundsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *ArenaQuery) QueryMessages() *ThinkingMessageQuery {
	query := (&ThinkingMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, selector),
			sqlgraph.To(thinkingmessage.Table, thinkingmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.MessagesTable, arena.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEliminations chains the current query on the "eliminations" edge.
func (_q *ArenaQuery) QueryEliminations() *EliminationEventQuery {
	query := (&EliminationEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, selector),
			sqlgraph.To(eliminationevent.Table, eliminationevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.EliminationsTable, arena.EliminationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReports chains the current query on the "reports" edge.
func (_q *ArenaQuery) QueryReports() *EvaluationReportQuery {
	query := (&EvaluationReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, selector),
			sqlgraph.To(evaluationreport.Table, evaluationreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.ReportsTable, arena.ReportsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Arena entity from the query.
// Returns a *NotFoundError when no Arena was found.
func (_q *ArenaQuery) First(ctx context.Context) (*Arena, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{arena.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ArenaQuery) FirstX(ctx context.Context) *Arena {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Arena ID from the query.
// Returns a *NotFoundError when no Arena ID was found.
func (_q *ArenaQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{arena.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ArenaQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Arena entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Arena entity is found.
// Returns a *NotFoundError when no Arena entities are found.
func (_q *ArenaQuery) Only(ctx context.Context) (*Arena, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{arena.Label}
	default:
		return nil, &NotSingularError{arena.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ArenaQuery) OnlyX(ctx context.Context) *Arena {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Arena ID in the query.
// Returns a *NotSingularError when more than one Arena ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ArenaQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{arena.Label}
	default:
		err = &NotSingularError{arena.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ArenaQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Arenas.
func (_q *ArenaQuery) All(ctx context.Context) ([]*Arena, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Arena, *ArenaQuery]()
	return withInterceptors[[]*Arena](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ArenaQuery) AllX(ctx context.Context) []*Arena {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Arena IDs.
func (_q *ArenaQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(arena.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ArenaQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ArenaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ArenaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ArenaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ArenaQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ArenaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ArenaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ArenaQuery) Clone() *ArenaQuery {
	if _q == nil {
		return nil
	}
	return &ArenaQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]arena.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Arena{}, _q.predicates...),
		withStrategies:   _q.withStrategies.Clone(),
		withRounds:       _q.withRounds.Clone(),
		withMessages:     _q.withMessages.Clone(),
		withEliminations: _q.withEliminations.Clone(),
		withReports:      _q.withReports.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStrategies tells the query-builder to eager-load the nodes that are connected to
// the "strategies" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArenaQuery) WithStrategies(opts ...func(*StrategyQuery)) *ArenaQuery {
	query := (&StrategyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStrategies = query
	return _q
}

// WithRounds tells the query-builder to eager-load the nodes that are connected to
// the "rounds" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArenaQuery) WithRounds(opts ...func(*DiscussionRoundQuery)) *ArenaQuery {
	query := (&DiscussionRoundClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRounds = query
	return _q
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArenaQuery) WithMessages(opts ...func(*ThinkingMessageQuery)) *ArenaQuery {
	query := (&ThinkingMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithEliminations tells the query-builder to eager-load the nodes that are connected to
// the "eliminations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArenaQuery) WithEliminations(opts ...func(*EliminationEventQuery)) *ArenaQuery {
	query := (&EliminationEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEliminations = query
	return _q
}

// WithReports tells the query-builder to eager-load the nodes that are connected to
// the "reports" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArenaQuery) WithReports(opts ...func(*EvaluationReportQuery)) *ArenaQuery {
	query := (&EvaluationReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReports = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Arena.Query().
//		GroupBy(arena.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ArenaQuery) GroupBy(field string, fields ...string) *ArenaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ArenaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = arena.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Arena.Query().
//		Select(arena.FieldName).
//		Scan(ctx, &v)
func (_q *ArenaQuery) Select(fields ...string) *ArenaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ArenaSelect{ArenaQuery: _q}
	sbuild.label = arena.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ArenaSelect configured with the given aggregations.
func (_q *ArenaQuery) Aggregate(fns ...AggregateFunc) *ArenaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ArenaQuery) prepareQuery(ctx context.Context) error {
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
		if !arena.ValidColumn(f) {
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

func (_q *ArenaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Arena, error) {
	var (
		nodes       = []*Arena{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withStrategies != nil,
			_q.withRounds != nil,
			_q.withMessages != nil,
			_q.withEliminations != nil,
			_q.withReports != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Arena).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Arena{config: _q.config}
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
	if query := _q.withStrategies; query != nil {
		if err := _q.loadStrategies(ctx, query, nodes,
			func(n *Arena) { n.Edges.Strategies = []*Strategy{} },
			func(n *Arena, e *Strategy) { n.Edges.Strategies = append(n.Edges.Strategies, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRounds; query != nil {
		if err := _q.loadRounds(ctx, query, nodes,
			func(n *Arena) { n.Edges.Rounds = []*DiscussionRound{} },
			func(n *Arena, e *DiscussionRound) { n.Edges.Rounds = append(n.Edges.Rounds, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *Arena) { n.Edges.Messages = []*ThinkingMessage{} },
			func(n *Arena, e *ThinkingMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEliminations; query != nil {
		if err := _q.loadEliminations(ctx, query, nodes,
			func(n *Arena) { n.Edges.Eliminations = []*EliminationEvent{} },
			func(n *Arena, e *EliminationEvent) { n.Edges.Eliminations = append(n.Edges.Eliminations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReports; query != nil {
		if err := _q.loadReports(ctx, query, nodes,
			func(n *Arena) { n.Edges.Reports = []*EvaluationReport{} },
			func(n *Arena, e *EvaluationReport) { n.Edges.Reports = append(n.Edges.Reports, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ArenaQuery) loadStrategies(ctx context.Context, query *StrategyQuery, nodes []*Arena, init func(*Arena), assign func(*Arena, *Strategy)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Arena)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(strategy.FieldArenaID)
	}
	query.Where(predicate.Strategy(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(arena.StrategiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ArenaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "arena_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ArenaQuery) loadRounds(ctx context.Context, query *DiscussionRoundQuery, nodes []*Arena, init func(*Arena), assign func(*Arena, *DiscussionRound)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Arena)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(discussionround.FieldArenaID)
	}
	query.Where(predicate.DiscussionRound(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(arena.RoundsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ArenaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "arena_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ArenaQuery) loadMessages(ctx context.Context, query *ThinkingMessageQuery, nodes []*Arena, init func(*Arena), assign func(*Arena, *ThinkingMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Arena)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(thinkingmessage.FieldArenaID)
	}
	query.Where(predicate.ThinkingMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(arena.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ArenaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "arena_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ArenaQuery) loadEliminations(ctx context.Context, query *EliminationEventQuery, nodes []*Arena, init func(*Arena), assign func(*Arena, *EliminationEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Arena)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(eliminationevent.FieldArenaID)
	}
	query.Where(predicate.EliminationEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(arena.EliminationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ArenaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "arena_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ArenaQuery) loadReports(ctx context.Context, query *EvaluationReportQuery, nodes []*Arena, init func(*Arena), assign func(*Arena, *EvaluationReport)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Arena)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evaluationreport.FieldArenaID)
	}
	query.Where(predicate.EvaluationReport(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(arena.ReportsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ArenaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "arena_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ArenaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ArenaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(arena.Table, arena.Columns, sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, arena.FieldID)
		for i := range fields {
			if fields[i] != arena.FieldID {
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

func (_q *ArenaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(arena.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = arena.Columns
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

// ArenaGroupBy is the group-by builder for Arena entities.
type ArenaGroupBy struct {
	selector
	build *ArenaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ArenaGroupBy) Aggregate(fns ...AggregateFunc) *ArenaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ArenaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArenaQuery, *ArenaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ArenaGroupBy) sqlScan(ctx context.Context, root *ArenaQuery, v any) error {
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

// ArenaSelect is the builder for selecting fields of Arena entities.
type ArenaSelect struct {
	*ArenaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ArenaSelect) Aggregate(fns ...AggregateFunc) *ArenaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ArenaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArenaQuery, *ArenaSelect](ctx, _s.ArenaQuery, _s, _s.inters, v)
}

func (_s *ArenaSelect) sqlScan(ctx context.Context, root *ArenaQuery, v any) error {
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
