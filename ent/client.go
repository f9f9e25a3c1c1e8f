// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Yourdaylight/stock-datasource-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Arena is the client for interacting with the Arena builders.
	Arena *ArenaClient
	// BatchExecution is the client for interacting with the BatchExecution builders.
	BatchExecution *BatchExecutionClient
	// DiscussionRound is the client for interacting with the DiscussionRound builders.
	DiscussionRound *DiscussionRoundClient
	// EliminationEvent is the client for interacting with the EliminationEvent builders.
	EliminationEvent *EliminationEventClient
	// EvaluationReport is the client for interacting with the EvaluationReport builders.
	EvaluationReport *EvaluationReportClient
	// PluginSetting is the client for interacting with the PluginSetting builders.
	PluginSetting *PluginSettingClient
	// SchemaAudit is the client for interacting with the SchemaAudit builders.
	SchemaAudit *SchemaAuditClient
	// Strategy is the client for interacting with the Strategy builders.
	Strategy *StrategyClient
	// SubTask is the client for interacting with the SubTask builders.
	SubTask *SubTaskClient
	// ThinkingMessage is the client for interacting with the ThinkingMessage builders.
	ThinkingMessage *ThinkingMessageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Arena = NewArenaClient(c.config)
	c.BatchExecution = NewBatchExecutionClient(c.config)
	c.DiscussionRound = NewDiscussionRoundClient(c.config)
	c.EliminationEvent = NewEliminationEventClient(c.config)
	c.EvaluationReport = NewEvaluationReportClient(c.config)
	c.PluginSetting = NewPluginSettingClient(c.config)
	c.SchemaAudit = NewSchemaAuditClient(c.config)
	c.Strategy = NewStrategyClient(c.config)
	c.SubTask = NewSubTaskClient(c.config)
	c.ThinkingMessage = NewThinkingMessageClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Arena:            NewArenaClient(cfg),
		BatchExecution:   NewBatchExecutionClient(cfg),
		DiscussionRound:  NewDiscussionRoundClient(cfg),
		EliminationEvent: NewEliminationEventClient(cfg),
		EvaluationReport: NewEvaluationReportClient(cfg),
		PluginSetting:    NewPluginSettingClient(cfg),
		SchemaAudit:      NewSchemaAuditClient(cfg),
		Strategy:         NewStrategyClient(cfg),
		SubTask:          NewSubTaskClient(cfg),
		ThinkingMessage:  NewThinkingMessageClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Arena:            NewArenaClient(cfg),
		BatchExecution:   NewBatchExecutionClient(cfg),
		DiscussionRound:  NewDiscussionRoundClient(cfg),
		EliminationEvent: NewEliminationEventClient(cfg),
		EvaluationReport: NewEvaluationReportClient(cfg),
		PluginSetting:    NewPluginSettingClient(cfg),
		SchemaAudit:      NewSchemaAuditClient(cfg),
		Strategy:         NewStrategyClient(cfg),
		SubTask:          NewSubTaskClient(cfg),
		ThinkingMessage:  NewThinkingMessageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Arena.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Arena, c.BatchExecution, c.DiscussionRound, c.EliminationEvent,
		c.EvaluationReport, c.PluginSetting, c.SchemaAudit, c.Strategy, c.SubTask,
		c.ThinkingMessage,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Arena, c.BatchExecution, c.DiscussionRound, c.EliminationEvent,
		c.EvaluationReport, c.PluginSetting, c.SchemaAudit, c.Strategy, c.SubTask,
		c.ThinkingMessage,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArenaMutation:
		return c.Arena.mutate(ctx, m)
	case *BatchExecutionMutation:
		return c.BatchExecution.mutate(ctx, m)
	case *DiscussionRoundMutation:
		return c.DiscussionRound.mutate(ctx, m)
	case *EliminationEventMutation:
		return c.EliminationEvent.mutate(ctx, m)
	case *EvaluationReportMutation:
		return c.EvaluationReport.mutate(ctx, m)
	case *PluginSettingMutation:
		return c.PluginSetting.mutate(ctx, m)
	case *SchemaAuditMutation:
		return c.SchemaAudit.mutate(ctx, m)
	case *StrategyMutation:
		return c.Strategy.mutate(ctx, m)
	case *SubTaskMutation:
		return c.SubTask.mutate(ctx, m)
	case *ThinkingMessageMutation:
		return c.ThinkingMessage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArenaClient is a client for the Arena schema.
type ArenaClient struct {
	config
}

// NewArenaClient returns a client for the Arena from the given config.
func NewArenaClient(c config) *ArenaClient {
	return &ArenaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `arena.Hooks(f(g(h())))`.
func (c *ArenaClient) Use(hooks ...Hook) {
	c.hooks.Arena = append(c.hooks.Arena, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `arena.Intercept(f(g(h())))`.
func (c *ArenaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Arena = append(c.inters.Arena, interceptors...)
}

// Create returns a builder for creating a Arena entity.
func (c *ArenaClient) Create() *ArenaCreate {
	mutation := newArenaMutation(c.config, OpCreate)
	return &ArenaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Arena entities.
func (c *ArenaClient) CreateBulk(builders ...*ArenaCreate) *ArenaCreateBulk {
	return &ArenaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArenaClient) MapCreateBulk(slice any, setFunc func(*ArenaCreate, int)) *ArenaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArenaCreateBulk{err: fmt.Errorf("calling to ArenaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArenaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArenaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Arena.
func (c *ArenaClient) Update() *ArenaUpdate {
	mutation := newArenaMutation(c.config, OpUpdate)
	return &ArenaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArenaClient) UpdateOne(_m *Arena) *ArenaUpdateOne {
	mutation := newArenaMutation(c.config, OpUpdateOne, withArena(_m))
	return &ArenaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArenaClient) UpdateOneID(id string) *ArenaUpdateOne {
	mutation := newArenaMutation(c.config, OpUpdateOne, withArenaID(id))
	return &ArenaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Arena.
func (c *ArenaClient) Delete() *ArenaDelete {
	mutation := newArenaMutation(c.config, OpDelete)
	return &ArenaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArenaClient) DeleteOne(_m *Arena) *ArenaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArenaClient) DeleteOneID(id string) *ArenaDeleteOne {
	builder := c.Delete().Where(arena.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArenaDeleteOne{builder}
}

// Query returns a query builder for Arena.
func (c *ArenaClient) Query() *ArenaQuery {
	return &ArenaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArena},
		inters: c.Interceptors(),
	}
}

// Get returns a Arena entity by its id.
func (c *ArenaClient) Get(ctx context.Context, id string) (*Arena, error) {
	return c.Query().Where(arena.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArenaClient) GetX(ctx context.Context, id string) *Arena {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStrategies queries the strategies edge of a Arena.
func (c *ArenaClient) QueryStrategies(_m *Arena) *StrategyQuery {
	query := (&StrategyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, id),
			sqlgraph.To(strategy.Table, strategy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.StrategiesTable, arena.StrategiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRounds queries the rounds edge of a Arena.
func (c *ArenaClient) QueryRounds(_m *Arena) *DiscussionRoundQuery {
	query := (&DiscussionRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, id),
			sqlgraph.To(discussionround.Table, discussionround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.RoundsTable, arena.RoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Arena.
func (c *ArenaClient) QueryMessages(_m *Arena) *ThinkingMessageQuery {
	query := (&ThinkingMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, id),
			sqlgraph.To(thinkingmessage.Table, thinkingmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.MessagesTable, arena.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEliminations queries the eliminations edge of a Arena.
func (c *ArenaClient) QueryEliminations(_m *Arena) *EliminationEventQuery {
	query := (&EliminationEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, id),
			sqlgraph.To(eliminationevent.Table, eliminationevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.EliminationsTable, arena.EliminationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Arena.
func (c *ArenaClient) QueryReports(_m *Arena) *EvaluationReportQuery {
	query := (&EvaluationReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(arena.Table, arena.FieldID, id),
			sqlgraph.To(evaluationreport.Table, evaluationreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, arena.ReportsTable, arena.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArenaClient) Hooks() []Hook {
	return c.hooks.Arena
}

// Interceptors returns the client interceptors.
func (c *ArenaClient) Interceptors() []Interceptor {
	return c.inters.Arena
}

func (c *ArenaClient) mutate(ctx context.Context, m *ArenaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArenaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArenaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArenaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArenaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Arena mutation op: %q", m.Op())
	}
}

// BatchExecutionClient is a client for the BatchExecution schema.
type BatchExecutionClient struct {
	config
}

// NewBatchExecutionClient returns a client for the BatchExecution from the given config.
func NewBatchExecutionClient(c config) *BatchExecutionClient {
	return &BatchExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchexecution.Hooks(f(g(h())))`.
func (c *BatchExecutionClient) Use(hooks ...Hook) {
	c.hooks.BatchExecution = append(c.hooks.BatchExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchexecution.Intercept(f(g(h())))`.
func (c *BatchExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchExecution = append(c.inters.BatchExecution, interceptors...)
}

// Create returns a builder for creating a BatchExecution entity.
func (c *BatchExecutionClient) Create() *BatchExecutionCreate {
	mutation := newBatchExecutionMutation(c.config, OpCreate)
	return &BatchExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchExecution entities.
func (c *BatchExecutionClient) CreateBulk(builders ...*BatchExecutionCreate) *BatchExecutionCreateBulk {
	return &BatchExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchExecutionClient) MapCreateBulk(slice any, setFunc func(*BatchExecutionCreate, int)) *BatchExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchExecutionCreateBulk{err: fmt.Errorf("calling to BatchExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchExecution.
func (c *BatchExecutionClient) Update() *BatchExecutionUpdate {
	mutation := newBatchExecutionMutation(c.config, OpUpdate)
	return &BatchExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchExecutionClient) UpdateOne(_m *BatchExecution) *BatchExecutionUpdateOne {
	mutation := newBatchExecutionMutation(c.config, OpUpdateOne, withBatchExecution(_m))
	return &BatchExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchExecutionClient) UpdateOneID(id string) *BatchExecutionUpdateOne {
	mutation := newBatchExecutionMutation(c.config, OpUpdateOne, withBatchExecutionID(id))
	return &BatchExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchExecution.
func (c *BatchExecutionClient) Delete() *BatchExecutionDelete {
	mutation := newBatchExecutionMutation(c.config, OpDelete)
	return &BatchExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchExecutionClient) DeleteOne(_m *BatchExecution) *BatchExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchExecutionClient) DeleteOneID(id string) *BatchExecutionDeleteOne {
	builder := c.Delete().Where(batchexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchExecutionDeleteOne{builder}
}

// Query returns a query builder for BatchExecution.
func (c *BatchExecutionClient) Query() *BatchExecutionQuery {
	return &BatchExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchExecution entity by its id.
func (c *BatchExecutionClient) Get(ctx context.Context, id string) (*BatchExecution, error) {
	return c.Query().Where(batchexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchExecutionClient) GetX(ctx context.Context, id string) *BatchExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubTasks queries the sub_tasks edge of a BatchExecution.
func (c *BatchExecutionClient) QuerySubTasks(_m *BatchExecution) *SubTaskQuery {
	query := (&SubTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchexecution.Table, batchexecution.FieldID, id),
			sqlgraph.To(subtask.Table, subtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batchexecution.SubTasksTable, batchexecution.SubTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchExecutionClient) Hooks() []Hook {
	return c.hooks.BatchExecution
}

// Interceptors returns the client interceptors.
func (c *BatchExecutionClient) Interceptors() []Interceptor {
	return c.inters.BatchExecution
}

func (c *BatchExecutionClient) mutate(ctx context.Context, m *BatchExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchExecution mutation op: %q", m.Op())
	}
}

// DiscussionRoundClient is a client for the DiscussionRound schema.
type DiscussionRoundClient struct {
	config
}

// NewDiscussionRoundClient returns a client for the DiscussionRound from the given config.
func NewDiscussionRoundClient(c config) *DiscussionRoundClient {
	return &DiscussionRoundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `discussionround.Hooks(f(g(h())))`.
func (c *DiscussionRoundClient) Use(hooks ...Hook) {
	c.hooks.DiscussionRound = append(c.hooks.DiscussionRound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `discussionround.Intercept(f(g(h())))`.
func (c *DiscussionRoundClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiscussionRound = append(c.inters.DiscussionRound, interceptors...)
}

// Create returns a builder for creating a DiscussionRound entity.
func (c *DiscussionRoundClient) Create() *DiscussionRoundCreate {
	mutation := newDiscussionRoundMutation(c.config, OpCreate)
	return &DiscussionRoundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiscussionRound entities.
func (c *DiscussionRoundClient) CreateBulk(builders ...*DiscussionRoundCreate) *DiscussionRoundCreateBulk {
	return &DiscussionRoundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiscussionRoundClient) MapCreateBulk(slice any, setFunc func(*DiscussionRoundCreate, int)) *DiscussionRoundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiscussionRoundCreateBulk{err: fmt.Errorf("calling to DiscussionRoundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiscussionRoundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiscussionRoundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiscussionRound.
func (c *DiscussionRoundClient) Update() *DiscussionRoundUpdate {
	mutation := newDiscussionRoundMutation(c.config, OpUpdate)
	return &DiscussionRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiscussionRoundClient) UpdateOne(_m *DiscussionRound) *DiscussionRoundUpdateOne {
	mutation := newDiscussionRoundMutation(c.config, OpUpdateOne, withDiscussionRound(_m))
	return &DiscussionRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiscussionRoundClient) UpdateOneID(id string) *DiscussionRoundUpdateOne {
	mutation := newDiscussionRoundMutation(c.config, OpUpdateOne, withDiscussionRoundID(id))
	return &DiscussionRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiscussionRound.
func (c *DiscussionRoundClient) Delete() *DiscussionRoundDelete {
	mutation := newDiscussionRoundMutation(c.config, OpDelete)
	return &DiscussionRoundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiscussionRoundClient) DeleteOne(_m *DiscussionRound) *DiscussionRoundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiscussionRoundClient) DeleteOneID(id string) *DiscussionRoundDeleteOne {
	builder := c.Delete().Where(discussionround.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiscussionRoundDeleteOne{builder}
}

// Query returns a query builder for DiscussionRound.
func (c *DiscussionRoundClient) Query() *DiscussionRoundQuery {
	return &DiscussionRoundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiscussionRound},
		inters: c.Interceptors(),
	}
}

// Get returns a DiscussionRound entity by its id.
func (c *DiscussionRoundClient) Get(ctx context.Context, id string) (*DiscussionRound, error) {
	return c.Query().Where(discussionround.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiscussionRoundClient) GetX(ctx context.Context, id string) *DiscussionRound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArena queries the arena edge of a DiscussionRound.
func (c *DiscussionRoundClient) QueryArena(_m *DiscussionRound) *ArenaQuery {
	query := (&ArenaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(discussionround.Table, discussionround.FieldID, id),
			sqlgraph.To(arena.Table, arena.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, discussionround.ArenaTable, discussionround.ArenaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiscussionRoundClient) Hooks() []Hook {
	return c.hooks.DiscussionRound
}

// Interceptors returns the client interceptors.
func (c *DiscussionRoundClient) Interceptors() []Interceptor {
	return c.inters.DiscussionRound
}

func (c *DiscussionRoundClient) mutate(ctx context.Context, m *DiscussionRoundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiscussionRoundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiscussionRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiscussionRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiscussionRoundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiscussionRound mutation op: %q", m.Op())
	}
}

// EliminationEventClient is a client for the EliminationEvent schema.
type EliminationEventClient struct {
	config
}

// NewEliminationEventClient returns a client for the EliminationEvent from the given config.
func NewEliminationEventClient(c config) *EliminationEventClient {
	return &EliminationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eliminationevent.Hooks(f(g(h())))`.
func (c *EliminationEventClient) Use(hooks ...Hook) {
	c.hooks.EliminationEvent = append(c.hooks.EliminationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eliminationevent.Intercept(f(g(h())))`.
func (c *EliminationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EliminationEvent = append(c.inters.EliminationEvent, interceptors...)
}

// Create returns a builder for creating a EliminationEvent entity.
func (c *EliminationEventClient) Create() *EliminationEventCreate {
	mutation := newEliminationEventMutation(c.config, OpCreate)
	return &EliminationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EliminationEvent entities.
func (c *EliminationEventClient) CreateBulk(builders ...*EliminationEventCreate) *EliminationEventCreateBulk {
	return &EliminationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EliminationEventClient) MapCreateBulk(slice any, setFunc func(*EliminationEventCreate, int)) *EliminationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EliminationEventCreateBulk{err: fmt.Errorf("calling to EliminationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EliminationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EliminationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EliminationEvent.
func (c *EliminationEventClient) Update() *EliminationEventUpdate {
	mutation := newEliminationEventMutation(c.config, OpUpdate)
	return &EliminationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EliminationEventClient) UpdateOne(_m *EliminationEvent) *EliminationEventUpdateOne {
	mutation := newEliminationEventMutation(c.config, OpUpdateOne, withEliminationEvent(_m))
	return &EliminationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EliminationEventClient) UpdateOneID(id int64) *EliminationEventUpdateOne {
	mutation := newEliminationEventMutation(c.config, OpUpdateOne, withEliminationEventID(id))
	return &EliminationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EliminationEvent.
func (c *EliminationEventClient) Delete() *EliminationEventDelete {
	mutation := newEliminationEventMutation(c.config, OpDelete)
	return &EliminationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EliminationEventClient) DeleteOne(_m *EliminationEvent) *EliminationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EliminationEventClient) DeleteOneID(id int64) *EliminationEventDeleteOne {
	builder := c.Delete().Where(eliminationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EliminationEventDeleteOne{builder}
}

// Query returns a query builder for EliminationEvent.
func (c *EliminationEventClient) Query() *EliminationEventQuery {
	return &EliminationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEliminationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EliminationEvent entity by its id.
func (c *EliminationEventClient) Get(ctx context.Context, id int64) (*EliminationEvent, error) {
	return c.Query().Where(eliminationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EliminationEventClient) GetX(ctx context.Context, id int64) *EliminationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArena queries the arena edge of a EliminationEvent.
func (c *EliminationEventClient) QueryArena(_m *EliminationEvent) *ArenaQuery {
	query := (&ArenaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eliminationevent.Table, eliminationevent.FieldID, id),
			sqlgraph.To(arena.Table, arena.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eliminationevent.ArenaTable, eliminationevent.ArenaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EliminationEventClient) Hooks() []Hook {
	return c.hooks.EliminationEvent
}

// Interceptors returns the client interceptors.
func (c *EliminationEventClient) Interceptors() []Interceptor {
	return c.inters.EliminationEvent
}

func (c *EliminationEventClient) mutate(ctx context.Context, m *EliminationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EliminationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EliminationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EliminationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EliminationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EliminationEvent mutation op: %q", m.Op())
	}
}

// EvaluationReportClient is a client for the EvaluationReport schema.
type EvaluationReportClient struct {
	config
}

// NewEvaluationReportClient returns a client for the EvaluationReport from the given config.
func NewEvaluationReportClient(c config) *EvaluationReportClient {
	return &EvaluationReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationreport.Hooks(f(g(h())))`.
func (c *EvaluationReportClient) Use(hooks ...Hook) {
	c.hooks.EvaluationReport = append(c.hooks.EvaluationReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationreport.Intercept(f(g(h())))`.
func (c *EvaluationReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationReport = append(c.inters.EvaluationReport, interceptors...)
}

// Create returns a builder for creating a EvaluationReport entity.
func (c *EvaluationReportClient) Create() *EvaluationReportCreate {
	mutation := newEvaluationReportMutation(c.config, OpCreate)
	return &EvaluationReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationReport entities.
func (c *EvaluationReportClient) CreateBulk(builders ...*EvaluationReportCreate) *EvaluationReportCreateBulk {
	return &EvaluationReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationReportClient) MapCreateBulk(slice any, setFunc func(*EvaluationReportCreate, int)) *EvaluationReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationReportCreateBulk{err: fmt.Errorf("calling to EvaluationReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationReport.
func (c *EvaluationReportClient) Update() *EvaluationReportUpdate {
	mutation := newEvaluationReportMutation(c.config, OpUpdate)
	return &EvaluationReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationReportClient) UpdateOne(_m *EvaluationReport) *EvaluationReportUpdateOne {
	mutation := newEvaluationReportMutation(c.config, OpUpdateOne, withEvaluationReport(_m))
	return &EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationReportClient) UpdateOneID(id string) *EvaluationReportUpdateOne {
	mutation := newEvaluationReportMutation(c.config, OpUpdateOne, withEvaluationReportID(id))
	return &EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationReport.
func (c *EvaluationReportClient) Delete() *EvaluationReportDelete {
	mutation := newEvaluationReportMutation(c.config, OpDelete)
	return &EvaluationReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationReportClient) DeleteOne(_m *EvaluationReport) *EvaluationReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationReportClient) DeleteOneID(id string) *EvaluationReportDeleteOne {
	builder := c.Delete().Where(evaluationreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationReportDeleteOne{builder}
}

// Query returns a query builder for EvaluationReport.
func (c *EvaluationReportClient) Query() *EvaluationReportQuery {
	return &EvaluationReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationReport},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationReport entity by its id.
func (c *EvaluationReportClient) Get(ctx context.Context, id string) (*EvaluationReport, error) {
	return c.Query().Where(evaluationreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationReportClient) GetX(ctx context.Context, id string) *EvaluationReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArena queries the arena edge of a EvaluationReport.
func (c *EvaluationReportClient) QueryArena(_m *EvaluationReport) *ArenaQuery {
	query := (&ArenaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationreport.Table, evaluationreport.FieldID, id),
			sqlgraph.To(arena.Table, arena.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationreport.ArenaTable, evaluationreport.ArenaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationReportClient) Hooks() []Hook {
	return c.hooks.EvaluationReport
}

// Interceptors returns the client interceptors.
func (c *EvaluationReportClient) Interceptors() []Interceptor {
	return c.inters.EvaluationReport
}

func (c *EvaluationReportClient) mutate(ctx context.Context, m *EvaluationReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationReport mutation op: %q", m.Op())
	}
}

// PluginSettingClient is a client for the PluginSetting schema.
type PluginSettingClient struct {
	config
}

// NewPluginSettingClient returns a client for the PluginSetting from the given config.
func NewPluginSettingClient(c config) *PluginSettingClient {
	return &PluginSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pluginsetting.Hooks(f(g(h())))`.
func (c *PluginSettingClient) Use(hooks ...Hook) {
	c.hooks.PluginSetting = append(c.hooks.PluginSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pluginsetting.Intercept(f(g(h())))`.
func (c *PluginSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginSetting = append(c.inters.PluginSetting, interceptors...)
}

// Create returns a builder for creating a PluginSetting entity.
func (c *PluginSettingClient) Create() *PluginSettingCreate {
	mutation := newPluginSettingMutation(c.config, OpCreate)
	return &PluginSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginSetting entities.
func (c *PluginSettingClient) CreateBulk(builders ...*PluginSettingCreate) *PluginSettingCreateBulk {
	return &PluginSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginSettingClient) MapCreateBulk(slice any, setFunc func(*PluginSettingCreate, int)) *PluginSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginSettingCreateBulk{err: fmt.Errorf("calling to PluginSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginSetting.
func (c *PluginSettingClient) Update() *PluginSettingUpdate {
	mutation := newPluginSettingMutation(c.config, OpUpdate)
	return &PluginSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginSettingClient) UpdateOne(_m *PluginSetting) *PluginSettingUpdateOne {
	mutation := newPluginSettingMutation(c.config, OpUpdateOne, withPluginSetting(_m))
	return &PluginSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginSettingClient) UpdateOneID(id string) *PluginSettingUpdateOne {
	mutation := newPluginSettingMutation(c.config, OpUpdateOne, withPluginSettingID(id))
	return &PluginSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginSetting.
func (c *PluginSettingClient) Delete() *PluginSettingDelete {
	mutation := newPluginSettingMutation(c.config, OpDelete)
	return &PluginSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginSettingClient) DeleteOne(_m *PluginSetting) *PluginSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginSettingClient) DeleteOneID(id string) *PluginSettingDeleteOne {
	builder := c.Delete().Where(pluginsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginSettingDeleteOne{builder}
}

// Query returns a query builder for PluginSetting.
func (c *PluginSettingClient) Query() *PluginSettingQuery {
	return &PluginSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginSetting entity by its id.
func (c *PluginSettingClient) Get(ctx context.Context, id string) (*PluginSetting, error) {
	return c.Query().Where(pluginsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginSettingClient) GetX(ctx context.Context, id string) *PluginSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginSettingClient) Hooks() []Hook {
	return c.hooks.PluginSetting
}

// Interceptors returns the client interceptors.
func (c *PluginSettingClient) Interceptors() []Interceptor {
	return c.inters.PluginSetting
}

func (c *PluginSettingClient) mutate(ctx context.Context, m *PluginSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginSetting mutation op: %q", m.Op())
	}
}

// SchemaAuditClient is a client for the SchemaAudit schema.
type SchemaAuditClient struct {
	config
}

// NewSchemaAuditClient returns a client for the SchemaAudit from the given config.
func NewSchemaAuditClient(c config) *SchemaAuditClient {
	return &SchemaAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schemaaudit.Hooks(f(g(h())))`.
func (c *SchemaAuditClient) Use(hooks ...Hook) {
	c.hooks.SchemaAudit = append(c.hooks.SchemaAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schemaaudit.Intercept(f(g(h())))`.
func (c *SchemaAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchemaAudit = append(c.inters.SchemaAudit, interceptors...)
}

// Create returns a builder for creating a SchemaAudit entity.
func (c *SchemaAuditClient) Create() *SchemaAuditCreate {
	mutation := newSchemaAuditMutation(c.config, OpCreate)
	return &SchemaAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchemaAudit entities.
func (c *SchemaAuditClient) CreateBulk(builders ...*SchemaAuditCreate) *SchemaAuditCreateBulk {
	return &SchemaAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemaAuditClient) MapCreateBulk(slice any, setFunc func(*SchemaAuditCreate, int)) *SchemaAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemaAuditCreateBulk{err: fmt.Errorf("calling to SchemaAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemaAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemaAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchemaAudit.
func (c *SchemaAuditClient) Update() *SchemaAuditUpdate {
	mutation := newSchemaAuditMutation(c.config, OpUpdate)
	return &SchemaAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemaAuditClient) UpdateOne(_m *SchemaAudit) *SchemaAuditUpdateOne {
	mutation := newSchemaAuditMutation(c.config, OpUpdateOne, withSchemaAudit(_m))
	return &SchemaAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemaAuditClient) UpdateOneID(id int64) *SchemaAuditUpdateOne {
	mutation := newSchemaAuditMutation(c.config, OpUpdateOne, withSchemaAuditID(id))
	return &SchemaAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchemaAudit.
func (c *SchemaAuditClient) Delete() *SchemaAuditDelete {
	mutation := newSchemaAuditMutation(c.config, OpDelete)
	return &SchemaAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemaAuditClient) DeleteOne(_m *SchemaAudit) *SchemaAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemaAuditClient) DeleteOneID(id int64) *SchemaAuditDeleteOne {
	builder := c.Delete().Where(schemaaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemaAuditDeleteOne{builder}
}

// Query returns a query builder for SchemaAudit.
func (c *SchemaAuditClient) Query() *SchemaAuditQuery {
	return &SchemaAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchemaAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a SchemaAudit entity by its id.
func (c *SchemaAuditClient) Get(ctx context.Context, id int64) (*SchemaAudit, error) {
	return c.Query().Where(schemaaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemaAuditClient) GetX(ctx context.Context, id int64) *SchemaAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SchemaAuditClient) Hooks() []Hook {
	return c.hooks.SchemaAudit
}

// Interceptors returns the client interceptors.
func (c *SchemaAuditClient) Interceptors() []Interceptor {
	return c.inters.SchemaAudit
}

func (c *SchemaAuditClient) mutate(ctx context.Context, m *SchemaAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemaAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemaAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemaAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemaAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchemaAudit mutation op: %q", m.Op())
	}
}

// StrategyClient is a client for the Strategy schema.
type StrategyClient struct {
	config
}

// NewStrategyClient returns a client for the Strategy from the given config.
func NewStrategyClient(c config) *StrategyClient {
	return &StrategyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `strategy.Hooks(f(g(h())))`.
func (c *StrategyClient) Use(hooks ...Hook) {
	c.hooks.Strategy = append(c.hooks.Strategy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `strategy.Intercept(f(g(h())))`.
func (c *StrategyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Strategy = append(c.inters.Strategy, interceptors...)
}

// Create returns a builder for creating a Strategy entity.
func (c *StrategyClient) Create() *StrategyCreate {
	mutation := newStrategyMutation(c.config, OpCreate)
	return &StrategyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Strategy entities.
func (c *StrategyClient) CreateBulk(builders ...*StrategyCreate) *StrategyCreateBulk {
	return &StrategyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StrategyClient) MapCreateBulk(slice any, setFunc func(*StrategyCreate, int)) *StrategyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StrategyCreateBulk{err: fmt.Errorf("calling to StrategyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StrategyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StrategyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Strategy.
func (c *StrategyClient) Update() *StrategyUpdate {
	mutation := newStrategyMutation(c.config, OpUpdate)
	return &StrategyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StrategyClient) UpdateOne(_m *Strategy) *StrategyUpdateOne {
	mutation := newStrategyMutation(c.config, OpUpdateOne, withStrategy(_m))
	return &StrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StrategyClient) UpdateOneID(id string) *StrategyUpdateOne {
	mutation := newStrategyMutation(c.config, OpUpdateOne, withStrategyID(id))
	return &StrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Strategy.
func (c *StrategyClient) Delete() *StrategyDelete {
	mutation := newStrategyMutation(c.config, OpDelete)
	return &StrategyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StrategyClient) DeleteOne(_m *Strategy) *StrategyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StrategyClient) DeleteOneID(id string) *StrategyDeleteOne {
	builder := c.Delete().Where(strategy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StrategyDeleteOne{builder}
}

// Query returns a query builder for Strategy.
func (c *StrategyClient) Query() *StrategyQuery {
	return &StrategyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStrategy},
		inters: c.Interceptors(),
	}
}

// Get returns a Strategy entity by its id.
func (c *StrategyClient) Get(ctx context.Context, id string) (*Strategy, error) {
	return c.Query().Where(strategy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StrategyClient) GetX(ctx context.Context, id string) *Strategy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArena queries the arena edge of a Strategy.
func (c *StrategyClient) QueryArena(_m *Strategy) *ArenaQuery {
	query := (&ArenaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(strategy.Table, strategy.FieldID, id),
			sqlgraph.To(arena.Table, arena.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, strategy.ArenaTable, strategy.ArenaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StrategyClient) Hooks() []Hook {
	return c.hooks.Strategy
}

// Interceptors returns the client interceptors.
func (c *StrategyClient) Interceptors() []Interceptor {
	return c.inters.Strategy
}

func (c *StrategyClient) mutate(ctx context.Context, m *StrategyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StrategyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StrategyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StrategyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Strategy mutation op: %q", m.Op())
	}
}

// SubTaskClient is a client for the SubTask schema.
type SubTaskClient struct {
	config
}

// NewSubTaskClient returns a client for the SubTask from the given config.
func NewSubTaskClient(c config) *SubTaskClient {
	return &SubTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtask.Hooks(f(g(h())))`.
func (c *SubTaskClient) Use(hooks ...Hook) {
	c.hooks.SubTask = append(c.hooks.SubTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtask.Intercept(f(g(h())))`.
func (c *SubTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubTask = append(c.inters.SubTask, interceptors...)
}

// Create returns a builder for creating a SubTask entity.
func (c *SubTaskClient) Create() *SubTaskCreate {
	mutation := newSubTaskMutation(c.config, OpCreate)
	return &SubTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubTask entities.
func (c *SubTaskClient) CreateBulk(builders ...*SubTaskCreate) *SubTaskCreateBulk {
	return &SubTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubTaskClient) MapCreateBulk(slice any, setFunc func(*SubTaskCreate, int)) *SubTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubTaskCreateBulk{err: fmt.Errorf("calling to SubTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubTask.
func (c *SubTaskClient) Update() *SubTaskUpdate {
	mutation := newSubTaskMutation(c.config, OpUpdate)
	return &SubTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubTaskClient) UpdateOne(_m *SubTask) *SubTaskUpdateOne {
	mutation := newSubTaskMutation(c.config, OpUpdateOne, withSubTask(_m))
	return &SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubTaskClient) UpdateOneID(id string) *SubTaskUpdateOne {
	mutation := newSubTaskMutation(c.config, OpUpdateOne, withSubTaskID(id))
	return &SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubTask.
func (c *SubTaskClient) Delete() *SubTaskDelete {
	mutation := newSubTaskMutation(c.config, OpDelete)
	return &SubTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubTaskClient) DeleteOne(_m *SubTask) *SubTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubTaskClient) DeleteOneID(id string) *SubTaskDeleteOne {
	builder := c.Delete().Where(subtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubTaskDeleteOne{builder}
}

// Query returns a query builder for SubTask.
func (c *SubTaskClient) Query() *SubTaskQuery {
	return &SubTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubTask},
		inters: c.Interceptors(),
	}
}

// Get returns a SubTask entity by its id.
func (c *SubTaskClient) Get(ctx context.Context, id string) (*SubTask, error) {
	return c.Query().Where(subtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubTaskClient) GetX(ctx context.Context, id string) *SubTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a SubTask.
func (c *SubTaskClient) QueryExecution(_m *SubTask) *BatchExecutionQuery {
	query := (&BatchExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subtask.Table, subtask.FieldID, id),
			sqlgraph.To(batchexecution.Table, batchexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subtask.ExecutionTable, subtask.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubTaskClient) Hooks() []Hook {
	return c.hooks.SubTask
}

// Interceptors returns the client interceptors.
func (c *SubTaskClient) Interceptors() []Interceptor {
	return c.inters.SubTask
}

func (c *SubTaskClient) mutate(ctx context.Context, m *SubTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubTask mutation op: %q", m.Op())
	}
}

// ThinkingMessageClient is a client for the ThinkingMessage schema.
type ThinkingMessageClient struct {
	config
}

// NewThinkingMessageClient returns a client for the ThinkingMessage from the given config.
func NewThinkingMessageClient(c config) *ThinkingMessageClient {
	return &ThinkingMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thinkingmessage.Hooks(f(g(h())))`.
func (c *ThinkingMessageClient) Use(hooks ...Hook) {
	c.hooks.ThinkingMessage = append(c.hooks.ThinkingMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thinkingmessage.Intercept(f(g(h())))`.
func (c *ThinkingMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThinkingMessage = append(c.inters.ThinkingMessage, interceptors...)
}

// Create returns a builder for creating a ThinkingMessage entity.
func (c *ThinkingMessageClient) Create() *ThinkingMessageCreate {
	mutation := newThinkingMessageMutation(c.config, OpCreate)
	return &ThinkingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThinkingMessage entities.
func (c *ThinkingMessageClient) CreateBulk(builders ...*ThinkingMessageCreate) *ThinkingMessageCreateBulk {
	return &ThinkingMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThinkingMessageClient) MapCreateBulk(slice any, setFunc func(*ThinkingMessageCreate, int)) *ThinkingMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThinkingMessageCreateBulk{err: fmt.Errorf("calling to ThinkingMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThinkingMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThinkingMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThinkingMessage.
func (c *ThinkingMessageClient) Update() *ThinkingMessageUpdate {
	mutation := newThinkingMessageMutation(c.config, OpUpdate)
	return &ThinkingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThinkingMessageClient) UpdateOne(_m *ThinkingMessage) *ThinkingMessageUpdateOne {
	mutation := newThinkingMessageMutation(c.config, OpUpdateOne, withThinkingMessage(_m))
	return &ThinkingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThinkingMessageClient) UpdateOneID(id string) *ThinkingMessageUpdateOne {
	mutation := newThinkingMessageMutation(c.config, OpUpdateOne, withThinkingMessageID(id))
	return &ThinkingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThinkingMessage.
func (c *ThinkingMessageClient) Delete() *ThinkingMessageDelete {
	mutation := newThinkingMessageMutation(c.config, OpDelete)
	return &ThinkingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThinkingMessageClient) DeleteOne(_m *ThinkingMessage) *ThinkingMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThinkingMessageClient) DeleteOneID(id string) *ThinkingMessageDeleteOne {
	builder := c.Delete().Where(thinkingmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThinkingMessageDeleteOne{builder}
}

// Query returns a query builder for ThinkingMessage.
func (c *ThinkingMessageClient) Query() *ThinkingMessageQuery {
	return &ThinkingMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThinkingMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ThinkingMessage entity by its id.
func (c *ThinkingMessageClient) Get(ctx context.Context, id string) (*ThinkingMessage, error) {
	return c.Query().Where(thinkingmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThinkingMessageClient) GetX(ctx context.Context, id string) *ThinkingMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArena queries the arena edge of a ThinkingMessage.
func (c *ThinkingMessageClient) QueryArena(_m *ThinkingMessage) *ArenaQuery {
	query := (&ArenaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thinkingmessage.Table, thinkingmessage.FieldID, id),
			sqlgraph.To(arena.Table, arena.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, thinkingmessage.ArenaTable, thinkingmessage.ArenaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThinkingMessageClient) Hooks() []Hook {
	return c.hooks.ThinkingMessage
}

// Interceptors returns the client interceptors.
func (c *ThinkingMessageClient) Interceptors() []Interceptor {
	return c.inters.ThinkingMessage
}

func (c *ThinkingMessageClient) mutate(ctx context.Context, m *ThinkingMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThinkingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThinkingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThinkingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThinkingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThinkingMessage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Arena, BatchExecution, DiscussionRound, EliminationEvent, EvaluationReport,
		PluginSetting, SchemaAudit, Strategy, SubTask, ThinkingMessage []ent.Hook
	}
	inters struct {
		Arena, BatchExecution, DiscussionRound, EliminationEvent, EvaluationReport,
		PluginSetting, SchemaAudit, Strategy, SubTask,
		ThinkingMessage []ent.Interceptor
	}
)
