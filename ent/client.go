// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/conjugo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/llmrequestevent"
	"github.com/abhisek/conjugo/ent/practicestat"
	"github.com/abhisek/conjugo/ent/verb"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BankQuestion is the client for interacting with the BankQuestion builders.
	BankQuestion *BankQuestionClient
	// Conjugation is the client for interacting with the Conjugation builders.
	Conjugation *ConjugationClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PracticeStat is the client for interacting with the PracticeStat builders.
	PracticeStat *PracticeStatClient
	// Verb is the client for interacting with the Verb builders.
	Verb *VerbClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BankQuestion = NewBankQuestionClient(c.config)
	c.Conjugation = NewConjugationClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PracticeStat = NewPracticeStatClient(c.config)
	c.Verb = NewVerbClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		BankQuestion:    NewBankQuestionClient(cfg),
		Conjugation:     NewConjugationClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PracticeStat:    NewPracticeStatClient(cfg),
		Verb:            NewVerbClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		BankQuestion:    NewBankQuestionClient(cfg),
		Conjugation:     NewConjugationClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PracticeStat:    NewPracticeStatClient(cfg),
		Verb:            NewVerbClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BankQuestion.
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
	c.BankQuestion.Use(hooks...)
	c.Conjugation.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PracticeStat.Use(hooks...)
	c.Verb.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BankQuestion.Intercept(interceptors...)
	c.Conjugation.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PracticeStat.Intercept(interceptors...)
	c.Verb.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BankQuestionMutation:
		return c.BankQuestion.mutate(ctx, m)
	case *ConjugationMutation:
		return c.Conjugation.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PracticeStatMutation:
		return c.PracticeStat.mutate(ctx, m)
	case *VerbMutation:
		return c.Verb.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BankQuestionClient is a client for the BankQuestion schema.
type BankQuestionClient struct {
	config
}

// NewBankQuestionClient returns a client for the BankQuestion from the given config.
func NewBankQuestionClient(c config) *BankQuestionClient {
	return &BankQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bankquestion.Hooks(f(g(h())))`.
func (c *BankQuestionClient) Use(hooks ...Hook) {
	c.hooks.BankQuestion = append(c.hooks.BankQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bankquestion.Intercept(f(g(h())))`.
func (c *BankQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BankQuestion = append(c.inters.BankQuestion, interceptors...)
}

// Create returns a builder for creating a BankQuestion entity.
func (c *BankQuestionClient) Create() *BankQuestionCreate {
	mutation := newBankQuestionMutation(c.config, OpCreate)
	return &BankQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BankQuestion entities.
func (c *BankQuestionClient) CreateBulk(builders ...*BankQuestionCreate) *BankQuestionCreateBulk {
	return &BankQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BankQuestionClient) MapCreateBulk(slice any, setFunc func(*BankQuestionCreate, int)) *BankQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BankQuestionCreateBulk{err: fmt.Errorf("calling to BankQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BankQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BankQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BankQuestion.
func (c *BankQuestionClient) Update() *BankQuestionUpdate {
	mutation := newBankQuestionMutation(c.config, OpUpdate)
	return &BankQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BankQuestionClient) UpdateOne(_m *BankQuestion) *BankQuestionUpdateOne {
	mutation := newBankQuestionMutation(c.config, OpUpdateOne, withBankQuestion(_m))
	return &BankQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BankQuestionClient) UpdateOneID(id int) *BankQuestionUpdateOne {
	mutation := newBankQuestionMutation(c.config, OpUpdateOne, withBankQuestionID(id))
	return &BankQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BankQuestion.
func (c *BankQuestionClient) Delete() *BankQuestionDelete {
	mutation := newBankQuestionMutation(c.config, OpDelete)
	return &BankQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BankQuestionClient) DeleteOne(_m *BankQuestion) *BankQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BankQuestionClient) DeleteOneID(id int) *BankQuestionDeleteOne {
	builder := c.Delete().Where(bankquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BankQuestionDeleteOne{builder}
}

// Query returns a query builder for BankQuestion.
func (c *BankQuestionClient) Query() *BankQuestionQuery {
	return &BankQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBankQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a BankQuestion entity by its id.
func (c *BankQuestionClient) Get(ctx context.Context, id int) (*BankQuestion, error) {
	return c.Query().Where(bankquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BankQuestionClient) GetX(ctx context.Context, id int) *BankQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVerb queries the verb edge of a BankQuestion.
func (c *BankQuestionClient) QueryVerb(_m *BankQuestion) *VerbQuery {
	query := (&VerbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bankquestion.Table, bankquestion.FieldID, id),
			sqlgraph.To(verb.Table, verb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bankquestion.VerbTable, bankquestion.VerbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BankQuestionClient) Hooks() []Hook {
	return c.hooks.BankQuestion
}

// Interceptors returns the client interceptors.
func (c *BankQuestionClient) Interceptors() []Interceptor {
	return c.inters.BankQuestion
}

func (c *BankQuestionClient) mutate(ctx context.Context, m *BankQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BankQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BankQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BankQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BankQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BankQuestion mutation op: %q", m.Op())
	}
}

// ConjugationClient is a client for the Conjugation schema.
type ConjugationClient struct {
	config
}

// NewConjugationClient returns a client for the Conjugation from the given config.
func NewConjugationClient(c config) *ConjugationClient {
	return &ConjugationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conjugation.Hooks(f(g(h())))`.
func (c *ConjugationClient) Use(hooks ...Hook) {
	c.hooks.Conjugation = append(c.hooks.Conjugation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conjugation.Intercept(f(g(h())))`.
func (c *ConjugationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conjugation = append(c.inters.Conjugation, interceptors...)
}

// Create returns a builder for creating a Conjugation entity.
func (c *ConjugationClient) Create() *ConjugationCreate {
	mutation := newConjugationMutation(c.config, OpCreate)
	return &ConjugationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conjugation entities.
func (c *ConjugationClient) CreateBulk(builders ...*ConjugationCreate) *ConjugationCreateBulk {
	return &ConjugationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConjugationClient) MapCreateBulk(slice any, setFunc func(*ConjugationCreate, int)) *ConjugationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConjugationCreateBulk{err: fmt.Errorf("calling to ConjugationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConjugationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConjugationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conjugation.
func (c *ConjugationClient) Update() *ConjugationUpdate {
	mutation := newConjugationMutation(c.config, OpUpdate)
	return &ConjugationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConjugationClient) UpdateOne(_m *Conjugation) *ConjugationUpdateOne {
	mutation := newConjugationMutation(c.config, OpUpdateOne, withConjugation(_m))
	return &ConjugationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConjugationClient) UpdateOneID(id int) *ConjugationUpdateOne {
	mutation := newConjugationMutation(c.config, OpUpdateOne, withConjugationID(id))
	return &ConjugationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conjugation.
func (c *ConjugationClient) Delete() *ConjugationDelete {
	mutation := newConjugationMutation(c.config, OpDelete)
	return &ConjugationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConjugationClient) DeleteOne(_m *Conjugation) *ConjugationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConjugationClient) DeleteOneID(id int) *ConjugationDeleteOne {
	builder := c.Delete().Where(conjugation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConjugationDeleteOne{builder}
}

// Query returns a query builder for Conjugation.
func (c *ConjugationClient) Query() *ConjugationQuery {
	return &ConjugationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConjugation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conjugation entity by its id.
func (c *ConjugationClient) Get(ctx context.Context, id int) (*Conjugation, error) {
	return c.Query().Where(conjugation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConjugationClient) GetX(ctx context.Context, id int) *Conjugation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVerb queries the verb edge of a Conjugation.
func (c *ConjugationClient) QueryVerb(_m *Conjugation) *VerbQuery {
	query := (&VerbClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conjugation.Table, conjugation.FieldID, id),
			sqlgraph.To(verb.Table, verb.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conjugation.VerbTable, conjugation.VerbColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConjugationClient) Hooks() []Hook {
	return c.hooks.Conjugation
}

// Interceptors returns the client interceptors.
func (c *ConjugationClient) Interceptors() []Interceptor {
	return c.inters.Conjugation
}

func (c *ConjugationClient) mutate(ctx context.Context, m *ConjugationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConjugationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConjugationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConjugationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConjugationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conjugation mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PracticeStatClient is a client for the PracticeStat schema.
type PracticeStatClient struct {
	config
}

// NewPracticeStatClient returns a client for the PracticeStat from the given config.
func NewPracticeStatClient(c config) *PracticeStatClient {
	return &PracticeStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicestat.Hooks(f(g(h())))`.
func (c *PracticeStatClient) Use(hooks ...Hook) {
	c.hooks.PracticeStat = append(c.hooks.PracticeStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicestat.Intercept(f(g(h())))`.
func (c *PracticeStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeStat = append(c.inters.PracticeStat, interceptors...)
}

// Create returns a builder for creating a PracticeStat entity.
func (c *PracticeStatClient) Create() *PracticeStatCreate {
	mutation := newPracticeStatMutation(c.config, OpCreate)
	return &PracticeStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeStat entities.
func (c *PracticeStatClient) CreateBulk(builders ...*PracticeStatCreate) *PracticeStatCreateBulk {
	return &PracticeStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeStatClient) MapCreateBulk(slice any, setFunc func(*PracticeStatCreate, int)) *PracticeStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeStatCreateBulk{err: fmt.Errorf("calling to PracticeStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeStat.
func (c *PracticeStatClient) Update() *PracticeStatUpdate {
	mutation := newPracticeStatMutation(c.config, OpUpdate)
	return &PracticeStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeStatClient) UpdateOne(_m *PracticeStat) *PracticeStatUpdateOne {
	mutation := newPracticeStatMutation(c.config, OpUpdateOne, withPracticeStat(_m))
	return &PracticeStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeStatClient) UpdateOneID(id int) *PracticeStatUpdateOne {
	mutation := newPracticeStatMutation(c.config, OpUpdateOne, withPracticeStatID(id))
	return &PracticeStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeStat.
func (c *PracticeStatClient) Delete() *PracticeStatDelete {
	mutation := newPracticeStatMutation(c.config, OpDelete)
	return &PracticeStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeStatClient) DeleteOne(_m *PracticeStat) *PracticeStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeStatClient) DeleteOneID(id int) *PracticeStatDeleteOne {
	builder := c.Delete().Where(practicestat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeStatDeleteOne{builder}
}

// Query returns a query builder for PracticeStat.
func (c *PracticeStatClient) Query() *PracticeStatQuery {
	return &PracticeStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeStat},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeStat entity by its id.
func (c *PracticeStatClient) Get(ctx context.Context, id int) (*PracticeStat, error) {
	return c.Query().Where(practicestat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeStatClient) GetX(ctx context.Context, id int) *PracticeStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeStatClient) Hooks() []Hook {
	return c.hooks.PracticeStat
}

// Interceptors returns the client interceptors.
func (c *PracticeStatClient) Interceptors() []Interceptor {
	return c.inters.PracticeStat
}

func (c *PracticeStatClient) mutate(ctx context.Context, m *PracticeStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeStat mutation op: %q", m.Op())
	}
}

// VerbClient is a client for the Verb schema.
type VerbClient struct {
	config
}

// NewVerbClient returns a client for the Verb from the given config.
func NewVerbClient(c config) *VerbClient {
	return &VerbClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verb.Hooks(f(g(h())))`.
func (c *VerbClient) Use(hooks ...Hook) {
	c.hooks.Verb = append(c.hooks.Verb, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verb.Intercept(f(g(h())))`.
func (c *VerbClient) Intercept(interceptors ...Interceptor) {
	c.inters.Verb = append(c.inters.Verb, interceptors...)
}

// Create returns a builder for creating a Verb entity.
func (c *VerbClient) Create() *VerbCreate {
	mutation := newVerbMutation(c.config, OpCreate)
	return &VerbCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Verb entities.
func (c *VerbClient) CreateBulk(builders ...*VerbCreate) *VerbCreateBulk {
	return &VerbCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerbClient) MapCreateBulk(slice any, setFunc func(*VerbCreate, int)) *VerbCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerbCreateBulk{err: fmt.Errorf("calling to VerbClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerbCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerbCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Verb.
func (c *VerbClient) Update() *VerbUpdate {
	mutation := newVerbMutation(c.config, OpUpdate)
	return &VerbUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerbClient) UpdateOne(_m *Verb) *VerbUpdateOne {
	mutation := newVerbMutation(c.config, OpUpdateOne, withVerb(_m))
	return &VerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerbClient) UpdateOneID(id int) *VerbUpdateOne {
	mutation := newVerbMutation(c.config, OpUpdateOne, withVerbID(id))
	return &VerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Verb.
func (c *VerbClient) Delete() *VerbDelete {
	mutation := newVerbMutation(c.config, OpDelete)
	return &VerbDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerbClient) DeleteOne(_m *Verb) *VerbDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerbClient) DeleteOneID(id int) *VerbDeleteOne {
	builder := c.Delete().Where(verb.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerbDeleteOne{builder}
}

// Query returns a query builder for Verb.
func (c *VerbClient) Query() *VerbQuery {
	return &VerbQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerb},
		inters: c.Interceptors(),
	}
}

// Get returns a Verb entity by its id.
func (c *VerbClient) Get(ctx context.Context, id int) (*Verb, error) {
	return c.Query().Where(verb.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerbClient) GetX(ctx context.Context, id int) *Verb {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConjugations queries the conjugations edge of a Verb.
func (c *VerbClient) QueryConjugations(_m *Verb) *ConjugationQuery {
	query := (&ConjugationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verb.Table, verb.FieldID, id),
			sqlgraph.To(conjugation.Table, conjugation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verb.ConjugationsTable, verb.ConjugationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Verb.
func (c *VerbClient) QueryQuestions(_m *Verb) *BankQuestionQuery {
	query := (&BankQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verb.Table, verb.FieldID, id),
			sqlgraph.To(bankquestion.Table, bankquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verb.QuestionsTable, verb.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerbClient) Hooks() []Hook {
	return c.hooks.Verb
}

// Interceptors returns the client interceptors.
func (c *VerbClient) Interceptors() []Interceptor {
	return c.inters.Verb
}

func (c *VerbClient) mutate(ctx context.Context, m *VerbMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerbCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerbUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerbUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerbDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Verb mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BankQuestion, Conjugation, LLMRequestEvent, PracticeStat, Verb []ent.Hook
	}
	inters struct {
		BankQuestion, Conjugation, LLMRequestEvent, PracticeStat, Verb []ent.Interceptor
	}
)
