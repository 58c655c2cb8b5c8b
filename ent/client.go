// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeframe-hq/codeframe/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/ent/auditlog"
	"github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/evidence"
	"github.com/codeframe-hq/codeframe/ent/issue"
	"github.com/codeframe-hq/codeframe/ent/project"
	"github.com/codeframe-hq/codeframe/ent/projectagent"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/ent/tokenusage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Blocker is the client for interacting with the Blocker builders.
	Blocker *BlockerClient
	// ContextCheckpoint is the client for interacting with the ContextCheckpoint builders.
	ContextCheckpoint *ContextCheckpointClient
	// ContextItem is the client for interacting with the ContextItem builders.
	ContextItem *ContextItemClient
	// CorrectionAttempt is the client for interacting with the CorrectionAttempt builders.
	CorrectionAttempt *CorrectionAttemptClient
	// Evidence is the client for interacting with the Evidence builders.
	Evidence *EvidenceClient
	// Issue is the client for interacting with the Issue builders.
	Issue *IssueClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectAgent is the client for interacting with the ProjectAgent builders.
	ProjectAgent *ProjectAgentClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TestResult is the client for interacting with the TestResult builders.
	TestResult *TestResultClient
	// TokenUsage is the client for interacting with the TokenUsage builders.
	TokenUsage *TokenUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Blocker = NewBlockerClient(c.config)
	c.ContextCheckpoint = NewContextCheckpointClient(c.config)
	c.ContextItem = NewContextItemClient(c.config)
	c.CorrectionAttempt = NewCorrectionAttemptClient(c.config)
	c.Evidence = NewEvidenceClient(c.config)
	c.Issue = NewIssueClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectAgent = NewProjectAgentClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TestResult = NewTestResultClient(c.config)
	c.TokenUsage = NewTokenUsageClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Agent:             NewAgentClient(cfg),
		AuditLog:          NewAuditLogClient(cfg),
		Blocker:           NewBlockerClient(cfg),
		ContextCheckpoint: NewContextCheckpointClient(cfg),
		ContextItem:       NewContextItemClient(cfg),
		CorrectionAttempt: NewCorrectionAttemptClient(cfg),
		Evidence:          NewEvidenceClient(cfg),
		Issue:             NewIssueClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectAgent:      NewProjectAgentClient(cfg),
		Task:              NewTaskClient(cfg),
		TestResult:        NewTestResultClient(cfg),
		TokenUsage:        NewTokenUsageClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Agent:             NewAgentClient(cfg),
		AuditLog:          NewAuditLogClient(cfg),
		Blocker:           NewBlockerClient(cfg),
		ContextCheckpoint: NewContextCheckpointClient(cfg),
		ContextItem:       NewContextItemClient(cfg),
		CorrectionAttempt: NewCorrectionAttemptClient(cfg),
		Evidence:          NewEvidenceClient(cfg),
		Issue:             NewIssueClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectAgent:      NewProjectAgentClient(cfg),
		Task:              NewTaskClient(cfg),
		TestResult:        NewTestResultClient(cfg),
		TokenUsage:        NewTokenUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AuditLog, c.Blocker, c.ContextCheckpoint, c.ContextItem,
		c.CorrectionAttempt, c.Evidence, c.Issue, c.Project, c.ProjectAgent, c.Task,
		c.TestResult, c.TokenUsage,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AuditLog, c.Blocker, c.ContextCheckpoint, c.ContextItem,
		c.CorrectionAttempt, c.Evidence, c.Issue, c.Project, c.ProjectAgent, c.Task,
		c.TestResult, c.TokenUsage,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *BlockerMutation:
		return c.Blocker.mutate(ctx, m)
	case *ContextCheckpointMutation:
		return c.ContextCheckpoint.mutate(ctx, m)
	case *ContextItemMutation:
		return c.ContextItem.mutate(ctx, m)
	case *CorrectionAttemptMutation:
		return c.CorrectionAttempt.mutate(ctx, m)
	case *EvidenceMutation:
		return c.Evidence.mutate(ctx, m)
	case *IssueMutation:
		return c.Issue.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectAgentMutation:
		return c.ProjectAgent.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TestResultMutation:
		return c.TestResult.mutate(ctx, m)
	case *TokenUsageMutation:
		return c.TokenUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// BlockerClient is a client for the Blocker schema.
type BlockerClient struct {
	config
}

// NewBlockerClient returns a client for the Blocker from the given config.
func NewBlockerClient(c config) *BlockerClient {
	return &BlockerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blocker.Hooks(f(g(h())))`.
func (c *BlockerClient) Use(hooks ...Hook) {
	c.hooks.Blocker = append(c.hooks.Blocker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blocker.Intercept(f(g(h())))`.
func (c *BlockerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blocker = append(c.inters.Blocker, interceptors...)
}

// Create returns a builder for creating a Blocker entity.
func (c *BlockerClient) Create() *BlockerCreate {
	mutation := newBlockerMutation(c.config, OpCreate)
	return &BlockerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blocker entities.
func (c *BlockerClient) CreateBulk(builders ...*BlockerCreate) *BlockerCreateBulk {
	return &BlockerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlockerClient) MapCreateBulk(slice any, setFunc func(*BlockerCreate, int)) *BlockerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlockerCreateBulk{err: fmt.Errorf("calling to BlockerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlockerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlockerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blocker.
func (c *BlockerClient) Update() *BlockerUpdate {
	mutation := newBlockerMutation(c.config, OpUpdate)
	return &BlockerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlockerClient) UpdateOne(_m *Blocker) *BlockerUpdateOne {
	mutation := newBlockerMutation(c.config, OpUpdateOne, withBlocker(_m))
	return &BlockerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlockerClient) UpdateOneID(id string) *BlockerUpdateOne {
	mutation := newBlockerMutation(c.config, OpUpdateOne, withBlockerID(id))
	return &BlockerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blocker.
func (c *BlockerClient) Delete() *BlockerDelete {
	mutation := newBlockerMutation(c.config, OpDelete)
	return &BlockerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlockerClient) DeleteOne(_m *Blocker) *BlockerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlockerClient) DeleteOneID(id string) *BlockerDeleteOne {
	builder := c.Delete().Where(blocker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlockerDeleteOne{builder}
}

// Query returns a query builder for Blocker.
func (c *BlockerClient) Query() *BlockerQuery {
	return &BlockerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlocker},
		inters: c.Interceptors(),
	}
}

// Get returns a Blocker entity by its id.
func (c *BlockerClient) Get(ctx context.Context, id string) (*Blocker, error) {
	return c.Query().Where(blocker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlockerClient) GetX(ctx context.Context, id string) *Blocker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlockerClient) Hooks() []Hook {
	return c.hooks.Blocker
}

// Interceptors returns the client interceptors.
func (c *BlockerClient) Interceptors() []Interceptor {
	return c.inters.Blocker
}

func (c *BlockerClient) mutate(ctx context.Context, m *BlockerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlockerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlockerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlockerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlockerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blocker mutation op: %q", m.Op())
	}
}

// ContextCheckpointClient is a client for the ContextCheckpoint schema.
type ContextCheckpointClient struct {
	config
}

// NewContextCheckpointClient returns a client for the ContextCheckpoint from the given config.
func NewContextCheckpointClient(c config) *ContextCheckpointClient {
	return &ContextCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextcheckpoint.Hooks(f(g(h())))`.
func (c *ContextCheckpointClient) Use(hooks ...Hook) {
	c.hooks.ContextCheckpoint = append(c.hooks.ContextCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextcheckpoint.Intercept(f(g(h())))`.
func (c *ContextCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextCheckpoint = append(c.inters.ContextCheckpoint, interceptors...)
}

// Create returns a builder for creating a ContextCheckpoint entity.
func (c *ContextCheckpointClient) Create() *ContextCheckpointCreate {
	mutation := newContextCheckpointMutation(c.config, OpCreate)
	return &ContextCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextCheckpoint entities.
func (c *ContextCheckpointClient) CreateBulk(builders ...*ContextCheckpointCreate) *ContextCheckpointCreateBulk {
	return &ContextCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextCheckpointClient) MapCreateBulk(slice any, setFunc func(*ContextCheckpointCreate, int)) *ContextCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextCheckpointCreateBulk{err: fmt.Errorf("calling to ContextCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextCheckpoint.
func (c *ContextCheckpointClient) Update() *ContextCheckpointUpdate {
	mutation := newContextCheckpointMutation(c.config, OpUpdate)
	return &ContextCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextCheckpointClient) UpdateOne(_m *ContextCheckpoint) *ContextCheckpointUpdateOne {
	mutation := newContextCheckpointMutation(c.config, OpUpdateOne, withContextCheckpoint(_m))
	return &ContextCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextCheckpointClient) UpdateOneID(id string) *ContextCheckpointUpdateOne {
	mutation := newContextCheckpointMutation(c.config, OpUpdateOne, withContextCheckpointID(id))
	return &ContextCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextCheckpoint.
func (c *ContextCheckpointClient) Delete() *ContextCheckpointDelete {
	mutation := newContextCheckpointMutation(c.config, OpDelete)
	return &ContextCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextCheckpointClient) DeleteOne(_m *ContextCheckpoint) *ContextCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextCheckpointClient) DeleteOneID(id string) *ContextCheckpointDeleteOne {
	builder := c.Delete().Where(contextcheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextCheckpointDeleteOne{builder}
}

// Query returns a query builder for ContextCheckpoint.
func (c *ContextCheckpointClient) Query() *ContextCheckpointQuery {
	return &ContextCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextCheckpoint entity by its id.
func (c *ContextCheckpointClient) Get(ctx context.Context, id string) (*ContextCheckpoint, error) {
	return c.Query().Where(contextcheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextCheckpointClient) GetX(ctx context.Context, id string) *ContextCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContextCheckpointClient) Hooks() []Hook {
	return c.hooks.ContextCheckpoint
}

// Interceptors returns the client interceptors.
func (c *ContextCheckpointClient) Interceptors() []Interceptor {
	return c.inters.ContextCheckpoint
}

func (c *ContextCheckpointClient) mutate(ctx context.Context, m *ContextCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextCheckpoint mutation op: %q", m.Op())
	}
}

// ContextItemClient is a client for the ContextItem schema.
type ContextItemClient struct {
	config
}

// NewContextItemClient returns a client for the ContextItem from the given config.
func NewContextItemClient(c config) *ContextItemClient {
	return &ContextItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextitem.Hooks(f(g(h())))`.
func (c *ContextItemClient) Use(hooks ...Hook) {
	c.hooks.ContextItem = append(c.hooks.ContextItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextitem.Intercept(f(g(h())))`.
func (c *ContextItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextItem = append(c.inters.ContextItem, interceptors...)
}

// Create returns a builder for creating a ContextItem entity.
func (c *ContextItemClient) Create() *ContextItemCreate {
	mutation := newContextItemMutation(c.config, OpCreate)
	return &ContextItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextItem entities.
func (c *ContextItemClient) CreateBulk(builders ...*ContextItemCreate) *ContextItemCreateBulk {
	return &ContextItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextItemClient) MapCreateBulk(slice any, setFunc func(*ContextItemCreate, int)) *ContextItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextItemCreateBulk{err: fmt.Errorf("calling to ContextItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextItem.
func (c *ContextItemClient) Update() *ContextItemUpdate {
	mutation := newContextItemMutation(c.config, OpUpdate)
	return &ContextItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextItemClient) UpdateOne(_m *ContextItem) *ContextItemUpdateOne {
	mutation := newContextItemMutation(c.config, OpUpdateOne, withContextItem(_m))
	return &ContextItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextItemClient) UpdateOneID(id string) *ContextItemUpdateOne {
	mutation := newContextItemMutation(c.config, OpUpdateOne, withContextItemID(id))
	return &ContextItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextItem.
func (c *ContextItemClient) Delete() *ContextItemDelete {
	mutation := newContextItemMutation(c.config, OpDelete)
	return &ContextItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextItemClient) DeleteOne(_m *ContextItem) *ContextItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextItemClient) DeleteOneID(id string) *ContextItemDeleteOne {
	builder := c.Delete().Where(contextitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextItemDeleteOne{builder}
}

// Query returns a query builder for ContextItem.
func (c *ContextItemClient) Query() *ContextItemQuery {
	return &ContextItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextItem entity by its id.
func (c *ContextItemClient) Get(ctx context.Context, id string) (*ContextItem, error) {
	return c.Query().Where(contextitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextItemClient) GetX(ctx context.Context, id string) *ContextItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ContextItem.
func (c *ContextItemClient) QueryProject(_m *ContextItem) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextitem.Table, contextitem.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextitem.ProjectTable, contextitem.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextItemClient) Hooks() []Hook {
	return c.hooks.ContextItem
}

// Interceptors returns the client interceptors.
func (c *ContextItemClient) Interceptors() []Interceptor {
	return c.inters.ContextItem
}

func (c *ContextItemClient) mutate(ctx context.Context, m *ContextItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextItem mutation op: %q", m.Op())
	}
}

// CorrectionAttemptClient is a client for the CorrectionAttempt schema.
type CorrectionAttemptClient struct {
	config
}

// NewCorrectionAttemptClient returns a client for the CorrectionAttempt from the given config.
func NewCorrectionAttemptClient(c config) *CorrectionAttemptClient {
	return &CorrectionAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `correctionattempt.Hooks(f(g(h())))`.
func (c *CorrectionAttemptClient) Use(hooks ...Hook) {
	c.hooks.CorrectionAttempt = append(c.hooks.CorrectionAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `correctionattempt.Intercept(f(g(h())))`.
func (c *CorrectionAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.CorrectionAttempt = append(c.inters.CorrectionAttempt, interceptors...)
}

// Create returns a builder for creating a CorrectionAttempt entity.
func (c *CorrectionAttemptClient) Create() *CorrectionAttemptCreate {
	mutation := newCorrectionAttemptMutation(c.config, OpCreate)
	return &CorrectionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CorrectionAttempt entities.
func (c *CorrectionAttemptClient) CreateBulk(builders ...*CorrectionAttemptCreate) *CorrectionAttemptCreateBulk {
	return &CorrectionAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CorrectionAttemptClient) MapCreateBulk(slice any, setFunc func(*CorrectionAttemptCreate, int)) *CorrectionAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CorrectionAttemptCreateBulk{err: fmt.Errorf("calling to CorrectionAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CorrectionAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CorrectionAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CorrectionAttempt.
func (c *CorrectionAttemptClient) Update() *CorrectionAttemptUpdate {
	mutation := newCorrectionAttemptMutation(c.config, OpUpdate)
	return &CorrectionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CorrectionAttemptClient) UpdateOne(_m *CorrectionAttempt) *CorrectionAttemptUpdateOne {
	mutation := newCorrectionAttemptMutation(c.config, OpUpdateOne, withCorrectionAttempt(_m))
	return &CorrectionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CorrectionAttemptClient) UpdateOneID(id string) *CorrectionAttemptUpdateOne {
	mutation := newCorrectionAttemptMutation(c.config, OpUpdateOne, withCorrectionAttemptID(id))
	return &CorrectionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CorrectionAttempt.
func (c *CorrectionAttemptClient) Delete() *CorrectionAttemptDelete {
	mutation := newCorrectionAttemptMutation(c.config, OpDelete)
	return &CorrectionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CorrectionAttemptClient) DeleteOne(_m *CorrectionAttempt) *CorrectionAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CorrectionAttemptClient) DeleteOneID(id string) *CorrectionAttemptDeleteOne {
	builder := c.Delete().Where(correctionattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CorrectionAttemptDeleteOne{builder}
}

// Query returns a query builder for CorrectionAttempt.
func (c *CorrectionAttemptClient) Query() *CorrectionAttemptQuery {
	return &CorrectionAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCorrectionAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a CorrectionAttempt entity by its id.
func (c *CorrectionAttemptClient) Get(ctx context.Context, id string) (*CorrectionAttempt, error) {
	return c.Query().Where(correctionattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CorrectionAttemptClient) GetX(ctx context.Context, id string) *CorrectionAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CorrectionAttempt.
func (c *CorrectionAttemptClient) QueryTask(_m *CorrectionAttempt) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(correctionattempt.Table, correctionattempt.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, correctionattempt.TaskTable, correctionattempt.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CorrectionAttemptClient) Hooks() []Hook {
	return c.hooks.CorrectionAttempt
}

// Interceptors returns the client interceptors.
func (c *CorrectionAttemptClient) Interceptors() []Interceptor {
	return c.inters.CorrectionAttempt
}

func (c *CorrectionAttemptClient) mutate(ctx context.Context, m *CorrectionAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CorrectionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CorrectionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CorrectionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CorrectionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CorrectionAttempt mutation op: %q", m.Op())
	}
}

// EvidenceClient is a client for the Evidence schema.
type EvidenceClient struct {
	config
}

// NewEvidenceClient returns a client for the Evidence from the given config.
func NewEvidenceClient(c config) *EvidenceClient {
	return &EvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidence.Hooks(f(g(h())))`.
func (c *EvidenceClient) Use(hooks ...Hook) {
	c.hooks.Evidence = append(c.hooks.Evidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidence.Intercept(f(g(h())))`.
func (c *EvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evidence = append(c.inters.Evidence, interceptors...)
}

// Create returns a builder for creating a Evidence entity.
func (c *EvidenceClient) Create() *EvidenceCreate {
	mutation := newEvidenceMutation(c.config, OpCreate)
	return &EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evidence entities.
func (c *EvidenceClient) CreateBulk(builders ...*EvidenceCreate) *EvidenceCreateBulk {
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceClient) MapCreateBulk(slice any, setFunc func(*EvidenceCreate, int)) *EvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCreateBulk{err: fmt.Errorf("calling to EvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evidence.
func (c *EvidenceClient) Update() *EvidenceUpdate {
	mutation := newEvidenceMutation(c.config, OpUpdate)
	return &EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceClient) UpdateOne(_m *Evidence) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidence(_m))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceClient) UpdateOneID(id string) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidenceID(id))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evidence.
func (c *EvidenceClient) Delete() *EvidenceDelete {
	mutation := newEvidenceMutation(c.config, OpDelete)
	return &EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceClient) DeleteOne(_m *Evidence) *EvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceClient) DeleteOneID(id string) *EvidenceDeleteOne {
	builder := c.Delete().Where(evidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceDeleteOne{builder}
}

// Query returns a query builder for Evidence.
func (c *EvidenceClient) Query() *EvidenceQuery {
	return &EvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a Evidence entity by its id.
func (c *EvidenceClient) Get(ctx context.Context, id string) (*Evidence, error) {
	return c.Query().Where(evidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceClient) GetX(ctx context.Context, id string) *Evidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvidenceClient) Hooks() []Hook {
	return c.hooks.Evidence
}

// Interceptors returns the client interceptors.
func (c *EvidenceClient) Interceptors() []Interceptor {
	return c.inters.Evidence
}

func (c *EvidenceClient) mutate(ctx context.Context, m *EvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evidence mutation op: %q", m.Op())
	}
}

// IssueClient is a client for the Issue schema.
type IssueClient struct {
	config
}

// NewIssueClient returns a client for the Issue from the given config.
func NewIssueClient(c config) *IssueClient {
	return &IssueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `issue.Hooks(f(g(h())))`.
func (c *IssueClient) Use(hooks ...Hook) {
	c.hooks.Issue = append(c.hooks.Issue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `issue.Intercept(f(g(h())))`.
func (c *IssueClient) Intercept(interceptors ...Interceptor) {
	c.inters.Issue = append(c.inters.Issue, interceptors...)
}

// Create returns a builder for creating a Issue entity.
func (c *IssueClient) Create() *IssueCreate {
	mutation := newIssueMutation(c.config, OpCreate)
	return &IssueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Issue entities.
func (c *IssueClient) CreateBulk(builders ...*IssueCreate) *IssueCreateBulk {
	return &IssueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IssueClient) MapCreateBulk(slice any, setFunc func(*IssueCreate, int)) *IssueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IssueCreateBulk{err: fmt.Errorf("calling to IssueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IssueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IssueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Issue.
func (c *IssueClient) Update() *IssueUpdate {
	mutation := newIssueMutation(c.config, OpUpdate)
	return &IssueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IssueClient) UpdateOne(_m *Issue) *IssueUpdateOne {
	mutation := newIssueMutation(c.config, OpUpdateOne, withIssue(_m))
	return &IssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IssueClient) UpdateOneID(id string) *IssueUpdateOne {
	mutation := newIssueMutation(c.config, OpUpdateOne, withIssueID(id))
	return &IssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Issue.
func (c *IssueClient) Delete() *IssueDelete {
	mutation := newIssueMutation(c.config, OpDelete)
	return &IssueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IssueClient) DeleteOne(_m *Issue) *IssueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IssueClient) DeleteOneID(id string) *IssueDeleteOne {
	builder := c.Delete().Where(issue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IssueDeleteOne{builder}
}

// Query returns a query builder for Issue.
func (c *IssueClient) Query() *IssueQuery {
	return &IssueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIssue},
		inters: c.Interceptors(),
	}
}

// Get returns a Issue entity by its id.
func (c *IssueClient) Get(ctx context.Context, id string) (*Issue, error) {
	return c.Query().Where(issue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IssueClient) GetX(ctx context.Context, id string) *Issue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Issue.
func (c *IssueClient) QueryProject(_m *Issue) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(issue.Table, issue.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, issue.ProjectTable, issue.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Issue.
func (c *IssueClient) QueryTasks(_m *Issue) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(issue.Table, issue.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, issue.TasksTable, issue.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IssueClient) Hooks() []Hook {
	return c.hooks.Issue
}

// Interceptors returns the client interceptors.
func (c *IssueClient) Interceptors() []Interceptor {
	return c.inters.Issue
}

func (c *IssueClient) mutate(ctx context.Context, m *IssueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IssueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IssueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IssueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Issue mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIssues queries the issues edge of a Project.
func (c *ProjectClient) QueryIssues(_m *Project) *IssueQuery {
	query := (&IssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(issue.Table, issue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.IssuesTable, project.IssuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContextItems queries the context_items edge of a Project.
func (c *ProjectClient) QueryContextItems(_m *Project) *ContextItemQuery {
	query := (&ContextItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(contextitem.Table, contextitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ContextItemsTable, project.ContextItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectAgentClient is a client for the ProjectAgent schema.
type ProjectAgentClient struct {
	config
}

// NewProjectAgentClient returns a client for the ProjectAgent from the given config.
func NewProjectAgentClient(c config) *ProjectAgentClient {
	return &ProjectAgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectagent.Hooks(f(g(h())))`.
func (c *ProjectAgentClient) Use(hooks ...Hook) {
	c.hooks.ProjectAgent = append(c.hooks.ProjectAgent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectagent.Intercept(f(g(h())))`.
func (c *ProjectAgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectAgent = append(c.inters.ProjectAgent, interceptors...)
}

// Create returns a builder for creating a ProjectAgent entity.
func (c *ProjectAgentClient) Create() *ProjectAgentCreate {
	mutation := newProjectAgentMutation(c.config, OpCreate)
	return &ProjectAgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectAgent entities.
func (c *ProjectAgentClient) CreateBulk(builders ...*ProjectAgentCreate) *ProjectAgentCreateBulk {
	return &ProjectAgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectAgentClient) MapCreateBulk(slice any, setFunc func(*ProjectAgentCreate, int)) *ProjectAgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectAgentCreateBulk{err: fmt.Errorf("calling to ProjectAgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectAgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectAgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectAgent.
func (c *ProjectAgentClient) Update() *ProjectAgentUpdate {
	mutation := newProjectAgentMutation(c.config, OpUpdate)
	return &ProjectAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectAgentClient) UpdateOne(_m *ProjectAgent) *ProjectAgentUpdateOne {
	mutation := newProjectAgentMutation(c.config, OpUpdateOne, withProjectAgent(_m))
	return &ProjectAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectAgentClient) UpdateOneID(id string) *ProjectAgentUpdateOne {
	mutation := newProjectAgentMutation(c.config, OpUpdateOne, withProjectAgentID(id))
	return &ProjectAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectAgent.
func (c *ProjectAgentClient) Delete() *ProjectAgentDelete {
	mutation := newProjectAgentMutation(c.config, OpDelete)
	return &ProjectAgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectAgentClient) DeleteOne(_m *ProjectAgent) *ProjectAgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectAgentClient) DeleteOneID(id string) *ProjectAgentDeleteOne {
	builder := c.Delete().Where(projectagent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectAgentDeleteOne{builder}
}

// Query returns a query builder for ProjectAgent.
func (c *ProjectAgentClient) Query() *ProjectAgentQuery {
	return &ProjectAgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectAgent entity by its id.
func (c *ProjectAgentClient) Get(ctx context.Context, id string) (*ProjectAgent, error) {
	return c.Query().Where(projectagent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectAgentClient) GetX(ctx context.Context, id string) *ProjectAgent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectAgentClient) Hooks() []Hook {
	return c.hooks.ProjectAgent
}

// Interceptors returns the client interceptors.
func (c *ProjectAgentClient) Interceptors() []Interceptor {
	return c.inters.ProjectAgent
}

func (c *ProjectAgentClient) mutate(ctx context.Context, m *ProjectAgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectAgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectAgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectAgent mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIssue queries the issue edge of a Task.
func (c *TaskClient) QueryIssue(_m *Task) *IssueQuery {
	query := (&IssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(issue.Table, issue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.IssueTable, task.IssueColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTestResults queries the test_results edge of a Task.
func (c *TaskClient) QueryTestResults(_m *Task) *TestResultQuery {
	query := (&TestResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(testresult.Table, testresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.TestResultsTable, task.TestResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCorrectionAttempts queries the correction_attempts edge of a Task.
func (c *TaskClient) QueryCorrectionAttempts(_m *Task) *CorrectionAttemptQuery {
	query := (&CorrectionAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(correctionattempt.Table, correctionattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CorrectionAttemptsTable, task.CorrectionAttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TestResultClient is a client for the TestResult schema.
type TestResultClient struct {
	config
}

// NewTestResultClient returns a client for the TestResult from the given config.
func NewTestResultClient(c config) *TestResultClient {
	return &TestResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testresult.Hooks(f(g(h())))`.
func (c *TestResultClient) Use(hooks ...Hook) {
	c.hooks.TestResult = append(c.hooks.TestResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testresult.Intercept(f(g(h())))`.
func (c *TestResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestResult = append(c.inters.TestResult, interceptors...)
}

// Create returns a builder for creating a TestResult entity.
func (c *TestResultClient) Create() *TestResultCreate {
	mutation := newTestResultMutation(c.config, OpCreate)
	return &TestResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestResult entities.
func (c *TestResultClient) CreateBulk(builders ...*TestResultCreate) *TestResultCreateBulk {
	return &TestResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestResultClient) MapCreateBulk(slice any, setFunc func(*TestResultCreate, int)) *TestResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestResultCreateBulk{err: fmt.Errorf("calling to TestResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestResult.
func (c *TestResultClient) Update() *TestResultUpdate {
	mutation := newTestResultMutation(c.config, OpUpdate)
	return &TestResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestResultClient) UpdateOne(_m *TestResult) *TestResultUpdateOne {
	mutation := newTestResultMutation(c.config, OpUpdateOne, withTestResult(_m))
	return &TestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestResultClient) UpdateOneID(id string) *TestResultUpdateOne {
	mutation := newTestResultMutation(c.config, OpUpdateOne, withTestResultID(id))
	return &TestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestResult.
func (c *TestResultClient) Delete() *TestResultDelete {
	mutation := newTestResultMutation(c.config, OpDelete)
	return &TestResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestResultClient) DeleteOne(_m *TestResult) *TestResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestResultClient) DeleteOneID(id string) *TestResultDeleteOne {
	builder := c.Delete().Where(testresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestResultDeleteOne{builder}
}

// Query returns a query builder for TestResult.
func (c *TestResultClient) Query() *TestResultQuery {
	return &TestResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestResult},
		inters: c.Interceptors(),
	}
}

// Get returns a TestResult entity by its id.
func (c *TestResultClient) Get(ctx context.Context, id string) (*TestResult, error) {
	return c.Query().Where(testresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestResultClient) GetX(ctx context.Context, id string) *TestResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TestResult.
func (c *TestResultClient) QueryTask(_m *TestResult) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testresult.Table, testresult.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, testresult.TaskTable, testresult.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TestResultClient) Hooks() []Hook {
	return c.hooks.TestResult
}

// Interceptors returns the client interceptors.
func (c *TestResultClient) Interceptors() []Interceptor {
	return c.inters.TestResult
}

func (c *TestResultClient) mutate(ctx context.Context, m *TestResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestResult mutation op: %q", m.Op())
	}
}

// TokenUsageClient is a client for the TokenUsage schema.
type TokenUsageClient struct {
	config
}

// NewTokenUsageClient returns a client for the TokenUsage from the given config.
func NewTokenUsageClient(c config) *TokenUsageClient {
	return &TokenUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenusage.Hooks(f(g(h())))`.
func (c *TokenUsageClient) Use(hooks ...Hook) {
	c.hooks.TokenUsage = append(c.hooks.TokenUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenusage.Intercept(f(g(h())))`.
func (c *TokenUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenUsage = append(c.inters.TokenUsage, interceptors...)
}

// Create returns a builder for creating a TokenUsage entity.
func (c *TokenUsageClient) Create() *TokenUsageCreate {
	mutation := newTokenUsageMutation(c.config, OpCreate)
	return &TokenUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenUsage entities.
func (c *TokenUsageClient) CreateBulk(builders ...*TokenUsageCreate) *TokenUsageCreateBulk {
	return &TokenUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenUsageClient) MapCreateBulk(slice any, setFunc func(*TokenUsageCreate, int)) *TokenUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenUsageCreateBulk{err: fmt.Errorf("calling to TokenUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenUsage.
func (c *TokenUsageClient) Update() *TokenUsageUpdate {
	mutation := newTokenUsageMutation(c.config, OpUpdate)
	return &TokenUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenUsageClient) UpdateOne(_m *TokenUsage) *TokenUsageUpdateOne {
	mutation := newTokenUsageMutation(c.config, OpUpdateOne, withTokenUsage(_m))
	return &TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenUsageClient) UpdateOneID(id string) *TokenUsageUpdateOne {
	mutation := newTokenUsageMutation(c.config, OpUpdateOne, withTokenUsageID(id))
	return &TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenUsage.
func (c *TokenUsageClient) Delete() *TokenUsageDelete {
	mutation := newTokenUsageMutation(c.config, OpDelete)
	return &TokenUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenUsageClient) DeleteOne(_m *TokenUsage) *TokenUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenUsageClient) DeleteOneID(id string) *TokenUsageDeleteOne {
	builder := c.Delete().Where(tokenusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenUsageDeleteOne{builder}
}

// Query returns a query builder for TokenUsage.
func (c *TokenUsageClient) Query() *TokenUsageQuery {
	return &TokenUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenUsage entity by its id.
func (c *TokenUsageClient) Get(ctx context.Context, id string) (*TokenUsage, error) {
	return c.Query().Where(tokenusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenUsageClient) GetX(ctx context.Context, id string) *TokenUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenUsageClient) Hooks() []Hook {
	return c.hooks.TokenUsage
}

// Interceptors returns the client interceptors.
func (c *TokenUsageClient) Interceptors() []Interceptor {
	return c.inters.TokenUsage
}

func (c *TokenUsageClient) mutate(ctx context.Context, m *TokenUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AuditLog, Blocker, ContextCheckpoint, ContextItem, CorrectionAttempt,
		Evidence, Issue, Project, ProjectAgent, Task, TestResult, TokenUsage []ent.Hook
	}
	inters struct {
		Agent, AuditLog, Blocker, ContextCheckpoint, ContextItem, CorrectionAttempt,
		Evidence, Issue, Project, ProjectAgent, Task, TestResult,
		TokenUsage []ent.Interceptor
	}
)
