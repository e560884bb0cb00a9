// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/factforge/factforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/factforge/factforge/ent/auditrecord"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/ent/vectorrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditRecord is the client for interacting with the AuditRecord builders.
	AuditRecord *AuditRecordClient
	// CrawledItem is the client for interacting with the CrawledItem builders.
	CrawledItem *CrawledItemClient
	// ModelVersion is the client for interacting with the ModelVersion builders.
	ModelVersion *ModelVersionClient
	// ReviewEntry is the client for interacting with the ReviewEntry builders.
	ReviewEntry *ReviewEntryClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// VectorRecord is the client for interacting with the VectorRecord builders.
	VectorRecord *VectorRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditRecord = NewAuditRecordClient(c.config)
	c.CrawledItem = NewCrawledItemClient(c.config)
	c.ModelVersion = NewModelVersionClient(c.config)
	c.ReviewEntry = NewReviewEntryClient(c.config)
	c.User = NewUserClient(c.config)
	c.VectorRecord = NewVectorRecordClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AuditRecord:  NewAuditRecordClient(cfg),
		CrawledItem:  NewCrawledItemClient(cfg),
		ModelVersion: NewModelVersionClient(cfg),
		ReviewEntry:  NewReviewEntryClient(cfg),
		User:         NewUserClient(cfg),
		VectorRecord: NewVectorRecordClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AuditRecord:  NewAuditRecordClient(cfg),
		CrawledItem:  NewCrawledItemClient(cfg),
		ModelVersion: NewModelVersionClient(cfg),
		ReviewEntry:  NewReviewEntryClient(cfg),
		User:         NewUserClient(cfg),
		VectorRecord: NewVectorRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditRecord.
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
		c.AuditRecord, c.CrawledItem, c.ModelVersion, c.ReviewEntry, c.User,
		c.VectorRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditRecord, c.CrawledItem, c.ModelVersion, c.ReviewEntry, c.User,
		c.VectorRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditRecordMutation:
		return c.AuditRecord.mutate(ctx, m)
	case *CrawledItemMutation:
		return c.CrawledItem.mutate(ctx, m)
	case *ModelVersionMutation:
		return c.ModelVersion.mutate(ctx, m)
	case *ReviewEntryMutation:
		return c.ReviewEntry.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VectorRecordMutation:
		return c.VectorRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditRecordClient is a client for the AuditRecord schema.
type AuditRecordClient struct {
	config
}

// NewAuditRecordClient returns a client for the AuditRecord from the given config.
func NewAuditRecordClient(c config) *AuditRecordClient {
	return &AuditRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditrecord.Hooks(f(g(h())))`.
func (c *AuditRecordClient) Use(hooks ...Hook) {
	c.hooks.AuditRecord = append(c.hooks.AuditRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditrecord.Intercept(f(g(h())))`.
func (c *AuditRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditRecord = append(c.inters.AuditRecord, interceptors...)
}

// Create returns a builder for creating a AuditRecord entity.
func (c *AuditRecordClient) Create() *AuditRecordCreate {
	mutation := newAuditRecordMutation(c.config, OpCreate)
	return &AuditRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditRecord entities.
func (c *AuditRecordClient) CreateBulk(builders ...*AuditRecordCreate) *AuditRecordCreateBulk {
	return &AuditRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditRecordClient) MapCreateBulk(slice any, setFunc func(*AuditRecordCreate, int)) *AuditRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditRecordCreateBulk{err: fmt.Errorf("calling to AuditRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditRecord.
func (c *AuditRecordClient) Update() *AuditRecordUpdate {
	mutation := newAuditRecordMutation(c.config, OpUpdate)
	return &AuditRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditRecordClient) UpdateOne(_m *AuditRecord) *AuditRecordUpdateOne {
	mutation := newAuditRecordMutation(c.config, OpUpdateOne, withAuditRecord(_m))
	return &AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditRecordClient) UpdateOneID(id string) *AuditRecordUpdateOne {
	mutation := newAuditRecordMutation(c.config, OpUpdateOne, withAuditRecordID(id))
	return &AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditRecord.
func (c *AuditRecordClient) Delete() *AuditRecordDelete {
	mutation := newAuditRecordMutation(c.config, OpDelete)
	return &AuditRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditRecordClient) DeleteOne(_m *AuditRecord) *AuditRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditRecordClient) DeleteOneID(id string) *AuditRecordDeleteOne {
	builder := c.Delete().Where(auditrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditRecordDeleteOne{builder}
}

// Query returns a query builder for AuditRecord.
func (c *AuditRecordClient) Query() *AuditRecordQuery {
	return &AuditRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditRecord entity by its id.
func (c *AuditRecordClient) Get(ctx context.Context, id string) (*AuditRecord, error) {
	return c.Query().Where(auditrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditRecordClient) GetX(ctx context.Context, id string) *AuditRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditRecordClient) Hooks() []Hook {
	return c.hooks.AuditRecord
}

// Interceptors returns the client interceptors.
func (c *AuditRecordClient) Interceptors() []Interceptor {
	return c.inters.AuditRecord
}

func (c *AuditRecordClient) mutate(ctx context.Context, m *AuditRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditRecord mutation op: %q", m.Op())
	}
}

// CrawledItemClient is a client for the CrawledItem schema.
type CrawledItemClient struct {
	config
}

// NewCrawledItemClient returns a client for the CrawledItem from the given config.
func NewCrawledItemClient(c config) *CrawledItemClient {
	return &CrawledItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crawleditem.Hooks(f(g(h())))`.
func (c *CrawledItemClient) Use(hooks ...Hook) {
	c.hooks.CrawledItem = append(c.hooks.CrawledItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crawleditem.Intercept(f(g(h())))`.
func (c *CrawledItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CrawledItem = append(c.inters.CrawledItem, interceptors...)
}

// Create returns a builder for creating a CrawledItem entity.
func (c *CrawledItemClient) Create() *CrawledItemCreate {
	mutation := newCrawledItemMutation(c.config, OpCreate)
	return &CrawledItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CrawledItem entities.
func (c *CrawledItemClient) CreateBulk(builders ...*CrawledItemCreate) *CrawledItemCreateBulk {
	return &CrawledItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CrawledItemClient) MapCreateBulk(slice any, setFunc func(*CrawledItemCreate, int)) *CrawledItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CrawledItemCreateBulk{err: fmt.Errorf("calling to CrawledItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CrawledItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CrawledItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CrawledItem.
func (c *CrawledItemClient) Update() *CrawledItemUpdate {
	mutation := newCrawledItemMutation(c.config, OpUpdate)
	return &CrawledItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CrawledItemClient) UpdateOne(_m *CrawledItem) *CrawledItemUpdateOne {
	mutation := newCrawledItemMutation(c.config, OpUpdateOne, withCrawledItem(_m))
	return &CrawledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CrawledItemClient) UpdateOneID(id string) *CrawledItemUpdateOne {
	mutation := newCrawledItemMutation(c.config, OpUpdateOne, withCrawledItemID(id))
	return &CrawledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CrawledItem.
func (c *CrawledItemClient) Delete() *CrawledItemDelete {
	mutation := newCrawledItemMutation(c.config, OpDelete)
	return &CrawledItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CrawledItemClient) DeleteOne(_m *CrawledItem) *CrawledItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CrawledItemClient) DeleteOneID(id string) *CrawledItemDeleteOne {
	builder := c.Delete().Where(crawleditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CrawledItemDeleteOne{builder}
}

// Query returns a query builder for CrawledItem.
func (c *CrawledItemClient) Query() *CrawledItemQuery {
	return &CrawledItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCrawledItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CrawledItem entity by its id.
func (c *CrawledItemClient) Get(ctx context.Context, id string) (*CrawledItem, error) {
	return c.Query().Where(crawleditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CrawledItemClient) GetX(ctx context.Context, id string) *CrawledItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVectorRecord queries the vector_record edge of a CrawledItem.
func (c *CrawledItemClient) QueryVectorRecord(_m *CrawledItem) *VectorRecordQuery {
	query := (&VectorRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crawleditem.Table, crawleditem.FieldID, id),
			sqlgraph.To(vectorrecord.Table, vectorrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, crawleditem.VectorRecordTable, crawleditem.VectorRecordColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReviewEntries queries the review_entries edge of a CrawledItem.
func (c *CrawledItemClient) QueryReviewEntries(_m *CrawledItem) *ReviewEntryQuery {
	query := (&ReviewEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crawleditem.Table, crawleditem.FieldID, id),
			sqlgraph.To(reviewentry.Table, reviewentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crawleditem.ReviewEntriesTable, crawleditem.ReviewEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CrawledItemClient) Hooks() []Hook {
	return c.hooks.CrawledItem
}

// Interceptors returns the client interceptors.
func (c *CrawledItemClient) Interceptors() []Interceptor {
	return c.inters.CrawledItem
}

func (c *CrawledItemClient) mutate(ctx context.Context, m *CrawledItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CrawledItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CrawledItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CrawledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CrawledItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CrawledItem mutation op: %q", m.Op())
	}
}

// ModelVersionClient is a client for the ModelVersion schema.
type ModelVersionClient struct {
	config
}

// NewModelVersionClient returns a client for the ModelVersion from the given config.
func NewModelVersionClient(c config) *ModelVersionClient {
	return &ModelVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelversion.Hooks(f(g(h())))`.
func (c *ModelVersionClient) Use(hooks ...Hook) {
	c.hooks.ModelVersion = append(c.hooks.ModelVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelversion.Intercept(f(g(h())))`.
func (c *ModelVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelVersion = append(c.inters.ModelVersion, interceptors...)
}

// Create returns a builder for creating a ModelVersion entity.
func (c *ModelVersionClient) Create() *ModelVersionCreate {
	mutation := newModelVersionMutation(c.config, OpCreate)
	return &ModelVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelVersion entities.
func (c *ModelVersionClient) CreateBulk(builders ...*ModelVersionCreate) *ModelVersionCreateBulk {
	return &ModelVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelVersionClient) MapCreateBulk(slice any, setFunc func(*ModelVersionCreate, int)) *ModelVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelVersionCreateBulk{err: fmt.Errorf("calling to ModelVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelVersion.
func (c *ModelVersionClient) Update() *ModelVersionUpdate {
	mutation := newModelVersionMutation(c.config, OpUpdate)
	return &ModelVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelVersionClient) UpdateOne(_m *ModelVersion) *ModelVersionUpdateOne {
	mutation := newModelVersionMutation(c.config, OpUpdateOne, withModelVersion(_m))
	return &ModelVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelVersionClient) UpdateOneID(id string) *ModelVersionUpdateOne {
	mutation := newModelVersionMutation(c.config, OpUpdateOne, withModelVersionID(id))
	return &ModelVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelVersion.
func (c *ModelVersionClient) Delete() *ModelVersionDelete {
	mutation := newModelVersionMutation(c.config, OpDelete)
	return &ModelVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelVersionClient) DeleteOne(_m *ModelVersion) *ModelVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelVersionClient) DeleteOneID(id string) *ModelVersionDeleteOne {
	builder := c.Delete().Where(modelversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelVersionDeleteOne{builder}
}

// Query returns a query builder for ModelVersion.
func (c *ModelVersionClient) Query() *ModelVersionQuery {
	return &ModelVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelVersion entity by its id.
func (c *ModelVersionClient) Get(ctx context.Context, id string) (*ModelVersion, error) {
	return c.Query().Where(modelversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelVersionClient) GetX(ctx context.Context, id string) *ModelVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelVersionClient) Hooks() []Hook {
	return c.hooks.ModelVersion
}

// Interceptors returns the client interceptors.
func (c *ModelVersionClient) Interceptors() []Interceptor {
	return c.inters.ModelVersion
}

func (c *ModelVersionClient) mutate(ctx context.Context, m *ModelVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelVersion mutation op: %q", m.Op())
	}
}

// ReviewEntryClient is a client for the ReviewEntry schema.
type ReviewEntryClient struct {
	config
}

// NewReviewEntryClient returns a client for the ReviewEntry from the given config.
func NewReviewEntryClient(c config) *ReviewEntryClient {
	return &ReviewEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewentry.Hooks(f(g(h())))`.
func (c *ReviewEntryClient) Use(hooks ...Hook) {
	c.hooks.ReviewEntry = append(c.hooks.ReviewEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewentry.Intercept(f(g(h())))`.
func (c *ReviewEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEntry = append(c.inters.ReviewEntry, interceptors...)
}

// Create returns a builder for creating a ReviewEntry entity.
func (c *ReviewEntryClient) Create() *ReviewEntryCreate {
	mutation := newReviewEntryMutation(c.config, OpCreate)
	return &ReviewEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEntry entities.
func (c *ReviewEntryClient) CreateBulk(builders ...*ReviewEntryCreate) *ReviewEntryCreateBulk {
	return &ReviewEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEntryClient) MapCreateBulk(slice any, setFunc func(*ReviewEntryCreate, int)) *ReviewEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEntryCreateBulk{err: fmt.Errorf("calling to ReviewEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEntry.
func (c *ReviewEntryClient) Update() *ReviewEntryUpdate {
	mutation := newReviewEntryMutation(c.config, OpUpdate)
	return &ReviewEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEntryClient) UpdateOne(_m *ReviewEntry) *ReviewEntryUpdateOne {
	mutation := newReviewEntryMutation(c.config, OpUpdateOne, withReviewEntry(_m))
	return &ReviewEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEntryClient) UpdateOneID(id string) *ReviewEntryUpdateOne {
	mutation := newReviewEntryMutation(c.config, OpUpdateOne, withReviewEntryID(id))
	return &ReviewEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEntry.
func (c *ReviewEntryClient) Delete() *ReviewEntryDelete {
	mutation := newReviewEntryMutation(c.config, OpDelete)
	return &ReviewEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEntryClient) DeleteOne(_m *ReviewEntry) *ReviewEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEntryClient) DeleteOneID(id string) *ReviewEntryDeleteOne {
	builder := c.Delete().Where(reviewentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEntryDeleteOne{builder}
}

// Query returns a query builder for ReviewEntry.
func (c *ReviewEntryClient) Query() *ReviewEntryQuery {
	return &ReviewEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEntry entity by its id.
func (c *ReviewEntryClient) Get(ctx context.Context, id string) (*ReviewEntry, error) {
	return c.Query().Where(reviewentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEntryClient) GetX(ctx context.Context, id string) *ReviewEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoc queries the doc edge of a ReviewEntry.
func (c *ReviewEntryClient) QueryDoc(_m *ReviewEntry) *CrawledItemQuery {
	query := (&CrawledItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reviewentry.Table, reviewentry.FieldID, id),
			sqlgraph.To(crawleditem.Table, crawleditem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reviewentry.DocTable, reviewentry.DocColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignee queries the assignee edge of a ReviewEntry.
func (c *ReviewEntryClient) QueryAssignee(_m *ReviewEntry) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reviewentry.Table, reviewentry.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reviewentry.AssigneeTable, reviewentry.AssigneeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReviewEntryClient) Hooks() []Hook {
	return c.hooks.ReviewEntry
}

// Interceptors returns the client interceptors.
func (c *ReviewEntryClient) Interceptors() []Interceptor {
	return c.inters.ReviewEntry
}

func (c *ReviewEntryClient) mutate(ctx context.Context, m *ReviewEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEntry mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignedReviews queries the assigned_reviews edge of a User.
func (c *UserClient) QueryAssignedReviews(_m *User) *ReviewEntryQuery {
	query := (&ReviewEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(reviewentry.Table, reviewentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AssignedReviewsTable, user.AssignedReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// VectorRecordClient is a client for the VectorRecord schema.
type VectorRecordClient struct {
	config
}

// NewVectorRecordClient returns a client for the VectorRecord from the given config.
func NewVectorRecordClient(c config) *VectorRecordClient {
	return &VectorRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vectorrecord.Hooks(f(g(h())))`.
func (c *VectorRecordClient) Use(hooks ...Hook) {
	c.hooks.VectorRecord = append(c.hooks.VectorRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vectorrecord.Intercept(f(g(h())))`.
func (c *VectorRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.VectorRecord = append(c.inters.VectorRecord, interceptors...)
}

// Create returns a builder for creating a VectorRecord entity.
func (c *VectorRecordClient) Create() *VectorRecordCreate {
	mutation := newVectorRecordMutation(c.config, OpCreate)
	return &VectorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VectorRecord entities.
func (c *VectorRecordClient) CreateBulk(builders ...*VectorRecordCreate) *VectorRecordCreateBulk {
	return &VectorRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VectorRecordClient) MapCreateBulk(slice any, setFunc func(*VectorRecordCreate, int)) *VectorRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VectorRecordCreateBulk{err: fmt.Errorf("calling to VectorRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VectorRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VectorRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VectorRecord.
func (c *VectorRecordClient) Update() *VectorRecordUpdate {
	mutation := newVectorRecordMutation(c.config, OpUpdate)
	return &VectorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VectorRecordClient) UpdateOne(_m *VectorRecord) *VectorRecordUpdateOne {
	mutation := newVectorRecordMutation(c.config, OpUpdateOne, withVectorRecord(_m))
	return &VectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VectorRecordClient) UpdateOneID(id string) *VectorRecordUpdateOne {
	mutation := newVectorRecordMutation(c.config, OpUpdateOne, withVectorRecordID(id))
	return &VectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VectorRecord.
func (c *VectorRecordClient) Delete() *VectorRecordDelete {
	mutation := newVectorRecordMutation(c.config, OpDelete)
	return &VectorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VectorRecordClient) DeleteOne(_m *VectorRecord) *VectorRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VectorRecordClient) DeleteOneID(id string) *VectorRecordDeleteOne {
	builder := c.Delete().Where(vectorrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VectorRecordDeleteOne{builder}
}

// Query returns a query builder for VectorRecord.
func (c *VectorRecordClient) Query() *VectorRecordQuery {
	return &VectorRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVectorRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a VectorRecord entity by its id.
func (c *VectorRecordClient) Get(ctx context.Context, id string) (*VectorRecord, error) {
	return c.Query().Where(vectorrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VectorRecordClient) GetX(ctx context.Context, id string) *VectorRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoc queries the doc edge of a VectorRecord.
func (c *VectorRecordClient) QueryDoc(_m *VectorRecord) *CrawledItemQuery {
	query := (&CrawledItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vectorrecord.Table, vectorrecord.FieldID, id),
			sqlgraph.To(crawleditem.Table, crawleditem.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, vectorrecord.DocTable, vectorrecord.DocColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VectorRecordClient) Hooks() []Hook {
	return c.hooks.VectorRecord
}

// Interceptors returns the client interceptors.
func (c *VectorRecordClient) Interceptors() []Interceptor {
	return c.inters.VectorRecord
}

func (c *VectorRecordClient) mutate(ctx context.Context, m *VectorRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VectorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VectorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VectorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VectorRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditRecord, CrawledItem, ModelVersion, ReviewEntry, User,
		VectorRecord []ent.Hook
	}
	inters struct {
		AuditRecord, CrawledItem, ModelVersion, ReviewEntry, User,
		VectorRecord []ent.Interceptor
	}
)
