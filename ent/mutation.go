// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/factforge/factforge/ent/auditrecord"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/modelversion"
	"github.com/factforge/factforge/ent/predicate"
	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/ent/vectorrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditRecord  = "AuditRecord"
	TypeCrawledItem  = "CrawledItem"
	TypeModelVersion = "ModelVersion"
	TypeReviewEntry  = "ReviewEntry"
	TypeUser         = "User"
	TypeVectorRecord = "VectorRecord"
)

// AuditRecordMutation represents an operation that mutates the AuditRecord nodes in the graph.
type AuditRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	event_type    *string
	payload       *map[string]interface{}
	signature     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditRecord, error)
	predicates    []predicate.AuditRecord
}

var _ ent.Mutation = (*AuditRecordMutation)(nil)

// auditrecordOption allows management of the mutation configuration using functional options.
type auditrecordOption func(*AuditRecordMutation)

// newAuditRecordMutation creates new mutation for the AuditRecord entity.
func newAuditRecordMutation(c config, op Op, opts ...auditrecordOption) *AuditRecordMutation {
	m := &AuditRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditRecordID sets the ID field of the mutation.
func withAuditRecordID(id string) auditrecordOption {
	return func(m *AuditRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditRecord
		)
		m.oldValue = func(ctx context.Context) (*AuditRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditRecord sets the old AuditRecord of the mutation.
func withAuditRecord(node *AuditRecord) auditrecordOption {
	return func(m *AuditRecordMutation) {
		m.oldValue = func(context.Context) (*AuditRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditRecord entities.
func (m *AuditRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *AuditRecordMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditRecordMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditRecordMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *AuditRecordMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditRecordMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditRecordMutation) ResetPayload() {
	m.payload = nil
}

// SetSignature sets the "signature" field.
func (m *AuditRecordMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *AuditRecordMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ResetSignature resets all changes to the "signature" field.
func (m *AuditRecordMutation) ResetSignature() {
	m.signature = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditRecordMutation builder.
func (m *AuditRecordMutation) Where(ps ...predicate.AuditRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditRecord).
func (m *AuditRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_type != nil {
		fields = append(fields, auditrecord.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, auditrecord.FieldPayload)
	}
	if m.signature != nil {
		fields = append(fields, auditrecord.FieldSignature)
	}
	if m.created_at != nil {
		fields = append(fields, auditrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldEventType:
		return m.EventType()
	case auditrecord.FieldPayload:
		return m.Payload()
	case auditrecord.FieldSignature:
		return m.Signature()
	case auditrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditrecord.FieldEventType:
		return m.OldEventType(ctx)
	case auditrecord.FieldPayload:
		return m.OldPayload(ctx)
	case auditrecord.FieldSignature:
		return m.OldSignature(ctx)
	case auditrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditrecord.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditrecord.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case auditrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AuditRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditRecordMutation) ResetField(name string) error {
	switch name {
	case auditrecord.FieldEventType:
		m.ResetEventType()
		return nil
	case auditrecord.FieldPayload:
		m.ResetPayload()
		return nil
	case auditrecord.FieldSignature:
		m.ResetSignature()
		return nil
	case auditrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditRecord edge %s", name)
}

// CrawledItemMutation represents an operation that mutates the CrawledItem nodes in the graph.
type CrawledItemMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	url                   *string
	domain                *string
	raw_html_path         *string
	screenshot_path       *string
	clean_text            *string
	language              *crawleditem.Language
	lang_confidence       *float64
	addlang_confidence    *float64
	translit              *bool
	heuristic_score       *float64
	addheuristic_score    *float64
	classifier_score      *float64
	addclassifier_score   *float64
	label                 *crawleditem.Label
	image_hashes          *[]string
	appendimage_hashes    []string
	whois_data            *map[string]interface{}
	metadata              *map[string]interface{}
	ingested_at           *time.Time
	clearedFields         map[string]struct{}
	vector_record         *string
	clearedvector_record  bool
	review_entries        map[string]struct{}
	removedreview_entries map[string]struct{}
	clearedreview_entries bool
	done                  bool
	oldValue              func(context.Context) (*CrawledItem, error)
	predicates            []predicate.CrawledItem
}

var _ ent.Mutation = (*CrawledItemMutation)(nil)

// crawleditemOption allows management of the mutation configuration using functional options.
type crawleditemOption func(*CrawledItemMutation)

// newCrawledItemMutation creates new mutation for the CrawledItem entity.
func newCrawledItemMutation(c config, op Op, opts ...crawleditemOption) *CrawledItemMutation {
	m := &CrawledItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCrawledItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCrawledItemID sets the ID field of the mutation.
func withCrawledItemID(id string) crawleditemOption {
	return func(m *CrawledItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CrawledItem
		)
		m.oldValue = func(ctx context.Context) (*CrawledItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CrawledItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCrawledItem sets the old CrawledItem of the mutation.
func withCrawledItem(node *CrawledItem) crawleditemOption {
	return func(m *CrawledItemMutation) {
		m.oldValue = func(context.Context) (*CrawledItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CrawledItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CrawledItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CrawledItem entities.
func (m *CrawledItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CrawledItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CrawledItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CrawledItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *CrawledItemMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CrawledItemMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *CrawledItemMutation) ResetURL() {
	m.url = nil
}

// SetDomain sets the "domain" field.
func (m *CrawledItemMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CrawledItemMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *CrawledItemMutation) ResetDomain() {
	m.domain = nil
}

// SetRawHTMLPath sets the "raw_html_path" field.
func (m *CrawledItemMutation) SetRawHTMLPath(s string) {
	m.raw_html_path = &s
}

// RawHTMLPath returns the value of the "raw_html_path" field in the mutation.
func (m *CrawledItemMutation) RawHTMLPath() (r string, exists bool) {
	v := m.raw_html_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRawHTMLPath returns the old "raw_html_path" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldRawHTMLPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawHTMLPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawHTMLPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawHTMLPath: %w", err)
	}
	return oldValue.RawHTMLPath, nil
}

// ClearRawHTMLPath clears the value of the "raw_html_path" field.
func (m *CrawledItemMutation) ClearRawHTMLPath() {
	m.raw_html_path = nil
	m.clearedFields[crawleditem.FieldRawHTMLPath] = struct{}{}
}

// RawHTMLPathCleared returns if the "raw_html_path" field was cleared in this mutation.
func (m *CrawledItemMutation) RawHTMLPathCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldRawHTMLPath]
	return ok
}

// ResetRawHTMLPath resets all changes to the "raw_html_path" field.
func (m *CrawledItemMutation) ResetRawHTMLPath() {
	m.raw_html_path = nil
	delete(m.clearedFields, crawleditem.FieldRawHTMLPath)
}

// SetScreenshotPath sets the "screenshot_path" field.
func (m *CrawledItemMutation) SetScreenshotPath(s string) {
	m.screenshot_path = &s
}

// ScreenshotPath returns the value of the "screenshot_path" field in the mutation.
func (m *CrawledItemMutation) ScreenshotPath() (r string, exists bool) {
	v := m.screenshot_path
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenshotPath returns the old "screenshot_path" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldScreenshotPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenshotPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenshotPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenshotPath: %w", err)
	}
	return oldValue.ScreenshotPath, nil
}

// ClearScreenshotPath clears the value of the "screenshot_path" field.
func (m *CrawledItemMutation) ClearScreenshotPath() {
	m.screenshot_path = nil
	m.clearedFields[crawleditem.FieldScreenshotPath] = struct{}{}
}

// ScreenshotPathCleared returns if the "screenshot_path" field was cleared in this mutation.
func (m *CrawledItemMutation) ScreenshotPathCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldScreenshotPath]
	return ok
}

// ResetScreenshotPath resets all changes to the "screenshot_path" field.
func (m *CrawledItemMutation) ResetScreenshotPath() {
	m.screenshot_path = nil
	delete(m.clearedFields, crawleditem.FieldScreenshotPath)
}

// SetCleanText sets the "clean_text" field.
func (m *CrawledItemMutation) SetCleanText(s string) {
	m.clean_text = &s
}

// CleanText returns the value of the "clean_text" field in the mutation.
func (m *CrawledItemMutation) CleanText() (r string, exists bool) {
	v := m.clean_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCleanText returns the old "clean_text" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldCleanText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCleanText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCleanText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCleanText: %w", err)
	}
	return oldValue.CleanText, nil
}

// ResetCleanText resets all changes to the "clean_text" field.
func (m *CrawledItemMutation) ResetCleanText() {
	m.clean_text = nil
}

// SetLanguage sets the "language" field.
func (m *CrawledItemMutation) SetLanguage(c crawleditem.Language) {
	m.language = &c
}

// Language returns the value of the "language" field in the mutation.
func (m *CrawledItemMutation) Language() (r crawleditem.Language, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldLanguage(ctx context.Context) (v crawleditem.Language, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *CrawledItemMutation) ResetLanguage() {
	m.language = nil
}

// SetLangConfidence sets the "lang_confidence" field.
func (m *CrawledItemMutation) SetLangConfidence(f float64) {
	m.lang_confidence = &f
	m.addlang_confidence = nil
}

// LangConfidence returns the value of the "lang_confidence" field in the mutation.
func (m *CrawledItemMutation) LangConfidence() (r float64, exists bool) {
	v := m.lang_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldLangConfidence returns the old "lang_confidence" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldLangConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLangConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLangConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLangConfidence: %w", err)
	}
	return oldValue.LangConfidence, nil
}

// AddLangConfidence adds f to the "lang_confidence" field.
func (m *CrawledItemMutation) AddLangConfidence(f float64) {
	if m.addlang_confidence != nil {
		*m.addlang_confidence += f
	} else {
		m.addlang_confidence = &f
	}
}

// AddedLangConfidence returns the value that was added to the "lang_confidence" field in this mutation.
func (m *CrawledItemMutation) AddedLangConfidence() (r float64, exists bool) {
	v := m.addlang_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLangConfidence resets all changes to the "lang_confidence" field.
func (m *CrawledItemMutation) ResetLangConfidence() {
	m.lang_confidence = nil
	m.addlang_confidence = nil
}

// SetTranslit sets the "translit" field.
func (m *CrawledItemMutation) SetTranslit(b bool) {
	m.translit = &b
}

// Translit returns the value of the "translit" field in the mutation.
func (m *CrawledItemMutation) Translit() (r bool, exists bool) {
	v := m.translit
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslit returns the old "translit" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldTranslit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslit: %w", err)
	}
	return oldValue.Translit, nil
}

// ResetTranslit resets all changes to the "translit" field.
func (m *CrawledItemMutation) ResetTranslit() {
	m.translit = nil
}

// SetHeuristicScore sets the "heuristic_score" field.
func (m *CrawledItemMutation) SetHeuristicScore(f float64) {
	m.heuristic_score = &f
	m.addheuristic_score = nil
}

// HeuristicScore returns the value of the "heuristic_score" field in the mutation.
func (m *CrawledItemMutation) HeuristicScore() (r float64, exists bool) {
	v := m.heuristic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHeuristicScore returns the old "heuristic_score" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldHeuristicScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeuristicScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeuristicScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeuristicScore: %w", err)
	}
	return oldValue.HeuristicScore, nil
}

// AddHeuristicScore adds f to the "heuristic_score" field.
func (m *CrawledItemMutation) AddHeuristicScore(f float64) {
	if m.addheuristic_score != nil {
		*m.addheuristic_score += f
	} else {
		m.addheuristic_score = &f
	}
}

// AddedHeuristicScore returns the value that was added to the "heuristic_score" field in this mutation.
func (m *CrawledItemMutation) AddedHeuristicScore() (r float64, exists bool) {
	v := m.addheuristic_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeuristicScore resets all changes to the "heuristic_score" field.
func (m *CrawledItemMutation) ResetHeuristicScore() {
	m.heuristic_score = nil
	m.addheuristic_score = nil
}

// SetClassifierScore sets the "classifier_score" field.
func (m *CrawledItemMutation) SetClassifierScore(f float64) {
	m.classifier_score = &f
	m.addclassifier_score = nil
}

// ClassifierScore returns the value of the "classifier_score" field in the mutation.
func (m *CrawledItemMutation) ClassifierScore() (r float64, exists bool) {
	v := m.classifier_score
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifierScore returns the old "classifier_score" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldClassifierScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifierScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifierScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifierScore: %w", err)
	}
	return oldValue.ClassifierScore, nil
}

// AddClassifierScore adds f to the "classifier_score" field.
func (m *CrawledItemMutation) AddClassifierScore(f float64) {
	if m.addclassifier_score != nil {
		*m.addclassifier_score += f
	} else {
		m.addclassifier_score = &f
	}
}

// AddedClassifierScore returns the value that was added to the "classifier_score" field in this mutation.
func (m *CrawledItemMutation) AddedClassifierScore() (r float64, exists bool) {
	v := m.addclassifier_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearClassifierScore clears the value of the "classifier_score" field.
func (m *CrawledItemMutation) ClearClassifierScore() {
	m.classifier_score = nil
	m.addclassifier_score = nil
	m.clearedFields[crawleditem.FieldClassifierScore] = struct{}{}
}

// ClassifierScoreCleared returns if the "classifier_score" field was cleared in this mutation.
func (m *CrawledItemMutation) ClassifierScoreCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldClassifierScore]
	return ok
}

// ResetClassifierScore resets all changes to the "classifier_score" field.
func (m *CrawledItemMutation) ResetClassifierScore() {
	m.classifier_score = nil
	m.addclassifier_score = nil
	delete(m.clearedFields, crawleditem.FieldClassifierScore)
}

// SetLabel sets the "label" field.
func (m *CrawledItemMutation) SetLabel(c crawleditem.Label) {
	m.label = &c
}

// Label returns the value of the "label" field in the mutation.
func (m *CrawledItemMutation) Label() (r crawleditem.Label, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldLabel(ctx context.Context) (v crawleditem.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *CrawledItemMutation) ResetLabel() {
	m.label = nil
}

// SetImageHashes sets the "image_hashes" field.
func (m *CrawledItemMutation) SetImageHashes(s []string) {
	m.image_hashes = &s
	m.appendimage_hashes = nil
}

// ImageHashes returns the value of the "image_hashes" field in the mutation.
func (m *CrawledItemMutation) ImageHashes() (r []string, exists bool) {
	v := m.image_hashes
	if v == nil {
		return
	}
	return *v, true
}

// OldImageHashes returns the old "image_hashes" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldImageHashes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageHashes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageHashes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageHashes: %w", err)
	}
	return oldValue.ImageHashes, nil
}

// AppendImageHashes adds s to the "image_hashes" field.
func (m *CrawledItemMutation) AppendImageHashes(s []string) {
	m.appendimage_hashes = append(m.appendimage_hashes, s...)
}

// AppendedImageHashes returns the list of values that were appended to the "image_hashes" field in this mutation.
func (m *CrawledItemMutation) AppendedImageHashes() ([]string, bool) {
	if len(m.appendimage_hashes) == 0 {
		return nil, false
	}
	return m.appendimage_hashes, true
}

// ClearImageHashes clears the value of the "image_hashes" field.
func (m *CrawledItemMutation) ClearImageHashes() {
	m.image_hashes = nil
	m.appendimage_hashes = nil
	m.clearedFields[crawleditem.FieldImageHashes] = struct{}{}
}

// ImageHashesCleared returns if the "image_hashes" field was cleared in this mutation.
func (m *CrawledItemMutation) ImageHashesCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldImageHashes]
	return ok
}

// ResetImageHashes resets all changes to the "image_hashes" field.
func (m *CrawledItemMutation) ResetImageHashes() {
	m.image_hashes = nil
	m.appendimage_hashes = nil
	delete(m.clearedFields, crawleditem.FieldImageHashes)
}

// SetWhoisData sets the "whois_data" field.
func (m *CrawledItemMutation) SetWhoisData(value map[string]interface{}) {
	m.whois_data = &value
}

// WhoisData returns the value of the "whois_data" field in the mutation.
func (m *CrawledItemMutation) WhoisData() (r map[string]interface{}, exists bool) {
	v := m.whois_data
	if v == nil {
		return
	}
	return *v, true
}

// OldWhoisData returns the old "whois_data" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldWhoisData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhoisData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhoisData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhoisData: %w", err)
	}
	return oldValue.WhoisData, nil
}

// ClearWhoisData clears the value of the "whois_data" field.
func (m *CrawledItemMutation) ClearWhoisData() {
	m.whois_data = nil
	m.clearedFields[crawleditem.FieldWhoisData] = struct{}{}
}

// WhoisDataCleared returns if the "whois_data" field was cleared in this mutation.
func (m *CrawledItemMutation) WhoisDataCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldWhoisData]
	return ok
}

// ResetWhoisData resets all changes to the "whois_data" field.
func (m *CrawledItemMutation) ResetWhoisData() {
	m.whois_data = nil
	delete(m.clearedFields, crawleditem.FieldWhoisData)
}

// SetMetadata sets the "metadata" field.
func (m *CrawledItemMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CrawledItemMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CrawledItemMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[crawleditem.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CrawledItemMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[crawleditem.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CrawledItemMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, crawleditem.FieldMetadata)
}

// SetIngestedAt sets the "ingested_at" field.
func (m *CrawledItemMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *CrawledItemMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the CrawledItem entity.
// If the CrawledItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawledItemMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *CrawledItemMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetVectorRecordID sets the "vector_record" edge to the VectorRecord entity by id.
func (m *CrawledItemMutation) SetVectorRecordID(id string) {
	m.vector_record = &id
}

// ClearVectorRecord clears the "vector_record" edge to the VectorRecord entity.
func (m *CrawledItemMutation) ClearVectorRecord() {
	m.clearedvector_record = true
}

// VectorRecordCleared reports if the "vector_record" edge to the VectorRecord entity was cleared.
func (m *CrawledItemMutation) VectorRecordCleared() bool {
	return m.clearedvector_record
}

// VectorRecordID returns the "vector_record" edge ID in the mutation.
func (m *CrawledItemMutation) VectorRecordID() (id string, exists bool) {
	if m.vector_record != nil {
		return *m.vector_record, true
	}
	return
}

// VectorRecordIDs returns the "vector_record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VectorRecordID instead. It exists only for internal usage by the builders.
func (m *CrawledItemMutation) VectorRecordIDs() (ids []string) {
	if id := m.vector_record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVectorRecord resets all changes to the "vector_record" edge.
func (m *CrawledItemMutation) ResetVectorRecord() {
	m.vector_record = nil
	m.clearedvector_record = false
}

// AddReviewEntryIDs adds the "review_entries" edge to the ReviewEntry entity by ids.
func (m *CrawledItemMutation) AddReviewEntryIDs(ids ...string) {
	if m.review_entries == nil {
		m.review_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.review_entries[ids[i]] = struct{}{}
	}
}

// ClearReviewEntries clears the "review_entries" edge to the ReviewEntry entity.
func (m *CrawledItemMutation) ClearReviewEntries() {
	m.clearedreview_entries = true
}

// ReviewEntriesCleared reports if the "review_entries" edge to the ReviewEntry entity was cleared.
func (m *CrawledItemMutation) ReviewEntriesCleared() bool {
	return m.clearedreview_entries
}

// RemoveReviewEntryIDs removes the "review_entries" edge to the ReviewEntry entity by IDs.
func (m *CrawledItemMutation) RemoveReviewEntryIDs(ids ...string) {
	if m.removedreview_entries == nil {
		m.removedreview_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.review_entries, ids[i])
		m.removedreview_entries[ids[i]] = struct{}{}
	}
}

// RemovedReviewEntries returns the removed IDs of the "review_entries" edge to the ReviewEntry entity.
func (m *CrawledItemMutation) RemovedReviewEntriesIDs() (ids []string) {
	for id := range m.removedreview_entries {
		ids = append(ids, id)
	}
	return
}

// ReviewEntriesIDs returns the "review_entries" edge IDs in the mutation.
func (m *CrawledItemMutation) ReviewEntriesIDs() (ids []string) {
	for id := range m.review_entries {
		ids = append(ids, id)
	}
	return
}

// ResetReviewEntries resets all changes to the "review_entries" edge.
func (m *CrawledItemMutation) ResetReviewEntries() {
	m.review_entries = nil
	m.clearedreview_entries = false
	m.removedreview_entries = nil
}

// Where appends a list predicates to the CrawledItemMutation builder.
func (m *CrawledItemMutation) Where(ps ...predicate.CrawledItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CrawledItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CrawledItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CrawledItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CrawledItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CrawledItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CrawledItem).
func (m *CrawledItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CrawledItemMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.url != nil {
		fields = append(fields, crawleditem.FieldURL)
	}
	if m.domain != nil {
		fields = append(fields, crawleditem.FieldDomain)
	}
	if m.raw_html_path != nil {
		fields = append(fields, crawleditem.FieldRawHTMLPath)
	}
	if m.screenshot_path != nil {
		fields = append(fields, crawleditem.FieldScreenshotPath)
	}
	if m.clean_text != nil {
		fields = append(fields, crawleditem.FieldCleanText)
	}
	if m.language != nil {
		fields = append(fields, crawleditem.FieldLanguage)
	}
	if m.lang_confidence != nil {
		fields = append(fields, crawleditem.FieldLangConfidence)
	}
	if m.translit != nil {
		fields = append(fields, crawleditem.FieldTranslit)
	}
	if m.heuristic_score != nil {
		fields = append(fields, crawleditem.FieldHeuristicScore)
	}
	if m.classifier_score != nil {
		fields = append(fields, crawleditem.FieldClassifierScore)
	}
	if m.label != nil {
		fields = append(fields, crawleditem.FieldLabel)
	}
	if m.image_hashes != nil {
		fields = append(fields, crawleditem.FieldImageHashes)
	}
	if m.whois_data != nil {
		fields = append(fields, crawleditem.FieldWhoisData)
	}
	if m.metadata != nil {
		fields = append(fields, crawleditem.FieldMetadata)
	}
	if m.ingested_at != nil {
		fields = append(fields, crawleditem.FieldIngestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CrawledItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crawleditem.FieldURL:
		return m.URL()
	case crawleditem.FieldDomain:
		return m.Domain()
	case crawleditem.FieldRawHTMLPath:
		return m.RawHTMLPath()
	case crawleditem.FieldScreenshotPath:
		return m.ScreenshotPath()
	case crawleditem.FieldCleanText:
		return m.CleanText()
	case crawleditem.FieldLanguage:
		return m.Language()
	case crawleditem.FieldLangConfidence:
		return m.LangConfidence()
	case crawleditem.FieldTranslit:
		return m.Translit()
	case crawleditem.FieldHeuristicScore:
		return m.HeuristicScore()
	case crawleditem.FieldClassifierScore:
		return m.ClassifierScore()
	case crawleditem.FieldLabel:
		return m.Label()
	case crawleditem.FieldImageHashes:
		return m.ImageHashes()
	case crawleditem.FieldWhoisData:
		return m.WhoisData()
	case crawleditem.FieldMetadata:
		return m.Metadata()
	case crawleditem.FieldIngestedAt:
		return m.IngestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CrawledItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crawleditem.FieldURL:
		return m.OldURL(ctx)
	case crawleditem.FieldDomain:
		return m.OldDomain(ctx)
	case crawleditem.FieldRawHTMLPath:
		return m.OldRawHTMLPath(ctx)
	case crawleditem.FieldScreenshotPath:
		return m.OldScreenshotPath(ctx)
	case crawleditem.FieldCleanText:
		return m.OldCleanText(ctx)
	case crawleditem.FieldLanguage:
		return m.OldLanguage(ctx)
	case crawleditem.FieldLangConfidence:
		return m.OldLangConfidence(ctx)
	case crawleditem.FieldTranslit:
		return m.OldTranslit(ctx)
	case crawleditem.FieldHeuristicScore:
		return m.OldHeuristicScore(ctx)
	case crawleditem.FieldClassifierScore:
		return m.OldClassifierScore(ctx)
	case crawleditem.FieldLabel:
		return m.OldLabel(ctx)
	case crawleditem.FieldImageHashes:
		return m.OldImageHashes(ctx)
	case crawleditem.FieldWhoisData:
		return m.OldWhoisData(ctx)
	case crawleditem.FieldMetadata:
		return m.OldMetadata(ctx)
	case crawleditem.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CrawledItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrawledItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crawleditem.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case crawleditem.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case crawleditem.FieldRawHTMLPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawHTMLPath(v)
		return nil
	case crawleditem.FieldScreenshotPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenshotPath(v)
		return nil
	case crawleditem.FieldCleanText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCleanText(v)
		return nil
	case crawleditem.FieldLanguage:
		v, ok := value.(crawleditem.Language)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case crawleditem.FieldLangConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLangConfidence(v)
		return nil
	case crawleditem.FieldTranslit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslit(v)
		return nil
	case crawleditem.FieldHeuristicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeuristicScore(v)
		return nil
	case crawleditem.FieldClassifierScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifierScore(v)
		return nil
	case crawleditem.FieldLabel:
		v, ok := value.(crawleditem.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case crawleditem.FieldImageHashes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageHashes(v)
		return nil
	case crawleditem.FieldWhoisData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhoisData(v)
		return nil
	case crawleditem.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case crawleditem.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CrawledItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CrawledItemMutation) AddedFields() []string {
	var fields []string
	if m.addlang_confidence != nil {
		fields = append(fields, crawleditem.FieldLangConfidence)
	}
	if m.addheuristic_score != nil {
		fields = append(fields, crawleditem.FieldHeuristicScore)
	}
	if m.addclassifier_score != nil {
		fields = append(fields, crawleditem.FieldClassifierScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CrawledItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case crawleditem.FieldLangConfidence:
		return m.AddedLangConfidence()
	case crawleditem.FieldHeuristicScore:
		return m.AddedHeuristicScore()
	case crawleditem.FieldClassifierScore:
		return m.AddedClassifierScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrawledItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case crawleditem.FieldLangConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLangConfidence(v)
		return nil
	case crawleditem.FieldHeuristicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeuristicScore(v)
		return nil
	case crawleditem.FieldClassifierScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassifierScore(v)
		return nil
	}
	return fmt.Errorf("unknown CrawledItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CrawledItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crawleditem.FieldRawHTMLPath) {
		fields = append(fields, crawleditem.FieldRawHTMLPath)
	}
	if m.FieldCleared(crawleditem.FieldScreenshotPath) {
		fields = append(fields, crawleditem.FieldScreenshotPath)
	}
	if m.FieldCleared(crawleditem.FieldClassifierScore) {
		fields = append(fields, crawleditem.FieldClassifierScore)
	}
	if m.FieldCleared(crawleditem.FieldImageHashes) {
		fields = append(fields, crawleditem.FieldImageHashes)
	}
	if m.FieldCleared(crawleditem.FieldWhoisData) {
		fields = append(fields, crawleditem.FieldWhoisData)
	}
	if m.FieldCleared(crawleditem.FieldMetadata) {
		fields = append(fields, crawleditem.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CrawledItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CrawledItemMutation) ClearField(name string) error {
	switch name {
	case crawleditem.FieldRawHTMLPath:
		m.ClearRawHTMLPath()
		return nil
	case crawleditem.FieldScreenshotPath:
		m.ClearScreenshotPath()
		return nil
	case crawleditem.FieldClassifierScore:
		m.ClearClassifierScore()
		return nil
	case crawleditem.FieldImageHashes:
		m.ClearImageHashes()
		return nil
	case crawleditem.FieldWhoisData:
		m.ClearWhoisData()
		return nil
	case crawleditem.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CrawledItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CrawledItemMutation) ResetField(name string) error {
	switch name {
	case crawleditem.FieldURL:
		m.ResetURL()
		return nil
	case crawleditem.FieldDomain:
		m.ResetDomain()
		return nil
	case crawleditem.FieldRawHTMLPath:
		m.ResetRawHTMLPath()
		return nil
	case crawleditem.FieldScreenshotPath:
		m.ResetScreenshotPath()
		return nil
	case crawleditem.FieldCleanText:
		m.ResetCleanText()
		return nil
	case crawleditem.FieldLanguage:
		m.ResetLanguage()
		return nil
	case crawleditem.FieldLangConfidence:
		m.ResetLangConfidence()
		return nil
	case crawleditem.FieldTranslit:
		m.ResetTranslit()
		return nil
	case crawleditem.FieldHeuristicScore:
		m.ResetHeuristicScore()
		return nil
	case crawleditem.FieldClassifierScore:
		m.ResetClassifierScore()
		return nil
	case crawleditem.FieldLabel:
		m.ResetLabel()
		return nil
	case crawleditem.FieldImageHashes:
		m.ResetImageHashes()
		return nil
	case crawleditem.FieldWhoisData:
		m.ResetWhoisData()
		return nil
	case crawleditem.FieldMetadata:
		m.ResetMetadata()
		return nil
	case crawleditem.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	}
	return fmt.Errorf("unknown CrawledItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CrawledItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.vector_record != nil {
		edges = append(edges, crawleditem.EdgeVectorRecord)
	}
	if m.review_entries != nil {
		edges = append(edges, crawleditem.EdgeReviewEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CrawledItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crawleditem.EdgeVectorRecord:
		if id := m.vector_record; id != nil {
			return []ent.Value{*id}
		}
	case crawleditem.EdgeReviewEntries:
		ids := make([]ent.Value, 0, len(m.review_entries))
		for id := range m.review_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CrawledItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreview_entries != nil {
		edges = append(edges, crawleditem.EdgeReviewEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CrawledItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case crawleditem.EdgeReviewEntries:
		ids := make([]ent.Value, 0, len(m.removedreview_entries))
		for id := range m.removedreview_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CrawledItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvector_record {
		edges = append(edges, crawleditem.EdgeVectorRecord)
	}
	if m.clearedreview_entries {
		edges = append(edges, crawleditem.EdgeReviewEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CrawledItemMutation) EdgeCleared(name string) bool {
	switch name {
	case crawleditem.EdgeVectorRecord:
		return m.clearedvector_record
	case crawleditem.EdgeReviewEntries:
		return m.clearedreview_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CrawledItemMutation) ClearEdge(name string) error {
	switch name {
	case crawleditem.EdgeVectorRecord:
		m.ClearVectorRecord()
		return nil
	}
	return fmt.Errorf("unknown CrawledItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CrawledItemMutation) ResetEdge(name string) error {
	switch name {
	case crawleditem.EdgeVectorRecord:
		m.ResetVectorRecord()
		return nil
	case crawleditem.EdgeReviewEntries:
		m.ResetReviewEntries()
		return nil
	}
	return fmt.Errorf("unknown CrawledItem edge %s", name)
}

// ModelVersionMutation represents an operation that mutates the ModelVersion nodes in the graph.
type ModelVersionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	classifier_version *string
	embedding_model    *string
	llm_version        *string
	dimension          *int
	adddimension       *int
	thresholds         *map[string]float64
	is_active          *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ModelVersion, error)
	predicates         []predicate.ModelVersion
}

var _ ent.Mutation = (*ModelVersionMutation)(nil)

// modelversionOption allows management of the mutation configuration using functional options.
type modelversionOption func(*ModelVersionMutation)

// newModelVersionMutation creates new mutation for the ModelVersion entity.
func newModelVersionMutation(c config, op Op, opts ...modelversionOption) *ModelVersionMutation {
	m := &ModelVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeModelVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelVersionID sets the ID field of the mutation.
func withModelVersionID(id string) modelversionOption {
	return func(m *ModelVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelVersion
		)
		m.oldValue = func(ctx context.Context) (*ModelVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelVersion sets the old ModelVersion of the mutation.
func withModelVersion(node *ModelVersion) modelversionOption {
	return func(m *ModelVersionMutation) {
		m.oldValue = func(context.Context) (*ModelVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelVersion entities.
func (m *ModelVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClassifierVersion sets the "classifier_version" field.
func (m *ModelVersionMutation) SetClassifierVersion(s string) {
	m.classifier_version = &s
}

// ClassifierVersion returns the value of the "classifier_version" field in the mutation.
func (m *ModelVersionMutation) ClassifierVersion() (r string, exists bool) {
	v := m.classifier_version
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifierVersion returns the old "classifier_version" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldClassifierVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifierVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifierVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifierVersion: %w", err)
	}
	return oldValue.ClassifierVersion, nil
}

// ResetClassifierVersion resets all changes to the "classifier_version" field.
func (m *ModelVersionMutation) ResetClassifierVersion() {
	m.classifier_version = nil
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *ModelVersionMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *ModelVersionMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldEmbeddingModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *ModelVersionMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
}

// SetLlmVersion sets the "llm_version" field.
func (m *ModelVersionMutation) SetLlmVersion(s string) {
	m.llm_version = &s
}

// LlmVersion returns the value of the "llm_version" field in the mutation.
func (m *ModelVersionMutation) LlmVersion() (r string, exists bool) {
	v := m.llm_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmVersion returns the old "llm_version" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldLlmVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmVersion: %w", err)
	}
	return oldValue.LlmVersion, nil
}

// ResetLlmVersion resets all changes to the "llm_version" field.
func (m *ModelVersionMutation) ResetLlmVersion() {
	m.llm_version = nil
}

// SetDimension sets the "dimension" field.
func (m *ModelVersionMutation) SetDimension(i int) {
	m.dimension = &i
	m.adddimension = nil
}

// Dimension returns the value of the "dimension" field in the mutation.
func (m *ModelVersionMutation) Dimension() (r int, exists bool) {
	v := m.dimension
	if v == nil {
		return
	}
	return *v, true
}

// OldDimension returns the old "dimension" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldDimension(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimension: %w", err)
	}
	return oldValue.Dimension, nil
}

// AddDimension adds i to the "dimension" field.
func (m *ModelVersionMutation) AddDimension(i int) {
	if m.adddimension != nil {
		*m.adddimension += i
	} else {
		m.adddimension = &i
	}
}

// AddedDimension returns the value that was added to the "dimension" field in this mutation.
func (m *ModelVersionMutation) AddedDimension() (r int, exists bool) {
	v := m.adddimension
	if v == nil {
		return
	}
	return *v, true
}

// ResetDimension resets all changes to the "dimension" field.
func (m *ModelVersionMutation) ResetDimension() {
	m.dimension = nil
	m.adddimension = nil
}

// SetThresholds sets the "thresholds" field.
func (m *ModelVersionMutation) SetThresholds(value map[string]float64) {
	m.thresholds = &value
}

// Thresholds returns the value of the "thresholds" field in the mutation.
func (m *ModelVersionMutation) Thresholds() (r map[string]float64, exists bool) {
	v := m.thresholds
	if v == nil {
		return
	}
	return *v, true
}

// OldThresholds returns the old "thresholds" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldThresholds(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThresholds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThresholds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThresholds: %w", err)
	}
	return oldValue.Thresholds, nil
}

// ResetThresholds resets all changes to the "thresholds" field.
func (m *ModelVersionMutation) ResetThresholds() {
	m.thresholds = nil
}

// SetIsActive sets the "is_active" field.
func (m *ModelVersionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ModelVersionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ModelVersionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelVersion entity.
// If the ModelVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelVersionMutation builder.
func (m *ModelVersionMutation) Where(ps ...predicate.ModelVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelVersion).
func (m *ModelVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelVersionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.classifier_version != nil {
		fields = append(fields, modelversion.FieldClassifierVersion)
	}
	if m.embedding_model != nil {
		fields = append(fields, modelversion.FieldEmbeddingModel)
	}
	if m.llm_version != nil {
		fields = append(fields, modelversion.FieldLlmVersion)
	}
	if m.dimension != nil {
		fields = append(fields, modelversion.FieldDimension)
	}
	if m.thresholds != nil {
		fields = append(fields, modelversion.FieldThresholds)
	}
	if m.is_active != nil {
		fields = append(fields, modelversion.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, modelversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelversion.FieldClassifierVersion:
		return m.ClassifierVersion()
	case modelversion.FieldEmbeddingModel:
		return m.EmbeddingModel()
	case modelversion.FieldLlmVersion:
		return m.LlmVersion()
	case modelversion.FieldDimension:
		return m.Dimension()
	case modelversion.FieldThresholds:
		return m.Thresholds()
	case modelversion.FieldIsActive:
		return m.IsActive()
	case modelversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelversion.FieldClassifierVersion:
		return m.OldClassifierVersion(ctx)
	case modelversion.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	case modelversion.FieldLlmVersion:
		return m.OldLlmVersion(ctx)
	case modelversion.FieldDimension:
		return m.OldDimension(ctx)
	case modelversion.FieldThresholds:
		return m.OldThresholds(ctx)
	case modelversion.FieldIsActive:
		return m.OldIsActive(ctx)
	case modelversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelversion.FieldClassifierVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifierVersion(v)
		return nil
	case modelversion.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	case modelversion.FieldLlmVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmVersion(v)
		return nil
	case modelversion.FieldDimension:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimension(v)
		return nil
	case modelversion.FieldThresholds:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThresholds(v)
		return nil
	case modelversion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case modelversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelVersionMutation) AddedFields() []string {
	var fields []string
	if m.adddimension != nil {
		fields = append(fields, modelversion.FieldDimension)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelversion.FieldDimension:
		return m.AddedDimension()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelversion.FieldDimension:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDimension(v)
		return nil
	}
	return fmt.Errorf("unknown ModelVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ModelVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelVersionMutation) ResetField(name string) error {
	switch name {
	case modelversion.FieldClassifierVersion:
		m.ResetClassifierVersion()
		return nil
	case modelversion.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	case modelversion.FieldLlmVersion:
		m.ResetLlmVersion()
		return nil
	case modelversion.FieldDimension:
		m.ResetDimension()
		return nil
	case modelversion.FieldThresholds:
		m.ResetThresholds()
		return nil
	case modelversion.FieldIsActive:
		m.ResetIsActive()
		return nil
	case modelversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelVersionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelVersionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelVersionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelVersionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelVersion edge %s", name)
}

// ReviewEntryMutation represents an operation that mutates the ReviewEntry nodes in the graph.
type ReviewEntryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	status          *reviewentry.Status
	priority        *int
	addpriority     *int
	note            *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	doc             *string
	cleareddoc      bool
	assignee        *string
	clearedassignee bool
	done            bool
	oldValue        func(context.Context) (*ReviewEntry, error)
	predicates      []predicate.ReviewEntry
}

var _ ent.Mutation = (*ReviewEntryMutation)(nil)

// reviewentryOption allows management of the mutation configuration using functional options.
type reviewentryOption func(*ReviewEntryMutation)

// newReviewEntryMutation creates new mutation for the ReviewEntry entity.
func newReviewEntryMutation(c config, op Op, opts ...reviewentryOption) *ReviewEntryMutation {
	m := &ReviewEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEntryID sets the ID field of the mutation.
func withReviewEntryID(id string) reviewentryOption {
	return func(m *ReviewEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEntry
		)
		m.oldValue = func(ctx context.Context) (*ReviewEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEntry sets the old ReviewEntry of the mutation.
func withReviewEntry(node *ReviewEntry) reviewentryOption {
	return func(m *ReviewEntryMutation) {
		m.oldValue = func(context.Context) (*ReviewEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewEntry entities.
func (m *ReviewEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *ReviewEntryMutation) SetDocID(s string) {
	m.doc = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *ReviewEntryMutation) DocID() (r string, exists bool) {
	v := m.doc
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *ReviewEntryMutation) ResetDocID() {
	m.doc = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *ReviewEntryMutation) SetAssignedTo(s string) {
	m.assignee = &s
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *ReviewEntryMutation) AssignedTo() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldAssignedTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *ReviewEntryMutation) ClearAssignedTo() {
	m.assignee = nil
	m.clearedFields[reviewentry.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *ReviewEntryMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[reviewentry.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *ReviewEntryMutation) ResetAssignedTo() {
	m.assignee = nil
	delete(m.clearedFields, reviewentry.FieldAssignedTo)
}

// SetStatus sets the "status" field.
func (m *ReviewEntryMutation) SetStatus(r reviewentry.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewEntryMutation) Status() (r reviewentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldStatus(ctx context.Context) (v reviewentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewEntryMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *ReviewEntryMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ReviewEntryMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ReviewEntryMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ReviewEntryMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ReviewEntryMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetNote sets the "note" field.
func (m *ReviewEntryMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ReviewEntryMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ReviewEntryMutation) ClearNote() {
	m.note = nil
	m.clearedFields[reviewentry.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ReviewEntryMutation) NoteCleared() bool {
	_, ok := m.clearedFields[reviewentry.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ReviewEntryMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, reviewentry.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewEntry entity.
// If the ReviewEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDoc clears the "doc" edge to the CrawledItem entity.
func (m *ReviewEntryMutation) ClearDoc() {
	m.cleareddoc = true
	m.clearedFields[reviewentry.FieldDocID] = struct{}{}
}

// DocCleared reports if the "doc" edge to the CrawledItem entity was cleared.
func (m *ReviewEntryMutation) DocCleared() bool {
	return m.cleareddoc
}

// DocIDs returns the "doc" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocID instead. It exists only for internal usage by the builders.
func (m *ReviewEntryMutation) DocIDs() (ids []string) {
	if id := m.doc; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoc resets all changes to the "doc" edge.
func (m *ReviewEntryMutation) ResetDoc() {
	m.doc = nil
	m.cleareddoc = false
}

// SetAssigneeID sets the "assignee" edge to the User entity by id.
func (m *ReviewEntryMutation) SetAssigneeID(id string) {
	m.assignee = &id
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (m *ReviewEntryMutation) ClearAssignee() {
	m.clearedassignee = true
	m.clearedFields[reviewentry.FieldAssignedTo] = struct{}{}
}

// AssigneeCleared reports if the "assignee" edge to the User entity was cleared.
func (m *ReviewEntryMutation) AssigneeCleared() bool {
	return m.AssignedToCleared() || m.clearedassignee
}

// AssigneeID returns the "assignee" edge ID in the mutation.
func (m *ReviewEntryMutation) AssigneeID() (id string, exists bool) {
	if m.assignee != nil {
		return *m.assignee, true
	}
	return
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *ReviewEntryMutation) AssigneeIDs() (ids []string) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *ReviewEntryMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// Where appends a list predicates to the ReviewEntryMutation builder.
func (m *ReviewEntryMutation) Where(ps ...predicate.ReviewEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEntry).
func (m *ReviewEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.doc != nil {
		fields = append(fields, reviewentry.FieldDocID)
	}
	if m.assignee != nil {
		fields = append(fields, reviewentry.FieldAssignedTo)
	}
	if m.status != nil {
		fields = append(fields, reviewentry.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, reviewentry.FieldPriority)
	}
	if m.note != nil {
		fields = append(fields, reviewentry.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, reviewentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewentry.FieldDocID:
		return m.DocID()
	case reviewentry.FieldAssignedTo:
		return m.AssignedTo()
	case reviewentry.FieldStatus:
		return m.Status()
	case reviewentry.FieldPriority:
		return m.Priority()
	case reviewentry.FieldNote:
		return m.Note()
	case reviewentry.FieldCreatedAt:
		return m.CreatedAt()
	case reviewentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewentry.FieldDocID:
		return m.OldDocID(ctx)
	case reviewentry.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case reviewentry.FieldStatus:
		return m.OldStatus(ctx)
	case reviewentry.FieldPriority:
		return m.OldPriority(ctx)
	case reviewentry.FieldNote:
		return m.OldNote(ctx)
	case reviewentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewentry.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case reviewentry.FieldAssignedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case reviewentry.FieldStatus:
		v, ok := value.(reviewentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewentry.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case reviewentry.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case reviewentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEntryMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, reviewentry.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewentry.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewentry.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewentry.FieldAssignedTo) {
		fields = append(fields, reviewentry.FieldAssignedTo)
	}
	if m.FieldCleared(reviewentry.FieldNote) {
		fields = append(fields, reviewentry.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEntryMutation) ClearField(name string) error {
	switch name {
	case reviewentry.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case reviewentry.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEntryMutation) ResetField(name string) error {
	switch name {
	case reviewentry.FieldDocID:
		m.ResetDocID()
		return nil
	case reviewentry.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case reviewentry.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewentry.FieldPriority:
		m.ResetPriority()
		return nil
	case reviewentry.FieldNote:
		m.ResetNote()
		return nil
	case reviewentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.doc != nil {
		edges = append(edges, reviewentry.EdgeDoc)
	}
	if m.assignee != nil {
		edges = append(edges, reviewentry.EdgeAssignee)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reviewentry.EdgeDoc:
		if id := m.doc; id != nil {
			return []ent.Value{*id}
		}
	case reviewentry.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddoc {
		edges = append(edges, reviewentry.EdgeDoc)
	}
	if m.clearedassignee {
		edges = append(edges, reviewentry.EdgeAssignee)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case reviewentry.EdgeDoc:
		return m.cleareddoc
	case reviewentry.EdgeAssignee:
		return m.clearedassignee
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEntryMutation) ClearEdge(name string) error {
	switch name {
	case reviewentry.EdgeDoc:
		m.ClearDoc()
		return nil
	case reviewentry.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEntryMutation) ResetEdge(name string) error {
	switch name {
	case reviewentry.EdgeDoc:
		m.ResetDoc()
		return nil
	case reviewentry.EdgeAssignee:
		m.ResetAssignee()
		return nil
	}
	return fmt.Errorf("unknown ReviewEntry edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	username                *string
	email                   *string
	role                    *user.Role
	verified                *bool
	created_at              *time.Time
	clearedFields           map[string]struct{}
	assigned_reviews        map[string]struct{}
	removedassigned_reviews map[string]struct{}
	clearedassigned_reviews bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetVerified sets the "verified" field.
func (m *UserMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *UserMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *UserMutation) ResetVerified() {
	m.verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAssignedReviewIDs adds the "assigned_reviews" edge to the ReviewEntry entity by ids.
func (m *UserMutation) AddAssignedReviewIDs(ids ...string) {
	if m.assigned_reviews == nil {
		m.assigned_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.assigned_reviews[ids[i]] = struct{}{}
	}
}

// ClearAssignedReviews clears the "assigned_reviews" edge to the ReviewEntry entity.
func (m *UserMutation) ClearAssignedReviews() {
	m.clearedassigned_reviews = true
}

// AssignedReviewsCleared reports if the "assigned_reviews" edge to the ReviewEntry entity was cleared.
func (m *UserMutation) AssignedReviewsCleared() bool {
	return m.clearedassigned_reviews
}

// RemoveAssignedReviewIDs removes the "assigned_reviews" edge to the ReviewEntry entity by IDs.
func (m *UserMutation) RemoveAssignedReviewIDs(ids ...string) {
	if m.removedassigned_reviews == nil {
		m.removedassigned_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.assigned_reviews, ids[i])
		m.removedassigned_reviews[ids[i]] = struct{}{}
	}
}

// RemovedAssignedReviews returns the removed IDs of the "assigned_reviews" edge to the ReviewEntry entity.
func (m *UserMutation) RemovedAssignedReviewsIDs() (ids []string) {
	for id := range m.removedassigned_reviews {
		ids = append(ids, id)
	}
	return
}

// AssignedReviewsIDs returns the "assigned_reviews" edge IDs in the mutation.
func (m *UserMutation) AssignedReviewsIDs() (ids []string) {
	for id := range m.assigned_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedReviews resets all changes to the "assigned_reviews" edge.
func (m *UserMutation) ResetAssignedReviews() {
	m.assigned_reviews = nil
	m.clearedassigned_reviews = false
	m.removedassigned_reviews = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.verified != nil {
		fields = append(fields, user.FieldVerified)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRole:
		return m.Role()
	case user.FieldVerified:
		return m.Verified()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldVerified:
		return m.OldVerified(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldVerified:
		m.ResetVerified()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assigned_reviews != nil {
		edges = append(edges, user.EdgeAssignedReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAssignedReviews:
		ids := make([]ent.Value, 0, len(m.assigned_reviews))
		for id := range m.assigned_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedassigned_reviews != nil {
		edges = append(edges, user.EdgeAssignedReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAssignedReviews:
		ids := make([]ent.Value, 0, len(m.removedassigned_reviews))
		for id := range m.removedassigned_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassigned_reviews {
		edges = append(edges, user.EdgeAssignedReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAssignedReviews:
		return m.clearedassigned_reviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAssignedReviews:
		m.ResetAssignedReviews()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VectorRecordMutation represents an operation that mutates the VectorRecord nodes in the graph.
type VectorRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	embedding_id  *string
	external_id   *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	doc           *string
	cleareddoc    bool
	done          bool
	oldValue      func(context.Context) (*VectorRecord, error)
	predicates    []predicate.VectorRecord
}

var _ ent.Mutation = (*VectorRecordMutation)(nil)

// vectorrecordOption allows management of the mutation configuration using functional options.
type vectorrecordOption func(*VectorRecordMutation)

// newVectorRecordMutation creates new mutation for the VectorRecord entity.
func newVectorRecordMutation(c config, op Op, opts ...vectorrecordOption) *VectorRecordMutation {
	m := &VectorRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeVectorRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVectorRecordID sets the ID field of the mutation.
func withVectorRecordID(id string) vectorrecordOption {
	return func(m *VectorRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *VectorRecord
		)
		m.oldValue = func(ctx context.Context) (*VectorRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VectorRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVectorRecord sets the old VectorRecord of the mutation.
func withVectorRecord(node *VectorRecord) vectorrecordOption {
	return func(m *VectorRecordMutation) {
		m.oldValue = func(context.Context) (*VectorRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VectorRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VectorRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VectorRecord entities.
func (m *VectorRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VectorRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VectorRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VectorRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *VectorRecordMutation) SetDocID(s string) {
	m.doc = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *VectorRecordMutation) DocID() (r string, exists bool) {
	v := m.doc
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the VectorRecord entity.
// If the VectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorRecordMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *VectorRecordMutation) ResetDocID() {
	m.doc = nil
}

// SetEmbeddingID sets the "embedding_id" field.
func (m *VectorRecordMutation) SetEmbeddingID(s string) {
	m.embedding_id = &s
}

// EmbeddingID returns the value of the "embedding_id" field in the mutation.
func (m *VectorRecordMutation) EmbeddingID() (r string, exists bool) {
	v := m.embedding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingID returns the old "embedding_id" field's value of the VectorRecord entity.
// If the VectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorRecordMutation) OldEmbeddingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingID: %w", err)
	}
	return oldValue.EmbeddingID, nil
}

// ResetEmbeddingID resets all changes to the "embedding_id" field.
func (m *VectorRecordMutation) ResetEmbeddingID() {
	m.embedding_id = nil
}

// SetExternalID sets the "external_id" field.
func (m *VectorRecordMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *VectorRecordMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the VectorRecord entity.
// If the VectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorRecordMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *VectorRecordMutation) ResetExternalID() {
	m.external_id = nil
}

// SetMetadata sets the "metadata" field.
func (m *VectorRecordMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *VectorRecordMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the VectorRecord entity.
// If the VectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorRecordMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *VectorRecordMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[vectorrecord.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *VectorRecordMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[vectorrecord.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *VectorRecordMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, vectorrecord.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *VectorRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VectorRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VectorRecord entity.
// If the VectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VectorRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDoc clears the "doc" edge to the CrawledItem entity.
func (m *VectorRecordMutation) ClearDoc() {
	m.cleareddoc = true
	m.clearedFields[vectorrecord.FieldDocID] = struct{}{}
}

// DocCleared reports if the "doc" edge to the CrawledItem entity was cleared.
func (m *VectorRecordMutation) DocCleared() bool {
	return m.cleareddoc
}

// DocIDs returns the "doc" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocID instead. It exists only for internal usage by the builders.
func (m *VectorRecordMutation) DocIDs() (ids []string) {
	if id := m.doc; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoc resets all changes to the "doc" edge.
func (m *VectorRecordMutation) ResetDoc() {
	m.doc = nil
	m.cleareddoc = false
}

// Where appends a list predicates to the VectorRecordMutation builder.
func (m *VectorRecordMutation) Where(ps ...predicate.VectorRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VectorRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VectorRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VectorRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VectorRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VectorRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VectorRecord).
func (m *VectorRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VectorRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.doc != nil {
		fields = append(fields, vectorrecord.FieldDocID)
	}
	if m.embedding_id != nil {
		fields = append(fields, vectorrecord.FieldEmbeddingID)
	}
	if m.external_id != nil {
		fields = append(fields, vectorrecord.FieldExternalID)
	}
	if m.metadata != nil {
		fields = append(fields, vectorrecord.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, vectorrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VectorRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vectorrecord.FieldDocID:
		return m.DocID()
	case vectorrecord.FieldEmbeddingID:
		return m.EmbeddingID()
	case vectorrecord.FieldExternalID:
		return m.ExternalID()
	case vectorrecord.FieldMetadata:
		return m.Metadata()
	case vectorrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VectorRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vectorrecord.FieldDocID:
		return m.OldDocID(ctx)
	case vectorrecord.FieldEmbeddingID:
		return m.OldEmbeddingID(ctx)
	case vectorrecord.FieldExternalID:
		return m.OldExternalID(ctx)
	case vectorrecord.FieldMetadata:
		return m.OldMetadata(ctx)
	case vectorrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VectorRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vectorrecord.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case vectorrecord.FieldEmbeddingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingID(v)
		return nil
	case vectorrecord.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case vectorrecord.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case vectorrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VectorRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VectorRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VectorRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VectorRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VectorRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vectorrecord.FieldMetadata) {
		fields = append(fields, vectorrecord.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VectorRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VectorRecordMutation) ClearField(name string) error {
	switch name {
	case vectorrecord.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown VectorRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VectorRecordMutation) ResetField(name string) error {
	switch name {
	case vectorrecord.FieldDocID:
		m.ResetDocID()
		return nil
	case vectorrecord.FieldEmbeddingID:
		m.ResetEmbeddingID()
		return nil
	case vectorrecord.FieldExternalID:
		m.ResetExternalID()
		return nil
	case vectorrecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	case vectorrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VectorRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VectorRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.doc != nil {
		edges = append(edges, vectorrecord.EdgeDoc)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VectorRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vectorrecord.EdgeDoc:
		if id := m.doc; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VectorRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VectorRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VectorRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddoc {
		edges = append(edges, vectorrecord.EdgeDoc)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VectorRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case vectorrecord.EdgeDoc:
		return m.cleareddoc
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VectorRecordMutation) ClearEdge(name string) error {
	switch name {
	case vectorrecord.EdgeDoc:
		m.ClearDoc()
		return nil
	}
	return fmt.Errorf("unknown VectorRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VectorRecordMutation) ResetEdge(name string) error {
	switch name {
	case vectorrecord.EdgeDoc:
		m.ResetDoc()
		return nil
	}
	return fmt.Errorf("unknown VectorRecord edge %s", name)
}
