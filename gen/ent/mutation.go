// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/biasharaledger/docextract/gen/ent/company"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/biasharaledger/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany       = "Company"
	TypeDocument      = "Document"
	TypeExtractedData = "ExtractedData"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *CompanyMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *CompanyMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *CompanyMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *CompanyMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *CompanyMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CompanyMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CompanyMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documents != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocuments != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocuments {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	raw_text            *string
	source_format       *string
	status              *string
	pattern_set_version *string
	attempt_count       *int
	addattempt_count    *int
	last_error_kind     *string
	last_error_message  *string
	created_at          *time.Time
	processed_at        *time.Time
	clearedFields       map[string]struct{}
	company             *uuid.UUID
	clearedcompany      bool
	extraction          *uuid.UUID
	clearedextraction   bool
	done                bool
	oldValue            func(context.Context) (*Document, error)
	predicates          []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *DocumentMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DocumentMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DocumentMutation) ResetCompanyID() {
	m.company = nil
}

// SetRawText sets the "raw_text" field.
func (m *DocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *DocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *DocumentMutation) ResetRawText() {
	m.raw_text = nil
}

// SetSourceFormat sets the "source_format" field.
func (m *DocumentMutation) SetSourceFormat(s string) {
	m.source_format = &s
}

// SourceFormat returns the value of the "source_format" field in the mutation.
func (m *DocumentMutation) SourceFormat() (r string, exists bool) {
	v := m.source_format
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFormat returns the old "source_format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFormat: %w", err)
	}
	return oldValue.SourceFormat, nil
}

// ResetSourceFormat resets all changes to the "source_format" field.
func (m *DocumentMutation) ResetSourceFormat() {
	m.source_format = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (m *DocumentMutation) SetPatternSetVersion(s string) {
	m.pattern_set_version = &s
}

// PatternSetVersion returns the value of the "pattern_set_version" field in the mutation.
func (m *DocumentMutation) PatternSetVersion() (r string, exists bool) {
	v := m.pattern_set_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternSetVersion returns the old "pattern_set_version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPatternSetVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternSetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternSetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternSetVersion: %w", err)
	}
	return oldValue.PatternSetVersion, nil
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (m *DocumentMutation) ClearPatternSetVersion() {
	m.pattern_set_version = nil
	m.clearedFields[document.FieldPatternSetVersion] = struct{}{}
}

// PatternSetVersionCleared returns if the "pattern_set_version" field was cleared in this mutation.
func (m *DocumentMutation) PatternSetVersionCleared() bool {
	_, ok := m.clearedFields[document.FieldPatternSetVersion]
	return ok
}

// ResetPatternSetVersion resets all changes to the "pattern_set_version" field.
func (m *DocumentMutation) ResetPatternSetVersion() {
	m.pattern_set_version = nil
	delete(m.clearedFields, document.FieldPatternSetVersion)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *DocumentMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *DocumentMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *DocumentMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *DocumentMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *DocumentMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetLastErrorKind sets the "last_error_kind" field.
func (m *DocumentMutation) SetLastErrorKind(s string) {
	m.last_error_kind = &s
}

// LastErrorKind returns the value of the "last_error_kind" field in the mutation.
func (m *DocumentMutation) LastErrorKind() (r string, exists bool) {
	v := m.last_error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorKind returns the old "last_error_kind" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorKind: %w", err)
	}
	return oldValue.LastErrorKind, nil
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (m *DocumentMutation) ClearLastErrorKind() {
	m.last_error_kind = nil
	m.clearedFields[document.FieldLastErrorKind] = struct{}{}
}

// LastErrorKindCleared returns if the "last_error_kind" field was cleared in this mutation.
func (m *DocumentMutation) LastErrorKindCleared() bool {
	_, ok := m.clearedFields[document.FieldLastErrorKind]
	return ok
}

// ResetLastErrorKind resets all changes to the "last_error_kind" field.
func (m *DocumentMutation) ResetLastErrorKind() {
	m.last_error_kind = nil
	delete(m.clearedFields, document.FieldLastErrorKind)
}

// SetLastErrorMessage sets the "last_error_message" field.
func (m *DocumentMutation) SetLastErrorMessage(s string) {
	m.last_error_message = &s
}

// LastErrorMessage returns the value of the "last_error_message" field in the mutation.
func (m *DocumentMutation) LastErrorMessage() (r string, exists bool) {
	v := m.last_error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorMessage returns the old "last_error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorMessage: %w", err)
	}
	return oldValue.LastErrorMessage, nil
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (m *DocumentMutation) ClearLastErrorMessage() {
	m.last_error_message = nil
	m.clearedFields[document.FieldLastErrorMessage] = struct{}{}
}

// LastErrorMessageCleared returns if the "last_error_message" field was cleared in this mutation.
func (m *DocumentMutation) LastErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldLastErrorMessage]
	return ok
}

// ResetLastErrorMessage resets all changes to the "last_error_message" field.
func (m *DocumentMutation) ResetLastErrorMessage() {
	m.last_error_message = nil
	delete(m.clearedFields, document.FieldLastErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *DocumentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[document.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *DocumentMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *DocumentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// SetExtractionID sets the "extraction" edge to the ExtractedData entity by id.
func (m *DocumentMutation) SetExtractionID(id uuid.UUID) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the ExtractedData entity.
func (m *DocumentMutation) ClearExtraction() {
	m.clearedextraction = true
}

// ExtractionCleared reports if the "extraction" edge to the ExtractedData entity was cleared.
func (m *DocumentMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *DocumentMutation) ExtractionID() (id uuid.UUID, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *DocumentMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.company != nil {
		fields = append(fields, document.FieldCompanyID)
	}
	if m.raw_text != nil {
		fields = append(fields, document.FieldRawText)
	}
	if m.source_format != nil {
		fields = append(fields, document.FieldSourceFormat)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.pattern_set_version != nil {
		fields = append(fields, document.FieldPatternSetVersion)
	}
	if m.attempt_count != nil {
		fields = append(fields, document.FieldAttemptCount)
	}
	if m.last_error_kind != nil {
		fields = append(fields, document.FieldLastErrorKind)
	}
	if m.last_error_message != nil {
		fields = append(fields, document.FieldLastErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCompanyID:
		return m.CompanyID()
	case document.FieldRawText:
		return m.RawText()
	case document.FieldSourceFormat:
		return m.SourceFormat()
	case document.FieldStatus:
		return m.Status()
	case document.FieldPatternSetVersion:
		return m.PatternSetVersion()
	case document.FieldAttemptCount:
		return m.AttemptCount()
	case document.FieldLastErrorKind:
		return m.LastErrorKind()
	case document.FieldLastErrorMessage:
		return m.LastErrorMessage()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case document.FieldRawText:
		return m.OldRawText(ctx)
	case document.FieldSourceFormat:
		return m.OldSourceFormat(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldPatternSetVersion:
		return m.OldPatternSetVersion(ctx)
	case document.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case document.FieldLastErrorKind:
		return m.OldLastErrorKind(ctx)
	case document.FieldLastErrorMessage:
		return m.OldLastErrorMessage(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case document.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case document.FieldSourceFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFormat(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldPatternSetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternSetVersion(v)
		return nil
	case document.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case document.FieldLastErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorKind(v)
		return nil
	case document.FieldLastErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorMessage(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, document.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldPatternSetVersion) {
		fields = append(fields, document.FieldPatternSetVersion)
	}
	if m.FieldCleared(document.FieldLastErrorKind) {
		fields = append(fields, document.FieldLastErrorKind)
	}
	if m.FieldCleared(document.FieldLastErrorMessage) {
		fields = append(fields, document.FieldLastErrorMessage)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldPatternSetVersion:
		m.ClearPatternSetVersion()
		return nil
	case document.FieldLastErrorKind:
		m.ClearLastErrorKind()
		return nil
	case document.FieldLastErrorMessage:
		m.ClearLastErrorMessage()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case document.FieldRawText:
		m.ResetRawText()
		return nil
	case document.FieldSourceFormat:
		m.ResetSourceFormat()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldPatternSetVersion:
		m.ResetPatternSetVersion()
		return nil
	case document.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case document.FieldLastErrorKind:
		m.ResetLastErrorKind()
		return nil
	case document.FieldLastErrorMessage:
		m.ResetLastErrorMessage()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, document.EdgeCompany)
	}
	if m.extraction != nil {
		edges = append(edges, document.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, document.EdgeCompany)
	}
	if m.clearedextraction {
		edges = append(edges, document.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeCompany:
		return m.clearedcompany
	case document.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeCompany:
		m.ClearCompany()
		return nil
	case document.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeCompany:
		m.ResetCompany()
		return nil
	case document.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractedDataMutation represents an operation that mutates the ExtractedData nodes in the graph.
type ExtractedDataMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	company_id          *uuid.UUID
	amounts             *json.RawMessage
	appendamounts       json.RawMessage
	transaction_date    *time.Time
	dates_found         *json.RawMessage
	appenddates_found   json.RawMessage
	vendor_name         *string
	invoice_number      *string
	reference_number    *string
	transaction_type    *string
	category            *string
	tax_amount          *float64
	addtax_amount       *float64
	payment_method      *string
	confidence_score    *float64
	addconfidence_score *float64
	extraction_method   *string
	pattern_set_version *string
	needs_review        *bool
	extracted_at        *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*ExtractedData, error)
	predicates          []predicate.ExtractedData
}

var _ ent.Mutation = (*ExtractedDataMutation)(nil)

// extracteddataOption allows management of the mutation configuration using functional options.
type extracteddataOption func(*ExtractedDataMutation)

// newExtractedDataMutation creates new mutation for the ExtractedData entity.
func newExtractedDataMutation(c config, op Op, opts ...extracteddataOption) *ExtractedDataMutation {
	m := &ExtractedDataMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedDataID sets the ID field of the mutation.
func withExtractedDataID(id uuid.UUID) extracteddataOption {
	return func(m *ExtractedDataMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedData
		)
		m.oldValue = func(ctx context.Context) (*ExtractedData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedData sets the old ExtractedData of the mutation.
func withExtractedData(node *ExtractedData) extracteddataOption {
	return func(m *ExtractedDataMutation) {
		m.oldValue = func(context.Context) (*ExtractedData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedData entities.
func (m *ExtractedDataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedDataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedDataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedDataMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedDataMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedDataMutation) ResetDocumentID() {
	m.document = nil
}

// SetCompanyID sets the "company_id" field.
func (m *ExtractedDataMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ExtractedDataMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ExtractedDataMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetAmounts sets the "amounts" field.
func (m *ExtractedDataMutation) SetAmounts(jm json.RawMessage) {
	m.amounts = &jm
	m.appendamounts = nil
}

// Amounts returns the value of the "amounts" field in the mutation.
func (m *ExtractedDataMutation) Amounts() (r json.RawMessage, exists bool) {
	v := m.amounts
	if v == nil {
		return
	}
	return *v, true
}

// OldAmounts returns the old "amounts" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldAmounts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmounts: %w", err)
	}
	return oldValue.Amounts, nil
}

// AppendAmounts adds jm to the "amounts" field.
func (m *ExtractedDataMutation) AppendAmounts(jm json.RawMessage) {
	m.appendamounts = append(m.appendamounts, jm...)
}

// AppendedAmounts returns the list of values that were appended to the "amounts" field in this mutation.
func (m *ExtractedDataMutation) AppendedAmounts() (json.RawMessage, bool) {
	if len(m.appendamounts) == 0 {
		return nil, false
	}
	return m.appendamounts, true
}

// ClearAmounts clears the value of the "amounts" field.
func (m *ExtractedDataMutation) ClearAmounts() {
	m.amounts = nil
	m.appendamounts = nil
	m.clearedFields[extracteddata.FieldAmounts] = struct{}{}
}

// AmountsCleared returns if the "amounts" field was cleared in this mutation.
func (m *ExtractedDataMutation) AmountsCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldAmounts]
	return ok
}

// ResetAmounts resets all changes to the "amounts" field.
func (m *ExtractedDataMutation) ResetAmounts() {
	m.amounts = nil
	m.appendamounts = nil
	delete(m.clearedFields, extracteddata.FieldAmounts)
}

// SetTransactionDate sets the "transaction_date" field.
func (m *ExtractedDataMutation) SetTransactionDate(t time.Time) {
	m.transaction_date = &t
}

// TransactionDate returns the value of the "transaction_date" field in the mutation.
func (m *ExtractedDataMutation) TransactionDate() (r time.Time, exists bool) {
	v := m.transaction_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionDate returns the old "transaction_date" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldTransactionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionDate: %w", err)
	}
	return oldValue.TransactionDate, nil
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (m *ExtractedDataMutation) ClearTransactionDate() {
	m.transaction_date = nil
	m.clearedFields[extracteddata.FieldTransactionDate] = struct{}{}
}

// TransactionDateCleared returns if the "transaction_date" field was cleared in this mutation.
func (m *ExtractedDataMutation) TransactionDateCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldTransactionDate]
	return ok
}

// ResetTransactionDate resets all changes to the "transaction_date" field.
func (m *ExtractedDataMutation) ResetTransactionDate() {
	m.transaction_date = nil
	delete(m.clearedFields, extracteddata.FieldTransactionDate)
}

// SetDatesFound sets the "dates_found" field.
func (m *ExtractedDataMutation) SetDatesFound(jm json.RawMessage) {
	m.dates_found = &jm
	m.appenddates_found = nil
}

// DatesFound returns the value of the "dates_found" field in the mutation.
func (m *ExtractedDataMutation) DatesFound() (r json.RawMessage, exists bool) {
	v := m.dates_found
	if v == nil {
		return
	}
	return *v, true
}

// OldDatesFound returns the old "dates_found" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldDatesFound(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatesFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatesFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatesFound: %w", err)
	}
	return oldValue.DatesFound, nil
}

// AppendDatesFound adds jm to the "dates_found" field.
func (m *ExtractedDataMutation) AppendDatesFound(jm json.RawMessage) {
	m.appenddates_found = append(m.appenddates_found, jm...)
}

// AppendedDatesFound returns the list of values that were appended to the "dates_found" field in this mutation.
func (m *ExtractedDataMutation) AppendedDatesFound() (json.RawMessage, bool) {
	if len(m.appenddates_found) == 0 {
		return nil, false
	}
	return m.appenddates_found, true
}

// ClearDatesFound clears the value of the "dates_found" field.
func (m *ExtractedDataMutation) ClearDatesFound() {
	m.dates_found = nil
	m.appenddates_found = nil
	m.clearedFields[extracteddata.FieldDatesFound] = struct{}{}
}

// DatesFoundCleared returns if the "dates_found" field was cleared in this mutation.
func (m *ExtractedDataMutation) DatesFoundCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldDatesFound]
	return ok
}

// ResetDatesFound resets all changes to the "dates_found" field.
func (m *ExtractedDataMutation) ResetDatesFound() {
	m.dates_found = nil
	m.appenddates_found = nil
	delete(m.clearedFields, extracteddata.FieldDatesFound)
}

// SetVendorName sets the "vendor_name" field.
func (m *ExtractedDataMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ExtractedDataMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *ExtractedDataMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[extracteddata.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *ExtractedDataMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ExtractedDataMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, extracteddata.FieldVendorName)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *ExtractedDataMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *ExtractedDataMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *ExtractedDataMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[extracteddata.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *ExtractedDataMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *ExtractedDataMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, extracteddata.FieldInvoiceNumber)
}

// SetReferenceNumber sets the "reference_number" field.
func (m *ExtractedDataMutation) SetReferenceNumber(s string) {
	m.reference_number = &s
}

// ReferenceNumber returns the value of the "reference_number" field in the mutation.
func (m *ExtractedDataMutation) ReferenceNumber() (r string, exists bool) {
	v := m.reference_number
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceNumber returns the old "reference_number" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldReferenceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceNumber: %w", err)
	}
	return oldValue.ReferenceNumber, nil
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (m *ExtractedDataMutation) ClearReferenceNumber() {
	m.reference_number = nil
	m.clearedFields[extracteddata.FieldReferenceNumber] = struct{}{}
}

// ReferenceNumberCleared returns if the "reference_number" field was cleared in this mutation.
func (m *ExtractedDataMutation) ReferenceNumberCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldReferenceNumber]
	return ok
}

// ResetReferenceNumber resets all changes to the "reference_number" field.
func (m *ExtractedDataMutation) ResetReferenceNumber() {
	m.reference_number = nil
	delete(m.clearedFields, extracteddata.FieldReferenceNumber)
}

// SetTransactionType sets the "transaction_type" field.
func (m *ExtractedDataMutation) SetTransactionType(s string) {
	m.transaction_type = &s
}

// TransactionType returns the value of the "transaction_type" field in the mutation.
func (m *ExtractedDataMutation) TransactionType() (r string, exists bool) {
	v := m.transaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionType returns the old "transaction_type" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldTransactionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionType: %w", err)
	}
	return oldValue.TransactionType, nil
}

// ResetTransactionType resets all changes to the "transaction_type" field.
func (m *ExtractedDataMutation) ResetTransactionType() {
	m.transaction_type = nil
}

// SetCategory sets the "category" field.
func (m *ExtractedDataMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractedDataMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractedDataMutation) ResetCategory() {
	m.category = nil
}

// SetTaxAmount sets the "tax_amount" field.
func (m *ExtractedDataMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *ExtractedDataMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *ExtractedDataMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *ExtractedDataMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *ExtractedDataMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[extracteddata.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *ExtractedDataMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *ExtractedDataMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, extracteddata.FieldTaxAmount)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ExtractedDataMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ExtractedDataMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldPaymentMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ExtractedDataMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractedDataMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractedDataMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractedDataMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractedDataMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractedDataMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *ExtractedDataMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *ExtractedDataMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *ExtractedDataMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (m *ExtractedDataMutation) SetPatternSetVersion(s string) {
	m.pattern_set_version = &s
}

// PatternSetVersion returns the value of the "pattern_set_version" field in the mutation.
func (m *ExtractedDataMutation) PatternSetVersion() (r string, exists bool) {
	v := m.pattern_set_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternSetVersion returns the old "pattern_set_version" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldPatternSetVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternSetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternSetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternSetVersion: %w", err)
	}
	return oldValue.PatternSetVersion, nil
}

// ResetPatternSetVersion resets all changes to the "pattern_set_version" field.
func (m *ExtractedDataMutation) ResetPatternSetVersion() {
	m.pattern_set_version = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractedDataMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractedDataMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractedDataMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *ExtractedDataMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *ExtractedDataMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *ExtractedDataMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractedDataMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extracteddata.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractedDataMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractedDataMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractedDataMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractedDataMutation builder.
func (m *ExtractedDataMutation) Where(ps ...predicate.ExtractedData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedData).
func (m *ExtractedDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedDataMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.document != nil {
		fields = append(fields, extracteddata.FieldDocumentID)
	}
	if m.company_id != nil {
		fields = append(fields, extracteddata.FieldCompanyID)
	}
	if m.amounts != nil {
		fields = append(fields, extracteddata.FieldAmounts)
	}
	if m.transaction_date != nil {
		fields = append(fields, extracteddata.FieldTransactionDate)
	}
	if m.dates_found != nil {
		fields = append(fields, extracteddata.FieldDatesFound)
	}
	if m.vendor_name != nil {
		fields = append(fields, extracteddata.FieldVendorName)
	}
	if m.invoice_number != nil {
		fields = append(fields, extracteddata.FieldInvoiceNumber)
	}
	if m.reference_number != nil {
		fields = append(fields, extracteddata.FieldReferenceNumber)
	}
	if m.transaction_type != nil {
		fields = append(fields, extracteddata.FieldTransactionType)
	}
	if m.category != nil {
		fields = append(fields, extracteddata.FieldCategory)
	}
	if m.tax_amount != nil {
		fields = append(fields, extracteddata.FieldTaxAmount)
	}
	if m.payment_method != nil {
		fields = append(fields, extracteddata.FieldPaymentMethod)
	}
	if m.confidence_score != nil {
		fields = append(fields, extracteddata.FieldConfidenceScore)
	}
	if m.extraction_method != nil {
		fields = append(fields, extracteddata.FieldExtractionMethod)
	}
	if m.pattern_set_version != nil {
		fields = append(fields, extracteddata.FieldPatternSetVersion)
	}
	if m.needs_review != nil {
		fields = append(fields, extracteddata.FieldNeedsReview)
	}
	if m.extracted_at != nil {
		fields = append(fields, extracteddata.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracteddata.FieldDocumentID:
		return m.DocumentID()
	case extracteddata.FieldCompanyID:
		return m.CompanyID()
	case extracteddata.FieldAmounts:
		return m.Amounts()
	case extracteddata.FieldTransactionDate:
		return m.TransactionDate()
	case extracteddata.FieldDatesFound:
		return m.DatesFound()
	case extracteddata.FieldVendorName:
		return m.VendorName()
	case extracteddata.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case extracteddata.FieldReferenceNumber:
		return m.ReferenceNumber()
	case extracteddata.FieldTransactionType:
		return m.TransactionType()
	case extracteddata.FieldCategory:
		return m.Category()
	case extracteddata.FieldTaxAmount:
		return m.TaxAmount()
	case extracteddata.FieldPaymentMethod:
		return m.PaymentMethod()
	case extracteddata.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extracteddata.FieldExtractionMethod:
		return m.ExtractionMethod()
	case extracteddata.FieldPatternSetVersion:
		return m.PatternSetVersion()
	case extracteddata.FieldNeedsReview:
		return m.NeedsReview()
	case extracteddata.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracteddata.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extracteddata.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case extracteddata.FieldAmounts:
		return m.OldAmounts(ctx)
	case extracteddata.FieldTransactionDate:
		return m.OldTransactionDate(ctx)
	case extracteddata.FieldDatesFound:
		return m.OldDatesFound(ctx)
	case extracteddata.FieldVendorName:
		return m.OldVendorName(ctx)
	case extracteddata.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case extracteddata.FieldReferenceNumber:
		return m.OldReferenceNumber(ctx)
	case extracteddata.FieldTransactionType:
		return m.OldTransactionType(ctx)
	case extracteddata.FieldCategory:
		return m.OldCategory(ctx)
	case extracteddata.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case extracteddata.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case extracteddata.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extracteddata.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case extracteddata.FieldPatternSetVersion:
		return m.OldPatternSetVersion(ctx)
	case extracteddata.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extracteddata.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracteddata.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extracteddata.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case extracteddata.FieldAmounts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmounts(v)
		return nil
	case extracteddata.FieldTransactionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionDate(v)
		return nil
	case extracteddata.FieldDatesFound:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatesFound(v)
		return nil
	case extracteddata.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case extracteddata.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case extracteddata.FieldReferenceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceNumber(v)
		return nil
	case extracteddata.FieldTransactionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionType(v)
		return nil
	case extracteddata.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extracteddata.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case extracteddata.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case extracteddata.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extracteddata.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case extracteddata.FieldPatternSetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternSetVersion(v)
		return nil
	case extracteddata.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extracteddata.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedDataMutation) AddedFields() []string {
	var fields []string
	if m.addtax_amount != nil {
		fields = append(fields, extracteddata.FieldTaxAmount)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, extracteddata.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracteddata.FieldTaxAmount:
		return m.AddedTaxAmount()
	case extracteddata.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracteddata.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case extracteddata.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedDataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracteddata.FieldAmounts) {
		fields = append(fields, extracteddata.FieldAmounts)
	}
	if m.FieldCleared(extracteddata.FieldTransactionDate) {
		fields = append(fields, extracteddata.FieldTransactionDate)
	}
	if m.FieldCleared(extracteddata.FieldDatesFound) {
		fields = append(fields, extracteddata.FieldDatesFound)
	}
	if m.FieldCleared(extracteddata.FieldVendorName) {
		fields = append(fields, extracteddata.FieldVendorName)
	}
	if m.FieldCleared(extracteddata.FieldInvoiceNumber) {
		fields = append(fields, extracteddata.FieldInvoiceNumber)
	}
	if m.FieldCleared(extracteddata.FieldReferenceNumber) {
		fields = append(fields, extracteddata.FieldReferenceNumber)
	}
	if m.FieldCleared(extracteddata.FieldTaxAmount) {
		fields = append(fields, extracteddata.FieldTaxAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedDataMutation) ClearField(name string) error {
	switch name {
	case extracteddata.FieldAmounts:
		m.ClearAmounts()
		return nil
	case extracteddata.FieldTransactionDate:
		m.ClearTransactionDate()
		return nil
	case extracteddata.FieldDatesFound:
		m.ClearDatesFound()
		return nil
	case extracteddata.FieldVendorName:
		m.ClearVendorName()
		return nil
	case extracteddata.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case extracteddata.FieldReferenceNumber:
		m.ClearReferenceNumber()
		return nil
	case extracteddata.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedDataMutation) ResetField(name string) error {
	switch name {
	case extracteddata.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extracteddata.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case extracteddata.FieldAmounts:
		m.ResetAmounts()
		return nil
	case extracteddata.FieldTransactionDate:
		m.ResetTransactionDate()
		return nil
	case extracteddata.FieldDatesFound:
		m.ResetDatesFound()
		return nil
	case extracteddata.FieldVendorName:
		m.ResetVendorName()
		return nil
	case extracteddata.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case extracteddata.FieldReferenceNumber:
		m.ResetReferenceNumber()
		return nil
	case extracteddata.FieldTransactionType:
		m.ResetTransactionType()
		return nil
	case extracteddata.FieldCategory:
		m.ResetCategory()
		return nil
	case extracteddata.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case extracteddata.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case extracteddata.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extracteddata.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case extracteddata.FieldPatternSetVersion:
		m.ResetPatternSetVersion()
		return nil
	case extracteddata.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extracteddata.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extracteddata.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extracteddata.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extracteddata.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedDataMutation) EdgeCleared(name string) bool {
	switch name {
	case extracteddata.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedDataMutation) ClearEdge(name string) error {
	switch name {
	case extracteddata.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedDataMutation) ResetEdge(name string) error {
	switch name {
	case extracteddata.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData edge %s", name)
}
