// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biasharaledger/docextract/gen/ent/company"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyID sets the "company_id" field.
func (_c *DocumentCreate) SetCompanyID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *DocumentCreate) SetRawText(v string) *DocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetSourceFormat sets the "source_format" field.
func (_c *DocumentCreate) SetSourceFormat(v string) *DocumentCreate {
	_c.mutation.SetSourceFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v string) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_c *DocumentCreate) SetPatternSetVersion(v string) *DocumentCreate {
	_c.mutation.SetPatternSetVersion(v)
	return _c
}

// SetNillablePatternSetVersion sets the "pattern_set_version" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePatternSetVersion(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPatternSetVersion(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *DocumentCreate) SetAttemptCount(v int) *DocumentCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAttemptCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetLastErrorKind sets the "last_error_kind" field.
func (_c *DocumentCreate) SetLastErrorKind(v string) *DocumentCreate {
	_c.mutation.SetLastErrorKind(v)
	return _c
}

// SetNillableLastErrorKind sets the "last_error_kind" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLastErrorKind(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLastErrorKind(*v)
	}
	return _c
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_c *DocumentCreate) SetLastErrorMessage(v string) *DocumentCreate {
	_c.mutation.SetLastErrorMessage(v)
	return _c
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLastErrorMessage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLastErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DocumentCreate) SetProcessedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *DocumentCreate) SetCompany(v *Company) *DocumentCreate {
	return _c.SetCompanyID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractedData entity by ID.
func (_c *DocumentCreate) SetExtractionID(id uuid.UUID) *DocumentCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractedData entity by ID if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractionID(id *uuid.UUID) *DocumentCreate {
	if id != nil {
		_c = _c.SetExtractionID(*id)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the ExtractedData entity.
func (_c *DocumentCreate) SetExtraction(v *ExtractedData) *DocumentCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := document.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Document.company_id"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Document.raw_text"`)}
	}
	if _, ok := _c.mutation.SourceFormat(); !ok {
		return &ValidationError{Name: "source_format", err: errors.New(`ent: missing required field "Document.source_format"`)}
	}
	if v, ok := _c.mutation.SourceFormat(); ok {
		if err := document.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Document.source_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Document.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Document.company"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.SourceFormat(); ok {
		_spec.SetField(document.FieldSourceFormat, field.TypeString, value)
		_node.SourceFormat = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PatternSetVersion(); ok {
		_spec.SetField(document.FieldPatternSetVersion, field.TypeString, value)
		_node.PatternSetVersion = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(document.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.LastErrorKind(); ok {
		_spec.SetField(document.FieldLastErrorKind, field.TypeString, value)
		_node.LastErrorKind = &value
	}
	if value, ok := _c.mutation.LastErrorMessage(); ok {
		_spec.SetField(document.FieldLastErrorMessage, field.TypeString, value)
		_node.LastErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.ExtractionTable,
			Columns: []string{document.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetCompanyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompanyID sets the "company_id" field.
func (u *DocumentUpsert) SetCompanyID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCompanyID() *DocumentUpsert {
	u.SetExcluded(document.FieldCompanyID)
	return u
}

// SetRawText sets the "raw_text" field.
func (u *DocumentUpsert) SetRawText(v string) *DocumentUpsert {
	u.Set(document.FieldRawText, v)
	return u
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateRawText() *DocumentUpsert {
	u.SetExcluded(document.FieldRawText)
	return u
}

// SetSourceFormat sets the "source_format" field.
func (u *DocumentUpsert) SetSourceFormat(v string) *DocumentUpsert {
	u.Set(document.FieldSourceFormat, v)
	return u
}

// UpdateSourceFormat sets the "source_format" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSourceFormat() *DocumentUpsert {
	u.SetExcluded(document.FieldSourceFormat)
	return u
}

// SetStatus sets the "status" field.
func (u *DocumentUpsert) SetStatus(v string) *DocumentUpsert {
	u.Set(document.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldStatus)
	return u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *DocumentUpsert) SetPatternSetVersion(v string) *DocumentUpsert {
	u.Set(document.FieldPatternSetVersion, v)
	return u
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePatternSetVersion() *DocumentUpsert {
	u.SetExcluded(document.FieldPatternSetVersion)
	return u
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (u *DocumentUpsert) ClearPatternSetVersion() *DocumentUpsert {
	u.SetNull(document.FieldPatternSetVersion)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *DocumentUpsert) SetAttemptCount(v int) *DocumentUpsert {
	u.Set(document.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAttemptCount() *DocumentUpsert {
	u.SetExcluded(document.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *DocumentUpsert) AddAttemptCount(v int) *DocumentUpsert {
	u.Add(document.FieldAttemptCount, v)
	return u
}

// SetLastErrorKind sets the "last_error_kind" field.
func (u *DocumentUpsert) SetLastErrorKind(v string) *DocumentUpsert {
	u.Set(document.FieldLastErrorKind, v)
	return u
}

// UpdateLastErrorKind sets the "last_error_kind" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLastErrorKind() *DocumentUpsert {
	u.SetExcluded(document.FieldLastErrorKind)
	return u
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (u *DocumentUpsert) ClearLastErrorKind() *DocumentUpsert {
	u.SetNull(document.FieldLastErrorKind)
	return u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *DocumentUpsert) SetLastErrorMessage(v string) *DocumentUpsert {
	u.Set(document.FieldLastErrorMessage, v)
	return u
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLastErrorMessage() *DocumentUpsert {
	u.SetExcluded(document.FieldLastErrorMessage)
	return u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *DocumentUpsert) ClearLastErrorMessage() *DocumentUpsert {
	u.SetNull(document.FieldLastErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsert) SetCreatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCreatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldCreatedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsert) SetProcessedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateProcessedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsert) ClearProcessedAt() *DocumentUpsert {
	u.SetNull(document.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *DocumentUpsertOne) SetCompanyID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCompanyID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCompanyID()
	})
}

// SetRawText sets the "raw_text" field.
func (u *DocumentUpsertOne) SetRawText(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateRawText() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateRawText()
	})
}

// SetSourceFormat sets the "source_format" field.
func (u *DocumentUpsertOne) SetSourceFormat(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceFormat(v)
	})
}

// UpdateSourceFormat sets the "source_format" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSourceFormat() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceFormat()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertOne) SetStatus(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *DocumentUpsertOne) SetPatternSetVersion(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPatternSetVersion(v)
	})
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePatternSetVersion() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePatternSetVersion()
	})
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (u *DocumentUpsertOne) ClearPatternSetVersion() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPatternSetVersion()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *DocumentUpsertOne) SetAttemptCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *DocumentUpsertOne) AddAttemptCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAttemptCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetLastErrorKind sets the "last_error_kind" field.
func (u *DocumentUpsertOne) SetLastErrorKind(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastErrorKind(v)
	})
}

// UpdateLastErrorKind sets the "last_error_kind" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLastErrorKind() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastErrorKind()
	})
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (u *DocumentUpsertOne) ClearLastErrorKind() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastErrorKind()
	})
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *DocumentUpsertOne) SetLastErrorMessage(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastErrorMessage(v)
	})
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLastErrorMessage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastErrorMessage()
	})
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *DocumentUpsertOne) ClearLastErrorMessage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertOne) SetCreatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCreatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsertOne) SetProcessedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateProcessedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsertOne) ClearProcessedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetCompanyID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *DocumentUpsertBulk) SetCompanyID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCompanyID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCompanyID()
	})
}

// SetRawText sets the "raw_text" field.
func (u *DocumentUpsertBulk) SetRawText(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateRawText() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateRawText()
	})
}

// SetSourceFormat sets the "source_format" field.
func (u *DocumentUpsertBulk) SetSourceFormat(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceFormat(v)
	})
}

// UpdateSourceFormat sets the "source_format" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSourceFormat() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceFormat()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertBulk) SetStatus(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *DocumentUpsertBulk) SetPatternSetVersion(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPatternSetVersion(v)
	})
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePatternSetVersion() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePatternSetVersion()
	})
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (u *DocumentUpsertBulk) ClearPatternSetVersion() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPatternSetVersion()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *DocumentUpsertBulk) SetAttemptCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *DocumentUpsertBulk) AddAttemptCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAttemptCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetLastErrorKind sets the "last_error_kind" field.
func (u *DocumentUpsertBulk) SetLastErrorKind(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastErrorKind(v)
	})
}

// UpdateLastErrorKind sets the "last_error_kind" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLastErrorKind() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastErrorKind()
	})
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (u *DocumentUpsertBulk) ClearLastErrorKind() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastErrorKind()
	})
}

// SetLastErrorMessage sets the "last_error_message" field.
func (u *DocumentUpsertBulk) SetLastErrorMessage(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastErrorMessage(v)
	})
}

// UpdateLastErrorMessage sets the "last_error_message" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLastErrorMessage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastErrorMessage()
	})
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (u *DocumentUpsertBulk) ClearLastErrorMessage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertBulk) SetCreatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCreatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsertBulk) SetProcessedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateProcessedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsertBulk) ClearProcessedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
