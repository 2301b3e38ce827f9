// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biasharaledger/docextract/gen/ent/company"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/biasharaledger/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *DocumentUpdate) SetCompanyID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCompanyID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DocumentUpdate) SetRawText(v string) *DocumentUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRawText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *DocumentUpdate) SetSourceFormat(v string) *DocumentUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_u *DocumentUpdate) SetPatternSetVersion(v string) *DocumentUpdate {
	_u.mutation.SetPatternSetVersion(v)
	return _u
}

// SetNillablePatternSetVersion sets the "pattern_set_version" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePatternSetVersion(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPatternSetVersion(*v)
	}
	return _u
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (_u *DocumentUpdate) ClearPatternSetVersion() *DocumentUpdate {
	_u.mutation.ClearPatternSetVersion()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *DocumentUpdate) SetAttemptCount(v int) *DocumentUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAttemptCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *DocumentUpdate) AddAttemptCount(v int) *DocumentUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastErrorKind sets the "last_error_kind" field.
func (_u *DocumentUpdate) SetLastErrorKind(v string) *DocumentUpdate {
	_u.mutation.SetLastErrorKind(v)
	return _u
}

// SetNillableLastErrorKind sets the "last_error_kind" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLastErrorKind(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLastErrorKind(*v)
	}
	return _u
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (_u *DocumentUpdate) ClearLastErrorKind() *DocumentUpdate {
	_u.mutation.ClearLastErrorKind()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *DocumentUpdate) SetLastErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLastErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *DocumentUpdate) ClearLastErrorMessage() *DocumentUpdate {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdate) ClearProcessedAt() *DocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *DocumentUpdate) SetCompany(v *Company) *DocumentUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractedData entity by ID.
func (_u *DocumentUpdate) SetExtractionID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractedData entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the ExtractedData entity.
func (_u *DocumentUpdate) SetExtraction(v *ExtractedData) *DocumentUpdate {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *DocumentUpdate) ClearCompany() *DocumentUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearExtraction clears the "extraction" edge to the ExtractedData entity.
func (_u *DocumentUpdate) ClearExtraction() *DocumentUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := document.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Document.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.company"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(document.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternSetVersion(); ok {
		_spec.SetField(document.FieldPatternSetVersion, field.TypeString, value)
	}
	if _u.mutation.PatternSetVersionCleared() {
		_spec.ClearField(document.FieldPatternSetVersion, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(document.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(document.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorKind(); ok {
		_spec.SetField(document.FieldLastErrorKind, field.TypeString, value)
	}
	if _u.mutation.LastErrorKindCleared() {
		_spec.ClearField(document.FieldLastErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(document.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(document.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *DocumentUpdateOne) SetCompanyID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCompanyID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DocumentUpdateOne) SetRawText(v string) *DocumentUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRawText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *DocumentUpdateOne) SetSourceFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_u *DocumentUpdateOne) SetPatternSetVersion(v string) *DocumentUpdateOne {
	_u.mutation.SetPatternSetVersion(v)
	return _u
}

// SetNillablePatternSetVersion sets the "pattern_set_version" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePatternSetVersion(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPatternSetVersion(*v)
	}
	return _u
}

// ClearPatternSetVersion clears the value of the "pattern_set_version" field.
func (_u *DocumentUpdateOne) ClearPatternSetVersion() *DocumentUpdateOne {
	_u.mutation.ClearPatternSetVersion()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *DocumentUpdateOne) SetAttemptCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAttemptCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *DocumentUpdateOne) AddAttemptCount(v int) *DocumentUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastErrorKind sets the "last_error_kind" field.
func (_u *DocumentUpdateOne) SetLastErrorKind(v string) *DocumentUpdateOne {
	_u.mutation.SetLastErrorKind(v)
	return _u
}

// SetNillableLastErrorKind sets the "last_error_kind" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLastErrorKind(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLastErrorKind(*v)
	}
	return _u
}

// ClearLastErrorKind clears the value of the "last_error_kind" field.
func (_u *DocumentUpdateOne) ClearLastErrorKind() *DocumentUpdateOne {
	_u.mutation.ClearLastErrorKind()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *DocumentUpdateOne) SetLastErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLastErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *DocumentUpdateOne) ClearLastErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdateOne) ClearProcessedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *DocumentUpdateOne) SetCompany(v *Company) *DocumentUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractedData entity by ID.
func (_u *DocumentUpdateOne) SetExtractionID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractedData entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the ExtractedData entity.
func (_u *DocumentUpdateOne) SetExtraction(v *ExtractedData) *DocumentUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *DocumentUpdateOne) ClearCompany() *DocumentUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearExtraction clears the "extraction" edge to the ExtractedData entity.
func (_u *DocumentUpdateOne) ClearExtraction() *DocumentUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := document.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Document.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.company"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(document.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternSetVersion(); ok {
		_spec.SetField(document.FieldPatternSetVersion, field.TypeString, value)
	}
	if _u.mutation.PatternSetVersionCleared() {
		_spec.ClearField(document.FieldPatternSetVersion, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(document.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(document.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorKind(); ok {
		_spec.SetField(document.FieldLastErrorKind, field.TypeString, value)
	}
	if _u.mutation.LastErrorKindCleared() {
		_spec.ClearField(document.FieldLastErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(document.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(document.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
