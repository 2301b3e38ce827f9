// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/biasharaledger/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractedDataUpdate is the builder for updating ExtractedData entities.
type ExtractedDataUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedDataMutation
}

// Where appends a list predicates to the ExtractedDataUpdate builder.
func (_u *ExtractedDataUpdate) Where(ps ...predicate.ExtractedData) *ExtractedDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDataUpdate) SetDocumentID(v uuid.UUID) *ExtractedDataUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractedDataUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractedDataUpdate) SetCompanyID(v uuid.UUID) *ExtractedDataUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableCompanyID(v *uuid.UUID) *ExtractedDataUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetAmounts sets the "amounts" field.
func (_u *ExtractedDataUpdate) SetAmounts(v json.RawMessage) *ExtractedDataUpdate {
	_u.mutation.SetAmounts(v)
	return _u
}

// AppendAmounts appends value to the "amounts" field.
func (_u *ExtractedDataUpdate) AppendAmounts(v json.RawMessage) *ExtractedDataUpdate {
	_u.mutation.AppendAmounts(v)
	return _u
}

// ClearAmounts clears the value of the "amounts" field.
func (_u *ExtractedDataUpdate) ClearAmounts() *ExtractedDataUpdate {
	_u.mutation.ClearAmounts()
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *ExtractedDataUpdate) SetTransactionDate(v time.Time) *ExtractedDataUpdate {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableTransactionDate(v *time.Time) *ExtractedDataUpdate {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (_u *ExtractedDataUpdate) ClearTransactionDate() *ExtractedDataUpdate {
	_u.mutation.ClearTransactionDate()
	return _u
}

// SetDatesFound sets the "dates_found" field.
func (_u *ExtractedDataUpdate) SetDatesFound(v json.RawMessage) *ExtractedDataUpdate {
	_u.mutation.SetDatesFound(v)
	return _u
}

// AppendDatesFound appends value to the "dates_found" field.
func (_u *ExtractedDataUpdate) AppendDatesFound(v json.RawMessage) *ExtractedDataUpdate {
	_u.mutation.AppendDatesFound(v)
	return _u
}

// ClearDatesFound clears the value of the "dates_found" field.
func (_u *ExtractedDataUpdate) ClearDatesFound() *ExtractedDataUpdate {
	_u.mutation.ClearDatesFound()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ExtractedDataUpdate) SetVendorName(v string) *ExtractedDataUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableVendorName(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ExtractedDataUpdate) ClearVendorName() *ExtractedDataUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ExtractedDataUpdate) SetInvoiceNumber(v string) *ExtractedDataUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableInvoiceNumber(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ExtractedDataUpdate) ClearInvoiceNumber() *ExtractedDataUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetReferenceNumber sets the "reference_number" field.
func (_u *ExtractedDataUpdate) SetReferenceNumber(v string) *ExtractedDataUpdate {
	_u.mutation.SetReferenceNumber(v)
	return _u
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableReferenceNumber(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetReferenceNumber(*v)
	}
	return _u
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (_u *ExtractedDataUpdate) ClearReferenceNumber() *ExtractedDataUpdate {
	_u.mutation.ClearReferenceNumber()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *ExtractedDataUpdate) SetTransactionType(v string) *ExtractedDataUpdate {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableTransactionType(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedDataUpdate) SetCategory(v string) *ExtractedDataUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableCategory(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ExtractedDataUpdate) SetTaxAmount(v float64) *ExtractedDataUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableTaxAmount(v *float64) *ExtractedDataUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ExtractedDataUpdate) AddTaxAmount(v float64) *ExtractedDataUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ExtractedDataUpdate) ClearTaxAmount() *ExtractedDataUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ExtractedDataUpdate) SetPaymentMethod(v string) *ExtractedDataUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillablePaymentMethod(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedDataUpdate) SetConfidenceScore(v float64) *ExtractedDataUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableConfidenceScore(v *float64) *ExtractedDataUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedDataUpdate) AddConfidenceScore(v float64) *ExtractedDataUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractedDataUpdate) SetExtractionMethod(v string) *ExtractedDataUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableExtractionMethod(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_u *ExtractedDataUpdate) SetPatternSetVersion(v string) *ExtractedDataUpdate {
	_u.mutation.SetPatternSetVersion(v)
	return _u
}

// SetNillablePatternSetVersion sets the "pattern_set_version" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillablePatternSetVersion(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetPatternSetVersion(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractedDataUpdate) SetNeedsReview(v bool) *ExtractedDataUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableNeedsReview(v *bool) *ExtractedDataUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedDataUpdate) SetExtractedAt(v time.Time) *ExtractedDataUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableExtractedAt(v *time.Time) *ExtractedDataUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedDataUpdate) SetDocument(v *Document) *ExtractedDataUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_u *ExtractedDataUpdate) Mutation() *ExtractedDataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedDataUpdate) ClearDocument() *ExtractedDataUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedDataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDataUpdate) check() error {
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := extracteddata.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.transaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := extracteddata.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := extracteddata.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.extraction_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternSetVersion(); ok {
		if err := extracteddata.PatternSetVersionValidator(v); err != nil {
			return &ValidationError{Name: "pattern_set_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.pattern_set_version": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedData.document"`)
	}
	return nil
}

func (_u *ExtractedDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddata.Table, extracteddata.Columns, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(extracteddata.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amounts(); ok {
		_spec.SetField(extracteddata.FieldAmounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAmounts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extracteddata.FieldAmounts, value)
		})
	}
	if _u.mutation.AmountsCleared() {
		_spec.ClearField(extracteddata.FieldAmounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(extracteddata.FieldTransactionDate, field.TypeTime, value)
	}
	if _u.mutation.TransactionDateCleared() {
		_spec.ClearField(extracteddata.FieldTransactionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DatesFound(); ok {
		_spec.SetField(extracteddata.FieldDatesFound, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDatesFound(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extracteddata.FieldDatesFound, value)
		})
	}
	if _u.mutation.DatesFoundCleared() {
		_spec.ClearField(extracteddata.FieldDatesFound, field.TypeJSON)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(extracteddata.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(extracteddata.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(extracteddata.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(extracteddata.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceNumber(); ok {
		_spec.SetField(extracteddata.FieldReferenceNumber, field.TypeString, value)
	}
	if _u.mutation.ReferenceNumberCleared() {
		_spec.ClearField(extracteddata.FieldReferenceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(extracteddata.FieldTransactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extracteddata.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(extracteddata.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(extracteddata.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(extracteddata.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(extracteddata.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extracteddata.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extracteddata.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extracteddata.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternSetVersion(); ok {
		_spec.SetField(extracteddata.FieldPatternSetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extracteddata.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extracteddata.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedDataUpdateOne is the builder for updating a single ExtractedData entity.
type ExtractedDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedDataMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDataUpdateOne) SetDocumentID(v uuid.UUID) *ExtractedDataUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractedDataUpdateOne) SetCompanyID(v uuid.UUID) *ExtractedDataUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableCompanyID(v *uuid.UUID) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetAmounts sets the "amounts" field.
func (_u *ExtractedDataUpdateOne) SetAmounts(v json.RawMessage) *ExtractedDataUpdateOne {
	_u.mutation.SetAmounts(v)
	return _u
}

// AppendAmounts appends value to the "amounts" field.
func (_u *ExtractedDataUpdateOne) AppendAmounts(v json.RawMessage) *ExtractedDataUpdateOne {
	_u.mutation.AppendAmounts(v)
	return _u
}

// ClearAmounts clears the value of the "amounts" field.
func (_u *ExtractedDataUpdateOne) ClearAmounts() *ExtractedDataUpdateOne {
	_u.mutation.ClearAmounts()
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *ExtractedDataUpdateOne) SetTransactionDate(v time.Time) *ExtractedDataUpdateOne {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableTransactionDate(v *time.Time) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (_u *ExtractedDataUpdateOne) ClearTransactionDate() *ExtractedDataUpdateOne {
	_u.mutation.ClearTransactionDate()
	return _u
}

// SetDatesFound sets the "dates_found" field.
func (_u *ExtractedDataUpdateOne) SetDatesFound(v json.RawMessage) *ExtractedDataUpdateOne {
	_u.mutation.SetDatesFound(v)
	return _u
}

// AppendDatesFound appends value to the "dates_found" field.
func (_u *ExtractedDataUpdateOne) AppendDatesFound(v json.RawMessage) *ExtractedDataUpdateOne {
	_u.mutation.AppendDatesFound(v)
	return _u
}

// ClearDatesFound clears the value of the "dates_found" field.
func (_u *ExtractedDataUpdateOne) ClearDatesFound() *ExtractedDataUpdateOne {
	_u.mutation.ClearDatesFound()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ExtractedDataUpdateOne) SetVendorName(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableVendorName(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ExtractedDataUpdateOne) ClearVendorName() *ExtractedDataUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ExtractedDataUpdateOne) SetInvoiceNumber(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableInvoiceNumber(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ExtractedDataUpdateOne) ClearInvoiceNumber() *ExtractedDataUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetReferenceNumber sets the "reference_number" field.
func (_u *ExtractedDataUpdateOne) SetReferenceNumber(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetReferenceNumber(v)
	return _u
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableReferenceNumber(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetReferenceNumber(*v)
	}
	return _u
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (_u *ExtractedDataUpdateOne) ClearReferenceNumber() *ExtractedDataUpdateOne {
	_u.mutation.ClearReferenceNumber()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *ExtractedDataUpdateOne) SetTransactionType(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableTransactionType(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedDataUpdateOne) SetCategory(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableCategory(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ExtractedDataUpdateOne) SetTaxAmount(v float64) *ExtractedDataUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableTaxAmount(v *float64) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ExtractedDataUpdateOne) AddTaxAmount(v float64) *ExtractedDataUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ExtractedDataUpdateOne) ClearTaxAmount() *ExtractedDataUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ExtractedDataUpdateOne) SetPaymentMethod(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillablePaymentMethod(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedDataUpdateOne) SetConfidenceScore(v float64) *ExtractedDataUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableConfidenceScore(v *float64) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedDataUpdateOne) AddConfidenceScore(v float64) *ExtractedDataUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ExtractedDataUpdateOne) SetExtractionMethod(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableExtractionMethod(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_u *ExtractedDataUpdateOne) SetPatternSetVersion(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetPatternSetVersion(v)
	return _u
}

// SetNillablePatternSetVersion sets the "pattern_set_version" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillablePatternSetVersion(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetPatternSetVersion(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractedDataUpdateOne) SetNeedsReview(v bool) *ExtractedDataUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableNeedsReview(v *bool) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedDataUpdateOne) SetExtractedAt(v time.Time) *ExtractedDataUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableExtractedAt(v *time.Time) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedDataUpdateOne) SetDocument(v *Document) *ExtractedDataUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_u *ExtractedDataUpdateOne) Mutation() *ExtractedDataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedDataUpdateOne) ClearDocument() *ExtractedDataUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractedDataUpdate builder.
func (_u *ExtractedDataUpdateOne) Where(ps ...predicate.ExtractedData) *ExtractedDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedDataUpdateOne) Select(field string, fields ...string) *ExtractedDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedData entity.
func (_u *ExtractedDataUpdateOne) Save(ctx context.Context) (*ExtractedData, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDataUpdateOne) SaveX(ctx context.Context) *ExtractedData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDataUpdateOne) check() error {
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := extracteddata.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.transaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := extracteddata.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := extracteddata.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.extraction_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternSetVersion(); ok {
		if err := extracteddata.PatternSetVersionValidator(v); err != nil {
			return &ValidationError{Name: "pattern_set_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.pattern_set_version": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedData.document"`)
	}
	return nil
}

func (_u *ExtractedDataUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddata.Table, extracteddata.Columns, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracteddata.FieldID)
		for _, f := range fields {
			if !extracteddata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracteddata.FieldID {
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
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(extracteddata.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amounts(); ok {
		_spec.SetField(extracteddata.FieldAmounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAmounts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extracteddata.FieldAmounts, value)
		})
	}
	if _u.mutation.AmountsCleared() {
		_spec.ClearField(extracteddata.FieldAmounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(extracteddata.FieldTransactionDate, field.TypeTime, value)
	}
	if _u.mutation.TransactionDateCleared() {
		_spec.ClearField(extracteddata.FieldTransactionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DatesFound(); ok {
		_spec.SetField(extracteddata.FieldDatesFound, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDatesFound(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extracteddata.FieldDatesFound, value)
		})
	}
	if _u.mutation.DatesFoundCleared() {
		_spec.ClearField(extracteddata.FieldDatesFound, field.TypeJSON)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(extracteddata.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(extracteddata.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(extracteddata.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(extracteddata.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceNumber(); ok {
		_spec.SetField(extracteddata.FieldReferenceNumber, field.TypeString, value)
	}
	if _u.mutation.ReferenceNumberCleared() {
		_spec.ClearField(extracteddata.FieldReferenceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(extracteddata.FieldTransactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extracteddata.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(extracteddata.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(extracteddata.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(extracteddata.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(extracteddata.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extracteddata.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extracteddata.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(extracteddata.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternSetVersion(); ok {
		_spec.SetField(extracteddata.FieldPatternSetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extracteddata.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extracteddata.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
