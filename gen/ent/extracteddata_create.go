// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/google/uuid"
)

// ExtractedDataCreate is the builder for creating a ExtractedData entity.
type ExtractedDataCreate struct {
	config
	mutation *ExtractedDataMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedDataCreate) SetDocumentID(v uuid.UUID) *ExtractedDataCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ExtractedDataCreate) SetCompanyID(v uuid.UUID) *ExtractedDataCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetAmounts sets the "amounts" field.
func (_c *ExtractedDataCreate) SetAmounts(v json.RawMessage) *ExtractedDataCreate {
	_c.mutation.SetAmounts(v)
	return _c
}

// SetTransactionDate sets the "transaction_date" field.
func (_c *ExtractedDataCreate) SetTransactionDate(v time.Time) *ExtractedDataCreate {
	_c.mutation.SetTransactionDate(v)
	return _c
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableTransactionDate(v *time.Time) *ExtractedDataCreate {
	if v != nil {
		_c.SetTransactionDate(*v)
	}
	return _c
}

// SetDatesFound sets the "dates_found" field.
func (_c *ExtractedDataCreate) SetDatesFound(v json.RawMessage) *ExtractedDataCreate {
	_c.mutation.SetDatesFound(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ExtractedDataCreate) SetVendorName(v string) *ExtractedDataCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableVendorName(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *ExtractedDataCreate) SetInvoiceNumber(v string) *ExtractedDataCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableInvoiceNumber(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetReferenceNumber sets the "reference_number" field.
func (_c *ExtractedDataCreate) SetReferenceNumber(v string) *ExtractedDataCreate {
	_c.mutation.SetReferenceNumber(v)
	return _c
}

// SetNillableReferenceNumber sets the "reference_number" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableReferenceNumber(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetReferenceNumber(*v)
	}
	return _c
}

// SetTransactionType sets the "transaction_type" field.
func (_c *ExtractedDataCreate) SetTransactionType(v string) *ExtractedDataCreate {
	_c.mutation.SetTransactionType(v)
	return _c
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableTransactionType(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetTransactionType(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExtractedDataCreate) SetCategory(v string) *ExtractedDataCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableCategory(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *ExtractedDataCreate) SetTaxAmount(v float64) *ExtractedDataCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableTaxAmount(v *float64) *ExtractedDataCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ExtractedDataCreate) SetPaymentMethod(v string) *ExtractedDataCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillablePaymentMethod(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ExtractedDataCreate) SetConfidenceScore(v float64) *ExtractedDataCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *ExtractedDataCreate) SetExtractionMethod(v string) *ExtractedDataCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (_c *ExtractedDataCreate) SetPatternSetVersion(v string) *ExtractedDataCreate {
	_c.mutation.SetPatternSetVersion(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ExtractedDataCreate) SetNeedsReview(v bool) *ExtractedDataCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableNeedsReview(v *bool) *ExtractedDataCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *ExtractedDataCreate) SetExtractedAt(v time.Time) *ExtractedDataCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableExtractedAt(v *time.Time) *ExtractedDataCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedDataCreate) SetID(v uuid.UUID) *ExtractedDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractedDataCreate) SetDocument(v *Document) *ExtractedDataCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_c *ExtractedDataCreate) Mutation() *ExtractedDataMutation {
	return _c.mutation
}

// Save creates the ExtractedData in the database.
func (_c *ExtractedDataCreate) Save(ctx context.Context) (*ExtractedData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedDataCreate) SaveX(ctx context.Context) *ExtractedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedDataCreate) defaults() {
	if _, ok := _c.mutation.TransactionType(); !ok {
		v := extracteddata.DefaultTransactionType
		_c.mutation.SetTransactionType(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := extracteddata.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		v := extracteddata.DefaultPaymentMethod
		_c.mutation.SetPaymentMethod(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := extracteddata.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := extracteddata.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedDataCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedData.document_id"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "ExtractedData.company_id"`)}
	}
	if _, ok := _c.mutation.TransactionType(); !ok {
		return &ValidationError{Name: "transaction_type", err: errors.New(`ent: missing required field "ExtractedData.transaction_type"`)}
	}
	if v, ok := _c.mutation.TransactionType(); ok {
		if err := extracteddata.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.transaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExtractedData.category"`)}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "ExtractedData.payment_method"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "ExtractedData.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := extracteddata.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "ExtractedData.extraction_method"`)}
	}
	if v, ok := _c.mutation.ExtractionMethod(); ok {
		if err := extracteddata.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.extraction_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternSetVersion(); !ok {
		return &ValidationError{Name: "pattern_set_version", err: errors.New(`ent: missing required field "ExtractedData.pattern_set_version"`)}
	}
	if v, ok := _c.mutation.PatternSetVersion(); ok {
		if err := extracteddata.PatternSetVersionValidator(v); err != nil {
			return &ValidationError{Name: "pattern_set_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.pattern_set_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ExtractedData.needs_review"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "ExtractedData.extracted_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractedData.document"`)}
	}
	return nil
}

func (_c *ExtractedDataCreate) sqlSave(ctx context.Context) (*ExtractedData, error) {
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

func (_c *ExtractedDataCreate) createSpec() (*ExtractedData, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracteddata.Table, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(extracteddata.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Amounts(); ok {
		_spec.SetField(extracteddata.FieldAmounts, field.TypeJSON, value)
		_node.Amounts = value
	}
	if value, ok := _c.mutation.TransactionDate(); ok {
		_spec.SetField(extracteddata.FieldTransactionDate, field.TypeTime, value)
		_node.TransactionDate = &value
	}
	if value, ok := _c.mutation.DatesFound(); ok {
		_spec.SetField(extracteddata.FieldDatesFound, field.TypeJSON, value)
		_node.DatesFound = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(extracteddata.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(extracteddata.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.ReferenceNumber(); ok {
		_spec.SetField(extracteddata.FieldReferenceNumber, field.TypeString, value)
		_node.ReferenceNumber = &value
	}
	if value, ok := _c.mutation.TransactionType(); ok {
		_spec.SetField(extracteddata.FieldTransactionType, field.TypeString, value)
		_node.TransactionType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extracteddata.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(extracteddata.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(extracteddata.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(extracteddata.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(extracteddata.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.PatternSetVersion(); ok {
		_spec.SetField(extracteddata.FieldPatternSetVersion, field.TypeString, value)
		_node.PatternSetVersion = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(extracteddata.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(extracteddata.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedData.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedDataUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedDataCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedDataUpsertOne {
	_c.conflict = opts
	return &ExtractedDataUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedDataCreate) OnConflictColumns(columns ...string) *ExtractedDataUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedDataUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedDataUpsertOne is the builder for "upsert"-ing
	//  one ExtractedData node.
	ExtractedDataUpsertOne struct {
		create *ExtractedDataCreate
	}

	// ExtractedDataUpsert is the "OnConflict" setter.
	ExtractedDataUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *ExtractedDataUpsert) SetDocumentID(v uuid.UUID) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateDocumentID() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldDocumentID)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *ExtractedDataUpsert) SetCompanyID(v uuid.UUID) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateCompanyID() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldCompanyID)
	return u
}

// SetAmounts sets the "amounts" field.
func (u *ExtractedDataUpsert) SetAmounts(v json.RawMessage) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldAmounts, v)
	return u
}

// UpdateAmounts sets the "amounts" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateAmounts() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldAmounts)
	return u
}

// ClearAmounts clears the value of the "amounts" field.
func (u *ExtractedDataUpsert) ClearAmounts() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldAmounts)
	return u
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExtractedDataUpsert) SetTransactionDate(v time.Time) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldTransactionDate, v)
	return u
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateTransactionDate() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldTransactionDate)
	return u
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (u *ExtractedDataUpsert) ClearTransactionDate() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldTransactionDate)
	return u
}

// SetDatesFound sets the "dates_found" field.
func (u *ExtractedDataUpsert) SetDatesFound(v json.RawMessage) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldDatesFound, v)
	return u
}

// UpdateDatesFound sets the "dates_found" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateDatesFound() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldDatesFound)
	return u
}

// ClearDatesFound clears the value of the "dates_found" field.
func (u *ExtractedDataUpsert) ClearDatesFound() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldDatesFound)
	return u
}

// SetVendorName sets the "vendor_name" field.
func (u *ExtractedDataUpsert) SetVendorName(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldVendorName, v)
	return u
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateVendorName() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldVendorName)
	return u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *ExtractedDataUpsert) ClearVendorName() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldVendorName)
	return u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *ExtractedDataUpsert) SetInvoiceNumber(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldInvoiceNumber, v)
	return u
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateInvoiceNumber() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldInvoiceNumber)
	return u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *ExtractedDataUpsert) ClearInvoiceNumber() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldInvoiceNumber)
	return u
}

// SetReferenceNumber sets the "reference_number" field.
func (u *ExtractedDataUpsert) SetReferenceNumber(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldReferenceNumber, v)
	return u
}

// UpdateReferenceNumber sets the "reference_number" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateReferenceNumber() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldReferenceNumber)
	return u
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (u *ExtractedDataUpsert) ClearReferenceNumber() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldReferenceNumber)
	return u
}

// SetTransactionType sets the "transaction_type" field.
func (u *ExtractedDataUpsert) SetTransactionType(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldTransactionType, v)
	return u
}

// UpdateTransactionType sets the "transaction_type" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateTransactionType() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldTransactionType)
	return u
}

// SetCategory sets the "category" field.
func (u *ExtractedDataUpsert) SetCategory(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateCategory() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldCategory)
	return u
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ExtractedDataUpsert) SetTaxAmount(v float64) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldTaxAmount, v)
	return u
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateTaxAmount() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldTaxAmount)
	return u
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ExtractedDataUpsert) AddTaxAmount(v float64) *ExtractedDataUpsert {
	u.Add(extracteddata.FieldTaxAmount, v)
	return u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ExtractedDataUpsert) ClearTaxAmount() *ExtractedDataUpsert {
	u.SetNull(extracteddata.FieldTaxAmount)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *ExtractedDataUpsert) SetPaymentMethod(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdatePaymentMethod() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldPaymentMethod)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractedDataUpsert) SetConfidenceScore(v float64) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateConfidenceScore() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractedDataUpsert) AddConfidenceScore(v float64) *ExtractedDataUpsert {
	u.Add(extracteddata.FieldConfidenceScore, v)
	return u
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractedDataUpsert) SetExtractionMethod(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldExtractionMethod, v)
	return u
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateExtractionMethod() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldExtractionMethod)
	return u
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *ExtractedDataUpsert) SetPatternSetVersion(v string) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldPatternSetVersion, v)
	return u
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdatePatternSetVersion() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldPatternSetVersion)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *ExtractedDataUpsert) SetNeedsReview(v bool) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateNeedsReview() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldNeedsReview)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedDataUpsert) SetExtractedAt(v time.Time) *ExtractedDataUpsert {
	u.Set(extracteddata.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedDataUpsert) UpdateExtractedAt() *ExtractedDataUpsert {
	u.SetExcluded(extracteddata.FieldExtractedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extracteddata.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedDataUpsertOne) UpdateNewValues() *ExtractedDataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extracteddata.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedDataUpsertOne) Ignore() *ExtractedDataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedDataUpsertOne) DoNothing() *ExtractedDataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedDataCreate.OnConflict
// documentation for more info.
func (u *ExtractedDataUpsertOne) Update(set func(*ExtractedDataUpsert)) *ExtractedDataUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedDataUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractedDataUpsertOne) SetDocumentID(v uuid.UUID) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateDocumentID() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateDocumentID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *ExtractedDataUpsertOne) SetCompanyID(v uuid.UUID) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateCompanyID() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateCompanyID()
	})
}

// SetAmounts sets the "amounts" field.
func (u *ExtractedDataUpsertOne) SetAmounts(v json.RawMessage) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetAmounts(v)
	})
}

// UpdateAmounts sets the "amounts" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateAmounts() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateAmounts()
	})
}

// ClearAmounts clears the value of the "amounts" field.
func (u *ExtractedDataUpsertOne) ClearAmounts() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearAmounts()
	})
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExtractedDataUpsertOne) SetTransactionDate(v time.Time) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTransactionDate(v)
	})
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateTransactionDate() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTransactionDate()
	})
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (u *ExtractedDataUpsertOne) ClearTransactionDate() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearTransactionDate()
	})
}

// SetDatesFound sets the "dates_found" field.
func (u *ExtractedDataUpsertOne) SetDatesFound(v json.RawMessage) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetDatesFound(v)
	})
}

// UpdateDatesFound sets the "dates_found" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateDatesFound() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateDatesFound()
	})
}

// ClearDatesFound clears the value of the "dates_found" field.
func (u *ExtractedDataUpsertOne) ClearDatesFound() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearDatesFound()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *ExtractedDataUpsertOne) SetVendorName(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateVendorName() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *ExtractedDataUpsertOne) ClearVendorName() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearVendorName()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *ExtractedDataUpsertOne) SetInvoiceNumber(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateInvoiceNumber() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *ExtractedDataUpsertOne) ClearInvoiceNumber() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetReferenceNumber sets the "reference_number" field.
func (u *ExtractedDataUpsertOne) SetReferenceNumber(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetReferenceNumber(v)
	})
}

// UpdateReferenceNumber sets the "reference_number" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateReferenceNumber() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateReferenceNumber()
	})
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (u *ExtractedDataUpsertOne) ClearReferenceNumber() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearReferenceNumber()
	})
}

// SetTransactionType sets the "transaction_type" field.
func (u *ExtractedDataUpsertOne) SetTransactionType(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTransactionType(v)
	})
}

// UpdateTransactionType sets the "transaction_type" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateTransactionType() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTransactionType()
	})
}

// SetCategory sets the "category" field.
func (u *ExtractedDataUpsertOne) SetCategory(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateCategory() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateCategory()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ExtractedDataUpsertOne) SetTaxAmount(v float64) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ExtractedDataUpsertOne) AddTaxAmount(v float64) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateTaxAmount() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTaxAmount()
	})
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ExtractedDataUpsertOne) ClearTaxAmount() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearTaxAmount()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *ExtractedDataUpsertOne) SetPaymentMethod(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdatePaymentMethod() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractedDataUpsertOne) SetConfidenceScore(v float64) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractedDataUpsertOne) AddConfidenceScore(v float64) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateConfidenceScore() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractedDataUpsertOne) SetExtractionMethod(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateExtractionMethod() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateExtractionMethod()
	})
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *ExtractedDataUpsertOne) SetPatternSetVersion(v string) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetPatternSetVersion(v)
	})
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdatePatternSetVersion() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdatePatternSetVersion()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *ExtractedDataUpsertOne) SetNeedsReview(v bool) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateNeedsReview() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedDataUpsertOne) SetExtractedAt(v time.Time) *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedDataUpsertOne) UpdateExtractedAt() *ExtractedDataUpsertOne {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractedDataUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedDataCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedDataUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedDataUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractedDataUpsertOne.ID is not supported by MySQL driver. Use ExtractedDataUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedDataUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedDataCreateBulk is the builder for creating many ExtractedData entities in bulk.
type ExtractedDataCreateBulk struct {
	config
	err      error
	builders []*ExtractedDataCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedData entities in the database.
func (_c *ExtractedDataCreateBulk) Save(ctx context.Context) ([]*ExtractedData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedDataMutation)
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
func (_c *ExtractedDataCreateBulk) SaveX(ctx context.Context) []*ExtractedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedData.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedDataUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedDataCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedDataUpsertBulk {
	_c.conflict = opts
	return &ExtractedDataUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedDataCreateBulk) OnConflictColumns(columns ...string) *ExtractedDataUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedDataUpsertBulk{
		create: _c,
	}
}

// ExtractedDataUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedData nodes.
type ExtractedDataUpsertBulk struct {
	create *ExtractedDataCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extracteddata.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedDataUpsertBulk) UpdateNewValues() *ExtractedDataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extracteddata.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedData.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedDataUpsertBulk) Ignore() *ExtractedDataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedDataUpsertBulk) DoNothing() *ExtractedDataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedDataCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedDataUpsertBulk) Update(set func(*ExtractedDataUpsert)) *ExtractedDataUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedDataUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractedDataUpsertBulk) SetDocumentID(v uuid.UUID) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateDocumentID() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateDocumentID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *ExtractedDataUpsertBulk) SetCompanyID(v uuid.UUID) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateCompanyID() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateCompanyID()
	})
}

// SetAmounts sets the "amounts" field.
func (u *ExtractedDataUpsertBulk) SetAmounts(v json.RawMessage) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetAmounts(v)
	})
}

// UpdateAmounts sets the "amounts" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateAmounts() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateAmounts()
	})
}

// ClearAmounts clears the value of the "amounts" field.
func (u *ExtractedDataUpsertBulk) ClearAmounts() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearAmounts()
	})
}

// SetTransactionDate sets the "transaction_date" field.
func (u *ExtractedDataUpsertBulk) SetTransactionDate(v time.Time) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTransactionDate(v)
	})
}

// UpdateTransactionDate sets the "transaction_date" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateTransactionDate() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTransactionDate()
	})
}

// ClearTransactionDate clears the value of the "transaction_date" field.
func (u *ExtractedDataUpsertBulk) ClearTransactionDate() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearTransactionDate()
	})
}

// SetDatesFound sets the "dates_found" field.
func (u *ExtractedDataUpsertBulk) SetDatesFound(v json.RawMessage) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetDatesFound(v)
	})
}

// UpdateDatesFound sets the "dates_found" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateDatesFound() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateDatesFound()
	})
}

// ClearDatesFound clears the value of the "dates_found" field.
func (u *ExtractedDataUpsertBulk) ClearDatesFound() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearDatesFound()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *ExtractedDataUpsertBulk) SetVendorName(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateVendorName() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateVendorName()
	})
}

// ClearVendorName clears the value of the "vendor_name" field.
func (u *ExtractedDataUpsertBulk) ClearVendorName() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearVendorName()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *ExtractedDataUpsertBulk) SetInvoiceNumber(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateInvoiceNumber() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *ExtractedDataUpsertBulk) ClearInvoiceNumber() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetReferenceNumber sets the "reference_number" field.
func (u *ExtractedDataUpsertBulk) SetReferenceNumber(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetReferenceNumber(v)
	})
}

// UpdateReferenceNumber sets the "reference_number" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateReferenceNumber() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateReferenceNumber()
	})
}

// ClearReferenceNumber clears the value of the "reference_number" field.
func (u *ExtractedDataUpsertBulk) ClearReferenceNumber() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearReferenceNumber()
	})
}

// SetTransactionType sets the "transaction_type" field.
func (u *ExtractedDataUpsertBulk) SetTransactionType(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTransactionType(v)
	})
}

// UpdateTransactionType sets the "transaction_type" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateTransactionType() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTransactionType()
	})
}

// SetCategory sets the "category" field.
func (u *ExtractedDataUpsertBulk) SetCategory(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateCategory() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateCategory()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ExtractedDataUpsertBulk) SetTaxAmount(v float64) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ExtractedDataUpsertBulk) AddTaxAmount(v float64) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateTaxAmount() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateTaxAmount()
	})
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ExtractedDataUpsertBulk) ClearTaxAmount() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.ClearTaxAmount()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *ExtractedDataUpsertBulk) SetPaymentMethod(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdatePaymentMethod() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractedDataUpsertBulk) SetConfidenceScore(v float64) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractedDataUpsertBulk) AddConfidenceScore(v float64) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateConfidenceScore() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *ExtractedDataUpsertBulk) SetExtractionMethod(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateExtractionMethod() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateExtractionMethod()
	})
}

// SetPatternSetVersion sets the "pattern_set_version" field.
func (u *ExtractedDataUpsertBulk) SetPatternSetVersion(v string) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetPatternSetVersion(v)
	})
}

// UpdatePatternSetVersion sets the "pattern_set_version" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdatePatternSetVersion() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdatePatternSetVersion()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *ExtractedDataUpsertBulk) SetNeedsReview(v bool) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateNeedsReview() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedDataUpsertBulk) SetExtractedAt(v time.Time) *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedDataUpsertBulk) UpdateExtractedAt() *ExtractedDataUpsertBulk {
	return u.Update(func(s *ExtractedDataUpsert) {
		s.UpdateExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractedDataUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedDataCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedDataCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedDataUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
