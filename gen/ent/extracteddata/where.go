// Code generated by ent, DO NOT EDIT.

package extracteddata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/biasharaledger/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDocumentID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCompanyID, v))
}

// TransactionDate applies equality check predicate on the "transaction_date" field. It's identical to TransactionDateEQ.
func TransactionDate(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTransactionDate, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldVendorName, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldInvoiceNumber, v))
}

// ReferenceNumber applies equality check predicate on the "reference_number" field. It's identical to ReferenceNumberEQ.
func ReferenceNumber(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldReferenceNumber, v))
}

// TransactionType applies equality check predicate on the "transaction_type" field. It's identical to TransactionTypeEQ.
func TransactionType(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTransactionType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCategory, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTaxAmount, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPaymentMethod, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldConfidenceScore, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExtractionMethod, v))
}

// PatternSetVersion applies equality check predicate on the "pattern_set_version" field. It's identical to PatternSetVersionEQ.
func PatternSetVersion(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPatternSetVersion, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldNeedsReview, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExtractedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldDocumentID, vs...))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v uuid.UUID) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCompanyID, v))
}

// AmountsIsNil applies the IsNil predicate on the "amounts" field.
func AmountsIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldAmounts))
}

// AmountsNotNil applies the NotNil predicate on the "amounts" field.
func AmountsNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldAmounts))
}

// TransactionDateEQ applies the EQ predicate on the "transaction_date" field.
func TransactionDateEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTransactionDate, v))
}

// TransactionDateNEQ applies the NEQ predicate on the "transaction_date" field.
func TransactionDateNEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldTransactionDate, v))
}

// TransactionDateIn applies the In predicate on the "transaction_date" field.
func TransactionDateIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldTransactionDate, vs...))
}

// TransactionDateNotIn applies the NotIn predicate on the "transaction_date" field.
func TransactionDateNotIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldTransactionDate, vs...))
}

// TransactionDateGT applies the GT predicate on the "transaction_date" field.
func TransactionDateGT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldTransactionDate, v))
}

// TransactionDateGTE applies the GTE predicate on the "transaction_date" field.
func TransactionDateGTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldTransactionDate, v))
}

// TransactionDateLT applies the LT predicate on the "transaction_date" field.
func TransactionDateLT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldTransactionDate, v))
}

// TransactionDateLTE applies the LTE predicate on the "transaction_date" field.
func TransactionDateLTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldTransactionDate, v))
}

// TransactionDateIsNil applies the IsNil predicate on the "transaction_date" field.
func TransactionDateIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldTransactionDate))
}

// TransactionDateNotNil applies the NotNil predicate on the "transaction_date" field.
func TransactionDateNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldTransactionDate))
}

// DatesFoundIsNil applies the IsNil predicate on the "dates_found" field.
func DatesFoundIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldDatesFound))
}

// DatesFoundNotNil applies the NotNil predicate on the "dates_found" field.
func DatesFoundNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldDatesFound))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldVendorName, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// ReferenceNumberEQ applies the EQ predicate on the "reference_number" field.
func ReferenceNumberEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldReferenceNumber, v))
}

// ReferenceNumberNEQ applies the NEQ predicate on the "reference_number" field.
func ReferenceNumberNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldReferenceNumber, v))
}

// ReferenceNumberIn applies the In predicate on the "reference_number" field.
func ReferenceNumberIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldReferenceNumber, vs...))
}

// ReferenceNumberNotIn applies the NotIn predicate on the "reference_number" field.
func ReferenceNumberNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldReferenceNumber, vs...))
}

// ReferenceNumberGT applies the GT predicate on the "reference_number" field.
func ReferenceNumberGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldReferenceNumber, v))
}

// ReferenceNumberGTE applies the GTE predicate on the "reference_number" field.
func ReferenceNumberGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldReferenceNumber, v))
}

// ReferenceNumberLT applies the LT predicate on the "reference_number" field.
func ReferenceNumberLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldReferenceNumber, v))
}

// ReferenceNumberLTE applies the LTE predicate on the "reference_number" field.
func ReferenceNumberLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldReferenceNumber, v))
}

// ReferenceNumberContains applies the Contains predicate on the "reference_number" field.
func ReferenceNumberContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldReferenceNumber, v))
}

// ReferenceNumberHasPrefix applies the HasPrefix predicate on the "reference_number" field.
func ReferenceNumberHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldReferenceNumber, v))
}

// ReferenceNumberHasSuffix applies the HasSuffix predicate on the "reference_number" field.
func ReferenceNumberHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldReferenceNumber, v))
}

// ReferenceNumberIsNil applies the IsNil predicate on the "reference_number" field.
func ReferenceNumberIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldReferenceNumber))
}

// ReferenceNumberNotNil applies the NotNil predicate on the "reference_number" field.
func ReferenceNumberNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldReferenceNumber))
}

// ReferenceNumberEqualFold applies the EqualFold predicate on the "reference_number" field.
func ReferenceNumberEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldReferenceNumber, v))
}

// ReferenceNumberContainsFold applies the ContainsFold predicate on the "reference_number" field.
func ReferenceNumberContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldReferenceNumber, v))
}

// TransactionTypeEQ applies the EQ predicate on the "transaction_type" field.
func TransactionTypeEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTransactionType, v))
}

// TransactionTypeNEQ applies the NEQ predicate on the "transaction_type" field.
func TransactionTypeNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldTransactionType, v))
}

// TransactionTypeIn applies the In predicate on the "transaction_type" field.
func TransactionTypeIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldTransactionType, vs...))
}

// TransactionTypeNotIn applies the NotIn predicate on the "transaction_type" field.
func TransactionTypeNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldTransactionType, vs...))
}

// TransactionTypeGT applies the GT predicate on the "transaction_type" field.
func TransactionTypeGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldTransactionType, v))
}

// TransactionTypeGTE applies the GTE predicate on the "transaction_type" field.
func TransactionTypeGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldTransactionType, v))
}

// TransactionTypeLT applies the LT predicate on the "transaction_type" field.
func TransactionTypeLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldTransactionType, v))
}

// TransactionTypeLTE applies the LTE predicate on the "transaction_type" field.
func TransactionTypeLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldTransactionType, v))
}

// TransactionTypeContains applies the Contains predicate on the "transaction_type" field.
func TransactionTypeContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldTransactionType, v))
}

// TransactionTypeHasPrefix applies the HasPrefix predicate on the "transaction_type" field.
func TransactionTypeHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldTransactionType, v))
}

// TransactionTypeHasSuffix applies the HasSuffix predicate on the "transaction_type" field.
func TransactionTypeHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldTransactionType, v))
}

// TransactionTypeEqualFold applies the EqualFold predicate on the "transaction_type" field.
func TransactionTypeEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldTransactionType, v))
}

// TransactionTypeContainsFold applies the ContainsFold predicate on the "transaction_type" field.
func TransactionTypeContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldTransactionType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldCategory, v))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotNull(FieldTaxAmount))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldConfidenceScore, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// PatternSetVersionEQ applies the EQ predicate on the "pattern_set_version" field.
func PatternSetVersionEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldPatternSetVersion, v))
}

// PatternSetVersionNEQ applies the NEQ predicate on the "pattern_set_version" field.
func PatternSetVersionNEQ(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldPatternSetVersion, v))
}

// PatternSetVersionIn applies the In predicate on the "pattern_set_version" field.
func PatternSetVersionIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldPatternSetVersion, vs...))
}

// PatternSetVersionNotIn applies the NotIn predicate on the "pattern_set_version" field.
func PatternSetVersionNotIn(vs ...string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldPatternSetVersion, vs...))
}

// PatternSetVersionGT applies the GT predicate on the "pattern_set_version" field.
func PatternSetVersionGT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldPatternSetVersion, v))
}

// PatternSetVersionGTE applies the GTE predicate on the "pattern_set_version" field.
func PatternSetVersionGTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldPatternSetVersion, v))
}

// PatternSetVersionLT applies the LT predicate on the "pattern_set_version" field.
func PatternSetVersionLT(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldPatternSetVersion, v))
}

// PatternSetVersionLTE applies the LTE predicate on the "pattern_set_version" field.
func PatternSetVersionLTE(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldPatternSetVersion, v))
}

// PatternSetVersionContains applies the Contains predicate on the "pattern_set_version" field.
func PatternSetVersionContains(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContains(FieldPatternSetVersion, v))
}

// PatternSetVersionHasPrefix applies the HasPrefix predicate on the "pattern_set_version" field.
func PatternSetVersionHasPrefix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasPrefix(FieldPatternSetVersion, v))
}

// PatternSetVersionHasSuffix applies the HasSuffix predicate on the "pattern_set_version" field.
func PatternSetVersionHasSuffix(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldHasSuffix(FieldPatternSetVersion, v))
}

// PatternSetVersionEqualFold applies the EqualFold predicate on the "pattern_set_version" field.
func PatternSetVersionEqualFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEqualFold(FieldPatternSetVersion, v))
}

// PatternSetVersionContainsFold applies the ContainsFold predicate on the "pattern_set_version" field.
func PatternSetVersionContainsFold(v string) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldContainsFold(FieldPatternSetVersion, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldNeedsReview, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.ExtractedData {
	return predicate.ExtractedData(sql.FieldLTE(FieldExtractedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractedData {
	return predicate.ExtractedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractedData {
	return predicate.ExtractedData(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedData) predicate.ExtractedData {
	return predicate.ExtractedData(sql.NotPredicates(p))
}
