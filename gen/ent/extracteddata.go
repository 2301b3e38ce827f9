// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/google/uuid"
)

// ExtractedData is the model entity for the ExtractedData schema.
type ExtractedData struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Amounts holds the value of the "amounts" field.
	Amounts json.RawMessage `json:"amounts,omitempty"`
	// TransactionDate holds the value of the "transaction_date" field.
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	// DatesFound holds the value of the "dates_found" field.
	DatesFound json.RawMessage `json:"dates_found,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// ReferenceNumber holds the value of the "reference_number" field.
	ReferenceNumber *string `json:"reference_number,omitempty"`
	// TransactionType holds the value of the "transaction_type" field.
	TransactionType string `json:"transaction_type,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount *float64 `json:"tax_amount,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod string `json:"payment_method,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod string `json:"extraction_method,omitempty"`
	// PatternSetVersion holds the value of the "pattern_set_version" field.
	PatternSetVersion string `json:"pattern_set_version,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedDataQuery when eager-loading is set.
	Edges        ExtractedDataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedDataEdges holds the relations/edges for other nodes in the graph.
type ExtractedDataEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedDataEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedData) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracteddata.FieldAmounts, extracteddata.FieldDatesFound:
			values[i] = new([]byte)
		case extracteddata.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case extracteddata.FieldTaxAmount, extracteddata.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case extracteddata.FieldVendorName, extracteddata.FieldInvoiceNumber, extracteddata.FieldReferenceNumber, extracteddata.FieldTransactionType, extracteddata.FieldCategory, extracteddata.FieldPaymentMethod, extracteddata.FieldExtractionMethod, extracteddata.FieldPatternSetVersion:
			values[i] = new(sql.NullString)
		case extracteddata.FieldTransactionDate, extracteddata.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case extracteddata.FieldID, extracteddata.FieldDocumentID, extracteddata.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedData fields.
func (_m *ExtractedData) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracteddata.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extracteddata.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extracteddata.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case extracteddata.FieldAmounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field amounts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Amounts); err != nil {
					return fmt.Errorf("unmarshal field amounts: %w", err)
				}
			}
		case extracteddata.FieldTransactionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_date", values[i])
			} else if value.Valid {
				_m.TransactionDate = new(time.Time)
				*_m.TransactionDate = value.Time
			}
		case extracteddata.FieldDatesFound:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dates_found", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DatesFound); err != nil {
					return fmt.Errorf("unmarshal field dates_found: %w", err)
				}
			}
		case extracteddata.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case extracteddata.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case extracteddata.FieldReferenceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_number", values[i])
			} else if value.Valid {
				_m.ReferenceNumber = new(string)
				*_m.ReferenceNumber = value.String
			}
		case extracteddata.FieldTransactionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_type", values[i])
			} else if value.Valid {
				_m.TransactionType = value.String
			}
		case extracteddata.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extracteddata.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = new(float64)
				*_m.TaxAmount = value.Float64
			}
		case extracteddata.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = value.String
			}
		case extracteddata.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case extracteddata.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = value.String
			}
		case extracteddata.FieldPatternSetVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_set_version", values[i])
			} else if value.Valid {
				_m.PatternSetVersion = value.String
			}
		case extracteddata.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case extracteddata.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedData.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedData) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractedData entity.
func (_m *ExtractedData) QueryDocument() *DocumentQuery {
	return NewExtractedDataClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractedData.
// Note that you need to call ExtractedData.Unwrap() before calling this method if this ExtractedData
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedData) Update() *ExtractedDataUpdateOne {
	return NewExtractedDataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedData entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedData) Unwrap() *ExtractedData {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedData is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedData) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedData(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("amounts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amounts))
	builder.WriteString(", ")
	if v := _m.TransactionDate; v != nil {
		builder.WriteString("transaction_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("dates_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatesFound))
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReferenceNumber; v != nil {
		builder.WriteString("reference_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transaction_type=")
	builder.WriteString(_m.TransactionType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.TaxAmount; v != nil {
		builder.WriteString("tax_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(_m.PaymentMethod)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(_m.ExtractionMethod)
	builder.WriteString(", ")
	builder.WriteString("pattern_set_version=")
	builder.WriteString(_m.PatternSetVersion)
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedDataSlice is a parsable slice of ExtractedData.
type ExtractedDataSlice []*ExtractedData
