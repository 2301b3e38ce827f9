package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biasharaledger/docextract/constants"
)

// Amount is a single high-confidence monetary match. The primary amount of a
// record is the first entry of the Amounts slice.
type Amount struct {
	Value      decimal.Decimal `json:"value"`
	Currency   string          `json:"currency"`
	Confidence float64         `json:"confidence"`
	Position   int             `json:"position"`
}

// DateCandidate is a parsed calendar date with its score and text position.
type DateCandidate struct {
	Date       time.Time `json:"date"`
	Confidence float64   `json:"confidence"`
	Position   int       `json:"position"`
}

// ExtractedData is the structured record the engine produces for a document.
// Exactly one current record exists per document; re-extraction replaces it
// in full.
type ExtractedData struct {
	ID                uuid.UUID                  `json:"id"`
	DocumentID        uuid.UUID                  `json:"document_id"`
	CompanyID         uuid.UUID                  `json:"company_id"`
	Amounts           []Amount                   `json:"amounts"`
	TransactionDate   *time.Time                 `json:"transaction_date,omitempty"`
	DatesFound        []DateCandidate            `json:"dates_found"`
	VendorName        *string                    `json:"vendor_name,omitempty"`
	InvoiceNumber     *string                    `json:"invoice_number,omitempty"`
	ReferenceNumber   *string                    `json:"reference_number,omitempty"`
	TransactionType   constants.TransactionType  `json:"transaction_type"`
	Category          string                     `json:"category"`
	TaxAmount         *decimal.Decimal           `json:"tax_amount,omitempty"`
	PaymentMethod     constants.PaymentMethod    `json:"payment_method"`
	ConfidenceScore   float64                    `json:"confidence_score"`
	ExtractionMethod  constants.ExtractionMethod `json:"extraction_method"`
	PatternSetVersion string                     `json:"pattern_set_version"`
	NeedsReview       bool                       `json:"needs_review"`
	ExtractedAt       time.Time                  `json:"extracted_at"`
}

// PrimaryAmount returns the highest-confidence amount, or nil when the
// record carries none.
func (e *ExtractedData) PrimaryAmount() *Amount {
	if len(e.Amounts) == 0 {
		return nil
	}
	return &e.Amounts[0]
}
