package repository

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/entity"
)

// ToDocument maps a stored document row to its transfer shape.
func ToDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                row.ID,
		CompanyID:         row.CompanyID,
		RawText:           row.RawText,
		SourceFormat:      row.SourceFormat,
		Status:            row.Status,
		PatternSetVersion: row.PatternSetVersion,
		AttemptCount:      row.AttemptCount,
		LastErrorKind:     row.LastErrorKind,
		LastErrorMessage:  row.LastErrorMessage,
		CreatedAt:         row.CreatedAt,
		ProcessedAt:       row.ProcessedAt,
	}
}

// ToExtractedData maps a stored extraction row back to its transfer shape,
// decoding the JSON amount and date lists.
func ToExtractedData(row *ent.ExtractedData) (*entity.ExtractedData, error) {
	rec := &entity.ExtractedData{
		ID:                row.ID,
		DocumentID:        row.DocumentID,
		CompanyID:         row.CompanyID,
		TransactionDate:   row.TransactionDate,
		VendorName:        row.VendorName,
		InvoiceNumber:     row.InvoiceNumber,
		ReferenceNumber:   row.ReferenceNumber,
		TransactionType:   constants.TransactionType(row.TransactionType),
		Category:          row.Category,
		PaymentMethod:     constants.PaymentMethod(row.PaymentMethod),
		ConfidenceScore:   row.ConfidenceScore,
		ExtractionMethod:  constants.ExtractionMethod(row.ExtractionMethod),
		PatternSetVersion: row.PatternSetVersion,
		NeedsReview:       row.NeedsReview,
		ExtractedAt:       row.ExtractedAt,
	}

	if len(row.Amounts) > 0 {
		if err := json.Unmarshal(row.Amounts, &rec.Amounts); err != nil {
			return nil, common.WrapError(err, "decode amounts")
		}
	}
	if len(row.DatesFound) > 0 {
		if err := json.Unmarshal(row.DatesFound, &rec.DatesFound); err != nil {
			return nil, common.WrapError(err, "decode dates")
		}
	}
	if row.TaxAmount != nil {
		tax := decimal.NewFromFloat(*row.TaxAmount)
		rec.TaxAmount = &tax
	}
	return rec, nil
}
