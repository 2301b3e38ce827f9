package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/biasharaledger/docextract/internal/repository"
)

// Service is a tiny façade over the extraction repository that produces
// XLSX bytes for exports.
type Service struct {
	extractedRepo repository.ExtractedDataRepository
	logger        *slog.Logger
}

func NewService(repo repository.ExtractedDataRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractedRepo: repo, logger: logger}
}

// ExportRecordsXLSX returns an XLSX workbook (as bytes) of a company's
// extracted records within a date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all records for the company.
func (s *Service) ExportRecordsXLSX(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.extractedRepo.ListByCompany(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query extracted records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Records"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Date",
		"Vendor",
		"Type",
		"Category",
		"Amount",
		"Currency",
		"Tax",
		"Payment Method",
		"Invoice #",
		"Reference #",
		"Confidence",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if r.TransactionDate != nil {
			write(1, r.TransactionDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, strOrEmpty(r.VendorName))
		write(3, string(r.TransactionType))
		write(4, r.Category)
		if primary := r.PrimaryAmount(); primary != nil {
			write(5, primary.Value.StringFixed(2))
			write(6, primary.Currency)
		} else {
			write(5, "")
			write(6, "")
		}
		if r.TaxAmount != nil {
			write(7, r.TaxAmount.StringFixed(2))
		} else {
			write(7, "")
		}
		write(8, string(r.PaymentMethod))
		write(9, strOrEmpty(r.InvoiceNumber))
		write(10, strOrEmpty(r.ReferenceNumber))
		write(11, fmt.Sprintf("%.2f", r.ConfidenceScore))
		write(12, r.NeedsReview)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("records exported",
		"company_id", companyID,
		"rows", len(recs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
