package export_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/export"
	"github.com/biasharaledger/docextract/internal/repository"
)

func setup(t *testing.T) (*repository.Store, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	entc, err := repository.OpenSQLiteInMemory(ctx, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = entc.Close() })

	company, err := repository.NewCompanyRepository(entc, logger).GetOrCreateByName(ctx, "Export Co "+uuid.NewString())
	require.NoError(t, err)

	return repository.NewStore(entc, logger), company.ID
}

func TestExportRecordsXLSX(t *testing.T) {
	ctx := context.Background()
	store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "Invoice No: INV-77\nTotal: KES 9,000.00", "TXT")
	require.NoError(t, err)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	vendor := "Kenya Power"
	invoice := "INV-77"
	rec := &entity.ExtractedData{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.ID.String()+"/v1")),
		DocumentID: doc.ID,
		CompanyID:  companyID,
		Amounts: []entity.Amount{
			{Value: decimal.RequireFromString("9000.00"), Currency: "KES", Confidence: 0.9, Position: 20},
		},
		TransactionDate:   &date,
		VendorName:        &vendor,
		InvoiceNumber:     &invoice,
		TransactionType:   constants.TxnExpense,
		Category:          "utilities",
		PaymentMethod:     constants.PayUnknown,
		ConfidenceScore:   0.82,
		ExtractionMethod:  constants.MethodPattern,
		PatternSetVersion: "v1",
		ExtractedAt:       time.Now().UTC(),
	}
	require.NoError(t, store.SaveExtractedData(ctx, rec))

	svc := export.NewService(store.ExtractedDataRepository, nil)
	out, err := svc.ExportRecordsXLSX(ctx, companyID, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Transaction Date", rows[0][0])
	assert.Equal(t, "2024-03-15", rows[1][0])
	assert.Equal(t, "Kenya Power", rows[1][1])
	assert.Equal(t, "expense", rows[1][2])
	assert.Equal(t, "utilities", rows[1][3])
	assert.Equal(t, "9000.00", rows[1][4])
	assert.Equal(t, "KES", rows[1][5])
	assert.Equal(t, "INV-77", rows[1][8])
	assert.Equal(t, "0.82", rows[1][10])
}

func TestExportWindowExcludesOutOfRange(t *testing.T) {
	ctx := context.Background()
	store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "Total: KES 1,000.00", "TXT")
	require.NoError(t, err)

	date := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	rec := &entity.ExtractedData{
		ID:                uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.ID.String()+"/v1")),
		DocumentID:        doc.ID,
		CompanyID:         companyID,
		TransactionDate:   &date,
		TransactionType:   constants.TxnUnknown,
		Category:          string(constants.Uncategorized),
		PaymentMethod:     constants.PayUnknown,
		ConfidenceScore:   0.4,
		ExtractionMethod:  constants.MethodPattern,
		PatternSetVersion: "v1",
		ExtractedAt:       time.Now().UTC(),
	}
	require.NoError(t, store.SaveExtractedData(ctx, rec))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := export.NewService(store.ExtractedDataRepository, nil).ExportRecordsXLSX(ctx, companyID, &from, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Records")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}