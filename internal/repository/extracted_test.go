package repository_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/repository"
)

func sampleRecord(docID, companyID uuid.UUID) *entity.ExtractedData {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	vendor := "Bamburi Cement"
	invoice := "INV-2024-0042"
	tax := decimal.RequireFromString("2000.00")
	return &entity.ExtractedData{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(docID.String()+"/v1")),
		DocumentID: docID,
		CompanyID:  companyID,
		Amounts: []entity.Amount{
			{Value: decimal.RequireFromString("12500.00"), Currency: "KES", Confidence: 0.95, Position: 42},
		},
		TransactionDate: &date,
		DatesFound: []entity.DateCandidate{
			{Date: date, Confidence: 0.9, Position: 30},
		},
		VendorName:        &vendor,
		InvoiceNumber:     &invoice,
		TransactionType:   constants.TxnExpense,
		Category:          "construction",
		TaxAmount:         &tax,
		PaymentMethod:     constants.PayMobileMoney,
		ConfidenceScore:   0.86,
		ExtractionMethod:  constants.MethodPattern,
		PatternSetVersion: "v1",
		ExtractedAt:       time.Now().UTC(),
	}
}

func TestSaveAndLoadExtractedData(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "Total: KES 12,500.00", "TXT")
	require.NoError(t, err)

	rec := sampleRecord(doc.ID, companyID)
	require.NoError(t, store.SaveExtractedData(ctx, rec))

	got, err := store.GetByDocumentID(ctx, doc.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, companyID, got.CompanyID)
	require.Len(t, got.Amounts, 1)
	assert.True(t, got.Amounts[0].Value.Equal(decimal.RequireFromString("12500.00")))
	assert.Equal(t, "KES", got.Amounts[0].Currency)
	require.NotNil(t, got.VendorName)
	assert.Equal(t, "Bamburi Cement", *got.VendorName)
	assert.Equal(t, constants.TxnExpense, got.TransactionType)
	require.NotNil(t, got.TaxAmount)
	assert.True(t, got.TaxAmount.Equal(decimal.RequireFromString("2000.00")))
	assert.Equal(t, constants.PayMobileMoney, got.PaymentMethod)
	assert.InDelta(t, 0.86, got.ConfidenceScore, 1e-9)
}

func TestSaveExtractedDataReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "text", "TXT")
	require.NoError(t, err)

	first := sampleRecord(doc.ID, companyID)
	require.NoError(t, store.SaveExtractedData(ctx, first))

	second := sampleRecord(doc.ID, companyID)
	second.Category = "transport"
	second.ConfidenceScore = 0.42
	second.NeedsReview = true
	require.NoError(t, store.SaveExtractedData(ctx, second))

	got, err := store.GetByDocumentID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "transport", got.Category)
	assert.InDelta(t, 0.42, got.ConfidenceScore, 1e-9)
	assert.True(t, got.NeedsReview)

	// still exactly one record for the document
	recs, err := store.ListByCompany(ctx, companyID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSaveExtractedDataRejectsForeignCompany(t *testing.T) {
	ctx := context.Background()
	entc, store, companyID := setup(t)

	other, err := repository.NewCompanyRepository(entc, slog.Default()).GetOrCreateByName(ctx, "Other "+uuid.NewString())
	require.NoError(t, err)

	doc, err := store.Create(ctx, companyID, "text", "TXT")
	require.NoError(t, err)

	rec := sampleRecord(doc.ID, other.ID)
	err = store.SaveExtractedData(ctx, rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTenantMismatch)

	_, err = store.GetByDocumentID(ctx, doc.ID)
	assert.Error(t, err, "nothing was persisted")
}

func TestListByCompanyDateWindow(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	mkRec := func(day int) {
		doc, err := store.Create(ctx, companyID, "text", "TXT")
		require.NoError(t, err)
		rec := sampleRecord(doc.ID, companyID)
		date := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
		rec.TransactionDate = &date
		require.NoError(t, store.SaveExtractedData(ctx, rec))
	}
	mkRec(1)
	mkRec(15)
	mkRec(30)

	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	recs, err := store.ListByCompany(ctx, companyID, &from, &to)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 15, recs[0].TransactionDate.Day())

	all, err := store.ListByCompany(ctx, companyID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
