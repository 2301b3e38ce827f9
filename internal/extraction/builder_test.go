package extraction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/extraction"
	"github.com/biasharaledger/docextract/internal/llm"
)

// fakeEnricher returns canned fields or a canned error.
type fakeEnricher struct {
	fields llm.Fields
	err    error
	calls  int
}

func (f *fakeEnricher) Enrich(_ context.Context, _ llm.EnrichRequest) (llm.Fields, []byte, error) {
	f.calls++
	return f.fields, nil, f.err
}

func testDocument(text string) *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		CompanyID:    uuid.New(),
		RawText:      text,
		SourceFormat: "TXT",
		Status:       string(constants.DocStatusPending),
	}
}

func TestBuildFullInvoice(t *testing.T) {
	b := extraction.NewBuilder(extraction.DefaultConfig(), nil, nil)
	doc := testDocument(sampleInvoice)

	rec := b.Build(context.Background(), doc)

	assert.Equal(t, doc.ID, rec.DocumentID)
	assert.Equal(t, doc.CompanyID, rec.CompanyID)
	assert.Equal(t, "v1", rec.PatternSetVersion)
	assert.Equal(t, constants.MethodPattern, rec.ExtractionMethod)

	require.NotEmpty(t, rec.Amounts)
	primary := rec.PrimaryAmount()
	require.NotNil(t, primary)
	assert.True(t, primary.Value.Equal(decimal.RequireFromString("12500.00")))
	assert.Equal(t, "KES", primary.Currency)

	require.NotNil(t, rec.TransactionDate)
	assert.Equal(t, "2024-03-15", rec.TransactionDate.Format("2006-01-02"))

	require.NotNil(t, rec.VendorName)
	assert.Equal(t, "BAMBURI CEMENT LTD", *rec.VendorName)
	require.NotNil(t, rec.InvoiceNumber)
	assert.Equal(t, "INV-2024-0042", *rec.InvoiceNumber)
	require.NotNil(t, rec.ReferenceNumber)
	assert.Equal(t, "QXT7-99812", *rec.ReferenceNumber)
	require.NotNil(t, rec.TaxAmount)
	assert.True(t, rec.TaxAmount.Equal(decimal.RequireFromString("2000.00")))
	assert.Equal(t, constants.PayMobileMoney, rec.PaymentMethod)

	// "From: <vendor>" means the vendor sent this document to us
	assert.Equal(t, constants.TxnExpense, rec.TransactionType)
	assert.Equal(t, "construction", rec.Category)

	assert.Greater(t, rec.ConfidenceScore, 0.5)
	assert.False(t, rec.NeedsReview)
}

func TestBuildEmptyDocument(t *testing.T) {
	b := extraction.NewBuilder(extraction.DefaultConfig(), nil, nil)
	doc := testDocument("")

	rec := b.Build(context.Background(), doc)

	assert.Empty(t, rec.Amounts)
	assert.Empty(t, rec.DatesFound)
	assert.Nil(t, rec.TransactionDate)
	assert.Nil(t, rec.VendorName)
	assert.Equal(t, constants.TxnUnknown, rec.TransactionType)
	assert.Equal(t, string(constants.Uncategorized), rec.Category)
	assert.Equal(t, constants.PayUnknown, rec.PaymentMethod)
	assert.Equal(t, 0.0, rec.ConfidenceScore)
	assert.True(t, rec.NeedsReview)
}

func TestBuildAmountSelection(t *testing.T) {
	b := extraction.NewBuilder(extraction.DefaultConfig(), nil, nil)
	// the bare thousands match of 7,700.00 scores 0.40 and must be excluded;
	// the same value seen twice is reported once
	doc := testDocument("Subtotal 7,700.00\nTotal: KES 9,000.00\nAmount Due: KES 9,000.00\nTotal: KES 150.00")

	rec := b.Build(context.Background(), doc)

	require.Len(t, rec.Amounts, 2)
	assert.True(t, rec.Amounts[0].Value.Equal(decimal.RequireFromString("9000.00")))
	assert.True(t, rec.Amounts[1].Value.Equal(decimal.RequireFromString("150.00")))

	for i := 1; i < len(rec.Amounts); i++ {
		assert.GreaterOrEqual(t, rec.Amounts[i-1].Confidence, rec.Amounts[i].Confidence)
	}
}

func TestBuildAmountTieBreakByMagnitude(t *testing.T) {
	b := extraction.NewBuilder(extraction.DefaultConfig(), nil, nil)
	// two labeled amounts with identical scores; the larger value leads
	doc := testDocument("Total: KES 100.00\nTotal: KES 900.00")

	rec := b.Build(context.Background(), doc)

	require.Len(t, rec.Amounts, 2)
	assert.True(t, rec.Amounts[0].Value.Equal(decimal.RequireFromString("900.00")))
	assert.True(t, rec.Amounts[1].Value.Equal(decimal.RequireFromString("100.00")))
}

func TestBuildRecordIDIsDeterministic(t *testing.T) {
	cfg := extraction.DefaultConfig()
	b := extraction.NewBuilder(cfg, nil, nil)
	doc := testDocument(sampleInvoice)

	first := b.Build(context.Background(), doc)
	second := b.Build(context.Background(), doc)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Amounts, second.Amounts)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)

	// a different pattern set version must produce a different record ID
	other := *cfg
	other.PatternSetVersion = "v2"
	third := extraction.NewBuilder(&other, nil, nil).Build(context.Background(), doc)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestBuildConfidenceStableAcrossRuns(t *testing.T) {
	b := extraction.NewBuilder(extraction.DefaultConfig(), nil, nil)
	doc := testDocument(sampleInvoice)

	first := b.Build(context.Background(), doc)
	for i := 0; i < 50; i++ {
		again := b.Build(context.Background(), doc)
		assert.Equal(t, first.ConfidenceScore, again.ConfidenceScore)
		assert.Equal(t, first.Amounts, again.Amounts)
	}
}

func TestBuildEnricherFillsGapsOnly(t *testing.T) {
	enricher := &fakeEnricher{fields: llm.Fields{
		VendorName:      "Suggested Vendor",
		Category:        "transport",
		TransactionType: "expense",
	}}
	b := extraction.NewBuilder(extraction.DefaultConfig(), enricher, nil)
	// no vendor, no category keyword, no directional cue
	doc := testDocument("Total: KES 5,000.00 paid on 2024-05-01")

	rec := b.Build(context.Background(), doc)

	assert.Equal(t, 1, enricher.calls)
	require.NotNil(t, rec.VendorName)
	assert.Equal(t, "Suggested Vendor", *rec.VendorName)
	assert.Equal(t, "transport", rec.Category)
	assert.Equal(t, constants.TxnExpense, rec.TransactionType)
	assert.Equal(t, constants.MethodPatternLLM, rec.ExtractionMethod)
}

func TestBuildEnricherNeverOverridesPatternOutput(t *testing.T) {
	enricher := &fakeEnricher{fields: llm.Fields{
		VendorName:      "Wrong Vendor",
		Category:        "transport",
		TransactionType: "income",
	}}
	b := extraction.NewBuilder(extraction.DefaultConfig(), enricher, nil)
	doc := testDocument(sampleInvoice)

	rec := b.Build(context.Background(), doc)

	require.NotNil(t, rec.VendorName)
	assert.Equal(t, "BAMBURI CEMENT LTD", *rec.VendorName)
	assert.Equal(t, "construction", rec.Category)
	assert.Equal(t, constants.TxnExpense, rec.TransactionType)
	assert.Equal(t, constants.MethodPattern, rec.ExtractionMethod)
}

func TestBuildEnricherErrorFallsBackToPatternOnly(t *testing.T) {
	enricher := &fakeEnricher{err: errors.New("model unavailable")}
	b := extraction.NewBuilder(extraction.DefaultConfig(), enricher, nil)
	doc := testDocument(sampleInvoice)

	rec := b.Build(context.Background(), doc)

	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, constants.MethodPattern, rec.ExtractionMethod)
	require.NotNil(t, rec.VendorName)
	assert.Equal(t, "BAMBURI CEMENT LTD", *rec.VendorName)
}

func TestBuildEnricherCanonicalizesCategory(t *testing.T) {
	// free-form model labels fold onto the taxonomy via the synonyms map
	enricher := &fakeEnricher{fields: llm.Fields{Category: "Electricity"}}
	b := extraction.NewBuilder(extraction.DefaultConfig(), enricher, nil)
	doc := testDocument("Total: KES 5,000.00")

	rec := b.Build(context.Background(), doc)

	assert.Equal(t, string(constants.Utilities), rec.Category)
	assert.Equal(t, constants.MethodPatternLLM, rec.ExtractionMethod)
}

func TestBuildEnricherRejectsUnknownCategory(t *testing.T) {
	enricher := &fakeEnricher{fields: llm.Fields{Category: "cryptocurrency"}}
	b := extraction.NewBuilder(extraction.DefaultConfig(), enricher, nil)
	doc := testDocument("Total: KES 5,000.00")

	rec := b.Build(context.Background(), doc)

	assert.Equal(t, string(constants.Uncategorized), rec.Category)
	assert.Equal(t, constants.MethodPattern, rec.ExtractionMethod)
}
