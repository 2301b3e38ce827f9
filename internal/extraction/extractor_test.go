package extraction_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/extraction"
)

const sampleInvoice = `Invoice No: INV-2024-0042
From: BAMBURI CEMENT LTD
Date: 2024-03-15
Total: KES 12,500.00
VAT 16%: 2,000.00
Paid via M-Pesa
Ref: QXT7-99812`

func candidatesFor(t *testing.T, text string) []extraction.Candidate {
	t.Helper()
	cfg := extraction.DefaultConfig()
	return extraction.NewExtractor(cfg, nil).Extract(text)
}

func byField(cands []extraction.Candidate, field constants.FieldKind) []extraction.Candidate {
	var out []extraction.Candidate
	for _, c := range cands {
		if c.Field == field {
			out = append(out, c)
		}
	}
	return out
}

func TestExtractEmptyText(t *testing.T) {
	assert.Empty(t, candidatesFor(t, ""))
}

func TestExtractInvoiceFields(t *testing.T) {
	cands := candidatesFor(t, sampleInvoice)

	amounts := byField(cands, constants.FieldAmount)
	require.NotEmpty(t, amounts)
	var labeled *extraction.Candidate
	for i := range amounts {
		if amounts[i].Labeled {
			labeled = &amounts[i]
			break
		}
	}
	require.NotNil(t, labeled, "labeled total should match")
	assert.True(t, labeled.Amount.Equal(decimal.RequireFromString("12500.00")))
	assert.Equal(t, "KES", labeled.Currency)
	assert.True(t, labeled.CurrencyAdjacent)

	dates := byField(cands, constants.FieldDate)
	require.Len(t, dates, 1)
	assert.Equal(t, "2024-03-15", dates[0].Normalized)

	invoices := byField(cands, constants.FieldInvoiceNumber)
	require.NotEmpty(t, invoices)
	assert.Equal(t, "INV-2024-0042", invoices[0].Normalized)

	vendors := byField(cands, constants.FieldVendor)
	require.NotEmpty(t, vendors)
	assert.Equal(t, "BAMBURI CEMENT LTD", vendors[0].Normalized)

	refs := byField(cands, constants.FieldReference)
	require.NotEmpty(t, refs)
	assert.Equal(t, "QXT7-99812", refs[0].Normalized)

	payments := byField(cands, constants.FieldPaymentMethod)
	require.NotEmpty(t, payments)
	assert.Equal(t, constants.PayMobileMoney, payments[0].Payment)

	taxes := byField(cands, constants.FieldTax)
	require.NotEmpty(t, taxes)
	assert.True(t, taxes[0].Amount.Equal(decimal.RequireFromString("2000.00")))
}

func TestExtractDropsImpossibleDates(t *testing.T) {
	cands := candidatesFor(t, "Due 32/13/2024 latest 30/02/2024")
	assert.Empty(t, byField(cands, constants.FieldDate))

	cands = candidatesFor(t, "Due 29/02/2023")
	assert.Empty(t, byField(cands, constants.FieldDate), "2023 is not a leap year")

	cands = candidatesFor(t, "Due 29/02/2024")
	assert.Len(t, byField(cands, constants.FieldDate), 1, "2024 is a leap year")
}

func TestExtractDateFormats(t *testing.T) {
	for text, want := range map[string]string{
		"issued 2024-07-01":    "2024-07-01",
		"issued 1/7/2024":      "2024-07-01",
		"issued 1 Jul 2024":    "2024-07-01",
		"issued 15 March 2024": "2024-03-15",
	} {
		cands := byField(candidatesFor(t, text), constants.FieldDate)
		require.Len(t, cands, 1, text)
		assert.Equal(t, want, cands[0].Normalized, text)
	}
}

func TestExtractCanonicalizesCurrencySymbols(t *testing.T) {
	for text, want := range map[string]string{
		"Total: $ 99.50":     "USD",
		"Total: € 80.00":     "EUR",
		"Total: £ 75.25":     "GBP",
		"Total: KSH 1200.00": "KES",
	} {
		amounts := byField(candidatesFor(t, text), constants.FieldAmount)
		require.NotEmpty(t, amounts, text)
		assert.Equal(t, want, amounts[0].Currency, text)
	}
}

func TestExtractRejectsZeroAmount(t *testing.T) {
	amounts := byField(candidatesFor(t, "Total: KES 0.00"), constants.FieldAmount)
	assert.Empty(t, amounts)
}

func TestExtractGazetteerHints(t *testing.T) {
	cfg := extraction.DefaultConfig()
	gaz := extraction.NewGazetteer([]string{"Bamburi Cement"})
	cfg.Gazetteer = gaz

	cands := extraction.NewExtractor(cfg, nil).Extract("Delivery note from Bamburi Cement yard")
	vendors := byField(cands, constants.FieldVendor)
	require.NotEmpty(t, vendors)
	assert.Equal(t, "Bamburi Cement", vendors[0].Normalized)
}

func TestExtractIsDeterministic(t *testing.T) {
	first := candidatesFor(t, sampleInvoice)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, candidatesFor(t, sampleInvoice))
	}
}
