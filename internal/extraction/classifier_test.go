package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/extraction"
)

func TestClassifyVendorAsSenderIsExpense(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	got := c.Classify("From: KENYA POWER\nTotal: KES 4,000.00", "KENYA POWER")
	assert.Equal(t, constants.TxnExpense, got.Type)
}

func TestClassifyVendorAsRecipientIsIncome(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	got := c.Classify("Bill To: ACME HARDWARE\nTotal: KES 4,000.00", "ACME HARDWARE")
	assert.Equal(t, constants.TxnIncome, got.Type)

	got = c.Classify("To: ACME HARDWARE", "ACME HARDWARE")
	assert.Equal(t, constants.TxnIncome, got.Type)
}

func TestClassifyWithoutCueIsUnknown(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	got := c.Classify("Receipt for ACME HARDWARE purchase", "ACME HARDWARE")
	assert.Equal(t, constants.TxnUnknown, got.Type)

	got = c.Classify("some text", "")
	assert.Equal(t, constants.TxnUnknown, got.Type)

	got = c.Classify("vendor never appears here", "ACME HARDWARE")
	assert.Equal(t, constants.TxnUnknown, got.Type)
}

func TestClassifyNearestCueWins(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	// both cues precede the vendor; "Bill To" is nearer
	got := c.Classify("From: us. Bill To: ACME HARDWARE", "ACME HARDWARE")
	assert.Equal(t, constants.TxnIncome, got.Type)
}

func TestClassifyCategoryByKeyword(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	for text, want := range map[string]string{
		"50 bags of cement delivered":      "construction",
		"KPLC monthly electricity bill":    "utilities",
		"KRA withholding levy":             "government",
		"diesel for the site generator":    "transport",
		"office rent for September":        "rent_and_leases",
		"payroll for casual workers":       "salaries",
		"Safaricom airtime top-up":         "telecommunications",
		"nothing recognizable in here":     string(constants.Uncategorized),
	} {
		got := c.Classify(text, "")
		assert.Equal(t, want, got.Category, text)
	}
}

func TestClassifyFirstMatchingRuleWins(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	// mentions both construction and transport keywords; construction is
	// declared first
	got := c.Classify("cement haulage, diesel surcharge included", "")
	assert.Equal(t, "construction", got.Category)
}

func TestClassifyEmptyText(t *testing.T) {
	c := extraction.NewClassifier(extraction.DefaultConfig())

	got := c.Classify("", "")
	assert.Equal(t, constants.TxnUnknown, got.Type)
	assert.Equal(t, string(constants.Uncategorized), got.Category)
}
