package llm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/internal/llm"
)

func TestSanitizeFieldsDropsUnknownKeys(t *testing.T) {
	in := []byte(`{"vendor_name":"Acme","total":"12.50","notes":null}`)

	out, dropped, err := llm.SanitizeFields(in)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"total", "notes"}, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, map[string]any{"vendor_name": "Acme"}, m)
}

func TestSanitizeFieldsNormalizesTransactionType(t *testing.T) {
	out, dropped, err := llm.SanitizeFields([]byte(`{"transaction_type":" Expense "}`))
	require.NoError(t, err)
	assert.Empty(t, dropped)
	assert.JSONEq(t, `{"transaction_type":"expense"}`, string(out))

	out, dropped, err = llm.SanitizeFields([]byte(`{"transaction_type":"refund"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"transaction_type"}, dropped)
	assert.JSONEq(t, `{}`, string(out))
}

func TestSanitizeFieldsDropsOutOfRangeConfidence(t *testing.T) {
	out, dropped, err := llm.SanitizeFields([]byte(`{"confidence":1.7,"category":"transport"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"confidence"}, dropped)
	assert.JSONEq(t, `{"category":"transport"}`, string(out))
}

func TestSanitizeFieldsTrimsVendorName(t *testing.T) {
	out, _, err := llm.SanitizeFields([]byte(`{"vendor_name":"  Acme Ltd  "}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor_name":"Acme Ltd"}`, string(out))

	out, dropped, err := llm.SanitizeFields([]byte(`{"vendor_name":"   "}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor_name"}, dropped)
	assert.JSONEq(t, `{}`, string(out))
}

func TestSanitizeFieldsRejectsNonJSON(t *testing.T) {
	_, _, err := llm.SanitizeFields([]byte(`not json`))
	assert.Error(t, err)
}

func TestEnrichmentSchemaRoundTrip(t *testing.T) {
	schema := llm.BuildEnrichmentJSONSchema([]string{"transport", "utilities", "uncategorized"})

	ok := []byte(`{"vendor_name":"Acme","category":"transport","transaction_type":"expense","confidence":0.8}`)
	assert.NoError(t, llm.ValidateJSONAgainstSchema(schema, ok))

	badCategory := []byte(`{"category":"crypto"}`)
	assert.Error(t, llm.ValidateJSONAgainstSchema(schema, badCategory))

	extraKey := []byte(`{"vendor_name":"Acme","total":"12.50"}`)
	assert.Error(t, llm.ValidateJSONAgainstSchema(schema, extraKey))

	badConfidence := []byte(`{"confidence":2.0}`)
	assert.Error(t, llm.ValidateJSONAgainstSchema(schema, badConfidence))
}

func TestSanitizeThenValidate(t *testing.T) {
	schema := llm.BuildEnrichmentJSONSchema([]string{"transport", "uncategorized"})
	messy := []byte(`{"vendor_name":"Acme","category":"transport","confidence":3.0,"reasoning":"because"}`)

	require.Error(t, llm.ValidateJSONAgainstSchema(schema, messy))

	cleaned, dropped, err := llm.SanitizeFields(messy)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"confidence", "reasoning"}, dropped)
	assert.NoError(t, llm.ValidateJSONAgainstSchema(schema, cleaned))
}
