package extraction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/extraction"
)

func TestDefaultConfig(t *testing.T) {
	cfg := extraction.DefaultConfig()

	assert.Equal(t, "v1", cfg.PatternSetVersion)
	assert.Equal(t, 0.5, cfg.MinAmountConfidence)
	assert.Equal(t, 0.5, cfg.ReviewThreshold)
	assert.Equal(t, 0.1, cfg.Scoring.CurrencyAdjacencyBonus)
	assert.Equal(t, 0.1, cfg.Scoring.PlausibleYearBonus)
	assert.Equal(t, 0.2, cfg.Scoring.AmbiguityPenalty)
	assert.Equal(t, 5, cfg.Scoring.YearWindow)

	var total float64
	for _, w := range cfg.Scoring.FieldWeights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	// taxonomy always ends with the fallback bucket
	names := cfg.CategoryNames()
	require.NotEmpty(t, names)
	assert.Equal(t, string(constants.Uncategorized), names[len(names)-1])
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
pattern_set_version: v2
companies:
  - Bamburi Cement
scoring:
  ambiguity_penalty: 0.3
review_threshold: 0.7
categories:
  - name: utilities
    keywords: [kplc]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := extraction.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "v2", cfg.PatternSetVersion)
	assert.Equal(t, 0.3, cfg.Scoring.AmbiguityPenalty)
	assert.Equal(t, 0.7, cfg.ReviewThreshold)
	assert.Equal(t, 1, cfg.Gazetteer.Size())
	require.Len(t, cfg.Categories, 1)
	assert.Equal(t, "utilities", cfg.Categories[0].Name)

	// untouched knobs keep their defaults
	assert.Equal(t, 0.1, cfg.Scoring.CurrencyAdjacencyBonus)
	assert.Equal(t, 0.5, cfg.MinAmountConfidence)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := extraction.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
extra_patterns:
  - field: invoice_number
    regex: "([unclosed"
    base_confidence: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := extraction.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
}

func TestLoadConfigRejectsUnknownPatternField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
extra_patterns:
  - field: serial_number
    regex: "([A-Z0-9]+)"
    base_confidence: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := extraction.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serial_number")
}

func TestLoadConfigRejectsBadBaseConfidence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
extra_patterns:
  - field: reference_number
    regex: "([A-Z0-9]+)"
    base_confidence: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := extraction.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsDuplicateCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
categories:
  - name: utilities
    keywords: [kplc]
  - name: utilities
    keywords: [water]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := extraction.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category")
}

func TestLoadConfigRejectsCategoryWithoutKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	yaml := `
categories:
  - name: utilities
    keywords: []
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := extraction.LoadConfig(path)
	assert.Error(t, err)
}

func TestNewLibraryRejectsMalformedRegex(t *testing.T) {
	_, err := extraction.NewLibrary("v1", []string{"KES"}, []extraction.PatternSpec{
		{Field: "amount", Regex: "([0-9", BaseConfidence: 0.5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed pattern")
}
