package extraction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/common"
)

// CategoryRule maps a category name to the keywords that select it. Rules
// are evaluated in order; the first rule with a keyword present in the
// document wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// PatternSpec is an externally supplied pattern, merged into the built-in
// library at load time.
type PatternSpec struct {
	Field          string  `yaml:"field"`
	Regex          string  `yaml:"regex"`
	BaseConfidence float64 `yaml:"base_confidence"`
	Labeled        bool    `yaml:"labeled"`
}

// ScoringConfig carries the tunable scoring constants. The numeric defaults
// are starting points, not fixed law; tenants tune them in the config file.
type ScoringConfig struct {
	CurrencyAdjacencyBonus float64                         `yaml:"currency_adjacency_bonus"`
	PlausibleYearBonus     float64                         `yaml:"plausible_year_bonus"`
	AmbiguityPenalty       float64                         `yaml:"ambiguity_penalty"`
	YearWindow             int                             `yaml:"year_window"`
	FieldWeights           map[constants.FieldKind]float64 `yaml:"field_weights"`
}

// Config is the immutable extraction configuration. It is loaded once at
// startup and passed explicitly to every component; nothing in this package
// keeps global state.
type Config struct {
	PatternSetVersion   string
	Library             *Library
	Gazetteer           *Gazetteer
	Categories          []CategoryRule
	Scoring             ScoringConfig
	MinAmountConfidence float64
	ReviewThreshold     float64
}

// fileConfig is the raw YAML shape before compilation and defaulting.
type fileConfig struct {
	PatternSetVersion   string          `yaml:"pattern_set_version"`
	Currencies          []string        `yaml:"currencies"`
	Companies           []string        `yaml:"companies"`
	Categories          []CategoryRule  `yaml:"categories"`
	ExtraPatterns       []PatternSpec   `yaml:"extra_patterns"`
	Scoring             ScoringConfig   `yaml:"scoring"`
	MinAmountConfidence float64         `yaml:"min_amount_confidence"`
	ReviewThreshold     float64         `yaml:"review_threshold"`
}

// LoadConfig reads the extraction config from a YAML file, applies defaults,
// and compiles the pattern library. Any malformed regex or invalid taxonomy
// entry is a fatal configuration error here, never at document time.
func LoadConfig(path string) (*Config, error) {
	fc := fileConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("reading %s", path), err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("parsing %s", path), err)
		}
	}
	return buildConfig(fc)
}

// DefaultConfig returns the built-in configuration with no external
// overrides. Used for tests and for running without a config file.
func DefaultConfig() *Config {
	cfg, err := buildConfig(fileConfig{})
	if err != nil {
		// built-in patterns are covered by tests; a failure here is a bug
		panic(err)
	}
	return cfg
}

func buildConfig(fc fileConfig) (*Config, error) {
	applyDefaults(&fc)

	if err := validateTaxonomy(fc.Categories); err != nil {
		return nil, err
	}

	lib, err := NewLibrary(fc.PatternSetVersion, fc.Currencies, fc.ExtraPatterns)
	if err != nil {
		return nil, err
	}

	return &Config{
		PatternSetVersion:   fc.PatternSetVersion,
		Library:             lib,
		Gazetteer:           NewGazetteer(fc.Companies),
		Categories:          fc.Categories,
		Scoring:             fc.Scoring,
		MinAmountConfidence: fc.MinAmountConfidence,
		ReviewThreshold:     fc.ReviewThreshold,
	}, nil
}

func applyDefaults(fc *fileConfig) {
	if fc.PatternSetVersion == "" {
		fc.PatternSetVersion = "v1"
	}
	if len(fc.Currencies) == 0 {
		fc.Currencies = []string{"KES", "KSH", "USD", "EUR", "GBP", "TZS", "UGX", "$", "€", "£"}
	}
	if len(fc.Categories) == 0 {
		fc.Categories = defaultCategories()
	}
	if fc.Scoring.CurrencyAdjacencyBonus == 0 {
		fc.Scoring.CurrencyAdjacencyBonus = 0.1
	}
	if fc.Scoring.PlausibleYearBonus == 0 {
		fc.Scoring.PlausibleYearBonus = 0.1
	}
	if fc.Scoring.AmbiguityPenalty == 0 {
		fc.Scoring.AmbiguityPenalty = 0.2
	}
	if fc.Scoring.YearWindow == 0 {
		fc.Scoring.YearWindow = 5
	}
	if len(fc.Scoring.FieldWeights) == 0 {
		fc.Scoring.FieldWeights = map[constants.FieldKind]float64{
			constants.FieldAmount:        0.30,
			constants.FieldDate:          0.25,
			constants.FieldVendor:        0.15,
			constants.FieldInvoiceNumber: 0.15,
			constants.FieldTax:           0.05,
			constants.FieldPaymentMethod: 0.05,
			constants.FieldReference:     0.05,
		}
	}
	if fc.MinAmountConfidence == 0 {
		fc.MinAmountConfidence = 0.5
	}
	if fc.ReviewThreshold == 0 {
		fc.ReviewThreshold = 0.5
	}
}

func validateTaxonomy(rules []CategoryRule) error {
	seen := map[string]struct{}{}
	for i, r := range rules {
		if r.Name == "" {
			return common.NewAppError("CONFIG_ERROR", fmt.Sprintf("category rule %d has no name", i), common.ErrConfig)
		}
		if _, dup := seen[r.Name]; dup {
			return common.NewAppError("CONFIG_ERROR", fmt.Sprintf("duplicate category %q", r.Name), common.ErrConfig)
		}
		seen[r.Name] = struct{}{}
		if len(r.Keywords) == 0 {
			return common.NewAppError("CONFIG_ERROR", fmt.Sprintf("category %q has no keywords", r.Name), common.ErrConfig)
		}
	}
	return nil
}

// CategoryNames returns the taxonomy names in rule order, used to constrain
// enrichment output.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories)+1)
	for _, r := range c.Categories {
		names = append(names, r.Name)
	}
	names = append(names, string(constants.Uncategorized))
	return names
}

func defaultCategories() []CategoryRule {
	return []CategoryRule{
		{Name: string(constants.Construction), Keywords: []string{"cement", "contractor", "construction", "building materials", "hardware", "quarry", "aggregate"}},
		{Name: string(constants.Utilities), Keywords: []string{"kplc", "electricity", "water bill", "nairobi water", "power bill", "umeme"}},
		{Name: string(constants.Government), Keywords: []string{"county", "ministry", "kra", "revenue authority", "permit", "levy", "stamp duty"}},
		{Name: string(constants.Transport), Keywords: []string{"fuel", "diesel", "petrol", "freight", "logistics", "courier"}},
		{Name: string(constants.RentAndLeases), Keywords: []string{"rent", "lease", "landlord", "tenancy"}},
		{Name: string(constants.Supplies), Keywords: []string{"stationery", "office supplies", "toner", "printing paper"}},
		{Name: string(constants.ProfessionalServices), Keywords: []string{"legal fees", "consultancy", "audit", "advocate", "professional fees"}},
		{Name: string(constants.Salaries), Keywords: []string{"salary", "wages", "payroll"}},
		{Name: string(constants.Telecommunications), Keywords: []string{"airtime", "safaricom", "data bundle", "internet service"}},
	}
}
