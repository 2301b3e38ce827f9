package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/common"
)

// dateOrder tags a date pattern with the submatch ordering its regex emits.
type dateOrder string

const (
	orderYMD    dateOrder = "ymd"     // (year)(month)(day)
	orderDMY    dateOrder = "dmy"     // (day)(month)(year)
	orderDMonY  dateOrder = "d-mon-y" // (day)(month name)(year)
	orderParsed dateOrder = ""        // not a date pattern
)

// Pattern is a compiled recognizer for one field kind.
type Pattern struct {
	Field          constants.FieldKind
	Source         string
	BaseConfidence float64
	Labeled        bool // anchored on an explicit label like "Invoice #"

	re            *regexp.Regexp
	valueGroup    int
	currencyGroup int
	order         dateOrder
}

// Library holds all compiled patterns, keyed by field kind. It is immutable
// after construction and safe to share across workers without locking.
type Library struct {
	version string
	byField map[constants.FieldKind][]Pattern
}

// patternSpec is an uncompiled built-in pattern definition.
type patternSpec struct {
	field         constants.FieldKind
	source        string
	base          float64
	labeled       bool
	valueGroup    int
	currencyGroup int
	order         dateOrder
}

// NewLibrary compiles the built-in patterns plus any external specs.
// A malformed regex anywhere is a fatal configuration error.
func NewLibrary(version string, currencies []string, extra []PatternSpec) (*Library, error) {
	cur := currencyAlternation(currencies)

	specs := []patternSpec{
		// amounts
		{
			field:         constants.FieldAmount,
			source:        fmt.Sprintf(`(?i)\b(?:total|grand total|amount due|balance due|net amount|amount)\s*[:\-]?\s*(?:(%s)\.?\s*)?([0-9][0-9,]*(?:\.[0-9]{1,2})?)\b`, cur),
			base:          0.85,
			labeled:       true,
			currencyGroup: 1,
			valueGroup:    2,
		},
		{
			field:         constants.FieldAmount,
			source:        fmt.Sprintf(`(?i)(%s)\.?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)\b`, cur),
			base:          0.75,
			currencyGroup: 1,
			valueGroup:    2,
		},
		{
			field:         constants.FieldAmount,
			source:        fmt.Sprintf(`(?i)\b([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s*(%s)\b`, cur),
			base:          0.70,
			valueGroup:    1,
			currencyGroup: 2,
		},
		{
			field:      constants.FieldAmount,
			source:     `\b([0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]{2})?)\b`,
			base:       0.40,
			valueGroup: 1,
		},
		// dates
		{
			field:      constants.FieldDate,
			source:     `\b(\d{4})-(\d{2})-(\d{2})\b`,
			base:       0.80,
			valueGroup: 0,
			order:      orderYMD,
		},
		{
			field:      constants.FieldDate,
			source:     `\b(\d{1,2})/(\d{1,2})/(\d{4})\b`,
			base:       0.70,
			valueGroup: 0,
			order:      orderDMY,
		},
		{
			field:      constants.FieldDate,
			source:     `(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{4})\b`,
			base:       0.75,
			valueGroup: 0,
			order:      orderDMonY,
		},
		// invoice numbers
		{
			field:      constants.FieldInvoiceNumber,
			source:     `(?i)\binvoice\s*(?:no\.?|number|#)?\s*[:#]?\s*([A-Z0-9][A-Z0-9/\-]{2,})`,
			base:       0.90,
			labeled:    true,
			valueGroup: 1,
		},
		{
			field:      constants.FieldInvoiceNumber,
			source:     `\b(INV[-/][A-Z0-9/\-]+)\b`,
			base:       0.85,
			labeled:    true,
			valueGroup: 1,
		},
		// reference numbers
		{
			field:      constants.FieldReference,
			source:     `(?i)\bref(?:erence)?\s*(?:no\.?|number|#)?\s*[:#]?\s*([A-Z0-9][A-Z0-9/\-]{2,})\b`,
			base:       0.80,
			labeled:    true,
			valueGroup: 1,
		},
		// vendors (gazetteer matches are produced separately)
		{
			field:      constants.FieldVendor,
			source:     `\b(?:From|To|Bill To|Vendor|Supplier|Issued By)\s*:\s*([A-Z][A-Z0-9&.,'\- ]{2,60})`,
			base:       0.60,
			labeled:    true,
			valueGroup: 1,
		},
		// payment methods
		{
			field:      constants.FieldPaymentMethod,
			source:     `(?i)\b(?:paid\s+(?:by|via|through)|payment\s+(?:method|mode))\s*[:\-]?\s*(m-?pesa|mobile money|airtel money|cash|cheque|check|bank transfer|eft|rtgs|wire transfer)\b`,
			base:       0.85,
			labeled:    true,
			valueGroup: 1,
		},
		{
			field:      constants.FieldPaymentMethod,
			source:     `(?i)\b(m-?pesa|mobile money|airtel money|cheque|bank transfer|eft|rtgs|wire transfer)\b`,
			base:       0.65,
			valueGroup: 1,
		},
		// tax
		{
			field:         constants.FieldTax,
			source:        fmt.Sprintf(`(?i)\b(?:vat|tax|v\.a\.t\.?)\s*(?:\(?\d{1,2}(?:\.\d+)?%%\)?)?\s*[:\-]?\s*(?:(%s)\.?\s*)?([0-9][0-9,]*(?:\.[0-9]{1,2})?)\b`, cur),
			base:          0.80,
			labeled:       true,
			currencyGroup: 1,
			valueGroup:    2,
		},
	}

	for _, ps := range extra {
		field := constants.FieldKind(ps.Field)
		if !validFieldKind(field) {
			return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("extra pattern has unknown field %q", ps.Field), common.ErrConfig)
		}
		base := ps.BaseConfidence
		if base <= 0 || base > 1 {
			return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("extra pattern for %q has base confidence %v outside (0,1]", ps.Field, base), common.ErrConfig)
		}
		specs = append(specs, patternSpec{
			field:      field,
			source:     ps.Regex,
			base:       base,
			labeled:    ps.Labeled,
			valueGroup: 1,
		})
	}

	lib := &Library{
		version: version,
		byField: make(map[constants.FieldKind][]Pattern),
	}
	for _, s := range specs {
		re, err := regexp.Compile(s.source)
		if err != nil {
			return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("malformed pattern for %s: %s", s.field, s.source), err)
		}
		lib.byField[s.field] = append(lib.byField[s.field], Pattern{
			Field:          s.field,
			Source:         s.source,
			BaseConfidence: s.base,
			Labeled:        s.labeled,
			re:             re,
			valueGroup:     s.valueGroup,
			currencyGroup:  s.currencyGroup,
			order:          s.order,
		})
	}
	return lib, nil
}

// Get returns the patterns registered for a field kind, in declaration order.
func (l *Library) Get(field constants.FieldKind) []Pattern {
	return l.byField[field]
}

// Version returns the pattern set version stamped onto extracted records.
func (l *Library) Version() string {
	return l.version
}

func validFieldKind(f constants.FieldKind) bool {
	for _, k := range constants.AllFieldKinds {
		if k == f {
			return true
		}
	}
	return false
}

func currencyAlternation(currencies []string) string {
	parts := make([]string, len(currencies))
	for i, c := range currencies {
		parts[i] = regexp.QuoteMeta(c)
	}
	return strings.Join(parts, "|")
}
