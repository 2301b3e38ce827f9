package extraction

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biasharaledger/docextract/constants"
)

// Candidate is a raw pattern match before scoring and selection.
type Candidate struct {
	Field      constants.FieldKind
	Raw        string
	Normalized string

	// populated per field kind
	Amount   decimal.Decimal
	Currency string
	Date     time.Time
	Payment  constants.PaymentMethod

	Position         int
	BaseConfidence   float64
	Labeled          bool
	CurrencyAdjacent bool
}

// Extractor applies the pattern library to document text. Extraction is a
// pure function of (text, pattern set version); the only side effect is
// logging dropped candidates.
type Extractor struct {
	cfg    *Config
	logger *slog.Logger
}

func NewExtractor(cfg *Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// currencySymbols maps symbol tokens to ISO codes; word tokens are folded
// to their canonical code.
var currencySymbols = map[string]string{
	"$": "USD", "€": "EUR", "£": "GBP", "KSH": "KES",
}

// Extract runs every pattern for every field kind over text, in the fixed
// field order, and returns all candidates that survive normalization.
// Candidates that fail to normalize (for example the date "32/13/2024") are
// dropped with a log line, never an error; partial extraction is the
// expected steady state.
func (e *Extractor) Extract(text string) []Candidate {
	if text == "" {
		return nil
	}

	var out []Candidate
	dropped := 0

	for _, field := range constants.AllFieldKinds {
		if field == constants.FieldVendor {
			out = append(out, e.cfg.Gazetteer.Match(text)...)
		}
		for _, p := range e.cfg.Library.Get(field) {
			for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
				cand, ok := e.normalize(text, p, m)
				if !ok {
					dropped++
					continue
				}
				out = append(out, cand)
			}
		}
	}

	if dropped > 0 {
		e.logger.Debug("candidates dropped during normalization", "dropped", dropped, "kept", len(out))
	}
	return out
}

// normalize converts one regex match into a candidate, parsing the value
// into its canonical form. m is the submatch index slice from
// FindAllStringSubmatchIndex.
func (e *Extractor) normalize(text string, p Pattern, m []int) (Candidate, bool) {
	group := func(i int) string {
		if 2*i+1 >= len(m) || m[2*i] < 0 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}

	c := Candidate{
		Field:          p.Field,
		Raw:            group(0),
		Position:       m[0],
		BaseConfidence: p.BaseConfidence,
		Labeled:        p.Labeled,
	}

	switch p.Field {
	case constants.FieldAmount, constants.FieldTax:
		raw := group(p.valueGroup)
		value, err := parseAmount(raw)
		if err != nil {
			e.logger.Debug("candidate dropped", "field", p.Field, "raw", raw, "reason", err.Error())
			return Candidate{}, false
		}
		c.Amount = value
		c.Normalized = value.String()
		if cur := group(p.currencyGroup); p.currencyGroup > 0 && cur != "" {
			c.Currency = canonicalCurrency(cur)
			c.CurrencyAdjacent = true
		}

	case constants.FieldDate:
		date, err := parseDate(p.order, group(1), group(2), group(3))
		if err != nil {
			e.logger.Debug("candidate dropped", "field", p.Field, "raw", c.Raw, "reason", err.Error())
			return Candidate{}, false
		}
		c.Date = date
		c.Normalized = date.Format("2006-01-02")

	case constants.FieldInvoiceNumber, constants.FieldReference:
		v := strings.TrimRight(group(p.valueGroup), ".,:;-/")
		if len(v) < 3 {
			return Candidate{}, false
		}
		c.Normalized = v

	case constants.FieldVendor:
		v := strings.Join(strings.Fields(group(p.valueGroup)), " ")
		v = strings.TrimRight(v, " .,-'&")
		if len(v) < 3 {
			return Candidate{}, false
		}
		c.Normalized = v

	case constants.FieldPaymentMethod:
		pm, ok := constants.NormalizePaymentMethod(group(p.valueGroup))
		if !ok {
			return Candidate{}, false
		}
		c.Payment = pm
		c.Normalized = string(pm)

	default:
		c.Normalized = group(p.valueGroup)
	}

	return c, true
}

func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if value.Sign() <= 0 {
		return decimal.Decimal{}, errNonPositiveAmount
	}
	return value, nil
}

var (
	errNonPositiveAmount = errors.New("amount is not positive")
	errBadDate           = errors.New("not a calendar date")
)

// parseDate builds a calendar date from submatch groups and rejects
// impossible dates by round-tripping through time.Date.
func parseDate(order dateOrder, g1, g2, g3 string) (time.Time, error) {
	var year, day int
	var month time.Month

	switch order {
	case orderYMD:
		y, _ := strconv.Atoi(g1)
		mo, _ := strconv.Atoi(g2)
		d, _ := strconv.Atoi(g3)
		year, month, day = y, time.Month(mo), d
	case orderDMY:
		d, _ := strconv.Atoi(g1)
		mo, _ := strconv.Atoi(g2)
		y, _ := strconv.Atoi(g3)
		year, month, day = y, time.Month(mo), d
	case orderDMonY:
		d, _ := strconv.Atoi(g1)
		mo, ok := monthAbbrev[strings.ToLower(g2)]
		if !ok {
			return time.Time{}, errBadDate
		}
		y, _ := strconv.Atoi(g3)
		year, month, day = y, mo, d
	default:
		return time.Time{}, errBadDate
	}

	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, errBadDate
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject it
		return time.Time{}, errBadDate
	}
	return t, nil
}

func canonicalCurrency(raw string) string {
	u := strings.ToUpper(strings.TrimSpace(raw))
	if iso, ok := currencySymbols[u]; ok {
		return iso
	}
	return u
}
