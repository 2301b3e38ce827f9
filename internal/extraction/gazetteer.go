package extraction

import (
	"strings"

	"github.com/biasharaledger/docextract/constants"
)

// Gazetteer is a lookup table of known company names. Entries come from the
// extraction config so new companies can be added without code changes. The
// gazetteer match only feeds vendor_name; it never overrides the tenant a
// document belongs to.
type Gazetteer struct {
	names   []string
	lowered []string
}

const (
	gazetteerExactConfidence = 0.85
	gazetteerLooseConfidence = 0.75
)

func NewGazetteer(names []string) *Gazetteer {
	g := &Gazetteer{
		names:   make([]string, 0, len(names)),
		lowered: make([]string, 0, len(names)),
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		g.names = append(g.names, n)
		g.lowered = append(g.lowered, strings.ToLower(n))
	}
	return g
}

// Match scans text for known company names and returns vendor candidates.
// Exact-case substring matches score higher than case-insensitive ones.
func (g *Gazetteer) Match(text string) []Candidate {
	if len(g.names) == 0 || text == "" {
		return nil
	}
	loweredText := strings.ToLower(text)

	var out []Candidate
	for i, name := range g.names {
		pos := strings.Index(text, name)
		conf := gazetteerExactConfidence
		if pos < 0 {
			pos = strings.Index(loweredText, g.lowered[i])
			conf = gazetteerLooseConfidence
		}
		if pos < 0 {
			continue
		}
		out = append(out, Candidate{
			Field:          constants.FieldVendor,
			Raw:            text[pos : pos+len(name)],
			Normalized:     name,
			Position:       pos,
			BaseConfidence: conf,
			Labeled:        true,
		})
	}
	return out
}

// Size reports how many company names are loaded.
func (g *Gazetteer) Size() int {
	return len(g.names)
}
