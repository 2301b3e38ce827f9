package extraction

import (
	"strings"

	"github.com/biasharaledger/docextract/constants"
)

// Classification is the classifier's verdict for one document.
type Classification struct {
	Type     constants.TransactionType
	Category string
}

// Classifier derives transaction type and category from keyword heuristics
// plus the matched vendor identity.
type Classifier struct {
	cfg *Config
}

func NewClassifier(cfg *Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// cueWindow is how far back from a vendor mention directional cues are
// looked for.
const cueWindow = 24

// Classify derives the money-flow direction and the category for a
// document. The vendor appearing as sender ("From: <vendor>") implies
// expense; as recipient ("To:", "Bill To:") implies income. Without a
// directional cue the type stays unknown, never guessed.
func (c *Classifier) Classify(text, vendorName string) Classification {
	return Classification{
		Type:     c.transactionType(text, vendorName),
		Category: c.category(text),
	}
}

func (c *Classifier) transactionType(text, vendorName string) constants.TransactionType {
	if vendorName == "" || text == "" {
		return constants.TxnUnknown
	}

	lowered := strings.ToLower(text)
	pos := strings.Index(lowered, strings.ToLower(vendorName))
	if pos < 0 {
		return constants.TxnUnknown
	}

	start := pos - cueWindow
	if start < 0 {
		start = 0
	}
	window := lowered[start:pos]

	// nearest cue before the vendor mention wins
	fromIdx := strings.LastIndex(window, "from")
	toIdx := strings.LastIndex(window, "bill to")
	if toIdx < 0 {
		toIdx = strings.LastIndex(window, "to:")
	}

	switch {
	case fromIdx < 0 && toIdx < 0:
		return constants.TxnUnknown
	case fromIdx > toIdx:
		return constants.TxnExpense
	default:
		return constants.TxnIncome
	}
}

func (c *Classifier) category(text string) string {
	if text == "" {
		return string(constants.Uncategorized)
	}
	lowered := strings.ToLower(text)
	for _, rule := range c.cfg.Categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return rule.Name
			}
		}
	}
	return string(constants.Uncategorized)
}
