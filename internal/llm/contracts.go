package llm

import "context"

// EnrichRequest carries the pattern-stage output the enricher may refine.
type EnrichRequest struct {
	RawText           string
	VendorName        string
	Category          string
	TransactionType   string
	AllowedCategories []string
}

// Fields is the normalized partial override we want back from the model.
// Every field is optional; empty means "no opinion".
type Fields struct {
	VendorName      string  `json:"vendor_name,omitempty"`
	Category        string  `json:"category,omitempty"`
	TransactionType string  `json:"transaction_type,omitempty"`
	Confidence      float32 `json:"confidence,omitempty"` // 0..1
}

// Enricher is the interface the record builder depends on. Implementations
// must return within a bounded timeout or error; the pattern-only path never
// waits on them indefinitely.
type Enricher interface {
	Enrich(ctx context.Context, req EnrichRequest) (Fields, []byte /*rawJSON*/, error)
}
