package llm

import (
	"encoding/json"
	"strings"
)

// enrichmentKeys are the only keys the enrichment schema knows about.
var enrichmentKeys = map[string]struct{}{
	"vendor_name":      {},
	"category":         {},
	"transaction_type": {},
	"confidence":       {},
}

// SanitizeFields removes or normalizes fields that don't meet the schema so
// the remainder can still validate. Every field here is optional, so
// dropping an offender is always safe.
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	for k, v := range m {
		if _, known := enrichmentKeys[k]; !known {
			delete(m, k)
			dropped = append(dropped, k)
			continue
		}
		if v == nil {
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	if v, ok := m["vendor_name"].(string); ok {
		s := strings.TrimSpace(v)
		if s == "" {
			delete(m, "vendor_name")
			dropped = append(dropped, "vendor_name")
		} else {
			m["vendor_name"] = s
		}
	}

	if v, ok := m["transaction_type"].(string); ok {
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "income", "expense", "unknown":
			m["transaction_type"] = s
		default:
			delete(m, "transaction_type")
			dropped = append(dropped, "transaction_type")
		}
	}

	if v, ok := m["confidence"].(float64); ok {
		if v < 0 || v > 1 {
			delete(m, "confidence")
			dropped = append(dropped, "confidence")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
