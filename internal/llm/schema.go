package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildEnrichmentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate what comes back.
func BuildEnrichmentJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"vendor_name":      map[string]any{"type": "string", "minLength": 1},
		"category":         map[string]any{"type": "string"},
		"transaction_type": map[string]any{"type": "string", "enum": []string{"income", "expense", "unknown"}},
		"confidence":       map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// ValidateJSONAgainstSchema checks a raw model response against the
// enrichment schema. A non-nil error means the payload must not be merged
// into pattern output.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal enrichment schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("enrichment.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add enrichment schema: %w", err)
	}
	schema, err := compiler.Compile("enrichment.json")
	if err != nil {
		return fmt.Errorf("compile enrichment schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal enrichment response: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("enrichment response does not match schema: %w", err)
	}
	return nil
}
