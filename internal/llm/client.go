package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config for the enrichment client. The endpoint is any OpenAI-compatible
// chat completions server, typically a local model.
type Config struct {
	BaseURL     string // e.g. http://localhost:11434/v1
	Model       string
	APIKey      string // optional for local servers
	Temperature float32
	Timeout     time.Duration // hard bound on a single enrichment call
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "llama3.1:8b"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Enrich implements Enricher over text-only chat/completions. The call is
// bounded by the configured timeout; on any failure the caller falls back to
// pattern-only output.
func (c *Client) Enrich(ctx context.Context, req EnrichRequest) (Fields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	c.logger.Info("llm.enrich.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(req.RawText),
		"allowed_categories", len(req.AllowedCategories),
	)

	schema := BuildEnrichmentJSONSchema(req.AllowedCategories)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req)},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Warn("llm.enrich.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Fields{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return Fields{}, raw, fmt.Errorf("decode completions response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return Fields{}, raw, fmt.Errorf("no choices in completions response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first; on failure sanitize the optionals and retry.
	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, droppedKeys, sErr := SanitizeFields(content)
		if sErr != nil {
			return Fields{}, content, fmt.Errorf("sanitize enrichment: %w", sErr)
		}
		if vErr := ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return Fields{}, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.enrich.sanitize_applied",
			"req_id", rid, "dropped", droppedKeys,
		)
		content = cleaned
	}

	var out Fields
	if err := json.Unmarshal(content, &out); err != nil {
		return Fields{}, content, fmt.Errorf("unmarshal enrichment fields: %w", err)
	}

	c.logger.Info("llm.enrich.ok",
		"req_id", rid,
		"vendor", out.VendorName,
		"category", out.Category,
		"transaction_type", out.TransactionType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("enrichment response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("enrichment status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt(req EnrichRequest) string {
	parts := []string{
		"You refine fields extracted from a financial document. Return ONLY JSON that matches the JSON Schema provided.",
		"Only include a field when the document clearly supports it; omit anything uncertain.",
		"Never output null. If a field is not present, omit it.",
	}
	if len(req.AllowedCategories) > 0 {
		parts = append(parts, "Allowed categories (enum): "+strings.Join(req.AllowedCategories, ", ")+".")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req EnrichRequest) string {
	var b strings.Builder
	b.WriteString("Pattern extraction suggested: vendor=")
	b.WriteString(orDash(req.VendorName))
	b.WriteString(", category=")
	b.WriteString(orDash(req.Category))
	b.WriteString(", transaction_type=")
	b.WriteString(orDash(req.TransactionType))
	b.WriteString("\n\nDocument text (first ~3k chars):\n")
	if len(req.RawText) > 3000 {
		b.WriteString(req.RawText[:3000])
	} else {
		b.WriteString(req.RawText)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
