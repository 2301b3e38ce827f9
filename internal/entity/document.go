package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a text-extracted source document for data transfer
// between layers. The engine reads RawText and never mutates the document
// beyond its processing status.
type Document struct {
	ID                uuid.UUID  `json:"id"`
	CompanyID         uuid.UUID  `json:"company_id"`
	RawText           string     `json:"raw_text"`
	SourceFormat      string     `json:"source_format"`
	Status            string     `json:"status"`
	PatternSetVersion *string    `json:"pattern_set_version,omitempty"`
	AttemptCount      int        `json:"attempt_count"`
	LastErrorKind     *string    `json:"last_error_kind,omitempty"`
	LastErrorMessage  *string    `json:"last_error_message,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`
}
