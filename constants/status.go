package constants

// DocumentStatus is the canonical processing state for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusPending    DocumentStatus = "PENDING"     // no current extraction, or flagged for reprocessing
	DocStatusInProgress DocumentStatus = "IN_PROGRESS" // claimed by a worker
	DocStatusCompleted  DocumentStatus = "COMPLETED"   // extraction persisted for the current pattern set
	DocStatusFailed     DocumentStatus = "FAILED"      // transient failure, eligible for retry
	DocStatusDeadLetter DocumentStatus = "DEAD_LETTER" // terminal, operator intervention required
)

// DocumentStatuses holds the allowed values for the documents.status column.
var DocumentStatuses = []string{
	string(DocStatusPending),
	string(DocStatusInProgress),
	string(DocStatusCompleted),
	string(DocStatusFailed),
	string(DocStatusDeadLetter),
}

// ErrorKind classifies extraction failures. Callers only ever see the kind,
// never the underlying error.
type ErrorKind string

const (
	ErrKindTimeout        ErrorKind = "TIMEOUT"
	ErrKindPersistence    ErrorKind = "PERSISTENCE"
	ErrKindTenantMismatch ErrorKind = "TENANT_ISOLATION"
	ErrKindInternal       ErrorKind = "INTERNAL"
)

// SourceFormats holds the allowed values for the documents.source_format column.
// Text extraction happens upstream; the format is informational here.
var SourceFormats = []string{"PDF", "IMAGE", "DOCX", "TXT"}
