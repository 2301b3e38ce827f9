package repository

import (
	"log/slog"

	"github.com/biasharaledger/docextract/gen/ent"
)

// Store bundles the document and extraction repositories behind one value
// so callers that drive a batch run hold a single dependency.
type Store struct {
	DocumentRepository
	ExtractedDataRepository
}

func NewStore(entc *ent.Client, log *slog.Logger) *Store {
	return &Store{
		DocumentRepository:      NewDocumentRepository(entc, log),
		ExtractedDataRepository: NewExtractedDataRepository(entc, log),
	}
}
