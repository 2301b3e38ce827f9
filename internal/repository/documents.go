package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, companyID uuid.UUID, rawText, sourceFormat string) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	FetchPendingDocuments(ctx context.Context, companyID uuid.UUID, patternSetVersion string, limit int) ([]*entity.Document, error)
	ClaimDocument(ctx context.Context, documentID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, documentID uuid.UUID, patternSetVersion string) error
	MarkFailed(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, attempt int) error
	MarkDeadLetter(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, message string) error
	FlagForReprocess(ctx context.Context, companyID uuid.UUID, patternSetVersion string) (int, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, companyID uuid.UUID, rawText, sourceFormat string) (*entity.Document, error) {
	row, err := r.ent.Document.
		Create().
		SetCompanyID(companyID).
		SetRawText(rawText).
		SetSourceFormat(sourceFormat).
		SetStatus(string(constants.DocStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "company_id", companyID, "error", err)
		return nil, err
	}
	return ToDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDocument(row), nil
}

// FetchPendingDocuments returns documents lacking a current extraction or
// carrying a stale pattern set version, scoped strictly to the company.
func (r *documentRepo) FetchPendingDocuments(ctx context.Context, companyID uuid.UUID, patternSetVersion string, limit int) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			document.CompanyID(companyID),
			document.Or(
				document.StatusIn(
					string(constants.DocStatusPending),
					string(constants.DocStatusFailed),
				),
				document.And(
					document.StatusEQ(string(constants.DocStatusCompleted)),
					document.Or(
						document.PatternSetVersionIsNil(),
						document.PatternSetVersionNEQ(patternSetVersion),
					),
				),
			),
		).
		Order(document.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("fetch pending failed", "company_id", companyID, "error", err)
		return nil, err
	}

	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = ToDocument(row)
	}
	return out, nil
}

// ClaimDocument transitions a document to IN_PROGRESS with a single
// conditional UPDATE. Returns false when another worker holds the claim or
// the document is dead-lettered.
func (r *documentRepo) ClaimDocument(ctx context.Context, documentID uuid.UUID) (bool, error) {
	n, err := r.ent.Document.Update().
		Where(
			document.IDEQ(documentID),
			document.StatusNotIn(
				string(constants.DocStatusInProgress),
				string(constants.DocStatusDeadLetter),
			),
		).
		SetStatus(string(constants.DocStatusInProgress)).
		Save(ctx)
	if err != nil {
		r.log.Error("claim failed", "document_id", documentID, "error", err)
		return false, err
	}
	return n == 1, nil
}

func (r *documentRepo) MarkCompleted(ctx context.Context, documentID uuid.UUID, patternSetVersion string) error {
	err := r.ent.Document.UpdateOneID(documentID).
		SetStatus(string(constants.DocStatusCompleted)).
		SetPatternSetVersion(patternSetVersion).
		SetAttemptCount(0).
		ClearLastErrorKind().
		ClearLastErrorMessage().
		SetProcessedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark completed failed", "document_id", documentID, "error", err)
		return err
	}
	r.log.Info("document completed", "document_id", documentID, "pattern_set_version", patternSetVersion)
	return nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, attempt int) error {
	err := r.ent.Document.UpdateOneID(documentID).
		SetStatus(string(constants.DocStatusFailed)).
		SetAttemptCount(attempt).
		SetLastErrorKind(string(kind)).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark failed failed", "document_id", documentID, "error", err)
		return err
	}
	r.log.Warn("document failed", "document_id", documentID, "kind", kind, "attempt", attempt)
	return nil
}

func (r *documentRepo) MarkDeadLetter(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, message string) error {
	if len(message) > 1000 {
		message = message[:1000]
	}
	err := r.ent.Document.UpdateOneID(documentID).
		SetStatus(string(constants.DocStatusDeadLetter)).
		SetLastErrorKind(string(kind)).
		SetLastErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark dead-letter failed", "document_id", documentID, "error", err)
		return err
	}
	r.log.Warn("document dead-lettered", "document_id", documentID, "kind", kind)
	return nil
}

// FlagForReprocess resets completed documents on a different pattern set
// version back to PENDING. Returns how many documents were flagged.
func (r *documentRepo) FlagForReprocess(ctx context.Context, companyID uuid.UUID, patternSetVersion string) (int, error) {
	n, err := r.ent.Document.Update().
		Where(
			document.CompanyID(companyID),
			document.StatusEQ(string(constants.DocStatusCompleted)),
			document.Or(
				document.PatternSetVersionIsNil(),
				document.PatternSetVersionNEQ(patternSetVersion),
			),
		).
		SetStatus(string(constants.DocStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("flag for reprocess failed", "company_id", companyID, "error", err)
		return 0, err
	}
	r.log.Info("documents flagged for reprocess", "company_id", companyID, "count", n)
	return n, nil
}
