package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/entity"
)

type ExtractedDataRepository interface {
	SaveExtractedData(ctx context.Context, rec *entity.ExtractedData) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.ExtractedData, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*entity.ExtractedData, error)
}

type extractedRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractedDataRepository(entc *ent.Client, log *slog.Logger) ExtractedDataRepository {
	return &extractedRepo{ent: entc, log: log}
}

// SaveExtractedData upserts the record keyed by document_id, replacing any
// previous extraction in full. Before writing it re-checks that the
// record's company matches the stored document's company; a mismatch is an
// invariant breach, not a transient failure.
func (r *extractedRepo) SaveExtractedData(ctx context.Context, rec *entity.ExtractedData) error {
	doc, err := r.ent.Document.Get(ctx, rec.DocumentID)
	if err != nil {
		r.log.Error("load document for save failed", "document_id", rec.DocumentID, "error", err)
		return err
	}
	if doc.CompanyID != rec.CompanyID {
		r.log.Error("tenant isolation violated",
			"document_id", rec.DocumentID,
			"document_company_id", doc.CompanyID,
			"record_company_id", rec.CompanyID,
		)
		return common.NewAppError("TENANT_ISOLATION", "record company does not match document company", common.ErrTenantMismatch)
	}

	amounts, err := json.Marshal(rec.Amounts)
	if err != nil {
		return common.WrapError(err, "marshal amounts")
	}
	dates, err := json.Marshal(rec.DatesFound)
	if err != nil {
		return common.WrapError(err, "marshal dates")
	}

	builder := r.ent.ExtractedData.Create().
		SetID(rec.ID).
		SetDocumentID(rec.DocumentID).
		SetCompanyID(rec.CompanyID).
		SetAmounts(amounts).
		SetDatesFound(dates).
		SetTransactionType(string(rec.TransactionType)).
		SetCategory(rec.Category).
		SetPaymentMethod(string(rec.PaymentMethod)).
		SetConfidenceScore(rec.ConfidenceScore).
		SetExtractionMethod(string(rec.ExtractionMethod)).
		SetPatternSetVersion(rec.PatternSetVersion).
		SetNeedsReview(rec.NeedsReview).
		SetExtractedAt(rec.ExtractedAt).
		SetNillableTransactionDate(rec.TransactionDate).
		SetNillableVendorName(rec.VendorName).
		SetNillableInvoiceNumber(rec.InvoiceNumber).
		SetNillableReferenceNumber(rec.ReferenceNumber)

	if rec.TaxAmount != nil {
		builder = builder.SetTaxAmount(rec.TaxAmount.InexactFloat64())
	}

	err = builder.
		OnConflictColumns(extracteddata.FieldDocumentID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("save extracted data failed", "document_id", rec.DocumentID, "error", err)
		return err
	}

	r.log.Info("extracted data saved",
		"document_id", rec.DocumentID,
		"company_id", rec.CompanyID,
		"confidence", rec.ConfidenceScore,
		"method", rec.ExtractionMethod,
	)
	return nil
}

func (r *extractedRepo) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.ExtractedData, error) {
	row, err := r.ent.ExtractedData.Query().
		Where(extracteddata.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return ToExtractedData(row)
}

func (r *extractedRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*entity.ExtractedData, error) {
	q := r.ent.ExtractedData.Query().Where(extracteddata.CompanyID(companyID))
	if from != nil {
		q = q.Where(extracteddata.TransactionDateGTE(*from))
	}
	if to != nil {
		q = q.Where(extracteddata.TransactionDateLTE(*to))
	}
	rows, err := q.Order(extracteddata.ByExtractedAt()).All(ctx)
	if err != nil {
		r.log.Error("list extracted data failed", "company_id", companyID, "error", err)
		return nil, err
	}

	out := make([]*entity.ExtractedData, 0, len(rows))
	for _, row := range rows {
		rec, err := ToExtractedData(row)
		if err != nil {
			r.log.Warn("skipping unreadable extracted row", "id", row.ID, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
