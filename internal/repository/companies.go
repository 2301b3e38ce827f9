package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/gen/ent/company"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Company, error)
}

type companyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCompanyRepository(entc *ent.Client, log *slog.Logger) CompanyRepository {
	return &companyRepo{ent: entc, log: log}
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error) {
	return r.ent.Company.Get(ctx, id)
}

func (r *companyRepo) GetOrCreateByName(ctx context.Context, name string) (*ent.Company, error) {
	existing, err := r.ent.Company.Query().
		Where(company.Name(name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.ent.Company.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// lost a create race; the row exists now
		if ent.IsConstraintError(err) {
			return r.ent.Company.Query().Where(company.Name(name)).Only(ctx)
		}
		return nil, err
	}
	r.log.Info("company created", "company_id", created.ID, "name", name)
	return created, nil
}
