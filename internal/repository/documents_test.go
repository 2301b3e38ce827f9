package repository_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/internal/repository"
)

func setup(t *testing.T) (*ent.Client, *repository.Store, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	entc, err := repository.OpenSQLiteInMemory(ctx, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = entc.Close() })

	company, err := repository.NewCompanyRepository(entc, logger).GetOrCreateByName(ctx, "Test Company "+uuid.NewString())
	require.NoError(t, err)

	return entc, repository.NewStore(entc, logger), company.ID
}

func TestDocumentLifecycle(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "Total: KES 1,000.00", "TXT")
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusPending), doc.Status)
	assert.Equal(t, companyID, doc.CompanyID)
	assert.Zero(t, doc.AttemptCount)

	pending, err := store.FetchPendingDocuments(ctx, companyID, "v1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, doc.ID, pending[0].ID)

	ok, err := store.ClaimDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// a second claim must lose
	ok, err = store.ClaimDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.MarkCompleted(ctx, doc.ID, "v1"))

	got, err := store.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusCompleted), got.Status)
	require.NotNil(t, got.PatternSetVersion)
	assert.Equal(t, "v1", *got.PatternSetVersion)
	assert.NotNil(t, got.ProcessedAt)

	// completed on the current version: nothing left to do
	pending, err = store.FetchPendingDocuments(ctx, companyID, "v1", 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// a new pattern set version makes it pending again
	pending, err = store.FetchPendingDocuments(ctx, companyID, "v2", 10)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestFetchPendingScopedToCompany(t *testing.T) {
	ctx := context.Background()
	entc, store, companyID := setup(t)

	other, err := repository.NewCompanyRepository(entc, slog.Default()).GetOrCreateByName(ctx, "Other Company "+uuid.NewString())
	require.NoError(t, err)

	_, err = store.Create(ctx, companyID, "mine", "TXT")
	require.NoError(t, err)
	_, err = store.Create(ctx, other.ID, "theirs", "TXT")
	require.NoError(t, err)

	pending, err := store.FetchPendingDocuments(ctx, companyID, "v1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "mine", pending[0].RawText)
}

func TestMarkFailedAndDeadLetter(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	doc, err := store.Create(ctx, companyID, "text", "TXT")
	require.NoError(t, err)

	require.NoError(t, store.MarkFailed(ctx, doc.ID, constants.ErrKindTimeout, 2))
	got, err := store.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusFailed), got.Status)
	assert.Equal(t, 2, got.AttemptCount)
	require.NotNil(t, got.LastErrorKind)
	assert.Equal(t, string(constants.ErrKindTimeout), *got.LastErrorKind)

	// failed documents are refetched for retry
	pending, err := store.FetchPendingDocuments(ctx, companyID, "v1", 10)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, store.MarkDeadLetter(ctx, doc.ID, constants.ErrKindPersistence, "gave up"))
	got, err = store.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusDeadLetter), got.Status)
	require.NotNil(t, got.LastErrorMessage)
	assert.Equal(t, "gave up", *got.LastErrorMessage)

	// dead-lettered documents never come back on their own
	pending, err = store.FetchPendingDocuments(ctx, companyID, "v1", 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	ok, err := store.ClaimDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlagForReprocess(t *testing.T) {
	ctx := context.Background()
	_, store, companyID := setup(t)

	stale, err := store.Create(ctx, companyID, "stale", "TXT")
	require.NoError(t, err)
	current, err := store.Create(ctx, companyID, "current", "TXT")
	require.NoError(t, err)

	require.NoError(t, store.MarkCompleted(ctx, stale.ID, "v1"))
	require.NoError(t, store.MarkCompleted(ctx, current.ID, "v2"))

	n, err := store.FlagForReprocess(ctx, companyID, "v2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusPending), got.Status)

	got, err = store.GetByID(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusCompleted), got.Status)
}
