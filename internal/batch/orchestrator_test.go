package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/batch"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/extraction"
)

// memStore is an in-memory Store for orchestrator tests. It mirrors the
// status transitions the real repository performs and records how often each
// mutation was called.
type memStore struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
	recs map[uuid.UUID]*entity.ExtractedData

	saveErrFor   map[uuid.UUID]error // injected SaveExtractedData failures
	saveFailures map[uuid.UUID]int   // fail this many times, then succeed

	claims     map[uuid.UUID]int
	saves      int
	deadLetter map[uuid.UUID]constants.ErrorKind
}

func newMemStore() *memStore {
	return &memStore{
		docs:         make(map[uuid.UUID]*entity.Document),
		recs:         make(map[uuid.UUID]*entity.ExtractedData),
		saveErrFor:   make(map[uuid.UUID]error),
		saveFailures: make(map[uuid.UUID]int),
		claims:       make(map[uuid.UUID]int),
		deadLetter:   make(map[uuid.UUID]constants.ErrorKind),
	}
}

func (s *memStore) addDocument(companyID uuid.UUID, text string) *entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := &entity.Document{
		ID:           uuid.New(),
		CompanyID:    companyID,
		RawText:      text,
		SourceFormat: "TXT",
		Status:       string(constants.DocStatusPending),
		CreatedAt:    time.Now().UTC(),
	}
	s.docs[doc.ID] = doc
	return doc
}

func (s *memStore) FetchPendingDocuments(_ context.Context, companyID uuid.UUID, version string, limit int) ([]*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Document
	for _, d := range s.docs {
		if d.CompanyID != companyID {
			continue
		}
		switch d.Status {
		case string(constants.DocStatusPending), string(constants.DocStatusFailed):
			out = append(out, d)
		case string(constants.DocStatusCompleted):
			if d.PatternSetVersion == nil || *d.PatternSetVersion != version {
				out = append(out, d)
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) ClaimDocument(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return false, fmt.Errorf("unknown document %s", id)
	}
	if d.Status == string(constants.DocStatusInProgress) || d.Status == string(constants.DocStatusDeadLetter) {
		return false, nil
	}
	d.Status = string(constants.DocStatusInProgress)
	s.claims[id]++
	return true, nil
}

func (s *memStore) SaveExtractedData(_ context.Context, rec *entity.ExtractedData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if err, ok := s.saveErrFor[rec.DocumentID]; ok {
		return err
	}
	if n := s.saveFailures[rec.DocumentID]; n > 0 {
		s.saveFailures[rec.DocumentID] = n - 1
		return errors.New("connection reset")
	}
	s.recs[rec.DocumentID] = rec
	return nil
}

func (s *memStore) MarkCompleted(_ context.Context, id uuid.UUID, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.docs[id]
	d.Status = string(constants.DocStatusCompleted)
	d.PatternSetVersion = &version
	d.AttemptCount = 0
	return nil
}

func (s *memStore) MarkFailed(_ context.Context, id uuid.UUID, kind constants.ErrorKind, attempt int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.docs[id]
	d.Status = string(constants.DocStatusFailed)
	d.AttemptCount = attempt
	k := string(kind)
	d.LastErrorKind = &k
	return nil
}

func (s *memStore) MarkDeadLetter(_ context.Context, id uuid.UUID, kind constants.ErrorKind, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.docs[id]
	d.Status = string(constants.DocStatusDeadLetter)
	k := string(kind)
	d.LastErrorKind = &k
	d.LastErrorMessage = &message
	s.deadLetter[id] = kind
	return nil
}

func (s *memStore) status(id uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id].Status
}

func testOptions() batch.Options {
	opts := batch.DefaultOptions()
	opts.BackoffBase = time.Millisecond
	return opts
}

func newTestOrchestrator(store batch.Store, opts batch.Options) *batch.Orchestrator {
	cfg := extraction.DefaultConfig()
	builder := extraction.NewBuilder(cfg, nil, nil)
	return batch.NewOrchestrator(store, builder, cfg.PatternSetVersion, opts, nil)
}

func TestRunProcessesAllPendingDocuments(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	var ids []uuid.UUID
	for i := 0; i < 10; i++ {
		doc := store.addDocument(companyID, fmt.Sprintf("Invoice No: INV-%03d\nTotal: KES 1,%d00.00", i, i+1))
		ids = append(ids, doc.ID)
	}

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Processed)
	assert.Equal(t, 10, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.DeadLettered)
	assert.Greater(t, summary.AverageConfidence, 0.0)

	for _, id := range ids {
		assert.Equal(t, string(constants.DocStatusCompleted), store.status(id))
		assert.Equal(t, 1, store.claims[id], "each document claimed exactly once")
		require.Contains(t, store.recs, id)
		assert.Equal(t, companyID, store.recs[id].CompanyID)
	}
}

func TestRunScopesFetchToCompany(t *testing.T) {
	store := newMemStore()
	mine := uuid.New()
	other := uuid.New()
	doc := store.addDocument(mine, "Total: KES 1,000.00")
	foreign := store.addDocument(other, "Total: KES 2,000.00")

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), mine)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, string(constants.DocStatusCompleted), store.status(doc.ID))
	assert.Equal(t, string(constants.DocStatusPending), store.status(foreign.ID))
	assert.NotContains(t, store.recs, foreign.ID)
}

func TestRunTenantViolationDeadLettersImmediately(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	doc := store.addDocument(companyID, "Total: KES 1,000.00")
	store.saveErrFor[doc.ID] = common.ErrTenantMismatch

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 1, summary.DeadLettered)
	assert.Equal(t, string(constants.DocStatusDeadLetter), store.status(doc.ID))
	assert.Equal(t, constants.ErrKindTenantMismatch, store.deadLetter[doc.ID])
	// no retry on an isolation breach
	assert.Equal(t, 1, store.saves)
}

func TestRunPersistenceErrorRetriesThenDeadLetters(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	doc := store.addDocument(companyID, "Total: KES 1,000.00")
	store.saveFailures[doc.ID] = 100 // never recovers

	opts := testOptions()
	opts.MaxAttempts = 3
	orch := newTestOrchestrator(store, opts)
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.DeadLettered)
	assert.Equal(t, 3, store.saves, "one save attempt per retry")
	assert.Equal(t, string(constants.DocStatusDeadLetter), store.status(doc.ID))
	assert.Equal(t, constants.ErrKindPersistence, store.deadLetter[doc.ID])
}

func TestRunTransientPersistenceErrorRecovers(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	doc := store.addDocument(companyID, "Total: KES 1,000.00")
	store.saveFailures[doc.ID] = 1 // fails once, then succeeds

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.DeadLettered)
	assert.Equal(t, string(constants.DocStatusCompleted), store.status(doc.ID))
}

func TestRunSkipsAlreadyClaimedDocuments(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	doc := store.addDocument(companyID, "Total: KES 1,000.00")
	held := store.addDocument(companyID, "Total: KES 2,000.00")
	store.docs[held.ID].Status = string(constants.DocStatusInProgress)

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, string(constants.DocStatusCompleted), store.status(doc.ID))
	assert.Equal(t, string(constants.DocStatusInProgress), store.status(held.ID))
	assert.Zero(t, store.claims[held.ID])
}

func TestRunCancelledContextStopsEarly(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	for i := 0; i < 5; i++ {
		store.addDocument(companyID, "Total: KES 1,000.00")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(ctx, companyID)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0, store.saves)
}

func TestRunEmptyBacklog(t *testing.T) {
	store := newMemStore()

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0.0, summary.AverageConfidence)
	assert.GreaterOrEqual(t, summary.Duration, time.Duration(0))
}

func TestRunReprocessesStaleVersions(t *testing.T) {
	store := newMemStore()
	companyID := uuid.New()
	doc := store.addDocument(companyID, "Total: KES 1,000.00")
	stale := "v0"
	store.docs[doc.ID].Status = string(constants.DocStatusCompleted)
	store.docs[doc.ID].PatternSetVersion = &stale

	orch := newTestOrchestrator(store, testOptions())
	summary, err := orch.Run(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, "v1", *store.docs[doc.ID].PatternSetVersion)
}
