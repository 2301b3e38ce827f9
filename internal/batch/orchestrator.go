package batch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/extraction"
)

// Store is the narrow persistence contract the orchestrator consumes.
// Implementations must make ClaimDocument atomic: two workers can never
// claim the same document.
type Store interface {
	FetchPendingDocuments(ctx context.Context, companyID uuid.UUID, patternSetVersion string, limit int) ([]*entity.Document, error)
	ClaimDocument(ctx context.Context, documentID uuid.UUID) (bool, error)
	SaveExtractedData(ctx context.Context, rec *entity.ExtractedData) error
	MarkCompleted(ctx context.Context, documentID uuid.UUID, patternSetVersion string) error
	MarkFailed(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, attempt int) error
	MarkDeadLetter(ctx context.Context, documentID uuid.UUID, kind constants.ErrorKind, message string) error
}

// Options configures a batch run.
type Options struct {
	Workers         int
	PageSize        int
	MaxAttempts     int
	BackoffBase     time.Duration
	DocumentTimeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Workers:         4,
		PageSize:        100,
		MaxAttempts:     3,
		BackoffBase:     500 * time.Millisecond,
		DocumentTimeout: 5 * time.Second,
	}
}

// Orchestrator pulls unprocessed documents in tenant-scoped pages and runs
// the record builder over them with a pool of workers.
type Orchestrator struct {
	store   Store
	builder *extraction.Builder
	version string
	opts    Options
	logger  *slog.Logger
}

func NewOrchestrator(store Store, builder *extraction.Builder, version string, opts Options, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 100
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 500 * time.Millisecond
	}
	if opts.DocumentTimeout <= 0 {
		opts.DocumentTimeout = 5 * time.Second
	}
	return &Orchestrator{
		store:   store,
		builder: builder,
		version: version,
		opts:    opts,
		logger:  logger,
	}
}

var errDocumentTimeout = errors.New("document extraction timed out")

// Run processes every pending document for the company and returns the
// run-level summary. One document's failure never aborts the batch: failures
// are recorded per document and the run continues. Cancellation is
// cooperative and checked before claiming each next document.
func (o *Orchestrator) Run(ctx context.Context, companyID uuid.UUID) (*entity.BatchSummary, error) {
	start := time.Now()
	summary := &entity.BatchSummary{
		CompanyID:         companyID.String(),
		PatternSetVersion: o.version,
	}
	var confidenceSum float64
	var mu sync.Mutex

	o.logger.Info("batch run started",
		"company_id", companyID,
		"pattern_set_version", o.version,
		"workers", o.opts.Workers,
		"page_size", o.opts.PageSize,
	)

	for ctx.Err() == nil {
		docs, err := o.store.FetchPendingDocuments(ctx, companyID, o.version, o.opts.PageSize)
		if err != nil {
			summary.Duration = time.Since(start)
			return summary, common.WrapError(err, "fetch pending documents")
		}
		if len(docs) == 0 {
			break
		}

		claimedAny := o.runPage(ctx, docs, summary, &confidenceSum, &mu)
		if !claimedAny {
			// every document in the page was claimed elsewhere; stop rather
			// than spin on the same page
			break
		}
	}

	if summary.Succeeded > 0 {
		summary.AverageConfidence = confidenceSum / float64(summary.Succeeded)
	}
	summary.Duration = time.Since(start)

	o.logger.Info("batch run finished",
		"company_id", companyID,
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"dead_lettered", summary.DeadLettered,
		"avg_confidence", summary.AverageConfidence,
		"elapsed_ms", summary.Duration.Milliseconds(),
	)
	return summary, ctx.Err()
}

// runPage fans one page of documents out to the worker pool. Reports whether
// any document was actually claimed.
func (o *Orchestrator) runPage(ctx context.Context, docs []*entity.Document, summary *entity.BatchSummary, confidenceSum *float64, mu *sync.Mutex) bool {
	jobs := make(chan *entity.Document)
	claimed := false

	var wg sync.WaitGroup
	for w := 0; w < o.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				// cooperative cancellation point: never claim after cancel
				if ctx.Err() != nil {
					continue
				}
				ok, err := o.store.ClaimDocument(ctx, doc.ID)
				if err != nil {
					o.logger.Warn("claim failed", "document_id", doc.ID, "error", err)
					continue
				}
				if !ok {
					continue
				}
				mu.Lock()
				claimed = true
				summary.Processed++
				mu.Unlock()

				o.processDocument(ctx, doc, summary, confidenceSum, mu)
			}
		}()
	}

	for _, doc := range docs {
		jobs <- doc
	}
	close(jobs)
	wg.Wait()
	return claimed
}

// processDocument runs extraction for one claimed document with retries and
// terminal-state bookkeeping.
func (o *Orchestrator) processDocument(ctx context.Context, doc *entity.Document, summary *entity.BatchSummary, confidenceSum *float64, mu *sync.Mutex) {
	attempt := 0
	lastKind := constants.ErrKindInternal
	var rec *entity.ExtractedData

	backoff := retry.WithMaxRetries(uint64(o.opts.MaxAttempts-1), retry.NewExponential(o.opts.BackoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		built, terr := o.extractWithTimeout(ctx, doc)
		if terr != nil {
			if errors.Is(terr, context.Canceled) || errors.Is(terr, context.DeadlineExceeded) {
				return terr
			}
			lastKind = constants.ErrKindTimeout
			_ = o.store.MarkFailed(ctx, doc.ID, lastKind, attempt)
			o.logger.Warn("document extraction timed out",
				"document_id", doc.ID, "attempt", attempt)
			return retry.RetryableError(terr)
		}

		// isolation breach is a logic bug: reject and dead-letter, no retry
		if built.CompanyID != doc.CompanyID {
			lastKind = constants.ErrKindTenantMismatch
			return common.ErrTenantMismatch
		}

		if serr := o.store.SaveExtractedData(ctx, built); serr != nil {
			if errors.Is(serr, common.ErrTenantMismatch) {
				lastKind = constants.ErrKindTenantMismatch
				return serr
			}
			lastKind = constants.ErrKindPersistence
			_ = o.store.MarkFailed(ctx, doc.ID, lastKind, attempt)
			o.logger.Warn("persist failed",
				"document_id", doc.ID, "attempt", attempt, "error", serr)
			return retry.RetryableError(serr)
		}

		rec = built
		return nil
	})

	mu.Lock()
	defer mu.Unlock()

	switch {
	case err == nil:
		if cerr := o.store.MarkCompleted(ctx, doc.ID, o.version); cerr != nil {
			o.logger.Error("mark completed failed", "document_id", doc.ID, "error", cerr)
		}
		summary.Succeeded++
		*confidenceSum += rec.ConfidenceScore

	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		// run was cancelled mid-document; leave it FAILED for the next run
		summary.Failed++

	default:
		if derr := o.store.MarkDeadLetter(ctx, doc.ID, lastKind, err.Error()); derr != nil {
			o.logger.Error("mark dead-letter failed", "document_id", doc.ID, "error", derr)
		}
		summary.DeadLettered++
		o.logger.Error("document dead-lettered",
			"document_id", doc.ID, "kind", lastKind, "attempts", attempt)
	}
}

// extractWithTimeout guards a single extraction with a wall-clock timeout.
// The in-flight build is allowed to run to completion (it is short and
// pure); only the wait is abandoned.
func (o *Orchestrator) extractWithTimeout(ctx context.Context, doc *entity.Document) (*entity.ExtractedData, error) {
	done := make(chan *entity.ExtractedData, 1)
	go func() {
		done <- o.builder.Build(ctx, doc)
	}()

	timer := time.NewTimer(o.opts.DocumentTimeout)
	defer timer.Stop()

	select {
	case rec := <-done:
		return rec, nil
	case <-timer.C:
		return nil, errDocumentTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
