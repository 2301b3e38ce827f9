package extraction

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/entity"
	"github.com/biasharaledger/docextract/internal/llm"
)

// Builder reduces candidates to a single ExtractedData record per document.
type Builder struct {
	cfg        *Config
	extractor  *Extractor
	scorer     *Scorer
	classifier *Classifier
	enricher   llm.Enricher // nil disables enrichment
	logger     *slog.Logger
}

func NewBuilder(cfg *Config, enricher llm.Enricher, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cfg:        cfg,
		extractor:  NewExtractor(cfg, logger),
		scorer:     NewScorer(cfg),
		classifier: NewClassifier(cfg),
		enricher:   enricher,
		logger:     logger,
	}
}

// scored pairs a candidate with its confidence.
type scored struct {
	Candidate
	Score float64
}

// Build runs the full extraction for one document and assembles the record.
// It never fails: a document with no recognizable content yields a record
// with confidence 0.0 and all optional fields unset. CompanyID is always
// taken from the document, never from anything matched in the text.
func (b *Builder) Build(ctx context.Context, doc *entity.Document) *entity.ExtractedData {
	candidates := b.extractor.Extract(doc.RawText)
	scores := b.scorer.ScoreAll(candidates)

	byField := make(map[constants.FieldKind][]scored)
	for i, c := range candidates {
		byField[c.Field] = append(byField[c.Field], scored{Candidate: c, Score: scores[i]})
	}

	rec := &entity.ExtractedData{
		ID:                recordID(doc.ID, b.cfg.PatternSetVersion),
		DocumentID:        doc.ID,
		CompanyID:         doc.CompanyID,
		TransactionType:   constants.TxnUnknown,
		Category:          string(constants.Uncategorized),
		PaymentMethod:     constants.PayUnknown,
		ExtractionMethod:  constants.MethodPattern,
		PatternSetVersion: b.cfg.PatternSetVersion,
		ExtractedAt:       time.Now().UTC(),
	}

	best := make(map[constants.FieldKind]float64)

	rec.Amounts = b.selectAmounts(byField[constants.FieldAmount])
	if len(rec.Amounts) > 0 {
		best[constants.FieldAmount] = rec.Amounts[0].Confidence
	}

	rec.DatesFound = selectDates(byField[constants.FieldDate])
	if len(rec.DatesFound) > 0 {
		d := rec.DatesFound[0].Date
		rec.TransactionDate = &d
		best[constants.FieldDate] = rec.DatesFound[0].Confidence
	}

	if v, score, ok := bestCandidate(byField[constants.FieldVendor]); ok {
		rec.VendorName = &v.Normalized
		best[constants.FieldVendor] = score
	}
	if v, score, ok := bestCandidate(byField[constants.FieldInvoiceNumber]); ok {
		rec.InvoiceNumber = &v.Normalized
		best[constants.FieldInvoiceNumber] = score
	}
	if v, score, ok := bestCandidate(byField[constants.FieldReference]); ok {
		rec.ReferenceNumber = &v.Normalized
		best[constants.FieldReference] = score
	}
	if v, score, ok := bestCandidate(byField[constants.FieldTax]); ok {
		tax := v.Amount
		rec.TaxAmount = &tax
		best[constants.FieldTax] = score
	}
	if v, score, ok := bestCandidate(byField[constants.FieldPaymentMethod]); ok {
		rec.PaymentMethod = v.Payment
		best[constants.FieldPaymentMethod] = score
	}

	vendor := ""
	if rec.VendorName != nil {
		vendor = *rec.VendorName
	}
	cls := b.classifier.Classify(doc.RawText, vendor)
	rec.TransactionType = cls.Type
	rec.Category = cls.Category

	rec.ConfidenceScore = b.scorer.Aggregate(best)
	rec.NeedsReview = rec.ConfidenceScore < b.cfg.ReviewThreshold

	b.enrich(ctx, doc, rec)

	b.logger.Debug("record built",
		"document_id", doc.ID,
		"amounts", len(rec.Amounts),
		"vendor", vendor,
		"category", rec.Category,
		"confidence", rec.ConfidenceScore,
		"method", rec.ExtractionMethod,
	)
	return rec
}

// enrich invokes the optional LLM hook. Fallback to pattern-only output is
// mandatory: whatever the hook does, this method never fails the build.
func (b *Builder) enrich(ctx context.Context, doc *entity.Document, rec *entity.ExtractedData) {
	if b.enricher == nil {
		return
	}

	req := llm.EnrichRequest{
		RawText:           doc.RawText,
		Category:          rec.Category,
		TransactionType:   string(rec.TransactionType),
		AllowedCategories: b.cfg.CategoryNames(),
	}
	if rec.VendorName != nil {
		req.VendorName = *rec.VendorName
	}

	fields, _, err := b.enricher.Enrich(ctx, req)
	if err != nil {
		b.logger.Warn("enrichment unavailable, using pattern-only output",
			"document_id", doc.ID, "error", err)
		return
	}

	usable := false
	if fields.VendorName != "" && rec.VendorName == nil {
		v := fields.VendorName
		rec.VendorName = &v
		usable = true
	}
	if fields.Category != "" && rec.Category == string(constants.Uncategorized) {
		// fold free-form model output onto the taxonomy before checking
		// against the configured category list
		name := fields.Category
		if canonical, ok := constants.Canonicalize(name); ok {
			name = string(canonical)
		}
		if b.knownCategory(name) {
			rec.Category = name
			usable = true
		}
	}
	if fields.TransactionType != "" && rec.TransactionType == constants.TxnUnknown {
		switch constants.TransactionType(fields.TransactionType) {
		case constants.TxnIncome, constants.TxnExpense:
			rec.TransactionType = constants.TransactionType(fields.TransactionType)
			usable = true
		}
	}

	if usable {
		rec.ExtractionMethod = constants.MethodPatternLLM
	}
}

func (b *Builder) knownCategory(name string) bool {
	for _, n := range b.cfg.CategoryNames() {
		if n == name {
			return true
		}
	}
	return false
}

// selectAmounts keeps every distinct amount at or above the minimum
// confidence, sorted by descending confidence, ties broken by larger
// magnitude then earliest position.
func (b *Builder) selectAmounts(amounts []scored) []entity.Amount {
	kept := make([]scored, 0, len(amounts))
	seen := make(map[string]int) // normalized value -> index in kept
	for _, a := range amounts {
		if a.Score < b.cfg.MinAmountConfidence {
			continue
		}
		if i, dup := seen[a.Normalized]; dup {
			// keep the strongest sighting of a repeated value
			if a.Score > kept[i].Score {
				kept[i] = a
			}
			continue
		}
		seen[a.Normalized] = len(kept)
		kept = append(kept, a)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		if cmp := kept[i].Amount.Cmp(kept[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return kept[i].Position < kept[j].Position
	})

	out := make([]entity.Amount, len(kept))
	for i, a := range kept {
		out[i] = entity.Amount{
			Value:      a.Amount,
			Currency:   a.Currency,
			Confidence: a.Score,
			Position:   a.Position,
		}
	}
	return out
}

func selectDates(dates []scored) []entity.DateCandidate {
	sorted := make([]scored, len(dates))
	copy(sorted, dates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Position < sorted[j].Position
	})

	out := make([]entity.DateCandidate, 0, len(sorted))
	seen := make(map[string]struct{})
	for _, d := range sorted {
		if _, dup := seen[d.Normalized]; dup {
			continue
		}
		seen[d.Normalized] = struct{}{}
		out = append(out, entity.DateCandidate{
			Date:       d.Date,
			Confidence: d.Score,
			Position:   d.Position,
		})
	}
	return out
}

// bestCandidate picks the highest score; on an exact tie the candidate
// appearing first in document order wins.
func bestCandidate(cands []scored) (Candidate, float64, bool) {
	if len(cands) == 0 {
		return Candidate{}, 0, false
	}
	bestIdx := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Score > cands[bestIdx].Score ||
			(cands[i].Score == cands[bestIdx].Score && cands[i].Position < cands[bestIdx].Position) {
			bestIdx = i
		}
	}
	return cands[bestIdx].Candidate, cands[bestIdx].Score, true
}

// recordID derives a stable ID from the document and pattern set version so
// re-extraction under the same version reproduces the record exactly.
func recordID(documentID uuid.UUID, version string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(documentID.String()+"/"+version))
}
