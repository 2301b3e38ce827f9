package extraction

import (
	"time"

	"github.com/biasharaledger/docextract/constants"
)

// Scorer assigns [0,1] confidence to candidates and to the whole record.
// The design is heuristic on purpose: every adjustment is a named constant
// from the config so a score can be explained after the fact.
type Scorer struct {
	cfg *Config
	now func() time.Time
}

func NewScorer(cfg *Config) *Scorer {
	return &Scorer{cfg: cfg, now: time.Now}
}

// Score computes the confidence of a single candidate given every candidate
// extracted from the same document. Starts from the pattern's base
// confidence, applies the configured adjustments, clamps to [0,1].
func (s *Scorer) Score(c Candidate, all []Candidate) float64 {
	score := c.BaseConfidence

	if c.CurrencyAdjacent && (c.Field == constants.FieldAmount || c.Field == constants.FieldTax) {
		score += s.cfg.Scoring.CurrencyAdjacencyBonus
	}

	if c.Field == constants.FieldDate {
		year := s.now().Year()
		window := s.cfg.Scoring.YearWindow
		if y := c.Date.Year(); y >= year-window && y <= year+window {
			score += s.cfg.Scoring.PlausibleYearBonus
		}
	}

	// ambiguity penalty: the same raw text also matched a different field
	for _, other := range all {
		if other.Field != c.Field && other.Raw == c.Raw {
			score -= s.cfg.Scoring.AmbiguityPenalty
			break
		}
	}

	return clamp01(score)
}

// ScoreAll returns per-candidate scores aligned with the input slice.
func (s *Scorer) ScoreAll(all []Candidate) []float64 {
	scores := make([]float64, len(all))
	for i, c := range all {
		scores[i] = s.Score(c, all)
	}
	return scores
}

// Aggregate computes the record-level confidence: the weighted mean of the
// best score per present field, weighted by the field-importance table.
// A document with no candidates degenerates to 0.0, not an error.
// Fields are summed in the fixed AllFieldKinds order so the float
// accumulation, and therefore the stored score, is identical across runs.
func (s *Scorer) Aggregate(best map[constants.FieldKind]float64) float64 {
	var weighted, total float64
	for _, field := range constants.AllFieldKinds {
		score, present := best[field]
		if !present {
			continue
		}
		w, ok := s.cfg.Scoring.FieldWeights[field]
		if !ok {
			continue
		}
		weighted += w * score
		total += w
	}
	if total == 0 {
		return 0.0
	}
	return clamp01(weighted / total)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
