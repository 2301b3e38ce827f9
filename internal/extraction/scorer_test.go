package extraction_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/biasharaledger/docextract/constants"
	"github.com/biasharaledger/docextract/internal/extraction"
)

func TestScoreCurrencyAdjacencyBonus(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	with := extraction.Candidate{
		Field:            constants.FieldAmount,
		Raw:              "KES 100.00",
		BaseConfidence:   0.75,
		CurrencyAdjacent: true,
	}
	without := extraction.Candidate{
		Field:          constants.FieldAmount,
		Raw:            "100.00",
		BaseConfidence: 0.75,
	}

	assert.InDelta(t, 0.85, s.Score(with, nil), 1e-9)
	assert.InDelta(t, 0.75, s.Score(without, nil), 1e-9)
}

func TestScoreCurrencyBonusOnlyForMonetaryFields(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	c := extraction.Candidate{
		Field:            constants.FieldInvoiceNumber,
		Raw:              "INV-1",
		BaseConfidence:   0.9,
		CurrencyAdjacent: true,
	}
	assert.InDelta(t, 0.9, s.Score(c, nil), 1e-9)
}

func TestScorePlausibleYearBonus(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())
	year := time.Now().Year()

	near := extraction.Candidate{
		Field:          constants.FieldDate,
		Raw:            "near",
		BaseConfidence: 0.7,
		Date:           time.Date(year-1, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	far := extraction.Candidate{
		Field:          constants.FieldDate,
		Raw:            "far",
		BaseConfidence: 0.7,
		Date:           time.Date(year-20, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.InDelta(t, 0.8, s.Score(near, nil), 1e-9)
	assert.InDelta(t, 0.7, s.Score(far, nil), 1e-9)
}

func TestScoreAmbiguityPenalty(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	amount := extraction.Candidate{
		Field:          constants.FieldAmount,
		Raw:            "2024",
		BaseConfidence: 0.6,
	}
	ref := extraction.Candidate{
		Field:          constants.FieldReference,
		Raw:            "2024",
		BaseConfidence: 0.8,
	}
	all := []extraction.Candidate{amount, ref}

	assert.InDelta(t, 0.4, s.Score(amount, all), 1e-9)
	assert.InDelta(t, 0.6, s.Score(ref, all), 1e-9)
}

func TestScoreClampsToUnitInterval(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	high := extraction.Candidate{
		Field:            constants.FieldAmount,
		Raw:              "KES 1.00",
		BaseConfidence:   0.95,
		CurrencyAdjacent: true,
	}
	low := extraction.Candidate{
		Field:          constants.FieldAmount,
		Raw:            "x",
		BaseConfidence: 0.1,
	}
	other := extraction.Candidate{
		Field: constants.FieldReference,
		Raw:   "x",
	}

	assert.Equal(t, 1.0, s.Score(high, nil))
	assert.Equal(t, 0.0, s.Score(low, []extraction.Candidate{low, other}))
}

func TestAggregateWeightedMean(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	got := s.Aggregate(map[constants.FieldKind]float64{
		constants.FieldAmount: 0.9, // weight 0.30
		constants.FieldDate:   0.8, // weight 0.25
	})
	want := (0.30*0.9 + 0.25*0.8) / (0.30 + 0.25)
	assert.InDelta(t, want, got, 1e-9)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	// every field present, scores chosen so the partial sums are not
	// exactly representable and summation order would show in the
	// last bits if map iteration order leaked through
	best := map[constants.FieldKind]float64{
		constants.FieldAmount:        0.9,
		constants.FieldDate:          0.85,
		constants.FieldVendor:        0.7,
		constants.FieldInvoiceNumber: 0.95,
		constants.FieldReference:     0.6,
		constants.FieldPaymentMethod: 0.75,
		constants.FieldTax:           0.8,
	}

	first := s.Aggregate(best)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, s.Aggregate(best))
	}
}

func TestAggregateEmptyIsZero(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())
	assert.Equal(t, 0.0, s.Aggregate(nil))
	assert.Equal(t, 0.0, s.Aggregate(map[constants.FieldKind]float64{}))
}

func TestScoreAllAlignment(t *testing.T) {
	s := extraction.NewScorer(extraction.DefaultConfig())

	var all []extraction.Candidate
	for i := 0; i < 4; i++ {
		all = append(all, extraction.Candidate{
			Field:          constants.FieldAmount,
			Raw:            fmt.Sprintf("a%d", i),
			BaseConfidence: float64(i+1) * 0.2,
		})
	}
	scores := s.ScoreAll(all)
	assert.Len(t, scores, len(all))
	for i, c := range all {
		assert.InDelta(t, s.Score(c, all), scores[i], 1e-9)
	}
}
