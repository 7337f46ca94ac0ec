package diffscore

import (
	"math"
	"testing"
)

func assertInDelta(t *testing.T, want, got, delta float64) {
	t.Helper()
	if math.Abs(want-got) > delta {
		t.Errorf("expected %v (±%v), got %v", want, delta, got)
	}
}

func TestScore(t *testing.T) {
	t.Run("both_empty", func(t *testing.T) {
		assertInDelta(t, 0.0, Score(nil, nil), 1e-12)
		assertInDelta(t, 0.0, Score([]CategoryScore{}, []CategoryScore{}), 1e-12)
	})

	t.Run("identical", func(t *testing.T) {
		a := []CategoryScore{{ID: 4, Score: 0.3}, {ID: 10, Score: 0.1}}
		assertInDelta(t, 0.0, Score(a, a), 1e-12)
	})

	t.Run("scores_clamped_at_half", func(t *testing.T) {
		a := []CategoryScore{{ID: 4, Score: 0.9}}
		b := []CategoryScore{{ID: 4, Score: 0.55}}
		assertInDelta(t, 0.0, Score(a, b), 1e-12)
	})

	t.Run("zero_weight_union", func(t *testing.T) {
		a := []CategoryScore{{ID: 4, Score: 0}}
		b := []CategoryScore{{ID: 4, Score: 0}}
		assertInDelta(t, 0.0, Score(a, b), 1e-12)
	})

	t.Run("confident_category_missing_entirely", func(t *testing.T) {
		a := []CategoryScore{{ID: 4, Score: 0.5}}
		assertInDelta(t, 5.0, Score(a, nil), 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []CategoryScore{{ID: 4, Score: 0.4}, {ID: 10, Score: 0.1}}
		b := []CategoryScore{{ID: 4, Score: 0.2}, {ID: 33, Score: 0.07}}
		assertInDelta(t, Score(a, b), Score(b, a), 1e-12)
	})

	t.Run("plain_score_gap", func(t *testing.T) {
		a := []CategoryScore{{ID: 1, Score: 0.3}}
		b := []CategoryScore{{ID: 1, Score: 0.2}}
		// diff 0.1, no boosts: 5 * sqrt(0.1)
		assertInDelta(t, 1.5811388, Score(a, b), 1e-6)
	})

	t.Run("low_score_missing_gets_mild_penalty", func(t *testing.T) {
		a := []CategoryScore{{ID: 1, Score: 0.04}}
		// penalty 2x on 0.04: 5 * sqrt(0.08)
		assertInDelta(t, 1.4142136, Score(a, nil), 1e-6)
	})

	t.Run("missing_penalty_grows_with_confidence", func(t *testing.T) {
		prev := 0.0
		// Higher tiers saturate the 5.0 cap, so only the lower ones
		// stay strictly ordered.
		for _, score := range []float64{0.03, 0.06, 0.11} {
			got := Score([]CategoryScore{{ID: 1, Score: score}}, nil)
			if got <= prev {
				t.Fatalf("expected penalty to grow at score %v: %v <= %v", score, got, prev)
			}
			prev = got
		}
	})

	t.Run("never_exceeds_five", func(t *testing.T) {
		a := []CategoryScore{{ID: 1, Score: 1.0}, {ID: 2, Score: 1.0}}
		b := []CategoryScore{{ID: 3, Score: 1.0}, {ID: 4, Score: 1.0}}
		if got := Score(a, b); got > 5.0 {
			t.Errorf("expected score capped at 5.0, got %v", got)
		}
	})
}

func TestScoreWithThreshold(t *testing.T) {
	t.Run("raising_threshold_softens_confident_mismatch", func(t *testing.T) {
		a := []CategoryScore{{ID: 1, Score: 0.45}}
		b := []CategoryScore{{ID: 1, Score: 0.3}}

		strict := ScoreWithThreshold(a, b, DefaultHighConfidenceThreshold)
		lenient := ScoreWithThreshold(a, b, 0.9)
		if strict <= lenient {
			t.Errorf("expected default threshold to score higher: %v <= %v", strict, lenient)
		}
	})

	t.Run("matches_default", func(t *testing.T) {
		a := []CategoryScore{{ID: 1, Score: 0.45}}
		b := []CategoryScore{{ID: 2, Score: 0.1}}
		assertInDelta(t,
			Score(a, b),
			ScoreWithThreshold(a, b, DefaultHighConfidenceThreshold),
			1e-12)
	})
}
