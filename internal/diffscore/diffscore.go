// Package diffscore measures how far apart two category classifications
// are, on a 0.0 (identical) to 5.0 (disjoint) scale. Inputs are weighted
// category assignments as produced by a classifier; the metric is symmetric
// and weights disagreement on confident categories more heavily than
// disagreement on marginal ones.
package diffscore

import "math"

// DefaultHighConfidenceThreshold marks the score above which a category
// assignment counts as high confidence for penalty purposes.
const DefaultHighConfidenceThreshold = 0.41

// scoreCap bounds every per-category score before comparison, so a single
// overconfident assignment cannot dominate the metric.
const scoreCap = 0.50

// CategoryScore is one weighted category assignment.
type CategoryScore struct {
	ID    int     `json:"id" binding:"required"`
	Score float64 `json:"score" binding:"min=0"`
}

// Score compares two classifications with the default high-confidence
// threshold.
func Score(a, b []CategoryScore) float64 {
	return ScoreWithThreshold(a, b, DefaultHighConfidenceThreshold)
}

// ScoreWithThreshold compares two classifications over the union of their
// category ids. Per category, the contribution is the absolute score
// difference, boosted when one side is missing the category outright and
// again when either side held it with high confidence. Contributions are
// weighted by the larger of the two scores and the weighted mean is mapped
// through a square root onto the 0-5 scale. Two empty classifications are
// a perfect match.
func ScoreWithThreshold(a, b []CategoryScore, highConfidenceThreshold float64) float64 {
	aScores := toMap(a)
	bScores := toMap(b)

	allIDs := make(map[int]struct{}, len(aScores)+len(bScores))
	for id := range aScores {
		allIDs[id] = struct{}{}
	}
	for id := range bScores {
		allIDs[id] = struct{}{}
	}
	if len(allIDs) == 0 {
		return 0.0
	}

	var totalDifference, totalWeight float64
	for id := range allIDs {
		aScore := math.Min(aScores[id], scoreCap)
		bScore := math.Min(bScores[id], scoreCap)

		weight := math.Max(aScore, bScore)
		diff := math.Abs(aScore - bScore)

		// Missing on one side entirely is worse than a mere score
		// gap; the penalty scales with how confident the present
		// side was.
		if (aScore == 0 && bScore > 0) || (bScore == 0 && aScore > 0) {
			present := math.Max(aScore, bScore)
			var penalty float64
			switch {
			case present < 0.05:
				penalty = present * 2.0
			case present < 0.1:
				penalty = present * 3.0
			case present < 0.15:
				penalty = present * 4.0
			case present < 0.2:
				penalty = present * 5.0
			case present < highConfidenceThreshold:
				penalty = present * 6.0
			default:
				penalty = present * 8.0
			}
			diff = math.Max(diff, penalty)
		}

		if aScore >= highConfidenceThreshold || bScore >= highConfidenceThreshold {
			if diff > 0.05 {
				diff *= 2.0
			}
		}
		if diff > 0.1 {
			diff *= 1.3
		}

		totalDifference += diff * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0
	}

	normalized := totalDifference / totalWeight
	return math.Min(5.0*math.Sqrt(normalized), 5.0)
}

func toMap(scores []CategoryScore) map[int]float64 {
	m := make(map[int]float64, len(scores))
	for _, s := range scores {
		m[s.ID] = s.Score
	}
	return m
}
