package search

import (
	"math"

	"oleum/models"
)

// MaxScore is the score an oil would reach by matching every searched effect at
// the maximum effect degree.
func MaxScore(items []models.SearchEffectItem) int {
	total := 0
	for _, item := range items {
		total += item.DiscomfortValue * models.MaxEffectDegree
	}
	return total
}

// ComputeWeightedMatch converts an aggregate score into a percentage of maxScore,
// rounding halves away from zero. The result is not clamped; a maxScore of zero or
// less yields 0.
func ComputeWeightedMatch(item models.SearchEssentialOilItem, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	score := item.EffectDegreeDiscomfortValue
	if score < 0 {
		return int(math.Round(float64(score) / float64(maxScore) * 100))
	}
	return (2*score*100 + maxScore) / (2 * maxScore)
}
