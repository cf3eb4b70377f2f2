package search

import (
	"testing"

	"oleum/models"
)

func TestComputeWeightedMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		max   int
		want  int
	}{
		{1, 4, 25},
		{3, 4, 75},
		{28, 28, 100},
		{14, 24, 58},
		{19, 28, 68},
		{37, 48, 77},
		{18, 28, 64},
		{1, 8, 13},
		{0, 12, 0},
	}

	for _, tt := range tests {
		item := models.SearchEssentialOilItem{EffectDegreeDiscomfortValue: tt.score}
		if got := ComputeWeightedMatch(item, tt.max); got != tt.want {
			t.Fatalf("ComputeWeightedMatch(%d, %d) = %d, want %d", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestComputeWeightedMatchDoesNotClamp(t *testing.T) {
	t.Parallel()

	item := models.SearchEssentialOilItem{EffectDegreeDiscomfortValue: 30}
	if got := ComputeWeightedMatch(item, 20); got != 150 {
		t.Fatalf("expected unclamped 150, got %d", got)
	}
}

func TestComputeWeightedMatchWithoutMaximum(t *testing.T) {
	t.Parallel()

	if got := ComputeWeightedMatch(models.SearchEssentialOilItem{EffectDegreeDiscomfortValue: 3}, 0); got != 0 {
		t.Fatalf("expected 0 for a non-positive maximum, got %d", got)
	}
}

func TestMaxScore(t *testing.T) {
	t.Parallel()

	items := []models.SearchEffectItem{
		{SearchEffectText: "A", DiscomfortValue: 3},
		{SearchEffectText: "B", DiscomfortValue: 4},
	}
	if got := MaxScore(items); got != 28 {
		t.Fatalf("MaxScore() = %d, want 28", got)
	}
	if got := MaxScore(nil); got != 0 {
		t.Fatalf("MaxScore(nil) = %d, want 0", got)
	}
}
