package search

import (
	"testing"

	"golang.org/x/text/language"

	"oleum/models"
)

func ranked(name string, matches, score int) models.SearchEssentialOilItem {
	return models.SearchEssentialOilItem{
		EssentialOil:                models.EssentialOil{Base: models.Base{ID: name}, Name: name},
		MatchAmount:                 matches,
		EffectDegreeDiscomfortValue: score,
	}
}

func names(items []models.SearchEssentialOilItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.EssentialOil.Name)
	}
	return out
}

func equalNames(t *testing.T, got []models.SearchEssentialOilItem, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got %v, want %v", gotNames, want)
		}
	}
}

func TestRankOrdersByMatchesThenScoreThenName(t *testing.T) {
	t.Parallel()

	items := []models.SearchEssentialOilItem{
		ranked("Oil4", 1, 12),
		ranked("Zitrone", 2, 10),
		ranked("Oil2", 2, 19),
		ranked("Oil1", 2, 10),
	}

	equalNames(t, Rank(items), "Oil2", "Oil1", "Zitrone", "Oil4")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := []models.SearchEssentialOilItem{ranked("B", 1, 1), ranked("A", 2, 1)}
	Rank(items)
	equalNames(t, items, "B", "A")
}

func TestRankIsStableForIdenticalKeys(t *testing.T) {
	t.Parallel()

	first := ranked("Lavendel", 1, 4)
	first.EssentialOil.ID = "first"
	second := ranked("Lavendel", 1, 4)
	second.EssentialOil.ID = "second"

	got := Rank([]models.SearchEssentialOilItem{first, second})
	if got[0].EssentialOil.ID != "first" || got[1].EssentialOil.ID != "second" {
		t.Fatalf("expected aggregation order to be kept, got %+v", got)
	}
}

func TestRankerUsesLocaleCollation(t *testing.T) {
	t.Parallel()

	items := []models.SearchEssentialOilItem{
		ranked("Zeder", 1, 4),
		ranked("Ätherisch", 1, 4),
		ranked("Basilikum", 1, 4),
	}

	equalNames(t, NewRanker(language.German).Rank(items), "Ätherisch", "Basilikum", "Zeder")
}
