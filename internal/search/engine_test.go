package search

import (
	"context"
	"testing"

	"oleum/internal/db/dbtest"
	"oleum/internal/repository"
	"oleum/models"
)

func TestSearchSingleEffectRanksByScore(t *testing.T) {
	t.Parallel()

	engine := NewEngine(newCatalogFixture().repositories(), WithLogger(discardLogger()))
	result, err := engine.SearchEssentialOilsByEffects(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 3},
	})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	equalNames(t, result.Items, "Oil4", "Oil1", "Oil2")
	if result.SearchEssentialOilResultsAmount != 3 {
		t.Fatalf("expected 3 results, got %d", result.SearchEssentialOilResultsAmount)
	}
	if result.MaxEffectDegreeDiscomfortValue != 12 {
		t.Fatalf("expected max score 12, got %d", result.MaxEffectDegreeDiscomfortValue)
	}
	wantWeights := []int{100, 50, 25}
	for i, want := range wantWeights {
		if got := result.Items[i].WeightedMatchValue; got != want {
			t.Fatalf("%s weighted = %d, want %d", result.Items[i].EssentialOil.Name, got, want)
		}
	}
}

func TestSearchMultipleEffects(t *testing.T) {
	t.Parallel()

	engine := NewEngine(newCatalogFixture().repositories(), WithLogger(discardLogger()))
	result, err := engine.SearchEssentialOilsByEffects(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 3},
		{SearchEffectText: "", DiscomfortValue: 0},
		{SearchEffectText: scarEffect, DiscomfortValue: 4},
		{SearchEffectText: scarEffect + " ", DiscomfortValue: 1},
	})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	equalNames(t, result.Items, "Oil2", "Oil1", "Oil4")
	if result.MaxEffectDegreeDiscomfortValue != 28 {
		t.Fatalf("expected max score 28, got %d", result.MaxEffectDegreeDiscomfortValue)
	}

	want := []struct {
		matches, score, weighted int
	}{
		{2, 19, 68},
		{2, 10, 36},
		{1, 12, 43},
	}
	for i, w := range want {
		item := result.Items[i]
		if item.MatchAmount != w.matches || item.EffectDegreeDiscomfortValue != w.score || item.WeightedMatchValue != w.weighted {
			t.Fatalf("%s: got (%d, %d, %d), want %+v", item.EssentialOil.Name,
				item.MatchAmount, item.EffectDegreeDiscomfortValue, item.WeightedMatchValue, w)
		}
	}
}

func TestSearchWithoutUsableRowsMakesNoCalls(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	engine := NewEngine(f.repositories(), WithLogger(discardLogger()))
	result, err := engine.SearchEssentialOilsByEffects(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: "", DiscomfortValue: 4},
		{SearchEffectText: painEffect, DiscomfortValue: 0},
	})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if len(result.Items) != 0 || result.SearchEssentialOilResultsAmount != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if calls := f.effects.Calls(); calls.GetByFilter != 0 {
		t.Fatalf("expected no effect lookups, got %d", calls.GetByFilter)
	}
}

func TestSearchAgainstDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.Open(t)

	lavender := models.EssentialOil{Name: "Lavendel"}
	peppermint := models.EssentialOil{Name: "Pfefferminze"}
	dbtest.Create(t, db, &lavender)
	dbtest.Create(t, db, &peppermint)
	headache := models.Effect{Name: "Kopfschmerzen"}
	dbtest.Create(t, db, &headache)
	dbtest.Create(t, db, &models.EssentialOilEffect{EssentialOilID: lavender.ID, EffectID: headache.ID, EffectDegree: 2})
	dbtest.Create(t, db, &models.EssentialOilEffect{EssentialOilID: peppermint.ID, EffectID: headache.ID, EffectDegree: 4})

	engine := NewEngine(repository.New(db), WithLogger(discardLogger()))
	result, err := engine.SearchEssentialOilsByEffects(ctx, []models.SearchEffectItem{
		{SearchEffectText: "Kopfschmerzen ", DiscomfortValue: 2},
	})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	equalNames(t, result.Items, "Pfefferminze", "Lavendel")
	if result.Items[0].WeightedMatchValue != 100 || result.Items[1].WeightedMatchValue != 50 {
		t.Fatalf("unexpected weights: %+v", result.Items)
	}
}
