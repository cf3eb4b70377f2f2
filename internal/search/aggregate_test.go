package search

import (
	"context"
	"errors"
	"testing"

	"oleum/models"
)

func newTestAggregator(f catalogFixture) *Aggregator {
	return NewAggregator(f.effects, f.oilEffects, f.oils, discardLogger())
}

func TestAggregateSingleEffect(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	aggregation, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 3},
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	want := map[string]int{"Oil1": 6, "Oil2": 3, "Oil4": 12}
	if aggregation.Len() != len(want) {
		t.Fatalf("expected %d oils, got %d", len(want), aggregation.Len())
	}
	for id, score := range want {
		item, ok := aggregation.Get(id)
		if !ok {
			t.Fatalf("expected %s in aggregation", id)
		}
		if item.EffectDegreeDiscomfortValue != score || item.MatchAmount != 1 {
			t.Fatalf("%s: got score %d matches %d, want score %d matches 1",
				id, item.EffectDegreeDiscomfortValue, item.MatchAmount, score)
		}
		if item.SearchEffectTextsInEssentialOil != painEffect {
			t.Fatalf("%s: unexpected effect texts %q", id, item.SearchEffectTextsInEssentialOil)
		}
	}

	equalNames(t, aggregation.Items(), "Oil1", "Oil2", "Oil4")

	if calls := f.oils.Calls(); calls.GetByID != 3 {
		t.Fatalf("expected one oil lookup per junction, got %d", calls.GetByID)
	}
}

func TestAggregateMultipleEffects(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	aggregation, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 3},
		{SearchEffectText: scarEffect, DiscomfortValue: 4},
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	tests := []struct {
		id      string
		matches int
		score   int
		texts   string
	}{
		{"Oil1", 2, 10, painEffect + ";@" + scarEffect},
		{"Oil2", 2, 19, painEffect + ";@" + scarEffect},
		{"Oil4", 1, 12, painEffect},
	}
	for _, tt := range tests {
		item, ok := aggregation.Get(tt.id)
		if !ok {
			t.Fatalf("expected %s in aggregation", tt.id)
		}
		if item.MatchAmount != tt.matches || item.EffectDegreeDiscomfortValue != tt.score {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", tt.id, item.MatchAmount, item.EffectDegreeDiscomfortValue, tt.matches, tt.score)
		}
		if item.SearchEffectTextsInEssentialOil != tt.texts {
			t.Fatalf("%s: texts = %q, want %q", tt.id, item.SearchEffectTextsInEssentialOil, tt.texts)
		}
	}

	if calls := f.oils.Calls(); calls.GetByID != 5 {
		t.Fatalf("expected oil lookups to be repeated per junction, got %d", calls.GetByID)
	}
}

func TestAggregateSkipsUnknownEffects(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	aggregation, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: "Wirkung gegen Langeweile", DiscomfortValue: 4},
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if aggregation.Len() != 0 {
		t.Fatalf("expected no matches, got %d", aggregation.Len())
	}
	if calls := f.oilEffects.Calls(); calls.GetByFilter != 0 {
		t.Fatalf("expected no junction lookups, got %d", calls.GetByFilter)
	}
}

func TestAggregateSkipsUnusableRowsWithoutRepositoryCalls(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	aggregation, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: "  ", DiscomfortValue: 3},
		{SearchEffectText: painEffect, DiscomfortValue: 0},
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if aggregation.Len() != 0 {
		t.Fatalf("expected no matches, got %d", aggregation.Len())
	}
	if calls := f.effects.Calls(); calls.GetByFilter+calls.GetAll != 0 {
		t.Fatalf("expected no effect lookups, got %+v", calls)
	}
	if calls := f.oilEffects.Calls(); calls.GetByFilter+calls.GetAll != 0 {
		t.Fatalf("expected no junction lookups, got %+v", calls)
	}
}

func TestAggregateIgnoresOutOfRangeDegreesAndDanglingJunctions(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	f.oilEffects.Insert(context.Background(), ptr(junction("J6", "Oil3", "E1", 5)))
	f.oilEffects.Insert(context.Background(), ptr(junction("J7", "Ghost", "E1", 2)))

	aggregation, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 1},
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if _, ok := aggregation.Get("Oil3"); ok {
		t.Fatal("expected junction with degree 5 to be ignored")
	}
	if _, ok := aggregation.Get("Ghost"); ok {
		t.Fatal("expected junction to a missing oil to be ignored")
	}
	if aggregation.Len() != 3 {
		t.Fatalf("expected 3 matches, got %d", aggregation.Len())
	}
}

func TestAggregatePropagatesRepositoryErrors(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture()
	f.oilEffects.FailQuery = errors.New("store offline")

	_, err := newTestAggregator(f).Aggregate(context.Background(), []models.SearchEffectItem{
		{SearchEffectText: painEffect, DiscomfortValue: 2},
	})
	if err == nil {
		t.Fatal("expected repository error to be returned")
	}
}

func ptr[T any](v T) *T {
	return &v
}
