package memstore

import (
	"context"
	"errors"
	"testing"

	"oleum/internal/repository"
	"oleum/internal/validation"
	"oleum/models"
)

func TestStoreRecordsCalls(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New[models.EssentialOilEffect, repository.EssentialOilEffectFilter]("essential oil effect",
		models.EssentialOilEffect{Base: models.Base{ID: "j1"}, EssentialOilID: "oil-1", EffectID: "e1", EffectDegree: 2},
		models.EssentialOilEffect{Base: models.Base{ID: "j2"}, EssentialOilID: "oil-2", EffectID: "e1", EffectDegree: 1},
	)

	rows, err := store.GetByFilter(ctx, repository.EssentialOilEffectFilter{EssentialOilID: "oil-2"})
	if err != nil {
		t.Fatalf("GetByFilter returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "j2" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if res := store.Delete(ctx, "j1"); res.HasErrors() {
		t.Fatalf("delete returned errors: %v", res)
	}
	if res := store.Delete(ctx, "j1"); !res.HasErrors() {
		t.Fatal("expected second delete to report a missing row")
	}

	calls := store.Calls()
	if calls.GetByFilter != 1 || calls.Delete != 2 {
		t.Fatalf("unexpected call counts: %+v", calls)
	}
	if len(store.Rows()) != 1 {
		t.Fatalf("expected one remaining row, got %d", len(store.Rows()))
	}
}

func TestStoreInsertAssignsIdentifier(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New[models.Effect, repository.EffectFilter]("effect")
	effect := models.Effect{Name: "Wirkung gegen Narben"}
	if res := store.Insert(ctx, &effect); res.HasErrors() {
		t.Fatalf("insert returned errors: %v", res)
	}
	if effect.ID == "" {
		t.Fatal("expected insert to assign an identifier")
	}

	loaded, err := store.GetByID(ctx, effect.ID)
	if err != nil || loaded.Name != effect.Name {
		t.Fatalf("GetByID = %+v, %v", loaded, err)
	}
	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, validation.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreInjectedFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New[models.Effect, repository.EffectFilter]("effect", models.Effect{Base: models.Base{ID: "e1"}, Name: "A"})
	store.FailDelete["e1"] = true
	store.FailInsert = true
	store.FailQuery = errors.New("offline")

	if res := store.Delete(ctx, "e1"); !res.HasErrors() {
		t.Fatal("expected injected delete failure")
	}
	if res := store.Insert(ctx, &models.Effect{Name: "B"}); !res.HasErrors() {
		t.Fatal("expected injected insert failure")
	}
	if _, err := store.GetAll(ctx, repository.EffectFilter{}); err == nil {
		t.Fatal("expected injected query failure")
	}
}
