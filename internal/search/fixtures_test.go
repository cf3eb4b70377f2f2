package search

import (
	"io"
	"log/slog"

	"oleum/internal/repository"
	"oleum/internal/repository/memstore"
	"oleum/models"
)

const (
	painEffect = "Wirkung gegen Schmerzen"
	scarEffect = "Wirkung gegen Narben"
)

type catalogFixture struct {
	oils       *memstore.Store[models.EssentialOil, repository.EssentialOilFilter]
	effects    *memstore.Store[models.Effect, repository.EffectFilter]
	oilEffects *memstore.Store[models.EssentialOilEffect, repository.EssentialOilEffectFilter]
}

func (f catalogFixture) repositories() repository.Repositories {
	return repository.Repositories{
		EssentialOils:       f.oils,
		Effects:             f.effects,
		EssentialOilEffects: f.oilEffects,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func oil(id string) models.EssentialOil {
	return models.EssentialOil{Base: models.Base{ID: id}, Name: id}
}

func junction(id, oilID, effectID string, degree int) models.EssentialOilEffect {
	return models.EssentialOilEffect{
		Base:           models.Base{ID: id},
		EssentialOilID: oilID,
		EffectID:       effectID,
		EffectDegree:   degree,
	}
}

// newCatalogFixture seeds the reference scenario: pain relief on Oil1, Oil2 and
// Oil4, scar treatment on Oil1 and Oil2, Oil3 without effects.
func newCatalogFixture() catalogFixture {
	return catalogFixture{
		oils: memstore.New[models.EssentialOil, repository.EssentialOilFilter]("essential oil",
			oil("Oil1"), oil("Oil2"), oil("Oil3"), oil("Oil4"),
		),
		effects: memstore.New[models.Effect, repository.EffectFilter]("effect",
			models.Effect{Base: models.Base{ID: "E1"}, Name: painEffect},
			models.Effect{Base: models.Base{ID: "E2"}, Name: scarEffect},
		),
		oilEffects: memstore.New[models.EssentialOilEffect, repository.EssentialOilEffectFilter]("essential oil effect",
			junction("J1", "Oil1", "E1", 2),
			junction("J2", "Oil2", "E1", 1),
			junction("J3", "Oil4", "E1", 4),
			junction("J4", "Oil1", "E2", 1),
			junction("J5", "Oil2", "E2", 4),
		),
	}
}
