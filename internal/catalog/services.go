package catalog

import (
	"log/slog"

	"oleum/internal/repository"
	"oleum/models"
)

type (
	EssentialOils = Service[models.EssentialOil, repository.EssentialOilFilter]
	Effects       = Service[models.Effect, repository.EffectFilter]
	Molecules     = Service[models.Molecule, repository.MoleculeFilter]
	Substances    = Service[models.Substance, repository.NameFilter]
	Categories    = Service[models.Category, repository.NameFilter]
)

// Services bundles one Service per named entity.
type Services struct {
	EssentialOils *EssentialOils
	Effects       *Effects
	Molecules     *Molecules
	Substances    *Substances
	Categories    *Categories
}

// NewServices wires services over repos.
func NewServices(repos repository.Repositories, logger *slog.Logger) Services {
	return Services{
		EssentialOils: NewService("essential oil", repos.EssentialOils, func(name string) repository.EssentialOilFilter {
			return repository.EssentialOilFilter{Name: name}
		}, logger),
		Effects: NewService("effect", repos.Effects, func(name string) repository.EffectFilter {
			return repository.EffectFilter{Name: name}
		}, logger),
		Molecules: NewService("molecule", repos.Molecules, func(name string) repository.MoleculeFilter {
			return repository.MoleculeFilter{Name: name}
		}, logger),
		Substances: NewService("substance", repos.Substances, func(name string) repository.NameFilter {
			return repository.NameFilter{Name: name}
		}, logger),
		Categories: NewService("category", repos.Categories, func(name string) repository.NameFilter {
			return repository.NameFilter{Name: name}
		}, logger),
	}
}
