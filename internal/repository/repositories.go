package repository

import (
	"gorm.io/gorm"

	"oleum/models"
)

type (
	EssentialOilRepo         = Repository[models.EssentialOil, EssentialOilFilter]
	EffectRepo               = Repository[models.Effect, EffectFilter]
	MoleculeRepo             = Repository[models.Molecule, MoleculeFilter]
	SubstanceRepo            = Repository[models.Substance, NameFilter]
	CategoryRepo             = Repository[models.Category, NameFilter]
	UserRepo                 = Repository[models.User, UserFilter]
	EssentialOilEffectRepo   = Repository[models.EssentialOilEffect, EssentialOilEffectFilter]
	EffectMoleculeRepo       = Repository[models.EffectMolecule, EffectMoleculeFilter]
	EssentialOilMoleculeRepo = Repository[models.EssentialOilMolecule, EssentialOilMoleculeFilter]
)

// Repositories bundles one repository per catalog table.
type Repositories struct {
	EssentialOils         EssentialOilRepo
	Effects               EffectRepo
	Molecules             MoleculeRepo
	Substances            SubstanceRepo
	Categories            CategoryRepo
	Users                 UserRepo
	EssentialOilEffects   EssentialOilEffectRepo
	EffectMolecules       EffectMoleculeRepo
	EssentialOilMolecules EssentialOilMoleculeRepo
}

// New wires gorm-backed repositories for every catalog table.
func New(db *gorm.DB) Repositories {
	return Repositories{
		EssentialOils:         NewStore[models.EssentialOil, EssentialOilFilter](db, "essential oil"),
		Effects:               NewStore[models.Effect, EffectFilter](db, "effect"),
		Molecules:             NewStore[models.Molecule, MoleculeFilter](db, "molecule"),
		Substances:            NewStore[models.Substance, NameFilter](db, "substance"),
		Categories:            NewStore[models.Category, NameFilter](db, "category"),
		Users:                 NewStore[models.User, UserFilter](db, "user"),
		EssentialOilEffects:   NewStore[models.EssentialOilEffect, EssentialOilEffectFilter](db, "essential oil effect"),
		EffectMolecules:       NewStore[models.EffectMolecule, EffectMoleculeFilter](db, "effect molecule"),
		EssentialOilMolecules: NewStore[models.EssentialOilMolecule, EssentialOilMoleculeFilter](db, "essential oil molecule"),
	}
}
