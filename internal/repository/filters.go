package repository

import (
	"slices"
	"strings"

	"gorm.io/gorm"

	"oleum/models"
)

// EssentialOilFilter selects essential oils by exact name and/or identifiers.
type EssentialOilFilter struct {
	Name string
	IDs  []string
}

func (f EssentialOilFilter) Scope(db *gorm.DB) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		db = db.Where("name = ?", name)
	}
	if len(f.IDs) > 0 {
		db = db.Where("id IN ?", f.IDs)
	}
	return db
}

// EffectFilter selects effects by exact name and/or category.
type EffectFilter struct {
	Name       string
	CategoryID string
}

func (f EffectFilter) Scope(db *gorm.DB) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		db = db.Where("name = ?", name)
	}
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	return db
}

type MoleculeFilter struct {
	Name        string
	SubstanceID string
}

func (f MoleculeFilter) Scope(db *gorm.DB) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		db = db.Where("name = ?", name)
	}
	if f.SubstanceID != "" {
		db = db.Where("substance_id = ?", f.SubstanceID)
	}
	return db
}

// NameFilter serves the simple reference lookups (substances, categories).
type NameFilter struct {
	Name string
}

func (f NameFilter) Scope(db *gorm.DB) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		db = db.Where("name = ?", name)
	}
	return db
}

type UserFilter struct {
	Email string
}

func (f UserFilter) Scope(db *gorm.DB) *gorm.DB {
	if email := strings.TrimSpace(f.Email); email != "" {
		db = db.Where("lower(email) = ?", strings.ToLower(email))
	}
	return db
}

// EssentialOilEffectFilter selects junction rows by either foreign key.
type EssentialOilEffectFilter struct {
	EssentialOilID string
	EffectID       string
}

func (f EssentialOilEffectFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.EssentialOilID != "" {
		db = db.Where("essential_oil_id = ?", f.EssentialOilID)
	}
	if f.EffectID != "" {
		db = db.Where("effect_id = ?", f.EffectID)
	}
	return db
}

type EffectMoleculeFilter struct {
	EffectID   string
	MoleculeID string
}

func (f EffectMoleculeFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.EffectID != "" {
		db = db.Where("effect_id = ?", f.EffectID)
	}
	if f.MoleculeID != "" {
		db = db.Where("molecule_id = ?", f.MoleculeID)
	}
	return db
}

type EssentialOilMoleculeFilter struct {
	EssentialOilID string
	MoleculeID     string
}

func (f EssentialOilMoleculeFilter) Scope(db *gorm.DB) *gorm.DB {
	if f.EssentialOilID != "" {
		db = db.Where("essential_oil_id = ?", f.EssentialOilID)
	}
	if f.MoleculeID != "" {
		db = db.Where("molecule_id = ?", f.MoleculeID)
	}
	return db
}

func (f EssentialOilFilter) Matches(row models.EssentialOil) bool {
	if name := strings.TrimSpace(f.Name); name != "" && row.Name != name {
		return false
	}
	return len(f.IDs) == 0 || slices.Contains(f.IDs, row.ID)
}

func (f EffectFilter) Matches(row models.Effect) bool {
	if name := strings.TrimSpace(f.Name); name != "" && row.Name != name {
		return false
	}
	return f.CategoryID == "" || row.CategoryID == f.CategoryID
}

func (f MoleculeFilter) Matches(row models.Molecule) bool {
	if name := strings.TrimSpace(f.Name); name != "" && row.Name != name {
		return false
	}
	return f.SubstanceID == "" || row.SubstanceID == f.SubstanceID
}

func (f EssentialOilEffectFilter) Matches(row models.EssentialOilEffect) bool {
	return (f.EssentialOilID == "" || row.EssentialOilID == f.EssentialOilID) &&
		(f.EffectID == "" || row.EffectID == f.EffectID)
}

func (f EffectMoleculeFilter) Matches(row models.EffectMolecule) bool {
	return (f.EffectID == "" || row.EffectID == f.EffectID) &&
		(f.MoleculeID == "" || row.MoleculeID == f.MoleculeID)
}

func (f EssentialOilMoleculeFilter) Matches(row models.EssentialOilMolecule) bool {
	return (f.EssentialOilID == "" || row.EssentialOilID == f.EssentialOilID) &&
		(f.MoleculeID == "" || row.MoleculeID == f.MoleculeID)
}
