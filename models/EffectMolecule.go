package models

type EffectMolecule struct {
	Base
	EffectID     string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_effect_molecule" json:"effect_id"`
	MoleculeID   string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_effect_molecule" json:"molecule_id"`
	EffectDegree int    `gorm:"not null" json:"effect_degree"`
}
