package models

type EssentialOilMolecule struct {
	Base
	EssentialOilID     string  `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_essential_oil_molecule" json:"essential_oil_id"`
	MoleculeID         string  `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_essential_oil_molecule" json:"molecule_id"`
	MoleculePercentage float64 `gorm:"not null" json:"molecule_percentage"`
}
