package models

type Molecule struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	SubstanceID string `gorm:"type:varchar(36);index" json:"substance_id"`
}

func (m Molecule) GetName() string { return m.Name }
