package models

// Substance groups molecules by chemical family.
type Substance struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (s Substance) GetName() string { return s.Name }
