package models

// Effect is a named discomfort or condition users search against.
type Effect struct {
	Base
	Name       string `gorm:"uniqueIndex;not null" json:"name"`
	CategoryID string `gorm:"type:varchar(36);index" json:"category_id"`
}

func (e Effect) GetName() string { return e.Name }
