package models

// Category groups effects for browsing.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (c Category) GetName() string { return c.Name }
