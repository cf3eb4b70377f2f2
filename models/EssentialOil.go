package models

type EssentialOil struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	LatinName   string `json:"latin_name"`
	Description string `gorm:"type:text" json:"description"`
	Origin      string `json:"origin"`
	Usage       string `gorm:"type:text" json:"usage"`
	ImageURL    string `json:"image_url"`
}

func (o EssentialOil) GetName() string { return o.Name }
