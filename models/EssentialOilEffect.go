package models

const (
	// MinEffectDegree and MaxEffectDegree bound the intensity stored on degree junctions.
	MinEffectDegree = 1
	MaxEffectDegree = 4
)

// EssentialOilEffect records that an essential oil exhibits an effect at a given intensity.
type EssentialOilEffect struct {
	Base
	EssentialOilID string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_essential_oil_effect" json:"essential_oil_id"`
	EffectID       string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_essential_oil_effect" json:"effect_id"`
	EffectDegree   int    `gorm:"not null" json:"effect_degree"`
}

// ValidEffectDegree reports whether degree lies within the documented bounds.
func ValidEffectDegree(degree int) bool {
	return degree >= MinEffectDegree && degree <= MaxEffectDegree
}
