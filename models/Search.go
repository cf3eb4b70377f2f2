package models

const (
	// MaxDiscomfortValue is the highest importance a user can attach to a searched effect.
	MaxDiscomfortValue = 4

	// SearchEffectTextSeparator joins matched effect names on a search result.
	SearchEffectTextSeparator = ";@"
)

// SearchEffectItem is one row of the effect search form. A DiscomfortValue of zero means unset.
type SearchEffectItem struct {
	SearchEffectText string `json:"search_effect_text"`
	DiscomfortValue  int    `json:"discomfort_value"`
}

// SearchEssentialOilItem aggregates how well one essential oil matches the searched effects.
type SearchEssentialOilItem struct {
	EssentialOil                    EssentialOil `json:"essential_oil"`
	MatchAmount                     int          `json:"match_amount"`
	EffectDegreeDiscomfortValue     int          `json:"effect_degree_discomfort_value"`
	SearchEffectTextsInEssentialOil string       `json:"search_effect_texts_in_essential_oil"`
	WeightedMatchValue              int          `json:"weighted_match_value"`
}
