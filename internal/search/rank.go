package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"oleum/models"
)

// Ranker orders search results by match count, then score, then oil name.
type Ranker struct {
	locale language.Tag
}

// NewRanker compares oil names using the collation rules of locale.
func NewRanker(locale language.Tag) Ranker {
	return Ranker{locale: locale}
}

// Rank returns a sorted copy of items. The sort is stable, so items equal on all
// keys keep their aggregation order.
func (r Ranker) Rank(items []models.SearchEssentialOilItem) []models.SearchEssentialOilItem {
	ranked := make([]models.SearchEssentialOilItem, len(items))
	copy(ranked, items)
	collator := collate.New(r.locale)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchAmount != b.MatchAmount {
			return a.MatchAmount > b.MatchAmount
		}
		if a.EffectDegreeDiscomfortValue != b.EffectDegreeDiscomfortValue {
			return a.EffectDegreeDiscomfortValue > b.EffectDegreeDiscomfortValue
		}
		return collator.CompareString(a.EssentialOil.Name, b.EssentialOil.Name) < 0
	})

	return ranked
}

// Rank orders items with the root locale.
func Rank(items []models.SearchEssentialOilItem) []models.SearchEssentialOilItem {
	return NewRanker(language.Und).Rank(items)
}
