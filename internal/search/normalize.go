package search

import (
	"strings"

	"oleum/models"
)

// Normalize cleans the rows of an effect search form.
//
// Rows with blank text or a discomfort value outside [1, MaxDiscomfortValue] are
// dropped, text is trimmed, and rows sharing the same trimmed text collapse into
// one entry carrying the highest discomfort value. Survivors keep the position of
// their first occurrence.
func Normalize(items []models.SearchEffectItem) []models.SearchEffectItem {
	normalized := make([]models.SearchEffectItem, 0, len(items))
	positions := make(map[string]int, len(items))

	for _, item := range items {
		text := strings.TrimSpace(item.SearchEffectText)
		if !searchable(text, item.DiscomfortValue) {
			continue
		}
		if i, seen := positions[text]; seen {
			if item.DiscomfortValue > normalized[i].DiscomfortValue {
				normalized[i].DiscomfortValue = item.DiscomfortValue
			}
			continue
		}
		positions[text] = len(normalized)
		normalized = append(normalized, models.SearchEffectItem{
			SearchEffectText: text,
			DiscomfortValue:  item.DiscomfortValue,
		})
	}

	return normalized
}

func searchable(text string, discomfort int) bool {
	return text != "" && discomfort >= 1 && discomfort <= models.MaxDiscomfortValue
}
