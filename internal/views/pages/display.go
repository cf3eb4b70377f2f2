package pages

import (
	"fmt"
	"strings"

	"oleum/models"
)

// DefaultDash replaces blank values with a placeholder.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// MatchedEffects splits the joined effect names of a result row.
func MatchedEffects(item models.SearchEssentialOilItem) []string {
	if item.SearchEffectTextsInEssentialOil == "" {
		return nil
	}
	return strings.Split(item.SearchEffectTextsInEssentialOil, models.SearchEffectTextSeparator)
}

// WeightedLabel formats a weighted match for display.
func WeightedLabel(value int) string {
	return fmt.Sprintf("%d %%", value)
}

// MatchBarWidth clamps a weighted match to a CSS width percentage.
func MatchBarWidth(value int) string {
	switch {
	case value < 0:
		value = 0
	case value > 100:
		value = 100
	}
	return fmt.Sprintf("width: %d%%", value)
}
