package pages

import (
	"net/http"
	"strconv"
	"strings"

	"oleum/models"
)

// SearchFormRows is the number of effect rows offered by the search form.
const SearchFormRows = 5

// SearchRow is one effect/discomfort pair entered by the user.
type SearchRow struct {
	Effect     string
	Discomfort int
}

// SearchForm captures the submitted search rows in display order.
type SearchForm struct {
	Rows []SearchRow
}

// SearchFormFromRequest reads the repeated effect and discomfort fields. Missing or
// unparsable discomfort values become zero, which the search ignores.
func SearchFormFromRequest(r *http.Request) SearchForm {
	form := SearchForm{Rows: make([]SearchRow, SearchFormRows)}
	if err := r.ParseForm(); err != nil {
		return form
	}
	effects := r.Form["effect"]
	discomforts := r.Form["discomfort"]
	for i := 0; i < SearchFormRows && i < len(effects); i++ {
		form.Rows[i].Effect = effects[i]
		if i < len(discomforts) {
			form.Rows[i].Discomfort = ParseDiscomfort(discomforts[i])
		}
	}
	return form
}

// Submitted reports whether any row names an effect.
func (f SearchForm) Submitted() bool {
	for _, row := range f.Rows {
		if strings.TrimSpace(row.Effect) != "" {
			return true
		}
	}
	return false
}

// Items converts the rows to search input, untouched; normalisation happens in the search engine.
func (f SearchForm) Items() []models.SearchEffectItem {
	items := make([]models.SearchEffectItem, 0, len(f.Rows))
	for _, row := range f.Rows {
		items = append(items, models.SearchEffectItem{SearchEffectText: row.Effect, DiscomfortValue: row.Discomfort})
	}
	return items
}

// ParseDiscomfort extracts a discomfort value, returning zero on failure.
func ParseDiscomfort(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}

// DiscomfortOption is a selectable discomfort level.
type DiscomfortOption struct {
	Value int
	Label string
}

// DiscomfortOptions lists the levels offered by the form, zero meaning "not set".
func DiscomfortOptions() []DiscomfortOption {
	return []DiscomfortOption{
		{Value: 0, Label: "-"},
		{Value: 1, Label: "1 · mild"},
		{Value: 2, Label: "2 · noticeable"},
		{Value: 3, Label: "3 · strong"},
		{Value: models.MaxDiscomfortValue, Label: "4 · severe"},
	}
}
