// Package search matches searched effects to essential oils and ranks the oils by
// how well they cover the user's discomforts.
package search

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/models"
)

// Result is the outcome of one effect search.
type Result struct {
	SearchEffects                   []models.SearchEffectItem       `json:"search_effects"`
	Items                           []models.SearchEssentialOilItem `json:"items"`
	SearchEssentialOilResultsAmount int                             `json:"search_essential_oil_results_amount"`
	MaxEffectDegreeDiscomfortValue  int                             `json:"max_effect_degree_discomfort_value"`
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger injects the logger used by the engine and its aggregator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithLocale sets the collation used to break ties on oil names.
func WithLocale(locale language.Tag) Option {
	return func(e *Engine) {
		e.ranker = NewRanker(locale)
	}
}

// Engine runs the normalize, aggregate, score and rank pipeline.
type Engine struct {
	repos      repository.Repositories
	ranker     Ranker
	log        *slog.Logger
	aggregator *Aggregator
}

// NewEngine builds an Engine over the catalog repositories.
func NewEngine(repos repository.Repositories, opts ...Option) *Engine {
	e := &Engine{
		repos:  repos,
		ranker: NewRanker(language.Und),
		log:    applog.Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "search")
	e.aggregator = NewAggregator(repos.Effects, repos.EssentialOilEffects, repos.EssentialOils, e.log)
	return e
}

// SearchEssentialOilsByEffects returns the essential oils matching the searched
// effects, ranked and annotated with a weighted match percentage. Invalid rows never
// cause an error; only repository failures do.
func (e *Engine) SearchEssentialOilsByEffects(ctx context.Context, items []models.SearchEffectItem) (Result, error) {
	normalized := Normalize(items)
	result := Result{
		SearchEffects: normalized,
		Items:         []models.SearchEssentialOilItem{},
	}
	if len(normalized) == 0 {
		e.log.DebugContext(ctx, "effect search without usable rows", "submitted", len(items))
		return result, nil
	}

	aggregation, err := e.aggregator.Aggregate(ctx, normalized)
	if err != nil {
		return Result{}, err
	}

	maxScore := MaxScore(normalized)
	matches := aggregation.Items()
	for i := range matches {
		matches[i].WeightedMatchValue = ComputeWeightedMatch(matches[i], maxScore)
	}

	result.Items = e.ranker.Rank(matches)
	result.SearchEssentialOilResultsAmount = len(result.Items)
	result.MaxEffectDegreeDiscomfortValue = maxScore

	e.log.DebugContext(ctx, "effect search completed",
		"effects", len(normalized),
		"results", result.SearchEssentialOilResultsAmount,
		"maxScore", maxScore,
	)
	return result, nil
}
