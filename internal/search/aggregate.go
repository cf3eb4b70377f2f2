package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"oleum/internal/repository"
	"oleum/internal/validation"
	"oleum/models"
)

// Aggregation holds per-oil match statistics keyed by essential oil id.
type Aggregation struct {
	byOil map[string]*models.SearchEssentialOilItem
	order []string
}

func newAggregation() *Aggregation {
	return &Aggregation{byOil: make(map[string]*models.SearchEssentialOilItem)}
}

// Len returns the number of distinct oils matched.
func (a *Aggregation) Len() int {
	return len(a.order)
}

// Get returns the aggregate for oilID.
func (a *Aggregation) Get(oilID string) (models.SearchEssentialOilItem, bool) {
	item, ok := a.byOil[oilID]
	if !ok {
		return models.SearchEssentialOilItem{}, false
	}
	return *item, true
}

// Items returns the aggregates in the order oils were first matched.
func (a *Aggregation) Items() []models.SearchEssentialOilItem {
	items := make([]models.SearchEssentialOilItem, 0, len(a.order))
	for _, id := range a.order {
		items = append(items, *a.byOil[id])
	}
	return items
}

// add folds one junction hit into the aggregate for oil. firstForItem is true the
// first time the current search row reaches this oil.
func (a *Aggregation) add(oil models.EssentialOil, score int, effectName string, firstForItem bool) {
	item, ok := a.byOil[oil.ID]
	if !ok {
		item = &models.SearchEssentialOilItem{EssentialOil: oil}
		a.byOil[oil.ID] = item
		a.order = append(a.order, oil.ID)
	}

	item.EffectDegreeDiscomfortValue += score
	if !firstForItem {
		return
	}
	item.MatchAmount++
	if item.SearchEffectTextsInEssentialOil == "" {
		item.SearchEffectTextsInEssentialOil = effectName
	} else {
		item.SearchEffectTextsInEssentialOil = strings.Join(
			[]string{item.SearchEffectTextsInEssentialOil, effectName},
			models.SearchEffectTextSeparator,
		)
	}
}

// Aggregator resolves searched effect names to essential oils through the
// essential oil / effect junction.
type Aggregator struct {
	effects    repository.EffectRepo
	oilEffects repository.EssentialOilEffectRepo
	oils       repository.EssentialOilRepo
	log        *slog.Logger
}

// NewAggregator builds an Aggregator over the given repositories.
func NewAggregator(effects repository.EffectRepo, oilEffects repository.EssentialOilEffectRepo, oils repository.EssentialOilRepo, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		effects:    effects,
		oilEffects: oilEffects,
		oils:       oils,
		log:        logger,
	}
}

// Aggregate processes items sequentially. Each oil lookup is issued per junction
// so repository calls stay in a predictable order.
func (a *Aggregator) Aggregate(ctx context.Context, items []models.SearchEffectItem) (*Aggregation, error) {
	aggregation := newAggregation()
	for _, item := range items {
		if err := a.accumulate(ctx, aggregation, item); err != nil {
			return nil, err
		}
	}
	return aggregation, nil
}

func (a *Aggregator) accumulate(ctx context.Context, aggregation *Aggregation, item models.SearchEffectItem) error {
	text := strings.TrimSpace(item.SearchEffectText)
	if !searchable(text, item.DiscomfortValue) {
		return nil
	}

	effects, err := a.effects.GetByFilter(ctx, repository.EffectFilter{Name: text})
	if err != nil {
		return fmt.Errorf("look up effect %q: %w", text, err)
	}
	if len(effects) == 0 {
		a.log.DebugContext(ctx, "no effect matches search text", "text", text)
		return nil
	}

	reached := make(map[string]bool)
	for _, effect := range effects {
		junctions, err := a.oilEffects.GetByFilter(ctx, repository.EssentialOilEffectFilter{EffectID: effect.ID})
		if err != nil {
			return fmt.Errorf("load essential oils for effect %q: %w", effect.Name, err)
		}

		for _, junction := range junctions {
			if !models.ValidEffectDegree(junction.EffectDegree) {
				a.log.DebugContext(ctx, "ignoring junction with out-of-range degree",
					"junction", junction.ID, "degree", junction.EffectDegree)
				continue
			}

			oil, err := a.oils.GetByID(ctx, junction.EssentialOilID)
			if err != nil {
				if errors.Is(err, validation.ErrNotFound) {
					a.log.WarnContext(ctx, "junction references a missing essential oil",
						"junction", junction.ID, "essentialOil", junction.EssentialOilID)
					continue
				}
				return fmt.Errorf("load essential oil %q: %w", junction.EssentialOilID, err)
			}

			aggregation.add(*oil, junction.EffectDegree*item.DiscomfortValue, effect.Name, !reached[oil.ID])
			reached[oil.ID] = true
		}
	}

	return nil
}
