// Package assignment keeps the many-to-many junction collections consistent with
// their parents: deleting a parent removes every row referencing it, and replacing
// a parent's assignments wipes and reinserts its rows.
package assignment

import (
	"context"
	"fmt"
	"log/slog"

	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/internal/validation"
	"oleum/models"
)

// Kind selects the junction a replace-assignments call targets.
type Kind string

const (
	EffectMolecules       Kind = "effect-molecules"
	EssentialOilEffects   Kind = "essential-oil-effects"
	EssentialOilMolecules Kind = "essential-oil-molecules"
)

// Manager coordinates cascade deletes and assignment replacement.
type Manager struct {
	repos repository.Repositories
	log   *slog.Logger
}

// NewManager builds a Manager. A nil logger falls back to the application logger.
func NewManager(repos repository.Repositories, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = applog.Logger()
	}
	return &Manager{repos: repos, log: logger.With("component", "assignment")}
}

// CascadeDeleteEffect deletes an effect and then its essential oil and molecule assignments.
func (m *Manager) CascadeDeleteEffect(ctx context.Context, id string) validation.Result {
	return m.cascade(ctx, "effect", id, m.repos.Effects.Delete,
		m.essentialOilEffects(func(id string) repository.EssentialOilEffectFilter {
			return repository.EssentialOilEffectFilter{EffectID: id}
		}),
		m.effectMolecules(func(id string) repository.EffectMoleculeFilter {
			return repository.EffectMoleculeFilter{EffectID: id}
		}),
	)
}

// CascadeDeleteEssentialOil deletes an essential oil and then its effect and molecule assignments.
func (m *Manager) CascadeDeleteEssentialOil(ctx context.Context, id string) validation.Result {
	return m.cascade(ctx, "essential oil", id, m.repos.EssentialOils.Delete,
		m.essentialOilEffects(func(id string) repository.EssentialOilEffectFilter {
			return repository.EssentialOilEffectFilter{EssentialOilID: id}
		}),
		m.essentialOilMolecules(func(id string) repository.EssentialOilMoleculeFilter {
			return repository.EssentialOilMoleculeFilter{EssentialOilID: id}
		}),
	)
}

// CascadeDeleteMolecule deletes a molecule and then its effect and essential oil assignments.
func (m *Manager) CascadeDeleteMolecule(ctx context.Context, id string) validation.Result {
	return m.cascade(ctx, "molecule", id, m.repos.Molecules.Delete,
		m.effectMolecules(func(id string) repository.EffectMoleculeFilter {
			return repository.EffectMoleculeFilter{MoleculeID: id}
		}),
		m.essentialOilMolecules(func(id string) repository.EssentialOilMoleculeFilter {
			return repository.EssentialOilMoleculeFilter{MoleculeID: id}
		}),
	)
}

// cascade deletes the parent first. When that fails no junction is touched;
// otherwise every junction collection is purged and all failures are collected.
func (m *Manager) cascade(ctx context.Context, kind, id string, deleteParent func(context.Context, string) validation.Result, junctions ...purger) validation.Result {
	result := validation.New()
	result.Merge("", deleteParent(ctx, id))
	if result.HasErrors() {
		m.log.DebugContext(ctx, "parent delete failed, junctions left untouched", "kind", kind, "id", id, "error", result.First())
		return result
	}

	for _, junction := range junctions {
		result.Merge("", junction.Purge(ctx, id))
	}
	if result.HasErrors() {
		m.log.ErrorContext(ctx, "cascade delete left junction errors", "kind", kind, "id", id, "errors", len(result), "first", result.First())
	} else {
		m.log.DebugContext(ctx, "cascade delete completed", "kind", kind, "id", id)
	}
	return result
}

// ReplaceAssignments replaces the children of parentID on the junction selected by kind.
func (m *Manager) ReplaceAssignments(ctx context.Context, kind Kind, parentID string, children []Assignment) (validation.Result, error) {
	switch kind {
	case EffectMolecules:
		return m.ReplaceEffectMolecules(ctx, parentID, children)
	case EssentialOilEffects:
		return m.ReplaceEssentialOilEffects(ctx, parentID, children)
	case EssentialOilMolecules:
		return m.ReplaceEssentialOilMolecules(ctx, parentID, children)
	default:
		return nil, validation.Invariant("replace assignments", "unknown assignment kind %q", kind)
	}
}

// ReplaceEffectMolecules assigns molecules to an effect; strength is the effect degree.
func (m *Manager) ReplaceEffectMolecules(ctx context.Context, effectID string, children []Assignment) (validation.Result, error) {
	binding := m.effectMoleculeBinding()
	return m.replace(ctx, binding.Name, effectID, func() (validation.Result, error) {
		return binding.Replace(ctx, effectID, children)
	})
}

// ReplaceEssentialOilEffects assigns effects to an essential oil; strength is the effect degree.
func (m *Manager) ReplaceEssentialOilEffects(ctx context.Context, oilID string, children []Assignment) (validation.Result, error) {
	binding := m.essentialOilEffectBinding()
	return m.replace(ctx, binding.Name, oilID, func() (validation.Result, error) {
		return binding.Replace(ctx, oilID, children)
	})
}

// ReplaceEssentialOilMolecules assigns molecules to an essential oil; strength is the percentage.
func (m *Manager) ReplaceEssentialOilMolecules(ctx context.Context, oilID string, children []Assignment) (validation.Result, error) {
	binding := m.essentialOilMoleculeBinding()
	return m.replace(ctx, binding.Name, oilID, func() (validation.Result, error) {
		return binding.Replace(ctx, oilID, children)
	})
}

// Assignments lists the children currently assigned to parentID on the junction selected by kind.
func (m *Manager) Assignments(ctx context.Context, kind Kind, parentID string) ([]Assignment, error) {
	switch kind {
	case EffectMolecules:
		return m.effectMoleculeBinding().List(ctx, parentID)
	case EssentialOilEffects:
		return m.essentialOilEffectBinding().List(ctx, parentID)
	case EssentialOilMolecules:
		return m.essentialOilMoleculeBinding().List(ctx, parentID)
	default:
		return nil, validation.Invariant("list assignments", "unknown assignment kind %q", kind)
	}
}

func (m *Manager) effectMoleculeBinding() Binding[models.EffectMolecule, repository.EffectMoleculeFilter] {
	return Binding[models.EffectMolecule, repository.EffectMoleculeFilter]{
		Name: "effect molecules",
		Junction: m.effectMolecules(func(id string) repository.EffectMoleculeFilter {
			return repository.EffectMoleculeFilter{EffectID: id}
		}),
		Parent: exists(m.repos.Effects.GetByID),
		Child:  exists(m.repos.Molecules.GetByID),
		Check:  checkDegree,
		Build: func(parentID string, a Assignment) (models.EffectMolecule, bool) {
			degree := roundedDegree(a.Strength)
			return models.EffectMolecule{EffectID: parentID, MoleculeID: a.ChildID, EffectDegree: degree}, a.Strength > 0
		},
		Project: func(row models.EffectMolecule) Assignment {
			return Assignment{ChildID: row.MoleculeID, Strength: float64(row.EffectDegree)}
		},
		Insert: m.repos.EffectMolecules.Insert,
	}
}

func (m *Manager) essentialOilEffectBinding() Binding[models.EssentialOilEffect, repository.EssentialOilEffectFilter] {
	return Binding[models.EssentialOilEffect, repository.EssentialOilEffectFilter]{
		Name: "essential oil effects",
		Junction: m.essentialOilEffects(func(id string) repository.EssentialOilEffectFilter {
			return repository.EssentialOilEffectFilter{EssentialOilID: id}
		}),
		Parent: exists(m.repos.EssentialOils.GetByID),
		Child:  exists(m.repos.Effects.GetByID),
		Check:  checkDegree,
		Build: func(parentID string, a Assignment) (models.EssentialOilEffect, bool) {
			degree := roundedDegree(a.Strength)
			return models.EssentialOilEffect{EssentialOilID: parentID, EffectID: a.ChildID, EffectDegree: degree}, a.Strength > 0
		},
		Project: func(row models.EssentialOilEffect) Assignment {
			return Assignment{ChildID: row.EffectID, Strength: float64(row.EffectDegree)}
		},
		Insert: m.repos.EssentialOilEffects.Insert,
	}
}

func (m *Manager) essentialOilMoleculeBinding() Binding[models.EssentialOilMolecule, repository.EssentialOilMoleculeFilter] {
	return Binding[models.EssentialOilMolecule, repository.EssentialOilMoleculeFilter]{
		Name: "essential oil molecules",
		Junction: m.essentialOilMolecules(func(id string) repository.EssentialOilMoleculeFilter {
			return repository.EssentialOilMoleculeFilter{EssentialOilID: id}
		}),
		Parent: exists(m.repos.EssentialOils.GetByID),
		Child:  exists(m.repos.Molecules.GetByID),
		Check:  checkPercentage,
		Build: func(parentID string, a Assignment) (models.EssentialOilMolecule, bool) {
			return models.EssentialOilMolecule{EssentialOilID: parentID, MoleculeID: a.ChildID, MoleculePercentage: a.Strength}, a.Strength > 0
		},
		Project: func(row models.EssentialOilMolecule) Assignment {
			return Assignment{ChildID: row.MoleculeID, Strength: row.MoleculePercentage}
		},
		Insert: m.repos.EssentialOilMolecules.Insert,
	}
}

func (m *Manager) replace(ctx context.Context, name, parentID string, run func() (validation.Result, error)) (validation.Result, error) {
	result, err := run()
	switch {
	case err != nil:
		m.log.DebugContext(ctx, "replace assignments rejected", "junction", name, "parent", parentID, "error", err)
	case result.HasErrors():
		m.log.DebugContext(ctx, "replace assignments reported errors", "junction", name, "parent", parentID, "first", result.First())
	default:
		m.log.DebugContext(ctx, "assignments replaced", "junction", name, "parent", parentID)
	}
	return result, err
}

func (m *Manager) essentialOilEffects(filter func(string) repository.EssentialOilEffectFilter) Junction[models.EssentialOilEffect, repository.EssentialOilEffectFilter] {
	return Junction[models.EssentialOilEffect, repository.EssentialOilEffectFilter]{
		Name:   "EssentialOilEffect",
		Repo:   m.repos.EssentialOilEffects,
		Filter: filter,
	}
}

func (m *Manager) effectMolecules(filter func(string) repository.EffectMoleculeFilter) Junction[models.EffectMolecule, repository.EffectMoleculeFilter] {
	return Junction[models.EffectMolecule, repository.EffectMoleculeFilter]{
		Name:   "EffectMolecule",
		Repo:   m.repos.EffectMolecules,
		Filter: filter,
	}
}

func (m *Manager) essentialOilMolecules(filter func(string) repository.EssentialOilMoleculeFilter) Junction[models.EssentialOilMolecule, repository.EssentialOilMoleculeFilter] {
	return Junction[models.EssentialOilMolecule, repository.EssentialOilMoleculeFilter]{
		Name:   "EssentialOilMolecule",
		Repo:   m.repos.EssentialOilMolecules,
		Filter: filter,
	}
}

func exists[T any](get func(context.Context, string) (*T, error)) func(context.Context, string) error {
	return func(ctx context.Context, id string) error {
		_, err := get(ctx, id)
		return err
	}
}

func checkDegree(a Assignment) error {
	if degree := roundedDegree(a.Strength); !models.ValidEffectDegree(degree) {
		return fmt.Errorf("effect degree %d is outside %d..%d", degree, models.MinEffectDegree, models.MaxEffectDegree)
	}
	return nil
}

func checkPercentage(a Assignment) error {
	if a.Strength > 100 {
		return fmt.Errorf("molecule percentage %.2f exceeds 100", a.Strength)
	}
	return nil
}
