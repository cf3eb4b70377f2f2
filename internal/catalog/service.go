// Package catalog provides CRUD services for the named catalog entities.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/internal/validation"
)

// Named is implemented by every catalog entity with a unique name.
type Named interface {
	GetID() string
	GetName() string
}

// Service wraps a repository with name validation.
type Service[T Named, F any] struct {
	kind   string
	repo   repository.Repository[T, F]
	byName func(name string) F
	log    *slog.Logger
}

// NewService builds a Service. byName returns a filter selecting rows by exact name.
func NewService[T Named, F any](kind string, repo repository.Repository[T, F], byName func(string) F, logger *slog.Logger) *Service[T, F] {
	if logger == nil {
		logger = applog.Logger()
	}
	return &Service[T, F]{kind: kind, repo: repo, byName: byName, log: logger.With("component", "catalog", "kind", kind)}
}

// List returns every row.
func (s *Service[T, F]) List(ctx context.Context) ([]T, error) {
	var all F
	return s.repo.GetAll(ctx, all)
}

// Get loads a row; unknown identifiers yield an error wrapping validation.ErrNotFound.
func (s *Service[T, F]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Find is the soft variant of Get: a missing row is reported as (nil, false, nil).
func (s *Service[T, F]) Find(ctx context.Context, id string) (*T, bool, error) {
	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, validation.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// FindByName returns the row with the given trimmed name, if any.
func (s *Service[T, F]) FindByName(ctx context.Context, name string) (*T, bool, error) {
	rows, err := s.repo.GetByFilter(ctx, s.byName(strings.TrimSpace(name)))
	if err != nil {
		return nil, false, err
	}
	for i := range rows {
		if rows[i].GetName() == strings.TrimSpace(name) {
			return &rows[i], true, nil
		}
	}
	return nil, false, nil
}

// Create inserts entity after checking that its name is set and unused.
func (s *Service[T, F]) Create(ctx context.Context, entity *T) validation.Result {
	if result := s.validate(ctx, *entity); result.HasErrors() {
		return result
	}
	result := s.repo.Insert(ctx, entity)
	if !result.HasErrors() {
		s.log.DebugContext(ctx, "created", "id", (*entity).GetID(), "name", (*entity).GetName())
	}
	return result
}

// Update stores entity after the same checks as Create; its own name does not count as a duplicate.
func (s *Service[T, F]) Update(ctx context.Context, entity *T) validation.Result {
	if strings.TrimSpace((*entity).GetID()) == "" {
		return validation.Result{"id": fmt.Sprintf("%s id must not be empty", s.kind)}
	}
	if result := s.validate(ctx, *entity); result.HasErrors() {
		return result
	}
	result := s.repo.Update(ctx, entity)
	if !result.HasErrors() {
		s.log.DebugContext(ctx, "updated", "id", (*entity).GetID())
	}
	return result
}

// Delete removes a single row without touching junctions; see assignment.Manager for cascades.
func (s *Service[T, F]) Delete(ctx context.Context, id string) validation.Result {
	return s.repo.Delete(ctx, id)
}

func (s *Service[T, F]) validate(ctx context.Context, entity T) validation.Result {
	result := validation.New()
	name := strings.TrimSpace(entity.GetName())
	if name == "" {
		result.Add("Name", fmt.Sprintf("%s name is required", s.kind))
		return result
	}
	if name != entity.GetName() {
		result.Add("Name", fmt.Sprintf("%s name must not start or end with whitespace", s.kind))
		return result
	}

	existing, found, err := s.FindByName(ctx, name)
	if err != nil {
		result.Add("", err.Error())
		return result
	}
	if found && (*existing).GetID() != entity.GetID() {
		result.Add("Name", fmt.Sprintf("%s %q already exists", s.kind, name))
	}
	return result
}
