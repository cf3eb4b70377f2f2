// Package repository exposes the catalog persistence contract and its gorm-backed implementation.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"oleum/internal/validation"
)

// Repository is the CRUD and filtered-query contract the catalog core depends on.
type Repository[T any, F any] interface {
	GetAll(ctx context.Context, filter F) ([]T, error)
	GetByFilter(ctx context.Context, filter F) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, entity *T) validation.Result
	Update(ctx context.Context, entity *T) validation.Result
	Delete(ctx context.Context, id string) validation.Result
}

// Scoper narrows a gorm query to the rows matching a filter.
type Scoper interface {
	Scope(db *gorm.DB) *gorm.DB
}

// Store is a Repository over a single gorm table.
type Store[T any, F Scoper] struct {
	db   *gorm.DB
	kind string
}

// NewStore builds a Store for the table backing T. kind names the entity in messages.
func NewStore[T any, F Scoper](db *gorm.DB, kind string) *Store[T, F] {
	return &Store[T, F]{db: db, kind: kind}
}

func (s *Store[T, F]) GetAll(ctx context.Context, filter F) ([]T, error) {
	if s.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var rows []T
	if err := s.db.WithContext(ctx).
		Scopes(filter.Scope).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return rows, nil
}

func (s *Store[T, F]) GetByFilter(ctx context.Context, filter F) ([]T, error) {
	return s.GetAll(ctx, filter)
}

func (s *Store[T, F]) GetByID(ctx context.Context, id string) (*T, error) {
	if s.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%s with empty id: %w", s.kind, validation.ErrNotFound)
	}
	var row T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %q: %w", s.kind, id, validation.ErrNotFound)
		}
		return nil, fmt.Errorf("load %s %q: %w", s.kind, id, err)
	}
	return &row, nil
}

func (s *Store[T, F]) Insert(ctx context.Context, entity *T) validation.Result {
	if s.db == nil {
		return validation.FromError("", gorm.ErrInvalidDB)
	}
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return validation.FromError("", fmt.Errorf("insert %s: %w", s.kind, err))
	}
	return validation.New()
}

func (s *Store[T, F]) Update(ctx context.Context, entity *T) validation.Result {
	if s.db == nil {
		return validation.FromError("", gorm.ErrInvalidDB)
	}
	tx := s.db.WithContext(ctx).Model(entity).Select("*").Omit("created_at").Updates(entity)
	if tx.Error != nil {
		return validation.FromError("", fmt.Errorf("update %s: %w", s.kind, tx.Error))
	}
	if tx.RowsAffected == 0 {
		return validation.Result{"id": fmt.Sprintf("%s does not exist", s.kind)}
	}
	return validation.New()
}

func (s *Store[T, F]) Delete(ctx context.Context, id string) validation.Result {
	if s.db == nil {
		return validation.FromError("", gorm.ErrInvalidDB)
	}
	if strings.TrimSpace(id) == "" {
		return validation.Result{"id": fmt.Sprintf("%s id must not be empty", s.kind)}
	}
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if tx.Error != nil {
		return validation.FromError("", fmt.Errorf("delete %s %q: %w", s.kind, id, tx.Error))
	}
	if tx.RowsAffected == 0 {
		return validation.Result{"id": fmt.Sprintf("%s %q does not exist", s.kind, id)}
	}
	return validation.New()
}
