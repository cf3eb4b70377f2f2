// Package memstore provides an in-memory Repository that records the calls made
// against it, with switches to make individual operations fail.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"oleum/internal/validation"
)

// Record is implemented by every catalog model.
type Record interface {
	GetID() string
}

// Matcher decides whether a row satisfies a filter.
type Matcher[T any] interface {
	Matches(row T) bool
}

// Calls counts repository invocations per operation.
type Calls struct {
	GetAll      int
	GetByFilter int
	GetByID     int
	Insert      int
	Update      int
	Delete      int
}

// Store keeps rows in insertion order.
type Store[T Record, F Matcher[T]] struct {
	mu    sync.Mutex
	kind  string
	rows  []T
	calls Calls

	// FailDelete holds identifiers whose deletion reports a validation error.
	FailDelete map[string]bool
	// FailInsert makes every insert report a validation error.
	FailInsert bool
	// FailQuery makes GetAll and GetByFilter return an error.
	FailQuery error
}

// New builds an empty store. kind names the entity in messages.
func New[T Record, F Matcher[T]](kind string, rows ...T) *Store[T, F] {
	return &Store[T, F]{kind: kind, rows: append([]T(nil), rows...), FailDelete: map[string]bool{}}
}

// Calls returns a snapshot of the recorded invocations.
func (s *Store[T, F]) Calls() Calls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Rows returns a copy of the stored rows.
func (s *Store[T, F]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.rows...)
}

func (s *Store[T, F]) GetAll(ctx context.Context, filter F) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.GetAll++
	return s.query(filter)
}

func (s *Store[T, F]) GetByFilter(ctx context.Context, filter F) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.GetByFilter++
	return s.query(filter)
}

func (s *Store[T, F]) query(filter F) ([]T, error) {
	if s.FailQuery != nil {
		return nil, s.FailQuery
	}
	matches := make([]T, 0)
	for _, row := range s.rows {
		if filter.Matches(row) {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

func (s *Store[T, F]) GetByID(ctx context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.GetByID++
	if i := s.indexOf(id); i >= 0 {
		row := s.rows[i]
		return &row, nil
	}
	return nil, fmt.Errorf("%s %q: %w", s.kind, id, validation.ErrNotFound)
}

func (s *Store[T, F]) Insert(ctx context.Context, entity *T) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Insert++
	if s.FailInsert {
		return validation.Result{"": fmt.Sprintf("insert %s failed", s.kind)}
	}
	if hook, ok := any(entity).(interface{ AssignID() }); ok {
		hook.AssignID()
	}
	if s.indexOf((*entity).GetID()) >= 0 {
		return validation.Result{"id": fmt.Sprintf("%s %q already exists", s.kind, (*entity).GetID())}
	}
	s.rows = append(s.rows, *entity)
	return validation.New()
}

func (s *Store[T, F]) Update(ctx context.Context, entity *T) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Update++
	i := s.indexOf((*entity).GetID())
	if i < 0 {
		return validation.Result{"id": fmt.Sprintf("%s does not exist", s.kind)}
	}
	s.rows[i] = *entity
	return validation.New()
}

func (s *Store[T, F]) Delete(ctx context.Context, id string) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Delete++
	if s.FailDelete[id] {
		return validation.Result{"": fmt.Sprintf("delete %s %q failed", s.kind, id)}
	}
	i := s.indexOf(id)
	if i < 0 {
		return validation.Result{"id": fmt.Sprintf("%s %q does not exist", s.kind, id)}
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return validation.New()
}

func (s *Store[T, F]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range s.rows {
		if row.GetID() == id {
			return i
		}
	}
	return -1
}
