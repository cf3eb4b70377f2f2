package assignment

import (
	"context"
	"strings"

	"oleum/internal/repository"
	"oleum/internal/validation"
)

// Record is implemented by every junction model.
type Record interface {
	GetID() string
}

type purger interface {
	Purge(ctx context.Context, parentID string) validation.Result
}

// Junction is one junction collection seen from one of its parents.
type Junction[T Record, F any] struct {
	Name   string
	Repo   repository.Repository[T, F]
	Filter func(parentID string) F
}

// Purge deletes every row referencing parentID. A failed delete does not stop the
// remaining ones; all failures are reported, keyed by the collection name.
func (j Junction[T, F]) Purge(ctx context.Context, parentID string) validation.Result {
	result := validation.New()
	if strings.TrimSpace(parentID) == "" {
		result.Add(j.Name, "parent id must not be empty")
		return result
	}

	rows, err := j.Repo.GetByFilter(ctx, j.Filter(parentID))
	if err != nil {
		result.Add(j.Name, err.Error())
		return result
	}
	for _, row := range rows {
		result.Merge(j.Name, j.Repo.Delete(ctx, row.GetID()))
	}
	return result
}
