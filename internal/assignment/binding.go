package assignment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"oleum/internal/validation"
)

// Assignment links a parent to one child with an association strength. Degree
// junctions round the strength to an integer effect degree; percentage junctions
// store it as is.
type Assignment struct {
	ChildID  string  `json:"child_id"`
	Strength float64 `json:"strength"`
}

// Binding describes how assignments of one junction kind are replaced for a parent.
type Binding[T Record, F any] struct {
	Name     string
	Junction Junction[T, F]
	// Parent and Child report validation.ErrNotFound for unknown identifiers.
	Parent func(ctx context.Context, id string) error
	Child  func(ctx context.Context, id string) error
	// Check rejects strengths outside the junction's bounds.
	Check func(a Assignment) error
	// Build returns the row to insert and whether the strength clears the threshold.
	Build func(parentID string, a Assignment) (T, bool)
	// Project maps a stored row back to the assignment it represents.
	Project func(row T) Assignment
	// Insert persists one row.
	Insert func(ctx context.Context, row *T) validation.Result
}

// List returns the assignments stored for parentID, in repository order.
func (b Binding[T, F]) List(ctx context.Context, parentID string) ([]Assignment, error) {
	op := "list " + b.Name
	if strings.TrimSpace(parentID) == "" {
		return nil, validation.Invariant(op, "parent id is empty")
	}
	if err := b.Parent(ctx, parentID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := b.Junction.Repo.GetByFilter(ctx, b.Junction.Filter(parentID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, b.Project(row))
	}
	return out, nil
}

// Replace wipes every junction row referencing parentID and inserts one row per
// child above the strength threshold.
//
// An empty parent id or child id is an invariant violation. An unknown parent yields
// an error wrapping validation.ErrNotFound. Unknown children, out-of-range strengths
// and a child assigned twice are reported before anything is deleted. A failed wipe returns before any insert,
// and the first failed insert stops the remaining ones.
func (b Binding[T, F]) Replace(ctx context.Context, parentID string, children []Assignment) (validation.Result, error) {
	op := "replace " + b.Name
	if strings.TrimSpace(parentID) == "" {
		return nil, validation.Invariant(op, "parent id is empty")
	}
	for i, child := range children {
		if strings.TrimSpace(child.ChildID) == "" {
			return nil, validation.Invariant(op, "child %d has an empty id", i)
		}
	}

	if err := b.Parent(ctx, parentID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := validation.New()
	seen := make(map[string]int, len(children))
	for i, child := range children {
		if _, above := b.Build(parentID, child); !above {
			continue
		}
		key := fmt.Sprintf("children[%d]", i)
		if first, dup := seen[child.ChildID]; dup {
			result.Add(key, fmt.Sprintf("child %s is already assigned by children[%d]", child.ChildID, first))
			continue
		}
		seen[child.ChildID] = i
		if err := b.Check(child); err != nil {
			result.Add(key, err.Error())
			continue
		}
		if err := b.Child(ctx, child.ChildID); err != nil {
			result.Add(key, err.Error())
		}
	}
	if result.HasErrors() {
		return result, nil
	}

	if wiped := b.Junction.Purge(ctx, parentID); wiped.HasErrors() {
		return wiped, nil
	}

	for _, child := range children {
		row, above := b.Build(parentID, child)
		if !above {
			continue
		}
		if inserted := b.Insert(ctx, &row); inserted.HasErrors() {
			result.Merge(b.Junction.Name, inserted)
			return result, nil
		}
	}
	return result, nil
}

func roundedDegree(strength float64) int {
	return int(math.Round(strength))
}
