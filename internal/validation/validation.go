// Package validation carries the two error channels used by the catalog core:
// keyed validation messages for expected conditions and hard errors for
// invariant violations.
package validation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound reports that a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Result maps an error key (possibly empty) to a human-readable message.
// An empty Result means success.
type Result map[string]string

// New returns an empty, writable Result.
func New() Result {
	return Result{}
}

// FromError wraps err as a single-entry Result. A nil err yields an empty Result.
func FromError(key string, err error) Result {
	r := New()
	if err != nil {
		r[key] = err.Error()
	}
	return r
}

// HasErrors is true iff at least one message is recorded.
func (r Result) HasErrors() bool {
	return len(r) > 0
}

// Add records message under key. Existing keys are not overwritten; a numeric
// suffix keeps every message.
func (r Result) Add(key, message string) {
	if _, exists := r[key]; !exists {
		r[key] = message
		return
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s#%d", key, i)
		if _, exists := r[candidate]; !exists {
			r[candidate] = message
			return
		}
	}
}

// Merge copies every message from other into r, prefixing keys when prefix is set.
func (r Result) Merge(prefix string, other Result) {
	for _, key := range other.Keys() {
		target := key
		if prefix != "" {
			if key == "" {
				target = prefix
			} else {
				target = prefix + "." + key
			}
		}
		r.Add(target, other[key])
	}
}

// Keys returns the recorded keys in sorted order.
func (r Result) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// First returns the representative message surfaced to callers, or "" when
// there are no errors.
func (r Result) First() string {
	keys := r.Keys()
	if len(keys) == 0 {
		return ""
	}
	return r[keys[0]]
}

// InvariantViolation signals a programming error that must abort the current request.
type InvariantViolation struct {
	Op     string
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Reason)
}

// Invariant builds an InvariantViolation for op.
func Invariant(op, format string, args ...any) error {
	return &InvariantViolation{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsInvariantViolation reports whether err carries an InvariantViolation.
func IsInvariantViolation(err error) bool {
	var target *InvariantViolation
	return errors.As(err, &target)
}
