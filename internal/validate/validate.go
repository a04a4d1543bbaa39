// Package validate holds the pure predicates a command must pass before it
// is handed to the executor.
//
// Validators never panic and never return Go errors: each produces a
// Result so a failure can be shown to the person editing without any
// exception plumbing. They check name syntax, occurrence-range legality
// and required-field presence only; existence and cross-reference checks
// belong to the executor, which owns the document tree.
package validate

import (
	"fmt"
	"unicode"

	"github.com/nbroch/skema/internal/occurs"
)

// Result is the outcome of one validation. Error is a user-presentable
// message, set exactly when Valid is false.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(format string, args ...any) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// IsValidXMLName reports whether s is a legal schema component name:
// non-empty, starting with a letter or underscore, followed by letters,
// digits, underscores, hyphens or dots.
func IsValidXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// MinOccurs checks a minOccurs bound. A nil bound is valid (the attribute
// is simply absent); otherwise the value must be a non-negative integer.
func MinOccurs(o *occurs.Occurs) Result {
	if o == nil {
		return ok()
	}
	n, isInt := o.Int()
	if !isInt {
		return fail("minOccurs must be an integer")
	}
	if n < 0 {
		return fail("minOccurs cannot be negative")
	}
	return ok()
}

// MaxOccurs checks a maxOccurs bound. A nil bound or the unbounded
// sentinel is valid; otherwise the value must be a non-negative integer.
func MaxOccurs(o *occurs.Occurs) Result {
	if o == nil || o.IsUnbounded() {
		return ok()
	}
	n, isInt := o.Int()
	if !isInt {
		return fail(`maxOccurs must be an integer or "unbounded"`)
	}
	if n < 0 {
		return fail("maxOccurs cannot be negative")
	}
	return ok()
}

// Occurrences checks a minOccurs/maxOccurs pair. Each bound is checked on
// its own first; when both are numeric, min must not exceed max. An
// unbounded max satisfies the comparison against any min.
func Occurrences(min, max *occurs.Occurs) Result {
	if r := MinOccurs(min); !r.Valid {
		return r
	}
	if r := MaxOccurs(max); !r.Valid {
		return r
	}
	if min == nil || max == nil || max.IsUnbounded() {
		return ok()
	}
	minN, _ := min.Int()
	maxN, _ := max.Int()
	if minN > maxN {
		return fail("minOccurs must be <= maxOccurs")
	}
	return ok()
}
