package stargen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvableOrbits is returned when the orbit expansion walk fails
// to terminate within its iteration bound, which only happens for
// pathological forbidden-zone geometry.
var ErrUnresolvableOrbits = errors.New("unresolvable orbital configuration")

// ErrMoonPlacement is returned when a moon's orbital radius cannot be
// re-rolled clear of its siblings within the retry bound.
var ErrMoonPlacement = errors.New("moon orbit placement exhausted retries")

// LookupError reports an interval-table query that fell outside every
// defined band. It always names the table and the offending key so a
// bad roll modifier cannot silently corrupt downstream calculations.
type LookupError struct {
	Table string
	Key   float64
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("table %q: no band contains key %g", e.Table, e.Key)
}

// ValidationError collects multiple validation issues
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid configuration: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return "configuration validation errors: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}
