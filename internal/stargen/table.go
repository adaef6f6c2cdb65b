package stargen

import "sort"

// Band binds a half-open numeric range [Lo, Hi) to an outcome.
type Band[T any] struct {
	Lo    float64
	Hi    float64
	Value T
}

// Table is an ordered collection of range-to-outcome bindings over a
// numeric axis (integer roll totals or continuous physical quantities).
// Bands are kept sorted by (Lo, Hi); when degenerate input produces
// overlapping bands, Resolve deterministically picks the lowest-sorted
// match. Tables are read-only after construction.
type Table[T any] struct {
	Name  string
	bands []Band[T]
}

// NewTable builds a table from the given bands, sorting them once.
func NewTable[T any](name string, bands ...Band[T]) *Table[T] {
	sorted := make([]Band[T], len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})
	return &Table[T]{Name: name, bands: sorted}
}

// Resolve returns the outcome of the first band containing key.
// A key outside every band returns a *LookupError.
func (t *Table[T]) Resolve(key float64) (T, error) {
	for _, b := range t.bands {
		if key >= b.Lo && key < b.Hi {
			return b.Value, nil
		}
	}
	var zero T
	return zero, &LookupError{Table: t.Name, Key: key}
}

// ResolveInt is a convenience wrapper for integer roll totals.
func (t *Table[T]) ResolveInt(key int) (T, error) {
	return t.Resolve(float64(key))
}

// Bands returns a copy of the sorted bands, for validation and tuning.
func (t *Table[T]) Bands() []Band[T] {
	out := make([]Band[T], len(t.bands))
	copy(out, t.bands)
	return out
}

// Len returns the number of bands.
func (t *Table[T]) Len() int {
	return len(t.bands)
}
