package model

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecrank/distance"
)

// ErrEmptyDataset is returned when a dataset holds no entries.
var ErrEmptyDataset = errors.New("empty dataset")

// Entry pairs a unique identifier with its feature vector.
type Entry struct {
	ID     string    `json:"id"`
	Vector []float32 `json:"vector"`
}

// Match is an identifier with the score it received against a query.
type Match struct {
	ID    string
	Score float32
}

// String returns a string representation of the Match.
func (m Match) String() string {
	return fmt.Sprintf("%s(%g)", m.ID, m.Score)
}

// IDs returns the identifiers of matches in order.
func IDs(matches []Match) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

// Dataset is an ordered collection of entries.
type Dataset []Entry

// Lookup returns the position of the first entry with the given identifier.
func (d Dataset) Lookup(id string) (int, bool) {
	for i := range d {
		if d[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Dimension returns the vector length of the first entry, or 0 if d is empty.
func (d Dataset) Dimension() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Vector)
}

// DuplicateIDError reports an identifier that occurs more than once.
type DuplicateIDError struct {
	ID     string
	First  int
	Second int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q at positions %d and %d", e.ID, e.First, e.Second)
}

// DimensionError reports an entry whose vector length differs from the first entry.
// It satisfies errors.Is(err, distance.ErrDimensionMismatch).
type DimensionError struct {
	ID       string
	Position int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("entry %q at position %d: dimension mismatch: expected %d, got %d", e.ID, e.Position, e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return distance.ErrDimensionMismatch }

// Validate checks that d is non-empty, that identifiers are unique and that
// all vectors share the same length. It reports the first violation found.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDataset
	}

	dim := d.Dimension()
	seen := make(map[string]int, len(d))

	for i := range d {
		e := &d[i]
		if first, ok := seen[e.ID]; ok {
			return &DuplicateIDError{ID: e.ID, First: first, Second: i}
		}
		seen[e.ID] = i

		if len(e.Vector) != dim {
			return &DimensionError{ID: e.ID, Position: i, Expected: dim, Actual: len(e.Vector)}
		}
	}
	return nil
}
