package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecrank/internal/math32"
)

var (
	// ErrDimensionMismatch is returned when two vectors of different length are scored.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIncompatibleLayout is returned when a composite metric cannot split a vector
	// into its configured parts.
	ErrIncompatibleLayout = errors.New("incompatible vector layout")
)

// DimensionMismatchError carries the lengths of the two scored vectors.
// It satisfies errors.Is(err, ErrDimensionMismatch).
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// Direction is the ranking direction of a metric.
type Direction int

const (
	// Ascending means lower scores are more similar.
	Ascending Direction = iota
	// Descending means higher scores are more similar.
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// Less reports whether score a ranks strictly before score b.
func (d Direction) Less(a, b float32) bool {
	if d == Descending {
		return a > b
	}
	return a < b
}

// Compare orders scores best-first, returning -1, 0 or +1.
// NaN scores order after every other score in both directions.
func (d Direction) Compare(a, b float32) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN || bNaN:
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		default:
			return -1
		}
	case d.Less(a, b):
		return -1
	case d.Less(b, a):
		return 1
	default:
		return 0
	}
}

// Func is a raw scoring kernel.
// It may assume len(a) == len(b).
type Func func(a, b []float32) (float32, error)

// Metric is an immutable named scoring function with its ranking direction.
type Metric struct {
	name string
	dir  Direction
	fn   Func
}

// NewMetric creates a Metric.
func NewMetric(name string, dir Direction, fn Func) Metric {
	return Metric{name: name, dir: dir, fn: fn}
}

// Name returns the canonical metric name.
func (m Metric) Name() string { return m.name }

// Direction returns the ranking direction.
func (m Metric) Direction() Direction { return m.dir }

// IsZero reports whether m is the zero Metric.
func (m Metric) IsZero() bool { return m.fn == nil }

// Score computes the metric over a and b.
// Vectors of different length yield a *DimensionMismatchError; a is treated
// as the actual and b as the expected (reference) vector.
func (m Metric) Score(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{Expected: len(b), Actual: len(a)}
	}
	return m.fn(a, b)
}

// SumOfSquaredDifference returns Σ(aᵢ − bᵢ)² as an ascending metric.
func SumOfSquaredDifference() Metric {
	return NewMetric(NameSumOfSquaredDifference, Ascending, func(a, b []float32) (float32, error) {
		return math32.SquaredL2(a, b), nil
	})
}

// HistogramIntersection returns Σmin(aᵢ, bᵢ) as a descending metric.
func HistogramIntersection() Metric {
	return NewMetric(NameHistogramIntersection, Descending, func(a, b []float32) (float32, error) {
		return math32.MinSum(a, b), nil
	})
}
