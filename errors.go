package vecrank

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecrank/distance"
	"github.com/hupe1980/vecrank/model"
)

var (
	// ErrInvalidN is returned when the requested match count is not positive.
	ErrInvalidN = errors.New("n must be positive")

	// ErrQueryNotFound is returned when the query identifier is not in the dataset.
	ErrQueryNotFound = errors.New("query not found")

	// ErrUnknownMetric is returned when the metric name is not registered.
	ErrUnknownMetric = distance.ErrUnknownMetric

	// ErrEmptyDataset is returned when the dataset holds no entries.
	ErrEmptyDataset = model.ErrEmptyDataset
)

// ErrDimensionMismatch indicates an entry whose vector length differs from the
// query vector's.
//
// It satisfies errors.Is(err, distance.ErrDimensionMismatch). The original
// underlying error can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	ID       string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("entry %q: dimension mismatch: expected %d, got %d", e.ID, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error {
	if e.cause == nil {
		return distance.ErrDimensionMismatch
	}
	return e.cause
}

// translateError attaches the offending entry to errors raised by a metric.
func translateError(id string, err error) error {
	if err == nil {
		return nil
	}

	var dm *distance.DimensionMismatchError
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{ID: id, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return fmt.Errorf("entry %q: %w", id, err)
}
