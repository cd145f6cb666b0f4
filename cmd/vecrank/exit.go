package main

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecrank"
	"github.com/hupe1980/vecrank/dataset"
	"github.com/hupe1980/vecrank/distance"
	"github.com/hupe1980/vecrank/model"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitNotFound  = 3
	exitIntegrity = 4
	exitIO        = 5
)

// usageError marks a malformed command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ioError marks a failure to reach or read the feature file.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }

func (e *ioError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var (
		usage *usageError
		parse *dataset.ParseError
		dup   *model.DuplicateIDError
		ioErr *ioError
	)

	switch {
	case errors.As(err, &usage),
		errors.Is(err, vecrank.ErrInvalidN),
		errors.Is(err, vecrank.ErrUnknownMetric):
		return exitUsage
	case errors.Is(err, vecrank.ErrQueryNotFound):
		return exitNotFound
	case errors.As(err, &parse),
		errors.As(err, &dup),
		errors.Is(err, distance.ErrDimensionMismatch),
		errors.Is(err, distance.ErrIncompatibleLayout),
		errors.Is(err, vecrank.ErrEmptyDataset):
		return exitIntegrity
	case errors.As(err, &ioErr):
		return exitIO
	default:
		return exitFailure
	}
}
