// Package apperrors defines the error values shared across the tracker.
// They take the place of the magic integer returns (-1 for failure, -2 for
// "no addresses") a naive port would carry: callers branch with errors.Is
// instead of comparing sentinels against domain data.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrNoAddresses is returned when a customer exists but owns no
	// addresses. Distinct from ErrNotFound so callers can tell "nothing
	// to pick from" apart from a failed lookup.
	ErrNoAddresses = errors.New("customer has no associated addresses")

	// ErrEmptyInput is returned when a trimmed string is empty or was
	// whitespace all along.
	ErrEmptyInput = errors.New("input is empty or whitespace only")
)

// EngineError wraps a failure reported by the storage engine, tagged with
// the operation that hit it.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Engine wraps err as an EngineError for operation op.
func Engine(op string, err error) error {
	return &EngineError{Op: op, Err: err}
}

// IsEngine reports whether err is (or wraps) an EngineError.
func IsEngine(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}
