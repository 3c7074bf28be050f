// Package kmp defines the failure-function table and sentinel errors.
package kmp

import (
	"errors"
	"fmt"
)

// Sentinel errors for kmp operations.
//
// Specific errors wrap ErrInvalidInput, so callers may match either the
// category or the exact cause with errors.Is.
var (
	// ErrInvalidInput is the category of every caller contract violation.
	ErrInvalidInput = errors.New("kmp: invalid input")

	// ErrEmptyPattern indicates an empty pattern where a non-empty one is required.
	ErrEmptyPattern = fmt.Errorf("%w: pattern must be non-empty", ErrInvalidInput)

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)

	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = fmt.Errorf("%w: all grid rows must have the same length", ErrInvalidInput)

	// ErrEmptyAlphabet indicates CountAvoiding was given no symbols.
	ErrEmptyAlphabet = fmt.Errorf("%w: alphabet must be non-empty", ErrInvalidInput)

	// ErrNegativeLength indicates a negative string length.
	ErrNegativeLength = fmt.Errorf("%w: length must be non-negative", ErrInvalidInput)

	// ErrZeroModulus indicates a zero modulus.
	ErrZeroModulus = fmt.Errorf("%w: modulus must be positive", ErrInvalidInput)

	// ErrStateOutOfRange is the panic value of Transition for a state outside [0, m].
	ErrStateOutOfRange = errors.New("kmp: automaton state out of range")
)

// Table is the failure function of a pattern together with the pattern itself.
//
// Fields:
//   - pattern — private copy of the pattern, length m ≥ 1.
//   - fail    — fail[i] = longest border length of pattern[0..i].
//
// A Table never changes after Build returns.
type Table[T comparable] struct {
	pattern []T
	fail    []int
}
