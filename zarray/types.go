// Package zarray defines the Z type and sentinel errors.
package zarray

import (
	"errors"
	"fmt"
)

// Sentinel errors for zarray operations.
var (
	// ErrInvalidInput is the category of caller contract violations.
	ErrInvalidInput = errors.New("zarray: invalid input")

	// ErrEmptyPattern indicates an empty pattern passed to FindAll.
	ErrEmptyPattern = fmt.Errorf("%w: pattern must be non-empty", ErrInvalidInput)

	// ErrIndexOutOfRange indicates a position outside [0, n).
	ErrIndexOutOfRange = errors.New("zarray: index out of range")
)

// Z is a computed Z-array. z[0] holds n by convention.
type Z []int

// At returns z[i].
//
// Errors:
//   - ErrIndexOutOfRange — if i is outside [0, len(z)).
func (z Z) At(i int) (int, error) {
	if i < 0 || i >= len(z) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(z))
	}

	return z[i], nil
}

// cell is one symbol of the virtual pattern·separator·text string.
// sep cells compare unequal to every symbol cell, so z never crosses them.
type cell[T comparable] struct {
	v   T
	sep bool
}
