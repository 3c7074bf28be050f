// Package rollhash defines options, tables and sentinel errors.
package rollhash

import (
	"errors"
	"fmt"
)

// Sentinel errors for rollhash operations.
var (
	// ErrInvalidInput is the category of caller contract violations.
	ErrInvalidInput = errors.New("rollhash: invalid input")

	// ErrBadOption indicates an option value that cannot define a hash ring.
	ErrBadOption = fmt.Errorf("%w: invalid option supplied", ErrInvalidInput)

	// ErrIndexOutOfRange indicates a range outside [0, n) or with l > r.
	ErrIndexOutOfRange = errors.New("rollhash: index out of range")
)

// Defaults.
const (
	// DefaultBase is the polynomial base of the wraparound ring.
	DefaultBase uint64 = 131

	// DefaultPrimeBase is the base used by the prime lane of Double.
	DefaultPrimeBase uint64 = 13331

	// DefaultOffset is added to every byte so that no symbol hashes to 0.
	DefaultOffset uint64 = 1

	// Wraparound selects native uint64 arithmetic (mod 2^64).
	Wraparound uint64 = 0

	// MersennePrime61 is 2^61-1, the default explicit prime modulus.
	MersennePrime61 uint64 = 1<<61 - 1
)

// Option configures Build via functional arguments. An invalid value is
// recorded and surfaced as ErrBadOption when Build runs.
type Option func(*Options)

// Options holds the hash parameters.
type Options struct {
	// Base is the polynomial base B (≥ 2, and < Modulus for a modular ring).
	Base uint64

	// Modulus is the ring modulus; Wraparound (0) selects mod 2^64.
	Modulus uint64

	// Offset is added to each byte value before hashing.
	Offset uint64

	err error
}

// DefaultOptions returns the wraparound ring with base 131 and offset 1.
func DefaultOptions() Options {
	return Options{Base: DefaultBase, Modulus: Wraparound, Offset: DefaultOffset}
}

// WithBase sets the polynomial base.
func WithBase(b uint64) Option {
	return func(o *Options) {
		if b < 2 {
			o.err = fmt.Errorf("%w: base %d < 2", ErrBadOption, b)
			return
		}
		o.Base = b
	}
}

// WithModulus sets the ring modulus; pass Wraparound for mod 2^64.
// Primality is not checked: a composite modulus is accepted and only
// weakens collision resistance.
func WithModulus(p uint64) Option {
	return func(o *Options) {
		if p == 1 {
			o.err = fmt.Errorf("%w: modulus 1 collapses every hash", ErrBadOption)
			return
		}
		o.Modulus = p
	}
}

// WithOffset sets the value added to each byte.
func WithOffset(off uint64) Option {
	return func(o *Options) { o.Offset = off }
}

// gather applies opts over the defaults and validates the combination.
func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	if o.Modulus != Wraparound && o.Base >= o.Modulus {
		return o, fmt.Errorf("%w: base %d must be below modulus %d", ErrBadOption, o.Base, o.Modulus)
	}

	return o, nil
}

// Table holds prefix hashes and base powers of one text in one ring.
type Table struct {
	prefix []uint64
	power  []uint64
	ring   ring
	opts   Options
}

// Pair is a hash value from Double: one lane per ring.
type Pair struct {
	Wrap  uint64
	Prime uint64
}

// Double hashes the same text in the wraparound ring and in the
// MersennePrime61 ring; two ranges are equal only if both lanes agree.
type Double struct {
	wrap  *Table
	prime *Table
}
