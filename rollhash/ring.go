package rollhash

import (
	"fmt"
	"math/bits"
)

// ring is Z/2^64 when mod == 0 and Z/mod otherwise. All operands of add,
// sub and mul are already reduced.
type ring struct {
	mod uint64
}

func (r ring) reduce(a uint64) uint64 {
	if r.mod == Wraparound {
		return a
	}

	return a % r.mod
}

func (r ring) add(a, b uint64) uint64 {
	if r.mod == Wraparound {
		return a + b
	}
	s := a + b
	if s < a || s >= r.mod {
		s -= r.mod
	}

	return s
}

// sub keeps results non-negative in the prime ring.
func (r ring) sub(a, b uint64) uint64 {
	if r.mod == Wraparound || a >= b {
		return a - b
	}

	return a + (r.mod - b)
}

// mul uses a 128-bit product; hi < mod holds because a, b < mod.
func (r ring) mul(a, b uint64) uint64 {
	if r.mod == Wraparound {
		return a * b
	}
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, r.mod)

	return rem
}

func (r ring) String() string {
	if r.mod == Wraparound {
		return "Z/2^64"
	}

	return fmt.Sprintf("Z/%d", r.mod)
}
