package kmp

import "fmt"

// Build computes the failure function of pattern.
//
// Algorithm Outline:
//  1. fail[0] = 0, j = 0 (current candidate border length).
//  2. For i = 1..m-1:
//     while j > 0 and P[i] != P[j]: j = fail[j-1]
//     if P[i] == P[j]: j++
//     fail[i] = j
//
// j grows by at most one per step and every fallback shrinks it, so the
// total number of fallbacks is bounded by m.
//
// Complexity:
//
//	Time   = O(m)
//	Memory = O(m)
//
// Errors:
//   - ErrEmptyPattern — if pattern is empty.
func Build[T comparable](pattern []T) (*Table[T], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := make([]T, len(pattern))
	copy(p, pattern)

	return &Table[T]{pattern: p, fail: prefixFunction(p)}, nil
}

// BuildString is Build over the bytes of s.
func BuildString(s string) (*Table[byte], error) {
	return Build([]byte(s))
}

// prefixFunction returns fail[0..len(p)-1] for a non-empty p.
func prefixFunction[T comparable](p []T) []int {
	fail := make([]int, len(p))
	j := 0
	for i := 1; i < len(p); i++ {
		for j > 0 && p[i] != p[j] {
			j = fail[j-1]
		}
		if p[i] == p[j] {
			j++
		}
		fail[i] = j
	}

	return fail
}

// Len returns the pattern length m.
func (t *Table[T]) Len() int { return len(t.pattern) }

// Pattern returns a copy of the pattern.
func (t *Table[T]) Pattern() []T {
	out := make([]T, len(t.pattern))
	copy(out, t.pattern)

	return out
}

// Fail returns a copy of the failure function.
func (t *Table[T]) Fail() []int {
	out := make([]int, len(t.fail))
	copy(out, t.fail)

	return out
}

// Transition performs one automaton step: from state (matched prefix length)
// reading symbol c, it returns the new matched prefix length.
//
// The automaton is total over [0, m]: from the accepting state m it first
// folds back to fail[m-1], which is exactly how overlapping matches continue.
//
// Transition panics with an error wrapping ErrStateOutOfRange when state is
// outside [0, m]; such a state can only come from a caller bug.
func (t *Table[T]) Transition(state int, c T) int {
	if state < 0 || state > len(t.pattern) {
		panic(fmt.Errorf("%w: %d not in [0,%d]", ErrStateOutOfRange, state, len(t.pattern)))
	}

	return t.step(state, c)
}

// step is Transition without the bounds check.
func (t *Table[T]) step(j int, c T) int {
	if j == len(t.pattern) {
		j = t.fail[j-1]
	}
	for j > 0 && t.pattern[j] != c {
		j = t.fail[j-1]
	}
	if t.pattern[j] == c {
		j++
	}

	return j
}
