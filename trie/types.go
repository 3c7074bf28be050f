// Package trie defines node layouts and sentinel errors.
package trie

import (
	"errors"
	"fmt"
)

// Sentinel errors for trie operations.
var (
	// ErrInvalidInput is the category of caller contract violations.
	ErrInvalidInput = errors.New("trie: invalid input")

	// ErrBadWidth indicates a binary trie width outside [1, 64].
	ErrBadWidth = fmt.Errorf("%w: bit width must be in [1,64]", ErrInvalidInput)

	// ErrValueTooWide indicates a value that does not fit into the trie width.
	ErrValueTooWide = fmt.Errorf("%w: value exceeds bit width", ErrInvalidInput)

	// ErrTooFewValues indicates MaxXorPair was given fewer than two values.
	ErrTooFewValues = fmt.Errorf("%w: at least two values are required", ErrInvalidInput)
)

// root is the arena index of the root node in both trie kinds.
const root = 0

// node is one Trie vertex. children is nil until the first child is added.
type node struct {
	children map[byte]int
	end      int // sequences ending here
	pass     int // sequences whose path visits this node (root excluded)
}

// Trie is an insert-only prefix tree over byte sequences.
type Trie struct {
	nodes []node
	size  int
}

// Binary is an insert-only binary trie over fixed-width unsigned values.
// next[i][b] is the child of node i for bit b; 0 means "absent" because the
// root is never a child.
type Binary struct {
	bits int
	next [][2]int
	size int
}
