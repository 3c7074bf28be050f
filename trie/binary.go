package trie

import "fmt"

// NewBinary returns an empty binary trie for values of the given bit width.
//
// Errors:
//   - ErrBadWidth — if bits is outside [1, 64].
func NewBinary(bits int) (*Binary, error) {
	if bits < 1 || bits > 64 {
		return nil, ErrBadWidth
	}

	return &Binary{bits: bits, next: make([][2]int, 1)}, nil
}

// Bits returns the configured width.
func (b *Binary) Bits() int { return b.bits }

// Len returns the number of inserted values, duplicates included.
func (b *Binary) Len() int { return b.size }

// Insert adds x, most significant bit first.
//
// Errors:
//   - ErrValueTooWide — if x has bits set at or above the width.
func (b *Binary) Insert(x uint64) error {
	if b.bits < 64 && x>>b.bits != 0 {
		return fmt.Errorf("%w: %d needs more than %d bits", ErrValueTooWide, x, b.bits)
	}
	cur := root
	for i := b.bits - 1; i >= 0; i-- {
		bit := (x >> i) & 1
		if b.next[cur][bit] == 0 {
			b.next = append(b.next, [2]int{})
			b.next[cur][bit] = len(b.next) - 1
		}
		cur = b.next[cur][bit]
	}
	b.size++

	return nil
}

// MaxXor returns the stored value y maximising x XOR y. At each bit, from the
// most significant down, it prefers the child holding the opposite bit of x.
// ok is false when the trie is empty.
func (b *Binary) MaxXor(x uint64) (y uint64, ok bool) {
	if b.size == 0 {
		return 0, false
	}
	cur := root
	for i := b.bits - 1; i >= 0; i-- {
		bit := (x >> i) & 1
		want := bit ^ 1
		if b.next[cur][want] == 0 {
			want = bit
		}
		y = y<<1 | want
		cur = b.next[cur][want]
	}

	return y, true
}

// MaxXorPair returns the maximum of a XOR b over all pairs of distinct
// positions in values. Each value is queried against those before it and
// then inserted, so an element is never paired with itself.
//
// Errors:
//   - ErrTooFewValues — fewer than two values.
//   - ErrBadWidth, ErrValueTooWide — as in NewBinary and Insert.
func MaxXorPair(values []uint64, bits int) (uint64, error) {
	if len(values) < 2 {
		return 0, ErrTooFewValues
	}
	bt, err := NewBinary(bits)
	if err != nil {
		return 0, err
	}
	var best uint64
	for i, x := range values {
		if i > 0 {
			if y, ok := bt.MaxXor(x); ok {
				best = max(best, x^y)
			}
		}
		if err := bt.Insert(x); err != nil {
			return 0, err
		}
	}

	return best, nil
}
