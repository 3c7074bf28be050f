package rollhash

import "fmt"

// Build precomputes prefix hashes and powers of the base over s.
//
// Complexity: O(n) time and memory.
//
// Errors:
//   - ErrBadOption — base < 2, modulus 1, or base ≥ modulus.
func Build(s []byte, opts ...Option) (*Table, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	r := ring{mod: o.Modulus}
	base := r.reduce(o.Base)
	t := &Table{
		prefix: make([]uint64, len(s)+1),
		power:  make([]uint64, len(s)+1),
		ring:   r,
		opts:   o,
	}
	t.power[0] = 1
	for i, c := range s {
		t.prefix[i+1] = r.add(r.mul(t.prefix[i], base), r.reduce(uint64(c)+o.Offset))
		t.power[i+1] = r.mul(t.power[i], base)
	}

	return t, nil
}

// BuildString is Build over the bytes of s.
func BuildString(s string, opts ...Option) (*Table, error) {
	return Build([]byte(s), opts...)
}

// Len returns the length of the hashed text.
func (t *Table) Len() int { return len(t.prefix) - 1 }

// Options returns the parameters the table was built with.
func (t *Table) Options() Options { return t.opts }

// Ring describes the arithmetic in use, e.g. "Z/2^64".
func (t *Table) Ring() string { return t.ring.String() }

// HashOf returns the hash of the closed range s[l..r], 0-indexed.
//
// Errors:
//   - ErrIndexOutOfRange — unless 0 ≤ l ≤ r < Len().
func (t *Table) HashOf(l, r int) (uint64, error) {
	if err := t.check(l, r); err != nil {
		return 0, err
	}

	return t.hash(l, r), nil
}

// Equal reports whether s[l1..r1] and s[l2..r2] have equal hashes. Ranges
// of different lengths are never equal. A true result is probabilistic.
//
// Errors:
//   - ErrIndexOutOfRange — if either range is invalid.
func (t *Table) Equal(l1, r1, l2, r2 int) (bool, error) {
	if err := t.check(l1, r1); err != nil {
		return false, err
	}
	if err := t.check(l2, r2); err != nil {
		return false, err
	}
	if r1-l1 != r2-l2 {
		return false, nil
	}

	return t.hash(l1, r1) == t.hash(l2, r2), nil
}

func (t *Table) hash(l, r int) uint64 {
	return t.ring.sub(t.prefix[r+1], t.ring.mul(t.prefix[l], t.power[r-l+1]))
}

func (t *Table) check(l, r int) error {
	if l < 0 || r >= t.Len() || l > r {
		return fmt.Errorf("%w: [%d,%d] with length %d", ErrIndexOutOfRange, l, r, t.Len())
	}

	return nil
}

// Direct evaluates the polynomial hash of s by Horner's rule, without any
// prefix tables. For every valid range, Direct(s[l:r+1]) == HashOf(l, r)
// under the same options.
//
// Errors:
//   - ErrBadOption — as in Build.
func Direct(s []byte, opts ...Option) (uint64, error) {
	o, err := gather(opts)
	if err != nil {
		return 0, err
	}
	r := ring{mod: o.Modulus}
	base := r.reduce(o.Base)
	var h uint64
	for _, c := range s {
		h = r.add(r.mul(h, base), r.reduce(uint64(c)+o.Offset))
	}

	return h, nil
}
