package rollhash

// BuildDouble hashes s in both the wraparound ring (DefaultBase) and the
// MersennePrime61 ring (DefaultPrimeBase).
func BuildDouble(s []byte) (*Double, error) {
	wrap, err := Build(s)
	if err != nil {
		return nil, err
	}
	prime, err := Build(s, WithBase(DefaultPrimeBase), WithModulus(MersennePrime61))
	if err != nil {
		return nil, err
	}

	return &Double{wrap: wrap, prime: prime}, nil
}

// Len returns the length of the hashed text.
func (d *Double) Len() int { return d.wrap.Len() }

// HashOf returns both lanes for the closed range s[l..r].
//
// Errors:
//   - ErrIndexOutOfRange — unless 0 ≤ l ≤ r < Len().
func (d *Double) HashOf(l, r int) (Pair, error) {
	w, err := d.wrap.HashOf(l, r)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Wrap: w, Prime: d.prime.hash(l, r)}, nil
}

// Equal reports whether both lanes agree on the two ranges.
func (d *Double) Equal(l1, r1, l2, r2 int) (bool, error) {
	eq, err := d.wrap.Equal(l1, r1, l2, r2)
	if err != nil || !eq {
		return false, err
	}

	return d.prime.hash(l1, r1) == d.prime.hash(l2, r2), nil
}
