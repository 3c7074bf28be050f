package kmp

// CountAvoiding returns, modulo mod, the number of strings of length n over
// alphabet that do not contain forbidden as a substring.
//
// Description:
//
//	The KMP automaton of forbidden has states 0..m; state m means "forbidden
//	has just been read" and is a dead state. Let f[j] be the number of
//	prefixes built so far that leave the automaton in state j < m. Each step
//	appends every symbol c and moves f[j] into f[Transition(j, c)], dropping
//	moves into m. The answer is Σ f[j] after n steps.
//
// Duplicate alphabet symbols are counted once.
//
// Complexity:
//
//	Time   = O(m·|Σ| + n·m·|Σ|)
//	Memory = O(m·|Σ|)
//
// Errors:
//   - ErrEmptyPattern   — forbidden is empty.
//   - ErrEmptyAlphabet  — alphabet is empty.
//   - ErrNegativeLength — n < 0.
//   - ErrZeroModulus    — mod == 0.
func CountAvoiding(n int, forbidden string, alphabet []byte, mod uint64) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeLength
	}
	if mod == 0 {
		return 0, ErrZeroModulus
	}
	if len(alphabet) == 0 {
		return 0, ErrEmptyAlphabet
	}
	tbl, err := BuildString(forbidden)
	if err != nil {
		return 0, err
	}

	var seen [256]bool
	symbols := make([]byte, 0, len(alphabet))
	for _, c := range alphabet {
		if !seen[c] {
			seen[c] = true
			symbols = append(symbols, c)
		}
	}

	// Precompute the transition table; rows for the live states only.
	m := tbl.Len()
	next := make([][]int, m)
	for j := 0; j < m; j++ {
		next[j] = make([]int, len(symbols))
		for k, c := range symbols {
			next[j][k] = tbl.step(j, c)
		}
	}

	f := make([]uint64, m)
	g := make([]uint64, m)
	f[0] = 1 % mod
	for step := 0; step < n; step++ {
		clear(g)
		for j, cnt := range f {
			if cnt == 0 {
				continue
			}
			for _, to := range next[j] {
				if to < m {
					g[to] = addMod(g[to], cnt, mod)
				}
			}
		}
		f, g = g, f
	}

	var total uint64
	for _, cnt := range f {
		total = addMod(total, cnt, mod)
	}

	return total, nil
}

// addMod returns (a+b) mod m for a, b < m without overflow.
func addMod(a, b, m uint64) uint64 {
	s := a + b
	if s < a || s >= m {
		s -= m
	}

	return s
}
