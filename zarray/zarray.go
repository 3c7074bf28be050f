package zarray

// Compute returns the Z-array of s.
//
// Algorithm Outline:
//  1. z[0] = n; Z-box [l, r] starts empty (r = 0 and i ≥ 1 is never inside).
//  2. For i = 1..n-1:
//     if i ≤ r: z[i] = min(r-i+1, z[i-l])
//     while i+z[i] < n and s[z[i]] == s[i+z[i]]: z[i]++
//     if i+z[i]-1 > r: l, r = i, i+z[i]-1
//
// Complexity:
//
//	Time   = O(n), every comparison past r moves r forward
//	Memory = O(n)
func Compute[T comparable](s []T) Z {
	n := len(s)
	z := make(Z, n)
	if n == 0 {
		return z
	}
	z[0] = n
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i <= r {
			z[i] = min(r-i+1, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i]-1 > r {
			l, r = i, i+z[i]-1
		}
	}

	return z
}

// ComputeString is Compute over the bytes of s.
func ComputeString(s string) Z {
	return Compute([]byte(s))
}

// FindAll returns every start position of pattern in text, overlapping
// occurrences included, in ascending order.
//
// The Z-array of pattern·#·text is computed over a virtual concatenation
// whose separator # equals no symbol; text position i is a match iff
// z[m+1+i] == m. A text shorter than the pattern yields no matches.
//
// Errors:
//   - ErrEmptyPattern — if pattern is empty.
func FindAll[T comparable](text, pattern []T) ([]int, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if m > len(text) {
		return nil, nil
	}

	joined := make([]cell[T], 0, m+1+len(text))
	for _, v := range pattern {
		joined = append(joined, cell[T]{v: v})
	}
	joined = append(joined, cell[T]{sep: true})
	for _, v := range text {
		joined = append(joined, cell[T]{v: v})
	}

	z := Compute(joined)
	var out []int
	for i := m + 1; i < len(z); i++ {
		if z[i] == m {
			out = append(out, i-m-1)
		}
	}

	return out, nil
}

// FindAllString is FindAll over the bytes of text and pattern.
func FindAllString(text, pattern string) ([]int, error) {
	return FindAll([]byte(text), []byte(pattern))
}

// MinPeriod returns the smallest p ≥ 1 with s[i] == s[i+p] for every valid
// i: the first p such that the suffix at p is also a prefix (p + z[p] == n),
// or n when none exists. An empty s has period 0.
func MinPeriod[T comparable](s []T) int {
	z := Compute(s)
	for p := 1; p < len(s); p++ {
		if p+z[p] == len(s) {
			return p
		}
	}

	return len(s)
}
