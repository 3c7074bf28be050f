package kmp

// Borders returns the lengths of every border of s, longest first.
// The chain is fail[n-1], fail[fail[n-1]-1], ... down to (excluding) 0.
//
// Errors:
//   - ErrEmptyPattern — if s is empty.
func Borders[T comparable](s []T) ([]int, error) {
	tbl, err := Build(s)
	if err != nil {
		return nil, err
	}
	var out []int
	for k := tbl.fail[len(s)-1]; k > 0; k = tbl.fail[k-1] {
		out = append(out, k)
	}

	return out, nil
}

// MinPeriod returns the smallest p ≥ 1 such that s[i] == s[i+p] for every
// valid i, i.e. n - fail[n-1]. The period need not divide n.
//
// Errors:
//   - ErrEmptyPattern — if s is empty.
func MinPeriod[T comparable](s []T) (int, error) {
	tbl, err := Build(s)
	if err != nil {
		return 0, err
	}

	return len(s) - tbl.fail[len(s)-1], nil
}

// MinRepeatingArea returns the area of the smallest rectangle whose tiling
// (possibly cut at the right and bottom edges) reproduces grid.
//
// Algorithm Outline:
//  1. Treat each row as one symbol; the row period h = MinPeriod(rows).
//  2. Transpose the first h rows so each column becomes one symbol;
//     the column period w = MinPeriod(columns).
//  3. Answer h·w.
//
// Complexity: O(R·C) time and memory for an R×C grid.
//
// Errors:
//   - ErrEmptyGrid  — no rows or an empty first row.
//   - ErrRaggedGrid — rows of differing lengths.
func MinRepeatingArea(grid []string) (int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	width := len(grid[0])
	for _, row := range grid[1:] {
		if len(row) != width {
			return 0, ErrRaggedGrid
		}
	}

	h, err := MinPeriod(grid)
	if err != nil {
		return 0, err
	}

	cols := make([]string, width)
	buf := make([]byte, h)
	for c := 0; c < width; c++ {
		for r := 0; r < h; r++ {
			buf[r] = grid[r][c]
		}
		cols[c] = string(buf)
	}
	w, err := MinPeriod(cols)
	if err != nil {
		return 0, err
	}

	return h * w, nil
}

// LongestRecurringBorder returns the longest border of s that also occurs
// strictly inside s (starting after position 0 and ending before n-1), so
// the substring appears at least three times: as prefix, as suffix and in
// the middle. ok is false when no such border exists.
//
// A prefix of length k occurs inside s iff fail[i] ≥ k for some
// i in [1, n-2]: the border ending at i starts at i-fail[i]+1 ≥ 1, and
// its first k symbols are the wanted occurrence. So the answer is the
// longest border not exceeding max(fail[1..n-2]).
//
// Complexity: O(n) time and memory.
func LongestRecurringBorder(s string) (border string, ok bool) {
	n := len(s)
	if n < 3 {
		return "", false
	}
	tbl, err := BuildString(s)
	if err != nil {
		return "", false
	}
	inner := 0
	for i := 1; i <= n-2; i++ {
		inner = max(inner, tbl.fail[i])
	}
	for k := tbl.fail[n-1]; k > 0; k = tbl.fail[k-1] {
		if k <= inner {
			return s[:k], true
		}
	}

	return "", false
}
