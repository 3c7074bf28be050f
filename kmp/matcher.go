package kmp

// FindAll returns the start positions of every occurrence of the pattern in
// text, overlapping occurrences included, in ascending order.
//
// A full match (state m) is reported at i-m+1; the next step folds the state
// back to fail[m-1], so "aa" is found at 0, 1 and 2 in "aaaa".
// A text shorter than the pattern yields no matches.
//
// Complexity: O(n) time, O(k) memory for k matches.
func (t *Table[T]) FindAll(text []T) []int {
	m := len(t.pattern)
	if m > len(text) {
		return nil
	}
	var out []int
	j := 0
	for i, c := range text {
		j = t.step(j, c)
		if j == m {
			out = append(out, i-m+1)
		}
	}

	return out
}

// CountNonOverlapping counts occurrences of the pattern in text such that no
// two counted occurrences share a position. Scanning left to right, the state
// resets to 0 after each full match, so "aa" is counted twice in "aaaa".
//
// Complexity: O(n) time, O(1) memory.
func (t *Table[T]) CountNonOverlapping(text []T) int {
	m := len(t.pattern)
	if m > len(text) {
		return 0
	}
	count, j := 0, 0
	for _, c := range text {
		j = t.step(j, c)
		if j == m {
			count++
			j = 0
		}
	}

	return count
}

// Contains reports whether the pattern occurs in text at least once.
func (t *Table[T]) Contains(text []T) bool {
	m := len(t.pattern)
	if m > len(text) {
		return false
	}
	j := 0
	for _, c := range text {
		if j = t.step(j, c); j == m {
			return true
		}
	}

	return false
}

// FindAll builds the table for pattern and returns every (overlapping)
// occurrence of it in text.
//
// Errors:
//   - ErrEmptyPattern — if pattern is empty.
func FindAll[T comparable](text, pattern []T) ([]int, error) {
	tbl, err := Build(pattern)
	if err != nil {
		return nil, err
	}

	return tbl.FindAll(text), nil
}

// CountNonOverlapping builds the table for pattern and counts its
// non-overlapping occurrences in text.
//
// Errors:
//   - ErrEmptyPattern — if pattern is empty.
func CountNonOverlapping[T comparable](text, pattern []T) (int, error) {
	tbl, err := Build(pattern)
	if err != nil {
		return 0, err
	}

	return tbl.CountNonOverlapping(text), nil
}

// FindAllString is FindAll over the bytes of text and pattern.
func FindAllString(text, pattern string) ([]int, error) {
	return FindAll([]byte(text), []byte(pattern))
}

// CountNonOverlappingString is CountNonOverlapping over the bytes of text and pattern.
func CountNonOverlappingString(text, pattern string) (int, error) {
	return CountNonOverlapping([]byte(text), []byte(pattern))
}
