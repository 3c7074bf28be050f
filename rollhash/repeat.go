package rollhash

// LongestRepeated returns the longest substring occurring at least twice in
// s (occurrences may overlap), or "" when no symbol repeats. Among several
// candidates of the maximal length it returns the one whose second
// occurrence ends first.
//
// Algorithm Outline:
//  1. Binary search the length L in [1, n-1]: a repeat of length L implies
//     one of every shorter length.
//  2. For a fixed L, bucket every window by its Double hash; a window whose
//     bucket already holds a literally equal window is a repeat.
//
// Hash hits are confirmed by direct comparison, so the result is exact.
//
// Complexity: O(n log n) expected time, O(n) memory.
func LongestRepeated(s string) string {
	n := len(s)
	if n < 2 {
		return ""
	}
	d, err := BuildDouble([]byte(s))
	if err != nil {
		return ""
	}

	find := func(length int) int {
		seen := make(map[Pair][]int, n-length+1)
		for i := 0; i+length <= n; i++ {
			h := Pair{Wrap: d.wrap.hash(i, i+length-1), Prime: d.prime.hash(i, i+length-1)}
			for _, j := range seen[h] {
				if s[j:j+length] == s[i:i+length] {
					return i
				}
			}
			seen[h] = append(seen[h], i)
		}

		return -1
	}

	best, pos := 0, -1
	lo, hi := 1, n-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if at := find(mid); at >= 0 {
			best, pos = mid, at
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if pos < 0 {
		return ""
	}

	return s[pos : pos+best]
}
