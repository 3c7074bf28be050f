package rollhash

// CountDistinctAnagrams returns how many distinct substrings of haystack are
// permutations of needle. An empty needle, or one longer than haystack,
// yields 0.
//
// A window of len(needle) slides over haystack keeping symbol counts; every
// window whose counts equal needle's is recorded by its Double hash, and the
// number of distinct hashes is the answer.
//
// Complexity: O(m·|Σ|) time for haystack length m, O(m) memory.
func CountDistinctAnagrams(needle, haystack string) int {
	n, m := len(needle), len(haystack)
	if n == 0 || n > m {
		return 0
	}
	var want, have [256]int
	for i := 0; i < n; i++ {
		want[needle[i]]++
		have[haystack[i]]++
	}
	d, err := BuildDouble([]byte(haystack))
	if err != nil {
		return 0
	}

	seen := make(map[Pair]struct{})
	for i := 0; i+n <= m; i++ {
		if i > 0 {
			have[haystack[i-1]]--
			have[haystack[i+n-1]]++
		}
		if have == want {
			h, _ := d.HashOf(i, i+n-1)
			seen[h] = struct{}{}
		}
	}

	return len(seen)
}
