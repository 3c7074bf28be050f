// Package zarray computes the Z-function of a sequence and uses it as an
// exact matcher and a period detector.
//
// 🚀 What is the Z-array?
//
//	For s of length n, z[i] is the length of the longest common prefix of s
//	and its suffix s[i:]. By convention z[0] = n here; most callers ignore it.
//	0 ≤ z[i] ≤ n-i always holds.
//
//	The algorithm keeps the Z-box [l, r]: the rightmost window known to match
//	a prefix of s. Inside the box z[i] is seeded with min(r-i+1, z[i-l]) and
//	only extended by direct comparison past r, so the whole scan is O(n).
//
// ✨ Key features:
//   - generic over any comparable symbol type
//   - FindAll over a virtual pattern·separator·text concatenation whose
//     separator lies outside every alphabet
//   - MinPeriod from the first i with i + z[i] == n
//
// ⚙️ Usage:
//
//	z := zarray.ComputeString("aabxaab")   // [7 1 0 0 3 1 0]
//	pos, err := zarray.FindAll([]byte("abab"), []byte("ab")) // [0 2]
//
// Performance: O(n) time and memory.
package zarray
