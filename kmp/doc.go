// Package kmp implements the Knuth–Morris–Pratt prefix function and the
// pattern-matching automaton built on top of it.
//
// 🚀 What is the prefix function?
//
//	For a pattern P of length m, fail[i] is the length of the longest proper
//	prefix of P[0..i] that is also a suffix of P[0..i] (its longest border).
//	fail[0] = 0 and fail[i] ≤ i always hold.
//
//	The table turns P into a deterministic automaton: state j means "the last
//	j symbols read equal P[0..j)". Transition(j, c) falls back through fail
//	until P[j] == c or j == 0, then advances by one if the symbols match.
//
// ✨ Key features:
//   - generic over any comparable symbol type (bytes, runes, whole rows)
//   - overlapping search (FindAll) and non-overlapping counting
//     (CountNonOverlapping) from one scan of the text
//   - a total automaton step (Transition) reusable for automaton-driven DP
//   - border chains, minimal period in 1-D and 2-D
//   - CountAvoiding: number of strings that never contain a forbidden word
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strkit/kmp"
//
//	tbl, err := kmp.BuildString("aba")
//	if err != nil {
//	  // ErrEmptyPattern
//	}
//	pos := tbl.FindAll([]byte("abababa"))          // [0 2 4]
//	n := tbl.CountNonOverlapping([]byte("abababa")) // 2
//
// Performance:
//
//   - Build:    O(m) time, O(m) memory
//   - Matching: O(n) time over a text of length n, O(1) extra memory
//
// A built Table is immutable and may be shared by concurrent readers.
package kmp
