// Package strkit is a toolkit of exact string-processing algorithms: pattern
// matching, periodicity, prefix indexing and substring fingerprints.
//
// 🚀 What is strkit?
//
//	A small, dependency-light library that brings together:
//		• KMP: prefix function, matching automaton, overlapping and non-overlapping search
//		• Z-array: longest common prefix with every suffix, matching and periods
//		• Trie: prefix and exact counting, multi-pattern scanning, binary XOR trie
//		• Rolling hash: O(1) substring fingerprints in 2^64 or prime rings, double hashing
//
// ✨ Why choose strkit?
//
//   - Generic where it matters – kmp and zarray work on any comparable symbol
//   - Honest about hashing – the wraparound ring's collisions are documented and tested
//   - Sentinel errors – every failure satisfies errors.Is against a package category
//
// Everything is organized under four packages plus a CLI:
//
//	kmp/         — failure function, automaton Transition, FindAll, CountNonOverlapping, periods
//	zarray/      — Compute, FindAll over a virtual pattern·separator·text, MinPeriod
//	trie/        — Trie (CountWithPrefix, CountExact, Scan) and Binary (MaxXor)
//	rollhash/    — Table.HashOf / Equal, Double, LongestRepeated, CountDistinctAnagrams
//	cmd/strkit/  — stdin-driven exercise solver built on cobra and viper
//
// Quick example:
//
//	pos, _ := kmp.FindAllString("aaaa", "aa")             // [0 1 2]
//	cnt, _ := kmp.CountNonOverlappingString("aaaa", "aa") // 2
//
//	go get github.com/katalvlaran/strkit
package strkit
