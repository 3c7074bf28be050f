// Package trie provides an insert-only prefix tree over byte sequences and
// a fixed-width binary trie answering maximum-XOR queries.
//
// 🚀 What is inside?
//
//	Trie stores byte sequences in an arena of nodes addressed by index;
//	node 0 is the root. Each node owns a map from symbol to child index,
//	the number of sequences ending exactly there (end) and the number of
//	sequences passing through it (pass). Nodes are created lazily on
//	Insert and never removed.
//
//	Binary specialises the same idea to the alphabet {0,1}: values are
//	inserted most-significant bit first, and MaxXor greedily descends into
//	the child holding the opposite bit whenever it exists.
//
// ✨ Queries:
//   - CountWithPrefix(q) — inserted sequences that start with q
//   - CountExact(q)      — inserted sequences equal to q
//   - CountPrefixesOf(q) — inserted sequences that are a prefix of q
//     (the sum of end counts along the path of q)
//   - Scan(text)         — every inserted sequence occurring in text
//   - Binary.MaxXor(x)   — stored y maximising x XOR y
//
// ⚙️ Usage:
//
//	t := trie.New()
//	for _, w := range []string{"app", "apple", "apply"} {
//	  t.Insert(w)
//	}
//	t.CountWithPrefix("app") // 3
//	t.CountExact("app")      // 1
//
// Complexity: O(L) per Insert and per query on a sequence of length L.
// A trie must be fully built before queries are shared between goroutines;
// queries never mutate it.
package trie
