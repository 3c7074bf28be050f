package trie_test

import (
	"fmt"

	"github.com/katalvlaran/strkit/trie"
)

// ExampleTrie_CountWithPrefix shows prefix and exact counting.
func ExampleTrie_CountWithPrefix() {
	t := trie.New()
	for _, w := range []string{"app", "apple", "apply"} {
		t.Insert(w)
	}
	fmt.Println(t.CountWithPrefix("app"), t.CountExact("app"), t.CountWithPrefix("appl"))
	// Output:
	// 3 1 2
}

// ExampleMaxXorPair finds the best pair in {3, 10, 5}.
func ExampleMaxXorPair() {
	best, err := trie.MaxXorPair([]uint64{3, 10, 5}, 32)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// 15
}
