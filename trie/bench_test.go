package trie_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strkit/trie"
)

// BenchmarkTrie_Insert10k inserts 10,000 random lowercase words per iteration.
func BenchmarkTrie_Insert10k(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	words := make([]string, 10_000)
	for i := range words {
		words[i] = randomString(rng, 8, "abcdefghijklmnopqrstuvwxyz")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := trie.New()
		for _, w := range words {
			t.Insert(w)
		}
	}
}

// BenchmarkMaxXorPair_100k runs the full pair search over 100,000 31-bit values.
func BenchmarkMaxXorPair_100k(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	values := make([]uint64, 100_000)
	for i := range values {
		values[i] = uint64(rng.Int63n(1 << 31))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trie.MaxXorPair(values, 31)
	}
}
