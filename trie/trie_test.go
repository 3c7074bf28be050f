package trie_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/ahocorasick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strkit/trie"
)

func randomString(rng *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(b)
}

// TestTrie_AppleFamily covers the prefix and exact queries on {app, apple, apply}.
func TestTrie_AppleFamily(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"app", "apple", "apply"} {
		tr.Insert(w)
	}

	assert.Equal(t, 3, tr.CountWithPrefix("app"))
	assert.Equal(t, 1, tr.CountExact("app"))
	assert.Equal(t, 2, tr.CountWithPrefix("appl"))
	assert.Equal(t, 0, tr.CountWithPrefix("banana"))
	assert.Equal(t, 0, tr.CountExact("appl"))
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, tr.CountWithPrefix(""), "empty prefix matches everything")
	// root + a,p,p + l + e,y
	assert.Equal(t, 7, tr.Nodes())
}

// TestTrie_CountPrefixesOf sums end counts along the query path.
func TestTrie_CountPrefixesOf(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"ab", "bc", "abc", "abcd", "a"} {
		tr.Insert(w)
	}

	assert.Equal(t, 3, tr.CountPrefixesOf("abc"))   // a, ab, abc
	assert.Equal(t, 4, tr.CountPrefixesOf("abcde")) // walk stops after abcd
	assert.Equal(t, 2, tr.CountPrefixesOf("abx"))   // a, ab
	assert.Equal(t, 0, tr.CountPrefixesOf("x"))
	assert.Equal(t, 0, tr.CountPrefixesOf(""))
}

// TestTrie_PrefixVersusPathSum contrasts the two prefix queries on one word.
func TestTrie_PrefixVersusPathSum(t *testing.T) {
	tr := trie.New()
	tr.Insert("ab")

	assert.Equal(t, 1, tr.CountWithPrefix(""), "empty query returns Len()")
	assert.Equal(t, 1, tr.CountWithPrefix("a"))
	assert.Equal(t, 0, tr.CountWithPrefix("abc"))

	assert.Equal(t, 0, tr.CountPrefixesOf(""))
	assert.Equal(t, 0, tr.CountPrefixesOf("a"))
	assert.Equal(t, 1, tr.CountPrefixesOf("abc"), "partial sum survives the missing edge")
}

// TestTrie_Duplicates counts repeated insertions and the empty sequence.
func TestTrie_Duplicates(t *testing.T) {
	tr := trie.New()
	tr.Insert("go")
	tr.InsertBytes([]byte("go"))
	tr.Insert("")

	assert.Equal(t, 2, tr.CountExact("go"))
	assert.Equal(t, 2, tr.CountWithPrefix("g"))
	assert.Equal(t, 1, tr.CountExact(""))
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, tr.Nodes(), "shared path must not allocate new nodes")
}

// TestTrie_Randomized compares all three counters with direct string checks.
func TestTrie_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	words := make([]string, 200)
	tr := trie.New()
	for i := range words {
		words[i] = randomString(rng, 1+rng.Intn(6), "abc")
		tr.Insert(words[i])
	}

	for iter := 0; iter < 300; iter++ {
		q := randomString(rng, rng.Intn(7), "abc")
		var withPrefix, exact, prefixesOf int
		for _, w := range words {
			if strings.HasPrefix(w, q) {
				withPrefix++
			}
			if w == q {
				exact++
			}
			if strings.HasPrefix(q, w) {
				prefixesOf++
			}
		}
		assert.Equal(t, withPrefix, tr.CountWithPrefix(q), "q=%q", q)
		assert.Equal(t, exact, tr.CountExact(q), "q=%q", q)
		assert.Equal(t, prefixesOf, tr.CountPrefixesOf(q), "q=%q", q)
	}
}

// TestTrie_Scan finds every pattern occurrence in a genome-like text.
func TestTrie_Scan(t *testing.T) {
	tr := trie.New()
	for _, p := range []string{"ACG", "CGT", "TAC", "GTAC"} {
		tr.Insert(p)
	}

	got := tr.Scan("ACGTACGT")
	want := map[string][]int{
		"ACG":  {0, 4},
		"CGT":  {1, 5},
		"TAC":  {3},
		"GTAC": {2},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, tr.Scan("TTTT"))
}

// TestTrie_ScanAgreesWithAhoCorasick uses an independent automaton as a
// presence oracle: Scan finds something iff Aho–Corasick matches.
func TestTrie_ScanAgreesWithAhoCorasick(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for iter := 0; iter < 100; iter++ {
		tr := trie.New()
		builder := ahocorasick.NewBuilder()
		seen := make(map[string]bool)
		for k := 0; k < 1+rng.Intn(5); k++ {
			p := randomString(rng, 2+rng.Intn(3), "ACGT")
			if seen[p] {
				continue
			}
			seen[p] = true
			tr.Insert(p)
			builder.AddPattern([]byte(p))
		}
		auto, err := builder.Build()
		require.NoError(t, err)

		text := randomString(rng, rng.Intn(40), "ACGT")
		found := tr.Scan(text)
		assert.Equal(t, auto.IsMatch([]byte(text)), len(found) > 0, "text=%q", text)

		for w, starts := range found {
			for _, s := range starts {
				assert.Equal(t, w, text[s:s+len(w)])
			}
		}
	}
}
