package kmp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strkit/kmp"
)

// BenchmarkFindAll_Random1M scans a 1 MiB random binary text for a 16-symbol pattern.
//
// Complexity: O(n) per iteration, the table is built once outside the timer.
func BenchmarkFindAll_Random1M(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	text := []byte(randomString(rng, 1<<20, "ab"))
	tbl, err := kmp.BuildString(randomString(rng, 16, "ab"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.FindAll(text)
	}
}

// BenchmarkBuild_Periodic builds the table of a highly periodic pattern,
// the case that exercises the fallback chain the most.
func BenchmarkBuild_Periodic(b *testing.B) {
	p := make([]byte, 1<<16)
	for i := range p {
		p[i] = 'a'
	}
	p[len(p)-1] = 'b'

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kmp.Build(p)
	}
}
