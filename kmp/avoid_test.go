package kmp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strkit/kmp"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// enumerateAvoiding counts strings of length n over alphabet without forbidden.
func enumerateAvoiding(n int, forbidden, alphabet string) uint64 {
	var count uint64
	var rec func(prefix string)
	rec = func(prefix string) {
		if len(prefix) == n {
			if !strings.Contains(prefix, forbidden) {
				count++
			}
			return
		}
		for i := 0; i < len(alphabet); i++ {
			rec(prefix + alphabet[i:i+1])
		}
	}
	rec("")

	return count
}

// TestCountAvoiding_Lowercase matches the closed form 25² for a single forbidden letter.
func TestCountAvoiding_Lowercase(t *testing.T) {
	got, err := kmp.CountAvoiding(2, "a", []byte(lowercase), 1_000_000_007)
	require.NoError(t, err)
	assert.Equal(t, uint64(625), got)
}

// TestCountAvoiding_Enumerated compares the automaton DP with enumeration.
func TestCountAvoiding_Enumerated(t *testing.T) {
	for _, forbidden := range []string{"aba", "aa", "abb", "b", "abab"} {
		for n := 0; n <= 8; n++ {
			want := enumerateAvoiding(n, forbidden, "ab")
			got, err := kmp.CountAvoiding(n, forbidden, []byte("ab"), 1<<62)
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d forbidden=%q", n, forbidden)
		}
	}
}

// TestCountAvoiding_Modulus reduces results and ignores duplicate symbols.
func TestCountAvoiding_Modulus(t *testing.T) {
	got, err := kmp.CountAvoiding(3, "z", []byte("abcc"), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(27%7), got)

	got, err = kmp.CountAvoiding(0, "z", []byte("a"), 1)
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestCountAvoiding_Errors checks input validation.
func TestCountAvoiding_Errors(t *testing.T) {
	_, err := kmp.CountAvoiding(-1, "a", []byte("a"), 7)
	assert.ErrorIs(t, err, kmp.ErrNegativeLength)

	_, err = kmp.CountAvoiding(1, "a", []byte("a"), 0)
	assert.ErrorIs(t, err, kmp.ErrZeroModulus)

	_, err = kmp.CountAvoiding(1, "a", nil, 7)
	assert.ErrorIs(t, err, kmp.ErrEmptyAlphabet)

	_, err = kmp.CountAvoiding(1, "", []byte("a"), 7)
	assert.ErrorIs(t, err, kmp.ErrEmptyPattern)

	for _, e := range []error{kmp.ErrNegativeLength, kmp.ErrZeroModulus, kmp.ErrEmptyAlphabet} {
		assert.ErrorIs(t, e, kmp.ErrInvalidInput)
	}
}
