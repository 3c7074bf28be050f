// Package rollhash implements polynomial rolling hashes with O(1) substring
// hash and equality queries after O(n) preprocessing.
//
// 🚀 How it works
//
//	For text s, base B and symbol values v(c) = c + offset:
//	  prefix[0] = 0,  prefix[i+1] = prefix[i]·B + v(s[i])
//	  power[0]  = 1,  power[i+1]  = power[i]·B
//	  hash(s[l..r]) = prefix[r+1] - prefix[l]·power[r-l+1]
//	all evaluated in one ring, chosen at Build time:
//	  - Wraparound (modulus 0): native uint64 arithmetic, i.e. mod 2^64.
//	    Fastest, but Thue–Morse strings of length ≥ 2^10 collide for every
//	    odd base, so adversarial inputs can forge equality.
//	  - Prime modulus p: 128-bit products reduced mod p with non-negative
//	    subtraction; collisions of unequal strings occur with probability
//	    about n/p for a random base.
//
// ⚠️ Equality is probabilistic. Equal == true means "almost certainly
// equal"; it is not a cryptographic guarantee. Callers that need certainty
// confirm a hit by comparing the substrings directly, as LongestRepeated does.
// Double combines both rings to push the collision probability further down.
//
// ⚙️ Usage:
//
//	tbl, err := rollhash.BuildString("abcabc", rollhash.WithModulus(rollhash.MersennePrime61))
//	eq, err := tbl.Equal(0, 2, 3, 5) // true
//
// Tables are immutable after Build and safe for concurrent queries.
package rollhash
