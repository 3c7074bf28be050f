package rollhash_test

import (
	"fmt"

	"github.com/katalvlaran/strkit/rollhash"
)

// ExampleTable_Equal compares two substrings of a string in O(1).
func ExampleTable_Equal() {
	tbl, err := rollhash.BuildString("abcabcabd", rollhash.WithModulus(rollhash.MersennePrime61))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	eq1, _ := tbl.Equal(0, 2, 3, 5)
	eq2, _ := tbl.Equal(0, 2, 6, 8)
	fmt.Println(eq1, eq2)
	// Output:
	// true false
}

// ExampleLongestRepeated finds the longest substring occurring twice.
func ExampleLongestRepeated() {
	fmt.Println(rollhash.LongestRepeated("banana"))
	// Output:
	// ana
}
