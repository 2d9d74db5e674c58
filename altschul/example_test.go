package altschul_test

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/altschul"
	"github.com/katalvlaran/kletshuffle/klet"
)

// ExamplePermute shuffles the Altschul–Erickson S1 sequence keeping its
// doublets and triplets.
func ExamplePermute() {
	const seq = "AGACATAAAGTTCCGTACTGCCGGGAT"

	out, err := altschul.Permute(seq, 3, altschul.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(out) == len(seq), klet.EqualUpTo(seq, out, 3))
	// Output: true true
}
