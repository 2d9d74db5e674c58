package splitshuffle_test

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/klet"
	"github.com/katalvlaran/kletshuffle/splitshuffle"
)

func ExamplePermute() {
	const seq = "CTATTGGCGTCCACCATTCCTTCGATTATCGCGCCCACTC"
	out, err := splitshuffle.Permute(seq, 3, splitshuffle.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(out) == len(seq), klet.EqualUpTo(seq, out, 3))
	// Output: true true
}
