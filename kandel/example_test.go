package kandel_test

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/kandel"
)

// ExampleRotations lists every rotation of the 2-cyclic sequence AATAA.
func ExampleRotations() {
	rots, err := kandel.Rotations("AATAA", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rots)
	// Output: [ATAAA TAAAT AAATA AATAA]
}

// ExampleSwapAt trades the two A…T legs of ACTAGTAT.
func ExampleSwapAt() {
	out, _ := kandel.SwapAt("ACTAGTAT", 2, 0, 2, 3, 5)
	fmt.Println(out)
	// Output: AGTACTAT
}
