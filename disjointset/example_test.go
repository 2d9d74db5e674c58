package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/disjointset"
)

// ExampleDisjointSet connects the four single-symbol vertices A,C,G,T
// (ids 0..3) through the edges AT, CT and GA; one group remains.
func ExampleDisjointSet() {
	d := disjointset.New(4)
	d.Union(0, 3) // A-T
	d.Union(1, 3) // C-T
	d.Union(2, 0) // G-A

	fmt.Println(d.GroupCount())
	// Output: 1
}
