package kgraph

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/disjointset"
)

// Connected reports whether the candidate last edges join every vertex of g
// into one component.
//
// With exactly one last edge per non-terminal vertex (|V|-1 edges), a single
// component means the edges form a spanning arborescence directed into the
// terminal, which is what makes the reconstruction walk consume every edge.
// Any other edge count yields false.
//
// Complexity: O(|V|·α(|V|)).
func Connected(g *Graph, lastEdges []Edge) bool {
	if len(lastEdges) != g.Len()-1 {
		return false
	}

	var d = disjointset.New(g.Len())
	for _, e := range lastEdges {
		d.Union(e.From, e.To)
	}

	return d.GroupCount() == 1
}

// Balanced verifies the Eulerian trail degree condition of g: every vertex has
// in == out, except the start (out == in+1) and the terminal (in == out+1)
// when they differ.
func Balanced(g *Graph) error {
	var in = make([]int, g.Len())
	for _, edges := range g.Out {
		for _, e := range edges {
			in[e.To]++
		}
	}

	var v, want int
	for v = range g.Vertices {
		want = 0
		if g.start != g.terminal {
			switch v {
			case g.start:
				want = 1
			case g.terminal:
				want = -1
			}
		}
		if len(g.Out[v])-in[v] != want {
			return fmt.Errorf("%w: vertex %q out=%d in=%d", ErrUnbalanced, g.Vertices[v], len(g.Out[v]), in[v])
		}
	}

	return nil
}
