package kgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Build constructs the edge ordering of seq for k-lets.
//
// Steps:
//  1. Validate 2 <= k < len(seq).
//  2. Intern the (k-1)-mer at every vertex position 0..n-k+1 into a dense id.
//  3. For every window i (0..n-k) append Edge{i, v[i], v[i+1]} to Out[v[i]].
//
// The terminal vertex is interned by step 2 as the last position, so it is
// always a key even if it never starts a window.
//
// Complexity: O(n·k) time for hashing the labels, O(n) space.
func Build(seq string, k int) (*Graph, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if k >= len(seq) {
		return nil, fmt.Errorf("%w: k=%d, len=%d", ErrSequenceTooShort, k, len(seq))
	}

	var (
		n         = len(seq)
		positions = n - k + 2 // vertex positions 0..n-k+1
		vertexAt  = make([]int, positions)
		g         = &Graph{K: k, Seq: seq, index: make(map[string]int)}
		i         int
	)
	for i = 0; i < positions; i++ {
		vertexAt[i] = g.intern(seq[i : i+k-1])
	}
	g.Out = make([][]Edge, len(g.Vertices))
	for i = 0; i+1 < positions; i++ {
		g.Out[vertexAt[i]] = append(g.Out[vertexAt[i]], Edge{Pos: i, From: vertexAt[i], To: vertexAt[i+1]})
	}
	g.start = vertexAt[0]
	g.terminal = vertexAt[positions-1]

	return g, nil
}

func (g *Graph) intern(label string) int {
	if id, ok := g.index[label]; ok {
		return id
	}
	var id = len(g.Vertices)
	g.index[label] = id
	g.Vertices = append(g.Vertices, label)

	return id
}

// Index returns the id of a vertex label.
func (g *Graph) Index(label string) (int, bool) {
	id, ok := g.index[label]
	return id, ok
}

// Start returns the id of the first (k-1)-mer of the sequence.
func (g *Graph) Start() int { return g.start }

// Terminal returns the id of the final (k-1)-suffix of the sequence.
func (g *Graph) Terminal() int { return g.terminal }

// Len returns the vertex count.
func (g *Graph) Len() int { return len(g.Vertices) }

// EdgeCount returns the number of k-let occurrences, len(Seq)-K+1.
func (g *Graph) EdgeCount() int { return len(g.Seq) - g.K + 1 }

// Label returns the k-let text of e.
func (g *Graph) Label(e Edge) string { return g.Seq[e.Pos : e.Pos+g.K] }

// Symbol returns the last symbol of e, the one a walk appends.
func (g *Graph) Symbol(e Edge) byte { return g.Seq[e.Pos+g.K-1] }

// Clone returns a copy whose Out lists can be mutated independently.
func (g *Graph) Clone() *Graph {
	var c = *g
	c.Out = make([][]Edge, len(g.Out))
	for v := range g.Out {
		c.Out[v] = append([]Edge(nil), g.Out[v]...)
	}

	return &c
}

// String renders the edge ordering sorted by vertex label, one vertex per line.
func (g *Graph) String() string {
	var ids = make([]int, len(g.Vertices))
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(a, b int) bool { return g.Vertices[ids[a]] < g.Vertices[ids[b]] })

	var sb strings.Builder
	for _, v := range ids {
		sb.WriteString(g.Vertices[v])
		sb.WriteString(": [")
		for j, e := range g.Out[v] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.Label(e))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
