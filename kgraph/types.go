package kgraph

import "errors"

var (
	// ErrInvalidK indicates that k-let graphs need k >= 2.
	ErrInvalidK = errors.New("kgraph: k must be at least 2")

	// ErrSequenceTooShort indicates that k must be strictly less than the sequence length.
	ErrSequenceTooShort = errors.New("kgraph: k must be less than the sequence length")

	// ErrUnbalanced indicates that the in/out degrees violate the Eulerian trail condition.
	ErrUnbalanced = errors.New("kgraph: degree balance violated")
)

// Edge is one k-let occurrence.
//
// Pos is the window start offset in the source sequence; From and To are the
// vertex ids of its (k-1)-prefix and (k-1)-suffix.
type Edge struct {
	Pos  int
	From int
	To   int
}

// Graph is the edge ordering of a sequence: vertex id → ordered outgoing edges.
//
// A Graph is built fresh for one shuffling call and owned by it. Out lists may
// be reordered or consumed in place by the engines; use Clone to keep a copy.
type Graph struct {
	// K is the k-let length; vertices have length K-1.
	K int

	// Seq is the sequence the graph was built from.
	Seq string

	// Vertices maps id → (k-1)-mer label.
	Vertices []string

	// Out maps id → outgoing edges, duplicates retained, input order.
	Out [][]Edge

	index    map[string]int
	start    int
	terminal int
}
