package altschul

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
	"github.com/katalvlaran/kletshuffle/klet"
)

// Permute returns a random rearrangement of seq preserving every j-let,
// 2 <= j <= k. Preconditions: 2 <= k < len(seq).
func Permute(seq string, k int, opts ...Option) (string, error) {
	res, err := PermuteResult(seq, k, opts...)
	if err != nil {
		return "", err
	}

	return res.Seq, nil
}

// Doublet preserves doublets (k=2).
func Doublet(seq string, opts ...Option) (string, error) { return Permute(seq, 2, opts...) }

// DoubletTriplet preserves doublets and triplets (k=3).
func DoubletTriplet(seq string, opts ...Option) (string, error) { return Permute(seq, 3, opts...) }

// DoubletTripletQuadruplet preserves doublets, triplets and quadruplets (k=4).
func DoubletTripletQuadruplet(seq string, opts ...Option) (string, error) {
	return Permute(seq, 4, opts...)
}

// PermuteResult is Permute with search statistics.
//
// Complexity: O(A·|V|·k) for the search (A = attempts), O(n) for the walk.
func PermuteResult(seq string, k int, opts ...Option) (Result, error) {
	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var (
		r  = rng.Or(o.Rand)
		lg = o.debugLogger()
	)

	// 1. Edge ordering.
	g, err := kgraph.Build(seq, k)
	if err != nil {
		return Result{}, err
	}
	if lg != nil {
		lg.Debug("edge ordering", "seq", seq, "k", k,
			"start", g.Vertices[g.Start()], "terminal", g.Vertices[g.Terminal()])
		lg.Debug("\n" + g.String())
		if err = kgraph.Balanced(g); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
		}
		lg.Debug("degrees balanced", "vertices", g.Len(), "edges", g.EdgeCount())
	}

	// 2-3. Connected last edges.
	last, attempts, draws, err := selectLastEdges(g, r, o.MaxAttempts)
	if err != nil {
		return Result{Attempts: attempts, Draws: draws}, err
	}
	if lg != nil {
		lg.Debug("last edges", "attempts", attempts, "draws", draws, "edges", edgeLabels(g, last))
	}

	// 4. Fix last edges, shuffle the rest.
	fixLastEdges(g, last)
	shuffleEdges(g, r)

	// 5. Reconstruct.
	out, err := walk(g, lg)
	if err != nil {
		return Result{Attempts: attempts, Draws: draws}, err
	}

	// 6. Validate.
	if len(out) != len(seq) {
		return Result{}, fmt.Errorf("%w: length %d, want %d", ErrInvariantViolated, len(out), len(seq))
	}
	if !klet.EqualUpTo(seq, out, k) {
		return Result{}, fmt.Errorf("%w: j-lets not preserved for k=%d", ErrInvariantViolated, k)
	}

	return Result{Seq: out, Attempts: attempts, Draws: draws}, nil
}

// selectLastEdges draws one last edge per non-terminal vertex until the set
// connects the graph. The returned slice is indexed by draw order, not by vertex.
func selectLastEdges(g *kgraph.Graph, r *rand.Rand, maxAttempts int) ([]kgraph.Edge, int, int, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var (
		chosen   = make([]kgraph.Edge, 0, g.Len())
		seen     = make(map[string]struct{})
		key      strings.Builder
		attempts int
		draws    int
		maxDraws = maxAttempts * duplicateDrawFactor
		e        kgraph.Edge
	)
	for attempts < maxAttempts && draws < maxDraws {
		draws++
		chosen = chosen[:0]
		key.Reset()
		for v, edges := range g.Out {
			if v == g.Terminal() {
				continue
			}
			if len(edges) == 0 {
				return nil, attempts, draws, fmt.Errorf("%w: vertex %q has no outgoing edge", ErrInvariantViolated, g.Vertices[v])
			}
			e = edges[r.Intn(len(edges))]
			chosen = append(chosen, e)
			// Labels have fixed length k, so plain concatenation is unambiguous.
			key.WriteString(g.Label(e))
		}

		if _, dup := seen[key.String()]; dup {
			continue
		}
		seen[key.String()] = struct{}{}
		attempts++

		if kgraph.Connected(g, chosen) {
			return append([]kgraph.Edge(nil), chosen...), attempts, draws, nil
		}
	}

	return nil, attempts, draws, fmt.Errorf("%w: %d attempts, %d draws", ErrSearchExhausted, attempts, draws)
}

// fixLastEdges moves every chosen edge to the end of its source list.
func fixLastEdges(g *kgraph.Graph, last []kgraph.Edge) {
	var i int
	for _, e := range last {
		edges := g.Out[e.From]
		for i = range edges {
			if edges[i].Pos == e.Pos {
				break
			}
		}
		copy(edges[i:], edges[i+1:])
		edges[len(edges)-1] = e
	}
}

// shuffleEdges permutes every list, keeping the fixed last edge in place for
// non-terminal vertices.
func shuffleEdges(g *kgraph.Graph, r *rand.Rand) {
	for v, edges := range g.Out {
		if v == g.Terminal() {
			rng.Shuffle(edges, r)
			continue
		}
		rng.Shuffle(edges[:len(edges)-1], r)
	}
}

// walk spells the sequence obtained by always leaving a vertex through its
// first unused edge, consuming the lists of g.
func walk(g *kgraph.Graph, lg *log.Logger) (string, error) {
	var (
		out = make([]byte, 0, len(g.Seq))
		cur = g.Start()
		e   kgraph.Edge
	)
	out = append(out, g.Seq[:g.K-1]...)

	for len(g.Out[cur]) > 0 {
		e = g.Out[cur][0]
		g.Out[cur] = g.Out[cur][1:]
		out = append(out, g.Symbol(e))
		cur = e.To
		if lg != nil {
			lg.Debug("step", "edge", g.Label(e), "vertex", g.Vertices[cur], "seq", string(out))
		}
	}

	if cur != g.Terminal() {
		return "", fmt.Errorf("%w: walk stopped at %q, want %q", ErrInvariantViolated, g.Vertices[cur], g.Vertices[g.Terminal()])
	}
	for v, edges := range g.Out {
		if len(edges) != 0 {
			return "", fmt.Errorf("%w: edge list of %q not exhausted", ErrInvariantViolated, g.Vertices[v])
		}
	}

	return string(out), nil
}

func edgeLabels(g *kgraph.Graph, edges []kgraph.Edge) []string {
	var out = make([]string, len(edges))
	for i, e := range edges {
		out[i] = g.Label(e)
	}

	return out
}
