package altschul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
)

// TestSelectLastEdges_Exhausted removes A→T from "ACAT" so the only possible
// draw is the A↔C cycle; the search must stop with ErrSearchExhausted even
// though every later draw is a repeat.
func TestSelectLastEdges_Exhausted(t *testing.T) {
	g, err := kgraph.Build("ACAT", 2)
	require.NoError(t, err)
	a, _ := g.Index("A")
	g.Out[a] = g.Out[a][:1] // keep AC only

	_, attempts, draws, err := selectLastEdges(g, rng.FromSeed(1), 10)
	assert.ErrorIs(t, err, ErrSearchExhausted)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 10*duplicateDrawFactor, draws)
}

// TestWalk_DetectsLeftovers orders A's edges as [AT AC]: the walk reaches the
// terminal first and leaves AC and CA unused.
func TestWalk_DetectsLeftovers(t *testing.T) {
	g, err := kgraph.Build("ACAT", 2)
	require.NoError(t, err)
	a, _ := g.Index("A")
	g.Out[a][0], g.Out[a][1] = g.Out[a][1], g.Out[a][0]

	_, err = walk(g, nil)
	assert.ErrorIs(t, err, ErrInvariantViolated)
}

func TestFixLastEdges_MovesToEnd(t *testing.T) {
	g, err := kgraph.Build("ACTAGTAT", 2)
	require.NoError(t, err)
	a, _ := g.Index("A")
	first := g.Out[a][0] // AC

	fixLastEdges(g, []kgraph.Edge{first})
	require.Len(t, g.Out[a], 3)
	assert.Equal(t, first, g.Out[a][2])
	assert.Equal(t, "AG", g.Label(g.Out[a][0]))
	assert.Equal(t, "AT", g.Label(g.Out[a][1]))
}

func TestWalk_Identity(t *testing.T) {
	g, err := kgraph.Build("ACTAGTAT", 2)
	require.NoError(t, err)
	out, err := walk(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "ACTAGTAT", out)
}
