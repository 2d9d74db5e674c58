package kandel_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kletshuffle/kandel"
	"github.com/katalvlaran/kletshuffle/klet"
)

func randomSeq(r *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestIsKCyclic(t *testing.T) {
	assert.True(t, kandel.IsKCyclic("AATAA", 2))
	assert.True(t, kandel.IsKCyclic("AATAA", 3))
	assert.False(t, kandel.IsKCyclic("AATAA", 4)) // AAT vs TAA
	assert.True(t, kandel.IsKCyclic("ACGTAC", 3))
	assert.False(t, kandel.IsKCyclic("ACTAGTAT", 2))
	assert.False(t, kandel.IsKCyclic("AC", 3))
	assert.True(t, kandel.IsKCyclic("AC", 1))
	assert.False(t, kandel.IsKCyclic("", 1))
	assert.False(t, kandel.IsKCyclic("AC", 0))
}

func TestRotations_AATAA(t *testing.T) {
	got, err := kandel.Rotations("AATAA", 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ATAAA", "TAAAT", "AAATA", "AATAA"}, got)
}

func TestRotations_ACGTAC(t *testing.T) {
	got, err := kandel.Rotations("ACGTAC", 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ACGTAC", "CGTACG", "GTACGT", "TACGTA"}, got)
	for _, rot := range got {
		assert.True(t, kandel.IsKCyclic(rot, 3))
		assert.True(t, klet.Equal("ACGTAC", rot, 3))
	}
}

func TestRotateAt_DifferentK(t *testing.T) {
	const seq = "ACGTACG"
	seen := map[string]struct{}{}
	for m := 4; m <= len(seq); m++ {
		rot, err := kandel.RotateAt(seq, 4, m)
		require.NoError(t, err)
		assert.True(t, kandel.IsKCyclic(rot, 4))
		assert.True(t, klet.Equal(seq, rot, 4))
		seen[rot] = struct{}{}
	}
	assert.Len(t, seen, len(seq)-4+1)
}

func TestRotateAt_Errors(t *testing.T) {
	_, err := kandel.RotateAt("ACTAGTAT", 2, 3)
	assert.ErrorIs(t, err, kandel.ErrNotCyclic)

	_, err = kandel.RotateAt("AATAA", 2, 1)
	assert.ErrorIs(t, err, kandel.ErrRotationPoint)

	_, err = kandel.RotateAt("AATAA", 2, 6)
	assert.ErrorIs(t, err, kandel.ErrRotationPoint)

	_, err = kandel.RotateAt("AATAA", 1, 3)
	assert.ErrorIs(t, err, kandel.ErrInvalidK)

	_, err = kandel.RandomRotation("ACTAGTAT", 2)
	assert.ErrorIs(t, err, kandel.ErrNotCyclic)
}

func TestRandomRotation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	valid := []string{"ATAAA", "TAAAT", "AAATA", "AATAA"}
	for i := 0; i < 50; i++ {
		rot, err := kandel.RandomRotation("AATAA", 2, kandel.WithRand(r))
		require.NoError(t, err)
		assert.Contains(t, valid, rot)
	}
}

// TestSwapAt pairs A at positions 0,3 and T at 2,5 of ACTAGTAT, so the
// legs CT and AGT trade places.
func TestSwapAt(t *testing.T) {
	got, err := kandel.SwapAt("ACTAGTAT", 2, 0, 2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, "AGTACTAT", got)

	_, err = kandel.SwapAt("ACTAGTAT", 2, 0, 1, 3, 5) // C != T
	assert.ErrorIs(t, err, kandel.ErrSwapPositions)

	_, err = kandel.SwapAt("ACTAGTAT", 2, 3, 2, 0, 5) // not increasing
	assert.ErrorIs(t, err, kandel.ErrSwapPositions)

	_, err = kandel.SwapAt("ACTAGTAT", 2, 0, 2, 3, 9) // past the last vertex
	assert.ErrorIs(t, err, kandel.ErrSwapPositions)
}

// TestSwapAt_OverlappingSeams exercises c < b+k-1: the x and y windows
// overlap, which the per-leg reassembly must still handle.
func TestSwapAt_OverlappingSeams(t *testing.T) {
	const seq = "AAAAAAA"
	got, err := kandel.SwapAt(seq, 4, 0, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, seq, got)
}

func TestTransition_Validation(t *testing.T) {
	_, _, err := kandel.Transition("ACGT", 1)
	assert.ErrorIs(t, err, kandel.ErrInvalidK)

	_, _, err = kandel.Transition("ACGT", 4)
	assert.ErrorIs(t, err, kandel.ErrSequenceTooShort)
}

// TestTransition_NoSeams checks the fail-closed fallback: all vertices of
// ACGT are distinct, so no quadruple can match.
func TestTransition_NoSeams(t *testing.T) {
	got, changed, err := kandel.Transition("ACGT", 2, kandel.WithSeed(1), kandel.WithMaxSwapAttempts(200))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "ACGT", got)
}

// TestTransition_TooFewPositions: n-k+2 < 4 vertex positions is a no-op.
func TestTransition_TooFewPositions(t *testing.T) {
	got, changed, err := kandel.Transition("AAAA", 3)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "AAAA", got)
}

// TestTransition_Safety is the randomized property: swap or no-op, length
// and every j-let (1..k) survive.
func TestTransition_Safety(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 500; trial++ {
		k := 2 + r.Intn(4)
		seq := randomSeq(r, "AC", k+1+r.Intn(60))

		got, _, err := kandel.Transition(seq, k, kandel.WithRand(r))
		require.NoError(t, err)
		require.Len(t, got, len(seq))
		for j := 1; j <= k; j++ {
			require.True(t, klet.Equal(seq, got, j), "seq=%q got=%q j=%d", seq, got, j)
		}
	}
}

// TestShuffle_KnownSet checks that the chain only visits the six doublet
// rearrangements of ACTAGTAT, and reaches all of them.
func TestShuffle_KnownSet(t *testing.T) {
	perms := []string{"AGTACTAT", "ACTAGTAT", "ATAGTACT", "ATACTAGT", "AGTATACT", "ACTATAGT"}
	r := rand.New(rand.NewSource(8))

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		got, err := kandel.Shuffle("ACTAGTAT", 2, kandel.WithRand(r), kandel.WithSteps(20))
		require.NoError(t, err)
		require.Contains(t, perms, got)
		seen[got]++
	}
	assert.Len(t, seen, len(perms))
}

// TestShuffle_Cyclic checks that rotations inside the chain keep every
// j-let for k-cyclic inputs.
func TestShuffle_Cyclic(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for trial := 0; trial < 100; trial++ {
		k := 2 + r.Intn(3)
		body := randomSeq(r, "ACG", k+r.Intn(40))
		seq := body + body[:k-1]
		require.True(t, kandel.IsKCyclic(seq, k))

		got, err := kandel.Shuffle(seq, k, kandel.WithRand(r), kandel.WithSteps(30))
		require.NoError(t, err)
		assert.True(t, kandel.IsKCyclic(got, k))
		assert.True(t, klet.EqualUpTo(seq, got, k), "seq=%q got=%q", seq, got)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a, err := kandel.Shuffle("AGACATAAAGTTCCGTACTGCCGGGAT", 2, kandel.WithSeed(4))
	require.NoError(t, err)
	b, err := kandel.Shuffle("AGACATAAAGTTCCGTACTGCCGGGAT", 2, kandel.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestShuffle_DebugLogging checks that logging never alters the draw.
func TestShuffle_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	lg := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	const seq = "AATAAGATAATTAA"

	base, err := kandel.Shuffle(seq, 2, kandel.WithSeed(12), kandel.WithSteps(40))
	require.NoError(t, err)
	got, err := kandel.Shuffle(seq, 2, kandel.WithSeed(12), kandel.WithSteps(40),
		kandel.WithDebug(true), kandel.WithLogger(lg))
	require.NoError(t, err)

	assert.Equal(t, base, got)
	assert.Contains(t, buf.String(), "rotate")
	assert.Contains(t, buf.String(), "swap")
}
