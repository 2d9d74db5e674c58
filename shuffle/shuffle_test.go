package shuffle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kletshuffle/altschul"
	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
	"github.com/katalvlaran/kletshuffle/klet"
	"github.com/katalvlaran/kletshuffle/shuffle"
)

const sample = "AGACATAAAGTTCCGTACTGCCGGGATAGACATAAAGTTCCGTACTGCCGGGAT"

func TestCompute_KletMethods(t *testing.T) {
	for _, m := range []string{shuffle.MethodAltschul, shuffle.MethodKandel, shuffle.MethodSplit} {
		for k := 2; k <= 4; k++ {
			got, err := shuffle.Compute(sample, shuffle.NewOptions(shuffle.WithMethod(m), shuffle.WithK(k), shuffle.WithSeed(11)))
			require.NoError(t, err, "method=%s k=%d", m, k)
			assert.Len(t, got, len(sample))
			assert.True(t, klet.EqualUpTo(sample, got, k), "method=%s k=%d", m, k)
		}
	}
}

func TestCompute_Triplon(t *testing.T) {
	got, err := shuffle.Compute(sample, shuffle.NewOptions(shuffle.WithMethod(shuffle.MethodTriplon), shuffle.WithSeed(4)))
	require.NoError(t, err)
	assert.True(t, klet.Equal(sample, got, 2))
	assert.True(t, klet.KlonsEqual(sample, got, 3))

	_, err = shuffle.Compute(sample[:10], shuffle.NewOptions(shuffle.WithMethod(shuffle.MethodTriplon)))
	assert.ErrorIs(t, err, altschul.ErrTriplonLength)
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, err := shuffle.Compute(sample, shuffle.NewOptions(shuffle.WithMethod("bogus")))
	assert.ErrorIs(t, err, shuffle.ErrUnknownMethod)
}

func TestCompute_EngineErrorsPassThrough(t *testing.T) {
	_, err := shuffle.Compute("ACG", shuffle.NewOptions(shuffle.WithK(1)))
	assert.ErrorIs(t, err, kgraph.ErrInvalidK)
}

func TestCompute_SeedAndRand(t *testing.T) {
	a, err := shuffle.Compute(sample, shuffle.NewOptions(shuffle.WithSeed(5)))
	require.NoError(t, err)
	b, err := shuffle.Compute(sample, shuffle.NewOptions(shuffle.WithRand(rng.FromSeed(5)), shuffle.WithSeed(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDefaultOptions(t *testing.T) {
	o := shuffle.DefaultOptions()
	assert.Equal(t, shuffle.MethodAltschul, o.Method)
	assert.Equal(t, 2, o.K)
	assert.True(t, o.Loop)
	assert.Equal(t, []string{"altschul", "kandel", "split", "triplon"}, shuffle.Methods())
}
