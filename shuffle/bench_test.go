package shuffle_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kletshuffle/shuffle"
)

func randomDNA(n int) string {
	r := rand.New(rand.NewSource(1))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.Intn(4)]
	}
	return string(b)
}

func benchmarkMethod(b *testing.B, method string, k, n int) {
	seq := randomDNA(n) // pre‐build input once
	opts := shuffle.NewOptions(shuffle.WithMethod(method), shuffle.WithK(k))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts.Seed = int64(i + 1)
		_, _ = shuffle.Compute(seq, opts)
	}
}

// BenchmarkAltschul_K2 measures a uniform doublet shuffle of a 1kb sequence.
func BenchmarkAltschul_K2(b *testing.B) { benchmarkMethod(b, shuffle.MethodAltschul, 2, 1000) }

// BenchmarkAltschul_K3 measures a doublet+triplet shuffle of a 1kb sequence.
func BenchmarkAltschul_K3(b *testing.B) { benchmarkMethod(b, shuffle.MethodAltschul, 3, 1000) }

// BenchmarkKandel_K2 measures the default 100-step chain on 1kb.
func BenchmarkKandel_K2(b *testing.B) { benchmarkMethod(b, shuffle.MethodKandel, 2, 1000) }

// BenchmarkSplit_K3 measures split-and-shuffle on 1kb.
func BenchmarkSplit_K3(b *testing.B) { benchmarkMethod(b, shuffle.MethodSplit, 3, 1000) }
