// Package rng centralizes the deterministic random sources shared by the
// shuffling engines.
//
// Goals:
//   - Determinism: same seed ⇒ identical shuffles on every platform.
//   - Injection: engines take a *rand.Rand; nothing reads a package-global source.
//   - Independence: Derive splits per-record / per-worker streams from one seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Or returns r, or a DefaultSeed stream when r is nil.
func Or(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return FromSeed(0)
}

// golden is the SplitMix64 increment, 2^64 divided by the golden ratio.
const golden uint64 = 0x9e3779b97f4a7c15

// DeriveSeed returns the seed of stream number stream under parent.
//
// The CLI numbers shuffle j of record i as stream i*count+j, so stream ids
// are small consecutive integers. Seeding math/rand with parent+stream
// directly would give neighbouring records related sources; instead the
// stream picks the (stream+1)-th SplitMix64 state after parent and mix64
// scrambles it. A given (parent, stream) pair always yields the same seed,
// whatever order the streams are derived in.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64(uint64(parent) + (stream+1)*golden))
}

// mix64 is the SplitMix64 output function.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Derive creates an independent stream from a base seed and a stream id.
// Unlike drawing from a shared generator, the result for a given
// (seed, stream) pair does not depend on how many other streams were derived.
func Derive(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r is nil, a DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, r *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	r = Or(r)

	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
