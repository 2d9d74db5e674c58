package altschul

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/kletshuffle/internal/rng"
	"github.com/katalvlaran/kletshuffle/kgraph"
	"github.com/katalvlaran/kletshuffle/klet"
)

var (
	// ErrTriplonLength indicates a sequence whose length is not a multiple of 3.
	ErrTriplonLength = errors.New("altschul: length is not a multiple of 3")

	// ErrNonASCII indicates a symbol >= 0x80, which DoubletTriplon reserves
	// for tagging the third position of each triplon.
	ErrNonASCII = errors.New("altschul: non-ASCII symbol")
)

// thirdTag marks a third-position symbol so it never equals a first-position one.
const thirdTag = 0x80

// DoubletTriplon returns a random rearrangement of seq that keeps its
// doublets and its multiset of triplons (the non-overlapping blocks
// seq[0:3], seq[3:6], ..., e.g. codons).
//
// Every triplon xyz is reduced to the pair x·z', with z' a tagged copy of z.
// The string r of these pairs alternates untagged and tagged symbols, so any
// doublet-preserving permutation of r again pairs up as x·z' keys. Each key
// is then replaced by a triplon drawn from the shuffled bucket of that key.
// Inner doublets xy, yz travel with their triplon; boundary doublets z·x are
// the z'→x doublets of r, which the k=2 permutation preserves.
//
// A sequence of a single triplon is returned unchanged.
func DoubletTriplon(seq string, opts ...Option) (string, error) {
	if len(seq)%3 != 0 {
		return "", fmt.Errorf("%w: len=%d", ErrTriplonLength, len(seq))
	}
	if len(seq) < 3 {
		return "", fmt.Errorf("%w: len=%d", kgraph.ErrSequenceTooShort, len(seq))
	}

	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	var (
		r        = rng.Or(o.Rand)
		lg       = o.debugLogger()
		triplons = klet.Chunk(seq, 3)
		pairs    = make([]byte, 0, 2*len(triplons))
		buckets  = make(map[string][]string)
	)
	if len(triplons) == 1 {
		return seq, nil
	}
	for _, t := range triplons {
		if t[0] >= thirdTag || t[1] >= thirdTag || t[2] >= thirdTag {
			return "", fmt.Errorf("%w: triplon %q", ErrNonASCII, t)
		}
		key := string([]byte{t[0], t[2] | thirdTag})
		pairs = append(pairs, key...)
		buckets[key] = append(buckets[key], t)
	}

	perm, err := Permute(string(pairs), 2,
		WithRand(r), WithMaxAttempts(o.MaxAttempts), WithDebug(o.Debug), WithLogger(o.Logger))
	if err != nil {
		return "", err
	}

	// Sorted keys keep the draw sequence independent of map order.
	var keys = make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		rng.Shuffle(buckets[key], r)
	}

	var out = make([]byte, 0, len(seq))
	for i := 0; i+1 < len(perm); i += 2 {
		key := perm[i : i+2]
		bucket := buckets[key]
		if len(bucket) == 0 {
			return "", fmt.Errorf("%w: no triplon left for pair %d", ErrInvariantViolated, i/2)
		}
		out = append(out, bucket[0]...)
		buckets[key] = bucket[1:]
	}
	if lg != nil {
		lg.Debug("triplons", "count", len(triplons), "buckets", len(buckets), "seq", string(out))
	}

	if len(out) != len(seq) || !klet.Equal(seq, string(out), 2) {
		return "", fmt.Errorf("%w: doublets not preserved", ErrInvariantViolated)
	}
	if !klet.KlonsEqual(seq, string(out), 3) {
		return "", fmt.Errorf("%w: triplons not preserved", ErrInvariantViolated)
	}

	return string(out), nil
}
