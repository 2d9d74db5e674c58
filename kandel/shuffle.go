package kandel

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/klet"
)

// Shuffle runs Steps Markov moves from seq and returns the final state.
//
// Non-cyclic inputs only take swap moves. For a k-cyclic input every step is
// a rotation with probability 1/2 and a swap otherwise; the rotation points
// are limited to those that re-read the cycle from another occurrence of the
// leading (k-1)-mer, so both ends stay fixed and all j-lets, 2 <= j <= k, are
// preserved by the chain as a whole.
func Shuffle(seq string, k int, opts ...Option) (string, error) {
	if err := checkK(seq, k); err != nil {
		return "", err
	}

	var (
		o      = resolve(opts)
		lg     = o.debugLogger()
		cyclic = IsKCyclic(seq, k)
		cur    = seq
		step   int
		err    error
	)
	for step = 0; step < o.Steps; step++ {
		if cyclic && o.Rand.Intn(2) == 0 {
			offsets := anchoredOffsets(cur, k)
			cur = rotate(cur, k, offsets[o.Rand.Intn(len(offsets))])
			if lg != nil {
				lg.Debug("rotate", "step", step, "seq", cur)
			}
			continue
		}
		if cur, _, err = transition(cur, k, o); err != nil {
			return "", err
		}
	}

	if len(cur) != len(seq) || !klet.EqualUpTo(seq, cur, k) {
		return "", fmt.Errorf("%w: shuffle lost a j-let for k=%d", ErrInvariantViolated, k)
	}

	return cur, nil
}
