package kandel

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/kletshuffle/klet"
)

// Transition performs one four-point block swap.
//
// It samples four distinct vertex positions a<b<c<d from [0, n-k+1] and accepts
// when seq's (k-1)-mers satisfy x(a)==x(c) and x(b)==x(d); the output is
//
//	seq[:a] + seq[c:d+k-1] + seq[b+k-1:c] + seq[a:b+k-1] + seq[d+k-1:]
//
// After MaxSwapAttempts rejected samples, or when fewer than four vertex
// positions exist, seq is returned unchanged with changed == false.
func Transition(seq string, k int, opts ...Option) (out string, changed bool, err error) {
	if err = checkK(seq, k); err != nil {
		return "", false, err
	}

	return transition(seq, k, resolve(opts))
}

// SwapAt performs the block swap at explicit positions a<b<c<d.
func SwapAt(seq string, k, a, b, c, d int) (string, error) {
	if err := checkK(seq, k); err != nil {
		return "", err
	}
	if !(0 <= a && a < b && b < c && c < d && d <= len(seq)-k+1) {
		return "", fmt.Errorf("%w: a=%d b=%d c=%d d=%d", ErrSwapPositions, a, b, c, d)
	}
	if !seams(seq, k, a, b, c, d) {
		return "", fmt.Errorf("%w: (k-1)-mers at a,c or b,d differ", ErrSwapPositions)
	}

	var out = swap(seq, k, a, b, c, d)
	if len(out) != len(seq) || !klet.Equal(seq, out, k) {
		return "", fmt.Errorf("%w: swap a=%d b=%d c=%d d=%d", ErrInvariantViolated, a, b, c, d)
	}

	return out, nil
}

func transition(seq string, k int, o Options) (string, bool, error) {
	var positions = len(seq) - k + 2
	if positions < 4 {
		return seq, false, nil
	}

	var (
		p       [4]int
		attempt int
		lg      = o.debugLogger()
	)
	for attempt = 0; attempt < o.MaxSwapAttempts; attempt++ {
		sample4(o.Rand, positions, &p)
		if !seams(seq, k, p[0], p[1], p[2], p[3]) {
			continue
		}
		out, err := SwapAt(seq, k, p[0], p[1], p[2], p[3])
		if err != nil {
			return "", false, err
		}
		if lg != nil {
			lg.Debug("swap", "a", p[0], "b", p[1], "c", p[2], "d", p[3], "attempts", attempt+1, "seq", out)
		}
		return out, true, nil
	}
	if lg != nil {
		lg.Debug("swap search exhausted", "attempts", o.MaxSwapAttempts)
	}

	return seq, false, nil
}

// sample4 draws four distinct values of [0, n) into p, sorted ascending.
// Requires n >= 4.
func sample4(r *rand.Rand, n int, p *[4]int) {
	var i, j, v int
	for i = 0; i < 4; {
		v = r.Intn(n)
		for j = 0; j < i && p[j] != v; j++ {
		}
		if j == i {
			p[i] = v
			i++
		}
	}
	sort.Ints(p[:])
}

func seams(seq string, k, a, b, c, d int) bool {
	var w = k - 1
	return seq[a:a+w] == seq[c:c+w] && seq[b:b+w] == seq[d:d+w]
}

// swap reassembles the walk x(a)→x(b), x(b)→x(c), x(c)→x(d) as
// x(a)=x(c)→x(d), x(b)=x(d)→x(c), x(c)=x(a)→x(b). Written per walk leg, it
// stays valid when seams overlap (c < b+k-1).
func swap(seq string, k, a, b, c, d int) string {
	var w = k - 1
	var out = make([]byte, 0, len(seq))
	out = append(out, seq[:a+w]...)
	out = append(out, seq[c+w:d+w]...)
	out = append(out, seq[b+w:c+w]...)
	out = append(out, seq[a+w:b+w]...)
	out = append(out, seq[d+w:]...)

	return string(out)
}

func checkK(seq string, k int) error {
	if k < 2 {
		return fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if k >= len(seq) {
		return fmt.Errorf("%w: k=%d, len=%d", ErrSequenceTooShort, k, len(seq))
	}

	return nil
}
