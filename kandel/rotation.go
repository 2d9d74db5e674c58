package kandel

import (
	"fmt"

	"github.com/katalvlaran/kletshuffle/klet"
)

// IsKCyclic reports whether the first k-1 symbols of seq equal its last k-1
// symbols. It is false when k < 1 or k > len(seq). For k == 1 both ends are
// empty, so every non-empty seq is 1-cyclic.
func IsKCyclic(seq string, k int) bool {
	if k < 1 || k > len(seq) {
		return false
	}

	return seq[:k-1] == seq[len(seq)-(k-1):]
}

// RotateAt rotates a k-cyclic sequence at point m, k <= m <= len(seq).
//
// A k-cyclic sequence is the closed walk over the cyclic string c = seq[k-1:];
// the rotation reads len(seq) symbols of c starting at offset m-k, so the
// n-k+1 points yield every rotation once (seq itself among them).
//
// Complexity: O(n).
func RotateAt(seq string, k, m int) (string, error) {
	if k < 2 {
		return "", fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if !IsKCyclic(seq, k) {
		return "", fmt.Errorf("%w: k=%d", ErrNotCyclic, k)
	}
	if m < k || m > len(seq) {
		return "", fmt.Errorf("%w: m=%d not in [%d,%d]", ErrRotationPoint, m, k, len(seq))
	}

	var out = rotate(seq, k, m-k)
	if !klet.Equal(seq, out, k) {
		return "", fmt.Errorf("%w: rotation at m=%d lost a %d-let", ErrInvariantViolated, m, k)
	}

	return out, nil
}

// RandomRotation rotates a k-cyclic sequence at a uniformly drawn point.
func RandomRotation(seq string, k int, opts ...Option) (string, error) {
	if k < 2 {
		return "", fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if !IsKCyclic(seq, k) {
		return "", fmt.Errorf("%w: k=%d", ErrNotCyclic, k)
	}
	var o = resolve(opts)

	return RotateAt(seq, k, k+o.Rand.Intn(len(seq)-k+1))
}

// Rotations returns the rotations of a k-cyclic sequence for m = k..len(seq).
func Rotations(seq string, k int) ([]string, error) {
	var out = make([]string, 0, len(seq))
	for m := k; m <= len(seq); m++ {
		rot, err := RotateAt(seq, k, m)
		if err != nil {
			return nil, err
		}
		out = append(out, rot)
	}

	return out, nil
}

// rotate reads len(seq) symbols of the cyclic string seq[k-1:] from offset.
func rotate(seq string, k, offset int) string {
	var (
		c   = seq[k-1:]
		out = make([]byte, len(seq))
		j   int
	)
	for j = range out {
		out[j] = c[(offset+j)%len(c)]
	}

	return string(out)
}

// anchoredOffsets returns the rotation offsets whose output starts with the
// same (k-1)-mer as seq. Rotating there keeps both ends, and with them every
// j-let for j < k. The identity offset is always included.
func anchoredOffsets(seq string, k int) []int {
	var (
		c      = seq[k-1:]
		head   = seq[:k-1]
		out    []int
		off, j int
	)
	for off = 0; off < len(c); off++ {
		for j = 0; j < len(head); j++ {
			if c[(off+j)%len(c)] != head[j] {
				break
			}
		}
		if j == len(head) {
			out = append(out, off)
		}
	}

	return out
}
