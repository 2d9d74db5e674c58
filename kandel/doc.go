// Package kandel implements the Kandel–Matias–Unger–Winkler shuffling moves:
// cyclic rotation of k-cyclic sequences and the four-point block swap.
//
// 🚀 Moves
//
//	Rotation: a sequence whose first k-1 symbols equal its last k-1 symbols
//	is a closed walk in the k-let graph, so it can be re-read from any of its
//	n-k+1 positions:
//
//	  RotateAt("AATAA", 2, m), m = 2..5 → ATAAA TAAAT AAATA AATAA
//
//	Swap: if the (k-1)-mer x occurs at positions a < c and y at b < d with
//	a < b < c < d, the walk x…y…x…y can trade its two x→y legs:
//
//	  u [x v y] w [x z y] t  →  u [x z y] w [x v y] t
//
// ✨ Guarantees:
//   - RotateAt / RandomRotation preserve the k-let multiset (not necessarily
//     shorter j-lets: the seam moves).
//   - Transition preserves every j-let, 1 <= j <= k, and keeps both ends.
//   - Shuffle chains Steps moves and preserves every j-let, 2 <= j <= k.
//
// ⚙️ Failure modes:
//   - Rotation on a non-k-cyclic sequence is ErrNotCyclic.
//   - Transition that finds no matching seams within MaxSwapAttempts returns
//     the input unchanged with changed == false. That is not an error.
//
// Reference: D. Kandel, Y. Matias, R. Unger, P. Winkler, "Shuffling
// biological sequences", Discrete Applied Mathematics 71, 1996.
package kandel
