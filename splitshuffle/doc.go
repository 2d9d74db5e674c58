// Package splitshuffle implements the split-and-shuffle k-let preserving
// permutation.
//
// The sequence is cut at every non-overlapping occurrence of a (k-1)-mer P:
//
//	C0 P C1 P C2 ... P Cm
//
// The interior chunks C1..Cm-1 are shuffled and the pieces rejoined around P.
// Each chunk keeps P on both sides, so every window of length j <= k still
// lies inside the same P·Ci·P context and the j-let counts are unchanged.
//
// The method is cheap (O(n) per pattern) but does not sample uniformly; use
// package altschul when uniformity matters.
package splitshuffle
