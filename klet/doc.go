// Package klet counts and compares k-lets: contiguous substrings of length k
// (generalized k-mers). It is the correctness oracle of every shuffling
// engine in this module.
//
//	Windows("ACGTA", 3) → ACG CGT GTA   (overlapping, k-lets)
//	Chunk("ACGTA", 2)   → AC GT A       (non-overlapping, klons + tail)
//
// Equal(a, b, k) reports whether two sequences carry the same multiset of
// k-lets; EqualUpTo(a, b, k) checks every j in 2..k at once; KlonsEqual
// compares the non-overlapping block multisets instead.
//
// All functions are pure and byte-oriented: a symbol is one byte.
package klet
