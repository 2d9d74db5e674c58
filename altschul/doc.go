// Package altschul implements the Altschul–Erickson k-let preserving
// permutation: a random sequence with exactly the same j-lets, 2 <= j <= k,
// as its input.
//
// What & Why
//
//   - Statistical tests on sequences need null models: shuffles that look
//     random yet keep local composition (dinucleotide, trinucleotide, ...
//     frequencies) intact. A plain shuffle destroys it; this one cannot.
//
// Algorithm
//
//  1. Build the edge ordering of the k-let graph (package kgraph).
//  2. For every vertex but the terminal one, draw a "last edge" uniformly.
//     Combinations already tried are redrawn without re-testing.
//  3. Accept the draw when the last edges connect all vertices (package
//     disjointset); give up after MaxAttempts distinct draws (ErrSearchExhausted).
//  4. Move each last edge to the end of its list, shuffle the other edges.
//  5. Walk from the first (k-1)-mer, always leaving by the first unused edge.
//     The fixed last edges form an arborescence into the terminal vertex, so
//     the walk can only stop there and only after every edge is used.
//  6. Validate length and all j-lets against the input.
//
// Because the last edges are sampled uniformly (rejection on connectivity)
// and the remaining orders are uniform, every valid rearrangement comes out
// with the same probability.
//
// DoubletTriplon is the reading-frame variant: it keeps the doublets and the
// multiset of non-overlapping triplons (codons) by running the k=2 engine on
// the first and third symbol of every triplon.
//
// Errors:
//   - kgraph.ErrInvalidK, kgraph.ErrSequenceTooShort: bad k for the input.
//   - ErrTriplonLength, ErrNonASCII: DoubletTriplon preconditions.
//   - ErrSearchExhausted  : no connecting last-edge set within the budget.
//   - ErrInvariantViolated: the walk stranded or the output lost a j-let.
//     This indicates a bug, never bad input.
//
// Reference: S. F. Altschul, B. W. Erickson, "Significance of nucleotide
// sequence alignments", Mol. Biol. Evol. 2(6), 1985.
package altschul
