// Package kgraph builds the k-let graph of a sequence: the de Bruijn style
// multigraph whose vertices are (k-1)-mers and whose edges are the k-let
// occurrences of the sequence.
//
// 🚀 What is the edge ordering?
//
//	For seq = "ACTAGTAT" and k = 2 every symbol is a vertex and every doublet
//	is an edge, kept with multiplicity and in left-to-right order:
//
//	  A: [AC AG AT]
//	  C: [CT]
//	  G: [GT]
//	  T: [TA TA]
//
//	Walking the lists in order from the start vertex ("A") spells the input
//	again; walking them in any order that never strands the walk spells a
//	sequence with the same doublets.
//
// ✨ Key properties:
//   - Vertices are interned once into dense int ids (first-appearance order),
//     so the hot reconstruction loops never hash substrings.
//   - The terminal vertex (final (k-1)-suffix) is always present, even with
//     no outgoing edges: it is the walk's sink.
//   - Connected answers whether a set of |V|-1 candidate last edges spans all
//     vertices, using package disjointset.
//
// Errors:
//   - ErrInvalidK        : k < 2.
//   - ErrSequenceTooShort: k >= len(seq).
//   - ErrUnbalanced      : Balanced found a degree mismatch.
package kgraph
