// Package kletshuffle generates random permutations of sequences that keep
// the exact count of every substring of length j, 2 <= j <= k.
//
// Such shuffles are the standard null model for motif and composition
// studies: a motif enriched in real promoters but not in their k-let
// shuffles is not explained by short-range composition alone.
//
// Engines:
//
//	altschul/     — uniform sampling over all k-let preserving permutations
//	                (random Eulerian path of the (k-1)-mer graph)
//	kandel/       — rotation and four-point swap moves, chained as a Markov walk
//	splitshuffle/ — split at a (k-1)-mer and reorder the pieces
//	shuffle/      — Compute dispatches to an engine by name
//
// Building blocks:
//
//	disjointset/ — union-find for the last-edge connectivity test
//	kgraph/      — k-let graph: (k-1)-mer vertices, k-let edges
//	klet/        — windows, blocks and k-let count comparison
//	fasta/       — FASTA reader/writer, gzip aware
//	config/      — TOML configuration for the CLI
//
// Quick example:
//
//	out, err := altschul.Permute("ACTAGTAT", 2, altschul.WithSeed(7))
//	// out is one of AGTACTAT ACTAGTAT ATAGTACT ATACTAGT AGTATACT ACTATAGT,
//	// each with probability 1/6.
//
// Command line:
//
//	go install github.com/katalvlaran/kletshuffle/cmd/kletshuffle@latest
//	kletshuffle shuffle -k 3 --count 10 promoters.fa -o null.fa.gz
package kletshuffle
