// Package cli implements the kletshuffle command-line interface.
//
// # Commands
//
//   - shuffle: write k-let preserving shuffles of every FASTA record
//   - check: compare the j-let content of two sequences
//   - rotations: list the rotations of a k-cyclic sequence
//
// # Logging
//
// --verbose (-v) switches the charmbracelet/log logger to debug level and
// turns on engine debug output. The logger travels on the command context.
package cli
