// Package fasta reads and writes FASTA records on top of biogo's
// seqio/fasta parser.
//
// Open and Create switch to gzip (klauspost/pgzip) when the path ends in
// ".gz". Sequence lines are concatenated, stripped of whitespace and
// upper-cased on read; Writer wraps them at LineWidth columns. Letters are
// carried byte for byte, whatever the alphabet.
package fasta
