package klet

// Windows returns the consecutive overlapping substrings of length size.
// It returns nil when size <= 0 or size > len(seq).
//
//	Windows("ABCDE", 2) → AB BC CD DE
//
// The returned strings share memory with seq.
func Windows(seq string, size int) []string {
	if size <= 0 || size > len(seq) {
		return nil
	}

	var out = make([]string, 0, len(seq)-size+1)
	var i int
	for i = 0; i+size <= len(seq); i++ {
		out = append(out, seq[i:i+size])
	}

	return out
}

// Chunk returns consecutive non-overlapping blocks of length size; the last
// block holds the remainder and may be shorter. It returns nil when size <= 0.
//
//	Chunk("ABCDEFG", 3) → ABC DEF G
func Chunk(seq string, size int) []string {
	if size <= 0 {
		return nil
	}

	var out = make([]string, 0, (len(seq)+size-1)/size)
	var from, to int
	for from = 0; from < len(seq); from += size {
		to = from + size
		if to > len(seq) {
			to = len(seq)
		}
		out = append(out, seq[from:to])
	}

	return out
}
