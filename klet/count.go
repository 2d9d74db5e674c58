package klet

// Count returns the multiplicity of every k-let in seq.
// The map is empty when k <= 0 or k > len(seq).
func Count(seq string, k int) map[string]int {
	var counts = make(map[string]int)
	if k <= 0 || k > len(seq) {
		return counts
	}
	var i int
	for i = 0; i+k <= len(seq); i++ {
		counts[seq[i:i+k]]++
	}

	return counts
}

// Equal reports whether a and b have identical k-let multisets.
func Equal(a, b string, k int) bool {
	// Differing lengths give differing window counts, except when both are
	// shorter than k and therefore empty.
	if len(a) != len(b) && (k <= len(a) || k <= len(b)) {
		return false
	}

	return sameCounts(Count(a, k), Windows(b, k))
}

// EqualUpTo reports whether a and b share the j-let multisets for every
// j in 2..k, the full preservation condition of the shuffling engines.
func EqualUpTo(a, b string, k int) bool {
	var j int
	for j = 2; j <= k; j++ {
		if !Equal(a, b, j) {
			return false
		}
	}

	return true
}

// KlonsEqual reports whether a and b have identical multisets of
// non-overlapping length-k blocks ("klons", e.g. codons for k=3).
func KlonsEqual(a, b string, k int) bool {
	var counts = make(map[string]int)
	for _, c := range Chunk(a, k) {
		counts[c]++
	}

	return sameCounts(counts, Chunk(b, k))
}

// sameCounts decrements counts by every item and reports exact balance.
// counts is consumed.
func sameCounts(counts map[string]int, items []string) bool {
	for _, it := range items {
		var c, ok = counts[it]
		if !ok || c == 0 {
			return false
		}
		if c == 1 {
			delete(counts, it)
			continue
		}
		counts[it] = c - 1
	}

	return len(counts) == 0
}
