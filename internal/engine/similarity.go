package engine

// Similarity returns an approximate closeness of two strings in [0, 1]: the
// number of positions holding the same rune, up to the shorter string's
// length, divided by the longer string's length. It is not an edit distance
// and under-detects matches involving insertions, deletions, or
// transpositions. Used only as the last-resort signal inside the scorer.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	longer := len(ra)
	shorter := len(rb)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if longer == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}
