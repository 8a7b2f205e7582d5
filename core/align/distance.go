package align

import (
	"fmt"

	"seqscan-core/seqcheck"
)

// Hamming returns the number of positions at which a and b differ.
// The sequences must have equal length.
func Hamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: sequences must have equal length (%d vs %d)",
			seqcheck.ErrArgument, len(a), len(b))
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// Levenshtein returns the edit distance between a and b using two rolling
// rows, O(len(a)*len(b)) time and O(len(b)) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost // substitute
			if del := prev[j] + 1; del < best {
				best = del
			}
			if ins := cur[j-1] + 1; ins < best {
				best = ins
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
