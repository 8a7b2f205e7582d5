// Package palindrome enumerates substrings that read the same forwards
// and backwards (literal reversal, not reverse complement).
package palindrome

import "seqscan-core/seqcheck"

// Region is a half-open [Start,End) interval with its substring.
type Region struct {
	Start int
	End   int
	Seq   string
}

// Find returns every substring of seq with length >= minLen that equals
// its own reverse, including palindromes nested inside longer ones.
// The alphabet is unrestricted. Results are ordered by (Start, End).
//
// An interval table keeps the scan at O(n^2) time and space; the output
// set is identical to checking every substring naively.
func Find(seq string, minLen int) ([]Region, error) {
	if err := seqcheck.Positive("min-length", minLen); err != nil {
		return nil, err
	}

	n := len(seq)
	out := []Region{}
	if n == 0 || minLen > n {
		return out, nil
	}

	// pal[i][j] == true iff seq[i..j] (inclusive) is a palindrome.
	pal := make([][]bool, n)
	for i := range pal {
		pal[i] = make([]bool, n)
		pal[i][i] = true
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length - 1
			if seq[i] != seq[j] {
				continue
			}
			if length == 2 || pal[i+1][j-1] {
				pal[i][j] = true
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + minLen - 1; j < n; j++ {
			if pal[i][j] {
				out = append(out, Region{Start: i, End: j + 1, Seq: seq[i : j+1]})
			}
		}
	}
	return out, nil
}
