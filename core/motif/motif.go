// Package motif finds every start position where an IUPAC pattern matches
// a DNA sequence.
package motif

import (
	"bytes"

	"seqscan-core/iupac"
	"seqscan-core/seqcheck"
)

func isUnambiguous(p string) bool {
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}

// Find returns the ascending 0-based offsets where pattern matches seq.
// Matches may overlap (the window slides by 1). The sequence must be
// A/C/G/T only; the pattern may use any of the 15 IUPAC codes. A pattern
// longer than the sequence yields an empty result, not an error.
func Find(seq, pattern string) ([]int, error) {
	s, err := seqcheck.DNA(seq)
	if err != nil {
		return nil, err
	}
	p, err := seqcheck.Pattern(pattern)
	if err != nil {
		return nil, err
	}

	pl := len(p)
	if pl > len(s) {
		return []int{}, nil
	}

	out := make([]int, 0, 8)

	// Exact-pattern fast path: jump scanning with bytes.Index.
	if isUnambiguous(p) {
		sb, pb := []byte(s), []byte(p)
		for i := 0; ; {
			j := bytes.Index(sb[i:], pb)
			if j < 0 {
				break
			}
			out = append(out, i+j)
			i += j + 1
		}
		return out, nil
	}

	end := len(s) - pl
window:
	for pos := 0; pos <= end; pos++ {
		for j := 0; j < pl; j++ {
			if !iupac.BaseMatch(s[pos+j], p[j]) {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out, nil
}
