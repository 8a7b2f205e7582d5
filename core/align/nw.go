// Package align implements pairwise sequence alignment and distance
// measures over plain strings (DNA or protein agnostic).
package align

import "seqscan-core/seqcheck"

// Gap is the character inserted into aligned strings for an indel.
const Gap = '-'

// Scoring is the fixed scheme used by the aligners.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring is the default global-alignment scheme.
var DefaultScoring = Scoring{Match: 1, Mismatch: -1, Gap: -1}

// Result is one optimal alignment: the score plus both sequences with gap
// characters inserted. A and B always have equal length, and stripping
// gaps from them reproduces the aligner's inputs.
type Result struct {
	Score int
	A     string
	B     string
}

func (sc Scoring) sub(a, b byte) int {
	if a == b {
		return sc.Match
	}
	return sc.Mismatch
}

// NeedlemanWunsch computes an optimal global alignment of a and b.
//
// The full (len(a)+1) x (len(b)+1) table is kept so one optimal alignment
// can be traced back. When moves tie, preference is diagonal, then up
// (gap in b), then left (gap in a); the output is deterministic.
func NeedlemanWunsch(a, b string, sc Scoring) (Result, error) {
	if err := seqcheck.NonEmpty("seq1", a); err != nil {
		return Result{}, err
	}
	if err := seqcheck.NonEmpty("seq2", b); err != nil {
		return Result{}, err
	}

	n, m := len(a), len(b)
	c := m + 1
	table := make([]int, (n+1)*c)
	for j := 1; j <= m; j++ {
		table[j] = j * sc.Gap
	}
	for i := 1; i <= n; i++ {
		table[i*c] = i * sc.Gap
	}

	for i := 1; i <= n; i++ {
		row, prev := i*c, (i-1)*c
		for j := 1; j <= m; j++ {
			diag := table[prev+j-1] + sc.sub(a[i-1], b[j-1])
			up := table[prev+j] + sc.Gap
			left := table[row+j-1] + sc.Gap
			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			table[row+j] = best
		}
	}

	// Traceback, diagonal > up > left on ties.
	alnA := make([]byte, 0, n+m)
	alnB := make([]byte, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		cur := table[i*c+j]
		switch {
		case cur == table[(i-1)*c+j-1]+sc.sub(a[i-1], b[j-1]):
			i--
			j--
			alnA = append(alnA, a[i])
			alnB = append(alnB, b[j])
		case cur == table[(i-1)*c+j]+sc.Gap:
			i--
			alnA = append(alnA, a[i])
			alnB = append(alnB, Gap)
		default:
			j--
			alnA = append(alnA, Gap)
			alnB = append(alnB, b[j])
		}
	}
	for ; i > 0; i-- {
		alnA = append(alnA, a[i-1])
		alnB = append(alnB, Gap)
	}
	for ; j > 0; j-- {
		alnA = append(alnA, Gap)
		alnB = append(alnB, b[j-1])
	}

	reverseBytes(alnA)
	reverseBytes(alnB)
	return Result{Score: table[n*c+m], A: string(alnA), B: string(alnB)}, nil
}

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
