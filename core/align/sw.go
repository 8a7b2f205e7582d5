package align

import "seqscan-core/seqcheck"

// DefaultLocalScoring is the default local-alignment scheme.
var DefaultLocalScoring = Scoring{Match: 2, Mismatch: -1, Gap: -1}

// SmithWaterman computes an optimal local alignment of a and b: the
// highest-scoring pair of substrings. Cells are floored at zero and the
// traceback runs from the maximum cell back to the first zero cell, with
// the same diagonal > up > left tie preference as the global aligner.
// Aligning sequences with nothing in common yields score 0 and empty
// aligned strings.
func SmithWaterman(a, b string, sc Scoring) (Result, error) {
	if err := seqcheck.NonEmpty("seq1", a); err != nil {
		return Result{}, err
	}
	if err := seqcheck.NonEmpty("seq2", b); err != nil {
		return Result{}, err
	}

	n, m := len(a), len(b)
	c := m + 1
	table := make([]int, (n+1)*c)

	best, bi, bj := 0, 0, 0
	for i := 1; i <= n; i++ {
		row, prev := i*c, (i-1)*c
		for j := 1; j <= m; j++ {
			score := table[prev+j-1] + sc.sub(a[i-1], b[j-1])
			if up := table[prev+j] + sc.Gap; up > score {
				score = up
			}
			if left := table[row+j-1] + sc.Gap; left > score {
				score = left
			}
			if score < 0 {
				score = 0
			}
			table[row+j] = score
			if score > best {
				best, bi, bj = score, i, j
			}
		}
	}

	alnA := make([]byte, 0, n+m)
	alnB := make([]byte, 0, n+m)
	i, j := bi, bj
	for i > 0 && j > 0 && table[i*c+j] > 0 {
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

	reverseBytes(alnA)
	reverseBytes(alnB)
	return Result{Score: best, A: string(alnA), B: string(alnB)}, nil
}
