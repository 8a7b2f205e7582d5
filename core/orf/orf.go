// Package orf scans the forward strand of a DNA sequence for open reading
// frames: ATG through the next in-frame stop codon.
package orf

import "seqscan-core/seqcheck"

const startCodon = "ATG"

func isStop(c string) bool { return c == "TAA" || c == "TAG" || c == "TGA" }

// ORF is a half-open [Start,End) region; Seq begins with ATG, ends with a
// stop codon, and End-Start is a multiple of 3.
type ORF struct {
	Start int
	End   int
	Seq   string
}

// Scanner produces ORFs one at a time, left to right. It is a finite,
// non-restartable pull iterator; create a new one to rescan.
//
// The scan is greedy and non-overlapping: after emitting an ORF it resumes
// directly past the stop codon. A start codon with no in-frame stop is
// dropped silently and scanning resumes three bases past it. Only the
// frame of each start codon is considered; callers wanting all three
// frames offset the input themselves.
type Scanner struct {
	seq string
	pos int
}

// NewScanner validates seq (A/C/G/T only, case-insensitive) and returns a
// scanner positioned at the first base.
func NewScanner(seq string) (*Scanner, error) {
	s, err := seqcheck.DNA(seq)
	if err != nil {
		return nil, err
	}
	return &Scanner{seq: s}, nil
}

// Next returns the next ORF, or ok=false once the sequence is exhausted.
func (s *Scanner) Next() (ORF, bool) {
	for s.pos <= len(s.seq)-3 {
		if s.seq[s.pos:s.pos+3] != startCodon {
			s.pos++
			continue
		}
		for j := s.pos + 3; j <= len(s.seq)-3; j += 3 {
			if isStop(s.seq[j : j+3]) {
				o := ORF{Start: s.pos, End: j + 3, Seq: s.seq[s.pos : j+3]}
				s.pos = j + 3
				return o, true
			}
		}
		// No in-frame stop: drop this start and move one codon on.
		s.pos += 3
	}
	return ORF{}, false
}

// Find eagerly collects every ORF in seq.
func Find(seq string) ([]ORF, error) {
	sc, err := NewScanner(seq)
	if err != nil {
		return nil, err
	}
	out := []ORF{}
	for {
		o, ok := sc.Next()
		if !ok {
			return out, nil
		}
		out = append(out, o)
	}
}
