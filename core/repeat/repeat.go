// Package repeat finds tandem repeats: a unit occurring consecutively at
// least a minimum number of times.
package repeat

import "seqscan-core/seqcheck"

// Region is a maximal run [Start,End) of Count consecutive copies of Unit.
type Region struct {
	Start int
	End   int
	Unit  string
	Count int
}

// Find scans seq for maximal tandem runs. For each unit length L from
// minUnit up to len(seq)/minRepeat it scans left to right, counting
// consecutive copies of the L-length unit at each position; a run with at
// least minRepeat copies is recorded and the scan resumes past it, so runs
// of one unit length never overlap. Regions for different unit lengths may
// overlap; no cross-length deduplication is performed. Results are ordered
// by unit length, then start.
func Find(seq string, minRepeat, minUnit int) ([]Region, error) {
	if err := seqcheck.GreaterThan("min-repeat", minRepeat, 1); err != nil {
		return nil, err
	}
	if err := seqcheck.Positive("min-unit", minUnit); err != nil {
		return nil, err
	}

	n := len(seq)
	out := []Region{}
	maxUnit := n / minRepeat
	for unitLen := minUnit; unitLen <= maxUnit; unitLen++ {
		for i := 0; i+unitLen*minRepeat <= n; {
			count := countRepeats(seq, i, unitLen)
			if count < minRepeat {
				i++
				continue
			}
			out = append(out, Region{
				Start: i,
				End:   i + count*unitLen,
				Unit:  seq[i : i+unitLen],
				Count: count,
			})
			i += count * unitLen
		}
	}
	return out, nil
}

// countRepeats counts consecutive copies of seq[i:i+unitLen] starting at i.
func countRepeats(seq string, i, unitLen int) int {
	count := 1
	for j := i + unitLen; j+unitLen <= len(seq); j += unitLen {
		if seq[j:j+unitLen] != seq[i:i+unitLen] {
			break
		}
		count++
	}
	return count
}
