// Package output renders scan and alignment results as TSV text or JSON.
package output

import "strconv"

// Row is implemented by record types that can render as TSV.
type Row interface {
	Header() []string
	Fields() []string
}

// MotifHit is one pattern occurrence in one input sequence.
type MotifHit struct {
	SeqIndex int    `json:"seq"`
	Pattern  string `json:"pattern"`
	Pos      int    `json:"pos"`
}

func (MotifHit) Header() []string { return []string{"seq", "pattern", "pos"} }
func (h MotifHit) Fields() []string {
	return []string{itoa(h.SeqIndex), h.Pattern, itoa(h.Pos)}
}

// PalindromeHit is one palindromic substring.
type PalindromeHit struct {
	SeqIndex int    `json:"seq"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Sub      string `json:"substring"`
}

func (PalindromeHit) Header() []string { return []string{"seq", "start", "end", "substring"} }
func (h PalindromeHit) Fields() []string {
	return []string{itoa(h.SeqIndex), itoa(h.Start), itoa(h.End), h.Sub}
}

// RepeatHit is one maximal tandem-repeat run.
type RepeatHit struct {
	SeqIndex int    `json:"seq"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Unit     string `json:"unit"`
	Count    int    `json:"count"`
}

func (RepeatHit) Header() []string { return []string{"seq", "start", "end", "unit", "count"} }
func (h RepeatHit) Fields() []string {
	return []string{itoa(h.SeqIndex), itoa(h.Start), itoa(h.End), h.Unit, itoa(h.Count)}
}

// ORFHit is one open reading frame.
type ORFHit struct {
	SeqIndex int    `json:"seq"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Orf      string `json:"orf"`
}

func (ORFHit) Header() []string { return []string{"seq", "start", "end", "orf"} }
func (h ORFHit) Fields() []string {
	return []string{itoa(h.SeqIndex), itoa(h.Start), itoa(h.End), h.Orf}
}

// AlignmentRow is one pairwise alignment result.
type AlignmentRow struct {
	Mode  string `json:"mode"` // "global" or "local"
	Score int    `json:"score"`
	Aln1  string `json:"aligned1"`
	Aln2  string `json:"aligned2"`
}

func (AlignmentRow) Header() []string { return []string{"mode", "score", "aligned1", "aligned2"} }
func (r AlignmentRow) Fields() []string {
	return []string{r.Mode, itoa(r.Score), r.Aln1, r.Aln2}
}

func itoa(i int) string { return strconv.Itoa(i) }
