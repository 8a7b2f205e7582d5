// Package app wires the core scanners to the output writers, one function
// per subcommand. All functions validate eagerly, fan sequences across the
// worker pool, and write rows in input order.
package app

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"seqscan-core/align"
	"seqscan-core/motif"
	"seqscan-core/orf"
	"seqscan-core/palindrome"
	"seqscan-core/repeat"
	"seqscan-core/seqcheck"

	"seqscan/internal/output"
	"seqscan/internal/pipeline"
)

// Common carries the options shared by every scanning subcommand.
type Common struct {
	Seqs    []string
	Output  string
	Threads int // 0 = all CPUs
	Header  bool
}

func (c Common) threads() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}
	return c.Threads
}

func (c Common) check() error {
	if len(c.Seqs) == 0 {
		return fmt.Errorf("%w: at least one sequence is required", seqcheck.ErrArgument)
	}
	if !output.ValidFormat(c.Output) {
		return fmt.Errorf("%w: invalid output format %q (want text or json)", seqcheck.ErrArgument, c.Output)
	}
	return nil
}

// Motif scans every input sequence for the IUPAC pattern.
func Motif(ctx context.Context, w io.Writer, c Common, pattern string) error {
	if err := c.check(); err != nil {
		return err
	}
	per, err := pipeline.Map(ctx, c.threads(), c.Seqs, func(i int, seq string) ([]output.MotifHit, error) {
		offsets, err := motif.Find(seq, pattern)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		rows := make([]output.MotifHit, len(offsets))
		for k, o := range offsets {
			rows[k] = output.MotifHit{SeqIndex: i, Pattern: pattern, Pos: o}
		}
		return rows, nil
	})
	if err != nil {
		return err
	}
	return output.Write(w, c.Output, flatten(per), c.Header)
}

// Palindrome reports every palindromic substring of length >= minLen.
func Palindrome(ctx context.Context, w io.Writer, c Common, minLen int) error {
	if err := c.check(); err != nil {
		return err
	}
	per, err := pipeline.Map(ctx, c.threads(), c.Seqs, func(i int, seq string) ([]output.PalindromeHit, error) {
		regions, err := palindrome.Find(seq, minLen)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		rows := make([]output.PalindromeHit, len(regions))
		for k, r := range regions {
			rows[k] = output.PalindromeHit{SeqIndex: i, Start: r.Start, End: r.End, Sub: r.Seq}
		}
		return rows, nil
	})
	if err != nil {
		return err
	}
	return output.Write(w, c.Output, flatten(per), c.Header)
}

// Repeat reports maximal tandem-repeat runs.
func Repeat(ctx context.Context, w io.Writer, c Common, minRepeat, minUnit int) error {
	if err := c.check(); err != nil {
		return err
	}
	per, err := pipeline.Map(ctx, c.threads(), c.Seqs, func(i int, seq string) ([]output.RepeatHit, error) {
		regions, err := repeat.Find(seq, minRepeat, minUnit)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		rows := make([]output.RepeatHit, len(regions))
		for k, r := range regions {
			rows[k] = output.RepeatHit{SeqIndex: i, Start: r.Start, End: r.End, Unit: r.Unit, Count: r.Count}
		}
		return rows, nil
	})
	if err != nil {
		return err
	}
	return output.Write(w, c.Output, flatten(per), c.Header)
}

// ORFs reports open reading frames on the forward strand.
func ORFs(ctx context.Context, w io.Writer, c Common) error {
	if err := c.check(); err != nil {
		return err
	}
	per, err := pipeline.Map(ctx, c.threads(), c.Seqs, func(i int, seq string) ([]output.ORFHit, error) {
		sc, err := orf.NewScanner(seq)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		var rows []output.ORFHit
		for {
			o, ok := sc.Next()
			if !ok {
				return rows, nil
			}
			rows = append(rows, output.ORFHit{SeqIndex: i, Start: o.Start, End: o.End, Orf: o.Seq})
		}
	})
	if err != nil {
		return err
	}
	return output.Write(w, c.Output, flatten(per), c.Header)
}

// AlignOptions parameterizes the align subcommand.
type AlignOptions struct {
	Seq1, Seq2 string
	Local      bool
	Scoring    align.Scoring
	Output     string
	Header     bool
}

// Align computes one pairwise alignment, global by default.
func Align(w io.Writer, opts AlignOptions) error {
	if !output.ValidFormat(opts.Output) {
		return fmt.Errorf("%w: invalid output format %q (want text or json)", seqcheck.ErrArgument, opts.Output)
	}
	var (
		res  align.Result
		mode string
		err  error
	)
	if opts.Local {
		mode = "local"
		res, err = align.SmithWaterman(opts.Seq1, opts.Seq2, opts.Scoring)
	} else {
		mode = "global"
		res, err = align.NeedlemanWunsch(opts.Seq1, opts.Seq2, opts.Scoring)
	}
	if err != nil {
		return err
	}
	rows := []output.AlignmentRow{{Mode: mode, Score: res.Score, Aln1: res.A, Aln2: res.B}}
	return output.Write(w, opts.Output, rows, opts.Header)
}

func flatten[T any](per [][]T) []T {
	out := []T{}
	for _, rows := range per {
		out = append(out, rows...)
	}
	return out
}
