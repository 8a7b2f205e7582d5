package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqscan/internal/app"
)

func (cf *commonFlags) common(args []string) app.Common {
	return app.Common{
		Seqs:    cf.sequences(args),
		Output:  cf.output,
		Threads: cf.threads,
		Header:  !cf.noHeader,
	}
}

func newMotifCmd(cf *commonFlags) *cobra.Command {
	var pattern string
	c := &cobra.Command{
		Use:   "motif [sequences...]",
		Short: "Find every position where an IUPAC pattern matches",
		Long: `Find every start position where a pattern matches a DNA sequence.
The pattern may use the 15 IUPAC ambiguity codes (e.g. R = A/G, N = any);
matches may overlap. Sequences come from --seq flags or positional args.`,
		Example: "  seqscan motif --pattern RRCAWTG --seq ATGCGTAGGACATTGA",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("%w: --pattern is required", errUsage)
			}
			return app.Motif(cmd.Context(), cmd.OutOrStdout(), cf.common(args), pattern)
		},
	}
	c.Flags().StringVarP(&pattern, "pattern", "p", "", "IUPAC pattern to search for (required)")
	return c
}

func newPalindromeCmd(cf *commonFlags) *cobra.Command {
	var minLen int
	c := &cobra.Command{
		Use:   "palindrome [sequences...]",
		Short: "Find substrings that read the same forwards and backwards",
		Long: `Find every substring of length >= --min-length that equals its own
reverse (literal reversal, not reverse complement), including palindromes
nested inside longer ones.`,
		Example: "  seqscan palindrome --min-length 4 --seq CCATTACCATTA",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Palindrome(cmd.Context(), cmd.OutOrStdout(), cf.common(args), minLen)
		},
	}
	c.Flags().IntVarP(&minLen, "min-length", "l", 3, "minimum palindrome length")
	return c
}

func newRepeatCmd(cf *commonFlags) *cobra.Command {
	var minRepeat, minUnit int
	c := &cobra.Command{
		Use:   "repeat [sequences...]",
		Short: "Find tandem repeats",
		Long: `Find maximal runs where a unit of length >= --min-unit occurs
consecutively at least --min-repeat times.`,
		Example: "  seqscan repeat --min-repeat 3 --min-unit 2 --seq GACACACATT",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Repeat(cmd.Context(), cmd.OutOrStdout(), cf.common(args), minRepeat, minUnit)
		},
	}
	c.Flags().IntVarP(&minRepeat, "min-repeat", "r", 2, "minimum consecutive occurrences (> 1)")
	c.Flags().IntVarP(&minUnit, "min-unit", "u", 1, "minimum repeat unit length")
	return c
}

func newORFCmd(cf *commonFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "orf [sequences...]",
		Short: "Find open reading frames on the forward strand",
		Long: `Scan the forward strand for ORFs: ATG through the next in-frame stop
codon (TAA/TAG/TGA), greedy and non-overlapping. A start codon with no
in-frame stop is dropped. For other frames or the reverse strand, offset
or reverse-complement the input first.`,
		Example: "  seqscan orf --seq ATGAAATAGATGTAA",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ORFs(cmd.Context(), cmd.OutOrStdout(), cf.common(args))
		},
	}
}
