// Package cmd is the cobra command tree for the seqscan CLI.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seqscan-core/seqcheck"

	"seqscan/internal/config"
	"seqscan/internal/version"
)

// errUsage marks flag-parse failures so Execute can map them to exit code 2.
var errUsage = errors.New("usage error")

// commonFlags collects the persistent flags shared by the scanning
// subcommands.
type commonFlags struct {
	seqs     []string
	output   string
	threads  int
	noHeader bool
}

// NewRoot builds the full command tree with defaults taken from cfg.
func NewRoot(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:     "seqscan",
		Short:   "Scan and align nucleotide sequences: motifs, palindromes, tandem repeats, ORFs, pairwise alignment",
		Version: version.Version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	var cf commonFlags
	pf := root.PersistentFlags()
	pf.StringArrayVarP(&cf.seqs, "seq", "s", nil, "input sequence (repeatable)")
	pf.StringVarP(&cf.output, "output", "o", cfg.Output, "output format: text | json")
	pf.IntVarP(&cf.threads, "threads", "t", cfg.Threads, "worker threads (0 = all CPUs)")
	pf.BoolVar(&cf.noHeader, "no-header", false, "suppress the header line in text output")

	root.AddCommand(
		newMotifCmd(&cf),
		newPalindromeCmd(&cf),
		newRepeatCmd(&cf),
		newORFCmd(&cf),
		newAlignCmd(&cf, cfg.Align),
	)
	return root
}

// Execute parses argv, runs the selected command, and maps errors to the
// process exit code: 0 ok, 2 usage or input validation, 3 anything else.
func Execute(argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	root := NewRoot(cfg)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) ||
			errors.Is(err, seqcheck.ErrArgument) ||
			errors.Is(err, seqcheck.ErrAlphabet) {
			return 2
		}
		return 3
	}
	return 0
}

// sequences merges repeated --seq flags with positional arguments.
func (cf *commonFlags) sequences(args []string) []string {
	out := make([]string, 0, len(cf.seqs)+len(args))
	out = append(out, cf.seqs...)
	out = append(out, args...)
	return out
}
