package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Execute(argv, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestMotifCommand(t *testing.T) {
	out, _, code := run(t, "motif", "--pattern", "R", "--seq", "ATGCGTAG", "--no-header")
	require.Equal(t, 0, code)
	assert.Equal(t, "0\tR\t0\n0\tR\t2\n0\tR\t4\n0\tR\t6\n0\tR\t7\n", out)
}

func TestMotifHeader(t *testing.T) {
	out, _, code := run(t, "motif", "-p", "ATG", "-s", "ATGATG")
	require.Equal(t, 0, code)
	assert.Equal(t, "seq\tpattern\tpos\n0\tATG\t0\n0\tATG\t3\n", out)
}

func TestPalindromeCommand(t *testing.T) {
	out, _, code := run(t, "palindrome", "--min-length", "2", "--no-header", "ATTA")
	require.Equal(t, 0, code)
	assert.Equal(t, "0\t0\t4\tATTA\n0\t1\t3\tTT\n", out)
}

func TestRepeatCommand(t *testing.T) {
	out, _, code := run(t, "repeat", "--min-repeat", "2", "--min-unit", "2", "--no-header", "ATATATGC")
	require.Equal(t, 0, code)
	assert.Equal(t, "0\t0\t6\tAT\t3\n", out)
}

func TestORFCommand(t *testing.T) {
	out, _, code := run(t, "orf", "--no-header", "ATGAAATAGATGTAA")
	require.Equal(t, 0, code)
	assert.Equal(t, "0\t0\t9\tATGAAATAG\n0\t9\t15\tATGTAA\n", out)
}

func TestORFCommandNoStop(t *testing.T) {
	out, _, code := run(t, "orf", "--no-header", "ATGAAACCCTTT")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestAlignCommand(t *testing.T) {
	out, _, code := run(t, "align", "--no-header", "ACGT", "ACGT")
	require.Equal(t, 0, code)
	assert.Equal(t, "global\t4\tACGT\tACGT\n", out)
}

func TestAlignLocalDefaultScoring(t *testing.T) {
	// --local flips the default match score from 1 to 2.
	out, _, code := run(t, "align", "--local", "--no-header", "ACGT", "ACT")
	require.Equal(t, 0, code)
	assert.Equal(t, "local\t5\tACGT\tAC-T\n", out)
}

func TestJSONOutput(t *testing.T) {
	out, _, code := run(t, "orf", "-o", "json", "-s", "ATGTAA")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"orf": "ATGTAA"`)
}

func TestInvalidSequenceExitCode(t *testing.T) {
	_, errOut, code := run(t, "motif", "-p", "A", "-s", "ATGX")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid alphabet")
}

func TestInvalidArgumentExitCode(t *testing.T) {
	_, errOut, code := run(t, "repeat", "--min-repeat", "1", "-s", "ATAT")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "min-repeat")
}

func TestUnknownFlagExitCode(t *testing.T) {
	_, _, code := run(t, "motif", "--bogus")
	assert.Equal(t, 2, code)
}

func TestMissingSequencesExitCode(t *testing.T) {
	_, errOut, code := run(t, "orf")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "at least one sequence")
}

func TestVersionFlag(t *testing.T) {
	out, _, code := run(t, "--version")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "seqscan version")
}
