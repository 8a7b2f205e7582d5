package align

import (
	"errors"
	"strings"
	"testing"

	"seqscan-core/seqcheck"
)

func TestSmithWatermanGolden(t *testing.T) {
	r, err := SmithWaterman("ACGT", "ACT", DefaultLocalScoring)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 5 || r.A != "ACGT" || r.B != "AC-T" {
		t.Fatalf("got %+v, want {5 ACGT AC-T}", r)
	}
}

func TestSmithWatermanNoSimilarity(t *testing.T) {
	r, err := SmithWaterman("AAAA", "TTTT", DefaultLocalScoring)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 0 || r.A != "" || r.B != "" {
		t.Fatalf("got %+v, want zero score and empty alignment", r)
	}
}

func TestSmithWatermanLocalSegment(t *testing.T) {
	// The shared core GATTA should dominate; flanks stay unaligned.
	r, err := SmithWaterman("CCCGATTACCC", "TTTGATTATTT", DefaultLocalScoring)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score < 10 {
		t.Errorf("score = %d, want >= 10 (GATTA exact)", r.Score)
	}
	if !strings.Contains("CCCGATTACCC", stripGaps(r.A)) {
		t.Errorf("aligned A %q is not a gapped substring of input", r.A)
	}
	if !strings.Contains("TTTGATTATTT", stripGaps(r.B)) {
		t.Errorf("aligned B %q is not a gapped substring of input", r.B)
	}
	if len(r.A) != len(r.B) {
		t.Errorf("aligned lengths differ: %q %q", r.A, r.B)
	}
}

func TestSmithWatermanEmptyInput(t *testing.T) {
	if _, err := SmithWaterman("", "A", DefaultLocalScoring); !errors.Is(err, seqcheck.ErrArgument) {
		t.Errorf("want ErrArgument, got %v", err)
	}
}

func TestHamming(t *testing.T) {
	d, err := Hamming("GGGCCGTTGGT", "GGACCGTTGAT")
	if err != nil {
		t.Fatal(err)
	}
	if d != 2 {
		t.Errorf("distance = %d, want 2", d)
	}
	if _, err := Hamming("AC", "ACGT"); !errors.Is(err, seqcheck.ErrArgument) {
		t.Errorf("unequal lengths: want ErrArgument, got %v", err)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"ACGT", "ACGT", 0},
		{"AC", "CA", 2},
	}
	for _, tc := range tests {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
