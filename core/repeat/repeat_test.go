package repeat

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"seqscan-core/seqcheck"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		seq       string
		minRepeat int
		minUnit   int
		want      []Region
	}{
		{
			name:      "dinucleotide run",
			seq:       "ATATATGC",
			minRepeat: 2,
			minUnit:   2,
			want:      []Region{{0, 6, "AT", 3}},
		},
		{
			name:      "homopolymer",
			seq:       "AAAAT",
			minRepeat: 3,
			minUnit:   1,
			want:      []Region{{0, 4, "A", 4}},
		},
		{
			name:      "two runs same unit length",
			seq:       "ATATGGCACACA",
			minRepeat: 2,
			minUnit:   2,
			want:      []Region{{0, 4, "AT", 2}, {6, 12, "CA", 3}},
		},
		{
			name:      "overlapping lengths both reported",
			seq:       "ATATATAT",
			minRepeat: 2,
			minUnit:   2,
			want:      []Region{{0, 8, "AT", 4}, {0, 8, "ATAT", 2}},
		},
		{
			name:      "no repeats",
			seq:       "ATGCATGA",
			minRepeat: 3,
			minUnit:   2,
			want:      []Region{},
		},
		{
			name:      "empty sequence",
			seq:       "",
			minRepeat: 2,
			minUnit:   1,
			want:      []Region{},
		},
	}
	for _, tc := range tests {
		got, err := Find(tc.seq, tc.minRepeat, tc.minUnit)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFindErrors(t *testing.T) {
	if _, err := Find("ATAT", 1, 2); !errors.Is(err, seqcheck.ErrArgument) {
		t.Errorf("minRepeat=1: want ErrArgument, got %v", err)
	}
	if _, err := Find("ATAT", 2, 0); !errors.Is(err, seqcheck.ErrArgument) {
		t.Errorf("minUnit=0: want ErrArgument, got %v", err)
	}
}

// Every region must tile back into count copies of its unit.
func TestFindRegionValidity(t *testing.T) {
	seq := "GATTACAGATGATGATGACACACAGG"
	got, err := Find(seq, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected at least one tandem repeat")
	}
	for _, r := range got {
		if r.End-r.Start != r.Count*len(r.Unit) {
			t.Errorf("region %+v: span is not count*unit", r)
		}
		if r.Count < 2 {
			t.Errorf("region %+v: count below minRepeat", r)
		}
		if seq[r.Start:r.End] != strings.Repeat(r.Unit, r.Count) {
			t.Errorf("region %+v does not tile its source", r)
		}
	}
}

// A run is maximal: the unit does not continue on either side.
func TestFindMaximality(t *testing.T) {
	seq := "CCATATATGG"
	got, err := Find(seq, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Region{{2, 8, "AT", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
