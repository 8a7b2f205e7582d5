// Package iupac maps IUPAC nucleotide ambiguity codes to concrete base sets.
package iupac

import (
	"errors"
	"fmt"
)

// ErrSymbol reports a character outside the 15 recognized IUPAC codes.
var ErrSymbol = errors.New("invalid IUPAC symbol")

/* -------------------------- IUPAC lookup table -------------------------- */

var mask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		mask[c] = bits
		mask[c|0x20] = bits // lower case
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Bases returns the concrete bases a symbol may represent, in ACGT order.
func Bases(sym byte) (string, error) {
	m := mask[sym]
	if m == 0 {
		return "", fmt.Errorf("%w: %q", ErrSymbol, sym)
	}
	out := make([]byte, 0, 4)
	if m&1 != 0 {
		out = append(out, 'A')
	}
	if m&2 != 0 {
		out = append(out, 'C')
	}
	if m&4 != 0 {
		out = append(out, 'G')
	}
	if m&8 != 0 {
		out = append(out, 'T')
	}
	return string(out), nil
}

// Valid reports whether sym is one of the 15 IUPAC codes (either case).
func Valid(sym byte) bool { return mask[sym] != 0 }

// Member reports whether concrete base b is in the set of symbol sym.
// A non-ACGT b is never a member.
func Member(b, sym byte) bool {
	mb := mask[b]
	if mb == 0 || mb&(mb-1) != 0 { // not a single concrete base
		return false
	}
	return mask[sym]&mb != 0
}

// BaseMatch returns true if pattern symbol p can pair with sequence base g.
//
// A sequence byte outside A/C/G/T is treated as a hard mismatch so that
// ambiguity codes in the pattern never match junk in the subject.
func BaseMatch(g, p byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return mask[p]&mask[g] != 0
}
