// Package seqcheck holds the precondition checks shared by every scanning
// and alignment routine, so the algorithms themselves stay free of
// validation noise. All checks run eagerly and fail fast.
package seqcheck

import (
	"errors"
	"fmt"
	"strings"

	"seqscan-core/iupac"
)

// Error kinds. Callers match with errors.Is.
var (
	// ErrArgument reports a parameter outside its documented precondition.
	ErrArgument = errors.New("invalid argument")
	// ErrAlphabet reports a sequence or pattern character outside its
	// declared alphabet.
	ErrAlphabet = errors.New("invalid alphabet")
)

// DNA uppercases seq and verifies every byte is a concrete A/C/G/T base.
func DNA(seq string) (string, error) {
	s := strings.ToUpper(seq)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("%w: base %q at position %d (want A/C/G/T)", ErrAlphabet, s[i], i)
		}
	}
	return s, nil
}

// Pattern uppercases p and verifies it is a non-empty IUPAC string.
func Pattern(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: pattern cannot be empty", ErrArgument)
	}
	s := strings.ToUpper(p)
	for i := 0; i < len(s); i++ {
		if !iupac.Valid(s[i]) {
			return "", fmt.Errorf("%w: symbol %q at position %d (allowed: A C G T R Y S W K M B D H V N)", ErrAlphabet, s[i], i)
		}
	}
	return s, nil
}

// Positive requires v > 0.
func Positive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrArgument, name, v)
	}
	return nil
}

// GreaterThan requires v > min.
func GreaterThan(name string, v, min int) error {
	if v <= min {
		return fmt.Errorf("%w: %s must be > %d, got %d", ErrArgument, name, min, v)
	}
	return nil
}

// NonEmpty requires s != "".
func NonEmpty(name, s string) error {
	if s == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrArgument, name)
	}
	return nil
}
