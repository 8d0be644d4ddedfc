package domain

import "fmt"

// SpecialPolicy controls how tokens that are neither purely numeric nor purely
// alphabetic are reported.
type SpecialPolicy string

// Supported special-token policies
const (
	// SpecialPolicyCharacters decomposes a mixed token: its letters join the
	// alphabetic pool, digits and whitespace are dropped, and every other
	// character is reported on its own.
	SpecialPolicyCharacters SpecialPolicy = "characters"

	// SpecialPolicyTokens reports the whole mixed token verbatim.
	SpecialPolicyTokens SpecialPolicy = "tokens"
)

// PoolCase controls the case of characters as they are collected into the
// alphabetic pool, before the alternating-case transform runs.
type PoolCase string

// Supported pool case policies
const (
	PoolCaseUpper    PoolCase = "upper"
	PoolCasePreserve PoolCase = "preserve"
)

// ParseSpecialPolicy converts a configuration string into a SpecialPolicy.
func ParseSpecialPolicy(s string) (SpecialPolicy, error) {
	switch p := SpecialPolicy(s); p {
	case SpecialPolicyCharacters, SpecialPolicyTokens:
		return p, nil
	default:
		return "", fmt.Errorf("%w: special policy %q", ErrInvalidPolicy, s)
	}
}

// ParsePoolCase converts a configuration string into a PoolCase.
func ParsePoolCase(s string) (PoolCase, error) {
	switch c := PoolCase(s); c {
	case PoolCaseUpper, PoolCasePreserve:
		return c, nil
	default:
		return "", fmt.Errorf("%w: pool case %q", ErrInvalidPolicy, s)
	}
}
