package classify

import (
	"math/big"
	"unicode"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenKind is the category a single string token falls into
type tokenKind int

const (
	kindSpecial tokenKind = iota
	kindNumeric
	kindAlphabetic
)

// scan holds the mutable state of one classification pass.
// It is local to a single call and never shared between goroutines.
type scan struct {
	params *Params
	upper  cases.Caser
	lower  cases.Caser

	odd     []string
	even    []string
	alpha   []string
	special []string
	pool    []string
	sum     *big.Int
}

func newScan(params *Params) *scan {
	return &scan{
		params:  params,
		upper:   cases.Upper(language.Und),
		lower:   cases.Lower(language.Und),
		odd:     []string{},
		even:    []string{},
		alpha:   []string{},
		special: []string{},
		sum:     new(big.Int),
	}
}

// kindOf determines the category of a token.
//
// A numeric token is non-empty and made of Unicode decimal digits (category
// Nd) only. An alphabetic token is non-empty and made of Unicode letters
// only. Everything else, including the empty string, is special.
func kindOf(token string) tokenKind {
	if token == "" {
		return kindSpecial
	}

	numeric, alphabetic := true, true
	for _, r := range token {
		if !unicode.IsDigit(r) {
			numeric = false
		}
		if !unicode.IsLetter(r) {
			alphabetic = false
		}
		if !numeric && !alphabetic {
			return kindSpecial
		}
	}

	if numeric {
		return kindNumeric
	}
	return kindAlphabetic
}

// digitValue returns the value 0-9 of a decimal digit rune.
// Nd digits are encoded in contiguous runs of whole 0-9 blocks, so the offset
// from the start of the run modulo 10 is the digit's value.
func digitValue(r rune) int64 {
	if r >= '0' && r <= '9' {
		return int64(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int64(r-start) % 10
}

// isSpace reports whether r is dropped as whitespace inside a mixed token.
// The ASCII information separators U+001C..U+001F count as whitespace too.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// classifyToken routes one string token into the scan's categories
func (s *scan) classifyToken(token string) {
	switch kindOf(token) {
	case kindNumeric:
		s.addNumeric(token)
	case kindAlphabetic:
		s.alpha = append(s.alpha, s.upper.String(token))
		for _, r := range token {
			s.collect(r)
		}
	default:
		s.addSpecial(token)
	}
}

// addNumeric adds a digit-only token to the sum and to the odd or even list.
// The token keeps its original spelling, leading zeros and non-ASCII digits
// included; its value is built digit by digit so every numeric token counts.
func (s *scan) addNumeric(token string) {
	n := new(big.Int)
	ten := big.NewInt(10)
	for _, r := range token {
		n.Mul(n, ten)
		n.Add(n, big.NewInt(digitValue(r)))
	}

	s.sum.Add(s.sum, n)
	if n.Bit(0) == 0 {
		s.even = append(s.even, token)
	} else {
		s.odd = append(s.odd, token)
	}
}

// addSpecial reports a token that is neither numeric nor alphabetic
func (s *scan) addSpecial(token string) {
	if s.params.SpecialPolicy == domain.SpecialPolicyTokens {
		if token != "" {
			s.special = append(s.special, token)
		}
		return
	}

	for _, r := range token {
		switch {
		case unicode.IsLetter(r):
			s.collect(r)
		case isSpace(r), unicode.IsDigit(r):
			// dropped
		default:
			s.special = append(s.special, string(r))
		}
	}
}

// collect appends one letter to the alphabetic pool, cased per PoolCase.
// A pool entry is the cased form of one source character and may hold more
// than one rune (upper-case "ß" is "SS").
func (s *scan) collect(r rune) {
	if s.params.PoolCase == domain.PoolCaseUpper {
		s.pool = append(s.pool, s.upper.String(string(r)))
		return
	}
	s.pool = append(s.pool, string(r))
}

// alternatingReverse builds the concatenation string from the pool.
//
// The pool is walked from its last entry to its first. Entries at even
// positions of that reversed walk are upper-cased and entries at odd
// positions are lower-cased, starting with upper-case at position 0.
//
// Parameters:
//   - pool: the alphabetic entries in collection order
//   - upper, lower: the casers used for each position
//
// Returns:
//   - The joined string, or "" for an empty pool
func alternatingReverse(pool []string, upper, lower cases.Caser) string {
	if len(pool) == 0 {
		return ""
	}

	out := make([]byte, 0, len(pool))
	for i := range pool {
		entry := pool[len(pool)-1-i]
		if i%2 == 0 {
			out = append(out, upper.String(entry)...)
		} else {
			out = append(out, lower.String(entry)...)
		}
	}
	return string(out)
}

// result freezes the scan into a ClassificationResult
func (s *scan) result() *domain.ClassificationResult {
	return &domain.ClassificationResult{
		OddNumbers:        s.odd,
		EvenNumbers:       s.even,
		Alphabets:         s.alpha,
		SpecialCharacters: s.special,
		Sum:               s.sum.String(),
		ConcatString:      alternatingReverse(s.pool, s.upper, s.lower),
		IsSuccess:         true,
	}
}

// classifyTokens runs one full pass over the input.
//
// Parameters:
//   - data: the decoded "data" value; only []any and []string are arrays
//   - params: the classifier policies
//
// Returns:
//   - A successful result for any array, or the soft-failure result when
//     data is not an array. It never panics on well-formed input.
func classifyTokens(data any, params *Params) *domain.ClassificationResult {
	s := newScan(params)

	switch tokens := data.(type) {
	case []any:
		for _, item := range tokens {
			if token, ok := item.(string); ok {
				s.classifyToken(token)
			}
		}
	case []string:
		for _, token := range tokens {
			s.classifyToken(token)
		}
	default:
		return domain.NewFailedResult(domain.DataNotArrayMessage)
	}

	return s.result()
}
