package price

import (
	"regexp"
	"strings"
)

// Fallback candidates must sit strictly inside the reasonable price range,
// in whole currency units.
const (
	minFallbackCents = 0
	maxFallbackCents = 10000 * 100
)

var numericTokenRE = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// Extract parses recognized (or manually typed) text into a single amount.
//
// Pass 1 tries the currency patterns in priority order; the first pattern
// with any match wins immediately with its first occurrence in the text.
// Matches here are deliberately not range-checked: the symbol (or the exact
// two-digit fraction shape for the generic pattern) is treated as sufficient
// confidence, so "€0.00" is accepted as 0.00.
//
// Pass 2, reached only when no pattern matched, scans for maximal digit runs
// with at most one decimal point, keeps those strictly between 0 and 10000
// currency units, and returns the first in reading order. This is a known
// source of false positives for product-code-like numbers; see the tests.
func Extract(text string) (Amount, error) {
	for _, p := range Patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amt, err := ParseDecimal(m[1])
		if err != nil {
			continue
		}
		return amt, nil
	}
	for _, tok := range numericTokenRE.FindAllString(text, -1) {
		amt, err := ParseDecimal(tok)
		if err != nil {
			continue
		}
		if amt <= minFallbackCents || amt >= maxFallbackCents {
			continue
		}
		return amt, nil
	}
	return 0, ErrNoPrice
}

var manualRE = regexp.MustCompile(`^[0-9]+(?:\.[0-9]{1,2})?$`)

// ParseManual is the trivial path for manually typed prices: a plain decimal
// with at most two fraction digits, strictly positive.
func ParseManual(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if !manualRE.MatchString(s) {
		return 0, ErrInvalidInput
	}
	amt, err := ParseDecimal(s)
	if err != nil || amt <= 0 {
		return 0, ErrInvalidInput
	}
	return amt, nil
}
