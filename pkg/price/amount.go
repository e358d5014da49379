package price

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents (hundredths of a currency unit).
type Amount int64

// Units returns the amount in whole currency units.
func (a Amount) Units() float64 {
	return float64(a) / 100
}

// String renders the amount with exactly two fraction digits (e.g. "12.50").
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// ParseDecimal converts a plain decimal digit string (e.g. "12.50", "4821",
// "1.2") into cents. Fraction digits beyond the second are rounded half-up.
func ParseDecimal(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot+1:]
		if strings.ContainsRune(frac, '.') {
			return 0, fmt.Errorf("multiple decimal points in %q", s)
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if whole > (1<<62)/100 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	cents := whole * 100
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit fraction in %q", s)
		}
	}
	switch {
	case len(frac) == 0:
	case len(frac) == 1:
		cents += int64(frac[0]-'0') * 10
	default:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	}
	return Amount(cents), nil
}
