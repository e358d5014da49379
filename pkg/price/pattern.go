package price

import (
	"regexp"
	"strconv"
)

// CurrencyPattern describes how an amount is rendered for one currency:
// the symbol prefix and the required fraction digit count. Patterns are
// tried in slice order and the first one that matches wins, so the
// symbol-less generic pattern must stay last.
type CurrencyPattern struct {
	Tag      string
	Symbol   string
	Decimals int
	re       *regexp.Regexp
}

func newPattern(tag, symbol string, decimals int) CurrencyPattern {
	expr := regexp.QuoteMeta(symbol) + `\s?([0-9]+\.[0-9]{` + strconv.Itoa(decimals) + `})`
	return CurrencyPattern{Tag: tag, Symbol: symbol, Decimals: decimals, re: regexp.MustCompile(expr)}
}

// Patterns is the fixed priority order: symbol-qualified currencies first,
// the generic symbol-less pattern last. A currency symbol is strong evidence
// of a genuine price versus stray numeric noise, so it always wins.
var Patterns = []CurrencyPattern{
	newPattern("USD", "$", 2),
	newPattern("EUR", "€", 2),
	newPattern("GBP", "£", 2),
	newPattern("IDR", "Rp", 2),
	newPattern("", "", 2),
}
