package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`[-+]?\d[\d.,]*`)

// firstNumber returns the first amount-like numeric token in s, normalized.
// Tokens immediately followed by '%' are rates, not amounts, and are skipped
// (German invoices write the tax rate before the tax amount on one line).
func firstNumber(s string) (float64, bool) {
	for _, loc := range numberPattern.FindAllStringIndex(s, -1) {
		if !amountToken(s, loc) {
			continue
		}
		if v, ok := normalizeNumber(s[loc[0]:loc[1]]); ok {
			return v, true
		}
	}
	return 0, false
}

// amountToken reports whether the match at loc stands alone as an amount:
// not glued to a preceding word (the "8" in "M8") and not a percentage.
func amountToken(s string, loc []int) bool {
	if loc[0] > 0 && isLetter(s[loc[0]-1]) {
		return false
	}
	if loc[1] < len(s) && s[loc[1]] == '%' {
		return false
	}
	return true
}

// normalizeNumber converts a locale-ambiguous numeric token to a float.
// Both "," and "." are accepted as decimal separators: the rightmost
// separator followed by exactly 1-2 digits is the decimal point, every other
// separator is grouping. "1.234,56" and "1,234.56" both yield 1234.56;
// "64,00" yields 64. Ambiguous or malformed tokens report ok=false so that
// callers can leave the field unset instead of defaulting to zero.
func normalizeNumber(token string) (float64, bool) {
	token = strings.TrimSpace(strings.Trim(token, "€$£¥ "))
	if token == "" {
		return 0, false
	}

	sepIdx := strings.LastIndexAny(token, ".,")
	if sepIdx < 0 {
		return parseFloat(token)
	}

	trailing := len(token) - sepIdx - 1
	switch {
	case trailing >= 1 && trailing <= 2:
		// Decimal separator; everything before it is grouped digits.
		intPart := stripSeparators(token[:sepIdx])
		return parseFloat(intPart + "." + token[sepIdx+1:])
	case trailing >= 3:
		// Grouping only, e.g. "1.234" or "12,345".
		return parseFloat(stripSeparators(token))
	default:
		// Trailing separator with no digits: malformed.
		return 0, false
	}
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
