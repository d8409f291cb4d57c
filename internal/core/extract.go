package core

import "regexp"

// amountPattern matches an optional currency marker (R$ or $), optional
// whitespace, a numeric token with at most one decimal separator (comma or
// dot), and an optional currency word suffix ("reais"/"real").
var amountPattern = regexp.MustCompile(`(?i)(?:r\$|\$)?\s*(\d+(?:[.,]\d+)?)(?:\s*(?:reais|real))?`)

// ExtractAmountCents scans free text left to right and returns the first
// monetary token as cents. When a message carries several numbers, later
// ones are ignored. The boolean is false when no token is found or the
// token does not parse to a positive value.
func ExtractAmountCents(text string) (int64, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	cents, err := ParseDecimalToCents(m[1])
	if err != nil {
		return 0, false
	}
	return cents, true
}
