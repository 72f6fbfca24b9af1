package util

import "strings"

// NormalizeText lowercases, trims, and collapses internal whitespace.
// Rules, training, and inference all match against this normal form.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, " ")
}
