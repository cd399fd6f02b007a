package sanitizer

import "strings"

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
