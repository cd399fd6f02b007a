package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization and whitespace-separated tags
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
