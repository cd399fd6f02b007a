package numfmt

import (
	"math/big"

	"github.com/dustin/go-humanize"
)

// FormatGroups inserts a comma between every three integer digits counted
// from the right: "1234567" becomes "1,234,567". Input that is not a plain
// digit string without leading zeros is returned unchanged.
func FormatGroups(intDigits string) string {
	if len(intDigits) <= 3 || !isDigits(intDigits) || intDigits[0] == '0' {
		return intDigits
	}

	n, ok := new(big.Int).SetString(intDigits, 10)
	if !ok {
		return intDigits
	}

	return humanize.BigComma(n)
}
