package numfmt

import (
	"fmt"
	"strings"
)

// Digits is an unsigned decimal number kept as two digit strings split at the
// decimal point. Int carries no leading zeros other than a single "0".
type Digits struct {
	Int  string
	Frac string
}

// ParseDigits splits an unsigned decimal string like "1234" or "0.50".
// Leading zeros of the integer part are dropped; the fraction is kept as is.
func ParseDigits(s string) (Digits, error) {
	intPart, frac, hasPoint := strings.Cut(s, ".")
	if intPart == "" || (hasPoint && frac == "") || !isDigits(intPart) || !isDigits(frac) {
		return Digits{}, fmt.Errorf("%w: %q is not an unsigned decimal", ErrInvalidInput, s)
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	return Digits{Int: intPart, Frac: frac}, nil
}

// Len counts significant digits on both sides of the point.
func (d Digits) Len() int {
	return len(d.Int) + len(d.Frac)
}

// IsZero reports whether every digit is zero.
func (d Digits) IsZero() bool {
	return strings.Trim(d.Int, "0") == "" && strings.Trim(d.Frac, "0") == ""
}

// String renders the digits without grouping, e.g. "1234.5".
func (d Digits) String() string {
	intPart := d.Int
	if intPart == "" {
		intPart = "0"
	}
	if d.Frac == "" {
		return intPart
	}
	return intPart + "." + d.Frac
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
