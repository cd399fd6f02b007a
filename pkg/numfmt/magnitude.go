package numfmt

import (
	"fmt"
	"strings"
)

// Result is a number reduced to its digit budget.
type Result struct {
	Digits   Digits
	Unit     string // empty when no group was removed
	Groups   int    // three-digit groups removed from the integer part
	Negative bool
}

// String renders the result with thousands separators, e.g. "-1,234.5K".
func (r Result) String() string {
	var b strings.Builder
	if r.Negative {
		b.WriteByte('-')
	}

	intPart := r.Digits.Int
	if intPart == "" {
		intPart = "0"
	}
	b.WriteString(FormatGroups(intPart))

	if r.Digits.Frac != "" {
		b.WriteByte('.')
		b.WriteString(r.Digits.Frac)
	}
	b.WriteString(r.Unit)

	return b.String()
}

// TruncateMagnitude shrinks an unsigned decimal string to at most overallLimit
// significant digits.
//
// Fractional digits go first, least significant first. If the integer part is
// still too long, it loses three digits at a time and the number of removed
// groups selects the unit from the table. Leftover budget is then filled with
// the leading digits of the last removed group, so "1234567" with a limit of
// three becomes "1.23" with unit "M". An integer part that disappears entirely
// is written as "0", which takes one digit of the budget.
func TruncateMagnitude(s string, overallLimit int, units UnitTable) (Result, error) {
	if overallLimit < 1 {
		return Result{}, fmt.Errorf("%w: overall digit limit %d is below 1", ErrInvalidConfig, overallLimit)
	}

	d, err := ParseDigits(s)
	if err != nil {
		return Result{}, err
	}

	if excess := d.Len() - overallLimit; excess > 0 && d.Frac != "" {
		drop := min(excess, len(d.Frac))
		d.Frac = d.Frac[:len(d.Frac)-drop]
	}
	if d.Len() <= overallLimit {
		return Result{Digits: d}, nil
	}

	var (
		groups    int
		remainder string
	)
	for len(d.Int) > overallLimit {
		cut := max(len(d.Int)-3, 0)
		remainder = d.Int[cut:]
		if len(remainder) < 3 {
			remainder = strings.Repeat("0", 3-len(remainder)) + remainder
		}
		d.Int = d.Int[:cut]
		groups++
	}

	unit, err := units.Suffix(groups)
	if err != nil {
		return Result{}, err
	}

	if d.Int == "" {
		d.Int = "0"
	}
	if need := overallLimit - len(d.Int); need > 0 {
		d.Frac = remainder[:min(need, len(remainder))]
	}

	return Result{Digits: d, Unit: unit, Groups: groups}, nil
}
