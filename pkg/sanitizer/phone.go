package sanitizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPhoneFormat groups a number as country code, area code and two
// subscriber blocks.
const DefaultPhoneFormat = "3-2-3-4"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// PhoneOptions controls FormatPhone.
type PhoneOptions struct {
	// Format is a dash-separated list of slot widths, e.g. "3-2-3-4".
	// The first slot is the international prefix.
	Format string
	// International keeps the first slot. When false it is dropped.
	International bool
}

func DefaultPhoneOptions() PhoneOptions {
	return PhoneOptions{Format: DefaultPhoneFormat, International: true}
}

// NormalizePhone keeps only the digits of phone.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// ParsePhoneFormat parses a slot list such as "3-2-3-4".
func ParsePhoneFormat(format string) ([]int, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, errors.Join(ErrInvalidPhoneFormat, errors.New("format is empty"))
	}

	parts := strings.Split(format, "-")
	slots := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, errors.Join(ErrInvalidPhoneFormat, fmt.Errorf("slot %q in %q must be a positive integer", p, format))
		}
		slots = append(slots, n)
	}
	return slots, nil
}

// FormatPhone strips everything but digits from number and regroups them
// by opts.Format, joining slots with '-'. The digit count must equal the sum
// of the slots and lie between 7 and 15. With International unset the first
// slot is dropped, unless it is the only one.
func FormatPhone(number string, opts PhoneOptions) (string, error) {
	format := opts.Format
	if strings.TrimSpace(format) == "" {
		format = DefaultPhoneFormat
	}

	slots, err := ParsePhoneFormat(format)
	if err != nil {
		return "", err
	}

	digits := NormalizePhone(number)

	sum := 0
	for _, s := range slots {
		sum += s
	}
	if sum != len(digits) {
		return "", errors.Join(ErrPhoneFormatMismatch,
			fmt.Errorf("format %s expects %d digits, %q has %d", format, sum, number, len(digits)))
	}
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", errors.Join(ErrPhoneLength, fmt.Errorf("%q has %d digits", number, len(digits)))
	}

	groups := make([]string, 0, len(slots))
	pos := 0
	for _, s := range slots {
		groups = append(groups, digits[pos:pos+s])
		pos += s
	}

	if !opts.International && len(groups) > 1 {
		groups = groups[1:]
	}
	return strings.Join(groups, "-"), nil
}
