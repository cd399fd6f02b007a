package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPasswordSymbols is the symbol set required by DefaultPasswordPolicy.
const DefaultPasswordSymbols = "#?!@$%^&*-"

// PasswordPolicy lists the composition requirements of a password.
// A zero count or an empty Symbols disables that requirement.
type PasswordPolicy struct {
	MinLength    int
	MinUppercase int
	MinLowercase int
	MinDigits    int
	Symbols      string
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:    8,
		MinUppercase: 1,
		MinLowercase: 1,
		MinDigits:    1,
		Symbols:      DefaultPasswordSymbols,
	}
}

// Validate rejects negative requirements.
func (p PasswordPolicy) Validate() error {
	if p.MinLength < 0 || p.MinUppercase < 0 || p.MinLowercase < 0 || p.MinDigits < 0 {
		return errors.Join(ErrInvalidPolicy, fmt.Errorf("requirements must not be negative: %+v", p))
	}
	return nil
}

// PasswordMinLength validates that a password has at least n characters.
func PasswordMinLength(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", n),
			TranslationKey: "validation.password_min_length",
			TranslationValues: map[string]any{
				"field": field,
				"count": n,
			},
		},
	}
}

// PasswordMinUppercase validates that a password has at least n ASCII uppercase letters.
func PasswordMinUppercase(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return countRunes(value, isUpper) >= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d uppercase letters", n),
			TranslationKey: "validation.password_uppercase",
			TranslationValues: map[string]any{
				"field": field,
				"count": n,
			},
		},
	}
}

// PasswordMinLowercase validates that a password has at least n ASCII lowercase letters.
func PasswordMinLowercase(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return countRunes(value, isLower) >= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d lowercase letters", n),
			TranslationKey: "validation.password_lowercase",
			TranslationValues: map[string]any{
				"field": field,
				"count": n,
			},
		},
	}
}

// PasswordMinDigits validates that a password has at least n digits.
func PasswordMinDigits(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return countRunes(value, isDigit) >= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d digits", n),
			TranslationKey: "validation.password_digits",
			TranslationValues: map[string]any{
				"field": field,
				"count": n,
			},
		},
	}
}

// PasswordSymbol validates that a password contains at least one of symbols.
func PasswordSymbol(field, value, symbols string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, symbols)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least one of %s", symbols),
			TranslationKey: "validation.password_symbol",
			TranslationValues: map[string]any{
				"field":   field,
				"symbols": symbols,
			},
		},
	}
}

// PasswordRules expands a policy into rules, in the order length, uppercase,
// lowercase, digits, symbol. Disabled requirements produce no rule.
func PasswordRules(field, value string, policy PasswordPolicy) []Rule {
	var rules []Rule
	if policy.MinLength > 0 {
		rules = append(rules, PasswordMinLength(field, value, policy.MinLength))
	}
	if policy.MinUppercase > 0 {
		rules = append(rules, PasswordMinUppercase(field, value, policy.MinUppercase))
	}
	if policy.MinLowercase > 0 {
		rules = append(rules, PasswordMinLowercase(field, value, policy.MinLowercase))
	}
	if policy.MinDigits > 0 {
		rules = append(rules, PasswordMinDigits(field, value, policy.MinDigits))
	}
	if policy.Symbols != "" {
		rules = append(rules, PasswordSymbol(field, value, policy.Symbols))
	}
	return rules
}

// StrengthOption is one step of a password strength ladder.
type StrengthOption struct {
	ID           int
	Value        string
	MinDiversity int
	MinLength    int
}

// DefaultStrengthOptions is the ladder for an 8-character minimum, the same
// ladder StrengthOptionsFor(8) derives.
func DefaultStrengthOptions() []StrengthOption {
	return []StrengthOption{
		{ID: 0, Value: "Weak", MinDiversity: 1, MinLength: 8},
		{ID: 1, Value: "Strong", MinDiversity: 2, MinLength: 10},
		{ID: 2, Value: "Very Strong", MinDiversity: 4, MinLength: 12},
	}
}

// StrengthOptionsFor derives the default ladder from a policy's minimum
// length: each step requires two more characters than the previous one.
func StrengthOptionsFor(minLength int) []StrengthOption {
	if minLength <= 0 {
		return DefaultStrengthOptions()
	}

	options := DefaultStrengthOptions()
	for i := range options {
		options[i].MinLength = minLength + i*2
	}
	return options
}

// PasswordDiversity counts the character classes present in value:
// lowercase, uppercase, digit and symbol.
func PasswordDiversity(value string) int {
	var lower, upper, digit, symbol bool
	for _, r := range value {
		switch {
		case isLower(r):
			lower = true
		case isUpper(r):
			upper = true
		case isDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			symbol = true
		}
	}

	n := 0
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			n++
		}
	}
	return n
}

// PasswordStrength returns the strongest option whose diversity and length
// requirements value meets. Options are ordered weakest first; when none is
// met the first option is returned. The returned ID is the option's index.
func PasswordStrength(value string, options []StrengthOption) StrengthOption {
	if len(options) == 0 {
		return StrengthOption{}
	}

	diversity := PasswordDiversity(value)
	length := utf8.RuneCountInString(value)

	best := 0
	for i, opt := range options {
		if diversity >= opt.MinDiversity && length >= opt.MinLength {
			best = i
		}
	}

	result := options[best]
	result.ID = best
	return result
}

// MinPasswordStrength validates that a password reaches at least the option
// with index minID.
func MinPasswordStrength(field, value string, options []StrengthOption, minID int) Rule {
	want := ""
	if minID >= 0 && minID < len(options) {
		want = options[minID].Value
	}

	return Rule{
		Check: func() bool {
			if want == "" {
				return false
			}
			diversity := PasswordDiversity(value)
			length := utf8.RuneCountInString(value)
			for _, opt := range options[minID:] {
				if diversity >= opt.MinDiversity && length >= opt.MinLength {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %s", want),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":    field,
				"strength": want,
			},
		},
	}
}

// PasswordCheck is the outcome of one policy rule.
type PasswordCheck struct {
	Rule  string
	Valid bool
}

// PasswordReport is the result of CheckPassword.
type PasswordReport struct {
	Checks   []PasswordCheck
	Strength StrengthOption
}

// Valid reports whether every check passed.
func (r PasswordReport) Valid() bool {
	for _, c := range r.Checks {
		if !c.Valid {
			return false
		}
	}
	return true
}

// CheckPassword evaluates every rule of policy against value and rates its
// strength. Unlike Apply it reports passing rules too, keyed by their
// translation key.
func CheckPassword(value string, policy PasswordPolicy, options []StrengthOption) PasswordReport {
	rules := PasswordRules("password", value, policy)

	report := PasswordReport{
		Checks:   make([]PasswordCheck, 0, len(rules)),
		Strength: PasswordStrength(value, options),
	}
	for _, rule := range rules {
		report.Checks = append(report.Checks, PasswordCheck{
			Rule:  rule.Error.TranslationKey,
			Valid: rule.Check(),
		})
	}
	return report
}

func countRunes(s string, match func(rune) bool) int {
	n := 0
	for _, r := range s {
		if match(r) {
			n++
		}
	}
	return n
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
