package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// OneOfFold validates that value equals one of options, ignoring case and
// surrounding spaces.
func OneOfFold(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return slices.ContainsFunc(options, func(o string) bool {
				return strings.EqualFold(o, v)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": strings.Join(options, ", "),
			},
		},
	}
}

// HexColor validates a CSS-style "#rgb" or "#rrggbb" color.
func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a hex color like #1e90ff",
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
