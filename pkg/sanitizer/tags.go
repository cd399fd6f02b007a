package sanitizer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SplitTags splits a free-form tag list such as "go, cli, tools".
//
// With exactly one separator the string is split on it. With none, the most
// frequent non-word character in s is used; with several, the most frequent
// of the supplied ones (ties go to the first seen). When none of several
// supplied separators occur, s is not split. A space separator matches any
// whitespace. Tags are trimmed and empty ones dropped.
//
// Every separator must be a single non-word character (not a letter, digit
// or underscore), otherwise ErrInvalidSeparator is returned.
func SplitTags(s string, separators ...string) ([]string, error) {
	seps := make([]rune, 0, len(separators))
	for _, sep := range separators {
		r, size := utf8.DecodeRuneInString(sep)
		if sep == "" || size != len(sep) || isWordRune(r) {
			return nil, errors.Join(ErrInvalidSeparator, fmt.Errorf("separator %q", sep))
		}
		seps = append(seps, r)
	}

	var sep rune
	var found bool
	if len(seps) == 1 {
		sep, found = seps[0], true
	} else {
		sep, found = inferSeparator(s, seps)
	}

	var parts []string
	switch {
	case !found:
		parts = []string{s}
	case unicode.IsSpace(sep):
		parts = whitespaceRegex.Split(s, -1)
	default:
		parts = strings.Split(s, string(sep))
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags, nil
}

// inferSeparator picks the most frequent non-word rune of s, limited to
// candidates when given. Whitespace runes are counted as a space.
func inferSeparator(s string, candidates []rune) (rune, bool) {
	counts := make(map[rune]int)
	var order []rune

	for _, r := range s {
		if isWordRune(r) {
			continue
		}
		if unicode.IsSpace(r) {
			r = ' '
		}
		if len(candidates) > 0 && !slices.Contains(candidates, r) {
			continue
		}
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	if len(order) == 0 {
		return 0, false
	}

	best := order[0]
	for _, r := range order[1:] {
		if counts[r] > counts[best] {
			best = r
		}
	}
	return best, true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NormalizeTags trims, NFC-normalises and case-folds tags, dropping empty
// entries and duplicates while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	normalize := Compose(norm.NFC.String, cases.Fold().String, NormalizeWhitespace)

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := normalize(tag)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
