package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// ResolveLanguage matches a language tag against the supported languages and
// returns the supported code, or fallback when nothing matches. Besides
// BCP 47 tags ("de-AT") it accepts POSIX locale names as found in $LANG
// ("de_AT.UTF-8", "C").
func ResolveLanguage(tag string, supported []string, fallback string) string {
	tag = normalizeLocale(tag)
	if tag == "" || len(supported) == 0 {
		return fallback
	}

	want, err := language.Parse(tag)
	if err != nil {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		return fallback
	}
	return codes[index]
}

// normalizeLocale turns "de_AT.UTF-8@euro" into "de-AT". "C" and "POSIX"
// carry no language.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
