package validator

import (
	"fmt"
	"net/mail"
	"net/netip"
	"net/url"
	"slices"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322
// with the stricter domain shape expected on the web (at least one dot, no
// empty labels).
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := emailDomain(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailInDomains validates that value is a valid email address whose domain
// is one of domains. Domains compare case-insensitively. An empty list
// rejects every address.
func EmailInDomains(field, value string, domains []string) Rule {
	return Rule{
		Check: func() bool {
			domain, ok := emailDomain(value)
			if !ok {
				return false
			}
			return slices.ContainsFunc(domains, func(d string) bool {
				return strings.EqualFold(strings.TrimSpace(d), domain)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be an email address in one of: %s", strings.Join(domains, ", ")),
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":   field,
				"domains": strings.Join(domains, ", "),
			},
		},
	}
}

// emailDomain returns the domain of a well-formed address.
func emailDomain(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return "", false
	}

	// Display names ("Bob <bob@example.com>") are not plain addresses.
	if addr.Address != strings.TrimSpace(value) {
		return "", false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return "", false
	}

	if !strings.Contains(domain, ".") {
		return "", false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return "", false
		}
	}

	return domain, true
}

// ValidURL validates that a string is an absolute http or https URL with a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsHTTPURL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsHTTPURL reports whether value parses as an absolute http(s) URL with a host.
func IsHTTPURL(value string) bool {
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}

	return u.Hostname() != ""
}

// ValidIPv4 validates a dotted-quad IPv4 address. IPv4-mapped IPv6 forms
// such as "::ffff:10.0.0.1" are rejected.
func ValidIPv4(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := netip.ParseAddr(value)
			return err == nil && addr.Is4()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid IPv4 address",
			TranslationKey: "validation.ipv4",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIP validates that a string is a valid IP address (IPv4 or IPv6).
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := netip.ParseAddr(value)
			return err == nil && addr.Zone() == ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid IP address",
			TranslationKey: "validation.ip",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
