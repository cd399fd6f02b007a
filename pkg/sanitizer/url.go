package sanitizer

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// URLOptions selects the shape CanonicalURL produces.
type URLOptions struct {
	// DomainOnly drops the scheme, port and credentials.
	DomainOnly bool
	// PathIncluded keeps the path and query string.
	PathIncluded bool
}

// DefaultURLOptions keeps URLs as they are.
func DefaultURLOptions() URLOptions {
	return URLOptions{DomainOnly: false, PathIncluded: true}
}

// CanonicalURL validates raw as an absolute http(s) URL and reshapes it:
//
//	DomainOnly + PathIncluded  example.com/docs?page=2
//	DomainOnly                 example.com
//	neither                    https://example.com:8443
//	PathIncluded               the URL unchanged
//
// Hosts are lowercased. Default ports are omitted from origins.
func CanonicalURL(raw string, opts URLOptions) (string, error) {
	raw = strings.TrimSpace(raw)
	if !validator.IsHTTPURL(raw) {
		return "", errors.Join(ErrInvalidURL, fmt.Errorf("%q is not an absolute http(s) url", raw))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Join(ErrInvalidURL, err)
	}

	host := strings.ToLower(u.Hostname())

	switch {
	case opts.DomainOnly && opts.PathIncluded:
		out := host
		if u.Path != "/" {
			out += u.EscapedPath()
		}
		if u.RawQuery != "" {
			out += "?" + u.RawQuery
		}
		return out, nil
	case opts.DomainOnly:
		return host, nil
	case !opts.PathIncluded:
		return origin(u), nil
	default:
		return raw, nil
	}
}

func origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()

	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host
}

// NormalizeURL assumes https when the scheme is missing, lowercases the host
// and drops a lone trailing slash. Unparseable input is returned trimmed.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if !hasHTTPScheme(rawURL) {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
