// Package links — URL rules shared by the fetcher and the extractor.
// Provides helpers to normalize page URLs and resolve hrefs found on a page.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned by Normalize for input that cannot name a web page.
var ErrInvalidURL = errors.New("invalid URL")

// skippedSchemes are href prefixes that never point at a fetchable page.
var skippedSchemes = []string{"mailto:", "javascript:", "tel:", "data:"}

// Normalize trims the input, adds an https:// scheme when none is given and
// strips the fragment. Only http and https URLs with a host are accepted.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if strings.Contains(raw, "://") {
			return "", fmt.Errorf("%w: only http and https are supported: %s", ErrInvalidURL, raw)
		}
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host: %s", ErrInvalidURL, raw)
	}

	// Remove fragment.
	parsed.Fragment = ""
	return parsed.String(), nil
}

// Resolve resolves an href against the page URL. It reports false for empty,
// fragment-only and non-navigational hrefs (mailto, javascript, tel, data)
// and for anything that does not resolve to http or https.
func Resolve(href string, base *url.URL) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	lower := strings.ToLower(href)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := parsed
	if base != nil {
		resolved = base.ResolveReference(parsed)
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	// Strip fragments.
	resolved.Fragment = ""
	return resolved.String(), true
}

// IsSameDomain checks if the given URL belongs to the specified host.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Host, domain)
}
