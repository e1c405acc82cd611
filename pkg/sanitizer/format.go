package sanitizer

import (
	"strings"
)

// NormalizeDomain strips surrounding whitespace and any leading "@" so that
// values like "@example.com" and " example.com " become "example.com".
// The remaining text is preserved as given, casing included.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	return strings.TrimLeft(domain, "@")
}

// ExtractEmailDomain returns the part after the first "@", or "" when the
// input has no "@". Casing is preserved.
func ExtractEmailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return domain
}
