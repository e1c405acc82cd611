package handle

import (
	"strings"

	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

func isHandleRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

func isSeparatorRune(r rune) bool {
	return r == '.' || r == '_' || r == '-'
}

// scrub removes every character outside the handle alphabet and collapses
// runs of the same separator into a single occurrence. Runs are judged
// against the last kept character, so separators that become adjacent after
// removal still collapse.
func scrub(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var last rune
	for _, r := range s {
		if !isHandleRune(r) {
			continue
		}
		if isSeparatorRune(r) && r == last {
			continue
		}
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

func trimSeparators(s string) string {
	return strings.Trim(s, "._-")
}

// caseTransform returns the casing step for the given mode. CaseOriginal is
// the identity.
func caseTransform(mode CaseMode) func(string) string {
	switch mode {
	case CaseUpper:
		return sanitizer.ToUpper
	case CaseOriginal:
		return func(s string) string { return s }
	default:
		return sanitizer.ToLower
	}
}

// scrubChain is the mode-independent cleanup shared by every candidate:
// trim whitespace, strip characters outside ASCII letters, digits and "._-",
// collapse repeated separators, trim separator edges.
var scrubChain = sanitizer.Compose(
	sanitizer.Trim,
	scrub,
	trimSeparators,
)

// Sanitize normalizes a raw candidate into its final handle form by running
// the scrub chain and then applying the case mode. Returns "" when nothing
// usable remains.
func Sanitize(raw string, mode CaseMode) string {
	return sanitizer.Apply(raw, scrubChain, caseTransform(mode))
}
