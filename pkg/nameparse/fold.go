package nameparse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops the combining marks, so that
// accented letters reduce to their base form ("é" -> "e").
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// quoteReplacer maps typographic quotes to their straight equivalents before
// decomposition, since they have no base-letter form of their own.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// FoldASCII reduces accented characters to their base Latin letters and drops
// anything that has no ASCII representation: "José" becomes "Jose", "北" is
// removed entirely.
func FoldASCII(s string) string {
	s = quoteReplacer.Replace(s)

	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)
}
