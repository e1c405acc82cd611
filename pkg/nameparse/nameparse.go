package nameparse

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

// Name holds the parsed tokens of a person's full name together with the
// derived initials. All token fields are lowercase and contain only ASCII
// letters and digits.
type Name struct {
	// Full is the whitespace-normalized source string, casing preserved.
	Full string

	First  string
	Last   string
	Middle string // all middle tokens concatenated without separator

	FirstInitial  string
	MiddleInitial string // empty when there are no middle tokens
	LastInitial   string
}

// Normalize collapses runs of whitespace to single spaces and trims the edges.
func Normalize(s string) string {
	return sanitizer.RemoveExtraWhitespace(s)
}

// CleanToken lowercases a name token and strips every character that is not
// an ASCII letter or digit. When fold is true, accented characters are
// reduced to their base letters first instead of being dropped.
func CleanToken(token string, fold bool) string {
	token = strings.ToLower(token)
	if fold {
		token = FoldASCII(token)
	}

	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, token)
}

// Split parses a full name into first, middle and last tokens.
//
// The first token becomes the first name, the last token the last name, and
// everything between them the middle names. Middle tokens that clean to the
// empty string are dropped; an empty first or last token is an error.
func Split(fullName string, fold bool) (Name, error) {
	full := Normalize(fullName)
	parts := strings.Split(full, " ")

	if len(parts) < 2 {
		return Name{}, fmt.Errorf("%w: %q", ErrNameTooShort, full)
	}

	first := CleanToken(parts[0], fold)
	last := CleanToken(parts[len(parts)-1], fold)

	if first == "" || last == "" {
		return Name{}, fmt.Errorf("%w: %q", ErrEmptyNamePart, full)
	}

	var middles []string
	for _, part := range parts[1 : len(parts)-1] {
		if cleaned := CleanToken(part, fold); cleaned != "" {
			middles = append(middles, cleaned)
		}
	}

	name := Name{
		Full:         full,
		First:        first,
		Last:         last,
		Middle:       strings.Join(middles, ""),
		FirstInitial: first[:1],
		LastInitial:  last[:1],
	}
	if name.Middle != "" {
		name.MiddleInitial = name.Middle[:1]
	}

	return name, nil
}
