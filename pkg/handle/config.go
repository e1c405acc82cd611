package handle

import (
	"fmt"
	"strconv"
	"strings"
)

// CaseMode controls the casing applied to candidates after structural
// cleanup.
type CaseMode string

const (
	// CaseLower lowercases every candidate.
	CaseLower CaseMode = "lower"
	// CaseUpper uppercases every candidate.
	CaseUpper CaseMode = "upper"
	// CaseOriginal leaves the casing produced by earlier steps untouched.
	// Name tokens are lowercased during parsing, so this matches CaseLower
	// for generated candidates.
	CaseOriginal CaseMode = "original"
)

// SuffixRange is an inclusive range of numeric suffixes appended to
// generated handles by Expand.
type SuffixRange struct {
	Start int
	End   int
}

// ParseSuffixRange parses "N" or "N-M" notation into a SuffixRange. A bare
// number N is shorthand for the range N-N. Bounds must satisfy
// 0 <= start <= end.
func ParseSuffixRange(s string) (SuffixRange, error) {
	startText, endText, found := strings.Cut(s, "-")
	if !found {
		endText = startText
	}

	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return SuffixRange{}, fmt.Errorf("%w: %q", ErrInvalidSuffixRange, s)
	}

	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return SuffixRange{}, fmt.Errorf("%w: %q", ErrInvalidSuffixRange, s)
	}

	if start < 0 || end < start {
		return SuffixRange{}, fmt.Errorf("%w: %q", ErrInvalidSuffixRange, s)
	}

	return SuffixRange{Start: start, End: end}, nil
}

// Config controls handle generation. The zero value is valid and means
// lowercase output, no accent folding, the common profile, no length or
// count bounds, and no numeric suffixes.
type Config struct {
	// Case selects the output casing. Empty means CaseLower.
	Case CaseMode

	// FoldASCII reduces accented characters to base letters during name
	// parsing instead of dropping them.
	FoldASCII bool

	// Profile selects which candidate patterns survive filtering. Empty
	// means ProfileCommon.
	Profile Profile

	// MaxPerName caps the number of candidates per name. Zero means
	// unbounded.
	MaxPerName int

	// MaxLength drops candidates longer than this many characters. Zero
	// means unbounded.
	MaxLength int

	// Suffixes, when set, appends numeric suffix variants to the surviving
	// candidates.
	Suffixes *SuffixRange
}

// Validate reports the first configuration mistake found. Empty Case and
// Profile values are accepted and resolved to their defaults.
func (c Config) Validate() error {
	switch c.Case {
	case "", CaseLower, CaseUpper, CaseOriginal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCaseMode, c.Case)
	}

	switch c.Profile {
	case "", ProfileMinimal, ProfileCommon, ProfileWide:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProfile, c.Profile)
	}

	if c.MaxPerName < 0 {
		return fmt.Errorf("%w: max per name %d", ErrInvalidLimit, c.MaxPerName)
	}

	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length %d", ErrInvalidLimit, c.MaxLength)
	}

	if c.Suffixes != nil && (c.Suffixes.Start < 0 || c.Suffixes.End < c.Suffixes.Start) {
		return fmt.Errorf("%w: %d-%d", ErrInvalidSuffixRange, c.Suffixes.Start, c.Suffixes.End)
	}

	return nil
}

func (c Config) withDefaults() Config {
	if c.Case == "" {
		c.Case = CaseLower
	}
	if c.Profile == "" {
		c.Profile = ProfileCommon
	}
	return c
}
