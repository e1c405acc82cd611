package handle

import (
	"slices"

	"github.com/dmitrymomot/handlekit/pkg/nameparse"
	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

// Pattern identifies one of the fixed candidate templates. Generation order
// follows the declaration order, most-likely-first.
type Pattern int

const (
	FirstDotLast     Pattern = iota // john.doe
	FirstUnderLast                  // john_doe
	FirstLast                       // johndoe
	FLast                           // jdoe
	FirstL                          // johnd
	FDotLast                        // j.doe
	FUnderLast                      // j_doe
	LastDotFirst                    // doe.john
	LastUnderFirst                  // doe_john
	LastF                           // doej
	FirstDashLast                   // john-doe
	LastDashFirst                   // doe-john
	FirstDotL                       // john.d
	FLastL                          // jdoed
	FirstDotMDotLast                // john.m.doe
	FirstMLast                      // johnmdoe
	FMLast                          // jmdoe
	FMDotLast                       // jm.doe
)

// patternOrder is the canonical generation sequence. Middle-initial patterns
// come last so that names without a middle produce a stable prefix of the
// full list.
var patternOrder = []Pattern{
	FirstDotLast,
	FirstUnderLast,
	FirstLast,
	FLast,
	FirstL,
	FDotLast,
	FUnderLast,
	LastDotFirst,
	LastUnderFirst,
	LastF,
	FirstDashLast,
	LastDashFirst,
	FirstDotL,
	FLastL,
	FirstDotMDotLast,
	FirstMLast,
	FMLast,
	FMDotLast,
}

// Patterns returns the canonical pattern sequence in generation order.
func Patterns() []Pattern {
	return slices.Clone(patternOrder)
}

// Render builds the raw candidate string for this pattern from the given
// name tokens.
func (p Pattern) Render(n nameparse.Name) string {
	switch p {
	case FirstDotLast:
		return n.First + "." + n.Last
	case FirstUnderLast:
		return n.First + "_" + n.Last
	case FirstLast:
		return n.First + n.Last
	case FLast:
		return n.FirstInitial + n.Last
	case FirstL:
		return n.First + n.LastInitial
	case FDotLast:
		return n.FirstInitial + "." + n.Last
	case FUnderLast:
		return n.FirstInitial + "_" + n.Last
	case LastDotFirst:
		return n.Last + "." + n.First
	case LastUnderFirst:
		return n.Last + "_" + n.First
	case LastF:
		return n.Last + n.FirstInitial
	case FirstDashLast:
		return n.First + "-" + n.Last
	case LastDashFirst:
		return n.Last + "-" + n.First
	case FirstDotL:
		return n.First + "." + n.LastInitial
	case FLastL:
		return n.FirstInitial + n.Last + n.LastInitial
	case FirstDotMDotLast:
		return n.First + "." + n.MiddleInitial + "." + n.Last
	case FirstMLast:
		return n.First + n.MiddleInitial + n.Last
	case FMLast:
		return n.FirstInitial + n.MiddleInitial + n.Last
	case FMDotLast:
		return n.FirstInitial + n.MiddleInitial + "." + n.Last
	}
	return ""
}

// requiresMiddle reports whether the pattern renders the middle initial.
func (p Pattern) requiresMiddle() bool {
	switch p {
	case FirstDotMDotLast, FirstMLast, FMLast, FMDotLast:
		return true
	}
	return false
}

// candidate pairs a rendered value with the pattern that produced it, so
// profile filtering can select by pattern identity.
type candidate struct {
	pattern Pattern
	value   string
}

// generate renders every applicable pattern for the name in canonical order.
// Middle-initial patterns are skipped when the name has no middle token.
func generate(n nameparse.Name) []candidate {
	out := make([]candidate, 0, len(patternOrder))
	for _, p := range patternOrder {
		if p.requiresMiddle() && n.MiddleInitial == "" {
			continue
		}
		out = append(out, candidate{pattern: p, value: p.Render(n)})
	}
	return out
}

// Candidates returns the raw, unsanitized candidate strings for a name in
// canonical order.
func Candidates(n nameparse.Name) []string {
	return sanitizer.TransformSlice(generate(n), func(c candidate) string {
		return c.value
	})
}
