package handle

import (
	"strings"

	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

// Profile selects which candidate patterns survive filtering.
type Profile string

const (
	// ProfileMinimal keeps only the handful of patterns most corporate
	// account schemes actually use.
	ProfileMinimal Profile = "minimal"
	// ProfileCommon drops candidates that start or end with a period and
	// caps the list. This is the default.
	ProfileCommon Profile = "common"
	// ProfileWide keeps every generated candidate.
	ProfileWide Profile = "wide"
)

// commonProfileCap bounds the candidate list under ProfileCommon.
const commonProfileCap = 20

// minimalPatterns is the selection set for ProfileMinimal, keyed by pattern
// identity rather than list position so it survives template reordering.
var minimalPatterns = map[Pattern]struct{}{
	FirstDotLast:   {},
	FirstUnderLast: {},
	FirstLast:      {},
	FLast:          {},
	FirstL:         {},
	FDotLast:       {},
	LastDotFirst:   {},
}

// applyProfile filters raw candidates. The common profile's period check
// runs against the raw candidate value, before sanitization.
func applyProfile(cands []candidate, profile Profile) []candidate {
	switch profile {
	case ProfileMinimal:
		return sanitizer.FilterSlice(cands, func(c candidate) bool {
			_, ok := minimalPatterns[c.pattern]
			return ok
		})
	case ProfileCommon:
		kept := sanitizer.FilterSlice(cands, func(c candidate) bool {
			return !strings.HasPrefix(c.value, ".") && !strings.HasSuffix(c.value, ".")
		})
		return sanitizer.LimitSliceLength(kept, commonProfileCap)
	default:
		return cands
	}
}
