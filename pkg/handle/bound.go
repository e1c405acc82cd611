package handle

import "github.com/dmitrymomot/handlekit/pkg/sanitizer"

// Bound enforces the length and count limits on a candidate list: drops
// entries longer than maxLength, deduplicates keeping the first occurrence,
// then truncates to maxPerName. A zero limit leaves that dimension
// unbounded.
func Bound(cands []string, maxLength, maxPerName int) []string {
	if maxLength > 0 {
		cands = sanitizer.FilterSlice(cands, func(c string) bool {
			return len(c) <= maxLength
		})
	}

	cands = sanitizer.Deduplicate(cands)

	if maxPerName > 0 {
		cands = sanitizer.LimitSliceLength(cands, maxPerName)
	}

	return cands
}
