package handle

import "strconv"

// Expand appends numeric suffix variants to a candidate list. The output
// starts with the deduplicated bases in order, followed by base+N for each
// base in order and each N from rng.Start through rng.End ascending.
// Suffixed results that duplicate an earlier entry or, when maxLength is
// positive, exceed it are skipped. A nil range returns the input unchanged.
func Expand(cands []string, rng *SuffixRange, maxLength int) []string {
	if rng == nil {
		return cands
	}

	seen := make(map[string]bool, len(cands))
	out := make([]string, 0, len(cands)*(rng.End-rng.Start+2))

	for _, c := range cands {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	bases := out
	for _, base := range bases {
		for n := rng.Start; n <= rng.End; n++ {
			v := base + strconv.Itoa(n)
			if maxLength > 0 && len(v) > maxLength {
				continue
			}
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
