package naming

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
)

// rank filters, deduplicates, shuffles, sorts and truncates candidates.
// The input slice is not modified.
func rank(rng *rand.Rand, candidates []Candidate, randomness Randomness, limit int) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !PassesQualityCheck(c.Name) {
			continue
		}
		key := strings.ToLower(c.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	// Shuffling first only decides which equal scores survive truncation.
	if randomness != RandomnessLow {
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
