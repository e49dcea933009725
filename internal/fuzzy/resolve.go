package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultResolveThreshold is the minimum confidence for Resolve to accept a match.
const DefaultResolveThreshold = 0.75

// Confidence returns 1 - distance/max(len(a), len(b)) on the lowercased,
// trimmed inputs.
func Confidence(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)
	if a == b {
		return 1.0
	}
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Resolve finds the candidate closest to query by edit distance. It returns
// false when no candidate reaches threshold. Earlier candidates win ties.
func Resolve(query string, candidates []string, threshold float64) (string, float64, bool) {
	best := ""
	bestScore := -1.0

	for _, c := range candidates {
		score := Confidence(query, c)
		if score == 1.0 {
			return c, 1.0, true
		}
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < threshold {
		return "", bestScore, false
	}
	return best, bestScore, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
