// Package fuzzy provides approximate name matching for catalog lookups.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Defaults for CloseMatches.
const (
	DefaultLimit  = 5
	DefaultCutoff = 0.6
)

// Match is a candidate with its similarity ratio.
type Match struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
}

// CloseMatches returns up to limit candidates whose sequence-matcher ratio with
// query is at least cutoff, best first. Equal ratios keep candidate order.
// A non-positive limit means no limit.
func CloseMatches(query string, candidates []string, limit int, cutoff float64) []Match {
	matcher := difflib.NewMatcher(nil, chars(query))

	matches := []Match{}
	for _, name := range candidates {
		matcher.SetSeq1(chars(name))
		// Cheap upper bounds first; Ratio is quadratic.
		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}
		if r := matcher.Ratio(); r >= cutoff {
			matches = append(matches, Match{Name: name, Ratio: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Ratio > matches[j].Ratio
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Names returns just the names of matches.
func Names(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}

// Ratio returns the sequence-matcher similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// chars splits s into one element per character.
func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
