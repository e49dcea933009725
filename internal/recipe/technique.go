package recipe

import (
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Techniques is the fixed vocabulary of preparation methods recognized in
// recipe text.
var Techniques = []string{
	"SHAKE",
	"STIR",
	"MUDDLE",
	"STRAIN",
	"FLOAT",
	"LAYER",
	"BUILD",
	"ROLL",
	"BLEND",
	"SWIZZLE",
}

// DefaultTechnique is assigned when recipe text names no known technique.
const DefaultTechnique = "BUILD"

// techniqueTokenPattern matches standalone all-caps words of two or more letters.
var techniqueTokenPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

var techniqueSet = func() map[string]bool {
	m := make(map[string]bool, len(Techniques))
	for _, t := range Techniques {
		m[t] = true
	}
	return m
}()

// IsTechnique reports whether s is in the technique vocabulary.
func IsTechnique(s string) bool {
	return techniqueSet[s]
}

// ExtractTechniques returns the sorted, deduplicated techniques named in text.
// Matching is case-sensitive: "shake" and "Shake" are ignored. The result is
// never empty; text with no technique yields [BUILD].
func ExtractTechniques(text string) []string {
	seen := make(map[string]bool)
	var found []string
	for _, loc := range techniqueTokenPattern.FindAllStringIndex(text, -1) {
		tok := text[loc[0]:loc[1]]
		if !isolated(text, loc[0], loc[1]) {
			continue
		}
		if techniqueSet[tok] && !seen[tok] {
			seen[tok] = true
			found = append(found, tok)
		}
	}

	if len(found) == 0 {
		return []string{DefaultTechnique}
	}
	sort.Strings(found)
	return found
}

// isolated reports whether text[start:end] has no letter, digit or underscore
// on either side. The regexp's \b only knows ASCII word characters, so a
// token touching "é" would otherwise count as a separate word.
func isolated(text string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && isWordChar(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && isWordChar(r) {
		return false
	}
	return true
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
