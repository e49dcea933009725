// Package similarity scores how alike two cocktail recipes are.
package similarity

import (
	"sort"

	"github.com/matsen/mixology/internal/recipe"
)

// Score weights. Shared ingredients dominate shared technique, and the default
// threshold is tuned against these exact values.
const (
	IngredientWeight = 3
	TechniqueWeight  = 1

	// DefaultThreshold is the minimum score for two recipes to be linked.
	DefaultThreshold = 7
)

// Score returns 3 points per shared ingredient name plus 1 point per shared
// technique. It is symmetric in its arguments.
func Score(a, b *recipe.Recipe) int {
	return IngredientWeight*countShared(a.IngredientNames(), b.IngredientNames()) +
		TechniqueWeight*countShared(toSet(a.Techniques), toSet(b.Techniques))
}

// Breakdown explains a score.
type Breakdown struct {
	SharedIngredients []string `json:"shared_ingredients"`
	SharedTechniques  []string `json:"shared_techniques"`
	Score             int      `json:"score"`
}

// Explain returns the shared ingredient and technique names behind Score(a, b),
// each sorted.
func Explain(a, b *recipe.Recipe) Breakdown {
	ingredients := shared(a.IngredientNames(), b.IngredientNames())
	techniques := shared(toSet(a.Techniques), toSet(b.Techniques))
	return Breakdown{
		SharedIngredients: ingredients,
		SharedTechniques:  techniques,
		Score:             IngredientWeight*len(ingredients) + TechniqueWeight*len(techniques),
	}
}

// countShared iterates the smaller set.
func countShared(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func shared(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
