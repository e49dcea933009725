package graph

import (
	"math/rand/v2"
	"sort"

	"github.com/matsen/mixology/internal/fuzzy"
	"github.com/matsen/mixology/internal/recipe"
)

// FuzzySearch returns up to FuzzyLimit cocktail names that approximately match
// query, best first. It ignores edges and returns an empty slice when nothing
// clears the cutoff.
func (g *Graph) FuzzySearch(query string) []string {
	return fuzzy.Names(g.FuzzyMatches(query))
}

// FuzzyMatches is FuzzySearch with the ratio of each match.
func (g *Graph) FuzzyMatches(query string) []fuzzy.Match {
	return fuzzy.CloseMatches(query, g.Names(), g.opts.FuzzyLimit, g.opts.FuzzyCutoff)
}

// Random returns a cocktail chosen uniformly with r.
func (g *Graph) Random(r *rand.Rand) *recipe.Recipe {
	return g.nodes[r.IntN(len(g.nodes))]
}

// IngredientNames returns every distinct ingredient name in the catalog, sorted.
func (g *Graph) IngredientNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range g.nodes {
		for _, ing := range r.Ingredients {
			if !seen[ing.Name] {
				seen[ing.Name] = true
				names = append(names, ing.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// WithIngredient returns the names of cocktails using ingredient, in catalog
// order. Matching is exact.
func (g *Graph) WithIngredient(ingredient string) []string {
	names := []string{}
	for _, r := range g.nodes {
		if r.HasIngredient(ingredient) {
			names = append(names, r.Name)
		}
	}
	return names
}
