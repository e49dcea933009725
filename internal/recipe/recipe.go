// Package recipe defines the core domain types for cocktail recipes.
package recipe

import "sort"

// NoneSentinel stands in for a missing garnish (and any other empty text field
// coming from the dataset).
const NoneSentinel = "None"

// Recipe represents one cocktail in the catalog.
type Recipe struct {
	// Identity
	Name string `json:"name"` // Catalog key, unique within a library

	// Presentation
	Glass   string `json:"glass"`
	Garnish string `json:"garnish"` // "None" when absent

	// Preparation
	Text        string       `json:"recipe"`
	Ingredients []Ingredient `json:"ingredients"`

	// Techniques is derived from Text; never set it directly.
	Techniques []string `json:"techniques"`
}

// Pair is one decoded [amount, ingredient] entry from the dataset.
type Pair struct {
	Amount string
	Name   string
}

// New builds a Recipe from raw field values. Ingredient amounts that cannot be
// parsed degrade to nil fields rather than failing the recipe.
func New(name, glass, garnish, text string, pairs []Pair) *Recipe {
	if garnish == "" {
		garnish = NoneSentinel
	}

	ingredients := make([]Ingredient, 0, len(pairs))
	for _, p := range pairs {
		ingredients = append(ingredients, ParseIngredient(p.Amount, p.Name))
	}

	return &Recipe{
		Name:        name,
		Glass:       glass,
		Garnish:     garnish,
		Text:        text,
		Ingredients: ingredients,
		Techniques:  ExtractTechniques(text),
	}
}

// Normalize recomputes derived fields. Call it after decoding a Recipe from
// storage so the technique set always reflects the recipe text.
func (r *Recipe) Normalize() {
	if r.Garnish == "" {
		r.Garnish = NoneSentinel
	}
	r.Techniques = ExtractTechniques(r.Text)
}

// IngredientNames returns the set of ingredient names in the recipe.
func (r *Recipe) IngredientNames() map[string]struct{} {
	names := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names[ing.Name] = struct{}{}
	}
	return names
}

// SortedIngredientNames returns the distinct ingredient names in sorted order.
func (r *Recipe) SortedIngredientNames() []string {
	set := r.IngredientNames()
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Amounts maps each ingredient name to its display amount. When a name appears
// more than once, the last occurrence wins.
func (r *Recipe) Amounts() map[string]string {
	amounts := make(map[string]string, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		amounts[ing.Name] = ing.Raw
	}
	return amounts
}

// HasIngredient reports whether the recipe uses an ingredient with this exact name.
func (r *Recipe) HasIngredient(name string) bool {
	for _, ing := range r.Ingredients {
		if ing.Name == name {
			return true
		}
	}
	return false
}

// HasTechnique reports whether the technique is in the recipe's technique set.
func (r *Recipe) HasTechnique(technique string) bool {
	for _, t := range r.Techniques {
		if t == technique {
			return true
		}
	}
	return false
}
