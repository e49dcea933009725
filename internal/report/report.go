// Package report builds side-by-side comparisons of cocktails.
package report

import (
	"sort"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/recipe"
)

// Absent marks a cell for an ingredient or technique a cocktail does not use.
const Absent = "X"

// Report compares cocktails over the union of their ingredients and techniques.
type Report struct {
	Columns     []string `json:"columns"` // Cocktail names in request order, duplicates kept
	Ingredients []Row    `json:"ingredients"`
	Techniques  []Row    `json:"techniques"`
}

// Row is one ingredient or technique with a cell per column.
type Row struct {
	Element string   `json:"element"`
	Cells   []string `json:"cells"`
}

// Lookup resolves cocktail names. *graph.Graph satisfies it.
type Lookup interface {
	Get(name string) (*recipe.Recipe, error)
}

var _ Lookup = (*graph.Graph)(nil)

// Compare builds a report for names. If any name is unknown the lookup error
// is returned (a *graph.NotFoundError for graphs) and no report is produced.
//
// Ingredient cells hold the cocktail's amount text and technique cells hold
// the technique name; both use Absent when the cocktail lacks the element.
// Rows are sorted by element.
func Compare(g Lookup, names []string) (*Report, error) {
	recipes := make([]*recipe.Recipe, 0, len(names))
	for _, name := range names {
		r, err := g.Get(name)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	amounts := make([]map[string]string, len(recipes))
	techniques := make([]map[string]bool, len(recipes))
	allIngredients := make(map[string]bool)
	allTechniques := make(map[string]bool)

	for i, r := range recipes {
		amounts[i] = r.Amounts()
		for name := range amounts[i] {
			allIngredients[name] = true
		}

		techniques[i] = make(map[string]bool, len(r.Techniques))
		for _, t := range r.Techniques {
			techniques[i][t] = true
			allTechniques[t] = true
		}
	}

	rep := &Report{
		Columns:     append([]string{}, names...),
		Ingredients: []Row{},
		Techniques:  []Row{},
	}

	for _, ing := range sortedKeys(allIngredients) {
		row := Row{Element: ing, Cells: make([]string, len(recipes))}
		for i := range recipes {
			if amount, ok := amounts[i][ing]; ok {
				row.Cells[i] = amount
			} else {
				row.Cells[i] = Absent
			}
		}
		rep.Ingredients = append(rep.Ingredients, row)
	}

	for _, tech := range sortedKeys(allTechniques) {
		row := Row{Element: tech, Cells: make([]string, len(recipes))}
		for i := range recipes {
			if techniques[i][tech] {
				row.Cells[i] = tech
			} else {
				row.Cells[i] = Absent
			}
		}
		rep.Techniques = append(rep.Techniques, row)
	}

	return rep, nil
}

// Ingredient returns the ingredient row for element, if present.
func (r *Report) Ingredient(element string) (Row, bool) {
	return findRow(r.Ingredients, element)
}

// Technique returns the technique row for element, if present.
func (r *Report) Technique(element string) (Row, bool) {
	return findRow(r.Techniques, element)
}

func findRow(rows []Row, element string) (Row, bool) {
	for _, row := range rows {
		if row.Element == element {
			return row, true
		}
	}
	return Row{}, false
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
