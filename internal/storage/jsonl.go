// Package storage handles library persistence in JSONL and SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/mixology/internal/recipe"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// Import actions.
const (
	ActionNew       = "new"
	ActionUpdate    = "update"
	ActionUnchanged = "unchanged"
)

// RecipeWithAction pairs an incoming recipe with what importing it will do.
type RecipeWithAction struct {
	Recipe      *recipe.Recipe
	Action      string // new, update, unchanged
	ExistingIdx int    // Index in existing recipes (for update/unchanged)
}

// ReadAll reads all recipes from a JSONL file. Technique sets are recomputed
// from the recipe text, so stored techniques are never trusted.
func ReadAll(path string) ([]*recipe.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Missing file is an empty library
		}
		return nil, fmt.Errorf("opening cocktails file: %w", err)
	}
	defer f.Close()

	var recipes []*recipe.Recipe
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var r recipe.Recipe
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		r.Normalize()
		recipes = append(recipes, &r)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cocktails file: %w", err)
	}

	return recipes, nil
}

// WriteAll writes all recipes to a JSONL file, replacing existing content.
func WriteAll(path string, recipes []*recipe.Recipe) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cocktails file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, r := range recipes {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding recipe %d: %w", i, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing recipe %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing cocktails file: %w", err)
	}
	return nil
}

// FindByName searches for a recipe by exact name.
func FindByName(recipes []*recipe.Recipe, name string) (int, bool) {
	for i, r := range recipes {
		if r.Name == name {
			return i, true
		}
	}
	return -1, false
}

// PlanImport decides, for each incoming recipe, whether it is new, replaces an
// existing recipe of the same name, or matches one exactly.
func PlanImport(existing, incoming []*recipe.Recipe) []RecipeWithAction {
	plan := make([]RecipeWithAction, 0, len(incoming))
	for _, r := range incoming {
		idx, found := FindByName(existing, r.Name)
		switch {
		case !found:
			plan = append(plan, RecipeWithAction{Recipe: r, Action: ActionNew, ExistingIdx: -1})
		case sameRecipe(existing[idx], r):
			plan = append(plan, RecipeWithAction{Recipe: r, Action: ActionUnchanged, ExistingIdx: idx})
		default:
			plan = append(plan, RecipeWithAction{Recipe: r, Action: ActionUpdate, ExistingIdx: idx})
		}
	}
	return plan
}

// ApplyImport returns existing with updates applied in place and new recipes
// appended in plan order.
func ApplyImport(existing []*recipe.Recipe, plan []RecipeWithAction) []*recipe.Recipe {
	out := make([]*recipe.Recipe, len(existing))
	copy(out, existing)
	for _, p := range plan {
		switch p.Action {
		case ActionNew:
			out = append(out, p.Recipe)
		case ActionUpdate:
			out[p.ExistingIdx] = p.Recipe
		}
	}
	return out
}

func sameRecipe(a, b *recipe.Recipe) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && string(ja) == string(jb)
}
