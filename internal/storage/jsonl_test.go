package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matsen/mixology/internal/recipe"
)

func testRecipes() []*recipe.Recipe {
	return []*recipe.Recipe{
		recipe.New("Margarita", "Coupe", "Lime wheel", "SHAKE with ice, STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "Tequila"},
			{Amount: "1 oz", Name: "Lime Juice"},
			{Amount: "3/4 oz", Name: "Cointreau"},
		}),
		recipe.New("Daiquiri", "Coupe", "", "SHAKE and STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "Rum"},
			{Amount: "1 oz", Name: "Lime Juice"},
			{Amount: "3/4 oz", Name: "Simple Syrup"},
		}),
		recipe.New("Old Fashioned", "Rocks", "Orange peel", "STIR with a large cube", []recipe.Pair{
			{Amount: "2 oz", Name: "Bourbon"},
			{Amount: "2 dashes", Name: "Angostura Bitters"},
			{Amount: "1 barspoon", Name: "Simple Syrup"},
		}),
	}
}

func TestReadAll_Missing(t *testing.T) {
	recipes, err := ReadAll(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("ReadAll() returned %d recipes, want 0", len(recipes))
	}
}

func TestWriteAllReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocktails.jsonl")
	want := testRecipes()

	if err := WriteAll(path, want); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ReadAll() returned %d recipes, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("recipe %d name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if len(got[i].Ingredients) != len(want[i].Ingredients) {
			t.Errorf("recipe %d has %d ingredients, want %d", i, len(got[i].Ingredients), len(want[i].Ingredients))
		}
	}

	if got[1].Garnish != recipe.NoneSentinel {
		t.Errorf("Daiquiri garnish = %q, want %q", got[1].Garnish, recipe.NoneSentinel)
	}
	if amt := got[0].Ingredients[2].Amount; amt == nil || *amt != 0.75 {
		t.Errorf("Cointreau amount = %v, want 0.75", amt)
	}
}

func TestReadAll_RecomputesTechniques(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocktails.jsonl")
	line := `{"name":"Negroni","glass":"Rocks","garnish":"Orange","recipe":"STIR and STRAIN","ingredients":[],"techniques":["BOGUS"]}` + "\n"
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	recipes, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	got := recipes[0].Techniques
	if len(got) != 2 || got[0] != "STIR" || got[1] != "STRAIN" {
		t.Errorf("Techniques = %v, want [STIR STRAIN]", got)
	}
}

func TestReadAll_BadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocktails.jsonl")
	if err := os.WriteFile(path, []byte("{\"name\":\"A\"}\n\nnot json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadAll(path); err == nil {
		t.Error("ReadAll() expected error for malformed line")
	}
}

func TestFindByName(t *testing.T) {
	recipes := testRecipes()

	idx, found := FindByName(recipes, "Daiquiri")
	if !found || idx != 1 {
		t.Errorf("FindByName(Daiquiri) = %d, %v; want 1, true", idx, found)
	}

	if _, found := FindByName(recipes, "daiquiri"); found {
		t.Error("FindByName should be case-sensitive")
	}
}

func TestPlanImport(t *testing.T) {
	existing := testRecipes()[:2]

	changed := recipe.New("Daiquiri", "Coupe", "Lime", "SHAKE and STRAIN", []recipe.Pair{
		{Amount: "2 oz", Name: "Rum"},
	})
	incoming := []*recipe.Recipe{
		testRecipes()[0], // identical Margarita
		changed,
		testRecipes()[2],
	}

	plan := PlanImport(existing, incoming)
	wantActions := []string{ActionUnchanged, ActionUpdate, ActionNew}
	if len(plan) != len(wantActions) {
		t.Fatalf("PlanImport() returned %d entries, want %d", len(plan), len(wantActions))
	}
	for i, want := range wantActions {
		if plan[i].Action != want {
			t.Errorf("plan[%d].Action = %q, want %q", i, plan[i].Action, want)
		}
	}
	if plan[1].ExistingIdx != 1 {
		t.Errorf("plan[1].ExistingIdx = %d, want 1", plan[1].ExistingIdx)
	}

	merged := ApplyImport(existing, plan)
	if len(merged) != 3 {
		t.Fatalf("ApplyImport() returned %d recipes, want 3", len(merged))
	}
	if merged[1].Garnish != "Lime" {
		t.Errorf("updated Daiquiri garnish = %q, want Lime", merged[1].Garnish)
	}
	if merged[2].Name != "Old Fashioned" {
		t.Errorf("appended recipe = %q, want Old Fashioned", merged[2].Name)
	}
	if existing[1].Garnish != recipe.NoneSentinel {
		t.Error("ApplyImport modified the existing slice")
	}
}
