package main

import (
	"fmt"

	"github.com/matsen/mixology/internal/catalog"
	"github.com/matsen/mixology/internal/config"
	"github.com/matsen/mixology/internal/logging"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/matsen/mixology/internal/storage"
	"github.com/spf13/cobra"
)

var (
	importDryRun  bool
	importReplace bool
	importColumn  int
)

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without writing")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the catalog instead of merging into it")
	importCmd.Flags().IntVar(&importColumn, "ingredients-column", 0, "Dataset column holding ingredient pairs (default from config)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import cocktails from a CSV dataset",
	Long: `Import cocktails from a CSV dataset.

The dataset needs a header row. Columns 0-3 are title, glass, garnish and
recipe text; the ingredients column (index 5 by default) holds a list of
[amount, ingredient] pairs such as [['2 oz', 'Gin'], ['1 oz', 'Lemon']].

Cocktails are matched by exact name: new names are added, changed
cocktails are updated in place. Rows that cannot be decoded and repeated
titles are skipped and reported.

Examples:
  mix import cocktails.csv
  mix import cocktails.csv --dry-run
  mix import cocktails.csv --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	New       int      `json:"new"`
	Updated   int      `json:"updated"`
	Unchanged int      `json:"unchanged"`
	Skipped   int      `json:"skipped"`
	Total     int      `json:"total"`
	DryRun    bool     `json:"dry_run,omitempty"`
	Errors    []string `json:"errors"`
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)
	log := logging.With("import")

	schema := cfg.Schema()
	if importColumn != 0 {
		schema.IngredientsColumn = importColumn
	}

	incoming, rowErrs, err := catalog.LoadFile(args[0], schema)
	for _, rowErr := range rowErrs {
		log.Warn().Err(rowErr).Msg("skipped row")
	}
	if err != nil {
		exitWithError(exitCodeFor(err), "importing %s: %v", args[0], err)
	}

	var existing []*recipe.Recipe
	if !importReplace {
		existing = mustLoadRecipes(root)
	}

	plan := storage.PlanImport(existing, incoming)
	result := ImportResult{
		Skipped: len(rowErrs),
		DryRun:  importDryRun,
		Errors:  errorsToStrings(rowErrs),
	}
	for _, p := range plan {
		switch p.Action {
		case storage.ActionNew:
			result.New++
		case storage.ActionUpdate:
			result.Updated++
		case storage.ActionUnchanged:
			result.Unchanged++
		}
	}

	merged := storage.ApplyImport(existing, plan)
	result.Total = len(merged)

	if !importDryRun {
		if err := storage.WriteAll(config.CatalogPath(root), merged); err != nil {
			exitWithError(ExitError, "writing catalog: %v", err)
		}

		db := mustOpenDatabase(root)
		defer db.Close()
		if _, err := db.Rebuild(merged); err != nil {
			exitWithError(ExitError, "rebuilding search cache: %v", err)
		}
	}

	log.Info().
		Str("file", args[0]).
		Int("new", result.New).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Bool("dry_run", importDryRun).
		Msg("import finished")

	if humanOutput {
		printImportResult(result)
	} else {
		outputJSON(result)
	}
	return nil
}

func printImportResult(r ImportResult) {
	if r.DryRun {
		fmt.Println("Dry run - nothing written")
	}
	fmt.Printf("  Added:     %d new cocktails\n", r.New)
	fmt.Printf("  Updated:   %d existing cocktails\n", r.Updated)
	fmt.Printf("  Unchanged: %d\n", r.Unchanged)
	fmt.Printf("  Skipped:   %d (malformed rows or duplicate titles)\n", r.Skipped)
	fmt.Printf("  Catalog:   %d cocktails\n", r.Total)
	if len(r.Errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range r.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}

// errorsToStrings converts a slice of errors to strings.
func errorsToStrings(errs []error) []string {
	strs := make([]string, len(errs))
	for i, e := range errs {
		strs[i] = e.Error()
	}
	return strs
}
