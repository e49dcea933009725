package main

import (
	"fmt"
	"strings"

	"github.com/matsen/mixology/internal/recipe"
	"github.com/spf13/cobra"
)

var (
	findLimit int
	findField string
)

func init() {
	findCmd.Flags().IntVar(&findLimit, "limit", DefaultFindLimit, "Maximum results to return")
	findCmd.Flags().StringVar(&findField, "field", "", "Restrict to one field: name, ingredient, glass, garnish")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <text>",
	Short: "Full-text search over the catalog",
	Long: `Full-text search over cocktail names, ingredients, glass, garnish and
recipe text, using the SQLite search cache. Results are in catalog order.

Run 'mix rebuild' if the cache is out of date.

Examples:
  mix find absinthe
  mix find coupe --field glass
  mix find "orange peel" --field garnish --human`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	db := mustOpenSearchCache(root)
	defer db.Close()

	var results []*recipe.Recipe
	var err error
	if findField != "" {
		results, err = db.SearchField(findField, args[0], findLimit)
	} else {
		results, err = db.Search(args[0], findLimit)
	}
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	if results == nil {
		results = []*recipe.Recipe{}
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No cocktails found")
			return nil
		}
		fmt.Printf("Found %d cocktails:\n\n", len(results))
		for _, r := range results {
			fmt.Printf("%s  [%s]\n", r.Name, r.Glass)
			fmt.Printf("  %s\n", truncateString(strings.Join(r.SortedIngredientNames(), ", "), TextWrapWidth))
		}
	} else {
		outputJSON(results)
	}
	return nil
}
