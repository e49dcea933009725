package main

import (
	"fmt"
	"os"

	"github.com/matsen/mixology/internal/fuzzy"
	"github.com/matsen/mixology/internal/logging"
	"github.com/spf13/cobra"
)

var withThreshold float64

func init() {
	withCmd.Flags().Float64Var(&withThreshold, "confidence", fuzzy.DefaultResolveThreshold, "Minimum confidence for resolving a misspelled ingredient")
	rootCmd.AddCommand(withCmd)
}

var withCmd = &cobra.Command{
	Use:   "with <ingredient>",
	Short: "List cocktails that use an ingredient",
	Long: `List cocktails that use an ingredient, in catalog order.

An ingredient name that is not in the catalog is resolved to the closest
known ingredient by edit distance, provided the match is confident enough.

Examples:
  mix with Campari
  mix with "lime juce"`,
	Args: cobra.ExactArgs(1),
	RunE: runWith,
}

// WithResult is the response for the with command.
type WithResult struct {
	Query      string   `json:"query"`
	Ingredient string   `json:"ingredient"`
	Confidence float64  `json:"confidence"`
	Cocktails  []string `json:"cocktails"`
}

func runWith(cmd *cobra.Command, args []string) error {
	_, g := loadLibraryGraph()
	query := args[0]

	ingredient, confidence, ok := query, 1.0, true
	if len(g.WithIngredient(query)) == 0 {
		ingredient, confidence, ok = fuzzy.Resolve(query, g.IngredientNames(), withThreshold)
	}
	if !ok {
		exitWithError(ExitNotFound, "no ingredient matches %q", query)
	}
	if ingredient != query {
		logging.Debug().Str("query", query).Str("ingredient", ingredient).Float64("confidence", confidence).Msg("resolved ingredient")
	}

	result := WithResult{
		Query:      query,
		Ingredient: ingredient,
		Confidence: confidence,
		Cocktails:  g.WithIngredient(ingredient),
	}

	if humanOutput {
		if ingredient != query {
			fmt.Printf("Showing results for '%s'\n", ingredient)
		}
		fmt.Printf("%d cocktails use %s:\n", len(result.Cocktails), ingredient)
		printNumbered(os.Stdout, result.Cocktails)
	} else {
		outputJSON(result)
	}
	return nil
}
