package main

import (
	"fmt"

	"github.com/matsen/mixology/internal/fuzzy"
	"github.com/spf13/cobra"
)

var (
	suggestLimit  int
	suggestCutoff float64
)

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "Maximum suggestions (default from config)")
	suggestCmd.Flags().Float64Var(&suggestCutoff, "cutoff", 0, "Minimum similarity ratio in (0, 1] (default from config)")
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest cocktail names close to a misspelled name",
	Long: `Suggest cocktail names close to a query, best match first.

Names are ranked by sequence-matcher similarity; names at or above the
cutoff (default 0.6) are kept, up to the limit (default 5). Equal scores
keep catalog order. No match is not an error.

Examples:
  mix suggest Margarta
  mix suggest negroni --limit 10 --cutoff 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

// SuggestResult is the response for the suggest command.
type SuggestResult struct {
	Query   string        `json:"query"`
	Matches []fuzzy.Match `json:"matches"`
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, g := loadLibraryGraph()

	limit, cutoff := cfg.FuzzyLimit, cfg.FuzzyCutoff
	if cmd.Flags().Changed("limit") {
		limit = suggestLimit
	}
	if cmd.Flags().Changed("cutoff") {
		if suggestCutoff <= 0 || suggestCutoff > 1 {
			exitWithError(ExitError, "cutoff must be in (0, 1], got %g", suggestCutoff)
		}
		cutoff = suggestCutoff
	}

	matches := fuzzy.CloseMatches(args[0], g.Names(), limit, cutoff)

	if humanOutput {
		if len(matches) == 0 {
			fmt.Printf("No close matches found for '%s'.\n", args[0])
			return nil
		}
		fmt.Printf("By '%s', did you mean:\n", args[0])
		for i, m := range matches {
			fmt.Printf("%d. %s (%.2f)\n", i+1, m.Name, m.Ratio)
		}
	} else {
		outputJSON(SuggestResult{Query: args[0], Matches: matches})
	}
	return nil
}
