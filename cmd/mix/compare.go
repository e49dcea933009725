package main

import (
	"fmt"

	"github.com/matsen/mixology/internal/report"
	"github.com/matsen/mixology/internal/similarity"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <name> <name> [name...]",
	Short: "Compare cocktails side by side",
	Long: `Compare cocktails side by side.

Prints the similarity score of the first two cocktails with the shared
ingredients and techniques behind it, followed by a table of every
ingredient (with amounts) and technique across all named cocktails.
An "X" marks an element a cocktail does not use.

Examples:
  mix compare Margarita Daiquiri
  mix compare Negroni Boulevardier "Old Pal" --human`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

// CompareResult is the response for the compare command.
type CompareResult struct {
	Similarity similarity.Breakdown `json:"similarity"`
	Linked     bool                 `json:"linked"`
	Report     *report.Report       `json:"report"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, g := loadLibraryGraph()

	for _, name := range args {
		mustGet(g, name)
	}

	rep, err := report.Compare(g, args)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	a, _ := g.Get(args[0])
	b, _ := g.Get(args[1])
	breakdown := similarity.Explain(a, b)

	result := CompareResult{
		Similarity: breakdown,
		Linked:     args[0] != args[1] && breakdown.Score >= cfg.Threshold,
		Report:     rep,
	}

	if humanOutput {
		fmt.Printf("Similarity between %s and %s: %d\n", args[0], args[1], breakdown.Score)
		printBreakdown(breakdown)
		fmt.Println()
		fmt.Print(report.FormatGrid(rep))
	} else {
		outputJSON(result)
	}
	return nil
}

func printBreakdown(b similarity.Breakdown) {
	if len(b.SharedIngredients) > 0 {
		fmt.Printf("  Shared ingredients: %s\n", formatIDList(b.SharedIngredients))
	}
	if len(b.SharedTechniques) > 0 {
		fmt.Printf("  Shared techniques:  %s\n", formatIDList(b.SharedTechniques))
	}
}
