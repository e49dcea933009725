package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/storage"
	"github.com/spf13/cobra"
)

var (
	summaryTop        int
	summaryComponents bool
)

func init() {
	summaryCmd.Flags().IntVar(&summaryTop, "top", 0, "Also list the N most used ingredients")
	summaryCmd.Flags().BoolVar(&summaryComponents, "components", false, "Also list connected components")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show graph statistics",
	Long: `Show statistics for the similarity graph at the configured threshold:
node and edge counts, density, connected components, average clustering
coefficient and average degree.

Examples:
  mix summary --human
  mix summary --top 10 --components`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

// SummaryResult is the response for the summary command.
type SummaryResult struct {
	graph.Summary
	TopIngredients []storage.IngredientUsage `json:"top_ingredients,omitempty"`
	Components     [][]string                `json:"components,omitempty"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)
	g := mustLoadGraph(root, cfg)

	result := SummaryResult{Summary: g.Summary()}

	if summaryTop > 0 {
		db := mustOpenSearchCache(root)
		defer db.Close()
		top, err := db.TopIngredients(summaryTop)
		if err != nil {
			exitWithError(ExitError, "counting ingredients: %v", err)
		}
		result.TopIngredients = top
	}
	if summaryComponents {
		result.Components = g.Components()
	}

	if humanOutput {
		printSummary(os.Stdout, result.Summary)
		if len(result.TopIngredients) > 0 {
			fmt.Println("\nMost used ingredients:")
			for i, u := range result.TopIngredients {
				fmt.Printf("%3d. %s  %d\n", i+1, padRight(u.Name, 30), u.Cocktails)
			}
		}
		if len(result.Components) > 0 {
			fmt.Println("\nConnected components:")
			for i, c := range result.Components {
				fmt.Printf("%3d. (%d) %s\n", i+1, len(c), truncateString(formatIDList(c), TextWrapWidth))
			}
		}
	} else {
		outputJSON(result)
	}
	return nil
}

// printSummary writes graph statistics in the layout of the shell debug view.
func printSummary(w io.Writer, s graph.Summary) {
	fmt.Fprintf(w, "Similarity threshold: %d\n", s.Threshold)
	fmt.Fprintln(w, "Graph Summary:")
	fmt.Fprintf(w, "Number of Nodes: %d\n", s.NodeCount)
	fmt.Fprintf(w, "Number of Edges: %d\n", s.EdgeCount)
	fmt.Fprintf(w, "Density: %.4f\n", s.Density)
	fmt.Fprintf(w, "Number of Connected Components: %d\n", s.ComponentCount)
	fmt.Fprintf(w, "Average Clustering Coefficient: %.4f\n", s.AvgClustering)
	fmt.Fprintf(w, "Average Node Degree: %.2f\n", s.AvgDegree)
	fmt.Fprintf(w, "Isolated Cocktails: %d\n", s.IsolatedCount)
}
