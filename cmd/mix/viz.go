package main

import (
	"fmt"
	"os"

	"github.com/matsen/mixology/internal/viz"
	"github.com/spf13/cobra"
)

var (
	vizOutput       string
	vizLayout       string
	vizPath         []string
	vizSkipIsolated bool
)

func init() {
	vizCmd.Flags().StringVarP(&vizOutput, "output", "o", "", "Output file path (default: stdout)")
	vizCmd.Flags().StringVar(&vizLayout, "layout", "force", "Layout algorithm: force, circle, grid, or concentric")
	vizCmd.Flags().StringSliceVar(&vizPath, "path", nil, "Highlight the shortest path between two cocktails (from,to)")
	vizCmd.Flags().BoolVar(&vizSkipIsolated, "skip-isolated", false, "Leave out cocktails with no links")
	rootCmd.AddCommand(vizCmd)
}

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Generate similarity graph visualization",
	Long: `Generate an interactive HTML visualization of the similarity graph.

Cocktails are sized by how many links they have; link width follows the
similarity score. Hover for recipe details, click to focus a neighborhood.

Examples:
  # Generate HTML to stdout
  mix viz > graph.html

  # Generate to file with a highlighted path
  mix viz --output graph.html --path Margarita,Manhattan

  # Use circular layout without isolated cocktails
  mix viz --layout circle --skip-isolated -o graph.html`,
	Args: cobra.NoArgs,
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	_, g := loadLibraryGraph()

	opts := viz.BuildOptions{SkipIsolated: vizSkipIsolated}
	if len(vizPath) > 0 {
		if len(vizPath) != 2 {
			exitWithError(ExitError, "--path takes exactly two cocktails, got %d", len(vizPath))
		}
		mustGet(g, vizPath[0])
		mustGet(g, vizPath[1])
		path, err := g.ShortestPath(vizPath[0], vizPath[1])
		if err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
		opts.Path = path
	}

	htmlOpts := viz.DefaultOptions()
	htmlOpts.Layout = vizLayout
	html, err := viz.GenerateHTML(viz.BuildGraphData(g, opts), htmlOpts)
	if err != nil {
		return fmt.Errorf("generating HTML: %w", err)
	}

	if vizOutput == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(vizOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if humanOutput {
		fmt.Printf("Wrote visualization to %s\n", vizOutput)
	} else {
		outputJSON(StatusResponse{Status: "written", Path: vizOutput})
	}
	return nil
}
