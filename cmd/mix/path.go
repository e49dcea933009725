package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/report"
	"github.com/spf13/cobra"
)

var pathNoReport bool

func init() {
	pathCmd.Flags().BoolVar(&pathNoReport, "no-report", false, "Omit the comparison table of cocktails on the path")
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Find the chain of closest relatives between two cocktails",
	Long: `Find the lowest-cost chain of linked cocktails between two cocktails.

Each link costs 1/score, so the path prefers hops through closely related
drinks. The cocktails on the path are then compared side by side.

Exits with code 4 if a name is unknown and code 5 if the two cocktails are
not connected at the current threshold.

Examples:
  mix path Margarita Manhattan
  mix path Mojito "Old Fashioned" --human`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

// Hop is one link on a path.
type Hop struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Score int    `json:"score"`
}

// PathResult is the response for the path command.
type PathResult struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Path   []string       `json:"path"`
	Hops   []Hop          `json:"hops"`
	Cost   float64        `json:"cost"`
	Report *report.Report `json:"report,omitempty"`
}

func runPath(cmd *cobra.Command, args []string) error {
	_, g := loadLibraryGraph()
	from, to := args[0], args[1]

	mustGet(g, from)
	mustGet(g, to)

	path, err := g.ShortestPath(from, to)
	if err != nil {
		if errors.Is(err, graph.ErrNoPath) {
			exitWithError(ExitNoPath, "no path exists between %q and %q", from, to)
		}
		exitWithError(exitCodeFor(err), "%v", err)
	}

	result := buildPathResult(g, from, to, path)
	if !pathNoReport {
		rep, err := report.Compare(g, path)
		if err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
		result.Report = rep
	}

	if humanOutput {
		fmt.Printf("Shortest path from '%s' to '%s': %s\n", from, to, strings.Join(path, " -> "))
		if result.Report != nil {
			fmt.Println()
			fmt.Print(report.FormatGrid(result.Report))
		}
	} else {
		outputJSON(result)
	}
	return nil
}

func buildPathResult(g *graph.Graph, from, to string, path []string) PathResult {
	hops := make([]Hop, 0, len(path))
	for i := 1; i < len(path); i++ {
		e, _ := g.EdgeBetween(path[i-1], path[i])
		hops = append(hops, Hop{From: path[i-1], To: path[i], Score: e.Score})
	}
	cost, _ := g.PathCost(path)
	return PathResult{From: from, To: to, Path: path, Hops: hops, Cost: cost}
}
