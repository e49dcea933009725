package main

import (
	"errors"
	"os"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one cocktail by exact name",
	Long: `Show one cocktail by its exact name.

When the name is not in the catalog, close matches are suggested and the
command exits with code 4.

Example:
  mix get "Corpse Reviver #2"`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	db := mustOpenSearchCache(root)
	r, err := db.GetByName(args[0])
	db.Close()
	if err != nil {
		exitWithError(ExitError, "reading search cache: %v", err)
	}
	if r == nil {
		// Suggestions need the graph's name index and fuzzy settings.
		r = mustGetFromGraph(root, args[0])
	}

	if humanOutput {
		printRecipe(os.Stdout, r)
	} else {
		outputJSON(r)
	}
	return nil
}

func mustGetFromGraph(root, name string) *recipe.Recipe {
	g := mustLoadGraph(root, mustLoadConfig(root))
	r, err := g.Get(name)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			exitNotFound(name, g.FuzzySearch(name))
		}
		exitWithError(exitCodeFor(err), "%v", err)
	}
	return r
}

// mustGet resolves a cocktail name for commands that take several names.
func mustGet(g *graph.Graph, name string) {
	if !g.Exists(name) {
		exitNotFound(name, g.FuzzySearch(name))
	}
}
