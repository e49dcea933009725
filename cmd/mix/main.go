// Package main provides the mix CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/matsen/mixology/internal/config"
	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/logging"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/matsen/mixology/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mix",
	Short: "Explore a cocktail catalog as a similarity graph",
	Long: `mix links cocktails that share ingredients and preparation techniques.

Two cocktails are joined when 3 points per shared ingredient plus 1 point
per shared technique (SHAKE, STIR, MUDDLE, ...) reaches the threshold
(default 7). Use it to look up recipes, compare them side by side, and find
the chain of closest relatives between any two drinks.

The catalog lives in git-versionable JSONL with an ephemeral SQLite cache
for text search. All commands output JSON by default; pass --human for
readable text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupEnvironment,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// setupEnvironment loads .env overrides and configures logging.
func setupEnvironment(cmd *cobra.Command, args []string) error {
	// Missing .env is fine
	_ = godotenv.Load()

	level, format := config.LogSettings()
	cfg := logging.DefaultConfig()
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	logging.Init(cfg)
	return nil
}

// getStartingDirectory returns the directory to start searching for a library.
// Checks global config library_path first, then current working directory.
func getStartingDirectory() (string, int) {
	if root := config.GetLibraryPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindLibrary finds and validates the library, exits on error.
// Returns the library root path.
func mustFindLibrary() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindLibrary(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		os.Exit(ExitConfigError)
	}
	return root
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenDatabase opens the SQLite cache, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(root string) *storage.DB {
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustOpenSearchCache opens the SQLite cache and fills it from the catalog
// when it is empty, as after a fresh clone. The caller closes the DB.
func mustOpenSearchCache(root string) *storage.DB {
	db := mustOpenDatabase(root)

	count, err := db.Count()
	if err != nil {
		db.Close()
		exitWithError(ExitError, "reading search cache: %v", err)
	}
	if count > 0 {
		return db
	}

	rebuilt, err := db.RebuildFromJSONL(config.CatalogPath(root))
	if err != nil {
		db.Close()
		exitWithError(ExitDataError, "rebuilding search cache: %v", err)
	}
	if rebuilt > 0 {
		logging.Info().Int("cocktails", rebuilt).Msg("search cache was empty, rebuilt from catalog")
	}
	return db
}

// mustLoadRecipes reads the catalog, exits on error.
func mustLoadRecipes(root string) []*recipe.Recipe {
	recipes, err := storage.ReadAll(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading catalog: %v", err)
	}
	return recipes
}

// mustLoadGraph builds the similarity graph for the library, exits on error.
func mustLoadGraph(root string, cfg *config.Config) *graph.Graph {
	recipes := mustLoadRecipes(root)

	start := time.Now()
	g, err := graph.Build(recipes, cfg.GraphOptions())
	if err != nil {
		if errors.Is(err, graph.ErrEmptyCatalog) {
			exitWithError(ExitDataError, "catalog is empty\n\nRun 'mix import <csv>' to add cocktails.")
		}
		exitWithError(exitCodeFor(err), "building graph: %v", err)
	}

	logging.Debug().
		Int("nodes", g.Len()).
		Int("edges", g.EdgeCount()).
		Int("threshold", cfg.Threshold).
		Dur("took", time.Since(start)).
		Msg("graph built")
	return g
}

// loadLibraryGraph is the common prologue for graph commands.
func loadLibraryGraph() (*config.Config, *graph.Graph) {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)
	return cfg, mustLoadGraph(root, cfg)
}
