package main

import (
	"fmt"

	"github.com/matsen/mixology/internal/config"
	"github.com/matsen/mixology/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search cache from the catalog",
	Long: `Rebuild the SQLite search cache from cocktails.jsonl.

Use this after pulling changes from git, after editing the catalog by hand,
or if the cache becomes corrupted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status    string `json:"status"`
	Cocktails int    `json:"cocktails"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	db := mustOpenDatabase(root)
	defer db.Close()

	count, err := db.RebuildFromJSONL(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding search cache: %v", err)
	}
	logging.Info().Int("cocktails", count).Msg("search cache rebuilt")

	if humanOutput {
		fmt.Printf("Rebuilt search cache with %d cocktails\n", count)
	} else {
		outputJSON(RebuildResult{Status: "rebuilt", Cocktails: count})
	}
	return nil
}
