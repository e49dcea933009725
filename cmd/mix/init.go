package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/mixology/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new cocktail library",
	Long: `Initialize a new cocktail library in the current directory.

Creates:
  .mixology/
  ├── cocktails.jsonl  # Empty catalog
  ├── config.json      # Default config (threshold 7)
  └── cache/           # SQLite search cache (gitignored)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if config.IsLibrary(root) {
		exitWithError(ExitError, "directory already contains a mixology library")
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .mixology directory: %v", err)
	}

	catalogFile, err := os.Create(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", config.CatalogFile, err)
	}
	catalogFile.Close()

	if err := config.Default().Save(root); err != nil {
		exitWithError(ExitError, "creating %s: %v", config.ConfigFile, err)
	}

	gitignore := []byte(config.CacheDir + "/\n")
	if err := os.WriteFile(filepath.Join(config.LibraryPath(root), ".gitignore"), gitignore, 0644); err != nil {
		exitWithError(ExitError, "creating .gitignore: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized mixology library in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
