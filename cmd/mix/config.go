package main

import (
	"fmt"

	"github.com/matsen/mixology/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set library configuration values",
	Long: `Get or set library configuration values.

Usage:
  mix config                  # Show all config
  mix config threshold        # Get specific value
  mix config threshold 9      # Set value

Keys:
  threshold           Minimum similarity score for a link (default 7)
  fuzzy_cutoff        Minimum ratio for name suggestions, in (0, 1] (default 0.6)
  fuzzy_limit         Maximum name suggestions (default 5)
  seed                Seed for 'mix random', 0 for time-seeded (default 0)
  ingredients_column  Dataset column holding ingredient pairs (default 5)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)

	switch len(args) {
	case 0:
		if humanOutput {
			for _, key := range config.Keys {
				value, _ := cfg.Get(key)
				fmt.Printf("%s %s\n", padRight(key+":", 20), value)
			}
		} else {
			outputJSON(cfg)
		}

	case 1:
		value, err := cfg.Get(args[0])
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{args[0]: value})
		}

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if err := cfg.Save(root); err != nil {
			exitWithError(ExitError, "saving config: %v", err)
		}
		value, _ := cfg.Get(args[0])
		if humanOutput {
			fmt.Printf("Set %s to %s\n", args[0], value)
		} else {
			outputJSON(UpdateResponse{Status: "updated", Key: args[0], Value: value})
		}
	}
	return nil
}
