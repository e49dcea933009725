package main

import (
	"os"
	"strings"

	"github.com/matsen/mixology/internal/config"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/matsen/mixology/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)

	getCmd.ValidArgsFunction = completeCocktailNames
	compareCmd.ValidArgsFunction = completeCocktailNames
	pathCmd.ValidArgsFunction = completeCocktailNames
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell. Cocktail names complete
for get, compare and path.

Bash:
  $ source <(mix completion bash)

Zsh:
  $ mix completion zsh > "${fpath[1]}/_mix"

Fish:
  $ mix completion fish > ~/.config/fish/completions/mix.fish

PowerShell:
  PS> mix completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

// completeCocktailNames offers catalog names that start with the typed prefix.
// Completion must never exit, so failures yield no suggestions.
func completeCocktailNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	start, code := getStartingDirectory()
	if code != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	root, err := config.FindLibrary(start)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	recipes, err := completionRecipes(root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completionRecipes lists cocktails from the search cache when one has been
// built, and from the catalog otherwise.
func completionRecipes(root string) ([]*recipe.Recipe, error) {
	if _, err := os.Stat(config.DBPath(root)); err != nil {
		return storage.ReadAll(config.CatalogPath(root))
	}

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	recipes, err := db.ListAll(0)
	if err != nil || len(recipes) == 0 {
		return storage.ReadAll(config.CatalogPath(root))
	}
	return recipes, nil
}

// filterPrefix keeps names starting with prefix, ignoring case.
func filterPrefix(names []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), prefix) {
			out = append(out, n)
		}
	}
	return out
}
