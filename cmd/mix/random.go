package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var randomSeed uint64

func init() {
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Seed for a reproducible pick (default from config, 0 for time-seeded)")
	rootCmd.AddCommand(randomCmd)
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random cocktail",
	Long: `Show a cocktail picked uniformly at random from the catalog.

Examples:
  mix random
  mix random --seed 42`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg, g := loadLibraryGraph()

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = randomSeed
	}

	r := g.Random(newRand(seed))
	if humanOutput {
		printRecipe(os.Stdout, r)
	} else {
		outputJSON(r)
	}
	return nil
}

// newRand returns a deterministic source for a non-zero seed and a
// time-seeded one otherwise.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
