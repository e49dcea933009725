package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/logging"
	"github.com/matsen/mixology/internal/report"
	"github.com/matsen/mixology/internal/similarity"
	"github.com/spf13/cobra"
)

var shellSeed uint64

func init() {
	shellCmd.Flags().Uint64Var(&shellSeed, "seed", 0, "Seed for random picks (default from config, 0 for time-seeded)")
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Explore the catalog from an interactive menu",
	Long: `Explore the catalog from an interactive numbered menu.

Options are search, random, compare, shortest path and exit. Typing
"debug" at the prompt prints the graph summary. End of input exits.

Output is always human-readable.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, g := loadLibraryGraph()

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = shellSeed
	}

	fmt.Println("Welcome to the Cocktail Calculator!")
	s := newSession(g, os.Stdin, os.Stdout, newRand(seed))
	return s.run()
}

// session is one interactive menu loop over a graph.
type session struct {
	g   *graph.Graph
	in  *bufio.Scanner
	out io.Writer
	rng *rand.Rand
}

// errEOF ends the session when input runs out mid-prompt.
var errEOF = errors.New("end of input")

func newSession(g *graph.Graph, in io.Reader, out io.Writer, rng *rand.Rand) *session {
	return &session{g: g, in: bufio.NewScanner(in), out: out, rng: rng}
}

func (s *session) run() error {
	log := logging.With("shell")
	for {
		fmt.Fprintln(s.out, "\nChoose an option:")
		fmt.Fprintln(s.out, "0. Search a cocktail")
		fmt.Fprintln(s.out, "1. View a random cocktail")
		fmt.Fprintln(s.out, "2. Compare two cocktails")
		fmt.Fprintln(s.out, "3. Find the shortest path between two cocktails")
		fmt.Fprintln(s.out, "4. Exit")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.finish(err)
		}
		log.Debug().Str("choice", choice).Msg("menu")

		switch choice {
		case "0":
			err = s.search()
		case "1":
			printRecipe(s.out, s.g.Random(s.rng))
		case "2":
			err = s.compare()
		case "3":
			err = s.path()
		case "4":
			fmt.Fprintln(s.out, "Exiting. Cheers!")
			return nil
		case "debug":
			printSummary(s.out, s.g.Summary())
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish treats running out of input as a clean exit.
func (s *session) finish(err error) error {
	if errors.Is(err, errEOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// promptCocktail asks for a cocktail name. ok is false when the name is not
// in the graph.
func (s *session) promptCocktail(text string) (string, bool, error) {
	name, err := s.prompt(text)
	if err != nil {
		return "", false, err
	}
	if !s.g.Exists(name) {
		fmt.Fprintln(s.out, "Invalid cocktail. Please try again.")
		return name, false, nil
	}
	return name, true, nil
}

func (s *session) search() error {
	name, err := s.prompt("Enter the name of the cocktail to search: ")
	if err != nil {
		return err
	}

	if r, err := s.g.Get(name); err == nil {
		printRecipe(s.out, r)
		return nil
	}

	fmt.Fprintf(s.out, "\nError: Cocktail '%s' not found in the graph. Searching for close matches...\n", name)
	matches := s.g.FuzzySearch(name)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "\nNo close matches found for '%s'. Please try a different name.\n", name)
		return nil
	}
	fmt.Fprintf(s.out, "\nBy '%s', did you mean:\n", name)
	printNumbered(s.out, matches)
	return nil
}

func (s *session) compare() error {
	a, ok, err := s.promptCocktail("Enter the first cocktail name: ")
	if err != nil || !ok {
		return err
	}
	b, ok, err := s.promptCocktail("Enter the second cocktail name: ")
	if err != nil || !ok {
		return err
	}

	ra, _ := s.g.Get(a)
	rb, _ := s.g.Get(b)
	fmt.Fprintf(s.out, "\nSimilarity between %s and %s: %d\n", a, b, similarity.Score(ra, rb))
	return s.printReport([]string{a, b})
}

func (s *session) path() error {
	from, ok, err := s.promptCocktail("Enter the origin cocktail name: ")
	if err != nil || !ok {
		return err
	}
	to, ok, err := s.promptCocktail("Enter the target cocktail name: ")
	if err != nil || !ok {
		return err
	}

	path, err := s.g.ShortestPath(from, to)
	if errors.Is(err, graph.ErrNoPath) {
		fmt.Fprintf(s.out, "\nNo path exists between '%s' and '%s'.\n", from, to)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nShortest path from '%s' to '%s': %s\n", from, to, strings.Join(path, " -> "))
	return s.printReport(path)
}

func (s *session) printReport(names []string) error {
	rep, err := report.Compare(s.g, names)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, report.FormatGrid(rep))
	return nil
}
