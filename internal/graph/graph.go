// Package graph builds the cocktail similarity graph and answers queries over it.
//
// Nodes are recipes keyed by name. Two recipes are joined by an undirected edge
// when their similarity score reaches the threshold; the edge weight is
// 1/score so that shortest paths prefer chains of closely related cocktails.
// A Graph is immutable once built and safe for concurrent readers.
package graph

import (
	"fmt"

	"github.com/matsen/mixology/internal/fuzzy"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/matsen/mixology/internal/similarity"
)

// Options configures graph construction and name lookup.
type Options struct {
	Threshold   int     // Minimum score for an edge
	FuzzyLimit  int     // Maximum FuzzySearch results
	FuzzyCutoff float64 // Minimum FuzzySearch ratio
}

// DefaultOptions returns the standard construction options.
func DefaultOptions() Options {
	return Options{
		Threshold:   similarity.DefaultThreshold,
		FuzzyLimit:  fuzzy.DefaultLimit,
		FuzzyCutoff: fuzzy.DefaultCutoff,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Threshold < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, o.Threshold)
	}
	if o.FuzzyCutoff <= 0 || o.FuzzyCutoff > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidCutoff, o.FuzzyCutoff)
	}
	return nil
}

// Edge is an undirected link between two cocktails.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// neighbor is one adjacency entry.
type neighbor struct {
	node  int
	score int
}

// Graph is the similarity graph over a catalog.
type Graph struct {
	opts  Options
	nodes []*recipe.Recipe // insertion order
	index map[string]int
	adj   [][]neighbor // ascending by node index
	edges []Edge       // pair order (i<j, input order)
}

// Build creates a graph from recipes. Every unordered pair is scored once, so
// construction is quadratic in catalog size; that is fine for catalogs of a
// few thousand recipes.
//
// Duplicate names are rejected with ErrDuplicateName and an empty input with
// ErrEmptyCatalog.
func Build(recipes []*recipe.Recipe, opts Options) (*Graph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrEmptyCatalog
	}

	g := &Graph{
		opts:  opts,
		nodes: make([]*recipe.Recipe, 0, len(recipes)),
		index: make(map[string]int, len(recipes)),
		adj:   make([][]neighbor, len(recipes)),
	}

	for i, r := range recipes {
		if r == nil {
			return nil, fmt.Errorf("recipe %d is nil", i)
		}
		if _, exists := g.index[r.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		g.index[r.Name] = i
		g.nodes = append(g.nodes, r)
	}

	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			score := similarity.Score(g.nodes[i], g.nodes[j])
			if score < opts.Threshold {
				continue
			}
			g.adj[i] = append(g.adj[i], neighbor{node: j, score: score})
			g.adj[j] = append(g.adj[j], neighbor{node: i, score: score})
			g.edges = append(g.edges, Edge{
				Source: g.nodes[i].Name,
				Target: g.nodes[j].Name,
				Score:  score,
				Weight: weight(score),
			})
		}
	}

	return g, nil
}

// weight inverts a score so higher similarity means a shorter edge.
func weight(score int) float64 {
	return 1.0 / float64(score)
}

// Options returns the options the graph was built with.
func (g *Graph) Options() Options {
	return g.opts
}

// Threshold returns the edge threshold.
func (g *Graph) Threshold() int {
	return g.opts.Threshold
}

// Len returns the number of cocktails.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Exists reports whether name is a cocktail in the graph.
func (g *Graph) Exists(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Get returns the recipe for name, or a *NotFoundError.
func (g *Graph) Get(name string) (*recipe.Recipe, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return g.nodes[i], nil
}

// Names returns cocktail names in catalog order.
func (g *Graph) Names() []string {
	names := make([]string, len(g.nodes))
	for i, r := range g.nodes {
		names[i] = r.Name
	}
	return names
}

// Recipes returns the recipes in catalog order.
func (g *Graph) Recipes() []*recipe.Recipe {
	out := make([]*recipe.Recipe, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Degree returns the number of neighbors of name, or -1 if it is unknown.
func (g *Graph) Degree(name string) int {
	i, ok := g.index[name]
	if !ok {
		return -1
	}
	return len(g.adj[i])
}

// Neighbors returns the cocktails adjacent to name with their edges, in
// catalog order.
func (g *Graph) Neighbors(name string) ([]Edge, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	out := make([]Edge, 0, len(g.adj[i]))
	for _, nb := range g.adj[i] {
		out = append(out, Edge{
			Source: name,
			Target: g.nodes[nb.node].Name,
			Score:  nb.score,
			Weight: weight(nb.score),
		})
	}
	return out, nil
}

// EdgeBetween returns the edge joining a and b, if any.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	i, ok := g.index[a]
	if !ok {
		return Edge{}, false
	}
	j, ok := g.index[b]
	if !ok {
		return Edge{}, false
	}
	for _, nb := range g.adj[i] {
		if nb.node == j {
			return Edge{Source: a, Target: b, Score: nb.score, Weight: weight(nb.score)}, true
		}
	}
	return Edge{}, false
}
