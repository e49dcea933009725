package viz

import (
	"github.com/matsen/mixology/internal/graph"
)

// BuildOptions selects what BuildGraphData includes.
type BuildOptions struct {
	Path         []string // Cocktails to mark as a highlighted chain
	SkipIsolated bool     // Leave out cocktails with no edges
}

// BuildGraphData converts a similarity graph into visualization data. Nodes
// keep library order and edges keep graph order.
func BuildGraphData(g *graph.Graph, opts BuildOptions) *GraphData {
	onPath := make(map[string]bool, len(opts.Path))
	for _, name := range opts.Path {
		onPath[name] = true
	}
	pathEdges := pathEdgeSet(opts.Path)
	components := componentIndex(g)

	data := &GraphData{
		Nodes: make([]Node, 0, g.Len()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	for _, r := range g.Recipes() {
		degree := g.Degree(r.Name)
		if opts.SkipIsolated && degree == 0 && !onPath[r.Name] {
			continue
		}
		data.Nodes = append(data.Nodes, Node{
			ID:          r.Name,
			Label:       r.Name,
			Glass:       r.Glass,
			Garnish:     r.Garnish,
			Techniques:  r.Techniques,
			Ingredients: r.SortedIngredientNames(),
			Degree:      degree,
			Component:   components[r.Name],
			OnPath:      onPath[r.Name],
		})
	}

	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, Edge{
			Source: e.Source,
			Target: e.Target,
			Score:  e.Score,
			Weight: e.Weight,
			OnPath: pathEdges[pairKey(e.Source, e.Target)],
		})
	}

	return data
}

// pathEdgeSet returns the unordered pairs of consecutive path members.
func pathEdgeSet(path []string) map[string]bool {
	set := make(map[string]bool, len(path))
	for i := 1; i < len(path); i++ {
		set[pairKey(path[i-1], path[i])] = true
	}
	return set
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// componentIndex maps each cocktail to the index of its connected component.
func componentIndex(g *graph.Graph) map[string]int {
	index := make(map[string]int, g.Len())
	for i, members := range g.Components() {
		for _, name := range members {
			index[name] = i
		}
	}
	return index
}
