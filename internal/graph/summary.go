package graph

// Summary holds diagnostic statistics about a graph.
type Summary struct {
	Threshold      int     `json:"threshold"`
	NodeCount      int     `json:"node_count"`
	EdgeCount      int     `json:"edge_count"`
	Density        float64 `json:"density"`
	ComponentCount int     `json:"component_count"`
	AvgClustering  float64 `json:"avg_clustering"`
	AvgDegree      float64 `json:"avg_degree"`
	IsolatedCount  int     `json:"isolated_count"`
}

// Summary computes node and edge counts, density, connected components, the
// mean local clustering coefficient (nodes of degree < 2 count as 0), and mean
// degree. Edge weights are ignored.
func (g *Graph) Summary() Summary {
	n := len(g.nodes)
	m := len(g.edges)

	s := Summary{
		Threshold:      g.opts.Threshold,
		NodeCount:      n,
		EdgeCount:      m,
		ComponentCount: g.componentCount(),
	}
	if n > 1 {
		s.Density = 2 * float64(m) / (float64(n) * float64(n-1))
	}
	if n > 0 {
		s.AvgDegree = 2 * float64(m) / float64(n)
		s.AvgClustering = g.totalClustering() / float64(n)
	}
	for _, nbs := range g.adj {
		if len(nbs) == 0 {
			s.IsolatedCount++
		}
	}
	return s
}

// Components returns the connected components as name lists. Components are
// ordered by their first member and members keep catalog order.
func (g *Graph) Components() [][]string {
	comp := g.componentIDs()
	var groups [][]string
	for i, c := range comp {
		if c == len(groups) {
			groups = append(groups, nil)
		}
		groups[c] = append(groups[c], g.nodes[i].Name)
	}
	return groups
}

func (g *Graph) componentCount() int {
	count := 0
	for _, c := range g.componentIDs() {
		if c+1 > count {
			count = c + 1
		}
	}
	return count
}

// componentIDs labels each node with a component number assigned in order of
// first appearance.
func (g *Graph) componentIDs() []int {
	comp := make([]int, len(g.nodes))
	for i := range comp {
		comp[i] = -1
	}

	next := 0
	for start := range g.nodes {
		if comp[start] >= 0 {
			continue
		}
		comp[start] = next
		stack := []int{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.adj[cur] {
				if comp[nb.node] < 0 {
					comp[nb.node] = next
					stack = append(stack, nb.node)
				}
			}
		}
		next++
	}
	return comp
}

func (g *Graph) totalClustering() float64 {
	linked := make([]map[int]bool, len(g.nodes))
	for i, nbs := range g.adj {
		linked[i] = make(map[int]bool, len(nbs))
		for _, nb := range nbs {
			linked[i][nb.node] = true
		}
	}

	total := 0.0
	for _, nbs := range g.adj {
		k := len(nbs)
		if k < 2 {
			continue
		}
		triangles := 0
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if linked[nbs[a].node][nbs[b].node] {
					triangles++
				}
			}
		}
		total += 2 * float64(triangles) / float64(k*(k-1))
	}
	return total
}
