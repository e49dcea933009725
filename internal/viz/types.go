// Package viz renders the similarity graph as a self-contained HTML page.
package viz

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one cocktail.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Tooltip fields
	Glass       string   `json:"glass"`
	Garnish     string   `json:"garnish"`
	Techniques  []string `json:"techniques"`
	Ingredients []string `json:"ingredients"`

	// Sizing and grouping
	Degree    int `json:"degree"`
	Component int `json:"component"`

	OnPath bool `json:"onPath,omitempty"`
}

// Edge is one similarity link.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
	OnPath bool    `json:"onPath,omitempty"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
