package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/recipe"
)

// testGraph has a Gin Sour - Gimlet - Southside chain plus an isolated Hot Toddy.
func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	recipes := []*recipe.Recipe{
		recipe.New("Gin Sour", "Coupe", "", "SHAKE and STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "Gin"}, {Amount: "1 oz", Name: "Lemon"}, {Amount: "3/4 oz", Name: "Syrup"},
		}),
		recipe.New("Gimlet", "Coupe", "Lime", "SHAKE and STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "Gin"}, {Amount: "1 oz", Name: "Lime"}, {Amount: "3/4 oz", Name: "Syrup"},
		}),
		recipe.New("Southside", "Coupe", "Mint", "MUDDLE, SHAKE and STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "Gin"}, {Amount: "1 oz", Name: "Lime"}, {Amount: "6", Name: "Mint"},
		}),
		recipe.New("Hot Toddy", "Mug", "", "BUILD", []recipe.Pair{
			{Amount: "2 oz", Name: "Whiskey"}, {Amount: "4 oz", Name: "Water"},
		}),
	}
	g, err := graph.Build(recipes, graph.DefaultOptions())
	if err != nil {
		t.Fatalf("graph.Build() error = %v", err)
	}
	return g
}

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := newSession(testGraph(t), strings.NewReader(input), &out, rand.New(rand.NewPCG(1, 1)))
	if err := s.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return out.String()
}

func TestSession(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "exit",
			input: "4\n",
			want:  []string{"Choose an option:", "4. Exit", "Enter your choice: ", "Exiting. Cheers!"},
		},
		{
			name:  "search exact",
			input: "0\nGimlet\n4\n",
			want:  []string{"Gimlet\n══════", "Garnish:     Lime", "Techniques:  SHAKE, STRAIN"},
		},
		{
			name:  "search suggests",
			input: "0\nGimlett\n4\n",
			want: []string{
				"Error: Cocktail 'Gimlett' not found in the graph. Searching for close matches...",
				"By 'Gimlett', did you mean:\n1. Gimlet",
			},
		},
		{
			name:  "search no matches",
			input: "0\nzzzz\n4\n",
			want:  []string{"No close matches found for 'zzzz'. Please try a different name."},
		},
		{
			name:  "compare",
			input: "2\nGin Sour\nGimlet\n4\n",
			want:  []string{"Similarity between Gin Sour and Gimlet: 8", "--- INGREDIENTS ---", "| Lemon "},
		},
		{
			name:  "compare invalid",
			input: "2\nNope\n4\n",
			want:  []string{"Invalid cocktail. Please try again."},
		},
		{
			name:  "path",
			input: "3\nGin Sour\nSouthside\n4\n",
			want:  []string{"Shortest path from 'Gin Sour' to 'Southside': Gin Sour -> Gimlet -> Southside"},
		},
		{
			name:  "no path",
			input: "3\nGin Sour\nHot Toddy\n4\n",
			want:  []string{"No path exists between 'Gin Sour' and 'Hot Toddy'."},
		},
		{
			name:  "invalid choice",
			input: "9\n4\n",
			want:  []string{"Invalid choice. Please try again."},
		},
		{
			name:  "debug summary",
			input: "debug\n4\n",
			want:  []string{"Similarity threshold: 7", "Number of Nodes: 4", "Number of Edges: 2", "Number of Connected Components: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, tt.input)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
		})
	}
}

func TestSession_EOF(t *testing.T) {
	out := runSession(t, "1\n")
	if !strings.Contains(out, "Glass:") {
		t.Errorf("random pick not printed:\n%s", out)
	}
	if strings.Contains(out, "Exiting. Cheers!") {
		t.Error("EOF should end the session without the exit message")
	}

	// Input ending mid-compare is also a clean exit.
	runSession(t, "2\nGin Sour\n")
}

func TestSession_RandomIsSeeded(t *testing.T) {
	a := runSession(t, "1\n1\n4\n")
	b := runSession(t, "1\n1\n4\n")
	if a != b {
		t.Error("same seed produced different picks")
	}
}
