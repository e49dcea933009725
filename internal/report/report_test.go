package report

import (
	"strings"
	"testing"

	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]*recipe.Recipe{
		recipe.New("Margarita", "Coupe", "Salt rim", "SHAKE with ice", []recipe.Pair{
			{Amount: "2 oz", Name: "tequila"},
			{Amount: "1 oz", Name: "lime"},
			{Amount: "3/4 oz", Name: "triple sec"},
		}),
		recipe.New("Daiquiri", "Coupe", "", "SHAKE and STRAIN", []recipe.Pair{
			{Amount: "2 oz", Name: "rum"},
			{Amount: "3/4 oz", Name: "lime"},
			{Amount: "1/2 oz", Name: "sugar"},
		}),
	}, graph.DefaultOptions())
	require.NoError(t, err)
	return g
}

func TestCompare_TwoCocktails(t *testing.T) {
	rep, err := Compare(testGraph(t), []string{"Margarita", "Daiquiri"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Margarita", "Daiquiri"}, rep.Columns)

	var elements []string
	for _, row := range rep.Ingredients {
		elements = append(elements, row.Element)
	}
	assert.Equal(t, []string{"lime", "rum", "sugar", "tequila", "triple sec"}, elements)

	lime, ok := rep.Ingredient("lime")
	require.True(t, ok)
	assert.Equal(t, []string{"1 oz", "3/4 oz"}, lime.Cells)

	tequila, _ := rep.Ingredient("tequila")
	assert.Equal(t, []string{"2 oz", Absent}, tequila.Cells)
	rum, _ := rep.Ingredient("rum")
	assert.Equal(t, []string{Absent, "2 oz"}, rum.Cells)

	require.Len(t, rep.Techniques, 2)
	shake, _ := rep.Technique("SHAKE")
	assert.Equal(t, []string{"SHAKE", "SHAKE"}, shake.Cells)
	strain, _ := rep.Technique("STRAIN")
	assert.Equal(t, []string{Absent, "STRAIN"}, strain.Cells)
}

func TestCompare_UnknownNameIsAtomic(t *testing.T) {
	rep, err := Compare(testGraph(t), []string{"Margarita", "Zombie", "Daiquiri"})
	assert.Nil(t, rep)

	var nf *graph.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Zombie", nf.Name)
	assert.ErrorIs(t, err, graph.ErrNotFound)
}

func TestCompare_DuplicateColumns(t *testing.T) {
	rep, err := Compare(testGraph(t), []string{"Daiquiri", "Daiquiri"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Daiquiri", "Daiquiri"}, rep.Columns)
	for _, row := range rep.Ingredients {
		assert.Len(t, row.Cells, 2)
		assert.Equal(t, row.Cells[0], row.Cells[1])
	}
}

func TestCompare_Empty(t *testing.T) {
	rep, err := Compare(testGraph(t), nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Columns)
	assert.Empty(t, rep.Ingredients)
	assert.Empty(t, rep.Techniques)
}

func TestFormatGrid(t *testing.T) {
	rep, err := Compare(testGraph(t), []string{"Margarita", "Daiquiri"})
	require.NoError(t, err)

	out := FormatGrid(rep)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Contains(t, lines[1], "| Element ")
	assert.Contains(t, lines[1], "| Margarita ")
	assert.True(t, strings.HasPrefix(lines[2], "+="))
	assert.Contains(t, out, IngredientsHeader)
	assert.Contains(t, out, TechniquesHeader)
	assert.Contains(t, out, "| triple sec ")

	// Every line is the same width.
	for _, line := range lines {
		assert.Equal(t, len(lines[0]), len(line), "line %q", line)
	}

	// Ingredients come before techniques.
	assert.Less(t, strings.Index(out, IngredientsHeader), strings.Index(out, TechniquesHeader))
	assert.Less(t, strings.Index(out, "tequila"), strings.Index(out, TechniquesHeader))
}
