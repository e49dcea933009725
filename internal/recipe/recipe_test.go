package recipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTechniques(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "SHAKE with ice and strain into a glass", []string{"SHAKE"}},
		{"multiple sorted", "STIR then STRAIN over a FLOAT of rum", []string{"FLOAT", "STIR", "STRAIN"}},
		{"deduplicated", "SHAKE hard. SHAKE again.", []string{"SHAKE"}},
		{"punctuation boundaries", "(MUDDLE), then BUILD.", []string{"BUILD", "MUDDLE"}},
		{"lowercase ignored", "shake and stir", []string{"BUILD"}},
		{"mixed case ignored", "Shake and Stir", []string{"BUILD"}},
		{"unknown caps ignored", "SERVE ICE COLD", []string{"BUILD"}},
		{"embedded word ignored", "SHAKEN not STIRRED", []string{"BUILD"}},
		{"single letter ignored", "A B C", []string{"BUILD"}},
		{"empty", "", []string{"BUILD"}},
		{"accented letter joins word", "éSHAKE then STIRà", []string{"BUILD"}},
		{"accented neighbour word", "café SHAKE, crème STIR", []string{"SHAKE", "STIR"}},
		{"all vocabulary", "SHAKE STIR MUDDLE STRAIN FLOAT LAYER BUILD ROLL BLEND SWIZZLE",
			[]string{"BLEND", "BUILD", "FLOAT", "LAYER", "MUDDLE", "ROLL", "SHAKE", "STIR", "STRAIN", "SWIZZLE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTechniques(tt.text))
		})
	}
}

func TestExtractTechniques_SubsetOfVocabulary(t *testing.T) {
	texts := []string{"", "SHAKE", "XYZ ABC", "ROLL the BLEND LAYER", "lower"}
	for _, text := range texts {
		got := ExtractTechniques(text)
		require.NotEmpty(t, got, "text %q", text)
		for _, tech := range got {
			assert.True(t, IsTechnique(tech), "technique %q from %q not in vocabulary", tech, text)
		}
	}
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantAmount *float64
		wantUnit   *string
	}{
		{"decimal", "1.5 oz", ptr(1.5), ptr("oz")},
		{"integer", "2 dashes", ptr(2.0), ptr("dashes")},
		{"fraction", "3/4 oz", ptr(0.75), ptr("oz")},
		{"extra tokens keep second as unit", "1 oz fresh", ptr(1.0), ptr("oz")},
		{"mixed number keeps second token as unit", "1 1/2 oz", ptr(1.0), ptr("1/2")},
		{"surrounding whitespace", "  2   cl ", ptr(2.0), ptr("cl")},
		{"non-numeric amount keeps unit", "splash of", nil, ptr("of")},
		{"zero denominator", "1/0 oz", nil, ptr("oz")},
		{"single token", "Top", nil, nil},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := ParseIngredient(tt.raw, "Gin")

			assert.Equal(t, "Gin", ing.Name)
			if tt.wantAmount == nil {
				assert.Nil(t, ing.Amount)
			} else {
				require.NotNil(t, ing.Amount)
				assert.InDelta(t, *tt.wantAmount, *ing.Amount, 1e-9)
			}
			assert.Equal(t, tt.wantUnit, ing.Unit)
		})
	}
}

func TestParseAmount_MalformedError(t *testing.T) {
	_, _, err := ParseAmount("Top")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAmount))

	_, unit, err := ParseAmount("some oz")
	assert.True(t, errors.Is(err, ErrMalformedAmount))
	require.NotNil(t, unit)
	assert.Equal(t, "oz", *unit)

	amount, unit, err := ParseAmount("1 oz")
	require.NoError(t, err)
	assert.Equal(t, 1.0, *amount)
	assert.Equal(t, "oz", *unit)
}

func TestIngredient_Malformed(t *testing.T) {
	assert.False(t, ParseIngredient("1 oz", "Gin").Malformed())
	assert.True(t, ParseIngredient("Top", "Soda").Malformed())
	assert.True(t, ParseIngredient("a little", "Soda").Malformed())
}

func TestNew(t *testing.T) {
	r := New("Margarita", "Coupe", "", "SHAKE with ice. STRAIN.", []Pair{
		{Amount: "2 oz", Name: "tequila"},
		{Amount: "1 oz", Name: "lime"},
		{Amount: "a dash", Name: "triple sec"},
		{Amount: "", Name: "salt"},
	})

	assert.Equal(t, "Margarita", r.Name)
	assert.Equal(t, "Coupe", r.Glass)
	assert.Equal(t, NoneSentinel, r.Garnish)
	assert.Equal(t, []string{"SHAKE", "STRAIN"}, r.Techniques)
	require.Len(t, r.Ingredients, 4)
	assert.Equal(t, "triple sec", r.Ingredients[2].Name)
	assert.Nil(t, r.Ingredients[2].Amount)
	assert.Equal(t, "salt", r.Ingredients[3].Name)
	assert.Nil(t, r.Ingredients[3].Unit)
}

func TestRecipe_Normalize(t *testing.T) {
	r := &Recipe{Name: "Negroni", Text: "STIR over ice", Techniques: []string{"BLEND"}}
	r.Normalize()

	assert.Equal(t, []string{"STIR"}, r.Techniques)
	assert.Equal(t, NoneSentinel, r.Garnish)
}

func TestRecipe_Lookups(t *testing.T) {
	r := New("Mojito", "Highball", "Mint", "MUDDLE mint, BUILD over ice", []Pair{
		{Amount: "2 oz", Name: "rum"},
		{Amount: "1 oz", Name: "lime"},
		{Amount: "2 oz", Name: "rum"},
	})

	assert.Equal(t, []string{"lime", "rum"}, r.SortedIngredientNames())
	assert.Len(t, r.IngredientNames(), 2)
	assert.True(t, r.HasIngredient("lime"))
	assert.False(t, r.HasIngredient("Lime"))
	assert.True(t, r.HasTechnique("MUDDLE"))
	assert.False(t, r.HasTechnique("SHAKE"))
	assert.Equal(t, map[string]string{"rum": "2 oz", "lime": "1 oz"}, r.Amounts())
}

func ptr[T any](v T) *T {
	return &v
}
