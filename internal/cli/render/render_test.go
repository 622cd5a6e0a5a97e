package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ytget/recipebook/internal/model"
)

func testRecipes() model.RecipeList {
	return model.RecipeList{
		{
			ID: 1, Name: "Classic Margherita Pizza", Cuisine: "Italian", Difficulty: model.DifficultyEasy,
			PrepTimeMinutes: 20, CookTimeMinutes: 15, Servings: 4, CaloriesPerServing: 300,
			Rating: 4.6, ReviewCount: 98, Tags: []string{"Pizza", "Italian", "Vegetarian"},
			Ingredients:  []string{"Pizza dough", "Tomato sauce"},
			Instructions: []string{"Preheat the oven.", "Bake."},
			MealType:     []string{"Dinner"},
		},
		{
			ID: 2, Name: "Miso Soup", Cuisine: "Japanese", Difficulty: model.DifficultyMedium,
			PrepTimeMinutes: 5, CookTimeMinutes: 10, Servings: 2, CaloriesPerServing: 90,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRecipePage_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RecipePage(&buf, NewPage(testRecipes(), 0, 2), FormatText))

	out := buf.String()
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Classic Margherita Pizza")
	assert.Contains(t, out, "Italian • Easy")
	assert.Contains(t, out, "35 min")
	assert.Contains(t, out, "300 kcal")
	assert.Contains(t, out, "Pizza, Italian +1")
	assert.Contains(t, out, "Miso Soup")
	assert.Contains(t, out, "Showing 1-2 of 2 recipes (page 1/1)")
}

func TestRecipePage_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RecipePage(&buf, NewPage(nil, 0, 0), FormatText))
	assert.Contains(t, buf.String(), "No recipes found")

	buf.Reset()
	require.NoError(t, RecipePage(&buf, NewPage(nil, 0, 0), FormatJSON))

	var decoded Page
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotNil(t, decoded.Recipes)
	assert.Empty(t, decoded.Recipes)
}

func TestRecipePage_JSONAndYAML(t *testing.T) {
	page := NewPage(testRecipes(), 1, 30)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageCount)

	var buf bytes.Buffer
	require.NoError(t, RecipePage(&buf, page, FormatJSON))
	assert.Contains(t, buf.String(), `"caloriesPerServing": 300`)
	assert.Contains(t, buf.String(), `"pageCount": 3`)

	buf.Reset()
	require.NoError(t, RecipePage(&buf, page, FormatYAML))

	var decoded Page
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 30, decoded.Total)
	require.Len(t, decoded.Recipes, 2)
	assert.Equal(t, "Miso Soup", decoded.Recipes[1].Name)
	assert.Equal(t, []string{"Pizza", "Italian", "Vegetarian"}, decoded.Recipes[0].Tags)
}

func TestRecipe_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Recipe(&buf, testRecipes()[0], FormatText))

	out := buf.String()
	assert.Contains(t, out, "Classic Margherita Pizza")
	assert.Contains(t, out, "4.6 (98 reviews)")
	assert.Contains(t, out, "INGREDIENTS")
	assert.Contains(t, out, Bullet+" Pizza dough")
	assert.Contains(t, out, "INSTRUCTIONS")
	assert.Contains(t, out, "2. Bake.")
	assert.Contains(t, out, "Dinner")
}

func TestTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tags(&buf, []string{"Asian", "Pizza"}, FormatText))
	assert.Contains(t, buf.String(), "Asian")
	assert.Contains(t, buf.String(), "2 tags")

	buf.Reset()
	require.NoError(t, Tags(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCalorieStyle(t *testing.T) {
	assert.Equal(t, LowStyle.GetForeground(), CalorieStyle(model.CalorieBandLow).GetForeground())
	assert.Equal(t, MediumStyle.GetForeground(), CalorieStyle(model.CalorieBandMedium).GetForeground())
	assert.Equal(t, HighStyle.GetForeground(), CalorieStyle(model.CalorieBandHigh).GetForeground())
}
