package model

import (
	"errors"
	"strings"
)

// ErrNameRequired is returned when a draft is submitted without a name
var ErrNameRequired = errors.New("recipe name is required")

// Delimiters used to split raw draft text
const (
	ListDelimiter        = ","
	InstructionDelimiter = "\n"
	ListJoiner           = ", "
)

// Draft defaults for a new recipe
const (
	DefaultDraftServings   = 1
	DefaultDraftDifficulty = DifficultyEasy
)

// RecipeDraft is the editable form representation of a recipe. List fields
// are kept as raw text until Normalize is called.
type RecipeDraft struct {
	Name               string
	Ingredients        string // comma separated
	Instructions       string // one per line
	PrepTimeMinutes    int
	CookTimeMinutes    int
	Servings           int
	Difficulty         Difficulty
	Cuisine            string
	CaloriesPerServing int
	Tags               string // comma separated
	MealType           string // comma separated
	Image              string
}

// RecipePayload is the normalized body sent to the create and update endpoints
type RecipePayload struct {
	Name               string     `json:"name"`
	Ingredients        []string   `json:"ingredients"`
	Instructions       []string   `json:"instructions"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Servings           int        `json:"servings"`
	Difficulty         Difficulty `json:"difficulty"`
	Cuisine            string     `json:"cuisine"`
	CaloriesPerServing int        `json:"caloriesPerServing"`
	Tags               []string   `json:"tags"`
	MealType           []string   `json:"mealType"`
	Image              string     `json:"image"`
}

// NewDraft returns the empty draft used by the add dialog
func NewDraft() RecipeDraft {
	return RecipeDraft{
		Servings:   DefaultDraftServings,
		Difficulty: DefaultDraftDifficulty,
	}
}

// DraftFromRecipe pre-populates a draft for the edit dialog
func DraftFromRecipe(r Recipe) RecipeDraft {
	return RecipeDraft{
		Name:               r.Name,
		Ingredients:        strings.Join(r.Ingredients, ListJoiner),
		Instructions:       strings.Join(r.Instructions, InstructionDelimiter),
		PrepTimeMinutes:    r.PrepTimeMinutes,
		CookTimeMinutes:    r.CookTimeMinutes,
		Servings:           r.Servings,
		Difficulty:         r.Difficulty,
		Cuisine:            r.Cuisine,
		CaloriesPerServing: r.CaloriesPerServing,
		Tags:               strings.Join(r.Tags, ListJoiner),
		MealType:           strings.Join(r.MealType, ListJoiner),
		Image:              r.Image,
	}
}

// Validate checks the only required field
func (d RecipeDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Normalize splits the raw text fields into trimmed, non-empty lists
func (d RecipeDraft) Normalize() RecipePayload {
	return RecipePayload{
		Name:               d.Name,
		Ingredients:        SplitFields(d.Ingredients, ListDelimiter),
		Instructions:       SplitFields(d.Instructions, InstructionDelimiter),
		PrepTimeMinutes:    d.PrepTimeMinutes,
		CookTimeMinutes:    d.CookTimeMinutes,
		Servings:           d.Servings,
		Difficulty:         d.Difficulty,
		Cuisine:            d.Cuisine,
		CaloriesPerServing: d.CaloriesPerServing,
		Tags:               SplitFields(d.Tags, ListDelimiter),
		MealType:           SplitFields(d.MealType, ListDelimiter),
		Image:              d.Image,
	}
}

// SplitFields splits s on sep, trims every fragment and drops empty ones.
// The result is never nil so it encodes as an empty JSON array.
func SplitFields(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
