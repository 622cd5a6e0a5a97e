package model

import (
	"fmt"
	"strings"
)

// Difficulty is the preparation difficulty of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// String returns the string representation of Difficulty
func (d Difficulty) String() string {
	return string(d)
}

// Difficulties lists the selectable difficulty values in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// CalorieBand classifies calories per serving for colouring
type CalorieBand int

const (
	CalorieBandLow CalorieBand = iota
	CalorieBandMedium
	CalorieBandHigh
)

// Calorie band thresholds (inclusive upper bounds)
const (
	LowCalorieLimit    = 300
	MediumCalorieLimit = 600
)

// Recipe represents a single recipe record owned by the remote catalog
type Recipe struct {
	ID                 int        `json:"id" yaml:"id"`
	Name               string     `json:"name" yaml:"name"`
	Ingredients        []string   `json:"ingredients" yaml:"ingredients"`
	Instructions       []string   `json:"instructions" yaml:"instructions"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes" yaml:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes" yaml:"cookTimeMinutes"`
	Servings           int        `json:"servings" yaml:"servings"`
	Difficulty         Difficulty `json:"difficulty" yaml:"difficulty"`
	Cuisine            string     `json:"cuisine" yaml:"cuisine"`
	CaloriesPerServing int        `json:"caloriesPerServing" yaml:"caloriesPerServing"`
	Tags               []string   `json:"tags" yaml:"tags"`
	UserID             int        `json:"userId" yaml:"userId"`
	Image              string     `json:"image" yaml:"image"`
	Rating             float64    `json:"rating" yaml:"rating"`
	ReviewCount        int        `json:"reviewCount" yaml:"reviewCount"`
	MealType           []string   `json:"mealType" yaml:"mealType"`
}

// TotalMinutes returns prep plus cook time
func (r *Recipe) TotalMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// CalorieBand returns the band used to colour the calorie badge
func (r *Recipe) CalorieBand() CalorieBand {
	switch {
	case r.CaloriesPerServing <= LowCalorieLimit:
		return CalorieBandLow
	case r.CaloriesPerServing <= MediumCalorieLimit:
		return CalorieBandMedium
	default:
		return CalorieBandHigh
	}
}

// VisibleTags returns at most n tags and the number of tags left out
func (r *Recipe) VisibleTags(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(r.Tags) <= n {
		return r.Tags, 0
	}
	return r.Tags[:n], len(r.Tags) - n
}

// Subtitle returns "cuisine • difficulty", skipping empty parts
func (r *Recipe) Subtitle() string {
	parts := make([]string, 0, 2)
	if c := strings.TrimSpace(r.Cuisine); c != "" {
		parts = append(parts, c)
	}
	if d := strings.TrimSpace(r.Difficulty.String()); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " • ")
}

// RatingLabel formats the rating with one decimal, or "" when unrated
func (r *Recipe) RatingLabel() string {
	if r.Rating <= 0 {
		return ""
	}
	if r.ReviewCount > 0 {
		return fmt.Sprintf("%.1f (%d reviews)", r.Rating, r.ReviewCount)
	}
	return fmt.Sprintf("%.1f", r.Rating)
}
