package fakeapi

import (
	"fmt"

	"github.com/ytget/recipebook/internal/model"
)

type sampleDish struct {
	name     string
	cuisine  string
	meal     string
	tags     []string
	calories int
}

var sampleDishes = []sampleDish{
	{"Classic Margherita Pizza", "Italian", "Dinner", []string{"Pizza", "Italian"}, 300},
	{"Vegetarian Stir-Fry", "Asian", "Lunch", []string{"Vegetarian", "Stir-fry", "Asian"}, 250},
	{"Chocolate Chip Cookies", "American", "Snack", []string{"Cookies", "Dessert", "Baking"}, 150},
	{"Chicken Alfredo Pasta", "Italian", "Dinner", []string{"Pasta", "Chicken"}, 500},
	{"Mango Salsa Chicken", "Mexican", "Dinner", []string{"Chicken", "Salsa"}, 380},
	{"Quinoa Salad with Avocado", "Mediterranean", "Lunch", []string{"Salad", "Quinoa"}, 220},
	{"Tomato Basil Bruschetta", "Italian", "Snack", []string{"Bruschetta", "Italian"}, 120},
	{"Beef and Broccoli Stir-Fry", "Asian", "Dinner", []string{"Beef", "Stir-fry", "Asian"}, 380},
	{"Caprese Salad", "Italian", "Lunch", []string{"Salad", "Caprese"}, 200},
	{"Shrimp Scampi Pasta", "Italian", "Dinner", []string{"Pasta", "Shrimp"}, 400},
	{"Chicken Biryani", "Pakistani", "Dinner", []string{"Biryani", "Chicken", "Pakistani"}, 550},
	{"Shakshuka", "Middle Eastern", "Breakfast", []string{"Eggs", "Vegetarian"}, 240},
	{"Blueberry Pancakes", "American", "Breakfast", []string{"Pancakes", "Breakfast"}, 350},
	{"Tiramisu", "Italian", "Dessert", []string{"Dessert", "Italian", "Coffee"}, 420},
	{"Lamb Tagine", "Moroccan", "Dinner", []string{"Lamb", "Moroccan"}, 720},
	{"Miso Soup", "Japanese", "Lunch", []string{"Soup", "Japanese"}, 90},
}

var sampleDifficulties = []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}

// Sample returns n deterministic recipes with IDs 1..n. Dishes repeat with a
// numbered suffix once the built-in list is exhausted.
func Sample(n int) model.RecipeList {
	out := make(model.RecipeList, 0, n)
	for i := 0; i < n; i++ {
		dish := sampleDishes[i%len(sampleDishes)]
		name := dish.name
		if round := i / len(sampleDishes); round > 0 {
			name = fmt.Sprintf("%s #%d", dish.name, round+1)
		}
		id := i + 1
		out = append(out, model.Recipe{
			ID:                 id,
			Name:               name,
			Ingredients:        []string{"Salt", "Olive oil", "Black pepper"},
			Instructions:       []string{"Prepare the ingredients.", "Cook until done.", "Serve warm."},
			PrepTimeMinutes:    10 + (i%4)*5,
			CookTimeMinutes:    15 + (i%3)*10,
			Servings:           2 + i%4,
			Difficulty:         sampleDifficulties[i%len(sampleDifficulties)],
			Cuisine:            dish.cuisine,
			CaloriesPerServing: dish.calories,
			Tags:               append([]string(nil), dish.tags...),
			UserID:             100 + id,
			Image:              fmt.Sprintf("https://cdn.dummyjson.com/recipe-images/%d.webp", id),
			Rating:             4.0 + float64(i%10)/10,
			ReviewCount:        3 + (i*7)%90,
			MealType:           []string{dish.meal},
		})
	}
	return out
}
