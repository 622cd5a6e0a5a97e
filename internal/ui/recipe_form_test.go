package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipebook/internal/model"
)

func TestRecipeForm_SubmitNeedsName(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	var submitted []model.RecipeDraft
	f := NewRecipeForm(w, NewLocalization(), model.ModeAdding, model.NewDraft(),
		func(d model.RecipeDraft) { submitted = append(submitted, d) }, nil)

	assert.False(t, f.CanSubmit())
	test.Tap(f.submitBtn)
	assert.Empty(t, submitted)

	f.nameEntry.SetText("   ")
	assert.False(t, f.CanSubmit())

	f.nameEntry.SetText("Pancakes")
	assert.True(t, f.CanSubmit())

	test.Tap(f.submitBtn)
	require.Len(t, submitted, 1)
	assert.Equal(t, "Pancakes", submitted[0].Name)
}

func TestRecipeForm_BusyDisablesSubmit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	draft := model.NewDraft()
	draft.Name = "Soup"
	f := NewRecipeForm(w, NewLocalization(), model.ModeEditing, draft, nil, nil)
	assert.Equal(t, model.ModeEditing, f.Mode())
	assert.True(t, f.CanSubmit())

	f.SetBusy(true)
	assert.False(t, f.CanSubmit())

	f.SetBusy(false)
	assert.True(t, f.CanSubmit())
}

func TestRecipeForm_Draft(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	f := NewRecipeForm(w, NewLocalization(), model.ModeAdding, model.NewDraft(), nil, nil)
	assert.Equal(t, model.DefaultDraftDifficulty.String(), f.difficultySelect.Selected)

	f.nameEntry.SetText("Curry")
	f.ingredientsEntry.SetText("Rice, Chicken")
	f.prepEntry.SetText("15")
	f.cookEntry.SetText("abc")
	f.servingsEntry.SetText("-2")
	f.caloriesEntry.SetText(" 480 ")
	f.difficultySelect.SetSelected(model.DifficultyHard.String())
	f.imageEntry.SetText("  https://example.com/curry.jpg ")

	d := f.Draft()
	assert.Equal(t, "Curry", d.Name)
	assert.Equal(t, "Rice, Chicken", d.Ingredients)
	assert.Equal(t, 15, d.PrepTimeMinutes)
	assert.Equal(t, 0, d.CookTimeMinutes)
	assert.Equal(t, 0, d.Servings)
	assert.Equal(t, 480, d.CaloriesPerServing)
	assert.Equal(t, model.DifficultyHard, d.Difficulty)
	assert.Equal(t, "https://example.com/curry.jpg", d.Image)
}

func TestNumberEntryValidator(t *testing.T) {
	e := numberEntry()
	assert.NoError(t, e.Validator(""))
	assert.NoError(t, e.Validator("12"))
	assert.ErrorIs(t, e.Validator("1.5"), errNotANumber)
	assert.ErrorIs(t, e.Validator("-3"), errNotANumber)
}
