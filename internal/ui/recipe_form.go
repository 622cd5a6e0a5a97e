package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipebook/internal/model"
)

var errNotANumber = errors.New("must be a whole number")

// RecipeForm is the add/edit dialog. The submit button stays disabled while
// the name is blank or a submission is in flight.
type RecipeForm struct {
	window       fyne.Window
	localization *Localization
	mode         model.ViewMode
	dialog       *dialog.CustomDialog

	onSubmit func(model.RecipeDraft)
	onClosed func()
	busy     bool

	// UI components
	nameEntry         *widget.Entry
	ingredientsEntry  *widget.Entry
	instructionsEntry *widget.Entry
	prepEntry         *widget.Entry
	cookEntry         *widget.Entry
	servingsEntry     *widget.Entry
	difficultySelect  *widget.Select
	cuisineEntry      *widget.Entry
	caloriesEntry     *widget.Entry
	tagsEntry         *widget.Entry
	mealEntry         *widget.Entry
	imageEntry        *widget.Entry
	submitBtn         *widget.Button
}

// NewRecipeForm creates the dialog for mode (adding or editing) pre-filled from draft
func NewRecipeForm(window fyne.Window, localization *Localization, mode model.ViewMode,
	draft model.RecipeDraft, onSubmit func(model.RecipeDraft), onClosed func()) *RecipeForm {
	f := &RecipeForm{
		window:       window,
		localization: localization,
		mode:         mode,
		onSubmit:     onSubmit,
		onClosed:     onClosed,
	}
	f.createUI()
	f.loadDraft(draft)
	return f
}

// Mode returns whether the form adds or edits
func (f *RecipeForm) Mode() model.ViewMode {
	return f.mode
}

// Show displays the dialog
func (f *RecipeForm) Show() {
	f.dialog.Show()
	f.window.Canvas().Focus(f.nameEntry)
}

// Hide closes the dialog
func (f *RecipeForm) Hide() {
	f.dialog.Hide()
}

// SetBusy disables submission while a request is running
func (f *RecipeForm) SetBusy(busy bool) {
	f.busy = busy
	f.updateSubmit()
}

// createUI creates the form UI
func (f *RecipeForm) createUI() {
	l := f.localization

	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder(l.GetText(KeyNamePrompt))
	f.nameEntry.OnChanged = func(string) { f.updateSubmit() }

	f.ingredientsEntry = widget.NewMultiLineEntry()
	f.ingredientsEntry.SetPlaceHolder(l.GetText(KeyCommaSeparated))
	f.ingredientsEntry.Wrapping = fyne.TextWrapWord
	f.ingredientsEntry.SetMinRowsVisible(3)

	f.instructionsEntry = widget.NewMultiLineEntry()
	f.instructionsEntry.SetPlaceHolder(l.GetText(KeyOnePerLine))
	f.instructionsEntry.Wrapping = fyne.TextWrapWord
	f.instructionsEntry.SetMinRowsVisible(5)

	f.prepEntry = numberEntry()
	f.cookEntry = numberEntry()
	f.servingsEntry = numberEntry()
	f.caloriesEntry = numberEntry()

	difficulties := make([]string, len(model.Difficulties))
	for i, d := range model.Difficulties {
		difficulties[i] = d.String()
	}
	f.difficultySelect = widget.NewSelect(difficulties, nil)

	f.cuisineEntry = widget.NewEntry()
	f.tagsEntry = widget.NewEntry()
	f.tagsEntry.SetPlaceHolder(l.GetText(KeyCommaSeparated))
	f.mealEntry = widget.NewEntry()
	f.mealEntry.SetPlaceHolder(l.GetText(KeyCommaSeparated))
	f.imageEntry = widget.NewEntry()
	f.imageEntry.SetPlaceHolder("https://")

	times := container.NewGridWithColumns(2,
		labeled(l.GetText(KeyPrepTime), f.prepEntry),
		labeled(l.GetText(KeyCookTime), f.cookEntry),
		labeled(l.GetText(KeyServings), f.servingsEntry),
		labeled(l.GetText(KeyCalories), f.caloriesEntry),
		labeled(l.GetText(KeyDifficulty), f.difficultySelect),
		labeled(l.GetText(KeyCuisine), f.cuisineEntry),
	)

	form := container.NewVBox(
		labeled(l.GetText(KeyName)+" *", f.nameEntry),
		labeled(l.GetText(KeyIngredients), f.ingredientsEntry),
		labeled(l.GetText(KeyInstructions), f.instructionsEntry),
		times,
		labeled(l.GetText(KeyTags), f.tagsEntry),
		labeled(l.GetText(KeyMealTypes), f.mealEntry),
		labeled(l.GetText(KeyImageURL), f.imageEntry),
	)

	title := l.GetText(KeyAddTitle)
	submitText := l.GetText(KeyCreate)
	if f.mode == model.ModeEditing {
		title = l.GetText(KeyEditTitle)
		submitText = l.GetText(KeySaveChanges)
	}

	f.submitBtn = widget.NewButton(submitText, f.submit)
	f.submitBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(l.GetText(KeyCancel), func() { f.dialog.Hide() })

	f.dialog = dialog.NewCustomWithoutButtons(title, container.NewVScroll(form), f.window)
	f.dialog.SetButtons([]fyne.CanvasObject{cancelBtn, f.submitBtn})
	f.dialog.SetOnClosed(func() {
		if f.onClosed != nil {
			f.onClosed()
		}
	})
	f.dialog.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
}

// loadDraft fills the widgets from draft
func (f *RecipeForm) loadDraft(d model.RecipeDraft) {
	f.nameEntry.SetText(d.Name)
	f.ingredientsEntry.SetText(d.Ingredients)
	f.instructionsEntry.SetText(d.Instructions)
	f.prepEntry.SetText(strconv.Itoa(d.PrepTimeMinutes))
	f.cookEntry.SetText(strconv.Itoa(d.CookTimeMinutes))
	f.servingsEntry.SetText(strconv.Itoa(d.Servings))
	f.caloriesEntry.SetText(strconv.Itoa(d.CaloriesPerServing))
	if d.Difficulty != "" {
		f.difficultySelect.SetSelected(d.Difficulty.String())
	} else {
		f.difficultySelect.SetSelected(model.DefaultDraftDifficulty.String())
	}
	f.cuisineEntry.SetText(d.Cuisine)
	f.tagsEntry.SetText(d.Tags)
	f.mealEntry.SetText(d.MealType)
	f.imageEntry.SetText(d.Image)
	f.updateSubmit()
}

// Draft reads the current widget values
func (f *RecipeForm) Draft() model.RecipeDraft {
	return model.RecipeDraft{
		Name:               f.nameEntry.Text,
		Ingredients:        f.ingredientsEntry.Text,
		Instructions:       f.instructionsEntry.Text,
		PrepTimeMinutes:    parseNumber(f.prepEntry.Text),
		CookTimeMinutes:    parseNumber(f.cookEntry.Text),
		Servings:           parseNumber(f.servingsEntry.Text),
		Difficulty:         model.Difficulty(f.difficultySelect.Selected),
		Cuisine:            f.cuisineEntry.Text,
		CaloriesPerServing: parseNumber(f.caloriesEntry.Text),
		Tags:               f.tagsEntry.Text,
		MealType:           f.mealEntry.Text,
		Image:              strings.TrimSpace(f.imageEntry.Text),
	}
}

// CanSubmit reports whether the submit button is enabled
func (f *RecipeForm) CanSubmit() bool {
	return !f.submitBtn.Disabled()
}

func (f *RecipeForm) updateSubmit() {
	if f.submitBtn == nil {
		return
	}
	if f.busy || strings.TrimSpace(f.nameEntry.Text) == "" {
		f.submitBtn.Disable()
		return
	}
	f.submitBtn.Enable()
}

func (f *RecipeForm) submit() {
	if !f.CanSubmit() || f.onSubmit == nil {
		return
	}
	f.onSubmit(f.Draft())
}

func numberEntry() *widget.Entry {
	e := widget.NewEntry()
	e.Validator = func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if n, err := strconv.Atoi(s); err != nil || n < 0 {
			return errNotANumber
		}
		return nil
	}
	return e
}

// parseNumber reads a non-negative integer, treating anything else as 0
func parseNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func labeled(text string, obj fyne.CanvasObject) fyne.CanvasObject {
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(label, obj)
}
