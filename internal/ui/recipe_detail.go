package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipebook/internal/model"
	"github.com/ytget/recipebook/internal/platform"
)

// DetailActions are the buttons offered by the detail dialog
type DetailActions struct {
	OnEdit     func()
	OnDelete   func(id int)
	OnBookmark func(id int)
	OnClosed   func()
}

// RecipeDetail is the read-only dialog for a selected recipe
type RecipeDetail struct {
	window       fyne.Window
	localization *Localization
	thumbs       ThumbnailSource
	dialog       *dialog.CustomDialog

	recipe      model.Recipe
	image       *canvas.Image
	bookmarkBtn *widget.Button
}

// NewRecipeDetail builds the detail dialog for r
func NewRecipeDetail(window fyne.Window, localization *Localization, thumbs ThumbnailSource,
	r model.Recipe, bookmarked bool, actions DetailActions) *RecipeDetail {
	d := &RecipeDetail{
		window:       window,
		localization: localization,
		thumbs:       thumbs,
		recipe:       r,
	}
	d.createUI(bookmarked, actions)
	return d
}

// RecipeID returns the ID of the recipe shown
func (d *RecipeDetail) RecipeID() int {
	return d.recipe.ID
}

// Show displays the dialog
func (d *RecipeDetail) Show() {
	d.dialog.Show()
	d.loadImage()
}

// Hide closes the dialog
func (d *RecipeDetail) Hide() {
	d.dialog.Hide()
}

// SetBookmarked updates the bookmark button
func (d *RecipeDetail) SetBookmarked(bookmarked bool) {
	if bookmarked {
		d.bookmarkBtn.SetText(IconBookmarked + " " + d.localization.GetText(KeyUnbookmark))
		d.bookmarkBtn.Importance = widget.DangerImportance
	} else {
		d.bookmarkBtn.SetText(IconUnbookmarked + " " + d.localization.GetText(KeyBookmark))
		d.bookmarkBtn.Importance = widget.MediumImportance
	}
	d.bookmarkBtn.Refresh()
}

// createUI creates the dialog UI
func (d *RecipeDetail) createUI(bookmarked bool, actions DetailActions) {
	r := d.recipe
	l := d.localization

	d.image = canvas.NewImageFromResource(PlaceholderImage())
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(DetailDialogWidth-40, DetailImageHeight))

	subtitle := widget.NewLabel(r.Subtitle())
	subtitle.Importance = widget.LowImportance

	stats := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyPrepTime), widget.NewLabel(l.Format(KeyMinutes, r.PrepTimeMinutes))),
		widget.NewFormItem(l.GetText(KeyCookTime), widget.NewLabel(l.Format(KeyMinutes, r.CookTimeMinutes))),
		widget.NewFormItem(l.GetText(KeyServings), widget.NewLabel(strconv.Itoa(r.Servings))),
		widget.NewFormItem(l.GetText(KeyCalories), d.caloriesBadge()),
		widget.NewFormItem(l.GetText(KeyRating), widget.NewLabel(orDash(r.RatingLabel()))),
		widget.NewFormItem(l.GetText(KeyTags), wrapLabel(orDash(strings.Join(r.Tags, ", ")))),
		widget.NewFormItem(l.GetText(KeyMealTypes), wrapLabel(orDash(strings.Join(r.MealType, ", ")))),
	)

	ingredients := widget.NewRichTextFromMarkdown(BulletList(r.Ingredients))
	ingredients.Wrapping = fyne.TextWrapWord
	instructions := widget.NewRichTextFromMarkdown(NumberedList(r.Instructions))
	instructions.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(
		d.image,
		subtitle,
		stats,
		widget.NewSeparator(),
		heading(l.GetText(KeyIngredients)),
		ingredients,
		widget.NewSeparator(),
		heading(l.GetText(KeyInstructions)),
		instructions,
	)

	d.bookmarkBtn = widget.NewButton("", func() {
		if actions.OnBookmark != nil {
			actions.OnBookmark(r.ID)
		}
	})
	d.SetBookmarked(bookmarked)

	editBtn := widget.NewButtonWithIcon(l.GetText(KeyEdit), theme.DocumentCreateIcon(), func() {
		if actions.OnEdit != nil {
			actions.OnEdit()
		}
	})

	deleteBtn := widget.NewButtonWithIcon(l.GetText(KeyDelete), theme.DeleteIcon(), func() {
		dialog.ShowConfirm(
			l.GetText(KeyDeleteTitle),
			l.Format(KeyDeleteConfirm, r.Name),
			func(confirmed bool) {
				if confirmed && actions.OnDelete != nil {
					actions.OnDelete(r.ID)
				}
			},
			d.window,
		)
	})
	deleteBtn.Importance = widget.DangerImportance

	openBtn := widget.NewButtonWithIcon(l.GetText(KeyOpenImage), theme.ComputerIcon(), func() {
		if err := platform.OpenURL(r.Image); err != nil {
			log.Printf("Failed to open image %s: %v", r.Image, err)
		}
	})
	if r.Image == "" {
		openBtn.Disable()
	}

	closeBtn := widget.NewButton(l.GetText(KeyClose), func() { d.dialog.Hide() })

	d.dialog = dialog.NewCustomWithoutButtons(r.Name, container.NewVScroll(body), d.window)
	d.dialog.SetButtons([]fyne.CanvasObject{closeBtn, openBtn, d.bookmarkBtn, editBtn, deleteBtn})
	d.dialog.SetOnClosed(func() {
		if actions.OnClosed != nil {
			actions.OnClosed()
		}
	})
	d.dialog.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
}

func (d *RecipeDetail) caloriesBadge() fyne.CanvasObject {
	text := canvas.NewText(fmt.Sprintf(CaloriesFormat, d.recipe.CaloriesPerServing),
		theme.Color(CalorieColorName(d.recipe.CalorieBand())))
	text.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewPadded(text)
}

// loadImage fetches a larger thumbnail for the header
func (d *RecipeDetail) loadImage() {
	if d.thumbs == nil || d.recipe.Image == "" {
		return
	}
	imageURL := d.recipe.Image
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ThumbnailTimeout)
		defer cancel()

		data, err := d.thumbs.Load(ctx, imageURL)
		if err != nil {
			log.Printf("Failed to load recipe image %s: %v", imageURL, err)
			return
		}
		fyne.Do(func() {
			d.image.Resource = NewThumbnailResource(imageURL, data)
			d.image.Refresh()
		})
	}()
}

// BulletList renders items as a markdown bullet list
func BulletList(items []string) string {
	if len(items) == 0 {
		return DashPlaceholder
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(escapeMarkdown(item))
		b.WriteString("\n")
	}
	return b.String()
}

// NumberedList renders steps as a markdown ordered list
func NumberedList(steps []string) string {
	if len(steps) == 0 {
		return DashPlaceholder
	}
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escapeMarkdown(step))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "#", `\#`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(strings.TrimSpace(s))
}

func heading(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

func wrapLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return DashPlaceholder
	}
	return s
}
