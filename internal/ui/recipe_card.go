package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipebook/internal/model"
)

// RecipeCard shows one recipe in the grid: thumbnail, name, cuisine and
// difficulty, time, calories, rating, the first tags and a bookmark toggle.
// Tapping the card outside the bookmark button opens the detail view.
type RecipeCard struct {
	widget.BaseWidget

	recipe       model.Recipe
	bookmarked   bool
	localization *Localization
	thumbs       ThumbnailSource

	// UI components
	image         *canvas.Image
	nameLabel     *widget.Label
	subtitleLabel *widget.Label
	timeLabel     *widget.Label
	ratingLabel   *widget.Label
	caloriesText  *canvas.Text
	tagsLabel     *widget.Label
	bookmarkBtn   *widget.Button

	// Thumbnail currently requested; late results for other URLs are ignored
	mu       sync.Mutex
	imageURL string

	// Callbacks
	onOpen     func(id int)
	onBookmark func(id int)
}

// NewRecipeCard creates a new recipe card widget
func NewRecipeCard(localization *Localization, thumbs ThumbnailSource) *RecipeCard {
	c := &RecipeCard{
		localization: localization,
		thumbs:       thumbs,
	}
	c.ExtendBaseWidget(c)
	c.createUI()
	return c
}

// SetCallbacks sets the action callbacks
func (c *RecipeCard) SetCallbacks(onOpen func(id int), onBookmark func(id int)) {
	c.onOpen = onOpen
	c.onBookmark = onBookmark
}

// Recipe returns the recipe currently shown
func (c *RecipeCard) Recipe() model.Recipe {
	return c.recipe
}

// UpdateRecipe shows r in the card
func (c *RecipeCard) UpdateRecipe(r model.Recipe, bookmarked bool) {
	c.recipe = r
	c.bookmarked = bookmarked
	c.updateFromRecipe()
	c.loadThumbnail(r.Image)
	c.Refresh()
}

// Tapped opens the detail view
func (c *RecipeCard) Tapped(_ *fyne.PointEvent) {
	if c.onOpen != nil && c.recipe.ID != 0 {
		c.onOpen(c.recipe.ID)
	}
}

// createUI creates the UI components
func (c *RecipeCard) createUI() {
	c.image = canvas.NewImageFromResource(PlaceholderImage())
	c.image.FillMode = canvas.ImageFillContain
	c.image.SetMinSize(fyne.NewSize(CardWidth, CardImageHeight))

	c.nameLabel = widget.NewLabel("")
	c.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.nameLabel.Truncation = fyne.TextTruncateEllipsis

	c.subtitleLabel = widget.NewLabel("")
	c.subtitleLabel.Truncation = fyne.TextTruncateEllipsis
	c.subtitleLabel.Importance = widget.LowImportance

	c.timeLabel = widget.NewLabel("")
	c.ratingLabel = widget.NewLabel("")
	c.ratingLabel.Alignment = fyne.TextAlignTrailing

	c.caloriesText = canvas.NewText("", theme.Color(ColorNameCalorieLow))
	c.caloriesText.TextStyle = fyne.TextStyle{Bold: true}

	c.tagsLabel = widget.NewLabel("")
	c.tagsLabel.Truncation = fyne.TextTruncateEllipsis
	c.tagsLabel.Importance = widget.MediumImportance

	c.bookmarkBtn = widget.NewButton(IconUnbookmarked, func() {
		if c.onBookmark != nil && c.recipe.ID != 0 {
			c.onBookmark(c.recipe.ID)
		}
	})
	c.bookmarkBtn.Importance = widget.LowImportance
}

// updateFromRecipe updates UI components based on recipe data
func (c *RecipeCard) updateFromRecipe() {
	r := &c.recipe

	c.nameLabel.SetText(strings.TrimSpace(r.Name))

	subtitle := r.Subtitle()
	if subtitle == "" {
		subtitle = DashPlaceholder
	}
	c.subtitleLabel.SetText(subtitle)

	c.timeLabel.SetText(IconClock + " " + c.localization.Format(KeyMinutes, r.TotalMinutes()))

	if rating := r.RatingLabel(); rating != "" {
		c.ratingLabel.SetText(IconStar + " " + fmt.Sprintf("%.1f", r.Rating))
	} else {
		c.ratingLabel.SetText("")
	}

	c.caloriesText.Text = fmt.Sprintf(CaloriesFormat, r.CaloriesPerServing)
	c.caloriesText.Color = theme.Color(CalorieColorName(r.CalorieBand()))
	c.caloriesText.Refresh()

	c.tagsLabel.SetText(TagSummary(r))

	if c.bookmarked {
		c.bookmarkBtn.SetText(IconBookmarked)
		c.bookmarkBtn.Importance = widget.DangerImportance
	} else {
		c.bookmarkBtn.SetText(IconUnbookmarked)
		c.bookmarkBtn.Importance = widget.LowImportance
	}
	c.bookmarkBtn.Refresh()
}

// TagSummary returns the first tags followed by "+n" for the rest
func TagSummary(r *model.Recipe) string {
	tags, more := r.VisibleTags(CardVisibleTags)
	text := strings.Join(tags, MiddleDotSeparator)
	if more > 0 {
		text += " " + fmt.Sprintf(MoreTagsFormat, more)
	}
	return text
}

// loadThumbnail swaps in the downscaled image once it arrives
func (c *RecipeCard) loadThumbnail(imageURL string) {
	c.mu.Lock()
	if imageURL == c.imageURL {
		c.mu.Unlock()
		return
	}
	c.imageURL = imageURL
	c.mu.Unlock()

	c.image.Resource = PlaceholderImage()
	c.image.Refresh()

	if c.thumbs == nil || imageURL == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ThumbnailTimeout)
		defer cancel()

		data, err := c.thumbs.Load(ctx, imageURL)
		if err != nil {
			log.Printf("Failed to load thumbnail %s: %v", imageURL, err)
			return
		}

		fyne.Do(func() {
			c.mu.Lock()
			current := c.imageURL
			c.mu.Unlock()
			if current != imageURL {
				return
			}
			c.image.Resource = NewThumbnailResource(imageURL, data)
			c.image.Refresh()
		})
	}()
}

// CreateRenderer creates the widget renderer
func (c *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	return &recipeCardRenderer{card: c}
}

// recipeCardRenderer renders the recipe card widget
type recipeCardRenderer struct {
	card       *RecipeCard
	background *canvas.Rectangle
	layout     *fyne.Container
}

// Layout arranges the components
func (r *recipeCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.background.Resize(size)
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *recipeCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh refreshes the renderer
func (r *recipeCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.background.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *recipeCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.background, r.layout}
}

// Destroy cleans up the renderer
func (r *recipeCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *recipeCardRenderer) createLayout() {
	c := r.card

	r.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	r.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.background.StrokeWidth = 1
	r.background.CornerRadius = theme.InputRadiusSize()

	// Name row with the bookmark toggle pinned right
	header := container.NewBorder(nil, nil, nil, c.bookmarkBtn, c.nameLabel)

	// Time on the left, calories in the middle, rating on the right
	meta := container.NewBorder(nil, nil, c.timeLabel, c.ratingLabel,
		container.NewCenter(c.caloriesText))

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(CardWidth, 0))

	r.layout = container.NewPadded(container.NewVBox(
		c.image,
		header,
		c.subtitleLabel,
		meta,
		c.tagsLabel,
		spacer,
	))
}
