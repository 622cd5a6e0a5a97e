package ui

import (
	"context"
	"log"
	"slices"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipebook/internal/catalog"
	"github.com/ytget/recipebook/internal/config"
	"github.com/ytget/recipebook/internal/model"
	"github.com/ytget/recipebook/internal/notify"
)

// RootUI represents the main UI structure: filter bar, recipe grid,
// pagination, dialogs and the toast overlay. It renders controller
// snapshots and forwards user actions back to the controller.
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	app          fyne.App
	ctrl         *catalog.Controller
	notifier     *notify.Notifier
	settings     *config.Settings
	localization *Localization
	thumbs       ThumbnailSource
	layout       *DeviceLayout

	// Filter bar
	searchEntry *widget.Entry
	tagSelect   *widget.Select
	mealSelect  *widget.Select
	sortSelect  *widget.Select
	clearBtn    *widget.Button
	addBtn      *widget.Button
	themeBtn    *widget.Button
	badgeBox    *fyne.Container
	loadingBar  *widget.ProgressBarInfinite

	// Results
	statusLabel *widget.Label
	grid        *fyne.Container
	cards       []*RecipeCard
	emptyTitle  *widget.Label
	emptyHint   *widget.Label
	emptyBox    *fyne.Container
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	pageBox     *fyne.Container
	pager       *fyne.Container
	toasts      *ToastStack

	// Dialogs
	detail *RecipeDetail
	form   *RecipeForm

	state   catalog.State
	tags    []string
	syncing bool
	hiding  bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, ctrl *catalog.Controller,
	notifier *notify.Notifier, settings *config.Settings, thumbs ThumbnailSource) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		app:          app,
		ctrl:         ctrl,
		notifier:     notifier,
		settings:     settings,
		localization: localization,
		thumbs:       thumbs,
		layout:       NewDeviceLayout(fyne.CurrentDevice()),
	}

	if logo, err := LoadLogoResource(); err == nil {
		window.SetIcon(logo)
	}

	initial := ctrl.Snapshot()
	ui.applyTheme(initial.DarkMode)

	ui.setupUI()
	ui.render(initial)

	ctrl.SetUpdateCallback(func(s catalog.State) {
		fyne.Do(func() { ui.render(s) })
	})
	notifier.SetUpdateCallback(func(notes []notify.Notification) {
		fyne.Do(func() { ui.toasts.Update(notes) })
	})

	log.Printf("RootUI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	ui.searchEntry.ActionItem = widget.NewIcon(theme.SearchIcon())
	ui.searchEntry.OnChanged = func(text string) {
		if !ui.syncing {
			ui.ctrl.SetSearch(text)
		}
	}

	ui.tagSelect = widget.NewSelect(nil, ui.onTagSelected)
	ui.tagSelect.PlaceHolder = l.GetText(KeyAllTags)
	ui.tags = nil

	ui.mealSelect = widget.NewSelect(ui.optionLabels(model.MealTypes), func(label string) {
		if !ui.syncing {
			ui.ctrl.SetMeal(ui.optionValue(model.MealTypes, label))
		}
	})
	ui.mealSelect.PlaceHolder = ui.optionLabel(model.MealTypes, model.FilterAll)

	ui.sortSelect = widget.NewSelect(ui.optionLabels(model.SortOptions), func(label string) {
		if !ui.syncing {
			ui.ctrl.SetSort(ui.optionValue(model.SortOptions, label))
		}
	})
	ui.sortSelect.PlaceHolder = ui.optionLabel(model.SortOptions, model.SortDefault)

	ui.clearBtn = widget.NewButtonWithIcon(l.GetText(KeyClearFilters), theme.ContentClearIcon(), ui.ctrl.ClearFilters)

	ui.addBtn = widget.NewButtonWithIcon(l.GetText(KeyAddRecipe), theme.ContentAddIcon(), ui.ctrl.OpenAdd)
	ui.addBtn.Importance = widget.HighImportance

	ui.themeBtn = widget.NewButton(IconMoon, func() { ui.ctrl.ToggleTheme() })
	ui.themeBtn.Importance = widget.LowImportance

	title := canvas.NewText(l.GetText(KeyAppTitle), theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextHeadingSize()

	header := container.NewBorder(nil, nil, title, container.NewHBox(ui.themeBtn, ui.addBtn))

	filters := container.NewGridWithColumns(ui.layout.FilterColumns(),
		ui.searchEntry, ui.tagSelect, ui.mealSelect, ui.sortSelect)
	filterRow := container.NewBorder(nil, nil, nil, ui.clearBtn, filters)

	ui.badgeBox = container.NewHBox()
	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingBar.Hide()

	top := container.NewVBox(header, filterRow, ui.badgeBox, ui.loadingBar)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Importance = widget.LowImportance

	ui.grid = container.NewGridWrap(ui.layout.CardSize())
	ui.cards = nil

	ui.emptyTitle = widget.NewLabel(l.GetText(catalog.MsgNoRecipesFound))
	ui.emptyTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.emptyTitle.Alignment = fyne.TextAlignCenter
	ui.emptyHint = widget.NewLabel("")
	ui.emptyHint.Alignment = fyne.TextAlignCenter
	ui.emptyBox = container.NewVBox(ui.emptyTitle, ui.emptyHint)
	ui.emptyBox.Hide()

	ui.prevBtn = widget.NewButtonWithIcon(l.GetText(KeyPrevious), theme.NavigateBackIcon(), func() {
		go ui.run("previous page", func() error { return ui.ctrl.PrevPage(ui.ctx) })
	})
	ui.nextBtn = widget.NewButtonWithIcon(l.GetText(KeyNext), theme.NavigateNextIcon(), func() {
		go ui.run("next page", func() error { return ui.ctrl.NextPage(ui.ctx) })
	})
	ui.nextBtn.IconPlacement = widget.ButtonIconTrailingText
	ui.pageBox = container.NewHBox()
	ui.pager = container.NewCenter(container.NewHBox(ui.prevBtn, ui.pageBox, ui.nextBtn))
	ui.pager.Hide()

	results := container.NewVBox(ui.statusLabel, ui.grid, ui.emptyBox, ui.pager)
	scroll := container.NewVScroll(container.NewPadded(results))

	var center fyne.CanvasObject = scroll
	if ui.layout.IsMobile() {
		center = NewSwipeableWidget(scroll, ui.onGesture)
	}

	ui.toasts = NewToastStack(ui.localization, func(id string) { ui.notifier.Dismiss(id) })
	ui.toasts.Update(ui.notifier.Active())

	content := container.NewBorder(container.NewPadded(top), nil, nil, nil, center)
	ui.window.SetContent(container.NewStack(content, ui.toasts.Container()))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	refreshItem := fyne.NewMenuItem(l.GetText(KeyRefresh), func() {
		go ui.run("refresh", func() error { return ui.ctrl.Refresh(ui.ctx) })
	})
	addItem := fyne.NewMenuItem(l.GetText(KeyAddRecipe), ui.ctrl.OpenAdd)
	themeItem := fyne.NewMenuItem(l.GetText(KeyToggleTheme), func() { ui.ctrl.ToggleTheme() })

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	current := ui.settings.GetLanguage()
	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		item := fyne.NewMenuItem(options[code], func() { ui.onLanguageChange(langCode) })
		item.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), addItem, refreshItem),
		fyne.NewMenu(l.GetText(KeyView), themeItem),
		languageMenu,
	))
}

// onLanguageChange switches the interface language and rebuilds the screen
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)

	state := ui.state
	ui.setupUI()
	ui.render(state)
}

// onTagSelected maps the tag picker back to a filter value
func (ui *RootUI) onTagSelected(label string) {
	if ui.syncing {
		return
	}
	if label == ui.localization.GetText(KeyAllTags) {
		ui.ctrl.SetTag(model.FilterAll)
		return
	}
	ui.ctrl.SetTag(label)
}

// onGesture pages through results on touch devices
func (ui *RootUI) onGesture(g GestureType) {
	switch PageStep(g) {
	case 1:
		go ui.run("next page", func() error { return ui.ctrl.NextPage(ui.ctx) })
	case -1:
		go ui.run("previous page", func() error { return ui.ctrl.PrevPage(ui.ctx) })
	}
}

// run executes a controller call off the UI goroutine and logs failures.
// User-facing errors are reported through notifications by the controller.
func (ui *RootUI) run(action string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("Failed to %s: %v", action, err)
	}
}

// render brings every widget in line with s. Must run on the UI goroutine.
func (ui *RootUI) render(s catalog.State) {
	ui.state = s
	ui.applyTheme(s.DarkMode)

	ui.syncing = true
	ui.syncFilters(s)
	ui.syncing = false

	if s.Query.HasFilters() {
		ui.clearBtn.Enable()
	} else {
		ui.clearBtn.Disable()
	}
	ui.renderBadges(s.Query)

	if s.Loading || s.DetailLoading {
		ui.loadingBar.Show()
		ui.loadingBar.Start()
	} else {
		ui.loadingBar.Stop()
		ui.loadingBar.Hide()
	}

	if s.DarkMode {
		ui.themeBtn.SetText(IconSun)
	} else {
		ui.themeBtn.SetText(IconMoon)
	}

	ui.renderResults(s)
	ui.renderPager(s)
	ui.renderDialogs(s)
}

// syncFilters copies the query into the pickers without re-triggering them
func (ui *RootUI) syncFilters(s catalog.State) {
	if ui.searchEntry.Text != s.Query.Search {
		ui.searchEntry.SetText(s.Query.Search)
	}

	if !slices.Equal(ui.tags, s.Tags) {
		ui.tags = append([]string(nil), s.Tags...)
		ui.tagSelect.Options = append([]string{ui.localization.GetText(KeyAllTags)}, s.Tags...)
		ui.tagSelect.Refresh()
	}
	syncSelect(ui.tagSelect, s.Query.ActiveTag())
	syncSelect(ui.mealSelect, ui.labelFor(model.MealTypes, s.Query.ActiveMeal()))
	syncSelect(ui.sortSelect, ui.labelFor(model.SortOptions, s.Query.ActiveSort()))
}

func syncSelect(sel *widget.Select, label string) {
	if label == "" {
		if sel.Selected != "" {
			sel.ClearSelected()
		}
		return
	}
	if sel.Selected != label {
		sel.SetSelected(label)
	}
}

// renderBadges lists the active filters under the filter bar
func (ui *RootUI) renderBadges(q model.QueryState) {
	l := ui.localization
	var badges []fyne.CanvasObject
	if q.Search != "" {
		badges = append(badges, badge(l.Format(KeyBadgeSearch, q.Search)))
	}
	if tag := q.ActiveTag(); tag != "" {
		badges = append(badges, badge(l.Format(KeyBadgeTag, tag)))
	}
	if meal := q.ActiveMeal(); meal != "" {
		badges = append(badges, badge(l.Format(KeyBadgeMeal, ui.labelFor(model.MealTypes, meal))))
	}
	if sortBy := q.ActiveSort(); sortBy != "" {
		badges = append(badges, badge(l.Format(KeyBadgeSort, ui.labelFor(model.SortOptions, sortBy))))
	}
	ui.badgeBox.Objects = badges
	ui.badgeBox.Refresh()
}

func badge(text string) fyne.CanvasObject {
	label := widget.NewLabel(text)
	label.Importance = widget.HighImportance
	return label
}

// renderResults fills the grid, or shows the empty state
func (ui *RootUI) renderResults(s catalog.State) {
	l := ui.localization

	if s.Total > 0 {
		first, last := s.ShowingRange()
		ui.statusLabel.SetText(l.Format(KeyShowing, first, last, s.Total))
	} else if s.Loading {
		ui.statusLabel.SetText(l.GetText(KeyLoading))
	} else {
		ui.statusLabel.SetText("")
	}

	if len(s.Recipes) == 0 {
		ui.grid.Objects = nil
		ui.grid.Refresh()
		if s.Loading {
			ui.emptyBox.Hide()
		} else {
			ui.emptyHint.SetText(l.GetText(s.EmptyHint()))
			ui.emptyBox.Show()
		}
		return
	}
	ui.emptyBox.Hide()

	for len(ui.cards) < len(s.Recipes) {
		card := NewRecipeCard(ui.localization, ui.thumbs)
		card.SetCallbacks(ui.onOpenRecipe, ui.onToggleBookmark)
		ui.cards = append(ui.cards, card)
	}

	objects := make([]fyne.CanvasObject, len(s.Recipes))
	for i, r := range s.Recipes {
		ui.cards[i].UpdateRecipe(r, s.IsBookmarked(r.ID))
		objects[i] = ui.cards[i]
	}
	ui.grid.Objects = objects
	ui.grid.Refresh()
}

// renderPager shows up to five numbered page buttons around the current page
func (ui *RootUI) renderPager(s catalog.State) {
	if s.PageCount() <= 1 {
		ui.pager.Hide()
		return
	}

	pages := s.VisiblePages()
	buttons := make([]fyne.CanvasObject, 0, len(pages))
	for _, p := range pages {
		page := p
		btn := widget.NewButton(strconv.Itoa(page+1), func() {
			go ui.run("change page", func() error { return ui.ctrl.SetPage(ui.ctx, page) })
		})
		if page == s.Query.Page {
			btn.Importance = widget.HighImportance
		}
		buttons = append(buttons, btn)
	}
	ui.pageBox.Objects = buttons
	ui.pageBox.Refresh()

	if s.HasPrev() {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
	if s.HasNext() {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}
	ui.pager.Show()
}

// renderDialogs opens or closes dialogs to match the view mode
func (ui *RootUI) renderDialogs(s catalog.State) {
	switch s.Mode {
	case model.ModeViewing:
		ui.hideForm()
		if s.Selected == nil {
			ui.hideDetail()
			return
		}
		if ui.detail != nil && ui.detail.RecipeID() == s.Selected.ID {
			ui.detail.SetBookmarked(s.IsBookmarked(s.Selected.ID))
			return
		}
		ui.hideDetail()
		ui.detail = NewRecipeDetail(ui.window, ui.localization, ui.thumbs, *s.Selected,
			s.IsBookmarked(s.Selected.ID), DetailActions{
				OnEdit: func() {
					if err := ui.ctrl.OpenEdit(); err != nil {
						log.Printf("Failed to open editor: %v", err)
					}
				},
				OnDelete: func(id int) {
					go ui.run("delete recipe", func() error { return ui.ctrl.Delete(ui.ctx, id) })
				},
				OnBookmark: ui.onToggleBookmark,
				OnClosed:   ui.onDialogClosed,
			})
		ui.detail.Show()

	case model.ModeAdding, model.ModeEditing:
		ui.hideDetail()
		if ui.form != nil && ui.form.Mode() == s.Mode {
			return
		}
		ui.hideForm()
		ui.form = NewRecipeForm(ui.window, ui.localization, s.Mode, s.Draft, ui.onSubmit, ui.onDialogClosed)
		ui.form.Show()

	default:
		ui.hideDetail()
		ui.hideForm()
	}
}

// onDialogClosed handles dialogs dismissed by the user
func (ui *RootUI) onDialogClosed() {
	if ui.hiding {
		return
	}
	ui.detail = nil
	ui.form = nil
	ui.ctrl.Close()
}

// hideDetail closes the detail dialog without touching controller state
func (ui *RootUI) hideDetail() {
	if ui.detail == nil {
		return
	}
	ui.hiding = true
	ui.detail.Hide()
	ui.hiding = false
	ui.detail = nil
}

// hideForm closes the add/edit dialog without touching controller state
func (ui *RootUI) hideForm() {
	if ui.form == nil {
		return
	}
	ui.hiding = true
	ui.form.Hide()
	ui.hiding = false
	ui.form = nil
}

// onSubmit sends the form to the controller; the form stays open on failure
func (ui *RootUI) onSubmit(draft model.RecipeDraft) {
	form := ui.form
	if form == nil {
		return
	}
	form.SetBusy(true)

	mode := form.Mode()
	go func() {
		var err error
		if mode == model.ModeEditing {
			err = ui.ctrl.SubmitEdit(ui.ctx, draft)
		} else {
			err = ui.ctrl.SubmitAdd(ui.ctx, draft)
		}
		if err != nil {
			log.Printf("Failed to submit recipe: %v", err)
			fyne.Do(func() {
				if ui.form == form {
					form.SetBusy(false)
				}
			})
		}
	}()
}

// onOpenRecipe loads and shows the detail view
func (ui *RootUI) onOpenRecipe(id int) {
	go ui.run("open recipe", func() error { return ui.ctrl.OpenDetail(ui.ctx, id) })
}

// onToggleBookmark flips a bookmark; the controller notifies and re-renders
func (ui *RootUI) onToggleBookmark(id int) {
	ui.ctrl.ToggleBookmark(id)
}

// applyTheme installs the compact theme in the requested variant
func (ui *RootUI) applyTheme(dark bool) {
	if current, ok := ui.app.Settings().Theme().(*CompactTheme); ok && current.IsDark() == dark {
		return
	}
	ui.app.Settings().SetTheme(NewCompactTheme(dark))
}

// optionLabels returns the localized labels of opts
func (ui *RootUI) optionLabels(opts []model.Option) []string {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = ui.localization.OptionLabel(o.Value, o.Label)
	}
	return labels
}

// optionValue maps a localized label back to its wire value
func (ui *RootUI) optionValue(opts []model.Option, label string) string {
	for _, o := range opts {
		if ui.localization.OptionLabel(o.Value, o.Label) == label {
			return o.Value
		}
	}
	return ""
}

// optionLabel returns the localized label for value
func (ui *RootUI) optionLabel(opts []model.Option, value string) string {
	return ui.localization.OptionLabel(value, model.OptionLabel(opts, value))
}

// labelFor returns the label for an active value, "" when none is active
func (ui *RootUI) labelFor(opts []model.Option, value string) string {
	if value == "" {
		return ""
	}
	if label := ui.optionLabel(opts, value); label != "" {
		return label
	}
	return value
}
