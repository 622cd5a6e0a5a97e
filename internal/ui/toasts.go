package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipebook/internal/notify"
)

// ToastStack renders the visible notifications in the top-right corner of
// the window. Each toast has a close button; expiry is driven by the notifier.
type ToastStack struct {
	localization *Localization
	onDismiss    func(id string)

	box     *fyne.Container
	overlay *fyne.Container
	shown   []notify.Notification
}

// NewToastStack creates an empty toast column
func NewToastStack(localization *Localization, onDismiss func(id string)) *ToastStack {
	ts := &ToastStack{
		localization: localization,
		onDismiss:    onDismiss,
		box:          container.NewVBox(),
	}

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ToastWidth, 0))
	column := container.NewVBox(spacer, ts.box)

	// Pinned right, stacked from the top
	ts.overlay = container.NewBorder(nil, nil, nil, container.NewPadded(column))
	return ts
}

// Container returns the overlay to stack above the main content
func (ts *ToastStack) Container() fyne.CanvasObject {
	return ts.overlay
}

// Notifications returns what is currently shown
func (ts *ToastStack) Notifications() []notify.Notification {
	return ts.shown
}

// Update replaces the shown toasts. Must run on the UI goroutine.
func (ts *ToastStack) Update(notes []notify.Notification) {
	ts.shown = notes
	objects := make([]fyne.CanvasObject, 0, len(notes))
	for _, note := range notes {
		objects = append(objects, ts.createToast(note))
	}
	ts.box.Objects = objects
	ts.box.Refresh()
}

// createToast builds one toast card
func (ts *ToastStack) createToast(note notify.Notification) fyne.CanvasObject {
	titleLabel := widget.NewLabel(ts.localization.GetText(note.Title))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.Wrapping = fyne.TextWrapWord

	background := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	background.StrokeWidth = 1
	background.CornerRadius = theme.InputRadiusSize()

	if note.Variant == notify.VariantDestructive {
		background.FillColor = theme.Color(theme.ColorNameError)
		background.StrokeColor = theme.Color(theme.ColorNameError)
		titleLabel.Importance = widget.HighImportance
	}

	id := note.ID
	closeBtn := widget.NewButton(IconClose, func() {
		if ts.onDismiss != nil {
			ts.onDismiss(id)
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(container.NewBorder(nil, nil, nil, closeBtn, titleLabel))
	if note.Description != "" {
		descLabel := widget.NewLabel(ts.localization.Format(note.Description, note.Args...))
		descLabel.Wrapping = fyne.TextWrapWord
		content.Add(descLabel)
	}

	return container.NewStack(background, container.NewPadded(content))
}
