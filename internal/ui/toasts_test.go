package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipebook/internal/catalog"
	"github.com/ytget/recipebook/internal/notify"
)

// collect walks a container tree and returns the labels and buttons in it
func collect(obj fyne.CanvasObject) (labels []*widget.Label, buttons []*widget.Button) {
	switch o := obj.(type) {
	case *widget.Label:
		labels = append(labels, o)
	case *widget.Button:
		buttons = append(buttons, o)
	case *fyne.Container:
		for _, child := range o.Objects {
			l, b := collect(child)
			labels = append(labels, l...)
			buttons = append(buttons, b...)
		}
	}
	return labels, buttons
}

func labelTexts(labels []*widget.Label) []string {
	texts := make([]string, len(labels))
	for i, l := range labels {
		texts[i] = l.Text
	}
	return texts
}

func TestToastStack_ResolvesTexts(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ts := NewToastStack(NewLocalization(), nil)
	ts.Update([]notify.Notification{
		{ID: "a", Title: catalog.MsgRecipeAdded, Description: catalog.MsgRecipeAddedDesc, Args: []any{"Pasta"}},
		{ID: "b", Title: catalog.MsgFetchError, Description: catalog.MsgTryAgainLater, Variant: notify.VariantDestructive},
		{ID: "c", Title: catalog.MsgBookmarkAdded},
	})

	require.Len(t, ts.Notifications(), 3)
	require.Len(t, ts.box.Objects, 3)

	labels, _ := collect(ts.box.Objects[0])
	assert.Equal(t, []string{"Recipe added successfully!", "Pasta has been created."}, labelTexts(labels))

	labels, _ = collect(ts.box.Objects[1])
	require.Len(t, labels, 2)
	assert.Equal(t, "Error fetching recipes", labels[0].Text)
	assert.Equal(t, widget.HighImportance, labels[0].Importance)

	labels, _ = collect(ts.box.Objects[2])
	assert.Equal(t, []string{"Added to bookmarks"}, labelTexts(labels))

	ts.Update(nil)
	assert.Empty(t, ts.box.Objects)
}

func TestToastStack_CloseButtonDismisses(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var dismissed []string
	ts := NewToastStack(NewLocalization(), func(id string) { dismissed = append(dismissed, id) })
	ts.Update([]notify.Notification{{ID: "first", Title: catalog.MsgRecipeDeleted}, {ID: "second", Title: catalog.MsgRecipeUpdated}})

	_, buttons := collect(ts.box.Objects[1])
	require.Len(t, buttons, 1)
	test.Tap(buttons[0])

	assert.Equal(t, []string{"second"}, dismissed)
}
