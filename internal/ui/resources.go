package ui

import (
	"context"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "recipebook.png"
)

// ThumbnailSource returns encoded image bytes for a recipe image URL.
// *platform.ThumbnailLoader satisfies it.
type ThumbnailSource interface {
	Load(ctx context.Context, imageURL string) ([]byte, error)
}

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderImage is shown until a thumbnail arrives or when it fails
func PlaceholderImage() fyne.Resource {
	return theme.FileImageIcon()
}

// NewThumbnailResource wraps thumbnail bytes in a named static resource
func NewThumbnailResource(imageURL string, data []byte) fyne.Resource {
	name := path.Base(imageURL)
	if name == "" || name == "." || name == "/" {
		name = "thumbnail"
	}
	return fyne.NewStaticResource(name, data)
}
