package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/recipebook/internal/model"
)

// Custom color names for recipe badges
const (
	ColorNameCalorieLow    fyne.ThemeColorName = "calorieLow"
	ColorNameCalorieMedium fyne.ThemeColorName = "calorieMedium"
	ColorNameCalorieHigh   fyne.ThemeColorName = "calorieHigh"
	ColorNameBookmark      fyne.ThemeColorName = "bookmark"
)

// CompactTheme defines a compact theme for the UI with reduced padding and
// font sizes. The light/dark variant is chosen by the app, not the OS.
type CompactTheme struct {
	dark bool
}

// NewCompactTheme creates a new compact theme in the given variant
func NewCompactTheme(dark bool) fyne.Theme {
	return &CompactTheme{dark: dark}
}

// IsDark reports whether the theme forces the dark variant
func (t *CompactTheme) IsDark() bool {
	return t.dark
}

// variant returns the forced theme variant
func (t *CompactTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.variant()

	switch name {
	case theme.ColorNameSuccess, ColorNameCalorieLow:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green
	case ColorNameCalorieMedium, theme.ColorNameWarning:
		return color.RGBA{R: 230, G: 162, B: 0, A: 255} // Amber
	case theme.ColorNameError, ColorNameCalorieHigh:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255} // Red
	case ColorNameBookmark:
		return color.RGBA{R: 233, G: 30, B: 99, A: 255} // Pink heart
	case theme.ColorNamePrimary:
		return color.RGBA{R: 234, G: 88, B: 12, A: 255} // Orange for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 18 // Reduced from default 24
	case theme.SizeNameSubHeadingText:
		return 15 // Reduced from default 18
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 4 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	return theme.DefaultTheme().Size(name)
}

// CalorieColorName maps a calorie band to its badge color
func CalorieColorName(band model.CalorieBand) fyne.ThemeColorName {
	switch band {
	case model.CalorieBandLow:
		return ColorNameCalorieLow
	case model.CalorieBandMedium:
		return ColorNameCalorieMedium
	default:
		return ColorNameCalorieHigh
	}
}
