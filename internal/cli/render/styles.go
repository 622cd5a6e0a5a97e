// Package render prints recipes for the command line in text, JSON or YAML.
// Text output is styled with an adaptive light/dark palette.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/recipebook/internal/model"
)

// Palette, matching the calorie badge colours of the desktop app
var (
	ColorLow = lipgloss.AdaptiveColor{
		Light: "#2ea043",
		Dark:  "#56d364",
	}
	ColorMedium = lipgloss.AdaptiveColor{
		Light: "#e6a200",
		Dark:  "#ffb454",
	}
	ColorHigh = lipgloss.AdaptiveColor{
		Light: "#c62828",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#ea580c",
		Dark:  "#fb923c",
	}
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	LowStyle     = lipgloss.NewStyle().Foreground(ColorLow)
	MediumStyle  = lipgloss.NewStyle().Foreground(ColorMedium)
	HighStyle    = lipgloss.NewStyle().Foreground(ColorHigh)
	TagStyle     = lipgloss.NewStyle().Foreground(ColorAccent).Italic(true)
	IDStyle      = lipgloss.NewStyle().Foreground(ColorMuted).Width(5).Align(lipgloss.Right)
	SectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

const (
	IconStar  = "★"
	IconClock = "⏱"
	Bullet    = "•"
	Separator = "──────────────────────────────────────────"
)

// CalorieStyle returns the style for a calorie band
func CalorieStyle(band model.CalorieBand) lipgloss.Style {
	switch band {
	case model.CalorieBandLow:
		return LowStyle
	case model.CalorieBandMedium:
		return MediumStyle
	default:
		return HighStyle
	}
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}

// RenderHeader renders a section header in uppercase with accent color
func RenderHeader(s string) string {
	return HeaderStyle.Render(strings.ToUpper(s))
}

// RenderSeparator renders the separator line in muted color
func RenderSeparator() string {
	return MutedStyle.Render(Separator)
}
