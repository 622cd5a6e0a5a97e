package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/recipebook/internal/model"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q (valid values: text, json, yaml)", s)
}

// Page is one page of list results as printed by the list command
type Page struct {
	Recipes   model.RecipeList `json:"recipes" yaml:"recipes"`
	Total     int              `json:"total" yaml:"total"`
	Page      int              `json:"page" yaml:"page"` // 1-based
	PageCount int              `json:"pageCount" yaml:"pageCount"`
}

// NewPage builds a Page from a zero-based page index and the reported total
func NewPage(recipes model.RecipeList, page, total int) Page {
	if recipes == nil {
		recipes = model.RecipeList{}
	}
	return Page{
		Recipes:   recipes,
		Total:     total,
		Page:      page + 1,
		PageCount: model.PageCount(total),
	}
}

// RecipePage writes a list page
func RecipePage(w io.Writer, p Page, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, p)
	case FormatYAML:
		return writeYAML(w, p)
	}

	if len(p.Recipes) == 0 {
		_, err := fmt.Fprintln(w, RenderMuted("No recipes found"))
		return err
	}

	var b strings.Builder
	for _, r := range p.Recipes {
		b.WriteString(recipeLine(r))
		b.WriteString("\n")
	}
	first, last := model.PageRange(p.Page-1, p.Total)
	b.WriteString(RenderMuted(fmt.Sprintf("Showing %d-%d of %d recipes (page %d/%d)",
		first, last, p.Total, p.Page, p.PageCount)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// recipeLine is the one-line summary used by the list command
func recipeLine(r model.Recipe) string {
	parts := []string{
		IDStyle.Render(fmt.Sprintf("#%d", r.ID)),
		TitleStyle.Render(r.Name),
	}
	if subtitle := r.Subtitle(); subtitle != "" {
		parts = append(parts, RenderMuted(subtitle))
	}
	parts = append(parts,
		fmt.Sprintf("%s %d min", IconClock, r.TotalMinutes()),
		CalorieStyle(r.CalorieBand()).Render(fmt.Sprintf("%d kcal", r.CaloriesPerServing)),
	)
	if r.Rating > 0 {
		parts = append(parts, AccentStyle.Render(fmt.Sprintf("%s %.1f", IconStar, r.Rating)))
	}
	if tags, more := r.VisibleTags(2); len(tags) > 0 {
		text := strings.Join(tags, ", ")
		if more > 0 {
			text += fmt.Sprintf(" +%d", more)
		}
		parts = append(parts, TagStyle.Render(text))
	}
	return strings.Join(parts, "  ")
}

// Recipe writes the full detail of one recipe
func Recipe(w io.Writer, r model.Recipe, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(r.Name))
	b.WriteString("\n")
	if subtitle := r.Subtitle(); subtitle != "" {
		b.WriteString(RenderMuted(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(RenderSeparator())
	b.WriteString("\n")

	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "%-12s %s\n", label+":", value)
	}
	field("Prep time", fmt.Sprintf("%d min", r.PrepTimeMinutes))
	field("Cook time", fmt.Sprintf("%d min", r.CookTimeMinutes))
	field("Servings", fmt.Sprintf("%d", r.Servings))
	field("Calories", CalorieStyle(r.CalorieBand()).Render(fmt.Sprintf("%d kcal", r.CaloriesPerServing)))
	field("Rating", r.RatingLabel())
	field("Tags", strings.Join(r.Tags, ", "))
	field("Meal types", strings.Join(r.MealType, ", "))
	field("Image", r.Image)

	b.WriteString("\n")
	b.WriteString(RenderHeader("Ingredients"))
	b.WriteString("\n")
	for _, item := range r.Ingredients {
		fmt.Fprintf(&b, "  %s %s\n", Bullet, item)
	}

	b.WriteString("\n")
	b.WriteString(RenderHeader("Instructions"))
	b.WriteString("\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Tags writes the tag list
func Tags(w io.Writer, tags []string, f Format) error {
	if tags == nil {
		tags = []string{}
	}
	switch f {
	case FormatJSON:
		return writeJSON(w, tags)
	case FormatYAML:
		return writeYAML(w, tags)
	}

	var b strings.Builder
	for _, tag := range tags {
		b.WriteString(TagStyle.Render(tag))
		b.WriteString("\n")
	}
	b.WriteString(RenderMuted(fmt.Sprintf("%d tags", len(tags))))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
