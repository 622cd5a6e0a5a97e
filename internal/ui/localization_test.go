package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/recipebook/internal/catalog"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Recipe Book", l.GetText(KeyAppTitle))
	assert.Equal(t, "Error fetching recipes", l.GetText(catalog.MsgFetchError))
	assert.Equal(t, "unknown_key", l.GetText("unknown_key"))

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Книга рецептов", l.GetText(KeyAppTitle))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
}

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts[FallbackLanguage] {
		for lang := range l.GetAvailableLanguages() {
			_, ok := l.texts[lang][key]
			assert.True(t, ok, "language %s misses %s", lang, key)
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Pasta has been created.", l.Format(catalog.MsgRecipeAddedDesc, "Pasta"))
	assert.Equal(t, "Showing 13-24 of 25 recipes", l.Format(KeyShowing, 13, 24, 25))
	assert.Equal(t, "The recipe has been removed.", l.Format(catalog.MsgRecipeDeleteDesc))
}

func TestLocalization_OptionLabel(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Breakfast", l.OptionLabel("breakfast", "x"))
	assert.Equal(t, "Brunch", l.OptionLabel("brunch", "Brunch"))

	l.SetLanguage("pt")
	assert.Equal(t, "Jantar", l.OptionLabel("dinner", "Dinner"))
}

func TestLocalization_SystemLanguage(t *testing.T) {
	original := detectLanguage
	t.Cleanup(func() { detectLanguage = original })

	tests := []struct {
		name   string
		detect func() (string, error)
		want   string
	}{
		{"supported", func() (string, error) { return "pt", nil }, "pt"},
		{"upper case", func() (string, error) { return "RU", nil }, "ru"},
		{"unsupported", func() (string, error) { return "de", nil }, FallbackLanguage},
		{"error", func() (string, error) { return "", errors.New("no locale") }, FallbackLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detectLanguage = tt.detect
			l := NewLocalization()
			l.SetLanguage(LanguageSystem)
			assert.Equal(t, tt.want, l.GetCurrentLanguage())
		})
	}
}
