package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ytget/recipebook/internal/model"
)

// Preferences is the key-value slice of fyne.Preferences used by the store.
// Any fyne.Preferences satisfies it.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// Settings keys for Fyne preferences
const (
	KeyBookmarks = "bookmarkedRecipes"
	KeyDarkMode  = "darkMode"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultDarkMode = false
	DefaultLanguage = "system"
)

// Settings holds the locally persisted user state: bookmarks, theme flag and
// interface language. Values are read once by Load and written through on
// every change; memory stays authoritative after Load.
type Settings struct {
	prefs  Preferences
	logger *slog.Logger

	mu        sync.RWMutex
	bookmarks *model.BookmarkSet
	darkMode  bool
}

// NewSettings creates a new settings manager over prefs
func NewSettings(prefs Preferences) *Settings {
	return &Settings{
		prefs:     prefs,
		logger:    slog.Default(),
		bookmarks: model.NewBookmarkSet(nil),
		darkMode:  DefaultDarkMode,
	}
}

// SetLogger replaces the logger used for persistence problems
func (s *Settings) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Load reads bookmarks and the theme flag from preferences. Malformed slots
// are logged and replaced by defaults instead of failing startup.
func (s *Settings) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int
	if raw := s.prefs.String(KeyBookmarks); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			s.logger.Warn("discarding malformed bookmarks", "key", KeyBookmarks, "error", err)
			ids = nil
		}
	}
	s.bookmarks = model.NewBookmarkSet(ids)

	s.darkMode = DefaultDarkMode
	if raw := s.prefs.String(KeyDarkMode); raw != "" {
		var dark bool
		if err := json.Unmarshal([]byte(raw), &dark); err != nil {
			s.logger.Warn("discarding malformed theme flag", "key", KeyDarkMode, "error", err)
		} else {
			s.darkMode = dark
		}
	}
}

// IsBookmarked reports whether the recipe is bookmarked
func (s *Settings) IsBookmarked(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks.Has(id)
}

// Bookmarks returns the bookmarked IDs in insertion order
func (s *Settings) Bookmarks() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks.IDs()
}

// ToggleBookmark flips membership of id, persists the whole set and returns
// whether id was bookmarked before the toggle
func (s *Settings) ToggleBookmark(id int) (wasBookmarked bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasBookmarked = s.bookmarks.Toggle(id)
	if err := s.writeJSON(KeyBookmarks, s.bookmarks.IDs()); err != nil {
		return wasBookmarked, err
	}
	return wasBookmarked, nil
}

// IsDarkMode returns the theme flag
func (s *Settings) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// ToggleDarkMode flips and persists the theme flag, returning the new value
func (s *Settings) ToggleDarkMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	return s.darkMode, s.writeJSON(KeyDarkMode, s.darkMode)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs.String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.prefs.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func (s *Settings) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.prefs.SetString(key, string(data))
	return nil
}
