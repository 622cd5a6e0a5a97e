package catalog

import "github.com/ytget/recipebook/internal/model"

// State is a copy of everything the recipe screen renders
type State struct {
	Query   model.QueryState
	Recipes model.RecipeList
	Total   int
	Tags    []string

	Selected *model.Recipe
	Mode     model.ViewMode
	Draft    model.RecipeDraft

	Loading       bool
	DetailLoading bool

	Bookmarks []int
	DarkMode  bool
}

// PageCount returns the number of pages for the cached total
func (s State) PageCount() int {
	return model.PageCount(s.Total)
}

// VisiblePages returns the page indices that get a pagination button
func (s State) VisiblePages() []int {
	return model.VisiblePages(s.Query.Page, s.PageCount())
}

// ShowingRange returns the 1-based item range for the "Showing a-b of n" label
func (s State) ShowingRange() (first, last int) {
	return model.PageRange(s.Query.Page, s.Total)
}

// HasPrev reports whether a previous page exists
func (s State) HasPrev() bool {
	return s.Query.Page > 0
}

// HasNext reports whether a following page exists
func (s State) HasNext() bool {
	return s.Query.Page < s.PageCount()-1
}

// IsBookmarked reports whether id is in the bookmark set
func (s State) IsBookmarked(id int) bool {
	for _, b := range s.Bookmarks {
		if b == id {
			return true
		}
	}
	return false
}

// EmptyHint returns the text key shown under "No recipes found"
func (s State) EmptyHint() string {
	if s.Query.HasFilters() {
		return MsgAdjustFilters
	}
	return MsgNoRecipesAvailable
}

func (s State) clone() State {
	out := s
	out.Recipes = s.Recipes.Clone()
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	if s.Bookmarks != nil {
		out.Bookmarks = append([]int(nil), s.Bookmarks...)
	}
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	return out
}
