package model

// RecipeList is the in-memory page of recipes shown to the user.
// Entries are keyed by ID; positional indices are never used for reconciliation.
type RecipeList []Recipe

// IndexOf returns the position of the recipe with the given ID, or -1
func (l RecipeList) IndexOf(id int) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a recipe with the given ID is present
func (l RecipeList) Contains(id int) bool {
	return l.IndexOf(id) >= 0
}

// Prepend returns a new list with r in front. An existing entry with the
// same ID is dropped so IDs stay unique.
func (l RecipeList) Prepend(r Recipe) RecipeList {
	out := make(RecipeList, 0, len(l)+1)
	out = append(out, r)
	for _, existing := range l {
		if existing.ID == r.ID {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// ReplaceByIDAs returns a new list where the entry keyed by id is replaced
// with r in place. r may carry a different ID when the remote echoes a new
// one. The second result is false when no entry matched.
func (l RecipeList) ReplaceByIDAs(id int, r Recipe) (RecipeList, bool) {
	idx := l.IndexOf(id)
	out := l.Clone()
	if idx < 0 {
		return out, false
	}
	out[idx] = r
	return out, true
}

// RemoveByID returns a new list without the entry matching id
func (l RecipeList) RemoveByID(id int) (RecipeList, bool) {
	out := make(RecipeList, 0, len(l))
	removed := false
	for _, r := range l {
		if r.ID == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

// Clone returns a shallow copy of the list
func (l RecipeList) Clone() RecipeList {
	if l == nil {
		return nil
	}
	out := make(RecipeList, len(l))
	copy(out, l)
	return out
}
