package model

// BookmarkSet is an insertion-ordered set of bookmarked recipe IDs
type BookmarkSet struct {
	ids []int
}

// NewBookmarkSet builds a set from ids, dropping duplicates
func NewBookmarkSet(ids []int) *BookmarkSet {
	s := &BookmarkSet{ids: make([]int, 0, len(ids))}
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Has reports whether id is bookmarked
func (s *BookmarkSet) Has(id int) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id and returns whether it was present before
func (s *BookmarkSet) Toggle(id int) (wasPresent bool) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return true
		}
	}
	s.ids = append(s.ids, id)
	return false
}

// Len returns the number of bookmarks
func (s *BookmarkSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the bookmarked IDs in insertion order
func (s *BookmarkSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}
