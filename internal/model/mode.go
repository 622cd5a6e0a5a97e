package model

// ViewMode represents which dialog, if any, is open over the recipe grid
type ViewMode string

const (
	// ModeClosed means no dialog is open
	ModeClosed ViewMode = "Closed"

	// ModeViewing means the detail dialog shows the selected recipe
	ModeViewing ViewMode = "Viewing"

	// ModeAdding means the add dialog is open with a fresh draft
	ModeAdding ViewMode = "Adding"

	// ModeEditing means the edit dialog is open for the selected recipe
	ModeEditing ViewMode = "Editing"
)

// String returns the string representation of ViewMode
func (m ViewMode) String() string {
	return string(m)
}

// IsOpen returns true if any dialog is showing
func (m ViewMode) IsOpen() bool {
	return m == ModeViewing || m == ModeAdding || m == ModeEditing
}

// IsForm returns true if the add or edit form is showing
func (m ViewMode) IsForm() bool {
	return m == ModeAdding || m == ModeEditing
}

// NeedsSelection returns true if the mode only makes sense with a selected recipe
func (m ViewMode) NeedsSelection() bool {
	return m == ModeViewing || m == ModeEditing
}
