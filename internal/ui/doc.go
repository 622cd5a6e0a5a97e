package ui

// Package ui contains the Fyne-based desktop user interface for the recipe
// book. It renders catalog controller snapshots as a filterable recipe grid
// with pagination, detail and add/edit dialogs, and corner notifications.
// All UI strings are localized via Localization.
