package model

// Package model defines the domain data structures shared across the app:
// recipes as served by the remote catalog, editable drafts, query state,
// pagination math, bookmarks and the dialog view mode. Structures carry no
// I/O and are safe to copy into UI snapshots.
