package platform

// Package platform contains OS/platform integration and image plumbing:
// cache directories, opening recipe links in the browser, and thumbnails.
