package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose        = "×"
	IconBookmarked   = "♥"
	IconUnbookmarked = "♡"
	IconClock        = "⏱"
	IconStar         = "★"
	IconSun          = "☀"
	IconMoon         = "☾"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	MoreTagsFormat     = "+%d"
	CaloriesFormat     = "%d kcal"
)

// Card layout
const (
	CardWidth       float32 = 260
	CardHeight      float32 = 340
	CardImageHeight float32 = 150
	CardVisibleTags         = 2

	// Mobile-specific sizing
	MobileCardWidth  float32 = 320
	MobileCardHeight float32 = 360
)

// Filter row columns
const (
	DesktopFilterColumns   = 4
	LandscapeFilterColumns = 2
)

// Dialog sizing
const (
	DetailDialogWidth  float32 = 640
	DetailDialogHeight float32 = 620
	DetailImageHeight  float32 = 220
	FormDialogWidth    float32 = 560
	FormDialogHeight   float32 = 640
)

// Toast notification sizing
const (
	ToastWidth float32 = 320
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 1180
	DefaultWindowHeight float32 = 820
)

// Timeouts for UI-initiated work
const (
	ThumbnailTimeout = 20 * time.Second
)
