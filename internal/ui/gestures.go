package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
	now               func() time.Time
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
	gh.tracking = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false
	duration := gh.now().Sub(gh.touchStartTime)

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	moved := abs32(dx) >= gh.swipeThreshold || abs32(dy) >= gh.swipeThreshold

	switch {
	case moved:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(_ *mobile.TouchEvent) {
	gh.tracking = false
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}
	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// PageStep maps a horizontal swipe to a page delta: left moves forward,
// right moves back, anything else stays.
func PageStep(g GestureType) int {
	switch g {
	case GestureSwipeLeft:
		return 1
	case GestureSwipeRight:
		return -1
	default:
		return 0
	}
}

// SwipeableWidget wraps content and reports gestures on touch devices
type SwipeableWidget struct {
	widget.BaseWidget
	content        fyne.CanvasObject
	gestureHandler *GestureHandler
}

var _ mobile.Touchable = (*SwipeableWidget)(nil)

// NewSwipeableWidget creates a new swipeable widget
func NewSwipeableWidget(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeableWidget {
	sw := &SwipeableWidget{
		content:        content,
		gestureHandler: NewGestureHandler(onGesture),
	}
	sw.ExtendBaseWidget(sw)
	return sw
}

// CreateRenderer creates the widget renderer
func (sw *SwipeableWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.content)
}

// TouchDown handles touch down events
func (sw *SwipeableWidget) TouchDown(event *mobile.TouchEvent) {
	sw.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sw *SwipeableWidget) TouchUp(event *mobile.TouchEvent) {
	sw.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sw *SwipeableWidget) TouchCancel(event *mobile.TouchEvent) {
	sw.gestureHandler.TouchCancel(event)
}
