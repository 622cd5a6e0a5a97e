package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/stretchr/testify/assert"
)

func touch(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from, to fyne.Position
		held     time.Duration
		want     GestureType
	}{
		{"tap", fyne.NewPos(10, 10), fyne.NewPos(12, 11), 50 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(10, 10), fyne.NewPos(10, 10), time.Second, GestureLongPress},
		{"swipe left", fyne.NewPos(300, 100), fyne.NewPos(100, 110), 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(100, 100), fyne.NewPos(300, 90), 100 * time.Millisecond, GestureSwipeRight},
		{"swipe up", fyne.NewPos(100, 300), fyne.NewPos(110, 100), 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", fyne.NewPos(100, 100), fyne.NewPos(90, 300), 100 * time.Millisecond, GestureSwipeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

			start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
			gh.now = func() time.Time { return start }
			gh.TouchDown(touch(tt.from.X, tt.from.Y))

			gh.now = func() time.Time { return start.Add(tt.held) }
			gh.TouchUp(touch(tt.to.X, tt.to.Y))

			assert.Equal(t, []GestureType{tt.want}, got)
		})
	}
}

func TestGestureHandler_CancelSuppressesGesture(t *testing.T) {
	fired := false
	gh := NewGestureHandler(func(GestureType) { fired = true })

	gh.TouchDown(touch(0, 0))
	gh.TouchCancel(touch(0, 0))
	gh.TouchUp(touch(200, 0))

	assert.False(t, fired)
}

func TestPageStep(t *testing.T) {
	assert.Equal(t, 1, PageStep(GestureSwipeLeft))
	assert.Equal(t, -1, PageStep(GestureSwipeRight))
	assert.Equal(t, 0, PageStep(GestureSwipeDown))
	assert.Equal(t, 0, PageStep(GestureTap))
	assert.Equal(t, "swipe-left", GestureSwipeLeft.String())
}
