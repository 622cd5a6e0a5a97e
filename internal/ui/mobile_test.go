package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	fyne.Device
	mobile      bool
	orientation fyne.DeviceOrientation
}

func (d fakeDevice) IsMobile() bool                      { return d.mobile }
func (d fakeDevice) Orientation() fyne.DeviceOrientation { return d.orientation }

func TestDeviceLayout(t *testing.T) {
	tests := []struct {
		name    string
		device  fyne.Device
		columns int
		card    fyne.Size
	}{
		{"no device", nil, DesktopFilterColumns, fyne.NewSize(CardWidth, CardHeight)},
		{"desktop", fakeDevice{orientation: fyne.OrientationVertical}, DesktopFilterColumns, fyne.NewSize(CardWidth, CardHeight)},
		{"phone portrait", fakeDevice{mobile: true, orientation: fyne.OrientationVertical}, 1, fyne.NewSize(MobileCardWidth, MobileCardHeight)},
		{"phone landscape", fakeDevice{mobile: true, orientation: fyne.OrientationHorizontalLeft}, LandscapeFilterColumns, fyne.NewSize(CardWidth, CardHeight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeviceLayout(tt.device)
			assert.Equal(t, tt.columns, d.FilterColumns())
			assert.Equal(t, tt.card, d.CardSize())
		})
	}
}
