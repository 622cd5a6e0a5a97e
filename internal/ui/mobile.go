package ui

import (
	"fyne.io/fyne/v2"
)

// DeviceLayout picks grid and filter-row sizing from the device form factor.
// Phones in portrait get narrow cards and one filter per row.
type DeviceLayout struct {
	device fyne.Device
}

// NewDeviceLayout creates a layout helper for device
func NewDeviceLayout(device fyne.Device) *DeviceLayout {
	return &DeviceLayout{device: device}
}

// IsMobile reports a touch device
func (d *DeviceLayout) IsMobile() bool {
	return d.device != nil && d.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (d *DeviceLayout) IsLandscape() bool {
	if d.device == nil {
		return true
	}
	switch d.device.Orientation() {
	case fyne.OrientationHorizontalLeft, fyne.OrientationHorizontalRight:
		return true
	}
	return false
}

// CardSize returns the grid cell size for recipe cards
func (d *DeviceLayout) CardSize() fyne.Size {
	if d.IsMobile() && !d.IsLandscape() {
		return fyne.NewSize(MobileCardWidth, MobileCardHeight)
	}
	return fyne.NewSize(CardWidth, CardHeight)
}

// FilterColumns returns how many filter pickers share a row
func (d *DeviceLayout) FilterColumns() int {
	switch {
	case !d.IsMobile():
		return DesktopFilterColumns
	case d.IsLandscape():
		return LandscapeFilterColumns
	default:
		return 1
	}
}
