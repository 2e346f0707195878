package tft

import (
	"strconv"
	"strings"
)

// Driver selects the display controller backend.
type Driver uint8

const (
	DriverNone Driver = iota
	ST7789
	ST7735
	ILI9341
	ILI9488
	GC9A01
	ST7796
)

type driverInfo struct {
	name string
	// Addressable range in the controller's native (portrait) orientation.
	maxWidth, maxHeight int16
}

var driverTable = [...]driverInfo{
	DriverNone: {name: "NONE"},
	ST7789:     {name: "ST7789", maxWidth: 240, maxHeight: 320},
	ST7735:     {name: "ST7735", maxWidth: 132, maxHeight: 162},
	ILI9341:    {name: "ILI9341", maxWidth: 240, maxHeight: 320},
	ILI9488:    {name: "ILI9488", maxWidth: 320, maxHeight: 480},
	GC9A01:     {name: "GC9A01", maxWidth: 240, maxHeight: 240},
	ST7796:     {name: "ST7796", maxWidth: 320, maxHeight: 480},
}

const driverSuffix = "_DRIVER"

func (d Driver) String() string {
	if !d.IsValid() {
		return "Driver(" + strconv.Itoa(int(d)) + ")"
	}
	return driverTable[d].name
}

// IsValid reports whether d names a known controller. DriverNone is valid
// as a value but selects no backend.
func (d Driver) IsValid() bool { return int(d) < len(driverTable) }

// Tag returns the header symbol that selects d, e.g. "ST7789_DRIVER".
func (d Driver) Tag() string {
	if d == DriverNone || !d.IsValid() {
		return ""
	}
	return driverTable[d].name + driverSuffix
}

// MaxSize returns the addressable pixel range of the controller in its
// native orientation.
func (d Driver) MaxSize() (width, height int16) {
	if !d.IsValid() {
		return 0, 0
	}
	info := driverTable[d]
	return info.maxWidth, info.maxHeight
}

// Fits reports whether a panel of the given size is addressable by d, in
// either portrait or landscape orientation.
func (d Driver) Fits(width, height int16) bool {
	mw, mh := d.MaxSize()
	return (width <= mw && height <= mh) || (width <= mh && height <= mw)
}

// DriverFromTag returns the driver selected by a header tag such as
// "ST7789_DRIVER". ok is false if tag is not a known driver tag.
func DriverFromTag(tag string) (d Driver, ok bool) {
	if !strings.HasSuffix(tag, driverSuffix) {
		return DriverNone, false
	}
	name := strings.TrimSuffix(tag, driverSuffix)
	for i := ST7789; int(i) < len(driverTable); i++ {
		if driverTable[i].name == name {
			return i, true
		}
	}
	return DriverNone, false
}
