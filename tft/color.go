package tft

import (
	"fmt"
	"image/color"
)

// Color is a 16-bit packed RGB565 value: 5 bits red, 6 bits green and
// 5 bits blue, red in the most significant bits. Every uint16 is a valid
// Color.
type Color uint16

const (
	Black       Color = 0x0000
	Navy        Color = 0x000F
	DarkGreen   Color = 0x03E0
	DarkCyan    Color = 0x03EF
	Maroon      Color = 0x7800
	Purple      Color = 0x780F
	Olive       Color = 0x7BE0
	LightGrey   Color = 0xC618
	DarkGrey    Color = 0x7BEF
	Blue        Color = 0x001F
	Green       Color = 0x07E0
	Cyan        Color = 0x07FF
	Red         Color = 0xF800
	Magenta     Color = 0xF81F
	Yellow      Color = 0xFFE0
	White       Color = 0xFFFF
	Orange      Color = 0xFDA0
	GreenYellow Color = 0xB7E0
	Pink        Color = 0xFC9F
	Brown       Color = 0x9A60
	Gold        Color = 0xFEA0
	Silver      Color = 0xC618
	SkyBlue     Color = 0x867D
	Violet      Color = 0x915C
)

const (
	maxRed   = 0x1f
	maxGreen = 0x3f
	maxBlue  = 0x1f
)

// FromChannels packs 5-bit red, 6-bit green and 5-bit blue channel values.
func FromChannels(r, g, b uint8) (Color, error) {
	if r > maxRed || g > maxGreen || b > maxBlue {
		return 0, fmt.Errorf("%w: channels (%d, %d, %d) outside 5/6/5 range", ErrColor, r, g, b)
	}
	return Color(uint16(r)<<11 | uint16(g)<<5 | uint16(b)), nil
}

// Channels unpacks c into its 5-bit red, 6-bit green and 5-bit blue values.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c>>11) & maxRed, uint8(c>>5) & maxGreen, uint8(c) & maxBlue
}

// RGBA8 expands c to 8 bits per channel, fully opaque. Low bits are filled
// by replicating the high bits so that Black and White map to 0x00 and 0xff.
func (c Color) RGBA8() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("0x%04X", uint16(c))
}

// FromRGBA converts any color to RGB565, dropping the low bits of each
// channel. Alpha is ignored.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color((r & 0xF800) +
		((g & 0xFC00) >> 5) +
		((b & 0xF800) >> 11))
}

// Model converts colors to Color.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return FromRGBA(c)
})
