package tft

import "strings"

// FontSet is the set of font tables linked into the firmware, plus the
// smooth (anti-aliased) glyph rendering switch.
type FontSet uint16

const (
	// Original Adafruit 8 pixel font.
	FontGLCD FontSet = 1 << iota
	// Small 16 pixel high font, 96 characters.
	Font2
	// Medium 26 pixel high font, 96 characters.
	Font4
	// Large 48 pixel font, only 1234567890:-.apm
	Font6
	// 7 segment 48 pixel font, only 1234567890:.
	Font7
	// Large 75 pixel font, only 1234567890:-.
	Font8
	// The 48 Adafruit_GFX free fonts FF1 to FF48.
	FontGFXFF
	// Anti-aliased glyph rendering path. Not a table.
	SmoothFont

	AllFonts = FontGLCD | Font2 | Font4 | Font6 | Font7 | Font8 | FontGFXFF
)

type fontInfo struct {
	flag   FontSet
	symbol string
	desc   string
	// Flash used by the table, 0 when unknown or not a table.
	flash int
}

var fontTable = [...]fontInfo{
	{FontGLCD, "LOAD_GLCD", "Font 1. Original Adafruit 8 pixel font", 1820},
	{Font2, "LOAD_FONT2", "Font 2. Small 16 pixel high font, 96 characters", 3534},
	{Font4, "LOAD_FONT4", "Font 4. Medium 26 pixel high font, 96 characters", 5848},
	{Font6, "LOAD_FONT6", "Font 6. Large 48 pixel font, only characters 1234567890:-.apm", 2666},
	{Font7, "LOAD_FONT7", "Font 7. 7 segment 48 pixel font, only characters 1234567890:.", 2438},
	{Font8, "LOAD_FONT8", "Font 8. Large 75 pixel font, only characters 1234567890:-.", 3256},
	{FontGFXFF, "LOAD_GFXFF", "FreeFonts. Include access to the 48 Adafruit_GFX free fonts FF1 to FF48", 0},
	{SmoothFont, "SMOOTH_FONT", "", 0},
}

// Has reports whether all flags in f are set.
func (fs FontSet) Has(f FontSet) bool { return fs&f == f }

// FlashBytes returns the flash the selected font tables need, as far as
// it is known.
func (fs FontSet) FlashBytes() (n int) {
	for _, info := range fontTable {
		if fs.Has(info.flag) {
			n += info.flash
		}
	}
	return n
}

// Symbols returns the header symbols of the set flags, in header order.
func (fs FontSet) Symbols() []string {
	var syms []string
	for _, info := range fontTable {
		if fs.Has(info.flag) {
			syms = append(syms, info.symbol)
		}
	}
	return syms
}

func (fs FontSet) String() string {
	if fs == 0 {
		return "none"
	}
	return strings.Join(fs.Symbols(), "|")
}

func fontFromSymbol(sym string) (FontSet, bool) {
	for _, info := range fontTable {
		if info.symbol == sym {
			return info.flag, true
		}
	}
	return 0, false
}

func fontDesc(f FontSet) (desc string, flash int) {
	for _, info := range fontTable {
		if info.flag == f {
			return info.desc, info.flash
		}
	}
	return "", 0
}
