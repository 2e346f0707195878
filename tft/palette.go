package tft

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Entry is a named palette color. Names are upper case without the
// "TFT_" header prefix, e.g. "SKYBLUE".
type Entry struct {
	Name  string
	Color Color
}

// Palette is an ordered, immutable set of named colors. Two names may
// share a value; a name appears at most once. The zero Palette is empty.
type Palette struct {
	entries []Entry
}

// NewPalette returns a palette holding entries in the given order. Names
// are upper cased and must be usable as a TFT_ header symbol: letters,
// digits and underscores, not starting with a digit, and not clashing with
// a pin, geometry or driver symbol.
func NewPalette(entries ...Entry) (Palette, error) {
	seen := make(map[string]bool, len(entries))
	p := Palette{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		name := strings.ToUpper(e.Name)
		if err := checkColorName(name); err != nil {
			return Palette{}, err
		}
		if seen[name] {
			return Palette{}, fmt.Errorf("%w: %s", ErrDuplicateColor, name)
		}
		seen[name] = true
		p.entries = append(p.entries, Entry{Name: name, Color: e.Color})
	}
	return p, nil
}

func checkColorName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrColor)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9') {
			continue
		}
		return fmt.Errorf("%w: %q is not a symbol name", ErrColor, name)
	}
	sym := colorPrefix + name
	_, isSignal := signalFromSymbol(sym)
	if isSignal || sym == symWidth || sym == symHeight || ignoredSymbols[sym] || strings.HasSuffix(sym, driverSuffix) {
		return fmt.Errorf("%w: %s is a reserved symbol", ErrColor, sym)
	}
	return nil
}

var defaultPalette = Palette{entries: []Entry{
	{"BLACK", Black},
	{"NAVY", Navy},
	{"DARKGREEN", DarkGreen},
	{"DARKCYAN", DarkCyan},
	{"MAROON", Maroon},
	{"PURPLE", Purple},
	{"OLIVE", Olive},
	{"LIGHTGREY", LightGrey},
	{"DARKGREY", DarkGrey},
	{"BLUE", Blue},
	{"GREEN", Green},
	{"CYAN", Cyan},
	{"RED", Red},
	{"MAGENTA", Magenta},
	{"YELLOW", Yellow},
	{"WHITE", White},
	{"ORANGE", Orange},
	{"GREENYELLOW", GreenYellow},
	{"PINK", Pink},
	{"BROWN", Brown},
	{"GOLD", Gold},
	{"SILVER", Silver},
	{"SKYBLUE", SkyBlue},
	{"VIOLET", Violet},
}}

// DefaultPalette returns the 24 standard colors, BLACK through VIOLET.
func DefaultPalette() Palette { return defaultPalette }

// Len returns the number of colors in p.
func (p Palette) Len() int { return len(p.entries) }

// Entries returns a copy of the palette in order.
func (p Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Lookup returns the color called name. The "TFT_" prefix and letter case
// are ignored.
func (p Palette) Lookup(name string) (Color, bool) {
	name = strings.TrimPrefix(strings.ToUpper(name), "TFT_")
	for _, e := range p.entries {
		if e.Name == name {
			return e.Color, true
		}
	}
	return 0, false
}

// Name returns the first name given to c.
func (p Palette) Name(c Color) (string, bool) {
	for _, e := range p.entries {
		if e.Color == c {
			return e.Name, true
		}
	}
	return "", false
}

// Nearest returns the palette entry perceptually closest to c, measured in
// CIE L*a*b* space. ok is false for an empty palette.
func (p Palette) Nearest(c color.Color) (e Entry, ok bool) {
	target, _ := colorful.MakeColor(c)
	best := -1.0
	for _, cand := range p.entries {
		d := target.DistanceLab(cand.Color.Colorful())
		if best < 0 || d < best {
			best, e, ok = d, cand, true
		}
	}
	return e, ok
}

// Equal reports whether p and q hold the same entries in the same order.
func (p Palette) Equal(q Palette) bool {
	if len(p.entries) != len(q.entries) {
		return false
	}
	for i := range p.entries {
		if p.entries[i] != q.entries[i] {
			return false
		}
	}
	return true
}

// Colorful returns c as a colorful.Color.
func (c Color) Colorful() colorful.Color {
	cf, _ := colorful.MakeColor(c.RGBA8())
	return cf
}
