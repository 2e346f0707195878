package tft

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default setup invalid: %v", err)
	}
	if cfg.Driver != ST7789 {
		t.Errorf("driver got!=expected: %s != %s", cfg.Driver, ST7789)
	}
	if w, h := cfg.Size(); w != 240 || h != 320 {
		t.Errorf("size got!=expected: %dx%d != 240x320", w, h)
	}
	expectPins := Pins{MISO: NoPin, MOSI: 23, SCLK: 18, CS: 5, DC: 4, RST: 2, BL: NoPin}
	if cfg.Pins != expectPins {
		t.Errorf("pins got!=expected: %+v != %+v", cfg.Pins, expectPins)
	}
	if !cfg.Fonts.Has(AllFonts | SmoothFont) {
		t.Errorf("fonts got %s", cfg.Fonts)
	}
	if got := cfg.Fonts.FlashBytes(); got != 1820+3534+5848+2666+2438+3256 {
		t.Errorf("font flash got %d", got)
	}
	if !cfg.Palette.Equal(DefaultPalette()) {
		t.Error("default setup does not carry the default palette")
	}
}

func TestValidate(t *testing.T) {
	var tests = []struct {
		name   string
		modify func(*Config)
		want   []error
	}{
		{"no driver", func(c *Config) { c.Driver = DriverNone }, []error{ErrNoDriver}},
		{"unknown driver", func(c *Config) { c.Driver = Driver(200) }, []error{ErrUnknownDriver}},
		{"zero width", func(c *Config) { c.Width = 0 }, []error{ErrGeometry}},
		{"negative height", func(c *Config) { c.Height = -1 }, []error{ErrGeometry}},
		{"too large", func(c *Config) { c.Width, c.Height = 320, 480 }, []error{ErrGeometry}},
		{"landscape", func(c *Config) { c.Width, c.Height = 320, 240 }, nil},
		{"collision", func(c *Config) { c.Pins.CS = c.Pins.DC }, []error{ErrPinCollision}},
		{"unwired pins may repeat", func(c *Config) { c.Pins.CS, c.Pins.RST = NoPin, NoPin }, nil},
		{"dc missing", func(c *Config) { c.Pins.DC = NoPin }, []error{ErrPinRequired}},
		{"bad pin", func(c *Config) { c.Pins.RST = -5 }, []error{ErrPin}},
		{"zero clock", func(c *Config) { c.SPIFrequency, c.SPIReadFrequency = 0, 0 }, []error{ErrFrequency}},
		{"read above write", func(c *Config) { c.SPIReadFrequency = 40 * MHz }, []error{ErrFrequency}},
		{"several", func(c *Config) {
			c.Driver = DriverNone
			c.Width = 0
			c.Pins.MOSI = c.Pins.SCLK
		}, []error{ErrNoDriver, ErrGeometry, ErrPinCollision}},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		err := cfg.Validate()
		if len(tt.want) == 0 {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		for _, want := range tt.want {
			if !errors.Is(err, want) {
				t.Errorf("%s: got %v, expected %v", tt.name, err, want)
			}
		}
	}
}

func TestDriverTags(t *testing.T) {
	for d := ST7789; d <= ST7796; d++ {
		got, ok := DriverFromTag(d.Tag())
		if !ok || got != d {
			t.Errorf("DriverFromTag(%q) = %s, %v", d.Tag(), got, ok)
		}
	}
	for _, tag := range []string{"", "ST7789", "NONE_DRIVER", "FOO_DRIVER"} {
		if d, ok := DriverFromTag(tag); ok {
			t.Errorf("DriverFromTag(%q) = %s", tag, d)
		}
	}
	if DriverNone.Tag() != "" {
		t.Errorf("DriverNone has tag %q", DriverNone.Tag())
	}
	if s := Driver(99).String(); s != "Driver(99)" {
		t.Errorf("String of unknown driver %q", s)
	}
}

func TestFontSymbols(t *testing.T) {
	fs := FontGLCD | Font4 | SmoothFont
	syms := fs.Symbols()
	expected := []string{"LOAD_GLCD", "LOAD_FONT4", "SMOOTH_FONT"}
	if len(syms) != len(expected) {
		t.Fatalf("symbols got!=expected: %v != %v", syms, expected)
	}
	for i := range syms {
		if syms[i] != expected[i] {
			t.Errorf("symbol %d got!=expected: %s != %s", i, syms[i], expected[i])
		}
	}
	if fs.FlashBytes() != 1820+5848 {
		t.Errorf("flash got %d", fs.FlashBytes())
	}
	if FontSet(0).String() != "none" {
		t.Errorf("empty set prints %q", FontSet(0).String())
	}
}

func TestPinsValidateRange(t *testing.T) {
	pins := Default().Pins
	pins.BL = 200
	if err := pins.Validate(); err != nil {
		t.Errorf("pin 200 rejected: %v", err)
	}
	if err := pins.ValidateRange(254); err != nil {
		t.Errorf("pin 200 above 254: %v", err)
	}
	if err := pins.ValidateRange(127); !errors.Is(err, ErrPin) {
		t.Errorf("pin 200 below 127: %v", err)
	}
	if err := UnwiredPins().ValidateRange(0); err != nil {
		t.Errorf("unwired pins out of range: %v", err)
	}
}
