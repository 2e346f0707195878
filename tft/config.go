package tft

import (
	"errors"
	"fmt"
)

// Setup errors. Validate and ParseHeader wrap these, test for them with
// errors.Is.
var (
	ErrNoDriver        = errors.New("tft: no driver selected")
	ErrMultipleDrivers = errors.New("tft: more than one driver selected")
	ErrUnknownDriver   = errors.New("tft: unknown driver")
	ErrGeometry        = errors.New("tft: bad panel geometry")
	ErrPin             = errors.New("tft: bad pin number")
	ErrPinRequired     = errors.New("tft: required signal not wired")
	ErrPinCollision    = errors.New("tft: signals share a pin")
	ErrFrequency       = errors.New("tft: bad SPI frequency")
	ErrColor           = errors.New("tft: malformed color")
	ErrDuplicateColor  = errors.New("tft: color defined twice")
	ErrEmptyPalette    = errors.New("tft: empty palette")
	ErrSyntax          = errors.New("tft: header syntax error")
)

// SPI clocks in Hz. The defaults apply when a header sets no
// SPI_FREQUENCY or SPI_READ_FREQUENCY.
const (
	MHz = 1_000_000

	DefaultSPIFrequency     = 27 * MHz
	DefaultSPIReadFrequency = 20 * MHz
)

// Config is the complete setup of one panel. It is a value: copy it freely,
// but treat it as read-only once built.
type Config struct {
	// Free form description, USER_SETUP_INFO in a header.
	Info   string
	Driver Driver
	// Panel resolution in pixels, in the controller's native orientation.
	Width  int16
	Height int16
	Pins   Pins
	Fonts  FontSet
	// SPI clock for writes and reads, in Hz.
	SPIFrequency     uint32
	SPIReadFrequency uint32
	Palette          Palette
}

// Default returns the built in setup: a 240x320 ST7789 panel on the ESP32
// VSPI pins with every font table linked in and the standard palette.
func Default() Config {
	return Config{
		Info:   "User_Setup",
		Driver: ST7789,
		Width:  240,
		Height: 320,
		Pins: Pins{
			MISO: NoPin,
			MOSI: 23,
			SCLK: 18,
			CS:   5,
			DC:   4,
			RST:  2,
			BL:   NoPin,
		},
		Fonts:            AllFonts | SmoothFont,
		SPIFrequency:     DefaultSPIFrequency,
		SPIReadFrequency: DefaultSPIReadFrequency,
		Palette:          DefaultPalette(),
	}
}

// Validate checks the setup and returns every problem found, joined. Use
// errors.Is with the Err* values to test for a particular problem.
func (cfg Config) Validate() error {
	var errs []error
	switch {
	case cfg.Driver == DriverNone:
		errs = append(errs, ErrNoDriver)
	case !cfg.Driver.IsValid():
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d is not positive", ErrGeometry, cfg.Width, cfg.Height))
	} else if cfg.Driver != DriverNone && cfg.Driver.IsValid() && !cfg.Driver.Fits(cfg.Width, cfg.Height) {
		mw, mh := cfg.Driver.MaxSize()
		errs = append(errs, fmt.Errorf("%w: %dx%d exceeds %s range %dx%d", ErrGeometry, cfg.Width, cfg.Height, cfg.Driver, mw, mh))
	}
	if err := cfg.Pins.Validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.SPIFrequency == 0 {
		errs = append(errs, fmt.Errorf("%w: write frequency is zero", ErrFrequency))
	}
	if cfg.SPIReadFrequency > cfg.SPIFrequency {
		errs = append(errs, fmt.Errorf("%w: read %d Hz above write %d Hz", ErrFrequency, cfg.SPIReadFrequency, cfg.SPIFrequency))
	}
	return errors.Join(errs...)
}

// Size returns the panel resolution.
func (cfg Config) Size() (width, height int16) { return cfg.Width, cfg.Height }
