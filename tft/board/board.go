//go:build tinygo

// Package board binds a tft.Config to the pins and SPI bus of a TinyGo
// target and brings up the panel through the tinygo.org/x/drivers st7789
// driver.
package board

import (
	"errors"
	"machine"

	"github.com/tinygo-org/tftsetup/tft"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

var ErrUnsupportedDriver = errors.New("board: driver not supported on this target")

// MaxPin is the highest pin number the target addresses. machine.NoPin
// sits right above it.
const MaxPin = tft.Pin(machine.NoPin) - 1

// Pin converts a setup pin to a machine pin. Pins above MaxPin do not
// exist on the target and map to machine.NoPin; CheckPins reports them.
func Pin(p tft.Pin) machine.Pin {
	if p == tft.NoPin || p > MaxPin {
		return machine.NoPin
	}
	return machine.Pin(p)
}

// CheckPins validates cfg's pins and checks that each wired pin exists on
// the target.
func CheckPins(cfg tft.Config) error {
	if err := cfg.Pins.Validate(); err != nil {
		return err
	}
	return cfg.Pins.ValidateRange(MaxPin)
}

// SPIConfig returns the SPI bus configuration for the setup's pins and
// write clock.
func SPIConfig(cfg tft.Config) (machine.SPIConfig, error) {
	if err := CheckPins(cfg); err != nil {
		return machine.SPIConfig{}, err
	}
	return machine.SPIConfig{
		Frequency: cfg.SPIFrequency,
		SCK:       Pin(cfg.Pins.SCLK),
		SDO:       Pin(cfg.Pins.MOSI),
		SDI:       Pin(cfg.Pins.MISO),
		Mode:      0,
	}, nil
}

// New validates cfg and returns a configured ST7789 on bus. The bus must
// already be configured, usually with SPIConfig(cfg).
func New(bus drivers.SPI, cfg tft.Config) (*st7789.Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Pins.ValidateRange(MaxPin); err != nil {
		return nil, err
	}
	if cfg.Driver != tft.ST7789 {
		return nil, ErrUnsupportedDriver
	}
	dev := st7789.New(bus, Pin(cfg.Pins.RST), Pin(cfg.Pins.DC), Pin(cfg.Pins.CS), Pin(cfg.Pins.BL))
	dev.Configure(st7789.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	return &dev, nil
}
