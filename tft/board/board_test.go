//go:build tinygo

package board

import (
	"errors"
	"machine"
	"testing"

	"github.com/tinygo-org/tftsetup/tft"
)

func TestPin(t *testing.T) {
	var tests = []struct {
		in       tft.Pin
		expected machine.Pin
	}{
		{tft.NoPin, machine.NoPin},
		{0, machine.Pin(0)},
		{23, machine.Pin(23)},
		{MaxPin, machine.Pin(MaxPin)},
		{MaxPin + 1, machine.NoPin},
		{1000, machine.NoPin},
	}
	for _, tt := range tests {
		if got := Pin(tt.in); got != tt.expected {
			t.Errorf("Pin(%d) got!=expected: %d != %d", tt.in, got, tt.expected)
		}
	}
}

func TestSPIConfig(t *testing.T) {
	cfg := tft.Default()
	spicfg, err := SPIConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if spicfg.SCK != machine.Pin(18) || spicfg.SDO != machine.Pin(23) || spicfg.SDI != machine.NoPin {
		t.Errorf("SPI pins got SCK=%d SDO=%d SDI=%d", spicfg.SCK, spicfg.SDO, spicfg.SDI)
	}
	cfg.Pins.CS = MaxPin + 1
	if _, err := SPIConfig(cfg); !errors.Is(err, tft.ErrPin) {
		t.Errorf("pin above MaxPin: %v", err)
	}
}
