package tft

import (
	"errors"
	"fmt"
	"strconv"
)

// Pin is a hardware pin number. NoPin marks a signal that is not wired.
// Some targets number pins as port*16+n, so values go past 127.
type Pin int16

const NoPin Pin = -1

func (p Pin) String() string {
	if p == NoPin {
		return "NoPin"
	}
	return "GPIO" + strconv.Itoa(int(p))
}

// Signal is a logical SPI or control line of the panel.
type Signal uint8

const (
	SignalMISO Signal = iota
	SignalMOSI
	SignalSCLK
	SignalCS
	SignalDC
	SignalRST
	SignalBL
	numSignals
)

var signalSymbols = [numSignals]string{
	SignalMISO: "TFT_MISO",
	SignalMOSI: "TFT_MOSI",
	SignalSCLK: "TFT_SCLK",
	SignalCS:   "TFT_CS",
	SignalDC:   "TFT_DC",
	SignalRST:  "TFT_RST",
	SignalBL:   "TFT_BL",
}

// Symbol returns the header symbol of s, e.g. "TFT_MOSI".
func (s Signal) Symbol() string {
	if s >= numSignals {
		return ""
	}
	return signalSymbols[s]
}

func (s Signal) String() string {
	if s >= numSignals {
		return "Signal(" + strconv.Itoa(int(s)) + ")"
	}
	return signalSymbols[s][len("TFT_"):]
}

func signalFromSymbol(sym string) (Signal, bool) {
	for i, name := range signalSymbols {
		if name == sym {
			return Signal(i), true
		}
	}
	return 0, false
}

// Pins binds each signal of the panel to a pin.
type Pins struct {
	MISO Pin
	MOSI Pin
	SCLK Pin
	CS   Pin
	DC   Pin
	RST  Pin
	// Backlight. Most setups leave it to the board.
	BL Pin
}

// UnwiredPins returns a Pins with every signal set to NoPin.
func UnwiredPins() Pins {
	return Pins{MISO: NoPin, MOSI: NoPin, SCLK: NoPin, CS: NoPin, DC: NoPin, RST: NoPin, BL: NoPin}
}

// Get returns the pin bound to s.
func (p Pins) Get(s Signal) Pin {
	switch s {
	case SignalMISO:
		return p.MISO
	case SignalMOSI:
		return p.MOSI
	case SignalSCLK:
		return p.SCLK
	case SignalCS:
		return p.CS
	case SignalDC:
		return p.DC
	case SignalRST:
		return p.RST
	case SignalBL:
		return p.BL
	}
	return NoPin
}

func (p *Pins) set(s Signal, pin Pin) {
	switch s {
	case SignalMISO:
		p.MISO = pin
	case SignalMOSI:
		p.MOSI = pin
	case SignalSCLK:
		p.SCLK = pin
	case SignalCS:
		p.CS = pin
	case SignalDC:
		p.DC = pin
	case SignalRST:
		p.RST = pin
	case SignalBL:
		p.BL = pin
	}
}

// requiredSignals must be wired for the driver to talk to the panel at all.
var requiredSignals = [...]Signal{SignalMOSI, SignalSCLK, SignalDC}

// Validate checks that every pin is either NoPin or a real pin number, that
// the data, clock and data/command lines are wired and that no two wired
// signals share a pin.
func (p Pins) Validate() error {
	var errs []error
	for s := Signal(0); s < numSignals; s++ {
		if pin := p.Get(s); pin < NoPin {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrPin, s.Symbol(), pin))
		}
	}
	for _, s := range requiredSignals {
		if p.Get(s) == NoPin {
			errs = append(errs, fmt.Errorf("%w: %s", ErrPinRequired, s.Symbol()))
		}
	}
	for a := Signal(0); a < numSignals; a++ {
		pa := p.Get(a)
		if pa < 0 {
			continue
		}
		for b := a + 1; b < numSignals; b++ {
			if p.Get(b) == pa {
				errs = append(errs, fmt.Errorf("%w: %s and %s on %s", ErrPinCollision, a.Symbol(), b.Symbol(), pa))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateRange checks that no wired pin is above max, the highest pin
// number a target can address.
func (p Pins) ValidateRange(max Pin) error {
	var errs []error
	for s := Signal(0); s < numSignals; s++ {
		if pin := p.Get(s); pin > max {
			errs = append(errs, fmt.Errorf("%w: %s=%d above %d", ErrPin, s.Symbol(), pin, max))
		}
	}
	return errors.Join(errs...)
}
