package tft

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Header symbols that are not pins, fonts, drivers or colors.
const (
	symInfo       = "USER_SETUP_INFO"
	symWidth      = "TFT_WIDTH"
	symHeight     = "TFT_HEIGHT"
	symSPIFreq    = "SPI_FREQUENCY"
	symSPIReadFrq = "SPI_READ_FREQUENCY"

	colorPrefix = "TFT_"
)

// ParseHeader reads a User_Setup.h style header made of
//
//	#define NAME [VALUE]
//
// lines, comments and blank lines. Other preprocessor directives and
// symbols the driver does not know are skipped. Any TFT_ symbol that is
// not a pin or a geometry setting defines a palette color.
//
// Settings missing from the header are left unset, except the SPI clocks
// which default to DefaultSPIFrequency and DefaultSPIReadFrequency. The
// returned Config is validated; on error it holds whatever could be parsed.
func ParseHeader(r io.Reader) (Config, error) {
	p := headerParser{
		cfg: Config{
			Pins:             UnwiredPins(),
			SPIFrequency:     DefaultSPIFrequency,
			SPIReadFrequency: DefaultSPIReadFrequency,
		},
		colors: make(map[string]int),
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		p.parseLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return p.cfg, err
	}
	if p.inComment {
		p.fail(fmt.Errorf("%w: unterminated comment", ErrSyntax))
	}
	pal, err := NewPalette(p.entries...)
	if err != nil {
		p.errs = append(p.errs, err)
	}
	p.cfg.Palette = pal
	if err := p.cfg.Validate(); err != nil {
		p.errs = append(p.errs, err)
	}
	return p.cfg, errors.Join(p.errs...)
}

type headerParser struct {
	cfg       Config
	line      int
	inComment bool
	driverSet bool
	entries   []Entry
	// Palette name to the line that defined it.
	colors map[string]int
	errs   []error
}

func (p *headerParser) fail(err error) {
	p.errs = append(p.errs, fmt.Errorf("line %d: %w", p.line, err))
}

func (p *headerParser) parseLine(line string) {
	line = p.stripComments(line)
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if line[0] != '#' {
		p.fail(fmt.Errorf("%w: expected preprocessor directive, got %q", ErrSyntax, line))
		return
	}
	fields, err := shlex.Split(line[1:])
	if err != nil {
		p.fail(fmt.Errorf("%w: %v", ErrSyntax, err))
		return
	}
	if len(fields) == 0 || fields[0] != "define" {
		return // #include, #pragma and friends
	}
	if len(fields) < 2 {
		p.fail(fmt.Errorf("%w: #define without a name", ErrSyntax))
		return
	}
	value := strings.Join(fields[2:], " ")
	if fields[1] == symInfo {
		value = quotedValue(line, value)
	}
	if err := p.define(fields[1], value); err != nil {
		p.fail(err)
	}
}

// quotedValue decodes the C string literal that ends line, keeping
// escapes such as \t and \n that shell-style splitting would drop. It
// returns fallback if line does not end in a single literal.
func quotedValue(line, fallback string) string {
	i := strings.IndexByte(line, '"')
	if i < 0 {
		return fallback
	}
	v, err := strconv.Unquote(strings.TrimSpace(line[i:]))
	if err != nil {
		return fallback
	}
	return v
}

// stripComments removes // and /* */ comments outside double quotes,
// tracking block comments that span lines.
func (p *headerParser) stripComments(line string) string {
	var out strings.Builder
	inQuote := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if p.inComment {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				p.inComment = false
				i++
				out.WriteByte(' ')
			}
			continue
		}
		switch {
		case c == '"' && (i == 0 || line[i-1] != '\\'):
			inQuote = !inQuote
		case !inQuote && c == '/' && i+1 < len(line) && line[i+1] == '/':
			return out.String()
		case !inQuote && c == '/' && i+1 < len(line) && line[i+1] == '*':
			p.inComment = true
			i++
			continue
		}
		out.WriteByte(c)
	}
	return out.String()
}

func (p *headerParser) define(name, value string) error {
	cfg := &p.cfg
	if d, ok := DriverFromTag(name); ok {
		if p.driverSet && d != cfg.Driver {
			return fmt.Errorf("%w: %s after %s", ErrMultipleDrivers, d.Tag(), cfg.Driver.Tag())
		}
		p.driverSet = true
		cfg.Driver = d
		return nil
	}
	if strings.HasSuffix(name, driverSuffix) {
		return fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}
	if f, ok := fontFromSymbol(name); ok {
		cfg.Fonts |= f
		return nil
	}
	if s, ok := signalFromSymbol(name); ok {
		n, err := strconv.ParseInt(value, 0, 16)
		if err != nil || Pin(n) < NoPin {
			return fmt.Errorf("%w: %s=%q", ErrPin, name, value)
		}
		cfg.Pins.set(s, Pin(n))
		return nil
	}
	switch name {
	case symInfo:
		cfg.Info = value
		return nil
	case symWidth, symHeight:
		n, err := strconv.ParseInt(value, 0, 16)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrGeometry, name, value)
		}
		if name == symWidth {
			cfg.Width = int16(n)
		} else {
			cfg.Height = int16(n)
		}
		return nil
	case symSPIFreq, symSPIReadFrq:
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrFrequency, name, value)
		}
		if name == symSPIFreq {
			cfg.SPIFrequency = uint32(n)
		} else {
			cfg.SPIReadFrequency = uint32(n)
		}
		return nil
	}
	if strings.HasPrefix(name, colorPrefix) && !ignoredSymbols[name] && isNumber(value) {
		return p.defineColor(strings.TrimPrefix(name, colorPrefix), value)
	}
	return nil
}

// TFT_ symbols with numeric values that are not colors. The driver reads
// them, this package does not.
var ignoredSymbols = map[string]bool{
	"TFT_SPI_PORT":      true,
	"TFT_BACKLIGHT_ON":  true,
	"TFT_RGB_ORDER":     true,
	"TFT_INVERSION_ON":  true,
	"TFT_INVERSION_OFF": true,
	"TFT_WR":            true,
	"TFT_RD":            true,
	"TFT_D0":            true,
	"TFT_D1":            true,
	"TFT_D2":            true,
	"TFT_D3":            true,
	"TFT_D4":            true,
	"TFT_D5":            true,
	"TFT_D6":            true,
	"TFT_D7":            true,
}

// isNumber reports whether v looks like an integer literal, so that
// symbolic values such as TFT_BGR are not taken for colors.
func isNumber(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	return c == '-' || c == '+' || (c >= '0' && c <= '9')
}

func (p *headerParser) defineColor(name, value string) error {
	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil || n < 0 || n > 0xFFFF {
		return fmt.Errorf("%w: %s%s=%q is not a 16-bit value", ErrColor, colorPrefix, name, value)
	}
	if prev, ok := p.colors[name]; ok {
		return fmt.Errorf("%w: %s%s, first on line %d", ErrDuplicateColor, colorPrefix, name, prev)
	}
	p.colors[name] = p.line
	p.entries = append(p.entries, Entry{Name: name, Color: Color(n)})
	return nil
}

// WriteHeader writes cfg in the format read by ParseHeader. The SPI clocks
// are only written when they differ from the defaults.
func WriteHeader(w io.Writer, cfg Config) error {
	var buf bytes.Buffer
	if cfg.Info != "" {
		fmt.Fprintf(&buf, "#define %s %s\n\n", symInfo, strconv.Quote(cfg.Info))
	}
	if tag := cfg.Driver.Tag(); tag != "" {
		fmt.Fprintf(&buf, "#define %s\n\n", tag)
	}
	fmt.Fprintf(&buf, "#define %s %d\n", symWidth, cfg.Width)
	fmt.Fprintf(&buf, "#define %s %d\n\n", symHeight, cfg.Height)

	buf.WriteString("// Pin definitions\n")
	for s := Signal(0); s < numSignals; s++ {
		pin := cfg.Pins.Get(s)
		if s == SignalBL && pin == NoPin {
			continue
		}
		fmt.Fprintf(&buf, "#define %s %d\n", s.Symbol(), pin)
	}
	buf.WriteByte('\n')

	fonts := cfg.Fonts &^ SmoothFont
	if fonts != 0 {
		for _, sym := range fonts.Symbols() {
			f, _ := fontFromSymbol(sym)
			desc, flash := fontDesc(f)
			if flash > 0 {
				desc = fmt.Sprintf("%s, needs ~%d bytes in FLASH", desc, flash)
			}
			fmt.Fprintf(&buf, "#define %-10s // %s\n", sym, desc)
		}
		buf.WriteByte('\n')
	}
	if cfg.Fonts.Has(SmoothFont) {
		buf.WriteString("#define SMOOTH_FONT\n\n")
	}

	if cfg.SPIFrequency != DefaultSPIFrequency || cfg.SPIReadFrequency != DefaultSPIReadFrequency {
		fmt.Fprintf(&buf, "#define %s %d\n", symSPIFreq, cfg.SPIFrequency)
		fmt.Fprintf(&buf, "#define %s %d\n\n", symSPIReadFrq, cfg.SPIReadFrequency)
	}

	if cfg.Palette.Len() > 0 {
		buf.WriteString("// Color definitions\n")
		for _, e := range cfg.Palette.entries {
			fmt.Fprintf(&buf, "#define %s%s %s\n", colorPrefix, e.Name, e.Color)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
