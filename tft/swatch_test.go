package tft

import (
	"errors"
	"image/color"
	"testing"
)

// frameBuffer is an in-memory drivers.Displayer.
type frameBuffer struct {
	w, h     int16
	pix      []color.RGBA
	displays int
}

func newFrameBuffer(w, h int16) *frameBuffer {
	return &frameBuffer{w: w, h: h, pix: make([]color.RGBA, int(w)*int(h))}
}

func (fb *frameBuffer) Size() (x, y int16) { return fb.w, fb.h }

func (fb *frameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	fb.pix[int(y)*int(fb.w)+int(x)] = c
}

func (fb *frameBuffer) Display() error {
	fb.displays++
	return nil
}

func (fb *frameBuffer) at(x, y int16) Color {
	return FromRGBA(fb.pix[int(y)*int(fb.w)+int(x)])
}

func TestDrawPalette(t *testing.T) {
	cfg := Default()
	fb := newFrameBuffer(cfg.Size())
	if err := DrawPalette(fb, cfg.Palette); err != nil {
		t.Fatal(err)
	}
	if fb.displays != 1 {
		t.Errorf("Display called %d times", fb.displays)
	}
	// 24 colors on 4 columns: 6 rows of 60x53 pixel tiles.
	const cw, ch = 240 / 4, 320 / 6
	for i, e := range cfg.Palette.Entries() {
		x := int16(i%4*cw + cw/2)
		y := int16(i/4*ch + ch/2)
		if got := fb.at(x, y); got != e.Color {
			t.Errorf("tile %d (%s) got!=expected: %s != %s", i, e.Name, got, e.Color)
		}
	}
}

func TestDrawPaletteSmall(t *testing.T) {
	p, err := NewPalette(Entry{"A", Red}, Entry{"B", Blue})
	if err != nil {
		t.Fatal(err)
	}
	fb := newFrameBuffer(10, 4)
	if err := DrawPalette(fb, p); err != nil {
		t.Fatal(err)
	}
	if fb.at(0, 0) != Red || fb.at(4, 3) != Red || fb.at(5, 0) != Blue || fb.at(9, 3) != Blue {
		t.Error("two color palette not split in halves")
	}
}

func TestDrawPaletteErrors(t *testing.T) {
	if err := DrawPalette(newFrameBuffer(10, 10), Palette{}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("empty palette: %v", err)
	}
	if err := DrawPalette(newFrameBuffer(2, 2), DefaultPalette()); !errors.Is(err, ErrGeometry) {
		t.Errorf("tiny display: %v", err)
	}
}

// Tile sizes that do not divide the display must still cover every pixel.
func TestDrawPaletteCoversDisplay(t *testing.T) {
	p, err := NewPalette(Entry{"A", Red}, Entry{"B", Green}, Entry{"C", Blue},
		Entry{"D", Yellow}, Entry{"E", Cyan})
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range [][2]int16{{240, 320}, {13, 7}} {
		fb := newFrameBuffer(size[0], size[1])
		for i := range fb.pix {
			fb.pix[i] = Magenta.RGBA8()
		}
		if err := DrawPalette(fb, p); err != nil {
			t.Fatal(err)
		}
		for y := int16(0); y < fb.h; y++ {
			for x := int16(0); x < fb.w; x++ {
				if fb.at(x, y) == Magenta {
					t.Fatalf("%dx%d: pixel (%d,%d) not painted", fb.w, fb.h, x, y)
				}
			}
		}
		w, h := fb.w, fb.h
		if got := fb.at(w-1, h/2-1); got != Yellow {
			t.Errorf("%dx%d: right edge of first row got!=expected: %s != %s", w, h, got, Yellow)
		}
		if got := fb.at(0, h-1); got != Cyan {
			t.Errorf("%dx%d: bottom left got!=expected: %s != %s", w, h, got, Cyan)
		}
		if got := fb.at(w-1, h-1); got != Black {
			t.Errorf("%dx%d: bottom right got!=expected: %s != %s", w, h, got, Black)
		}
	}
}
