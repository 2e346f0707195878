package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tinygo-org/tftsetup/tft"
)

const swatchWidth = 8

// preview shows the palette in the terminal until q, Esc or Ctrl-C.
func preview(cfg tft.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		drawPreview(screen, cfg)
		screen.Show()
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// drawPreview draws a title line and one swatch per palette entry, as many
// as fit on the screen.
func drawPreview(s tcell.Screen, cfg tft.Config) {
	s.Clear()
	w, h := s.Size()
	title := fmt.Sprintf("%s  %s %dx%d  %d colors  (q to quit)",
		cfg.Info, cfg.Driver, cfg.Width, cfg.Height, cfg.Palette.Len())
	drawText(s, 0, 0, w, title, tcell.StyleDefault)

	for i, e := range cfg.Palette.Entries() {
		y := i + 2
		if y >= h {
			break
		}
		swatch := tcell.StyleDefault.Background(cellColor(e.Color))
		for x := 0; x < swatchWidth && x < w; x++ {
			s.SetContent(x, y, ' ', nil, swatch)
		}
		drawText(s, swatchWidth+1, y, w, fmt.Sprintf("%-12s %s", e.Name, e.Color), tcell.StyleDefault)
	}
}

func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func cellColor(c tft.Color) tcell.Color {
	rgba := c.RGBA8()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
