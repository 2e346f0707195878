package tft

import "tinygo.org/x/drivers"

const swatchColumns = 4

// DrawPalette tiles the display with one rectangle per palette color, in
// palette order, row by row, then flushes it with Display. Every pixel is
// painted; pixels past the last color of a short final row are cleared to
// Black.
func DrawPalette(d drivers.Displayer, p Palette) error {
	n := p.Len()
	if n == 0 {
		return ErrEmptyPalette
	}
	w, h := d.Size()
	cols := int16(swatchColumns)
	if int16(n) < cols {
		cols = int16(n)
	}
	rows := (int16(n) + cols - 1) / cols
	cw, ch := w/cols, h/rows
	if cw == 0 || ch == 0 {
		return ErrGeometry
	}
	for i, e := range p.entries {
		col, row := int16(i)%cols, int16(i)/cols
		x, y := col*cw, row*ch
		tw, th := cw, ch
		// The last column and row take up what division leaves over.
		if col == cols-1 {
			tw = w - x
		}
		if row == rows-1 {
			th = h - y
		}
		fillRect(d, x, y, tw, th, e.Color)
	}
	// Clear the rest of a short final row.
	if last := int16(n-1) % cols; last != cols-1 {
		fillRect(d, (last+1)*cw, (rows-1)*ch, w-(last+1)*cw, h-(rows-1)*ch, Black)
	}
	return d.Display()
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c Color) {
	rgba := c.RGBA8()
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.SetPixel(i, j, rgba)
		}
	}
}
