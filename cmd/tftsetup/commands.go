package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tinygo-org/tftsetup/tft"
)

func check(w io.Writer, cfg tft.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "info\t%s\n", cfg.Info)
	fmt.Fprintf(tw, "driver\t%s\n", cfg.Driver)
	fmt.Fprintf(tw, "size\t%dx%d\n", cfg.Width, cfg.Height)
	for s := tft.SignalMISO; s <= tft.SignalBL; s++ {
		fmt.Fprintf(tw, "%s\t%s\n", s, cfg.Pins.Get(s))
	}
	fmt.Fprintf(tw, "fonts\t%s\n", cfg.Fonts)
	fmt.Fprintf(tw, "font flash\t%d bytes\n", cfg.Fonts.FlashBytes())
	fmt.Fprintf(tw, "spi\t%d Hz write, %d Hz read\n", cfg.SPIFrequency, cfg.SPIReadFrequency)
	fmt.Fprintf(tw, "palette\t%d colors\n", cfg.Palette.Len())
	return tw.Flush()
}

func listPalette(w io.Writer, p tft.Palette) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRGB565\tR\tG\tB\tHEX")
	for _, e := range p.Entries() {
		r, g, b := e.Color.Channels()
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", e.Name, e.Color, r, g, b, e.Color.Colorful().Hex())
	}
	return tw.Flush()
}
