// Command tftsetup inspects TFT panel setup headers.
//
// Usage:
//
//	tftsetup check   [User_Setup.h]   validate and summarise a setup
//	tftsetup header  [User_Setup.h]   print the setup as a normalised header
//	tftsetup palette [User_Setup.h]   list the palette with 5/6/5 channels
//	tftsetup preview [User_Setup.h]   show the palette in the terminal
//
// Without a header file the built in default setup is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinygo-org/tftsetup/tft"
)

var errUsage = errors.New("usage")

var commands = map[string]bool{"check": true, "header": true, "palette": true, "preview": true}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tftsetup: ")
	flag.Usage = usage
	flag.Parse()
	err := run(flag.Args(), os.Stdout)
	if errors.Is(err, errUsage) {
		log.Print(err)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// run executes a command. The command name is checked before the header
// file is touched.
func run(args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: want a command and at most one file", errUsage)
	}
	cmd := args[0]
	if !commands[cmd] {
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	var path string
	if len(args) == 2 {
		path = args[1]
	}
	cfg, err := load(path)
	if err != nil {
		return err
	}

	switch cmd {
	case "check":
		return check(w, cfg)
	case "header":
		return tft.WriteHeader(w, cfg)
	case "palette":
		return listPalette(w, cfg.Palette)
	default:
		return preview(cfg)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tftsetup check|header|palette|preview [User_Setup.h]")
	flag.PrintDefaults()
}

// load parses the header at path, or returns the default setup if path is
// empty.
func load(path string) (tft.Config, error) {
	if path == "" {
		return tft.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return tft.Config{}, err
	}
	defer f.Close()
	cfg, err := tft.ParseHeader(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
