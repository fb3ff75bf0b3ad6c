// seehuhn.de/go/badge - procedurally generated icon badges
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command xnote-icons draws the toolbar and store icons of the XNote
// browser extension.
//
// Usage:
//
//	xnote-icons [-out dir] [-font file] [-v]
//
// Without arguments, icons of 16, 32, 48 and 128 pixels are written to
// the directory "icons".
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/fonts"
	"seehuhn.de/go/badge/presets"
)

func main() {
	out := flag.String("out", "icons", "output directory")
	fontFile := flag.String("font", "", "preferred label font (TrueType or collection)")
	verbose := flag.Bool("v", false, "log font selection and layout details")
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	badge.SetLogger(newLogger(*verbose))

	r := badge.NewRenderer()
	if *fontFile != "" {
		r.Fonts = append([]fonts.Candidate{{Path: *fontFile}}, r.Fonts...)
	}

	if _, err := r.Generate(*out, presets.Default); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs human-readable text to a terminal, and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
