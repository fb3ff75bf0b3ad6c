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

// Package fonts finds the typeface for badge labels and turns label text
// into glyph outlines.
//
// A font is chosen from an ordered list of candidate files. The first
// candidate which can be read and parsed is used; if none can, the
// built-in Go Bold font takes its place and a warning is logged.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tsfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
)

// BuiltinSource is the [Face.Source] of the built-in fallback font.
const BuiltinSource = "builtin:gobold"

var (
	// ErrNoSuchFace is returned when a candidate asks for a face index
	// which the font file does not contain.
	ErrNoSuchFace = errors.New("fonts: no such face in font file")

	// ErrEmptyLabel is returned when laying out an empty string.
	ErrEmptyLabel = errors.New("fonts: empty label")
)

// Candidate names a font file to try. Index selects a face inside a font
// collection (.ttc/.otc) and is 0 for plain font files.
type Candidate struct {
	Path  string
	Index int
}

// Face is a parsed typeface, ready for layout.
type Face struct {
	// Source is the file the face was loaded from, or BuiltinSource.
	Source string

	// Name is the full font name, if the font has one.
	Name string

	outlines *sfnt.Font
	shaping  *tsfont.Font
}

// Resolve returns the first candidate which loads successfully. If no
// candidate can be loaded, the built-in font is returned and a warning is
// logged. Resolve never fails.
func Resolve(candidates []Candidate) *Face {
	for _, c := range candidates {
		face, err := Load(c)
		if err != nil {
			Logger().Debug("font candidate rejected", "path", c.Path, "error", err)
			continue
		}
		Logger().Debug("font selected", "path", face.Source, "name", face.Name)
		return face
	}

	Logger().Warn("could not load system font, using built-in default")
	return Builtin()
}

// Load reads and parses the font named by c.
func Load(c Candidate) (*Face, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}
	face, err := Parse(data, c.Index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Path, err)
	}
	face.Source = c.Path
	return face, nil
}

// Parse parses font data. The data can be a single font or a collection,
// in which case index selects the face.
func Parse(data []byte, index int) (*Face, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: index %d, %d faces", ErrNoSuchFace, index, coll.NumFonts())
	}
	outlines, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("fonts: face %d: %w", index, err)
	}

	shaping, err := parseShaping(data, index)
	if err != nil {
		return nil, err
	}

	face := &Face{
		outlines: outlines,
		shaping:  shaping,
	}
	if name, err := outlines.Name(nil, sfnt.NameIDFull); err == nil {
		face.Name = name
	}
	return face, nil
}

var builtin = sync.OnceValue(func() *Face {
	face, err := Parse(gobold.TTF, 0)
	if err != nil {
		panic("fonts: built-in font: " + err.Error())
	}
	face.Source = BuiltinSource
	return face
})

// Builtin returns the Go Bold font, which is compiled into the binary.
func Builtin() *Face {
	return builtin()
}
