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

package fonts

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// parseShaping parses the font data for use with the HarfBuzz shaper.
func parseShaping(data []byte, index int) (*font.Font, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: shaping tables: %w", err)
	}
	if index >= len(faces) {
		return nil, fmt.Errorf("%w: index %d, %d shapeable faces", ErrNoSuchFace, index, len(faces))
	}
	return faces[index].Font, nil
}

// shapedGlyph is a glyph with its pen position, in pixels with the y axis
// pointing down.
type shapedGlyph struct {
	gid  uint32
	x, y float64
}

// shape positions the glyphs of a single left-to-right run of text,
// applying kerning and ligatures. It returns the glyphs and the total
// advance.
func (f *Face) shape(text []rune, ppem float64) ([]shapedGlyph, float64) {
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shaping),
		Size:      fixed.Int26_6(ppem * 64),
		Script:    language.LookupScript(text[0]),
		Language:  language.NewLanguage("en"),
	}
	out := (&shaping.HarfbuzzShaper{}).Shape(input)

	glyphs := make([]shapedGlyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		glyphs[i] = shapedGlyph{
			gid: uint32(g.GlyphID),
			x:   pen + fixedToFloat(g.XOffset),
			y:   -fixedToFloat(g.YOffset),
		}
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, pen
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
