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
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Run is a line of text, shaped and converted to outlines.
//
// All coordinates are in pixels relative to the pen origin: the start of
// the baseline, with the y axis pointing down.
type Run struct {
	Text    string
	PPEM    float64 // font size in pixels per em
	Advance float64 // total advance width

	segs   []segment
	bounds rect.Rect
	empty  bool
}

// segment is one outline command with its points already positioned.
type segment struct {
	cmd path.Command
	n   int
	pts [3]vec.Vec2
}

// Layout shapes text at the given size and extracts the glyph outlines.
func (f *Face) Layout(text string, ppem float64) (*Run, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, ErrEmptyLabel
	}
	if ppem <= 0 {
		return nil, fmt.Errorf("fonts: invalid size %g", ppem)
	}

	glyphs, advance := f.shape(runes, ppem)
	run := &Run{
		Text:    text,
		PPEM:    ppem,
		Advance: advance,
		empty:   true,
	}

	var buf sfnt.Buffer
	size := fixed.Int26_6(ppem * 64)
	for _, g := range glyphs {
		gid := sfnt.GlyphIndex(g.gid)
		origin := vec.Vec2{X: g.x, Y: g.y}

		b, _, err := f.outlines.GlyphBounds(&buf, gid, size, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("fonts: glyph %d of %q: %w", gid, text, err)
		}
		segs, err := f.outlines.LoadGlyph(&buf, gid, size, nil)
		if err != nil {
			return nil, fmt.Errorf("fonts: glyph %d of %q: %w", gid, text, err)
		}
		if len(segs) == 0 {
			continue // blank glyph, e.g. a space
		}

		run.addBounds(rect.Rect{
			LLx: origin.X + fixedToFloat(b.Min.X),
			LLy: origin.Y + fixedToFloat(b.Min.Y),
			URx: origin.X + fixedToFloat(b.Max.X),
			URy: origin.Y + fixedToFloat(b.Max.Y),
		})
		run.addOutline(segs, origin)
	}
	return run, nil
}

// addOutline converts sfnt segments to path segments. sfnt starts each
// contour with a move and leaves it open, so every contour is closed
// explicitly.
func (r *Run) addOutline(segs sfnt.Segments, origin vec.Vec2) {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fixedToFloat(p.X), Y: origin.Y + fixedToFloat(p.Y)}
	}

	open := false
	for _, s := range segs {
		var out segment
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.segs = append(r.segs, segment{cmd: path.CmdClose})
			}
			open = true
			out = segment{cmd: path.CmdMoveTo, n: 1, pts: [3]vec.Vec2{pt(s.Args[0])}}
		case sfnt.SegmentOpLineTo:
			out = segment{cmd: path.CmdLineTo, n: 1, pts: [3]vec.Vec2{pt(s.Args[0])}}
		case sfnt.SegmentOpQuadTo:
			out = segment{cmd: path.CmdQuadTo, n: 2, pts: [3]vec.Vec2{pt(s.Args[0]), pt(s.Args[1])}}
		case sfnt.SegmentOpCubeTo:
			out = segment{cmd: path.CmdCubeTo, n: 3, pts: [3]vec.Vec2{pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])}}
		default:
			continue
		}
		r.segs = append(r.segs, out)
	}
	if open {
		r.segs = append(r.segs, segment{cmd: path.CmdClose})
	}
}

func (r *Run) addBounds(b rect.Rect) {
	if r.empty {
		r.bounds = b
		r.empty = false
		return
	}
	r.bounds.LLx = min(r.bounds.LLx, b.LLx)
	r.bounds.LLy = min(r.bounds.LLy, b.LLy)
	r.bounds.URx = max(r.bounds.URx, b.URx)
	r.bounds.URy = max(r.bounds.URy, b.URy)
}

// Bounds returns the ink bounding box of the run. LLy is the top edge
// and URy the bottom edge. The second return value is false if the run
// has no visible glyphs.
func (r *Run) Bounds() (rect.Rect, bool) {
	return r.bounds, !r.empty
}

// Path returns the glyph outlines. The contours are closed and should be
// filled with the nonzero winding rule.
func (r *Run) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range r.segs {
			s := &r.segs[i]
			if !yield(s.cmd, s.pts[:s.n]) {
				return
			}
		}
	}
}
