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

package badge

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/badge/fonts"
	"seehuhn.de/go/badge/raster"
	"seehuhn.de/go/badge/shapes"
)

// ErrInvalidSize is returned for icon sizes which are not positive.
var ErrInvalidSize = errors.New("badge: invalid size")

// Request asks for one icon of Size×Size pixels, stored as Filename.
type Request struct {
	Size     int
	Filename string
}

// Layer is one shape of a badge, in canvas coordinates. Layers are
// painted in order, each over the previous ones.
type Layer struct {
	Name string
	Path path.Path
	CTM  matrix.Matrix // maps Path to canvas coordinates

	// Stroke is the line width if Path is stroked. If Stroke is zero,
	// Path is filled with the nonzero winding rule.
	Stroke float64

	Color color.NRGBA
}

// Renderer draws badges. The zero value is not usable; use
// [NewRenderer].
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	Style Style

	// Fonts lists the label typefaces to try, in order of preference.
	Fonts []fonts.Candidate

	face *fonts.Face
	rast *raster.Rasterizer
}

// NewRenderer returns a Renderer using the default style and the system
// fonts of the current platform.
func NewRenderer() *Renderer {
	return &Renderer{
		Style: DefaultStyle(),
		Fonts: fonts.DefaultCandidates(),
	}
}

// Face returns the label typeface. The font candidates are tried on the
// first call only.
func (r *Renderer) Face() *fonts.Face {
	if r.face == nil {
		r.face = fonts.Resolve(r.Fonts)
	}
	return r.face
}

// Layers returns the shapes of a badge with the given final size, and the
// edge length of the supersampled canvas they are drawn on.
func (r *Renderer) Layers(size int) ([]Layer, int, error) {
	if size <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	s := &r.Style
	edge := size * s.Factor
	c := float64(edge) / 2
	w := s.StrokeWidth(size)

	// The border is stroked along a circle inset by half the line width,
	// so that it ends at the rim of the disk.
	layers := []Layer{
		{Name: "disk", Path: shapes.Circle(c, c, c, false), CTM: matrix.Identity, Color: s.Background},
		{Name: "border", Path: shapes.Circle(c, c, c-w/2, false), CTM: matrix.Identity, Stroke: w, Color: s.Border},
	}

	text := s.Label(size)
	ppem := s.FontSize(size)
	if ppem < 1 {
		Logger().Debug("icon too small for a label", "size", size)
		return layers, edge, nil
	}
	run, err := r.Face().Layout(text, ppem)
	if err != nil {
		return nil, 0, err
	}
	ink, ok := run.Bounds()
	if !ok {
		return layers, edge, nil
	}

	// Center the ink box, then lift it by a fraction of its height.
	inkW := ink.URx - ink.LLx
	h := ink.URy - ink.LLy
	x := (float64(edge)-inkW)/2 - ink.LLx
	y := (float64(edge)-h)/2 - ink.LLy - s.Nudge*h
	Logger().Debug("label placed",
		"size", size, "text", text, "ppem", ppem,
		"width", inkW, "height", h, "x", x, "y", y)

	layers = append(layers, Layer{
		Name:  "label",
		Path:  run.Path(),
		CTM:   matrix.Matrix{1, 0, 0, 1, x, y},
		Color: s.Text,
	})
	return layers, edge, nil
}

// Render draws the badge at the given size.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	layers, edge, err := r.Layers(size)
	if err != nil {
		return nil, err
	}

	clip := rect.Rect{URx: float64(edge), URy: float64(edge)}
	if r.rast == nil {
		r.rast = raster.NewRasterizer(clip)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, edge, edge))
	for _, l := range layers {
		r.rast.Reset(clip)
		r.rast.CTM = l.CTM
		paint := func(y, xMin int, coverage []float32) {
			paintRow(canvas, y, xMin, coverage, l.Color)
		}
		if l.Stroke > 0 {
			r.rast.Width = l.Stroke
			r.rast.Stroke(l.Path, paint)
		} else {
			r.rast.FillNonZero(l.Path, paint)
		}
	}

	if r.Style.Factor == 1 {
		return canvas, nil
	}
	return downsample(r.Style.Resample, canvas, size), nil
}
