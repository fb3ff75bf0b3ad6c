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
	"image/color"

	"golang.org/x/image/draw"
)

// Style holds the fixed parameters of the badge design. Sizes are in
// pixels of the final icon unless noted otherwise.
type Style struct {
	// Factor is the supersampling factor. Must be at least 1.
	Factor int

	Background color.NRGBA // disk fill
	Border     color.NRGBA // border ring
	Text       color.NRGBA // label

	// BorderWidth is the border width of small icons; icons larger than
	// WideBorderAbove use WideBorderWidth. The widths are multiplied by
	// Factor and truncated to whole canvas pixels.
	BorderWidth     float64
	WideBorderWidth float64
	WideBorderAbove int

	// Icons up to ShortLabelMax pixels show ShortLabel at ShortLabelScale
	// em per pixel of icon size, larger icons show LongLabel at
	// LongLabelScale.
	ShortLabel      string
	LongLabel       string
	ShortLabelMax   int
	ShortLabelScale float64
	LongLabelScale  float64

	// Nudge moves the label up by this fraction of its ink height, to
	// make it look centered.
	Nudge float64

	// Resample reduces the supersampled canvas to the final size.
	Resample draw.Scaler
}

// DefaultStyle returns the XNote badge design.
func DefaultStyle() Style {
	return Style{
		Factor: 4,

		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Border:     color.NRGBA{R: 207, G: 217, B: 222, A: 255},
		Text:       color.NRGBA{R: 15, G: 20, B: 25, A: 255},

		BorderWidth:     1,
		WideBorderWidth: 1.5,
		WideBorderAbove: 48,

		ShortLabel:      "X",
		LongLabel:       "XNote",
		ShortLabelMax:   32,
		ShortLabelScale: 0.6,
		LongLabelScale:  0.25,

		Nudge: 0.1,

		Resample: Lanczos3,
	}
}

// Label returns the label text for an icon of the given size.
func (s *Style) Label(size int) string {
	if size <= s.ShortLabelMax {
		return s.ShortLabel
	}
	return s.LongLabel
}

// FontSize returns the label size in canvas pixels per em.
func (s *Style) FontSize(size int) float64 {
	scale := s.LongLabelScale
	if size <= s.ShortLabelMax {
		scale = s.ShortLabelScale
	}
	return float64(int(float64(size)*scale) * s.Factor)
}

// StrokeWidth returns the border width in canvas pixels.
func (s *Style) StrokeWidth(size int) float64 {
	if size > s.WideBorderAbove {
		return float64(int(s.WideBorderWidth * float64(s.Factor)))
	}
	return float64(max(1, int(s.BorderWidth*float64(s.Factor))))
}
