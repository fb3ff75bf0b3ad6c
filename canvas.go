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
	"image"
	"image/color"
)

// paintRow composites col over one row of dst, weighted by coverage.
// dst holds premultiplied alpha; all arithmetic is integer, so the result
// does not depend on the platform.
func paintRow(dst *image.RGBA, y, xMin int, coverage []float32, col color.NRGBA) {
	const m = 0xffff

	row := dst.Pix[dst.PixOffset(xMin, y):]
	for i, c := range coverage {
		// source alpha in [0, m]
		a := uint32(c*m+0.5) * uint32(col.A) / 0xff
		if a == 0 {
			continue
		}
		inv := m - a

		p := row[4*i : 4*i+4 : 4*i+4]
		p[0] = blend(col.R, a, p[0], inv)
		p[1] = blend(col.G, a, p[1], inv)
		p[2] = blend(col.B, a, p[2], inv)
		p[3] = uint8((a*0xff + uint32(p[3])*inv + m/2) / m)
	}
}

// blend returns s*a + d*inv, scaled back to 8 bits. s is straight
// alpha, d is premultiplied.
func blend(s uint8, a uint32, d uint8, inv uint32) uint8 {
	return uint8((uint32(s)*a + uint32(d)*inv + 0xffff/2) / 0xffff)
}
