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
	"math"

	"golang.org/x/image/draw"
)

// Lanczos3 is the windowed sinc filter with three lobes.
// When reducing an image, the kernel is widened to the source pixel
// spacing, so every source pixel contributes.
var Lanczos3 = &draw.Kernel{
	Support: 3,
	At:      lanczos3,
}

func lanczos3(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 || t <= -3 {
		return 0
	}
	x := math.Pi * t
	return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
}

// downsample scales src to a size×size image.
func downsample(s draw.Scaler, src *image.RGBA, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
