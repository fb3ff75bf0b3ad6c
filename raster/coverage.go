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

package raster

import (
	"cmp"
	"math"
	"slices"
)

// Each edge crossing a pixel deposits two numbers:
//
//	cover = sign * dy               (signed vertical extent inside the pixel)
//	area  = cover * (1 - xFrac)     (the part of the pixel right of the edge)
//
// Scanning a row from left to right, the coverage of pixel i is the sum of
// cover over all pixels left of i plus area[i]. Clamping the absolute
// value to [0,1] gives the nonzero rule, folding it modulo 2 gives the
// even-odd rule. Contributions left of the buffer go into index 0.

// accumulate adds the contribution of e to scanline y. The buffers cover
// the pixels xMin, ..., xMax-1.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= xMax:
		return
	case pixLeft == pixRight:
		deposit(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns; split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// deposit adds the part of e between lo and hi, which lies inside pixel
// column pix, to the buffers.
func deposit(e *edge, lo, hi float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		xFrac := xMid - float64(pix)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-xFrac)
	}
}

// integrate turns the accumulated values of one scanline into coverage,
// stored in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == nonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			if m > 1 {
				m = 2 - m
			}
			cover[i] = m
		}
	}
}

// trimZeros removes leading and trailing zeros from a coverage row.
// The offset of the first kept element is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillDense accumulates all edges into buffers covering the whole bounding
// box, then integrates the rows touched by at least one edge.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	n := width * height
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.touched = slices.Grow(r.touched[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.touched)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.touched[row] = true
		}
	}

	for row := range height {
		if !r.touched[row] {
			continue
		}
		off := row * width
		cov := r.cover[off : off+width]
		integrate(cov, r.area[off:off+width], rule)
		if trimmed, skip := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// fillSparse processes one scanline at a time, keeping a list of the
// edges which intersect the current row.
func (r *Rasterizer) fillSparse(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		contributed := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			contributed = true
			i++
		}
		if !contributed {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, skip := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+skip, trimmed)
		}
	}
}
