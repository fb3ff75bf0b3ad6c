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

// Package raster converts filled and stroked vector paths into
// anti-aliased pixel coverage.
//
// Coverage is the exact fraction of a pixel's area inside the path,
// computed with signed-area accumulation along each scanline. Curves are
// flattened to line segments first; the flattening tolerance is
// controlled by [Rasterizer.Flatness].
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. Pixel xMin+i of row y
// has coverage[i], between 0 (outside) and 1 (inside). The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes coverage for filled and stroked paths. One instance can be
// reused for any number of paths; its buffers grow as needed and are kept
// between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it. Must be positive.
	Flatness float64

	// Width is the line width used by [Rasterizer.Stroke], in user space.
	Width float64

	// Join is the shape of stroked corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Longer miters are drawn as bevels.
	MiterLimit float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterized with 2-D buffers. Larger paths use an active edge list.
	denseLimit int

	cover   []float32 // signed vertical extent per pixel; reused for output
	area    []float32 // area to the right of the edge, per pixel
	edges   []edge
	active  []int  // indices into edges
	touched []bool // per row: whether any edge contributes

	bbox      rect.Rect // device-space bounds of edges
	bboxEmpty bool

	// stroking
	segs           []strokeSegment
	segOffsets     []int // start of each subpath in segs
	outline        []vec.Vec2
	outlineOffsets []int // start of each polygon in outline
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle
// and uses the identity CTM.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is preserved.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.Width = 1
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.denseLimit = denseLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.touched = r.touched[:0]
	r.segs = r.segs[:0]
	r.segOffsets = r.segOffsets[:0]
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasterizer) fill(p path.Path, rule fillRule, emit EmitFunc) {
	r.collectEdges(p)
	r.rasterize(rule, emit)
}

// rasterize computes coverage for the edges in r.edges.
func (r *Rasterizer) rasterize(rule fillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillSparse(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectEdges flattens p into r.edges, closing open subpaths.
func (r *Rasterizer) collectEdges(p path.Path) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]

		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// toDeviceLinear applies the linear part of the CTM, ignoring translation.
func (r *Rasterizer) toDeviceLinear(v vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// addEdge records the segment p0-p1, given in user space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	d0 := r.toDevice(p0)
	d1 := r.toDevice(p1)

	dy := d1.Y - d0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})

	lo := vec.Vec2{X: min(d0.X, d1.X), Y: min(d0.Y, d1.Y)}
	hi := vec.Vec2{X: max(d0.X, d1.X), Y: max(d0.Y, d1.Y)}
	if r.bboxEmpty {
		r.bbox = rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, lo.X)
	r.bbox.LLy = min(r.bbox.LLy, lo.Y)
	r.bbox.URx = max(r.bbox.URx, hi.X)
	r.bbox.URy = max(r.bbox.URy, hi.Y)
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by
// line segments, passed to emit in order.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// The distance between the curve and its chord is bounded by
	// |p0 - 2p1 + p2| / 4, measured in device space.
	dev := r.toDeviceLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments, passed to emit in order.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	// Wang's formula: n = ceil(sqrt(3*m / (4*tol))), where m bounds the
	// second differences of the control polygon.
	d1 := r.toDeviceLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.toDeviceLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	m := max(d1, d2)

	n := 1
	if m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// DefaultFlatness is the curve tolerance set by [NewRasterizer], in
// device pixels.
const DefaultFlatness = 0.25

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// denseLimit is the default bounding box area, in pixels, up to which
	// the 2-D buffers are used.
	denseLimit = 65536

	// defaultMiterLimit matches the PDF and PostScript default.
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the shortest segment which is stroked.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest sine of the turning angle at
	// which two segments count as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves.
	cuspCosineThreshold = -0.9999
)
