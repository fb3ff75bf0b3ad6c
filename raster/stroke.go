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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T turned by 90°
}

// Stroke outlines p with a line of the given Width, using Join and
// MiterLimit at the corners, and fills the outline with the nonzero rule.
//
// Every subpath is treated as closed, so no line caps are drawn.
// Subpaths without length produce no output.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flattenSubpaths(p)

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	for i, start := range r.segOffsets {
		end := len(r.segs)
		if i+1 < len(r.segOffsets) {
			end = r.segOffsets[i+1]
		}
		first := len(r.outline)
		r.strokeClosed(r.segs[start:end])
		if len(r.outline)-first >= 3 {
			r.outlineOffsets = append(r.outlineOffsets, first)
		} else {
			r.outline = r.outline[:first]
		}
	}
	if len(r.outlineOffsets) == 0 {
		return
	}

	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterize(nonZero, emit)
}

// flattenSubpaths replaces the curves of p by line segments. The
// segments of all subpaths are stored in r.segs, r.segOffsets holds the
// start of each subpath.
func (r *Rasterizer) flattenSubpaths(p path.Path) {
	r.segs = r.segs[:0]
	r.segOffsets = r.segOffsets[:0]

	var current, start vec.Vec2
	first := 0
	finish := func() {
		if current != start {
			r.addStrokeSegment(current, start)
		}
		if len(r.segs) > first {
			r.segOffsets = append(r.segOffsets, first)
		}
		first = len(r.segs)
		current = start
	}

	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish()
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo:
			r.addStrokeSegment(current, pts[0])
			current = pts[0]
			open = true
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addStrokeSegment)
			current = pts[1]
			open = true
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addStrokeSegment)
			current = pts[2]
			open = true
		case path.CmdClose:
			if open {
				finish()
				open = false
			}
		}
	}
	if open {
		finish()
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeClosed appends the outline of one closed subpath to r.outline, as
// a single polygon: the +N side forwards, then the -N side backwards.
// Both sides meet at the start of the first segment, where the two
// connecting edges cancel.
func (r *Rasterizer) strokeClosed(segs []strokeSegment) {
	n := len(segs)
	if n == 0 {
		return
	}
	d := r.Width / 2
	first := &segs[0]

	r.outline = append(r.outline, first.A.Add(first.N.Mul(d)))
	for i := range n {
		r.addCorner(&segs[i], &segs[(i+1)%n], d, true)
	}
	for i := n; i >= 1; i-- {
		r.addCorner(&segs[i-1], &segs[i%n], d, false)
	}
	r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))
}

// addCorner adds the outline points on one side of the corner where
// segment in ends and segment out starts. On the +N side the points are
// added in path order, on the -N side in reverse. The outer side of a
// corner gets a join, the inner side is cut where the offset lines meet.
func (r *Rasterizer) addCorner(in, out *strokeSegment, d float64, positive bool) {
	P := out.A
	sin := cross(in.T, out.T)
	collinear := math.Abs(sin) < collinearityThreshold

	if positive {
		switch {
		case collinear:
			r.outline = append(r.outline, in.B.Add(in.N.Mul(d)), out.A.Add(out.N.Mul(d)))
		case sin > 0:
			r.addInner(P, in.T, out.T, in.N, out.N, d, true)
		default:
			r.outline = append(r.outline, in.B.Add(in.N.Mul(d)))
			r.addJoin(P, in.T, out.T, d, true)
			r.outline = append(r.outline, out.A.Add(out.N.Mul(d)))
		}
		return
	}

	switch {
	case collinear:
		r.outline = append(r.outline, out.A.Sub(out.N.Mul(d)), in.B.Sub(in.N.Mul(d)))
	case sin > 0:
		r.outline = append(r.outline, out.A.Sub(out.N.Mul(d)))
		r.addJoin(P, in.T, out.T, d, false)
		r.outline = append(r.outline, in.B.Sub(in.N.Mul(d)))
	default:
		r.addInner(P, in.T, out.T, in.N, out.N, d, false)
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addInner adds the inner side of the corner at P. The offset lines are
// cut at their intersection where possible; otherwise both offset points
// are used.
func (r *Rasterizer) addInner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) {
	if pt, ok := innerIntersection(P, T1, T2, d, positive); ok {
		r.outline = append(r.outline, pt)
		return
	}
	if positive {
		r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
}

func innerIntersection(P, T1, T2 vec.Vec2, d float64, positive bool) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfAngle := math.Sqrt((1 + cos) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * halfAngle))), true
}

// addJoin adds the outer side of the corner at P, where the tangent turns
// from T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold || cos < cuspCosineThreshold {
		return
	}

	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sin < 0 {
				angle = -angle
			}
			r.addArc(P, d, N1, angle)
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sin > 0 {
				angle = -angle
			}
			r.addArc(P, d, N2, angle)
		}

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf == 0 || 1/cosHalf > r.MiterLimit+1e-10 {
			return // bevel
		}
		bisector := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
		if !positive {
			bisector = bisector.Mul(-1)
		}
		l := bisector.Length()
		if l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(bisector.Mul(d/(l*cosHalf))))
		}

	default:
		// bevel: the offset points are connected directly
	}
}

// addArc adds the points of a circular arc around center, excluding the
// start point. startDir is a unit vector, sweep is in radians.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.toDeviceLinear(vec.Vec2{X: radius}).Length(),
		r.toDeviceLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		// a chord spanning the angle θ deviates by radius*(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}

	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
