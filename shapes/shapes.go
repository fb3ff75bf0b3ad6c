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

// Package shapes builds circle paths from cubic Bézier arcs.
package shapes

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Kappa is the distance of the control points from the end points when a
// quarter of the unit circle is drawn as a cubic Bézier curve.
const Kappa = 0.5522847498

// Circle returns a closed circle of radius r around (cx, cy), starting at
// the top. With the y axis pointing down, the circle runs clockwise on
// screen, or counter-clockwise if reverse is set.
func Circle(cx, cy, r float64, reverse bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		circle(yield, cx, cy, r, reverse)
	}
}

// Ring returns the annulus between radius outer and radius inner. The
// circles run in opposite directions, so the ring can be filled with
// either fill rule.
func Ring(cx, cy, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !circle(yield, cx, cy, outer, false) {
			return
		}
		if inner > 0 {
			circle(yield, cx, cy, inner, true)
		}
	}
}

// circle emits the commands of one circle. It returns false if yield
// asked to stop.
func circle(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, reverse bool) bool {
	k := Kappa * r
	s := 1.0
	if reverse {
		s = -1
	}

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	arcs := [4][3]vec.Vec2{
		{{X: cx + s*k, Y: cy - r}, {X: cx + s*r, Y: cy - k}, {X: cx + s*r, Y: cy}},
		{{X: cx + s*r, Y: cy + k}, {X: cx + s*k, Y: cy + r}, {X: cx, Y: cy + r}},
		{{X: cx - s*k, Y: cy + r}, {X: cx - s*r, Y: cy + k}, {X: cx - s*r, Y: cy}},
		{{X: cx - s*r, Y: cy - k}, {X: cx - s*k, Y: cy - r}, {X: cx, Y: cy - r}},
	}
	for _, a := range arcs {
		buf = a
		if !yield(path.CmdCubeTo, buf[:]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}
