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

// Package badge draws the XNote extension icons: a white disk with a thin
// gray-blue border and a dark label in the middle.
//
// Each icon is drawn at [Style.Factor] times its final size and then
// reduced with a Lanczos filter, which gives smooth edges on the circle
// and on the glyphs even at 16×16 pixels. Icons of up to 32 pixels are
// labelled "X", larger ones "XNote".
//
// Rendering is deterministic: the same sizes and fonts always produce the
// same PNG bytes.
package badge

//go:generate go run ./presets/genpdf
//go:generate go run ./presets/export
