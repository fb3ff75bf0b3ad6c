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

// Command genpdf generates reference images for the badge layer tests.
// Every layer of every icon in the default set is written as a PDF file,
// which Ghostscript then renders to a grayscale PNG.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/presets"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// The reference images must not depend on the installed fonts.
	r := badge.NewRenderer()
	r.Fonts = nil

	for _, req := range presets.Default {
		layers, edge, err := r.Layers(req.Size)
		if err != nil {
			panic(err)
		}
		for _, l := range layers {
			name := fmt.Sprintf("icon%d_%s", req.Size, l.Name)
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(l, edge, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(l badge.Layer, edge int, pdfPath string) error {
	// 1 point = 1 canvas pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(edge),
		URy: float64(edge),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// White on black, so that the gray value is the coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(edge), float64(edge))
	page.Fill()

	// Layers use a top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(edge)})
	page.Transform(l.CTM)

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	// Stroke parameters must be set before the path is constructed.
	if l.Stroke > 0 {
		page.SetLineWidth(l.Stroke)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.SetMiterLimit(10)
	}

	// PDF has no quadratic curves.
	for cmd, pts := range l.Path.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if l.Stroke > 0 {
		page.Stroke()
	} else {
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
