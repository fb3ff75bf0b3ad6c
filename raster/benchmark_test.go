package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/badge/shapes"
)

// BenchmarkRing fills a ring of the size used for the largest icon border.
func BenchmarkRing(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := fullClip(size, size)
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := shapes.Ring(c, c, c, c-6)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing draws the same ring with x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2
			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				vectorCircle(z, c, c, c, false)
				vectorCircle(z, c, c, c-6, true)
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func vectorCircle(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	k := float32(shapes.Kappa) * r
	s := float32(1)
	if clockwise {
		s = -1
	}
	z.MoveTo(cx, cy-r)
	z.CubeTo(cx+s*k, cy-r, cx+s*r, cy-k, cx+s*r, cy)
	z.CubeTo(cx+s*r, cy+k, cx+s*k, cy+r, cx, cy+r)
	z.CubeTo(cx-s*k, cy+r, cx-s*r, cy+k, cx-s*r, cy)
	z.CubeTo(cx-s*r, cy-k, cx-s*k, cy-r, cx, cy-r)
	z.ClosePath()
}
