package badge

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestPaintRow(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	text := color.NRGBA{R: 15, G: 20, B: 25, A: 255}

	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	paintRow(dst, 0, 1, []float32{1, 0.5, 0}, red)

	want := []color.RGBA{
		{},
		{R: 255, A: 255},
		{R: 128, A: 128},
		{},
	}
	for x, w := range want {
		if got := dst.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d: got %v, want %v", x, got, w)
		}
	}

	// opaque over opaque
	dst = image.NewRGBA(image.Rect(0, 0, 2, 1))
	paintRow(dst, 0, 0, []float32{1, 1}, white)
	paintRow(dst, 0, 0, []float32{1, 0.5}, text)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 15, G: 20, B: 25, A: 255}) {
		t.Errorf("full coverage: got %v", got)
	}
	if got := dst.RGBAAt(1, 0); got.A != 255 || got.R != 135 {
		t.Errorf("half coverage: got %v", got)
	}
}

func TestLanczos3(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{0, 1},
		{1, 0},
		{-1, 0},
		{2, 0},
		{3, 0},
		{-3.5, 0},
		{7, 0},
	}
	for _, c := range cases {
		if got := lanczos3(c.t); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("lanczos3(%g) = %g, want %g", c.t, got, c.want)
		}
	}
	if lanczos3(0.5) <= 0 || lanczos3(1.5) >= 0 || lanczos3(2.5) <= 0 {
		t.Error("wrong lobe signs")
	}
	if lanczos3(0.7) != lanczos3(-0.7) {
		t.Error("kernel not symmetric")
	}
}

func TestDownsampleUniform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	dst := downsample(Lanczos3, src, 8)
	if b := dst.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("got bounds %v", b)
	}
	for y := range 8 {
		for x := range 8 {
			c := dst.RGBAAt(x, y)
			if c.R < 199 || c.R > 201 || c.A < 199 || c.A > 201 {
				t.Fatalf("pixel (%d,%d) is %v", x, y, c)
			}
		}
	}
}
