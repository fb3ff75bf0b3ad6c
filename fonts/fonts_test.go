package fonts

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func writeFont(t *testing.T, data []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestResolveFirstWins(t *testing.T) {
	regular := writeFont(t, goregular.TTF)
	bold := writeFont(t, gobold.TTF)

	face := Resolve([]Candidate{{Path: regular}, {Path: bold}})
	if face.Source != regular {
		t.Errorf("Source = %q, want %q", face.Source, regular)
	}
}

func TestResolveSkipsMissing(t *testing.T) {
	regular := writeFont(t, goregular.TTF)
	missing := filepath.Join(t.TempDir(), "missing.ttf")

	face := Resolve([]Candidate{{Path: missing}, {Path: regular}})
	if face.Source != regular {
		t.Errorf("Source = %q, want %q", face.Source, regular)
	}
}

func TestResolveFallback(t *testing.T) {
	var logBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer SetLogger(nil)

	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.ttf")
	if err := os.WriteFile(corrupt, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	face := Resolve([]Candidate{
		{Path: filepath.Join(dir, "missing.ttf")},
		{Path: corrupt},
	})
	if face.Source != BuiltinSource {
		t.Errorf("Source = %q, want %q", face.Source, BuiltinSource)
	}
	if !strings.Contains(logBuf.String(), "level=WARN") {
		t.Errorf("no warning logged, got %q", logBuf.String())
	}
}

func TestResolveEmpty(t *testing.T) {
	if face := Resolve(nil); face != Builtin() {
		t.Error("Resolve(nil) did not return the built-in font")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Candidate{Path: filepath.Join(t.TempDir(), "missing.ttf")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}

	regular := writeFont(t, goregular.TTF)
	if _, err := Load(Candidate{Path: regular, Index: 1}); !errors.Is(err, ErrNoSuchFace) {
		t.Errorf("bad index: got %v, want ErrNoSuchFace", err)
	}
}

func TestBuiltinName(t *testing.T) {
	face := Builtin()
	if !strings.Contains(face.Name, "Go") {
		t.Errorf("Name = %q", face.Name)
	}
}

func TestLayout(t *testing.T) {
	face := Builtin()

	tests := []struct {
		text string
		ppem float64
	}{
		{"X", 36},
		{"X", 76},
		{"XNote", 48},
		{"XNote", 128},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			run, err := face.Layout(tt.text, tt.ppem)
			if err != nil {
				t.Fatal(err)
			}
			b, ok := run.Bounds()
			if !ok {
				t.Fatal("no visible glyphs")
			}
			if b.URx <= b.LLx || b.URy <= b.LLy {
				t.Fatalf("degenerate bounds %v", b)
			}
			// Capital letters sit on the baseline and reach up to about
			// 0.7 em.
			if b.URy > 0.05*tt.ppem || b.LLy > -0.5*tt.ppem || b.LLy < -tt.ppem {
				t.Errorf("bounds %v not around the baseline", b)
			}
			if b.URx > run.Advance+1 {
				t.Errorf("ink extends past advance: %v, advance %g", b, run.Advance)
			}
		})
	}
}

func TestLayoutScales(t *testing.T) {
	face := Builtin()
	small, err := face.Layout("XNote", 20)
	if err != nil {
		t.Fatal(err)
	}
	large, err := face.Layout("XNote", 40)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.Advance / small.Advance
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("advance ratio %g, want about 2", ratio)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if _, err := Builtin().Layout("", 12); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("got %v, want ErrEmptyLabel", err)
	}
}

func TestRunPath(t *testing.T) {
	run, err := Builtin().Layout("XNote", 64)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := run.Bounds()

	moves, closes := 0, 0
	for cmd, pts := range run.Path() {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdClose:
			closes++
		}
		for _, p := range pts {
			if !inside(p, b, 2) {
				t.Errorf("point %v outside bounds %v", p, b)
			}
		}
	}
	// X, N, t have one contour each; o and e have two.
	if moves < 7 {
		t.Errorf("got %d contours, want at least 7", moves)
	}
	if moves != closes {
		t.Errorf("%d moves but %d closes", moves, closes)
	}
}

// inside reports whether p lies in b, extended by tol on all sides.
func inside(p vec.Vec2, b rect.Rect, tol float64) bool {
	return p.X >= b.LLx-tol && p.X <= b.URx+tol && p.Y >= b.LLy-tol && p.Y <= b.URy+tol
}
