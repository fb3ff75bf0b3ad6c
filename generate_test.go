package badge_test

import (
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/presets"
)

// TestGenerateDefault writes the default icon set twice into a fresh
// directory and checks that it holds exactly the expected files.
func TestGenerateDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "icons")

	r := badge.NewRenderer()
	r.Fonts = nil
	for range 2 {
		written, err := r.Generate(dir, presets.Default)
		if err != nil {
			t.Fatal(err)
		}
		if len(written) != len(presets.Default) {
			t.Fatalf("got %d files, want %d", len(written), len(presets.Default))
		}
		for i, req := range presets.Default {
			if want := filepath.Join(dir, req.Filename); written[i] != want {
				t.Errorf("file %d is %q, want %q", i, written[i], want)
			}
			checkPNG(t, written[i], req.Size)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"icon128.png", "icon16.png", "icon32.png", "icon48.png"}
	if !slices.Equal(names, want) {
		t.Errorf("directory holds %v, want %v", names, want)
	}
}

func checkPNG(t *testing.T, name string, size int) {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if cfg.Width != size || cfg.Height != size {
		t.Errorf("%s: %dx%d, want %dx%d", name, cfg.Width, cfg.Height, size, size)
	}
}
