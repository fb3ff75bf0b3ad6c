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

package badge

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// RenderFile draws the requested icon and writes it as a PNG file into
// dir. The directory must exist. The path of the new file is returned.
func (r *Renderer) RenderFile(req Request, dir string) (string, error) {
	img, err := r.Render(req.Size)
	if err != nil {
		return "", fmt.Errorf("%s: %w", req.Filename, err)
	}

	name := filepath.Join(dir, req.Filename)
	if err := writePNG(name, img); err != nil {
		return "", err
	}
	return name, nil
}

// Generate creates dir if needed and renders the requested icons into it,
// one after the other. It stops at the first error; icons written before
// the error are left in place. The paths of the written files are
// returned.
func (r *Renderer) Generate(dir string, reqs []Request) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for _, req := range reqs {
		name, err := r.RenderFile(req, dir)
		if err != nil {
			return written, err
		}
		Logger().Info("generated icon", "path", name, "size", req.Size)
		written = append(written, name)
	}
	return written, nil
}

// EncodePNG writes img in PNG format. The encoder settings are fixed, so
// equal images give equal bytes.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, img)
}
