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

// Command export writes the "icons" section of the extension manifest
// for the default icon set.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"seehuhn.de/go/badge/presets"
)

const iconDir = "icons"

func main() {
	out := struct {
		Icons map[string]string `json:"icons"`
	}{
		Icons: presets.Manifest(iconDir, presets.Default),
	}

	if err := os.MkdirAll(iconDir, 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(filepath.Join(iconDir, "manifest-icons.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
