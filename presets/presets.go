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

// Package presets lists the icons of the XNote browser extension.
package presets

import (
	"path"
	"strconv"

	"seehuhn.de/go/badge"
)

// Default is the icon set of the extension, smallest first.
var Default = []badge.Request{
	{Size: 16, Filename: "icon16.png"},
	{Size: 32, Filename: "icon32.png"},
	{Size: 48, Filename: "icon48.png"},
	{Size: 128, Filename: "icon128.png"},
}

// Manifest returns the "icons" entry of an extension manifest for the
// given set, with the files stored in dir relative to the manifest.
// The keys are the icon sizes in decimal.
func Manifest(dir string, set []badge.Request) map[string]string {
	m := make(map[string]string, len(set))
	for _, req := range set {
		m[strconv.Itoa(req.Size)] = path.Join(dir, req.Filename)
	}
	return m
}
