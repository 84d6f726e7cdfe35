// seehuhn.de/go/circles - boundaries of circle intersections
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

package scenes

import (
	"maps"
	"slices"
	"strings"
)

// All contains the built-in scenes, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scene{
	"basic":    basicScenes,
	"inverted": invertedScenes,
	"stress":   stressScenes,
}

// Names returns the names of all built-in scenes, in the form
// category_name, sorted alphabetically.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			names = append(names, category+"_"+s.Name)
		}
	}
	return names
}

// Find returns the built-in scene with the given category_name.
func Find(name string) (Scene, bool) {
	category, rest, ok := strings.Cut(name, "_")
	if !ok {
		return Scene{}, false
	}
	for _, s := range All[category] {
		if s.Name == rest {
			return s, true
		}
	}
	return Scene{}, false
}
