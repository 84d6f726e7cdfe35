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

import "seehuhn.de/go/circles"

var invertedScenes = []Scene{
	{
		Name:    "lens_hole",
		Circles: []circles.Circle{disk(0, 0, 5), disk(6, 0, 5), hole(3, 0, 1)},
		Width:   256,
		Height:  256,
	},
	{
		Name:    "crescent",
		Circles: []circles.Circle{disk(0, 0, 5), hole(3, 0, 4)},
		Width:   256,
		Height:  256,
	},
	{
		// holes crossing the boundary of the disk
		Name:    "bite",
		Circles: []circles.Circle{disk(0, 0, 5), hole(4, 0, 2), hole(-4, 0, 2)},
		Width:   256,
		Height:  256,
	},
	{
		Name:    "ring_holes",
		Circles: append([]circles.Circle{disk(0, 0, 5)}, ring(0, 0, 3, 1, 6, true)...),
		Width:   256,
		Height:  256,
	},
}
