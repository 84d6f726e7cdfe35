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

var basicScenes = []Scene{
	{
		Name:    "lens",
		Circles: []circles.Circle{disk(0, 0, 5), disk(6, 0, 5)},
		Width:   256,
		Height:  256,
	},
	{
		Name:    "single",
		Circles: []circles.Circle{disk(0, 0, 3)},
		Width:   128,
		Height:  128,
	},
	{
		Name:    "annulus",
		Circles: []circles.Circle{disk(0, 0, 10), hole(0, 0, 2)},
		Width:   256,
		Height:  256,
	},
	{
		Name:    "triangle",
		Circles: ring(0, 0, 1, 1.5, 3, false),
		Width:   256,
		Height:  256,
	},
	{
		// two disjoint disks have an empty intersection
		Name:    "disjoint",
		Circles: []circles.Circle{disk(0, 0, 1), disk(3, 0, 1)},
		Width:   128,
		Height:  64,
	},
}
