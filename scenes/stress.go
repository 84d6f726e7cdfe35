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

var stressScenes = []Scene{
	{
		// every circle contributes one arc
		Name:          "flower",
		Circles:       ring(0, 0, 1, 2, 24, false),
		Width:         512,
		Height:        512,
		PolygonPoints: 400,
	},
	{
		Name:    "grid_holes",
		Circles: append([]circles.Circle{disk(0, 0, 8)}, grid(-4, -4, 2, 5, 0.7, true)...),
		Width:   512,
		Height:  512,
	},
	{
		// neighboring holes overlap
		Name:          "chain",
		Circles:       append([]circles.Circle{disk(0, 0, 6)}, ring(0, 0, 3, 0.9, 12, true)...),
		Width:         512,
		Height:        512,
		PolygonPoints: 200,
	},
}

// grid places n×n circles of radius r on a square grid starting at
// (x0, y0) with the given spacing.
func grid(x0, y0, spacing float64, n int, r float64, inverted bool) []circles.Circle {
	res := make([]circles.Circle, 0, n*n)
	for i := range n {
		for j := range n {
			c := disk(x0+float64(i)*spacing, y0+float64(j)*spacing, r)
			c.Inverted = inverted
			res = append(res, c)
		}
	}
	return res
}
