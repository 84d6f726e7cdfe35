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

package circles

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Intersect returns the two points where the boundaries of a and b cross.
//
// If the circles do not cross, ok is false.  This includes disjoint
// circles, circles where one lies strictly inside the other, concentric
// circles, and circles which touch in a single point.  Orientation is
// ignored.
func Intersect(a, b Circle) (p, q vec.Vec2, ok bool) {
	return intersect(a, b, DefaultEpsilon)
}

// intersect uses the radical line of a and b.  The intersection points lie
// on the line through the centers at distance m from a.Center, offset by
// ±h perpendicular to it.
func intersect(a, b Circle, eps float64) (p, q vec.Vec2, ok bool) {
	axis := b.Center.Sub(a.Center)
	d := axis.Length()
	if d < eps {
		return vec.Vec2{}, vec.Vec2{}, false
	}

	// Tangency is decided on the center distance, so that nearly
	// touching circles never produce two almost identical points.
	if d > a.Radius+b.Radius-eps || d < math.Abs(a.Radius-b.Radius)+eps {
		return vec.Vec2{}, vec.Vec2{}, false
	}

	m := (d*d + a.Radius*a.Radius - b.Radius*b.Radius) / (2 * d)
	h2 := a.Radius*a.Radius - m*m
	if !(h2 > 0) {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	h := math.Sqrt(h2)

	u := axis.Mul(1 / d)
	n := vec.Vec2{X: -u.Y, Y: u.X}
	base := a.Center.Add(u.Mul(m))
	return base.Add(n.Mul(h)), base.Sub(n.Mul(h)), true
}

// SplitAngles returns the angles, relative to the center of c, at which the
// circles in others cross c.  The result is sorted in increasing order.
// others must not contain c itself.
func SplitAngles(c Circle, others []Circle) []float64 {
	return splitAngles(c, others, DefaultEpsilon)
}

func splitAngles(c Circle, others []Circle, eps float64) []float64 {
	var angles []float64
	for _, o := range others {
		p, q, ok := intersect(c, o, eps)
		if !ok {
			continue
		}
		angles = append(angles, c.Angle(p), c.Angle(q))
	}
	slices.Sort(angles)
	return angles
}
