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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Circle is a circle in the plane.
//
// If Inverted is false, the interior of the circle is the open disk
// |p-Center| < Radius.  If Inverted is true, the interior is the complement
// of that disk.
//
// Radius must be positive.  This is not checked.
type Circle struct {
	Center   vec.Vec2
	Radius   float64
	Inverted bool
}

// PointAt returns the point on the circle at the given angle, measured
// counter-clockwise from the positive x-axis.
func (c Circle) PointAt(angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: c.Center.X + c.Radius*cos,
		Y: c.Center.Y + c.Radius*sin,
	}
}

// Contains reports whether p lies in the interior of c.
func (c Circle) Contains(p vec.Vec2) bool {
	d := p.Sub(c.Center)
	inside := d.Dot(d) < c.Radius*c.Radius
	return inside != c.Inverted
}

// Angle returns the angle of p as seen from the center of c,
// normalized to the range [0, 2π).
func (c Circle) Angle(p vec.Vec2) float64 {
	return normAngle(math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X))
}

// Invert returns the circle with the opposite orientation.
func (c Circle) Invert() Circle {
	c.Inverted = !c.Inverted
	return c
}

// BBox returns the bounding box of the disk enclosed by c.
// The orientation of c is ignored.
func (c Circle) BBox() rect.Rect {
	return rect.Rect{
		LLx: c.Center.X - c.Radius,
		LLy: c.Center.Y - c.Radius,
		URx: c.Center.X + c.Radius,
		URy: c.Center.Y + c.Radius,
	}
}

// normAngle maps an angle into [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn { // -tiny + 2π may round up
		a = 0
	}
	return a
}

const fullTurn = 2 * math.Pi
