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

	"seehuhn.de/go/geom/vec"
)

// Arc is the part of a circle swept counter-clockwise from angle Start to
// angle End.  If Start and End coincide (modulo 2π), the arc is the whole
// circle.
type Arc struct {
	Circle     Circle
	Start, End float64
}

// FullArc returns the arc covering all of c.
func FullArc(c Circle) Arc {
	return Arc{Circle: c, Start: 0, End: fullTurn}
}

// Span returns the angle covered by the arc, in the range (0, 2π].
// Arcs shorter than DefaultEpsilon, measured along the circle, are taken
// to be full turns.
func (a Arc) Span() float64 {
	s := math.Mod(a.End-a.Start, fullTurn)
	if s < 0 {
		s += fullTurn
	}
	if a.Circle.Radius*s < DefaultEpsilon {
		return fullTurn
	}
	return s
}

// IsFull reports whether the arc covers the whole circle.
func (a Arc) IsFull() bool {
	return a.Span() == fullTurn
}

// StartPoint returns the point at angle a.Start.
func (a Arc) StartPoint() vec.Vec2 {
	return a.Circle.PointAt(a.Start)
}

// EndPoint returns the point at angle a.End.
func (a Arc) EndPoint() vec.Vec2 {
	return a.Circle.PointAt(a.End)
}

// Midpoint returns the point half way along the arc.
func (a Arc) Midpoint() vec.Vec2 {
	return a.Circle.PointAt(a.Start + a.Span()/2)
}

// Leading returns the endpoint where the traversal of the arc begins.
// Arcs on inverted circles are traversed clockwise, from End to Start.
func (a Arc) Leading() vec.Vec2 {
	if a.Circle.Inverted {
		return a.EndPoint()
	}
	return a.StartPoint()
}

// Trailing returns the endpoint where the traversal of the arc ends.
func (a Arc) Trailing() vec.Vec2 {
	if a.Circle.Inverted {
		return a.StartPoint()
	}
	return a.EndPoint()
}

// Points approximates the arc by a polyline, in traversal order.
// A full circle is represented by density points; shorter arcs get a
// proportional share, rounded up.
//
// The trailing endpoint is not included, since in a closed loop it
// coincides with the first point of the next arc.
func (a Arc) Points(density int) []vec.Vec2 {
	return a.AppendPoints(nil, density)
}

// AppendPoints appends the points of a.Points(density) to dst and returns
// the extended slice.
func (a Arc) AppendPoints(dst []vec.Vec2, density int) []vec.Vec2 {
	span := a.Span()
	n := int(math.Ceil(float64(density) * (span / fullTurn)))
	if n <= 0 {
		return dst
	}

	from, to := a.Start, a.Start+span
	if a.Circle.Inverted {
		from, to = to, from
	}
	for i := range n {
		t := float64(i) / float64(n)
		dst = append(dst, a.Circle.PointAt(from+(to-from)*t))
	}
	return dst
}
