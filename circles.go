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

// Package circles computes the outline of the region which lies inside a
// set of circles.
//
// Every circle has an orientation.  The interior of an ordinary circle is
// its disk, the interior of an inverted circle is everything outside its
// disk.  The region computed here is the intersection of the interiors of
// all circles.  Its boundary consists of circular arcs, which are found by
// [IntersectMany], assembled into closed loops by [Stitch], and converted
// to polygons by [Loop.Points].  [Outline] runs all three steps.
//
// Loops on ordinary circles run counter-clockwise, loops on inverted
// circles run clockwise, so the polygons can be filled with the nonzero
// winding rule.
//
// All functions are pure: they keep no state between calls and are safe for
// concurrent use.
package circles

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Default values for [Options].
const (
	// DefaultEpsilon is the tolerance used to decide whether two points
	// or two angles coincide.
	DefaultEpsilon = 0.001

	// DefaultPolygonPoints is the number of polygon vertices used for a
	// full circle.
	DefaultPolygonPoints = 50
)

// Options holds the tunable parameters of the computation.
// A nil *Options, or zero fields, select the defaults.
type Options struct {
	// Epsilon is the tolerance for tangency, coincident split angles,
	// and for matching arc endpoints when forming loops.
	Epsilon float64

	// PolygonPoints is the number of vertices used to approximate a full
	// circle.  Shorter arcs use proportionally fewer vertices.
	PolygonPoints int
}

func (o *Options) epsilon() float64 {
	if o == nil || o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}

func (o *Options) polygonPoints() int {
	if o == nil || o.PolygonPoints <= 0 {
		return DefaultPolygonPoints
	}
	return o.PolygonPoints
}

// Loops finds the boundary arcs of the intersection of all circles and
// stitches them into loops.
func Loops(circles []Circle, opt *Options) []Loop {
	eps := opt.epsilon()
	arcs := arrange(circles, eps)
	loops := Stitch(arcs, eps)
	Logger().Debug("arrangement",
		"circles", len(circles),
		"arcs", len(arcs),
		"loops", len(loops))
	return loops
}

// Outline returns the boundary of the intersection of all circles, as a
// list of closed polygons.  The closing edge of each polygon is implied.
// If the intersection is empty, the result is empty.
func Outline(circles []Circle, opt *Options) [][]vec.Vec2 {
	loops := Loops(circles, opt)
	if len(loops) == 0 {
		return nil
	}
	density := opt.polygonPoints()
	res := make([][]vec.Vec2, len(loops))
	for i, l := range loops {
		res[i] = l.Points(density)
	}
	return res
}

// Path converts polygons to a path with one closed subpath per polygon.
// Polygons with fewer than two vertices are skipped.
func Path(polygons [][]vec.Vec2) *path.Data {
	p := &path.Data{}
	for _, poly := range polygons {
		if len(poly) < 2 {
			continue
		}
		p = p.MoveTo(poly[0])
		for _, pt := range poly[1:] {
			p = p.LineTo(pt)
		}
		p = p.Close()
	}
	return p
}
