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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Loop is a chain of arcs in traversal order, where the trailing endpoint
// of each arc coincides with the leading endpoint of the next one.
type Loop []Arc

// Stitch assembles arcs into loops.
//
// Starting from the first unused arc, the loop is extended by the first
// remaining arc whose leading endpoint is within distance eps of the
// current trailing endpoint.  When no such arc exists, the loop is complete
// and the next loop starts with the first unused arc.  Loops which fail to
// close because of malformed input are returned as they are.
//
// The arcs slice is not modified.
func Stitch(arcs []Arc, eps float64) []Loop {
	pool := slices.Clone(arcs)
	eps2 := eps * eps

	var loops []Loop
	for len(pool) > 0 {
		loop := Loop{pool[0]}
		pool = pool[1:]
		cursor := loop[0].Trailing()

		for {
			idx := slices.IndexFunc(pool, func(a Arc) bool {
				return dist2(a.Leading(), cursor) < eps2
			})
			if idx < 0 {
				break
			}
			next := pool[idx]
			pool = slices.Delete(pool, idx, idx+1)
			loop = append(loop, next)
			cursor = next.Trailing()
		}

		if !loop.Closed(eps) {
			Logger().Debug("open loop",
				"arcs", len(loop),
				"gap", loop.Leading().Sub(cursor).Length())
		}
		loops = append(loops, loop)
	}
	return loops
}

// Leading returns the point where the loop begins.
func (l Loop) Leading() vec.Vec2 {
	return l[0].Leading()
}

// Trailing returns the point where the loop ends.
func (l Loop) Trailing() vec.Vec2 {
	return l[len(l)-1].Trailing()
}

// Closed reports whether the end of the loop is within distance eps of
// its start.
func (l Loop) Closed(eps float64) bool {
	if len(l) == 0 {
		return false
	}
	return dist2(l.Leading(), l.Trailing()) < eps*eps
}

// Points approximates the loop by a closed polygon.  The closing edge from
// the last point back to the first is implied.  See [Arc.Points] for the
// meaning of density.
func (l Loop) Points(density int) []vec.Vec2 {
	var pts []vec.Vec2
	for _, a := range l {
		pts = a.AppendPoints(pts, density)
	}
	return pts
}

func dist2(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
