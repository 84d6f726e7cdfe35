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

// Cut splits c into consecutive arcs at every point where one of the
// circles in others crosses it.  The arcs are ordered by angle and together
// cover the circle exactly once.  If nothing crosses c, the result is a
// single full-circle arc.
//
// others must not contain c itself.
func Cut(c Circle, others []Circle) []Arc {
	return cut(c, others, DefaultEpsilon)
}

func cut(c Circle, others []Circle, eps float64) []Arc {
	angles := dedupAngles(splitAngles(c, others, eps), c.Radius, eps)
	if len(angles) == 0 {
		return []Arc{FullArc(c)}
	}

	arcs := make([]Arc, len(angles))
	for i, start := range angles {
		end := angles[(i+1)%len(angles)]
		arcs[i] = Arc{Circle: c, Start: start, End: end}
	}
	return arcs
}

// dedupAngles removes angles whose points on a circle of the given radius
// are closer than eps to the point of their predecessor, measured along the
// circle and including across the wrap from 2π to 0.  The input must be
// sorted.
func dedupAngles(angles []float64, radius, eps float64) []float64 {
	if len(angles) < 2 {
		return angles
	}
	out := angles[:1]
	for _, a := range angles[1:] {
		if radius*(a-out[len(out)-1]) < eps {
			continue
		}
		out = append(out, a)
	}
	for len(out) > 1 && radius*(out[0]+fullTurn-out[len(out)-1]) < eps {
		out = out[:len(out)-1]
	}
	return out
}

// IntersectMany returns the arcs which bound the intersection of the
// interiors of all circles.  An arc of circle i is kept if its midpoint
// lies in the interior of every other circle.
//
// The arcs are returned in no particular grouping; use Stitch to assemble
// them into closed loops.
func IntersectMany(circles []Circle) []Arc {
	return arrange(circles, DefaultEpsilon)
}

func arrange(circles []Circle, eps float64) []Arc {
	var res []Arc
	others := make([]Circle, 0, len(circles))
	for i, c := range circles {
		others = append(others[:0], circles[:i]...)
		others = append(others, circles[i+1:]...)

	candidates:
		for _, a := range cut(c, others, eps) {
			mid := a.Midpoint()
			for _, o := range others {
				if !o.Contains(mid) {
					continue candidates
				}
			}
			res = append(res, a)
		}
	}
	return res
}
