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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p with line width r.Width, using r.Join at
// the corners.  Open subpaths end with butt caps.
//
// All pieces of the outline are traced clockwise and filled together with
// the nonzero rule, so that overlapping pieces do not cancel.
// See [Rasterizer.FillNonZero] for the meaning of emit.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	r.verts = r.verts[:0]
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.strokePolyline(r.verts, false)
			r.verts = append(r.verts[:0], p.Coords[k])
			k++
		case path.CmdLineTo:
			r.addVertex(p.Coords[k])
			k++
		case path.CmdQuadTo, path.CmdCubeTo:
			n := 2
			if cmd == path.CmdCubeTo {
				n = 3
			}
			if len(r.verts) > 0 {
				r.flatten(r.verts[len(r.verts)-1], p.Coords[k:k+n], func(_, b vec.Vec2) {
					r.addVertex(b)
				})
			}
			k += n
		case path.CmdClose:
			r.strokePolyline(r.verts, true)
			if len(r.verts) > 0 {
				r.verts = r.verts[:1]
			}
		}
	}
	r.strokePolyline(r.verts, false)
	r.verts = r.verts[:0]

	r.rasterize(false, emit)
}

// addVertex appends v to the current polyline, skipping zero-length
// segments.
func (r *Rasterizer) addVertex(v vec.Vec2) {
	if n := len(r.verts); n > 0 && r.verts[n-1].Sub(v).Length() < zeroLengthThreshold {
		return
	}
	r.verts = append(r.verts, v)
}

// strokePolyline adds the outline of one polyline to the edge list.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool) {
	if closed && len(pts) > 2 && pts[0].Sub(pts[len(pts)-1]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 {
		return
	}
	d := r.Width / 2

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(b.Sub(a))
		r.addPolygon(a.Add(nrm.Mul(d)), b.Add(nrm.Mul(d)), b.Sub(nrm.Mul(d)), a.Sub(nrm.Mul(d)))
	}

	first, last := 1, n-2
	if closed {
		first, last = 0, n-1
	}
	for i := first; i <= last; i++ {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		t1 := unit(pts[i].Sub(prev))
		t2 := unit(next.Sub(pts[i]))
		r.addJoin(pts[i], t1, t2, d)
	}
}

// addJoin fills the gap on the outer side of the corner at p, where the
// direction changes from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisk(p, d)
		return
	}
	if math.Abs(cross) < collinearityThreshold {
		return // the path doubles back on itself
	}

	s := d
	if cross > 0 {
		s = -d // left turn, the outer side is on the right
	}
	n1, n2 := normal(t1), normal(t2)
	o1, o2 := p.Add(n1.Mul(s)), p.Add(n2.Mul(s))

	if r.Join == graphics.LineJoinMiter {
		c := n1.Dot(n2)
		if 1+c > 0 && math.Sqrt(2/(1+c)) <= r.MiterLimit {
			tip := p.Add(n1.Add(n2).Mul(s / (1 + c)))
			r.addClockwise(p, o1, tip, o2)
			return
		}
	}
	r.addClockwise(p, o1, o2)
}

// addDisk approximates the disk of radius d around c by a clockwise
// polygon.
func (r *Rasterizer) addDisk(c vec.Vec2, d float64) {
	rDev := r.transformLinear(vec.Vec2{X: d}).Length()
	n := 8
	if rDev > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/rDev))))
	}
	n = min(n, maxCurveSegments)

	first := vec.Vec2{X: c.X + d, Y: c.Y}
	prev := first
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / float64(n))
		q := vec.Vec2{X: c.X + d*cos, Y: c.Y + d*sin}
		r.addEdge(prev, q)
		prev = q
	}
	r.addEdge(prev, first)
}

// addClockwise adds a convex polygon, reversing it if necessary so that it
// is traced clockwise.
func (r *Rasterizer) addClockwise(pts ...vec.Vec2) {
	area := 0.0
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.addPolygon(pts...)
}

func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	for i, a := range pts {
		r.addEdge(a, pts[(i+1)%len(pts)])
	}
}

// normal returns the unit vector obtained by rotating v counter-clockwise
// by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	u := unit(v)
	return vec.Vec2{X: -u.Y, Y: u.X}
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

const (
	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the cross product below which two
	// directions are considered parallel.
	collinearityThreshold = 1e-6
)
