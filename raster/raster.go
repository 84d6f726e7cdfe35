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

// Package raster converts polygon outlines to anti-aliased pixel coverage.
//
// The outlines computed by package circles are polygons with one subpath
// per boundary loop.  A Rasterizer fills such a path with the nonzero or
// even-odd rule, or strokes its edges, and delivers the coverage row by
// row.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the edge runs downwards, -1 otherwise
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer computes pixel coverage for paths.
// Create one instance and reuse it for many paths; internal buffers
// grow as needed but are never released.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Join selects how Stroke connects consecutive segments.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	cover []float32 // per pixel: change of the winding number
	area  []float32 // per pixel: signed area within the pixel
	edges []edge
	order []int // indices into edges, sorted by yMin
	alive []int // edges overlapping the current scanline
	verts []vec.Vec2

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
// The other fields are set to the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.order = r.order[:0]
	r.alive = r.alive[:0]
	r.verts = r.verts[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// Subpaths are closed implicitly.
//
// The coverage of row y, starting at pixel xMin, is passed to emit.
// Rows without coverage are skipped.  The coverage slice is only valid
// during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	r.collectFill(p)
	r.rasterize(false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// See [Rasterizer.FillNonZero] for the meaning of emit.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	r.collectFill(p)
	r.rasterize(true, emit)
}

// collectFill converts the subpaths of p into edges.
func (r *Rasterizer) collectFill(p *path.Data) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			current = r.flatten(current, p.Coords[k:k+2], r.addEdge)
			k += 2
		case path.CmdCubeTo:
			current = r.flatten(current, p.Coords[k:k+3], r.addEdge)
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)
}

// flatten approximates a Bézier curve from p0 via the control points in
// ctrl by line segments and returns the end point of the curve.
//
// The engine only produces polygons, so curves are rare here and a
// uniform subdivision is good enough.
func (r *Rasterizer) flatten(p0 vec.Vec2, ctrl []vec.Vec2, emit func(a, b vec.Vec2)) vec.Vec2 {
	pts := append([]vec.Vec2{p0}, ctrl...)

	// The control polygon bounds the curve length.
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += r.transformLinear(pts[i].Sub(pts[i-1])).Length()
	}
	n := max(1, min(maxCurveSegments, int(math.Ceil(math.Sqrt(length/r.Flatness)))))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		q := bezier(pts, t)
		emit(prev, q)
		prev = q
	}
	return prev
}

// bezier evaluates the Bézier curve with control points pts at t,
// using de Casteljau's algorithm.
func bezier(pts []vec.Vec2, t float64) vec.Vec2 {
	var buf [4]vec.Vec2
	b := buf[:copy(buf[:], pts)]
	for len(b) > 1 {
		for i := range len(b) - 1 {
			b[i] = b[i].Mul(1 - t).Add(b[i+1].Mul(t))
		}
		b = b[:len(b)-1]
	}
	return b[0]
}

func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
}

// addEdge transforms the segment from p0 to p1 to device space and
// records it.  Horizontal segments do not contribute and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		dir = -1
	}

	if len(r.edges) == 0 {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		dir:  dir,
	})
}

// rasterize scans the collected edges from top to bottom, maintaining the
// set of edges which overlap the current scanline.
//
// Each edge deposits two numbers per pixel it crosses: cover, the signed
// vertical extent of the edge within the pixel, and area, the part of that
// extent weighted by the fraction of the pixel to the right of the edge.
// Summing cover from the left and adding area gives the winding number
// averaged over the pixel.
func (r *Rasterizer) rasterize(evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	r.order = r.order[:0]
	for i := range r.edges {
		r.order = append(r.order, i)
	}
	slices.SortFunc(r.order, func(a, b int) int {
		return cmp.Compare(r.edges[a].yMin(), r.edges[b].yMin())
	})

	r.alive = r.alive[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.order) && r.edges[r.order[next]].yMin() < bottom {
			r.alive = append(r.alive, r.order[next])
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.alive); {
			e := &r.edges[r.alive[i]]
			if e.yMax() <= top {
				r.alive[i] = r.alive[len(r.alive)-1]
				r.alive = r.alive[:len(r.alive)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, evenOdd)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y.
// It reports whether e overlaps the scanline.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bottom-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	cover := e.dir * float32(bottom-top)

	if right-left < verticalEdgeThreshold {
		r.deposit((left+right)/2, cover, xMin, xMax)
		return true
	}

	// Split the edge where it crosses pixel boundaries.  The part left of
	// the clip region only changes the winding number of the first pixel.
	scale := float64(cover) / (right - left)
	u := left
	if u < float64(xMin) {
		v := min(right, float64(xMin))
		r.deposit(float64(xMin)-1, float32((v-u)*scale), xMin, xMax)
		u = v
	}
	for u < right && u < float64(xMax) {
		v := min(math.Floor(u)+1, right)
		r.deposit((u+v)/2, float32((v-u)*scale), xMin, xMax)
		u = v
	}
	return true
}

// deposit records a piece of an edge with midpoint x and signed vertical
// extent c.
func (r *Rasterizer) deposit(x float64, c float32, xMin, xMax int) {
	pix := int(math.Floor(x))
	if pix < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if pix >= xMax {
		return
	}
	i := pix - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-(x-float64(pix)))
}

// integrate turns the cover and area buffers into coverage values,
// in place in cover.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if evenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, together with its offset.  If all values are zero,
// the result is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// maxCurveSegments bounds the subdivision of a single curve.
	maxCurveSegments = 100

	// horizontalEdgeThreshold is the minimal vertical extent of an edge,
	// in device pixels.  Flatter edges do not change coverage.
	horizontalEdgeThreshold = 1e-10

	// verticalEdgeThreshold is the horizontal extent below which an edge
	// piece is treated as vertical.
	verticalEdgeThreshold = 1e-12
)
