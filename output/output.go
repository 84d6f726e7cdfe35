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

// Package output draws the region computed by package circles, either as
// a PDF file or as a grayscale image.
//
// Both outputs use the same device coordinates: the origin is the top-left
// corner of the page, y grows downwards, and one unit is one PDF point or
// one pixel.  [Fit] computes a transformation from scene coordinates to
// device coordinates.
package output

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/circles"
)

// Page describes the size of the output.
type Page struct {
	Width, Height int

	// Margin is the minimal distance between the circles and the page
	// boundary, in device units.
	Margin float64
}

// Style selects how the region is drawn.
type Style struct {
	// EvenOdd selects the even-odd fill rule instead of nonzero.
	EvenOdd bool

	// Outline, if positive, is the line width used to stroke the region
	// boundary instead of filling the region.
	Outline float64

	// Circles, if set, draws the input circles in grey below the region.
	Circles bool
}

// Fit returns the transformation which maps the bounding box of the
// circles into the page, centered and with the y-axis flipped.
func Fit(cc []circles.Circle, page Page) matrix.Matrix {
	w, h := float64(page.Width), float64(page.Height)
	if len(cc) == 0 {
		return matrix.Matrix{1, 0, 0, -1, w / 2, h / 2}
	}

	box := bounds(cc)
	bw := box.URx - box.LLx
	bh := box.URy - box.LLy
	aw := max(w-2*page.Margin, 1)
	ah := max(h-2*page.Margin, 1)
	s := min(aw/bw, ah/bh)

	cx := (box.LLx + box.URx) / 2
	cy := (box.LLy + box.URy) / 2
	return matrix.Matrix{s, 0, 0, -s, w/2 - s*cx, h/2 + s*cy}
}

func bounds(cc []circles.Circle) rect.Rect {
	box := cc[0].BBox()
	for _, c := range cc[1:] {
		b := c.BBox()
		box.LLx = min(box.LLx, b.LLx)
		box.LLy = min(box.LLy, b.LLy)
		box.URx = max(box.URx, b.URx)
		box.URy = max(box.URy, b.URy)
	}
	return box
}

// scale returns the factor by which m scales lengths.
func scale(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// circleCurves approximates a full circle by four cubic Bézier curves.
// The result holds the start point, followed by three control points per
// curve.
func circleCurves(c circles.Circle) [13]vec.Vec2 {
	const k = 0.5522847498
	r := c.Radius
	kr := k * r
	x, y := c.Center.X, c.Center.Y
	return [13]vec.Vec2{
		{X: x + r, Y: y},
		{X: x + r, Y: y + kr}, {X: x + kr, Y: y + r}, {X: x, Y: y + r},
		{X: x - kr, Y: y + r}, {X: x - r, Y: y + kr}, {X: x - r, Y: y},
		{X: x - r, Y: y - kr}, {X: x - kr, Y: y - r}, {X: x, Y: y - r},
		{X: x + kr, Y: y - r}, {X: x + r, Y: y - kr}, {X: x + r, Y: y},
	}
}

const (
	circleGray = 0.6
	circleLine = 0.5 // device units
)
