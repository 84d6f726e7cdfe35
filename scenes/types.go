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

// Package scenes provides named sets of circles, and reads and writes
// circle sets in TOML format.
package scenes

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/circles"
)

// Scene is a set of circles together with rendering parameters.
type Scene struct {
	Name    string // lowercase a-z and _ only
	Circles []circles.Circle
	Width   int // output width in pixels
	Height  int // output height in pixels

	// Epsilon and PolygonPoints override the engine defaults, if non-zero.
	Epsilon       float64
	PolygonPoints int
}

// Options returns the engine options for the scene.
func (s *Scene) Options() *circles.Options {
	return &circles.Options{
		Epsilon:       s.Epsilon,
		PolygonPoints: s.PolygonPoints,
	}
}

// Validate checks that all parameters of the scene are usable.
// The returned error, if any, is a *ValidationError.
func (s *Scene) Validate() error {
	if s.Width < 0 {
		return &ValidationError{Circle: -1, Field: "width", Value: float64(s.Width)}
	}
	if s.Height < 0 {
		return &ValidationError{Circle: -1, Field: "height", Value: float64(s.Height)}
	}
	if s.Epsilon < 0 || !isFinite(s.Epsilon) {
		return &ValidationError{Circle: -1, Field: "epsilon", Value: s.Epsilon}
	}
	if s.PolygonPoints < 0 {
		return &ValidationError{Circle: -1, Field: "polygon_points", Value: float64(s.PolygonPoints)}
	}
	for i, c := range s.Circles {
		switch {
		case !isFinite(c.Center.X):
			return &ValidationError{Circle: i, Field: "x", Value: c.Center.X}
		case !isFinite(c.Center.Y):
			return &ValidationError{Circle: i, Field: "y", Value: c.Center.Y}
		case !isFinite(c.Radius) || c.Radius <= 0:
			return &ValidationError{Circle: i, Field: "r", Value: c.Radius}
		}
	}
	return nil
}

// ValidationError reports an invalid value in a scene.
type ValidationError struct {
	Circle int // index of the offending circle, or -1 for scene parameters
	Field  string
	Value  float64
}

func (e *ValidationError) Error() string {
	if e.Circle < 0 {
		return fmt.Sprintf("invalid %s %g", e.Field, e.Value)
	}
	return fmt.Sprintf("circle %d: invalid %s %g", e.Circle, e.Field, e.Value)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// disk returns a non-inverted circle.
func disk(x, y, r float64) circles.Circle {
	return circles.Circle{Center: vec.Vec2{X: x, Y: y}, Radius: r}
}

// hole returns an inverted circle.
func hole(x, y, r float64) circles.Circle {
	return circles.Circle{Center: vec.Vec2{X: x, Y: y}, Radius: r, Inverted: true}
}

// ring places n circles of radius r with centers evenly spaced on a
// circle of radius dist around (cx, cy).
func ring(cx, cy, dist, r float64, n int, inverted bool) []circles.Circle {
	res := make([]circles.Circle, n)
	for i := range res {
		phi := 2 * math.Pi * float64(i) / float64(n)
		res[i] = circles.Circle{
			Center:   vec.Vec2{X: cx + dist*math.Cos(phi), Y: cy + dist*math.Sin(phi)},
			Radius:   r,
			Inverted: inverted,
		}
	}
	return res
}
