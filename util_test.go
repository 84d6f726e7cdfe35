package circles

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// winding returns the winding number of the closed polygon poly around p.
func winding(poly []vec.Vec2, p vec.Vec2) int {
	w := 0
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
		if a.Y <= p.Y {
			if b.Y > p.Y && cross > 0 {
				w++
			}
		} else if b.Y <= p.Y && cross < 0 {
			w--
		}
	}
	return w
}

// totalWinding sums the winding numbers of all polygons around p.
func totalWinding(polys [][]vec.Vec2, p vec.Vec2) int {
	w := 0
	for _, poly := range polys {
		w += winding(poly, p)
	}
	return w
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
