package circles

import (
	"math"
	"testing"
)

func TestSpan(t *testing.T) {
	c := Circle{Center: pt(0, 0), Radius: 1}
	cases := []struct {
		start, end float64
		want       float64
	}{
		{0, 2 * math.Pi, 2 * math.Pi},
		{1, 2, 1},
		{5, 1, 2*math.Pi - 4},
		{1, 1, 2 * math.Pi},
		{1, 1.0005, 2 * math.Pi},
		{1, 1.002, 0.002},
		{-1, 1, 2},
		{0.5, 0.5 + 4*math.Pi, 2 * math.Pi},
	}
	for _, tc := range cases {
		a := Arc{Circle: c, Start: tc.start, End: tc.end}
		got := a.Span()
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Span(%g, %g) = %g, want %g", tc.start, tc.end, got, tc.want)
		}
		if got <= 0 || got > 2*math.Pi {
			t.Errorf("Span(%g, %g) = %g is out of range", tc.start, tc.end, got)
		}
	}
}

func TestMidpoint(t *testing.T) {
	c := Circle{Center: pt(0, 0), Radius: 5}

	// an arc which wraps around angle zero
	a := Arc{Circle: c, Start: 2*math.Pi - 0.5, End: 0.5}
	if m := a.Midpoint(); !near(m, pt(5, 0), 1e-12) {
		t.Errorf("wrapping arc: midpoint %v, want (5, 0)", m)
	}

	full := FullArc(c)
	if m := full.Midpoint(); !near(m, pt(-5, 0), 1e-12) {
		t.Errorf("full arc: midpoint %v, want (-5, 0)", m)
	}

	// inverted circles use the same angular range
	inv := Arc{Circle: c.Invert(), Start: 0, End: math.Pi / 2}
	want := pt(5*math.Sqrt2/2, 5*math.Sqrt2/2)
	if m := inv.Midpoint(); !near(m, want, 1e-12) {
		t.Errorf("inverted arc: midpoint %v, want %v", m, want)
	}
}

func TestLeadingTrailing(t *testing.T) {
	c := Circle{Center: pt(1, 1), Radius: 1}
	a := Arc{Circle: c, Start: 0, End: math.Pi / 2}

	if p := a.Leading(); !near(p, pt(2, 1), 1e-12) {
		t.Errorf("leading %v, want (2, 1)", p)
	}
	if p := a.Trailing(); !near(p, pt(1, 2), 1e-12) {
		t.Errorf("trailing %v, want (1, 2)", p)
	}

	a.Circle.Inverted = true
	if p := a.Leading(); !near(p, pt(1, 2), 1e-12) {
		t.Errorf("inverted leading %v, want (1, 2)", p)
	}
	if p := a.Trailing(); !near(p, pt(2, 1), 1e-12) {
		t.Errorf("inverted trailing %v, want (2, 1)", p)
	}
}

func TestPointsFullCircle(t *testing.T) {
	c := Circle{Center: pt(0, 0), Radius: 3}
	pts := FullArc(c).Points(DefaultPolygonPoints)
	if len(pts) != DefaultPolygonPoints {
		t.Fatalf("got %d points, want %d", len(pts), DefaultPolygonPoints)
	}
	if !near(pts[0], pt(3, 0), 1e-12) {
		t.Errorf("first point %v, want (3, 0)", pts[0])
	}
	for i, p := range pts {
		if r := p.Length(); math.Abs(r-3) > 1e-12 {
			t.Errorf("point %d has radius %g", i, r)
		}
	}
	// counter-clockwise: the second point is above the x-axis
	if pts[1].Y <= 0 {
		t.Errorf("points are not counter-clockwise: %v", pts[:2])
	}
}

func TestPointsDirection(t *testing.T) {
	c := Circle{Center: pt(0, 0), Radius: 1}
	a := Arc{Circle: c, Start: 0, End: math.Pi / 2}

	// 8 points per turn, so a quarter turn gets 2
	pts := a.Points(8)
	want := []float64{0, math.Pi / 4}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i, angle := range want {
		if !near(pts[i], c.PointAt(angle), 1e-12) {
			t.Errorf("point %d: got %v, want angle %g", i, pts[i], angle)
		}
	}

	a.Circle.Inverted = true
	pts = a.Points(8)
	want = []float64{math.Pi / 2, math.Pi / 4}
	if len(pts) != len(want) {
		t.Fatalf("inverted: got %d points, want %d", len(pts), len(want))
	}
	for i, angle := range want {
		if !near(pts[i], c.PointAt(angle), 1e-12) {
			t.Errorf("inverted point %d: got %v, want angle %g", i, pts[i], angle)
		}
	}
	if !near(pts[0], a.Leading(), 1e-12) {
		t.Errorf("inverted arc does not start at its leading point")
	}
}

func TestPointsCount(t *testing.T) {
	c := Circle{Center: pt(0, 0), Radius: 1}
	cases := []struct {
		span    float64
		density int
		want    int
	}{
		{0.01, 50, 1},
		{math.Pi, 50, 25},
		{math.Pi, 51, 26},
		{2, 50, 16}, // 50*2/(2π) = 15.9
		{1, 0, 0},
	}
	for _, tc := range cases {
		a := Arc{Circle: c, Start: 0, End: tc.span}
		if got := len(a.Points(tc.density)); got != tc.want {
			t.Errorf("span %g, density %d: got %d points, want %d",
				tc.span, tc.density, got, tc.want)
		}
	}
}
