package output

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/circles"
)

var lens = []circles.Circle{
	{Center: vec.Vec2{X: 0, Y: 0}, Radius: 5},
	{Center: vec.Vec2{X: 6, Y: 0}, Radius: 5},
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func TestFit(t *testing.T) {
	page := Page{Width: 200, Height: 100, Margin: 10}
	m := Fit(lens, page)

	cases := []struct {
		in, out vec.Vec2
	}{
		{vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 100, Y: 50}},
		{vec.Vec2{X: 3, Y: 5}, vec.Vec2{X: 100, Y: 10}},
		{vec.Vec2{X: 3, Y: -5}, vec.Vec2{X: 100, Y: 90}},
		{vec.Vec2{X: -5, Y: 0}, vec.Vec2{X: 36, Y: 50}},
	}
	for _, tc := range cases {
		got := apply(m, tc.in)
		if got.Sub(tc.out).Length() > 1e-9 {
			t.Errorf("%v is mapped to %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestFitEmpty(t *testing.T) {
	m := Fit(nil, Page{Width: 40, Height: 20})
	if got := apply(m, vec.Vec2{}); got != (vec.Vec2{X: 20, Y: 10}) {
		t.Errorf("origin is mapped to %v", got)
	}
}

func TestRenderGray(t *testing.T) {
	page := Page{Width: 100, Height: 100, Margin: 5}
	ctm := Fit(lens, page)
	polys := circles.Outline(lens, nil)

	img := RenderGray(page, ctm, polys, lens, nil)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("wrong image size %v", b)
	}
	if got := img.GrayAt(50, 50).Y; got != 0 {
		t.Errorf("region interior has gray value %d, want 0", got)
	}
	if got := img.GrayAt(1, 1).Y; got != 255 {
		t.Errorf("background has gray value %d, want 255", got)
	}
	// inside the first circle, outside the second
	if got := img.GrayAt(25, 50).Y; got != 255 {
		t.Errorf("point outside the region has gray value %d, want 255", got)
	}
}

func TestRenderOutline(t *testing.T) {
	page := Page{Width: 100, Height: 100, Margin: 5}
	ctm := Fit(lens, page)
	polys := circles.Outline(lens, &circles.Options{PolygonPoints: 200})

	img := RenderGray(page, ctm, polys, lens, &Style{Outline: 2})
	if got := img.GrayAt(50, 50).Y; got != 255 {
		t.Errorf("outline mode filled the interior: gray value %d", got)
	}

	// The left tip of the lens boundary lies on the second circle.
	tip := apply(ctm, vec.Vec2{X: 1, Y: 0})
	x, y := int(math.Floor(tip.X)), int(math.Floor(tip.Y))
	if got := img.GrayAt(x, y).Y; got > 128 {
		t.Errorf("boundary pixel (%d,%d) has gray value %d", x, y, got)
	}
}

func TestRenderCircles(t *testing.T) {
	page := Page{Width: 100, Height: 100, Margin: 5}
	ctm := Fit(lens, page)

	img := RenderGray(page, ctm, nil, lens, &Style{Circles: true})
	dark := 0
	for _, v := range img.Pix {
		if v < 255 {
			dark++
		}
	}
	if dark == 0 {
		t.Error("no circles were drawn")
	}
	if got := img.GrayAt(50, 50).Y; got != 255 {
		t.Errorf("interior has gray value %d without a region", got)
	}
}

func TestWritePNG(t *testing.T) {
	page := Page{Width: 64, Height: 48, Margin: 2}
	img := RenderGray(page, Fit(lens, page), circles.Outline(lens, nil), nil, nil)

	fileName := filepath.Join(t.TempDir(), "lens.png")
	if err := WritePNG(fileName, img); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("wrong image size %v", b)
	}
}

func TestWritePDF(t *testing.T) {
	page := Page{Width: 200, Height: 200, Margin: 10}
	ctm := Fit(lens, page)
	polys := circles.Outline(lens, nil)

	for name, style := range map[string]*Style{
		"fill":    nil,
		"evenodd": {EvenOdd: true, Circles: true},
		"outline": {Outline: 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), name+".pdf")
			if err := WritePDF(fileName, page, ctm, polys, lens, style); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(fileName)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("%s does not start with a PDF header", fileName)
			}
		})
	}
}

func TestWritePDFBadPath(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "missing", "out.pdf")
	if err := WritePDF(fileName, Page{Width: 10, Height: 10}, matrix.Identity, nil, nil, nil); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}
