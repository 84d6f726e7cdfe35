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

package output

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/raster"
)

// RenderGray draws the polygons, given in scene coordinates, into a new
// grayscale image: black ink on a white background.  The arguments have
// the same meaning as for [WritePDF].
func RenderGray(page Page, ctm matrix.Matrix, polygons [][]vec.Vec2, cc []circles.Circle, style *Style) *image.Gray {
	if style == nil {
		style = &Style{}
	}

	img := image.NewGray(image.Rect(0, 0, page.Width, page.Height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	clip := rect.Rect{URx: float64(page.Width), URy: float64(page.Height)}
	r := raster.NewRasterizer(clip)
	s := scale(ctm)

	if style.Circles && len(cc) > 0 {
		p := &path.Data{}
		for _, c := range cc {
			pts := circleCurves(c)
			p = p.MoveTo(pts[0])
			for i := 1; i < len(pts); i += 3 {
				p = p.CubeTo(pts[i], pts[i+1], pts[i+2])
			}
			p = p.Close()
		}
		r.CTM = ctm
		r.Width = circleLine / s
		r.Stroke(p, paint(img, uint8(255*circleGray)))
	}

	if len(polygons) > 0 {
		p := circles.Path(polygons)
		r.Reset(clip)
		r.CTM = ctm
		ink := paint(img, 0)
		switch {
		case style.Outline > 0:
			r.Width = style.Outline / s
			r.Join = graphics.LineJoinRound
			r.Stroke(p, ink)
		case style.EvenOdd:
			r.FillEvenOdd(p, ink)
		default:
			r.FillNonZero(p, ink)
		}
	}

	return img
}

// paint returns an emit function which blends the given gray value into
// img, weighted by coverage.
func paint(img *image.Gray, gray uint8) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			old := float32(row[i])
			row[i] = uint8(old + (float32(gray)-old)*c + 0.5)
		}
	}
}

// WritePNG saves img as a PNG file.
func WritePNG(fileName string, img image.Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", fileName, err)
	}
	return nil
}
