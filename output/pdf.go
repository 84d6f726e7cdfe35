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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/circles"
)

// WritePDF writes a single-page PDF file showing the polygons, which must
// be given in scene coordinates.  The transformation ctm maps scene
// coordinates to device coordinates, see [Fit].  If style is nil, the
// region is filled using the nonzero rule.
func WritePDF(fileName string, page Page, ctm matrix.Matrix, polygons [][]vec.Vec2, cc []circles.Circle, style *Style) error {
	if style == nil {
		style = &Style{}
	}

	paper := &pdf.Rectangle{
		URx: float64(page.Width),
		URy: float64(page.Height),
	}
	w, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}

	// PDF origin is bottom-left, device coordinates start top-left.
	w.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(page.Height)})
	w.Transform(ctm)
	s := scale(ctm)

	if style.Circles && len(cc) > 0 {
		w.SetStrokeColor(color.DeviceGray(circleGray))
		w.SetLineWidth(circleLine / s)
		for _, c := range cc {
			pts := circleCurves(c)
			w.MoveTo(pts[0].X, pts[0].Y)
			for i := 1; i < len(pts); i += 3 {
				w.CurveTo(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, pts[i+2].X, pts[i+2].Y)
			}
			w.ClosePath()
		}
		w.Stroke()
	}

	if len(polygons) > 0 {
		w.SetFillColor(color.DeviceGray(0))
		w.SetStrokeColor(color.DeviceGray(0))
		if style.Outline > 0 {
			w.SetLineWidth(style.Outline / s)
			w.SetLineJoin(graphics.LineJoinRound)
		}

		for cmd, pts := range circles.Path(polygons).Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				w.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				w.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				w.ClosePath()
			}
		}

		switch {
		case style.Outline > 0:
			w.Stroke()
		case style.EvenOdd:
			w.FillEvenOdd()
		default:
			w.Fill()
		}
	}

	return w.Close()
}
