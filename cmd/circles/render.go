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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/output"
)

var renderFlags struct {
	scene   sceneFlags
	out     string
	margin  float64
	evenOdd bool
	stroke  float64
	circles bool
}

var renderCmd = &cobra.Command{
	Use:   "render [scene.toml]",
	Short: "Draw the region of a scene.",
	Long: `render computes the region of a scene and draws it into a PDF file or
a grayscale PNG image.  The output format is chosen by the extension of
the --out file name.`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := renderFlags.scene.load(args)
		if err != nil {
			return err
		}

		out := renderFlags.out
		if out == "" {
			out = s.Name + ".pdf"
		}

		polygons := circles.Outline(s.Circles, s.Options())
		page := output.Page{Width: s.Width, Height: s.Height, Margin: renderFlags.margin}
		ctm := output.Fit(s.Circles, page)
		style := &output.Style{
			EvenOdd: renderFlags.evenOdd,
			Outline: renderFlags.stroke,
			Circles: renderFlags.circles,
		}

		switch ext := strings.ToLower(filepath.Ext(out)); ext {
		case ".pdf":
			err = output.WritePDF(out, page, ctm, polygons, s.Circles, style)
		case ".png":
			img := output.RenderGray(page, ctm, polygons, s.Circles, style)
			err = output.WritePNG(out, img)
		default:
			return fmt.Errorf("unsupported output format %q", ext)
		}
		if err != nil {
			return err
		}

		circles.Logger().Info("written", "file", out, "polygons", len(polygons))
		return nil
	},
}

func init() {
	fs := renderCmd.Flags()
	renderFlags.scene.register(fs)
	fs.StringVarP(&renderFlags.out, "out", "o", "", "output file, .pdf or .png (default \"<scene>.pdf\")")
	fs.Float64Var(&renderFlags.margin, "margin", 8, "page margin in pixels or points")
	fs.BoolVar(&renderFlags.evenOdd, "evenodd", false, "fill using the even-odd rule")
	fs.Float64Var(&renderFlags.stroke, "stroke", 0, "outline the region with this line width instead of filling it")
	fs.BoolVar(&renderFlags.circles, "circles", false, "also draw the input circles")
}
