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

// Command genpdf renders all built-in scenes.
// For every scene it writes a PDF file, a PNG image and the scene itself
// in TOML format.  The scenes are evaluated in parallel.
package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/output"
	"seehuhn.de/go/circles/scenes"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var names []string
	var all []scenes.Scene
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, s := range scenes.All[category] {
			names = append(names, category+"_"+s.Name)
			all = append(all, s)
		}
	}

	// OutlineAll applies one set of options to all circle sets, so the
	// scenes are grouped by their options.
	groups := map[circles.Options][]int{}
	for i := range all {
		opt := *all[i].Options()
		groups[opt] = append(groups[opt], i)
	}
	outlines := make([][][]vec.Vec2, len(all))
	for opt, idx := range groups {
		sets := make([][]circles.Circle, len(idx))
		for j, i := range idx {
			sets[j] = all[i].Circles
		}
		res, err := circles.OutlineAll(context.Background(), sets, &opt)
		if err != nil {
			panic(err)
		}
		for j, i := range idx {
			outlines[i] = res[j]
		}
	}

	for i, s := range all {
		name := names[i]
		if err := writeScene(&s, outlines[i], name); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
	}
}

func writeScene(s *scenes.Scene, polygons [][]vec.Vec2, name string) error {
	page := output.Page{Width: s.Width, Height: s.Height, Margin: 8}
	ctm := output.Fit(s.Circles, page)
	style := &output.Style{Circles: true}

	pdfPath := filepath.Join(outDir, name+".pdf")
	if err := output.WritePDF(pdfPath, page, ctm, polygons, s.Circles, style); err != nil {
		return err
	}

	img := output.RenderGray(page, ctm, polygons, s.Circles, style)
	if err := output.WritePNG(filepath.Join(outDir, name+".png"), img); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".toml"))
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
