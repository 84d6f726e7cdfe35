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
	"encoding/json"

	"github.com/spf13/cobra"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/scenes"
)

var arcsFlags struct {
	scene  sceneFlags
	points bool
}

var arcsCmd = &cobra.Command{
	Use:   "arcs [scene.toml]",
	Short: "Print the boundary loops of a scene as JSON.",
	Long: `arcs computes the boundary of the region of a scene and prints it as
JSON: one entry per loop, listing the arcs of the loop in drawing order
and, with --polygons, the vertices of the polygon approximating it.`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := arcsFlags.scene.load(args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(s, arcsFlags.points))
	},
}

func init() {
	fs := arcsCmd.Flags()
	arcsFlags.scene.register(fs)
	fs.BoolVar(&arcsFlags.points, "polygons", false, "include the polygon vertices")
}

type jsonScene struct {
	Name  string     `json:"name"`
	Loops []jsonLoop `json:"loops"`
}

type jsonLoop struct {
	Closed bool        `json:"closed"`
	Arcs   []jsonArc   `json:"arcs"`
	Points [][]float64 `json:"points,omitempty"`
}

type jsonArc struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	R        float64 `json:"r"`
	Inverted bool    `json:"inverted,omitempty"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

func toJSON(s *scenes.Scene, withPoints bool) jsonScene {
	opt := s.Options()
	eps := opt.Epsilon
	if eps <= 0 {
		eps = circles.DefaultEpsilon
	}
	density := opt.PolygonPoints
	if density <= 0 {
		density = circles.DefaultPolygonPoints
	}

	res := jsonScene{Name: s.Name, Loops: []jsonLoop{}}
	for _, loop := range circles.Loops(s.Circles, opt) {
		jl := jsonLoop{Closed: loop.Closed(eps)}
		for _, a := range loop {
			jl.Arcs = append(jl.Arcs, jsonArc{
				X:        a.Circle.Center.X,
				Y:        a.Circle.Center.Y,
				R:        a.Circle.Radius,
				Inverted: a.Circle.Inverted,
				Start:    a.Start,
				End:      a.End,
			})
		}
		if withPoints {
			for _, p := range loop.Points(density) {
				jl.Points = append(jl.Points, []float64{p.X, p.Y})
			}
		}
		res.Loops = append(res.Loops, jl)
	}
	return res
}
