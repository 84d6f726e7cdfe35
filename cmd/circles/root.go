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
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/scenes"
)

var root = &cobra.Command{
	Use:   "circles",
	Short: "Find the region inside a set of circles.",
	Long: `circles computes the boundary of the region which lies inside all
ordinary circles and outside all inverted circles of a scene.

A scene is either a TOML file given as argument, or one of the built-in
scenes selected with --scene.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		circles.SetLogger(slog.New(h))
	},
}

var verbose bool

func init() {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log details of the computation")
	root.AddCommand(renderCmd, arcsCmd, listCmd)
}

// sceneFlags select a scene and override its parameters.
type sceneFlags struct {
	name    string
	width   int
	height  int
	epsilon float64
	points  int
}

func (f *sceneFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.name, "scene", "s", "", "use the built-in scene `category_name`")
	fs.IntVar(&f.width, "width", 0, "output width in pixels or points")
	fs.IntVar(&f.height, "height", 0, "output height in pixels or points")
	fs.Float64Var(&f.epsilon, "epsilon", 0, "tolerance for coincident points and angles")
	fs.IntVar(&f.points, "points", 0, "number of polygon vertices per full circle")
}

var errNoScene = errors.New("no scene given")

// load returns the scene selected by the flags and the command line
// arguments, with the overrides applied.
func (f *sceneFlags) load(args []string) (*scenes.Scene, error) {
	var s *scenes.Scene
	switch {
	case f.name != "" && len(args) > 0:
		return nil, errors.New("both --scene and a scene file given")
	case f.name != "":
		found, ok := scenes.Find(f.name)
		if !ok {
			return nil, fmt.Errorf("unknown scene %q", f.name)
		}
		s = &found
	case len(args) == 1:
		var err error
		s, err = scenes.Load(args[0])
		if err != nil {
			return nil, err
		}
	default:
		return nil, errNoScene
	}

	if f.width > 0 {
		s.Width = f.width
	}
	if f.height > 0 {
		s.Height = f.height
	}
	if f.epsilon > 0 {
		s.Epsilon = f.epsilon
	}
	if f.points > 0 {
		s.PolygonPoints = f.points
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	circles.Logger().Debug("scene", "name", s.Name, "circles", len(s.Circles))
	return s, nil
}
