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

package scenes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/circles"
)

// Default output size for scene files which do not specify one.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// sceneFile is the TOML representation of a Scene:
//
//	name = "lens"
//	width = 256
//	height = 256
//
//	[[circle]]
//	x = 0.0
//	y = 0.0
//	r = 5.0
//
//	[[circle]]
//	x = 6.0
//	y = 0.0
//	r = 5.0
//	inverted = false
type sceneFile struct {
	Name          string       `toml:"name"`
	Width         int          `toml:"width,omitempty"`
	Height        int          `toml:"height,omitempty"`
	Epsilon       float64      `toml:"epsilon,omitempty"`
	PolygonPoints int          `toml:"polygon_points,omitempty"`
	Circles       []circleFile `toml:"circle"`
}

type circleFile struct {
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	R        float64 `toml:"r"`
	Inverted bool    `toml:"inverted,omitempty"`
}

// Decode reads a scene in TOML format from r.
// Missing sizes are set to DefaultWidth and DefaultHeight.  Unknown keys
// and invalid values are reported as errors.
func Decode(r io.Reader) (*Scene, error) {
	var f sceneFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	s := &Scene{
		Name:          f.Name,
		Width:         f.Width,
		Height:        f.Height,
		Epsilon:       f.Epsilon,
		PolygonPoints: f.PolygonPoints,
		Circles:       make([]circles.Circle, len(f.Circles)),
	}
	for i, c := range f.Circles {
		s.Circles[i] = circles.Circle{
			Center:   vec.Vec2{X: c.X, Y: c.Y},
			Radius:   c.R,
			Inverted: c.Inverted,
		}
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a scene file.  If the file does not set a name, the base
// name of the file is used.
func Load(fileName string) (*Scene, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	s, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}
	return s, nil
}

// Encode writes s to w in TOML format.
func (s *Scene) Encode(w io.Writer) error {
	f := sceneFile{
		Name:          s.Name,
		Width:         s.Width,
		Height:        s.Height,
		Epsilon:       s.Epsilon,
		PolygonPoints: s.PolygonPoints,
		Circles:       make([]circleFile, len(s.Circles)),
	}
	for i, c := range s.Circles {
		f.Circles[i] = circleFile{
			X:        c.Center.X,
			Y:        c.Center.Y,
			R:        c.Radius,
			Inverted: c.Inverted,
		}
	}
	return toml.NewEncoder(w).Encode(f)
}
