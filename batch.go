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

package circles

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"
)

// OutlineAll computes [Outline] for several independent sets of circles
// in parallel.  The i-th element of the result belongs to sets[i].
//
// If ctx is cancelled, sets which have not been started are skipped and
// the context error is returned.
func OutlineAll(ctx context.Context, sets [][]Circle, opt *Options) ([][][]vec.Vec2, error) {
	res := make([][][]vec.Vec2, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, set := range sets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i] = Outline(set, opt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
