// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"math"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

// Point draws a marker at each (x, y). Marker color, radius, and
// shape come from the color, size, and shape aesthetics when present.
type Point struct {
	// Shape is the marker shape used when shape is not mapped.
	Shape int
}

func (g *Point) Kind() element.Kind { return element.GeometryKind }

func (g *Point) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Y, element.Color, element.Size, element.Shape}
}

func (g *Point) Doc() element.Doc {
	d := element.Doc{"type": "geom.point"}
	if g.Shape != draw.ShapeCircle {
		d["shape"] = g.Shape
	}
	return d
}

func (g *Point) DefaultStatistic() element.Statistic { return stats.Identity{} }

func (g *Point) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	n := draw.NewNode("geom:point")
	xs, ys := a.Floats(element.X), a.Floats(element.Y)
	color := colorAt(a, th)
	size := floatAt(a, element.Size, th.PointSize)
	shapes := a.Ints(element.Shape)
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		shape := g.Shape
		if i < len(shapes) && shapes[i] >= 0 {
			shape = shapes[i]
		}
		n.Add(&draw.Marker{
			X: xs[i], Y: ys[i], R: size(i), Shape: shape,
			Style: draw.Style{Fill: color(i)},
		})
	}
	return n, nil
}
