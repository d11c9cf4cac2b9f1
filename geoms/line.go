// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

// Line connects points in order of x, drawing one line per group (or
// per color if group is not mapped).
type Line struct{}

func (g *Line) Kind() element.Kind { return element.GeometryKind }

func (g *Line) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Y, element.Color, element.Group}
}

func (g *Line) Doc() element.Doc { return element.Doc{"type": "geom.line"} }

func (g *Line) DefaultStatistic() element.Statistic { return stats.Identity{} }

func (g *Line) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	return renderLines("geom:line", a, th), nil
}

func renderLines(tag string, a *element.Aesthetics, th *element.Theme) *draw.Node {
	n := draw.NewNode(tag)
	xs, ys := a.Floats(element.X), a.Floats(element.Y)
	rows := len(xs)
	if len(ys) < rows {
		rows = len(ys)
	}
	color := colorAt(a, th)
	for _, s := range series(a, rows) {
		p := &draw.Path{Style: draw.Style{Stroke: color(s[0]), StrokeWidth: th.LineWidth}}
		for _, i := range s {
			p.Xs = append(p.Xs, xs[i])
			p.Ys = append(p.Ys, ys[i])
		}
		n.Add(p)
	}
	return n
}

// Smooth draws a fitted curve through the data. Its default
// statistic is stats.Smooth with Method.
type Smooth struct {
	// Method is the smoothing method, stats.LOESS or
	// stats.LeastSquares. The empty string means LOESS.
	Method string
}

func (g *Smooth) Kind() element.Kind { return element.GeometryKind }

func (g *Smooth) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Y, element.Color, element.Group}
}

func (g *Smooth) Doc() element.Doc {
	d := element.Doc{"type": "geom.smooth"}
	if g.Method != "" {
		d["method"] = g.Method
	}
	return d
}

func (g *Smooth) DefaultStatistic() element.Statistic {
	return &stats.Smooth{Method: g.Method}
}

func (g *Smooth) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	return renderLines("geom:smooth", a, th), nil
}
