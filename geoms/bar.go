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

// Bar draws a rectangle for each row. Horizontally it spans xmin to
// xmax if present and otherwise Width centered on x. Vertically it
// spans ymin (or 0) to ymax (or y).
type Bar struct {
	// Width is the bar width in x units. If 0, the theme's bar
	// width is used.
	Width float64
}

func (g *Bar) Kind() element.Kind { return element.GeometryKind }

func (g *Bar) Aesthetics() []element.Aes {
	return []element.Aes{
		element.X, element.XMin, element.XMax,
		element.Y, element.YMin, element.YMax, element.Color,
	}
}

func (g *Bar) Doc() element.Doc {
	d := element.Doc{"type": "geom.bar"}
	if g.Width != 0 {
		d["width"] = g.Width
	}
	return d
}

func (g *Bar) DefaultStatistic() element.Statistic { return stats.Identity{} }

func (g *Bar) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	width := g.Width
	if width == 0 {
		width = th.BarWidth
	}
	return renderBars("geom:bar", a, th, width), nil
}

func renderBars(tag string, a *element.Aesthetics, th *element.Theme, width float64) *draw.Node {
	n := draw.NewNode(tag)
	xs := a.Floats(element.X)
	ys := a.Floats(element.YMax)
	if ys == nil {
		ys = a.Floats(element.Y)
	}
	x0 := floatAt(a, element.XMin, math.NaN())
	x1 := floatAt(a, element.XMax, math.NaN())
	y0 := floatAt(a, element.YMin, 0)
	color := colorAt(a, th)
	for i := 0; i < len(xs) && i < len(ys); i++ {
		l, r := x0(i), x1(i)
		if math.IsNaN(l) || math.IsNaN(r) {
			l, r = xs[i]-width/2, xs[i]+width/2
		}
		if math.IsNaN(l) || math.IsNaN(ys[i]) {
			continue
		}
		n.Add(&draw.Rect{
			X0: l, Y0: y0(i), X1: r, Y1: ys[i],
			Style: draw.Style{Fill: color(i), Stroke: th.Color(th.PanelFill), StrokeWidth: 0.5},
		})
	}
	return n
}

// Histogram draws the bars produced by stats.Bin.
type Histogram struct {
	// Bins is passed to the default statistic.
	Bins int
}

func (g *Histogram) Kind() element.Kind { return element.GeometryKind }

func (g *Histogram) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Color}
}

func (g *Histogram) Doc() element.Doc {
	d := element.Doc{"type": "geom.histogram"}
	if g.Bins != 0 {
		d["bins"] = g.Bins
	}
	return d
}

func (g *Histogram) DefaultStatistic() element.Statistic { return &stats.Bin{Bins: g.Bins} }

func (g *Histogram) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	return renderBars("geom:histogram", a, th, 0), nil
}
