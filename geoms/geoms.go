// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geoms provides geometry elements, which draw a layer's
// aesthetics as marks in data coordinates.
package geoms

import (
	"image/color"
	"sort"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

func init() {
	element.Register("geom.nil", func(element.Doc) (element.Element, error) { return Nil{}, nil })
	element.Register("geom.point", func(d element.Doc) (element.Element, error) {
		return &Point{Shape: d.Int("shape", draw.ShapeCircle)}, nil
	})
	element.Register("geom.line", func(element.Doc) (element.Element, error) { return &Line{}, nil })
	element.Register("geom.bar", func(d element.Doc) (element.Element, error) {
		w, _ := d.Float("width", 0)
		return &Bar{Width: w}, nil
	})
	element.Register("geom.histogram", func(d element.Doc) (element.Element, error) {
		return &Histogram{Bins: d.Int("bins", 0)}, nil
	})
	element.Register("geom.smooth", func(d element.Doc) (element.Element, error) {
		return &Smooth{Method: d.Str("method", "")}, nil
	})
	element.Register("geom.text", func(element.Doc) (element.Element, error) { return &Text{}, nil })
}

// Nil draws nothing. It is the geometry of layers created to hold a
// statistic.
type Nil struct{}

func (Nil) Kind() element.Kind                  { return element.GeometryKind }
func (Nil) Aesthetics() []element.Aes           { return nil }
func (Nil) Doc() element.Doc                    { return element.Doc{"type": "geom.nil"} }
func (Nil) DefaultStatistic() element.Statistic { return stats.Identity{} }
func (Nil) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	return draw.NewNode("geom:nil"), nil
}

// colorAt returns a function giving the color of row i.
func colorAt(a *element.Aesthetics, th *element.Theme) func(i int) color.Color {
	cs := a.Colors(element.Color)
	def := th.Color(th.DefaultColor)
	return func(i int) color.Color {
		if i < len(cs) && cs[i] != nil {
			return cs[i]
		}
		return def
	}
}

// floatAt returns a function giving the value of ae at row i, or def.
func floatAt(a *element.Aesthetics, ae element.Aes, def float64) func(i int) float64 {
	fs := a.Floats(ae)
	return func(i int) float64 {
		if i < len(fs) {
			return fs[i]
		}
		return def
	}
}

// series splits the n rows of a into series by the group aesthetic,
// or by color if there is no group. Each series lists its rows in
// order of increasing x. Series are ordered by first appearance.
func series(a *element.Aesthetics, n int) [][]int {
	group := a.Ints(element.Group)
	color := colorAt(a, element.DefaultTheme())
	hasColor := a.Has(element.Color)
	var out [][]int
	index := map[interface{}]int{}
	for i := 0; i < n; i++ {
		var key interface{}
		switch {
		case i < len(group):
			key = group[i]
		case hasColor:
			key = draw.Hex(color(i))
		}
		k, ok := index[key]
		if !ok {
			k = len(out)
			index[key] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}
	xs := a.Floats(element.X)
	for _, rows := range out {
		sort.SliceStable(rows, func(i, j int) bool { return xs[rows[i]] < xs[rows[j]] })
	}
	return out
}
