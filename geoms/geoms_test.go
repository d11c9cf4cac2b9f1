// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

func render(t *testing.T, g element.Geometry, a *element.Aesthetics) *draw.Node {
	t.Helper()
	n, err := g.Render(a, element.DefaultTheme())
	if err != nil {
		t.Fatalf("%T.Render: %v", g, err)
	}
	return n
}

func TestPoint(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.X, []float64{1, 2, math.NaN()})
	a.Set(element.Y, []float64{3, 4, 5})
	red := color.NRGBA{0xff, 0, 0, 0xff}
	a.Set(element.Color, []color.Color{red, nil, red})
	a.Set(element.Shape, []int{2, 7, 0})
	n := render(t, &Point{}, a)
	if len(n.Prims) != 2 {
		t.Fatalf("got %d prims, want 2", len(n.Prims))
	}
	m0, m1 := n.Prims[0].(*draw.Marker), n.Prims[1].(*draw.Marker)
	if m0.X != 1 || m0.Y != 3 || m0.Style.Fill != red || m0.Shape != 2 {
		t.Errorf("marker 0 = %+v", m0)
	}
	th := element.DefaultTheme()
	if m1.Style.Fill != th.Color(th.DefaultColor) || m1.R != th.PointSize || m1.Shape != 7 {
		t.Errorf("marker 1 = %+v", m1)
	}
}

func TestLineGroups(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.X, []float64{3, 1, 2, 1})
	a.Set(element.Y, []float64{30, 10, 20, 5})
	a.Set(element.Group, []int{0, 0, 0, 1})
	n := render(t, &Line{}, a)
	if len(n.Prims) != 2 {
		t.Fatalf("got %d paths, want 2", len(n.Prims))
	}
	p := n.Prims[0].(*draw.Path)
	if !reflect.DeepEqual(p.Xs, []float64{1, 2, 3}) || !reflect.DeepEqual(p.Ys, []float64{10, 20, 30}) {
		t.Errorf("path 0 = %v, %v", p.Xs, p.Ys)
	}
}

func TestBar(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.X, []float64{1, 2})
	a.Set(element.Y, []float64{5, 7})
	n := render(t, &Bar{Width: 0.5}, a)
	r := n.Prims[1].(*draw.Rect)
	if r.X0 != 1.75 || r.X1 != 2.25 || r.Y0 != 0 || r.Y1 != 7 {
		t.Errorf("bar 1 = %+v", r)
	}

	h := element.NewAesthetics()
	h.Set(element.X, []float64{1})
	h.Set(element.XMin, []float64{0})
	h.Set(element.XMax, []float64{2})
	h.Set(element.Y, []float64{4})
	h.Set(element.YMax, []float64{4})
	h.Set(element.YMin, []float64{0})
	r = render(t, &Histogram{}, h).Prims[0].(*draw.Rect)
	if r.X0 != 0 || r.X1 != 2 || r.Y1 != 4 {
		t.Errorf("histogram bar = %+v", r)
	}
}

func TestText(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.X, []float64{1})
	a.Set(element.Y, []float64{2})
	if _, err := (&Text{}).Render(a, element.DefaultTheme()); err == nil {
		t.Errorf("text without labels rendered")
	}
	a.Set(element.Label, []string{"hi"})
	n := render(t, &Text{}, a)
	if got := n.Texts(); !reflect.DeepEqual(got, []string{"hi"}) {
		t.Errorf("texts = %v", got)
	}
}

func TestDefaultStatistics(t *testing.T) {
	if s, ok := (&Histogram{Bins: 7}).DefaultStatistic().(*stats.Bin); !ok || s.Bins != 7 {
		t.Errorf("histogram statistic = %#v", s)
	}
	if s, ok := (&Smooth{Method: stats.LeastSquares}).DefaultStatistic().(*stats.Smooth); !ok || s.Method != stats.LeastSquares {
		t.Errorf("smooth statistic = %#v", s)
	}
	if !stats.IsIdentity((&Point{}).DefaultStatistic()) {
		t.Errorf("point statistic is not identity")
	}
}

func TestGeomRoundTrip(t *testing.T) {
	for _, g := range []element.Geometry{
		Nil{}, &Point{Shape: draw.ShapeDiamond}, &Line{}, &Bar{Width: 0.3},
		&Histogram{Bins: 12}, &Smooth{Method: "lm"}, &Text{},
	} {
		e, err := element.Decode(g.Doc())
		if err != nil {
			t.Errorf("%T: %v", g, err)
			continue
		}
		if !reflect.DeepEqual(e, g) {
			t.Errorf("%T: decoded %#v, want %#v", g, e, g)
		}
	}
}
