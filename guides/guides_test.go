// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
)

var panel = draw.Units{X0: 0, Y0: 10, W: 10, H: -10}

func renderGuide(t *testing.T, g element.Guide, layers ...*element.Aesthetics) []element.Fragment {
	t.Helper()
	frags, err := g.Render(layers, panel, element.DefaultTheme())
	if err != nil {
		t.Fatalf("%T.Render: %v", g, err)
	}
	return frags
}

func TestXTicks(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.XTick, []float64{0, 5, 10})
	a.Set(element.XGrid, []float64{0, 5, 10})
	a.Set(element.XTickLabel, []string{"0", "5", "10"})
	frags := renderGuide(t, &XTicks{}, element.NewAesthetics(), a)
	if len(frags) != 2 {
		t.Fatalf("got %d fragments", len(frags))
	}
	if frags[0].Place != element.Under || len(frags[0].Node.Prims) != 3 {
		t.Errorf("grid fragment = %+v", frags[0])
	}
	axis := frags[1]
	if axis.Place != element.Bottom || axis.Node.FlexH || !axis.Node.FlexW {
		t.Errorf("axis fragment = %+v", axis)
	}
	if got := axis.Node.Texts(); !reflect.DeepEqual(got, []string{"0", "5", "10"}) {
		t.Errorf("labels = %v", got)
	}

	if frags := renderGuide(t, &YTicks{}, a); frags != nil {
		t.Errorf("y ticks without ytick = %v", frags)
	}
}

func TestYTicksWidth(t *testing.T) {
	a := element.NewAesthetics()
	a.Set(element.YTick, []float64{1})
	a.Set(element.YTickLabel, []string{"a long label"})
	frags := renderGuide(t, &YTicks{}, a)
	axis := frags[1].Node
	w, _ := draw.MeasureText("a long label", element.DefaultTheme().FontSize)
	if axis.W <= w || axis.FlexW {
		t.Errorf("axis width %v, flex %v; label is %v wide", axis.W, axis.FlexW, w)
	}
}

func TestLabels(t *testing.T) {
	a := element.NewAesthetics()
	a.SetTitle(element.XMin, "start")
	a.SetTitle(element.Y, "price")
	frags := renderGuide(t, &XLabel{}, a)
	if got := frags[0].Node.Texts(); !reflect.DeepEqual(got, []string{"start"}) {
		t.Errorf("xlabel = %v", got)
	}
	frags = renderGuide(t, &YLabel{Text: "override"}, a)
	if got := frags[0].Node.Texts(); !reflect.DeepEqual(got, []string{"override"}) || frags[0].Place != element.Left {
		t.Errorf("ylabel = %v at %v", got, frags[0].Place)
	}
	if frags := renderGuide(t, &Title{}); frags != nil {
		t.Errorf("empty title rendered %v", frags)
	}
}

func TestColorKey(t *testing.T) {
	a := element.NewAesthetics()
	a.SetTitle(element.Color, "kind")
	a.Set(element.ColorKeyColors, []color.Color{color.Black, color.White})
	a.Set(element.ColorKeyLabels, []string{"cat", "dog"})
	frags := renderGuide(t, &ColorKey{}, a)
	if len(frags) != 1 || frags[0].Place != element.Right {
		t.Fatalf("fragments = %+v", frags)
	}
	if got := frags[0].Node.Texts(); !reflect.DeepEqual(got, []string{"kind", "cat", "dog"}) {
		t.Errorf("key texts = %v", got)
	}
}

func TestBackground(t *testing.T) {
	frags := renderGuide(t, &Background{})
	r := frags[0].Node.Prims[0].(*draw.Rect)
	if r.X0 != 0 || r.X1 != 10 || r.Y0 != 10 || r.Y1 != 0 {
		t.Errorf("background = %+v", r)
	}
}

func TestGuideRoundTrip(t *testing.T) {
	for _, g := range []element.Guide{
		&Background{}, &XTicks{}, &YTicks{}, &XLabel{Text: "x"}, &YLabel{},
		&ColorKey{Title: "c"}, &Title{Text: "t"},
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
