// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestTransform(t *testing.T) {
	tr := transform{&Units{X0: 10, W: 10, Y0: 5, H: -5}, 100, 50}
	for _, test := range []struct {
		x, y, px, py float64
	}{
		{10, 5, 0, 0},
		{20, 0, 100, 50},
		{15, 2.5, 50, 25},
	} {
		if px, py := tr.x(test.x), tr.y(test.y); px != test.px || py != test.py {
			t.Errorf("(%g,%g) -> (%g,%g), want (%g,%g)", test.x, test.y, px, py, test.px, test.py)
		}
	}
	if px := (transform{nil, 100, 50}).x(7); px != 7 {
		t.Errorf("pixel transform x(7) = %g", px)
	}
}

func TestLayoutFixedAndFlex(t *testing.T) {
	// A fixed-width label next to a flexible panel.
	root := NewNode("root")
	label := &Node{Tag: "label", W: 40, FlexH: true}
	panel := NewNode("panel")
	root.Place(label, 0, 0, 1, 1)
	root.Place(panel, 1, 0, 1, 1)
	root.Margins = Uniform(10)
	root.SetLayout(0, 0, 300, 200)

	if x, y, w, h := label.Layout(); x != 0 || y != 0 || w != 40 || h != 180 {
		t.Errorf("label layout = %g,%g,%g,%g", x, y, w, h)
	}
	if x, _, w, h := panel.Layout(); x != 40 || w != 240 || h != 180 {
		t.Errorf("panel layout = x %g w %g h %g", x, w, h)
	}
}

func TestStack(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	s := HStack(a, b)
	s.SetLayout(0, 0, 200, 100)
	if _, _, w, _ := a.Layout(); w != 100 {
		t.Errorf("a width = %g, want 100", w)
	}
	if x, _, _, _ := b.Layout(); x != 100 {
		t.Errorf("b x = %g, want 100", x)
	}

	c, d := NewNode("c"), NewNode("d")
	v := VStack(c, d)
	v.SetLayout(0, 0, 200, 100)
	if _, y, _, h := d.Layout(); y != 50 || h != 50 {
		t.Errorf("d y,h = %g,%g, want 50,50", y, h)
	}
}

func TestOverlaysShareBox(t *testing.T) {
	root := NewNode("root")
	o := NewNode("over")
	root.Overlay(o, nil)
	root.Margins = Margins{Left: 5, Top: 5}
	root.SetLayout(0, 0, 105, 55)
	if x, y, w, h := o.Layout(); x != 0 || y != 0 || w != 100 || h != 50 {
		t.Errorf("overlay layout = %g,%g,%g,%g", x, y, w, h)
	}
	if len(root.Overlays) != 1 {
		t.Errorf("nil overlay was added")
	}
}

func TestFindAndTexts(t *testing.T) {
	root := NewNode("root")
	root.Overlay(NewNode("panel").Add(&Text{S: "a"}))
	inner := NewNode("label").Add(&Text{S: "b"})
	root.Place(inner, 0, 0, 1, 1)
	if n := root.Find("label"); len(n) != 1 || n[0] != inner {
		t.Errorf("Find(label) = %v", n)
	}
	if got := strings.Join(root.Texts(), ","); got != "a,b" {
		t.Errorf("Texts() = %s", got)
	}
}

func TestWriteSVG(t *testing.T) {
	panel := NewNode("panel")
	panel.Units = &Units{X0: 0, W: 10, Y0: 10, H: -10}
	panel.Clip = true
	panel.Add(
		&Rect{X0: 0, Y0: 0, X1: 10, Y1: 10, Style: Style{Fill: color.Gray{0xee}}},
		&Marker{X: 5, Y: 5, R: 3, Style: Style{Fill: color.RGBA{0x4c, 0x72, 0xb0, 0xff}}},
		&Path{Xs: []float64{0, 5, math.NaN(), 10}, Ys: []float64{0, 5, 0, 10}, Style: Style{Stroke: color.Black, StrokeWidth: 2}},
		&Text{X: 5, Y: 10, S: "a<b", Anchor: AnchorMiddle, VAlign: "top"},
	)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, Pad(panel, Uniform(10)), 120, 120, 12); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`width="120"`,
		`clip-path="url(#clip1)"`,
		`<circle cx="50" cy="50" r="3"`,
		`fill:#4c72b0`,
		`M0 100L50 50M100 0`,
		`text-anchor="middle"`,
		`a&lt;b`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCSSPaint(t *testing.T) {
	for _, test := range []struct {
		c    color.Color
		want string
	}{
		{nil, "fill:none"},
		{color.Black, "fill:#000000"},
		{color.RGBA{0xff, 0, 0, 0xff}, "fill:#ff0000"},
		{color.Transparent, "fill:none"},
		{color.NRGBA{0, 0, 0xff, 0x80}, "fill:#0000ff;fill-opacity:0.502"},
	} {
		if got := cssPaint("fill", test.c); got != test.want {
			t.Errorf("cssPaint(%v) = %s, want %s", test.c, got, test.want)
		}
	}
	if got := Hex(color.White); got != "#ffffff" {
		t.Errorf("Hex(white) = %s", got)
	}
}

func TestMeasureText(t *testing.T) {
	w, leading := MeasureText("abcd", 13)
	if w != 28 || leading != 16.25 {
		t.Errorf("MeasureText = %g, %g, want 28, 16.25", w, leading)
	}
}

func TestPolyPathNegativeZero(t *testing.T) {
	nz := math.Copysign(0, -1)
	got := polyPath([]float64{nz, 1, 2}, []float64{1, nz, math.NaN()}, true)
	if want := "M0 1L1 0Z"; got != want {
		t.Errorf("polyPath = %q, want %q", got, want)
	}
}
