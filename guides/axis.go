// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
)

// tickLen is the length of axis tick marks in pixels.
const tickLen = 4

// XTicks draws vertical grid lines in the panel and tick marks and
// labels below it, from the xgrid, xtick, and xtick_label aesthetics.
type XTicks struct{}

func (g *XTicks) Kind() element.Kind { return element.GuideKind }
func (g *XTicks) GuideKind() string  { return XTicksKind }
func (g *XTicks) Doc() element.Doc   { return element.Doc{"type": "guide.xticks"} }

func (g *XTicks) Aesthetics() []element.Aes {
	return []element.Aes{element.XTick, element.XTickLabel, element.XGrid}
}

func (g *XTicks) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	a, ok := first(layers, element.XTick)
	if !ok {
		return nil, nil
	}
	grid := draw.NewNode("guide:xgrid")
	for _, x := range a.Floats(element.XGrid) {
		grid.Add(&draw.Path{
			Xs: []float64{x, x}, Ys: []float64{panel.Y0, panel.Y0 + panel.H},
			Style: draw.Style{Stroke: th.Color(th.GridColor), StrokeWidth: th.GridWidth},
		})
	}

	_, lead := draw.MeasureText("0", th.FontSize)
	axis := draw.NewNode("guide:xticks")
	axis.Units = &draw.Units{X0: panel.X0, W: panel.W}
	axis.H, axis.FlexH = tickLen+th.GuidePad+lead, false
	labels := a.Strings(element.XTickLabel)
	tickStyle := draw.Style{Stroke: th.Color(th.TickColor), StrokeWidth: 1}
	for i, x := range a.Floats(element.XTick) {
		axis.Add(&draw.Path{Xs: []float64{x, x}, Ys: []float64{0, tickLen}, Style: tickStyle})
		if i < len(labels) {
			axis.Add(&draw.Text{
				X: x, Y: tickLen + th.GuidePad, S: labels[i],
				Anchor: draw.AnchorMiddle, VAlign: "top",
				Style: draw.Style{Fill: th.Color(th.TextColor), FontSize: th.FontSize},
			})
		}
	}
	return []element.Fragment{
		{Node: grid, Place: element.Under},
		{Node: axis, Place: element.Bottom},
	}, nil
}

// YTicks draws horizontal grid lines in the panel and tick marks and
// labels left of it, from the ygrid, ytick, and ytick_label
// aesthetics.
type YTicks struct{}

func (g *YTicks) Kind() element.Kind { return element.GuideKind }
func (g *YTicks) GuideKind() string  { return YTicksKind }
func (g *YTicks) Doc() element.Doc   { return element.Doc{"type": "guide.yticks"} }

func (g *YTicks) Aesthetics() []element.Aes {
	return []element.Aes{element.YTick, element.YTickLabel, element.YGrid}
}

func (g *YTicks) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	a, ok := first(layers, element.YTick)
	if !ok {
		return nil, nil
	}
	grid := draw.NewNode("guide:ygrid")
	for _, y := range a.Floats(element.YGrid) {
		grid.Add(&draw.Path{
			Xs: []float64{panel.X0, panel.X0 + panel.W}, Ys: []float64{y, y},
			Style: draw.Style{Stroke: th.Color(th.GridColor), StrokeWidth: th.GridWidth},
		})
	}

	labels := a.Strings(element.YTickLabel)
	var width float64
	for _, l := range labels {
		if w, _ := draw.MeasureText(l, th.FontSize); w > width {
			width = w
		}
	}
	w := width + th.GuidePad + tickLen
	axis := draw.NewNode("guide:yticks")
	axis.Units = &draw.Units{Y0: panel.Y0, H: panel.H}
	axis.W, axis.FlexW = w, false
	tickStyle := draw.Style{Stroke: th.Color(th.TickColor), StrokeWidth: 1}
	for i, y := range a.Floats(element.YTick) {
		axis.Add(&draw.Path{Xs: []float64{w - tickLen, w}, Ys: []float64{y, y}, Style: tickStyle})
		if i < len(labels) {
			axis.Add(&draw.Text{
				X: width, Y: y, S: labels[i],
				Anchor: draw.AnchorEnd, VAlign: "middle",
				Style: draw.Style{Fill: th.Color(th.TextColor), FontSize: th.FontSize},
			})
		}
	}
	return []element.Fragment{
		{Node: grid, Place: element.Under},
		{Node: axis, Place: element.Left},
	}, nil
}

// XLabel draws the x axis title below the x axis. If Text is empty,
// the title of the first mapped x aesthetic is used.
type XLabel struct {
	Text string
}

func (g *XLabel) Kind() element.Kind        { return element.GuideKind }
func (g *XLabel) GuideKind() string         { return XLabelKind }
func (g *XLabel) Aesthetics() []element.Aes { return nil }
func (g *XLabel) Doc() element.Doc          { return element.Doc{"type": "guide.xlabel", "text": g.Text} }

func (g *XLabel) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	text := g.Text
	if text == "" {
		text = familyTitle(layers, element.XFamily)
	}
	if text == "" {
		return nil, nil
	}
	_, lead := draw.MeasureText(text, th.FontSize)
	n := draw.NewNode("guide:xlabel")
	n.Units = &draw.Units{W: 1}
	n.H, n.FlexH = lead+th.GuidePad, false
	n.Add(&draw.Text{
		X: 0.5, Y: th.GuidePad, S: text, Anchor: draw.AnchorMiddle, VAlign: "top",
		Style: draw.Style{Fill: th.Color(th.TextColor), FontSize: th.FontSize},
	})
	return []element.Fragment{{Node: n, Place: element.Bottom, Order: 10}}, nil
}

// YLabel draws the y axis title, rotated, left of the y axis. If Text
// is empty, the title of the first mapped y aesthetic is used.
type YLabel struct {
	Text string
}

func (g *YLabel) Kind() element.Kind        { return element.GuideKind }
func (g *YLabel) GuideKind() string         { return YLabelKind }
func (g *YLabel) Aesthetics() []element.Aes { return nil }
func (g *YLabel) Doc() element.Doc          { return element.Doc{"type": "guide.ylabel", "text": g.Text} }

func (g *YLabel) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	text := g.Text
	if text == "" {
		text = familyTitle(layers, element.YFamily)
	}
	if text == "" {
		return nil, nil
	}
	_, lead := draw.MeasureText(text, th.FontSize)
	n := draw.NewNode("guide:ylabel")
	n.Units = &draw.Units{H: 1}
	n.W, n.FlexW = lead+th.GuidePad, false
	n.Add(&draw.Text{
		X: lead / 2, Y: 0.5, S: text, Anchor: draw.AnchorMiddle, VAlign: "middle", Rotate: -90,
		Style: draw.Style{Fill: th.Color(th.TextColor), FontSize: th.FontSize},
	})
	return []element.Fragment{{Node: n, Place: element.Left, Order: 10}}, nil
}

// familyTitle returns the first non-empty title among fam in layers.
func familyTitle(layers []*element.Aesthetics, fam []element.Aes) string {
	for _, ae := range fam {
		for _, a := range layers {
			if t := a.Title(ae); t != "" {
				return t
			}
		}
	}
	return ""
}
