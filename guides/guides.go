// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guides provides guide elements: the panel background, axes,
// axis labels, the color key, and the title.
package guides

import (
	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
)

func init() {
	element.Register("guide.background", func(element.Doc) (element.Element, error) { return &Background{}, nil })
	element.Register("guide.xticks", func(element.Doc) (element.Element, error) { return &XTicks{}, nil })
	element.Register("guide.yticks", func(element.Doc) (element.Element, error) { return &YTicks{}, nil })
	element.Register("guide.xlabel", func(d element.Doc) (element.Element, error) {
		return &XLabel{Text: d.Str("text", "")}, nil
	})
	element.Register("guide.ylabel", func(d element.Doc) (element.Element, error) {
		return &YLabel{Text: d.Str("text", "")}, nil
	})
	element.Register("guide.colorkey", func(d element.Doc) (element.Element, error) {
		return &ColorKey{Title: d.Str("title", "")}, nil
	})
	element.Register("guide.title", func(d element.Doc) (element.Element, error) {
		return &Title{Text: d.Str("text", "")}, nil
	})
}

// Guide kinds.
const (
	BackgroundKind = "background"
	XTicksKind     = "xticks"
	YTicksKind     = "yticks"
	XLabelKind     = "xlabel"
	YLabelKind     = "ylabel"
	ColorKeyKind   = "colorkey"
	TitleKind      = "title"
)

// Background fills the panel.
type Background struct{}

func (g *Background) Kind() element.Kind        { return element.GuideKind }
func (g *Background) GuideKind() string         { return BackgroundKind }
func (g *Background) Aesthetics() []element.Aes { return nil }
func (g *Background) Doc() element.Doc          { return element.Doc{"type": "guide.background"} }

func (g *Background) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	n := draw.NewNode("guide:background")
	n.Add(&draw.Rect{
		X0: panel.X0, Y0: panel.Y0, X1: panel.X0 + panel.W, Y1: panel.Y0 + panel.H,
		Style: draw.Style{Fill: th.Color(th.PanelFill)},
	})
	return []element.Fragment{{Node: n, Place: element.Under}}, nil
}

// Title draws Text above the plot.
type Title struct {
	Text string
}

func (g *Title) Kind() element.Kind        { return element.GuideKind }
func (g *Title) GuideKind() string         { return TitleKind }
func (g *Title) Aesthetics() []element.Aes { return nil }
func (g *Title) Doc() element.Doc          { return element.Doc{"type": "guide.title", "text": g.Text} }

func (g *Title) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	if g.Text == "" {
		return nil, nil
	}
	_, lead := draw.MeasureText(g.Text, th.TitleFontSize)
	n := draw.NewNode("guide:title")
	n.H, n.FlexH = lead+th.GuidePad, false
	n.Units = &draw.Units{W: 1}
	n.Add(&draw.Text{
		X: 0.5, Y: 0, S: g.Text, Anchor: draw.AnchorMiddle, VAlign: "top",
		Style: draw.Style{Fill: th.Color(th.TextColor), FontSize: th.TitleFontSize},
	})
	return []element.Fragment{{Node: n, Place: element.Top, Order: 20}}, nil
}

// first returns the values of ae from the first layer that has them.
func first(layers []*element.Aesthetics, ae element.Aes) (*element.Aesthetics, bool) {
	for _, a := range layers {
		if a.Has(ae) {
			return a, true
		}
	}
	return nil, false
}
