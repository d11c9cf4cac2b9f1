// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
)

// ColorKey draws a legend of the color scale right of the panel: one
// swatch per entry of color_key_colors, labeled by color_key_labels.
// If Title is empty, the color aesthetic's title is used.
type ColorKey struct {
	Title string
}

func (g *ColorKey) Kind() element.Kind { return element.GuideKind }
func (g *ColorKey) GuideKind() string  { return ColorKeyKind }

func (g *ColorKey) Aesthetics() []element.Aes {
	return []element.Aes{element.Color, element.ColorKeyColors, element.ColorKeyLabels}
}

func (g *ColorKey) Doc() element.Doc {
	d := element.Doc{"type": "guide.colorkey"}
	if g.Title != "" {
		d["title"] = g.Title
	}
	return d
}

func (g *ColorKey) Render(layers []*element.Aesthetics, panel draw.Units, th *element.Theme) ([]element.Fragment, error) {
	a, ok := first(layers, element.ColorKeyColors)
	if !ok {
		return nil, nil
	}
	colors := a.Colors(element.ColorKeyColors)
	labels := a.Strings(element.ColorKeyLabels)
	title := g.Title
	if title == "" {
		title = familyTitle(layers, []element.Aes{element.Color})
	}

	pad, sw := th.GuidePad, th.KeySwatch
	_, lead := draw.MeasureText(title, th.FontSize)
	width, _ := draw.MeasureText(title, th.FontSize)
	textStyle := draw.Style{Fill: th.Color(th.TextColor), FontSize: th.FontSize}

	n := draw.NewNode("guide:colorkey")
	y := 0.0
	if title != "" {
		n.Add(&draw.Text{X: pad, Y: 0, S: title, VAlign: "top", Style: textStyle})
		y += lead + pad
	}
	for i, c := range colors {
		n.Add(&draw.Rect{X0: pad, Y0: y, X1: pad + sw, Y1: y + sw, Style: draw.Style{Fill: c}})
		if i < len(labels) {
			n.Add(&draw.Text{X: 2*pad + sw, Y: y + sw/2, S: labels[i], VAlign: "middle", Style: textStyle})
			if w, _ := draw.MeasureText(labels[i], th.FontSize); pad+sw+w > width {
				width = pad + sw + w
			}
		}
		y += sw + pad
	}
	// The key shares the panel's row, so only its width is fixed.
	n.W, n.H = width+2*pad, y
	n.FlexW = false
	return []element.Fragment{{Node: n, Place: element.Right}}, nil
}
