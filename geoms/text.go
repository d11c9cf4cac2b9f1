// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"fmt"
	"math"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

// Text draws the label aesthetic centered at each (x, y).
type Text struct{}

func (g *Text) Kind() element.Kind { return element.GeometryKind }

func (g *Text) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Y, element.Label, element.Color, element.Size}
}

func (g *Text) Doc() element.Doc { return element.Doc{"type": "geom.text"} }

func (g *Text) DefaultStatistic() element.Statistic { return stats.Identity{} }

func (g *Text) Render(a *element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	xs, ys := a.Floats(element.X), a.Floats(element.Y)
	labels := a.Strings(element.Label)
	if labels == nil && len(xs) > 0 {
		return nil, fmt.Errorf("text geometry requires the label aesthetic")
	}
	n := draw.NewNode("geom:text")
	color := colorAt(a, th)
	size := floatAt(a, element.Size, th.FontSize)
	for i := 0; i < len(xs) && i < len(ys) && i < len(labels); i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		n.Add(&draw.Text{
			X: xs[i], Y: ys[i], S: labels[i],
			Anchor: draw.AnchorMiddle, VAlign: "middle",
			Style: draw.Style{Fill: color(i), FontSize: size(i)},
		})
	}
	return n, nil
}
