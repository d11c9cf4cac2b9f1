// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coords provides coordinate systems, which establish the
// panel that geometries draw into.
package coords

import (
	"fmt"
	"math"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

func init() {
	element.Register("coord.cartesian", decodeCartesian)
}

// Expand is the fraction of a continuous axis range added as padding
// on each side.
const Expand = 0.05

// Cartesian is the rectangular coordinate system. By default each
// axis spans the data, view limits, and ticks of the combined
// aesthetics, padded by Expand. Non-nil limits replace the computed
// bound exactly.
type Cartesian struct {
	XMin, XMax, YMin, YMax *float64
}

func (c *Cartesian) Kind() element.Kind { return element.CoordinateKind }

func (c *Cartesian) Aesthetics() []element.Aes { return nil }

func (c *Cartesian) Doc() element.Doc {
	d := element.Doc{"type": "coord.cartesian"}
	for k, v := range map[string]*float64{"xmin": c.XMin, "xmax": c.XMax, "ymin": c.YMin, "ymax": c.YMax} {
		if v != nil {
			d[k] = *v
		}
	}
	return d
}

// Range returns the visible range of axis ("x" or "y") given the
// combined aesthetics of a plot.
func (c *Cartesian) Range(plot *element.Aesthetics, axis string) (lo, hi float64) {
	fam, tick, fixLo, fixHi := element.XFamily, element.XTick, c.XMin, c.XMax
	if axis == "y" {
		fam, tick, fixLo, fixHi = element.YFamily, element.YTick, c.YMin, c.YMax
	}

	lo, hi, ok := stats.Range(plot, axis)
	if !ok {
		lo, hi = 0, 1
	}
	for _, t := range plot.Floats(tick) {
		if !math.IsNaN(t) && !math.IsInf(t, 0) {
			lo, hi = math.Min(lo, t), math.Max(hi, t)
		}
	}

	var levels []string
	for _, ae := range fam {
		if levels = plot.Levels(ae); levels != nil {
			break
		}
	}
	if levels != nil {
		lo, hi = math.Min(lo, 1)-0.5, math.Max(hi, float64(len(levels)))+0.5
	} else {
		pad := (hi - lo) * Expand
		lo, hi = lo-pad, hi+pad
	}

	if fixLo != nil {
		lo = *fixLo
	}
	if fixHi != nil {
		hi = *fixHi
	}
	return lo, hi
}

func (c *Cartesian) Render(plot *element.Aesthetics, layers []*element.Aesthetics, th *element.Theme) (*draw.Node, error) {
	xlo, xhi := c.Range(plot, "x")
	ylo, yhi := c.Range(plot, "y")
	if !(xlo < xhi) || !(ylo < yhi) {
		return nil, fmt.Errorf("empty coordinate range x [%g, %g], y [%g, %g]", xlo, xhi, ylo, yhi)
	}
	panel := draw.NewNode("panel")
	panel.Units = &draw.Units{X0: xlo, Y0: yhi, W: xhi - xlo, H: ylo - yhi}
	panel.Clip = true
	return panel, nil
}

func decodeCartesian(d element.Doc) (element.Element, error) {
	c := &Cartesian{
		XMin: d.OptFloat("xmin"),
		XMax: d.OptFloat("xmax"),
		YMin: d.OptFloat("ymin"),
		YMax: d.OptFloat("ymax"),
	}
	if c.XMin != nil && c.XMax != nil && *c.XMin >= *c.XMax {
		return nil, fmt.Errorf("xmin %g >= xmax %g", *c.XMin, *c.XMax)
	}
	if c.YMin != nil && c.YMax != nil && *c.YMin >= *c.YMax {
		return nil, fmt.Errorf("ymin %g >= ymax %g", *c.YMin, *c.YMax)
	}
	return c, nil
}
