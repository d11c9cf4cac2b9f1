// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"sort"

	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/guides"
)

// Render renders p to a drawing. Render does not modify p, so a plot
// may be rendered any number of times.
func (p *Plot) Render() (*draw.Node, error) {
	if len(p.layers) == 0 {
		return nil, ErrNoLayers
	}
	th := p.Theme
	if th == nil {
		th = element.DefaultTheme()
	}
	r := p.Resolve()

	// Stage I: scales.
	aess := make([]*element.Aesthetics, len(p.layers))
	datas := make([]*element.Data, len(p.layers))
	for i, l := range p.layers {
		aess[i] = element.NewAesthetics()
		datas[i] = l.data
	}
	for _, s := range r.DistinctScales() {
		views := make([]*element.Data, len(datas))
		for i, d := range datas {
			views[i] = restrict(d, r.AesFor(s))
		}
		if err := s.Apply(aess, views); err != nil {
			return nil, fmt.Errorf("applying %s: %w", s.Doc().Type(), err)
		}
	}
	for i, d := range datas {
		for _, a := range r.Unscaled {
			if v := d.Get(a); v != nil {
				aess[i].Set(a, v)
				aess[i].SetTitle(a, d.Title(a))
			}
		}
	}

	// Stage II: layer statistics, then plot-wide statistics over
	// all layers combined.
	for i, l := range p.layers {
		st := l.EffectiveStat()
		if err := st.Apply(aess[i]); err != nil {
			return nil, fmt.Errorf("layer %d: %s: %w", i, st.Doc().Type(), err)
		}
	}
	combined := element.Concat(aess...)
	for _, st := range r.PlotStats {
		if err := st.Apply(combined); err != nil {
			return nil, fmt.Errorf("%s: %w", st.Doc().Type(), err)
		}
	}
	if r.Guide(guides.ColorKeyKind) == nil {
		for _, a := range aess {
			if dataset.Len(a.Get(element.Color)) > 0 {
				r.Guides = append(r.Guides, &guides.ColorKey{})
				break
			}
		}
	}

	// Stage III: coordinates.
	panel, err := p.coord.Render(combined, aess, th)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.coord.Doc().Type(), err)
	}
	for _, a := range aess {
		a.Inherit(combined)
	}

	// Stage IV: geometries.
	for i, l := range p.layers {
		n, err := l.geom.Render(aess[i], th)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %s: %w", i, l.geom.Doc().Type(), err)
		}
		panel.Overlay(n)
	}

	// Stage V: guides and layout.
	var frags []element.Fragment
	for _, g := range r.Guides {
		fs, err := g.Render(aess, *panel.Units, th)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Doc().Type(), err)
		}
		frags = append(frags, fs...)
	}
	return layout(panel, frags, th), nil
}

// restrict returns the subset of d with only the aesthetics as.
func restrict(d *element.Data, as []element.Aes) *element.Data {
	out := element.NewData()
	for _, a := range as {
		if v := d.Get(a); v != nil {
			out.Set(a, v, d.Title(a))
		}
	}
	return out
}

// layout arranges the panel and guide fragments in a grid. Under and
// Over fragments share the panel's box. Fragments on each side are
// placed outward from the panel in increasing Order.
func layout(panel *draw.Node, frags []element.Fragment, th *element.Theme) *draw.Node {
	var under, over []*draw.Node
	sides := map[element.Placement][]element.Fragment{}
	for _, f := range frags {
		switch f.Place {
		case element.Under:
			under = append(under, f.Node)
		case element.Over:
			over = append(over, f.Node)
		default:
			sides[f.Place] = append(sides[f.Place], f)
		}
	}
	for _, fs := range sides {
		sort.SliceStable(fs, func(i, j int) bool { return fs[i].Order < fs[j].Order })
	}
	panel.Overlays = append(under, panel.Overlays...)
	panel.Overlay(over...)

	left, right := sides[element.Left], sides[element.Right]
	top, bottom := sides[element.Top], sides[element.Bottom]
	pc, pr := len(left), len(top)

	root := draw.NewNode("plot")
	root.Margins = draw.Uniform(th.PlotMargin)
	root.Place(panel, pc, pr, 1, 1)
	for i, f := range left {
		root.Place(f.Node, pc-1-i, pr, 1, 1)
	}
	for i, f := range right {
		root.Place(f.Node, pc+1+i, pr, 1, 1)
	}
	for i, f := range top {
		root.Place(f.Node, pc, pr-1-i, 1, 1)
	}
	for i, f := range bottom {
		root.Place(f.Node, pc, pr+1+i, 1, 1)
	}
	return root
}
