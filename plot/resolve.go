// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/guides"
	"github.com/aclements/ggdecl/scales"
	"github.com/aclements/ggdecl/stats"
)

// Resolution is the outcome of choosing scales, plot-wide statistics,
// and guides for a plot.
type Resolution struct {
	// Used is the set of aesthetics some layer's geometry or
	// statistic uses.
	Used map[element.Aes]bool

	// Scales maps each scaled aesthetic to its one scale.
	Scales map[element.Aes]element.Scale

	// Unscaled lists used aesthetics that have no scale. Their
	// mapped values are passed through unchanged.
	Unscaled []element.Aes

	// PlotStats are the plot-wide statistics, in order.
	PlotStats []element.Statistic

	// Guides has at most one guide of each GuideKind, in the order
	// each kind was first added.
	Guides []element.Guide

	// Mapped maps each aesthetic mapped by the plot or any layer to
	// its first mapping value.
	Mapped Mapping
}

// DistinctScales returns the distinct scales of r in a deterministic
// order.
func (r *Resolution) DistinctScales() []element.Scale {
	var out []element.Scale
	seen := map[element.Scale]bool{}
	for _, a := range r.scaledAes() {
		s := r.Scales[a]
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// AesFor returns the aesthetics resolved to scale s, sorted.
func (r *Resolution) AesFor(s element.Scale) []element.Aes {
	var as []element.Aes
	for _, a := range r.scaledAes() {
		if r.Scales[a] == s {
			as = append(as, a)
		}
	}
	return as
}

func (r *Resolution) scaledAes() []element.Aes {
	as := make([]element.Aes, 0, len(r.Scales))
	for a := range r.Scales {
		as = append(as, a)
	}
	return element.SortAes(as)
}

// Guide returns the guide of the given kind, or nil.
func (r *Resolution) Guide(kind string) element.Guide {
	for _, g := range r.Guides {
		if g.GuideKind() == kind {
			return g
		}
	}
	return nil
}

// setGuide adds g, replacing any guide of the same kind in place.
func (r *Resolution) setGuide(g element.Guide) {
	for i, old := range r.Guides {
		if old.GuideKind() == g.GuideKind() {
			r.Guides[i] = g
			return
		}
	}
	r.Guides = append(r.Guides, g)
}

// Resolve chooses a scale for each aesthetic, the plot-wide
// statistics, and the guides of p. Resolve warns about aesthetics p
// maps but no layer uses.
func (p *Plot) Resolve() *Resolution {
	r := &Resolution{
		Used:   map[element.Aes]bool{},
		Scales: map[element.Aes]element.Scale{},
		Mapped: Mapping{},
	}

	for _, l := range p.layers {
		for _, a := range l.Aesthetics() {
			r.Used[a] = true
		}
	}
	for _, a := range p.mapping.Aes() {
		if !r.Used[a] {
			Warning.Printf("aesthetic %s is mapped to %s but no layer uses it", a, p.mapping[a])
		}
	}
	for _, m := range append([]Mapping{p.mapping}, p.layerMappings()...) {
		for _, a := range m.Aes() {
			if _, ok := r.Mapped[a]; !ok {
				r.Mapped[a] = m[a]
			}
		}
	}

	// Explicit scales. Later scales take over shared aesthetics.
	for _, s := range p.scales {
		for _, a := range s.Aesthetics() {
			r.Scales[a] = s
		}
	}
	unscaled := map[element.Aes]bool{}
	for a := range r.Used {
		if r.Scales[a] == nil {
			unscaled[a] = true
		}
	}
	// assign gives s every aesthetic in its set except those in keep.
	assign := func(s element.Scale, keep map[element.Aes]bool) {
		for _, a := range s.Aesthetics() {
			if keep[a] {
				continue
			}
			r.Scales[a] = s
			delete(unscaled, a)
		}
	}

	// Statistic defaults, in the order the statistics run.
	r.PlotStats = p.resolvePlotStats()
	var statOrder []element.Statistic
	for _, l := range p.layers {
		statOrder = append(statOrder, l.EffectiveStat())
	}
	statOrder = append(statOrder, r.PlotStats...)
	// A triggered default takes its whole set, but the first
	// statistic to claim an aesthetic keeps it.
	claimed := map[element.Aes]bool{}
	for _, st := range statOrder {
		for _, s := range st.DefaultScales() {
			if intersects(s.Aesthetics(), unscaled) {
				assign(s, claimed)
				for _, a := range s.Aesthetics() {
					claimed[a] = true
				}
			}
		}
	}

	// Classify mapped aesthetics by their values.
	for _, a := range sortedSet(unscaled) {
		if !unscaled[a] {
			continue
		}
		v := p.column(a)
		if v == nil {
			continue
		}
		var s element.Scale
		if dataset.Classify(v) == dataset.Continuous {
			s = scales.DefaultContinuous(a)
		} else {
			s = scales.DefaultDiscrete(a, p.Theme)
		}
		if s != nil {
			assign(s, nil)
		}
	}

	// Unmapped aesthetics fall back to the discrete defaults.
	for _, a := range sortedSet(unscaled) {
		if !unscaled[a] {
			continue
		}
		if _, mapped := r.Mapped[a]; mapped {
			continue
		}
		// Only the remaining unmapped aesthetics take the fallback.
		if s := scales.DefaultDiscrete(a, p.Theme); s != nil {
			keep := map[element.Aes]bool{}
			for _, b := range s.Aesthetics() {
				if !unscaled[b] {
					keep[b] = true
				}
			}
			assign(s, keep)
		}
	}
	r.Unscaled = sortedSet(unscaled)

	// Guides. User guides win over defaults.
	for _, g := range p.guides {
		r.setGuide(g)
	}
	for _, g := range []element.Guide{&guides.Background{}, &guides.XTicks{}, &guides.YTicks{}} {
		if r.Guide(g.GuideKind()) == nil {
			r.Guides = append(r.Guides, g)
		}
	}
	if r.Guide(guides.XLabelKind) == nil {
		if text, ok := r.axisTitle(element.XFamily); ok {
			r.Guides = append(r.Guides, &guides.XLabel{Text: text})
		}
	}
	if r.Guide(guides.YLabelKind) == nil {
		if text, ok := r.axisTitle(element.YFamily); ok {
			r.Guides = append(r.Guides, &guides.YLabel{Text: text})
		}
	}
	return r
}

// axisTitle returns the source text of the first aesthetic of fam
// that has a mapping, provided some aesthetic of fam is both mapped
// and used.
func (r *Resolution) axisTitle(fam []element.Aes) (string, bool) {
	active := false
	for _, a := range fam {
		if _, ok := r.Mapped[a]; ok && r.Used[a] {
			active = true
		}
	}
	if !active {
		return "", false
	}
	for _, a := range fam {
		if v, ok := r.Mapped[a]; ok {
			return v.String(), true
		}
	}
	return "", false
}

// resolvePlotStats returns the user's plot-wide statistics followed
// by default tick statistics for axes the user has not given one.
func (p *Plot) resolvePlotStats() []element.Statistic {
	out := append([]element.Statistic(nil), p.plotStats...)
	has := map[string]bool{}
	for _, s := range p.plotStats {
		if t, ok := s.(*stats.Ticks); ok {
			has[t.Axis] = true
		}
	}
	if !has["x"] {
		out = append(out, stats.XTicks())
	}
	if !has["y"] {
		out = append(out, stats.YTicks())
	}
	return out
}

func (p *Plot) layerMappings() []Mapping {
	ms := make([]Mapping, len(p.layers))
	for i, l := range p.layers {
		ms[i] = l.mapping
	}
	return ms
}

// column returns the realized values of aesthetic a from the plot's
// data or, failing that, the first layer that maps it.
func (p *Plot) column(a element.Aes) table.Slice {
	if v := p.data.Get(a); v != nil {
		return v
	}
	for _, l := range p.layers {
		if v := l.data.Get(a); v != nil {
			return v
		}
	}
	return nil
}

func intersects(as []element.Aes, set map[element.Aes]bool) bool {
	for _, a := range as {
		if set[a] {
			return true
		}
	}
	return false
}

func sortedSet(set map[element.Aes]bool) []element.Aes {
	as := make([]element.Aes, 0, len(set))
	for a := range set {
		as = append(as, a)
	}
	return element.SortAes(as)
}
