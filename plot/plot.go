// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot implements declarative grammar-of-graphics plots.
//
// A Plot is a dataset, a mapping from aesthetics to the dataset's
// columns, and a set of elements: scales, statistics, a coordinate
// system, geometries (in layers), and guides. Render resolves a
// scale for every aesthetic and a default set of guides, then runs
// the elements in order to produce a drawing:
//
//  1. Scales map each layer's data to aesthetic values.
//  2. Statistics transform each layer's aesthetics, then plot-wide
//     statistics (including axis ticks) run over all layers at once.
//  3. The coordinate system builds the panel.
//  4. Geometries draw each layer into the panel.
//  5. Guides draw axes, labels, and keys, and the result is laid out.
//
// Plots can be serialized to a JSON-compatible document that refers
// to datasets by identifier rather than copying them. See Serialize.
package plot

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aclements/ggdecl/coords"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/geoms"
	"github.com/aclements/ggdecl/stats"
)

// Warning receives conditions that do not prevent plotting, such as
// aesthetics that are mapped but never used.
var Warning = log.New(os.Stderr, "[ggdecl] ", log.Lshortfile)

// ErrNoLayers is returned when rendering a plot with no layers.
var ErrNoLayers = errors.New("plot has no layers")

// An Item can be added to a Plot: any element, or a *LayerBuilder.
type Item interface {
	Kind() element.Kind
}

// Plot is a declarative plot. Plot is not safe for concurrent
// mutation.
type Plot struct {
	session *Session
	ids     []string

	ds      *dataset.Dataset
	mapping Mapping
	data    *element.Data

	layers    []*Layer
	scales    []element.Scale
	plotStats []element.Statistic
	coord     element.Coordinate
	guides    []element.Guide

	// Theme controls the appearance of the rendered plot.
	Theme *element.Theme
}

// New returns a new plot of ds with mapping m in DefaultSession.
func New(ds *dataset.Dataset, m Mapping) (*Plot, error) {
	return DefaultSession.NewPlot(ds, m)
}

// NewPlot returns a new plot of ds with mapping m. ds may be nil if m
// is empty. The mapping is resolved immediately.
func (s *Session) NewPlot(ds *dataset.Dataset, m Mapping) (*Plot, error) {
	if m == nil {
		m = Mapping{}
	}
	data, err := EvalMapping(m, ds)
	if err != nil {
		return nil, err
	}
	p := &Plot{
		session: s,
		ds:      ds,
		mapping: m,
		data:    data,
		coord:   &coords.Cartesian{},
		Theme:   element.DefaultTheme(),
	}
	p.register(ds)
	return p, nil
}

func (p *Plot) register(ds *dataset.Dataset) {
	if ds != nil {
		p.ids = append(p.ids, p.session.Register(ds))
	}
}

// Close releases p's dataset registrations. p must not be used after
// Close.
func (p *Plot) Close() {
	for _, id := range p.ids {
		p.session.Release(id)
	}
	p.ids = nil
}

// Session returns the session p belongs to.
func (p *Plot) Session() *Session { return p.session }

// Dataset returns p's dataset.
func (p *Plot) Dataset() *dataset.Dataset { return p.ds }

// Mapping returns p's mapping.
func (p *Plot) Mapping() Mapping { return p.mapping }

// Data returns p's resolved data.
func (p *Plot) Data() *element.Data { return p.data }

// Layers returns p's layers in drawing order.
func (p *Plot) Layers() []*Layer { return p.layers }

// Scales returns the scales added to p.
func (p *Plot) Scales() []element.Scale { return p.scales }

// PlotStats returns the plot-wide statistics added with AddPlotStat.
func (p *Plot) PlotStats() []element.Statistic { return p.plotStats }

// Coord returns p's coordinate system.
func (p *Plot) Coord() element.Coordinate { return p.coord }

// Guides returns the guides added to p.
func (p *Plot) Guides() []element.Guide { return p.guides }

// Add adds items to p in order. A Geometry is wrapped in a new layer.
// A Statistic becomes the statistic of the last layer, creating an
// empty layer if there are none. A Coordinate replaces p's
// coordinate system. Scales and Guides are appended.
func (p *Plot) Add(items ...Item) error {
	for _, it := range items {
		if err := p.add(it); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plot) add(it Item) error {
	switch it.Kind() {
	case element.GeometryKind:
		return p.addLayer(NewLayer(it.(element.Geometry)))
	case element.ScaleKind:
		p.scales = append(p.scales, it.(element.Scale))
	case element.StatisticKind:
		if len(p.layers) == 0 {
			if err := p.addLayer(NewLayer(geoms.Nil{})); err != nil {
				return err
			}
		}
		p.layers[len(p.layers)-1].stat = it.(element.Statistic)
	case element.CoordinateKind:
		p.coord = it.(element.Coordinate)
	case element.GuideKind:
		p.guides = append(p.guides, it.(element.Guide))
	case element.LayerKind:
		b, ok := it.(*LayerBuilder)
		if !ok {
			return fmt.Errorf("cannot add %T to a plot", it)
		}
		return p.addLayer(b)
	default:
		return fmt.Errorf("cannot add %T (kind %v) to a plot", it, it.Kind())
	}
	return nil
}

// addLayer attaches the layer described by b.
func (p *Plot) addLayer(b *LayerBuilder) error {
	if b.Geom == nil {
		return fmt.Errorf("layer has no geometry")
	}
	l := &Layer{geom: b.Geom, stat: b.Stat}
	if l.stat == nil {
		l.stat = stats.Identity{}
	}
	if b.Dataset == nil && len(b.Mapping) == 0 {
		l.ds, l.mapping, l.data = p.ds, p.mapping, p.data
	} else {
		l.ds, l.mapping = b.Dataset, b.Mapping
		if l.ds == nil {
			l.ds = p.ds
		}
		if len(l.mapping) == 0 {
			l.mapping = p.mapping
		}
		data, err := EvalMapping(l.mapping, l.ds)
		if err != nil {
			return fmt.Errorf("layer %d: %w", len(p.layers), err)
		}
		l.data = data
	}
	p.register(l.ds)
	p.layers = append(p.layers, l)
	return nil
}

// AddPlotStat adds a statistic that runs over the combined aesthetics
// of all layers, before the default axis tick statistics.
//
// The x and y tick statistics are appended at render time unless the
// plot already has a Ticks statistic for that axis, in which case the
// default for that axis is omitted so it cannot overwrite the user's
// ticks.
func (p *Plot) AddPlotStat(s element.Statistic) {
	p.plotStats = append(p.plotStats, s)
}
