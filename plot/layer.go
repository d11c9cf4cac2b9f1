// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/stats"
)

// A LayerBuilder describes a layer that has not been added to a plot.
// Dataset and Mapping are optional. A layer with neither shares the
// plot's. A layer with only one takes the other from the plot.
type LayerBuilder struct {
	Geom    element.Geometry
	Stat    element.Statistic
	Dataset *dataset.Dataset
	Mapping Mapping
}

// NewLayer returns a LayerBuilder for geometry g.
func NewLayer(g element.Geometry) *LayerBuilder {
	return &LayerBuilder{Geom: g}
}

// WithStat sets b's statistic and returns b.
func (b *LayerBuilder) WithStat(s element.Statistic) *LayerBuilder {
	b.Stat = s
	return b
}

// WithData sets b's dataset and returns b.
func (b *LayerBuilder) WithData(ds *dataset.Dataset) *LayerBuilder {
	b.Dataset = ds
	return b
}

// WithMapping sets b's mapping and returns b.
func (b *LayerBuilder) WithMapping(m Mapping) *LayerBuilder {
	b.Mapping = m
	return b
}

// Kind returns element.LayerKind.
func (b *LayerBuilder) Kind() element.Kind { return element.LayerKind }

// A Layer is a geometry, a statistic, and the data they draw, as
// attached to a plot. Layers are created by Plot.Add.
type Layer struct {
	geom    element.Geometry
	stat    element.Statistic
	ds      *dataset.Dataset
	mapping Mapping
	data    *element.Data
}

// Geom returns l's geometry.
func (l *Layer) Geom() element.Geometry { return l.geom }

// Stat returns l's statistic. It is stats.Identity if none was set.
func (l *Layer) Stat() element.Statistic { return l.stat }

// Dataset returns l's effective dataset.
func (l *Layer) Dataset() *dataset.Dataset { return l.ds }

// Mapping returns l's effective mapping.
func (l *Layer) Mapping() Mapping { return l.mapping }

// Data returns l's resolved data. Layers that inherit both dataset
// and mapping from their plot share the plot's Data.
func (l *Layer) Data() *element.Data { return l.data }

// EffectiveStat returns the statistic l runs: its own, or its
// geometry's default if its own is the identity.
func (l *Layer) EffectiveStat() element.Statistic {
	if !stats.IsIdentity(l.stat) {
		return l.stat
	}
	if s := l.geom.DefaultStatistic(); s != nil {
		return s
	}
	return stats.Identity{}
}

// Aesthetics returns the aesthetics l's geometry and effective
// statistic use.
func (l *Layer) Aesthetics() []element.Aes {
	as := append([]element.Aes(nil), l.geom.Aesthetics()...)
	return append(as, l.EffectiveStat().Aesthetics()...)
}
