// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element defines the plot element families and the records
// they exchange during rendering.
//
// A plot is assembled from elements of five families: scales map raw
// data to aesthetic values, statistics transform aesthetic values,
// a coordinate system builds the drawing panel, geometries draw
// aesthetic values into the panel, and guides draw axes, labels,
// and keys around it. Each family is an interface that embeds
// Element; Kind reports which family a value belongs to.
package element

import (
	"fmt"

	"github.com/aclements/ggdecl/draw"
)

// Kind is the family of a plot element.
type Kind int

const (
	ScaleKind Kind = iota
	StatisticKind
	CoordinateKind
	GeometryKind
	GuideKind

	// LayerKind is not an element family. It identifies layer
	// builders passed to Plot.Add alongside elements.
	LayerKind
)

var kindNames = [...]string{"scale", "statistic", "coordinate", "geometry", "guide", "layer"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Element is the capability common to every plot element.
type Element interface {
	// Kind returns the element's family.
	Kind() Kind

	// Aesthetics returns the aesthetics the element reads or
	// writes.
	Aesthetics() []Aes

	// Doc returns the element's serialized form. Doc must carry
	// the "type" key under which the element's decoder is
	// registered.
	Doc() Doc
}

// Scale maps the raw values in Data to aesthetic values.
type Scale interface {
	Element

	// Apply sets aesthetic values in aess[i] from datas[i] for
	// every aesthetic the scale covers. len(aess) == len(datas).
	Apply(aess []*Aesthetics, datas []*Data) error
}

// Statistic transforms aesthetic values.
type Statistic interface {
	Element

	// DefaultScales returns scales for aesthetics the statistic
	// produces, to be used when the plot does not say otherwise.
	DefaultScales() []Scale

	// Apply transforms a in place.
	Apply(a *Aesthetics) error
}

// Coordinate builds the panel that geometries draw into.
type Coordinate interface {
	Element

	// Render returns the panel for the plot-wide aesthetics plot
	// and the per-layer aesthetics layers. The panel's Units
	// determine how data coordinates map to the panel box.
	Render(plot *Aesthetics, layers []*Aesthetics, th *Theme) (*draw.Node, error)
}

// Geometry draws one layer's aesthetics.
type Geometry interface {
	Element

	// DefaultStatistic returns the statistic used by layers of
	// this geometry that do not name one.
	DefaultStatistic() Statistic

	// Render draws a in the panel's data coordinates.
	Render(a *Aesthetics, th *Theme) (*draw.Node, error)
}

// Guide draws axes, labels, and keys.
type Guide interface {
	Element

	// GuideKind names the role of this guide. A plot has at most
	// one guide of each GuideKind.
	GuideKind() string

	// Render returns the guide's fragments. layers are the
	// per-layer aesthetics and panel is the panel's coordinate
	// system.
	Render(layers []*Aesthetics, panel draw.Units, th *Theme) ([]Fragment, error)
}

// Placement is where a guide fragment goes relative to the panel.
type Placement int

const (
	// Under and Over fragments are drawn in the panel's box,
	// below and above the geometry respectively.
	Under Placement = iota
	Over
	Left
	Right
	Top
	Bottom
)

// Fragment is one piece of a rendered guide.
type Fragment struct {
	Node  *draw.Node
	Place Placement

	// Order positions Left, Right, Top, and Bottom fragments
	// outward from the panel: lower Order is closer.
	Order int
}
