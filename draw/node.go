// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw is a retained-mode canvas for plot output.
//
// A drawing is a tree of Nodes. Each Node has primitives, overlay
// children that share its box, and optionally a grid of children laid
// out with go-gg's layout package. Primitives are positioned in the
// node's Units, so geometry can be drawn in data coordinates and
// mapped to pixels only when the tree is laid out and painted.
package draw

import (
	"github.com/aclements/go-gg/gg/layout"
)

// Units is a coordinate system over a node's box. Data coordinate
// X0 maps to the left edge and X0+W to the right edge; Y0 maps to the
// top edge and Y0+H to the bottom edge. H is negative for the usual
// upward y axis.
type Units struct {
	X0, Y0, W, H float64
}

// Margins is space in pixels around a node's content.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns Margins of m on every side.
func Uniform(m float64) Margins {
	return Margins{m, m, m, m}
}

// Node is an element of a drawing.
type Node struct {
	// Tag identifies the node's role, such as "panel" or
	// "guide:xticks". It is not drawn.
	Tag string

	// Units, if non-nil, is the coordinate system for Prims and
	// for overlays that do not set their own Units. If nil, an
	// overlay inherits its parent's Units and a grid child uses
	// pixels relative to its own box.
	Units *Units

	// Prims are drawn in order, before children.
	Prims []Prim

	// Overlays are drawn on top of Prims, in order, and occupy
	// the same box as this node.
	Overlays []*Node

	// Clip clips Prims and Overlays to the node's box.
	Clip bool

	// W and H are the node's preferred size in pixels, not
	// including Margins. FlexW and FlexH indicate that the node
	// can use more space than that.
	W, H         float64
	FlexW, FlexH bool

	// Margins is added around the node's content.
	Margins Margins

	grid  *layout.Grid
	cells []*Node

	x, y, w, h float64
}

// NewNode returns an empty, flexible node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag, FlexW: true, FlexH: true}
}

// Add appends prims to n.
func (n *Node) Add(prims ...Prim) *Node {
	n.Prims = append(n.Prims, prims...)
	return n
}

// Overlay appends overlay children to n.
func (n *Node) Overlay(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Overlays = append(n.Overlays, c)
		}
	}
	return n
}

// Place adds child to n's grid at cell (col, row), spanning colSpan
// columns and rowSpan rows.
func (n *Node) Place(child *Node, col, row, colSpan, rowSpan int) {
	if n.grid == nil {
		n.grid = new(layout.Grid)
	}
	n.grid.Add(child, col, row, colSpan, rowSpan)
	n.cells = append(n.cells, child)
}

// Cells returns n's grid children in the order they were placed.
func (n *Node) Cells() []*Node {
	return n.cells
}

// SizeHint implements layout.Element.
func (n *Node) SizeHint() (w, h float64, flexw, flexh bool) {
	w, h, flexw, flexh = n.W, n.H, n.FlexW, n.FlexH
	if n.grid != nil {
		gw, gh, gfw, gfh := n.grid.SizeHint()
		w, h = maxf(w, gw), maxf(h, gh)
		flexw, flexh = flexw || gfw, flexh || gfh
	}
	for _, o := range n.Overlays {
		ow, oh, _, _ := o.SizeHint()
		w, h = maxf(w, ow), maxf(h, oh)
	}
	m := n.Margins
	return w + m.Left + m.Right, h + m.Top + m.Bottom, flexw, flexh
}

// SetLayout implements layout.Element. x and y are relative to the
// parent's content origin.
func (n *Node) SetLayout(x, y, w, h float64) {
	n.x, n.y, n.w, n.h = x, y, w, h
	iw, ih := n.inner()
	if n.grid != nil {
		n.grid.SetLayout(0, 0, iw, ih)
	}
	for _, o := range n.Overlays {
		o.SetLayout(0, 0, iw, ih)
	}
}

// Layout implements layout.Element.
func (n *Node) Layout() (x, y, w, h float64) {
	return n.x, n.y, n.w, n.h
}

// inner returns the size of n's content box.
func (n *Node) inner() (w, h float64) {
	m := n.Margins
	return maxf(0, n.w-m.Left-m.Right), maxf(0, n.h-m.Top-m.Bottom)
}

// Walk calls fn for n and every descendant in drawing order. If fn
// returns false, Walk does not descend into that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, o := range n.Overlays {
		o.Walk(fn)
	}
	for _, c := range n.cells {
		c.Walk(fn)
	}
}

// Find returns all nodes in the tree rooted at n with the given tag.
func (n *Node) Find(tag string) []*Node {
	var res []*Node
	n.Walk(func(m *Node) bool {
		if m.Tag == tag {
			res = append(res, m)
		}
		return true
	})
	return res
}

// Texts returns the strings of every Text primitive in the tree
// rooted at n.
func (n *Node) Texts() []string {
	var res []string
	n.Walk(func(m *Node) bool {
		for _, p := range m.Prims {
			if t, ok := p.(*Text); ok {
				res = append(res, t.S)
			}
		}
		return true
	})
	return res
}

// Pad returns a node that surrounds n with margins m.
func Pad(n *Node, m Margins) *Node {
	p := &Node{Tag: "pad", Margins: m}
	p.Place(n, 0, 0, 1, 1)
	return p
}

// HStack returns a node that lays out nodes left to right.
func HStack(nodes ...*Node) *Node {
	s := &Node{Tag: "hstack"}
	for i, n := range nodes {
		s.Place(n, i, 0, 1, 1)
	}
	return s
}

// VStack returns a node that lays out nodes top to bottom.
func VStack(nodes ...*Node) *Node {
	s := &Node{Tag: "vstack"}
	for i, n := range nodes {
		s.Place(n, 0, i, 1, 1)
	}
	return s
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
