// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"image/color"
	"strconv"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/element"
)

// groups partitions the rows of an Aesthetics. Rows are grouped by
// the group aesthetic if present and otherwise by color.
type groups struct {
	// keys[g] is the first row of group g.
	keys []int
	// index[i] is the group of row i.
	index []int

	group []int
	color []color.Color
}

func groupsOf(a *element.Aesthetics) *groups {
	gs := &groups{group: a.Ints(element.Group), color: a.Colors(element.Color)}
	n := len(a.Floats(element.X))
	gs.index = make([]int, n)
	seen := map[string]int{}
	for i := 0; i < n; i++ {
		var k string
		switch {
		case gs.group != nil && i < len(gs.group):
			k = "g" + strconv.Itoa(gs.group[i])
		case gs.color != nil && i < len(gs.color):
			k = draw.Hex(gs.color[i])
		}
		g, ok := seen[k]
		if !ok {
			g = len(gs.keys)
			seen[k] = g
			gs.keys = append(gs.keys, i)
		}
		gs.index[i] = g
	}
	return gs
}

// restore sets the group and color aesthetics of a for output rows
// whose groups are og.
func (gs *groups) restore(a *element.Aesthetics, og []int) {
	if gs.group != nil {
		out := make([]int, len(og))
		for i, g := range og {
			out[i] = gs.group[gs.keys[g]]
		}
		a.Set(element.Group, out)
	}
	if gs.color != nil {
		out := make([]color.Color, len(og))
		for i, g := range og {
			out[i] = gs.color[gs.keys[g]]
		}
		a.Set(element.Color, out)
	}
}
