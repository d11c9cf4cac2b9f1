// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/aclements/ggdecl/draw"
)

// HStack renders plots and arranges them left to right.
func HStack(plots ...*Plot) (*draw.Node, error) {
	nodes, err := renderAll(plots)
	if err != nil {
		return nil, err
	}
	return draw.HStack(nodes...), nil
}

// VStack renders plots and arranges them top to bottom.
func VStack(plots ...*Plot) (*draw.Node, error) {
	nodes, err := renderAll(plots)
	if err != nil {
		return nil, err
	}
	return draw.VStack(nodes...), nil
}

func renderAll(plots []*Plot) ([]*draw.Node, error) {
	nodes := make([]*draw.Node, len(plots))
	for i, p := range plots {
		n, err := p.Render()
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		nodes[i] = n
	}
	return nodes, nil
}
