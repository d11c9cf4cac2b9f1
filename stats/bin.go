// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/scales"
)

// DefaultBins is the default number of histogram bins.
const DefaultBins = 30

// Bin counts x values into equal-width bins. Its output has one row
// per bin: x is the bin center, xmin and xmax its edges, and y, ymin,
// and ymax span from 0 to the count. If the input has groups (or
// colors), each group is binned separately over the same edges.
type Bin struct {
	// Bins is the number of bins. If 0, DefaultBins is used.
	Bins int
}

func (s *Bin) Kind() element.Kind { return element.StatisticKind }

func (s *Bin) Aesthetics() []element.Aes {
	return []element.Aes{element.X, element.Y, element.XMin, element.XMax, element.YMin, element.YMax}
}

func (s *Bin) DefaultScales() []element.Scale {
	return []element.Scale{scales.ContinuousY()}
}

func (s *Bin) Doc() element.Doc {
	d := element.Doc{"type": "stat.bin"}
	if s.Bins != 0 {
		d["bins"] = s.Bins
	}
	return d
}

func (s *Bin) Apply(a *element.Aesthetics) error {
	xs := a.Floats(element.X)
	if xs == nil {
		if a.Has(element.X) {
			return fmt.Errorf("bin: x values must be numeric")
		}
		return nil
	}
	n := s.Bins
	if n <= 0 {
		n = DefaultBins
	}
	gs := groupsOf(a)

	var finite []float64
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	dropRows(a)
	if len(finite) == 0 {
		return nil
	}
	lo, hi := stats.Bounds(finite)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := vec.Linspace(lo, hi, n+1)
	width := (hi - lo) / float64(n)

	counts := make([][]int, len(gs.keys))
	for i := range counts {
		counts[i] = make([]int, n)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		b := int((x - lo) / width)
		if b >= n {
			b = n - 1
		}
		counts[gs.index[i]][b]++
	}

	var ox, oxmin, oxmax, oy, oymin []float64
	var og []int
	for g := range gs.keys {
		for b := 0; b < n; b++ {
			ox = append(ox, (edges[b]+edges[b+1])/2)
			oxmin = append(oxmin, edges[b])
			oxmax = append(oxmax, edges[b+1])
			oy = append(oy, float64(counts[g][b]))
			oymin = append(oymin, 0)
			og = append(og, g)
		}
	}
	a.Set(element.X, ox)
	a.Set(element.XMin, oxmin)
	a.Set(element.XMax, oxmax)
	a.Set(element.Y, oy)
	a.Set(element.YMin, oymin)
	a.Set(element.YMax, oy)
	gs.restore(a, og)
	if a.Title(element.Y) == "" {
		a.SetTitle(element.Y, "count")
	}
	return nil
}

func decodeBin(d element.Doc) (element.Element, error) {
	n := d.Int("bins", 0)
	if n < 0 {
		return nil, fmt.Errorf("negative bin count %d", n)
	}
	return &Bin{Bins: n}, nil
}
