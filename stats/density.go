// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/scales"
)

// Density replaces the x values of each group with a kernel density
// estimate: x is the sample points and y the estimated density.
type Density struct {
	// N is the number of points to sample the estimate at. If 0,
	// a default is used.
	N int

	// Bandwidth is the kernel bandwidth. If 0, it is estimated
	// from the data.
	Bandwidth float64
}

func (s *Density) Kind() element.Kind { return element.StatisticKind }

func (s *Density) Aesthetics() []element.Aes { return []element.Aes{element.X, element.Y} }

func (s *Density) DefaultScales() []element.Scale {
	return []element.Scale{scales.ContinuousY()}
}

func (s *Density) Doc() element.Doc {
	d := element.Doc{"type": "stat.density"}
	if s.N != 0 {
		d["n"] = s.N
	}
	if s.Bandwidth != 0 {
		d["bandwidth"] = s.Bandwidth
	}
	return d
}

func (s *Density) Apply(a *element.Aesthetics) error {
	xs := a.Floats(element.X)
	if xs == nil {
		return fmt.Errorf("density requires numeric x")
	}
	gs := groupsOf(a)
	px := make([][]float64, len(gs.keys))
	for i, x := range xs {
		if finite(x) {
			g := gs.index[i]
			px[g] = append(px[g], x)
		}
	}
	dropRows(a)

	kde := ggstat.Density{X: "x", N: s.N, Bandwidth: s.Bandwidth}
	var ox, oy []float64
	var og []int
	for g := range gs.keys {
		if len(px[g]) == 0 {
			continue
		}
		res := table.Flatten(kde.F(table.NewBuilder(nil).Add("x", px[g]).Done()))
		var rx, ry []float64
		slice.Convert(&rx, res.MustColumn("x"))
		slice.Convert(&ry, res.MustColumn("probability density"))
		ox, oy = append(ox, rx...), append(oy, ry...)
		for range rx {
			og = append(og, g)
		}
	}
	a.Set(element.X, ox)
	a.Set(element.Y, oy)
	gs.restore(a, og)
	if a.Title(element.Y) == "" {
		a.SetTitle(element.Y, "density")
	}
	return nil
}

func decodeDensity(d element.Doc) (element.Element, error) {
	bw, ok := d.Float("bandwidth", 0)
	if !ok || bw < 0 {
		return nil, fmt.Errorf("bad bandwidth %v", d["bandwidth"])
	}
	return &Density{N: d.Int("n", 0), Bandwidth: bw}, nil
}
