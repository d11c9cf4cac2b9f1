// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/element"
)

// Smoothing methods.
const (
	LOESS        = "loess"
	LeastSquares = "lm"
)

// Smooth fits a curve through the x and y values of each group and
// replaces them with N samples of the fit.
type Smooth struct {
	// Method is LOESS (the default) or LeastSquares.
	Method string

	// N is the number of points to sample the fit at. If 0, a
	// default is used.
	N int

	// Degree is the degree of the fit. If 0, LOESS uses 2 and
	// LeastSquares uses 1.
	Degree int

	// Span is the LOESS smoothing span in (0, 1]. If 0, 0.5 is
	// used.
	Span float64
}

func (s *Smooth) Kind() element.Kind { return element.StatisticKind }

func (s *Smooth) Aesthetics() []element.Aes { return []element.Aes{element.X, element.Y} }

func (s *Smooth) DefaultScales() []element.Scale { return nil }

func (s *Smooth) Doc() element.Doc {
	d := element.Doc{"type": "stat.smooth"}
	if s.Method != "" {
		d["method"] = s.Method
	}
	if s.N != 0 {
		d["n"] = s.N
	}
	if s.Degree != 0 {
		d["degree"] = s.Degree
	}
	if s.Span != 0 {
		d["span"] = s.Span
	}
	return d
}

// fit returns the ggstat function for s.
func (s *Smooth) fit() (func(table.Grouping) table.Grouping, error) {
	switch s.Method {
	case "", LOESS:
		return ggstat.LOESS{X: "x", Y: "y", N: s.N, Degree: s.Degree, Span: s.Span}.F, nil
	case LeastSquares:
		return ggstat.LeastSquares{X: "x", Y: "y", N: s.N, Degree: s.Degree}.F, nil
	}
	return nil, fmt.Errorf("unknown smoothing method %q", s.Method)
}

func (s *Smooth) Apply(a *element.Aesthetics) error {
	f, err := s.fit()
	if err != nil {
		return err
	}
	xs, ys := a.Floats(element.X), a.Floats(element.Y)
	if xs == nil || ys == nil {
		return fmt.Errorf("smooth requires numeric x and y")
	}
	gs := groupsOf(a)

	// Split finite points by group.
	px := make([][]float64, len(gs.keys))
	py := make([][]float64, len(gs.keys))
	for i := range xs {
		if i >= len(ys) || !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		g := gs.index[i]
		px[g], py[g] = append(px[g], xs[i]), append(py[g], ys[i])
	}
	dropRows(a)

	var ox, oy []float64
	var og []int
	for g := range gs.keys {
		if len(px[g]) == 0 {
			continue
		}
		tb := table.NewBuilder(nil).Add("x", px[g]).Add("y", py[g]).Done()
		res := table.Flatten(f(tb))
		var rx, ry []float64
		slice.Convert(&rx, res.MustColumn("x"))
		slice.Convert(&ry, res.MustColumn("y"))
		ox, oy = append(ox, rx...), append(oy, ry...)
		for range rx {
			og = append(og, g)
		}
	}
	a.Set(element.X, ox)
	a.Set(element.Y, oy)
	gs.restore(a, og)
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func decodeSmooth(d element.Doc) (element.Element, error) {
	span, _ := d.Float("span", 0)
	s := &Smooth{
		Method: d.Str("method", ""),
		N:      d.Int("n", 0),
		Degree: d.Int("degree", 0),
		Span:   span,
	}
	if _, err := s.fit(); err != nil {
		return nil, err
	}
	if s.Span < 0 || s.Span > 1 {
		return nil, fmt.Errorf("smoothing span %g not in (0, 1]", s.Span)
	}
	return s, nil
}
