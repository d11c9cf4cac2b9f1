// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
)

// Default size range in pixels.
const (
	minSize = 2
	maxSize = 8
)

// ContinuousSize maps numeric values linearly onto marker radii
// between Min and Max pixels.
type ContinuousSize struct {
	Min, Max float64
}

func (s *ContinuousSize) Kind() element.Kind { return element.ScaleKind }

func (s *ContinuousSize) Aesthetics() []element.Aes { return []element.Aes{element.Size} }

func (s *ContinuousSize) Doc() element.Doc {
	return element.Doc{"type": "scale.continuous_size", "min": s.Min, "max": s.Max}
}

func (s *ContinuousSize) bounds() (float64, float64) {
	lo, hi := s.Min, s.Max
	if lo == 0 && hi == 0 {
		lo, hi = minSize, maxSize
	}
	return lo, hi
}

func (s *ContinuousSize) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	var all []float64
	vals := make([][]float64, len(datas))
	for i, d := range datas {
		v := d.Get(element.Size)
		if v == nil {
			continue
		}
		fs, ok := dataset.Floats(v)
		if !ok {
			return fmt.Errorf("continuous size scale: values of %s are %T, not numbers", d.Title(element.Size), v)
		}
		vals[i] = fs
		all = append(all, fs...)
	}
	lo, hi := finiteBounds(all)
	rlo, rhi := s.bounds()
	for i, fs := range vals {
		if fs == nil {
			continue
		}
		out := vec.Map(func(x float64) float64 {
			if math.IsNaN(x) {
				return 0
			}
			if hi == lo {
				return (rlo + rhi) / 2
			}
			return rlo + (x-lo)/(hi-lo)*(rhi-rlo)
		}, fs)
		aess[i].Set(element.Size, out)
		aess[i].SetTitle(element.Size, datas[i].Title(element.Size))
	}
	return nil
}

func decodeContinuousSize(d element.Doc) (element.Element, error) {
	lo, _ := d.Float("min", 0)
	hi, _ := d.Float("max", 0)
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("bad size range [%g, %g]", lo, hi)
	}
	return &ContinuousSize{Min: lo, Max: hi}, nil
}

// DiscreteSize maps each level to a radius, evenly spaced between
// Min and Max pixels in level order.
type DiscreteSize struct {
	Min, Max float64
	Levels   []string
}

func (s *DiscreteSize) Kind() element.Kind { return element.ScaleKind }

func (s *DiscreteSize) Aesthetics() []element.Aes { return []element.Aes{element.Size} }

func (s *DiscreteSize) Doc() element.Doc {
	d := element.Doc{"type": "scale.discrete_size", "min": s.Min, "max": s.Max}
	if s.Levels != nil {
		d["levels"] = s.Levels
	}
	return d
}

func (s *DiscreteSize) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	aes := []element.Aes{element.Size}
	levels, index := levelsOf(aes, datas, s.Levels)
	rlo, rhi := (&ContinuousSize{s.Min, s.Max}).bounds()
	var sizes []float64
	if len(levels) == 1 {
		sizes = []float64{(rlo + rhi) / 2}
	} else {
		sizes = vec.Linspace(rlo, rhi, len(levels))
	}
	for i, d := range datas {
		v := d.Get(element.Size)
		if v == nil {
			continue
		}
		idx := indexValues(v, index)
		out := make([]float64, len(idx))
		for j, k := range idx {
			if k >= 0 {
				out[j] = sizes[k]
			}
		}
		aess[i].Set(element.Size, out)
		aess[i].SetTitle(element.Size, d.Title(element.Size))
		aess[i].SetLevels(element.Size, levels)
	}
	return nil
}

func decodeDiscreteSize(d element.Doc) (element.Element, error) {
	lo, _ := d.Float("min", 0)
	hi, _ := d.Float("max", 0)
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("bad size range [%g, %g]", lo, hi)
	}
	return &DiscreteSize{Min: lo, Max: hi, Levels: d.Strings("levels")}, nil
}
