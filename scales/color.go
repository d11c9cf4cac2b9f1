// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
)

// DiscreteColor maps each distinct value to a color from a
// categorical palette. Colors repeat when there are more levels than
// palette entries.
type DiscreteColor struct {
	// Palette is a list of "#rrggbb" colors. If empty, the default
	// theme palette is used.
	Palette []string

	Levels []string
}

func (s *DiscreteColor) Kind() element.Kind { return element.ScaleKind }

func (s *DiscreteColor) Aesthetics() []element.Aes { return []element.Aes{element.Color} }

func (s *DiscreteColor) Doc() element.Doc {
	d := element.Doc{"type": "scale.discrete_color"}
	if s.Levels != nil {
		d["levels"] = s.Levels
	}
	if len(s.Palette) > 0 {
		d["palette"] = s.Palette
	}
	return d
}

func (s *DiscreteColor) colors() ([]color.Color, error) {
	pal := s.Palette
	if len(pal) == 0 {
		pal = element.DefaultTheme().Palette
	}
	cs := make([]color.Color, len(pal))
	for i, p := range pal {
		c, err := element.ParseColor(p)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

func (s *DiscreteColor) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	pal, err := s.colors()
	if err != nil {
		return err
	}
	aes := []element.Aes{element.Color}
	levels, index := levelsOf(aes, datas, s.Levels)
	keyColors := make([]color.Color, len(levels))
	for i := range levels {
		keyColors[i] = pal[i%len(pal)]
	}
	missing := color.Transparent
	for i, d := range datas {
		v := d.Get(element.Color)
		if v == nil {
			continue
		}
		idx := indexValues(v, index)
		cs := make([]color.Color, len(idx))
		for j, k := range idx {
			if k < 0 {
				cs[j] = missing
			} else {
				cs[j] = keyColors[k]
			}
		}
		a := aess[i]
		a.Set(element.Color, cs)
		a.SetTitle(element.Color, d.Title(element.Color))
		a.SetLevels(element.Color, levels)
		a.Set(element.ColorKeyColors, keyColors)
		a.Set(element.ColorKeyLabels, levels)
	}
	return nil
}

func decodeDiscreteColor(d element.Doc) (element.Element, error) {
	s := &DiscreteColor{Palette: d.Strings("palette"), Levels: d.Strings("levels")}
	if _, err := s.colors(); err != nil {
		return nil, err
	}
	return s, nil
}

// keyStops is the number of entries a continuous color key shows.
const keyStops = 5

// ContinuousColor maps numeric values onto the Viridis gradient. The
// smallest value across all layers maps to the start of the gradient
// and the largest to the end.
type ContinuousColor struct {
	// Palette is the gradient to use. If nil, palette.Viridis is
	// used. It is not serialized.
	Palette palette.Continuous
}

func (s *ContinuousColor) Kind() element.Kind { return element.ScaleKind }

func (s *ContinuousColor) Aesthetics() []element.Aes { return []element.Aes{element.Color} }

func (s *ContinuousColor) Doc() element.Doc {
	return element.Doc{"type": "scale.continuous_color"}
}

func (s *ContinuousColor) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	pal := s.Palette
	if pal == nil {
		pal = palette.Viridis
	}
	var all []float64
	vals := make([][]float64, len(datas))
	for i, d := range datas {
		v := d.Get(element.Color)
		if v == nil {
			continue
		}
		fs, ok := dataset.Floats(v)
		if !ok {
			return fmt.Errorf("continuous color scale: values of %s are %T, not numbers", d.Title(element.Color), v)
		}
		vals[i] = fs
		all = append(all, fs...)
	}
	lo, hi := finiteBounds(all)
	norm := func(x float64) float64 {
		if hi == lo {
			return 0.5
		}
		return (x - lo) / (hi - lo)
	}

	stops := vec.Linspace(lo, hi, keyStops)
	keyColors := make([]color.Color, len(stops))
	keyLabels := make([]string, len(stops))
	for i, x := range stops {
		keyColors[i] = pal.Map(norm(x))
		keyLabels[i] = formatFloat(x)
	}

	for i, fs := range vals {
		if fs == nil {
			continue
		}
		cs := make([]color.Color, len(fs))
		for j, x := range fs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				cs[j] = color.Transparent
				continue
			}
			cs[j] = pal.Map(norm(x))
		}
		a := aess[i]
		a.Set(element.Color, cs)
		a.SetTitle(element.Color, datas[i].Title(element.Color))
		a.Set(element.ColorKeyColors, keyColors)
		a.Set(element.ColorKeyLabels, keyLabels)
	}
	return nil
}

// finiteBounds returns the minimum and maximum finite values of xs,
// or 0, 0 if there are none.
func finiteBounds(xs []float64) (lo, hi float64) {
	var finite []float64
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return 0, 0
	}
	return stats.Bounds(finite)
}

func decodeContinuousColor(d element.Doc) (element.Element, error) {
	return &ContinuousColor{}, nil
}
