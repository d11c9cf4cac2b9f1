// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales provides the scale elements that map data values to
// aesthetic values.
package scales

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
)

// Transformations for continuous scales.
const (
	Identity = "identity"
	Log10    = "log10"
	Sqrt     = "sqrt"
)

type transform struct {
	f, inv func(float64) float64
}

var transforms = map[string]transform{
	Identity: {func(x float64) float64 { return x }, func(x float64) float64 { return x }},
	Log10:    {math.Log10, func(x float64) float64 { return math.Pow(10, x) }},
	Sqrt:     {math.Sqrt, func(x float64) float64 { return x * x }},
}

// Continuous is a scale for numeric position aesthetics.
type Continuous struct {
	// Aes is the set of aesthetics the scale covers.
	Aes []element.Aes

	// Trans is the name of the transformation applied to values:
	// Identity (the default), Log10, or Sqrt.
	Trans string

	// Min and Max, if non-nil, force the visible range to include
	// them, in untransformed units.
	Min, Max *float64

	// Format is a printf format for tick labels. If empty, labels
	// use up to 6 significant digits.
	Format string
}

// ContinuousX returns a continuous scale for the x position
// aesthetics.
func ContinuousX() *Continuous {
	return &Continuous{Aes: element.XFamily}
}

// ContinuousY returns a continuous scale for the y position
// aesthetics.
func ContinuousY() *Continuous {
	return &Continuous{Aes: element.YFamily}
}

func (s *Continuous) Kind() element.Kind { return element.ScaleKind }

func (s *Continuous) Aesthetics() []element.Aes { return s.Aes }

func (s *Continuous) Doc() element.Doc {
	d := element.Doc{"type": "scale.continuous", "aes": element.AesStrings(s.Aes)}
	if s.Trans != "" && s.Trans != Identity {
		d["trans"] = s.Trans
	}
	if s.Min != nil {
		d["min"] = *s.Min
	}
	if s.Max != nil {
		d["max"] = *s.Max
	}
	if s.Format != "" {
		d["format"] = s.Format
	}
	return d
}

func (s *Continuous) transform() (transform, error) {
	name := s.Trans
	if name == "" {
		name = Identity
	}
	t, ok := transforms[name]
	if !ok {
		return transform{}, fmt.Errorf("unknown scale transformation %q", s.Trans)
	}
	return t, nil
}

// labeler returns the tick labeler for this scale.
func (s *Continuous) labeler(t transform) element.Labeler {
	return func(v float64) string {
		v = t.inv(v)
		if s.Format != "" {
			return fmt.Sprintf(s.Format, v)
		}
		return formatFloat(v)
	}
}

func formatFloat(v float64) string {
	// Snap values that are zero up to rounding error.
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (s *Continuous) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	t, err := s.transform()
	if err != nil {
		return err
	}
	lab := s.labeler(t)
	for i, d := range datas {
		a := aess[i]
		for _, ae := range s.Aes {
			v := d.Get(ae)
			if v == nil {
				continue
			}
			fs, ok := dataset.Floats(v)
			if !ok {
				return fmt.Errorf("continuous scale for %s: values of %s are %T, not numbers", ae, d.Title(ae), v)
			}
			out := make([]float64, len(fs))
			for j, f := range fs {
				out[j] = t.f(f)
			}
			a.Set(ae, out)
			a.SetTitle(ae, d.Title(ae))
			a.SetLabeler(ae, lab)
		}
		s.setView(a, t)
	}
	return nil
}

// setView records Min and Max as view bounds on a.
func (s *Continuous) setView(a *element.Aesthetics, t transform) {
	var minAes, maxAes element.Aes
	switch {
	case s.covers(element.InXFamily):
		minAes, maxAes = element.XViewMin, element.XViewMax
	case s.covers(element.InYFamily):
		minAes, maxAes = element.YViewMin, element.YViewMax
	default:
		return
	}
	if s.Min != nil {
		a.Set(minAes, []float64{t.f(*s.Min)})
	}
	if s.Max != nil {
		a.Set(maxAes, []float64{t.f(*s.Max)})
	}
}

func (s *Continuous) covers(fam func(element.Aes) bool) bool {
	for _, a := range s.Aes {
		if fam(a) {
			return true
		}
	}
	return false
}

func decodeContinuous(d element.Doc) (element.Element, error) {
	s := &Continuous{
		Aes:    d.AesList("aes", element.XFamily),
		Trans:  d.Str("trans", ""),
		Min:    d.OptFloat("min"),
		Max:    d.OptFloat("max"),
		Format: d.Str("format", ""),
	}
	if _, err := s.transform(); err != nil {
		return nil, err
	}
	return s, nil
}
