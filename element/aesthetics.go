// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"image/color"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/dataset"
)

// Labeler formats a scaled position value for display.
type Labeler func(v float64) string

// Aesthetics is the scaled, renderable values of each aesthetic.
//
// Besides values, an Aesthetics records for each aesthetic a title
// (for axis labels and keys), a labeler that turns scaled values back
// into text, and, for discrete position scales, the level names.
type Aesthetics struct {
	vals     map[Aes]table.Slice
	titles   map[Aes]string
	labelers map[Aes]Labeler
	levels   map[Aes][]string
}

// NewAesthetics returns an empty Aesthetics.
func NewAesthetics() *Aesthetics {
	return &Aesthetics{
		vals:     map[Aes]table.Slice{},
		titles:   map[Aes]string{},
		labelers: map[Aes]Labeler{},
		levels:   map[Aes][]string{},
	}
}

// Get returns the values of a, or nil.
func (s *Aesthetics) Get(a Aes) table.Slice {
	return s.vals[a]
}

// Set sets the values of a. Setting nil removes a.
func (s *Aesthetics) Set(a Aes, v table.Slice) {
	if v == nil {
		delete(s.vals, a)
		return
	}
	s.vals[a] = v
}

// Has reports whether a has values.
func (s *Aesthetics) Has(a Aes) bool {
	return s.vals[a] != nil
}

// Names returns the aesthetics that have values, sorted.
func (s *Aesthetics) Names() []Aes {
	as := make([]Aes, 0, len(s.vals))
	for a := range s.vals {
		as = append(as, a)
	}
	return SortAes(as)
}

// Floats returns the values of a as []float64, or nil if a has no
// numeric values.
func (s *Aesthetics) Floats(a Aes) []float64 {
	fs, _ := dataset.Floats(s.vals[a])
	return fs
}

// Ints returns the values of a as []int, or nil if a has no numeric
// values.
func (s *Aesthetics) Ints(a Aes) []int {
	v := s.vals[a]
	if is, ok := v.([]int); ok {
		return is
	}
	if !dataset.IsNumeric(v) {
		return nil
	}
	var is []int
	slice.Convert(&is, v)
	return is
}

// Strings returns the values of a formatted as strings, or nil.
func (s *Aesthetics) Strings(a Aes) []string {
	return dataset.Strings(s.vals[a])
}

// Colors returns the values of a as colors, or nil.
func (s *Aesthetics) Colors(a Aes) []color.Color {
	cs, _ := dataset.Colors(s.vals[a])
	return cs
}

// Title returns the title of a.
func (s *Aesthetics) Title(a Aes) string {
	return s.titles[a]
}

// SetTitle sets the title of a.
func (s *Aesthetics) SetTitle(a Aes, title string) {
	s.titles[a] = title
}

// Labeler returns the labeler of a, or nil.
func (s *Aesthetics) Labeler(a Aes) Labeler {
	return s.labelers[a]
}

// SetLabeler sets the labeler of a.
func (s *Aesthetics) SetLabeler(a Aes, l Labeler) {
	s.labelers[a] = l
}

// Label formats v using a's labeler, or in the shortest exact
// decimal form if a has none.
func (s *Aesthetics) Label(a Aes, v float64) string {
	if l := s.labelers[a]; l != nil {
		return l(v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Levels returns the discrete levels of a, or nil if a is continuous.
// Level i is drawn at position i+1.
func (s *Aesthetics) Levels(a Aes) []string {
	return s.levels[a]
}

// SetLevels sets the discrete levels of a.
func (s *Aesthetics) SetLevels(a Aes, levels []string) {
	s.levels[a] = levels
}

// Clone returns a shallow copy of s.
func (s *Aesthetics) Clone() *Aesthetics {
	c := NewAesthetics()
	c.Inherit(s)
	return c
}

// Inherit copies each value, title, labeler, and level list of from
// that s does not already have. Values are shared, not copied.
func (s *Aesthetics) Inherit(from *Aesthetics) {
	for a, v := range from.vals {
		if _, ok := s.vals[a]; !ok {
			s.vals[a] = v
		}
	}
	for a, t := range from.titles {
		if _, ok := s.titles[a]; !ok {
			s.titles[a] = t
		}
	}
	for a, l := range from.labelers {
		if _, ok := s.labelers[a]; !ok {
			s.labelers[a] = l
		}
	}
	for a, l := range from.levels {
		if _, ok := s.levels[a]; !ok {
			s.levels[a] = l
		}
	}
}

// keyAes are aesthetics that describe a whole plot rather than
// individual rows. Concat keeps the first rather than concatenating.
var keyAes = map[Aes]bool{
	ColorKeyColors: true,
	ColorKeyLabels: true,
}

// Concat combines aess into one Aesthetics. Values of each aesthetic
// are concatenated in order. Titles, labelers, and levels are taken
// from the first Aesthetics that has them.
func Concat(aess ...*Aesthetics) *Aesthetics {
	res := NewAesthetics()
	parts := map[Aes][]table.Slice{}
	var order []Aes
	for _, s := range aess {
		for _, a := range s.Names() {
			if _, ok := parts[a]; !ok {
				order = append(order, a)
			}
			parts[a] = append(parts[a], s.vals[a])
		}
		for a, t := range s.titles {
			if _, ok := res.titles[a]; !ok {
				res.titles[a] = t
			}
		}
		for a, l := range s.labelers {
			if _, ok := res.labelers[a]; !ok {
				res.labelers[a] = l
			}
		}
		for a, l := range s.levels {
			if _, ok := res.levels[a]; !ok {
				res.levels[a] = l
			}
		}
	}
	for _, a := range order {
		if keyAes[a] {
			res.vals[a] = parts[a][0]
			continue
		}
		res.vals[a] = concatSlices(parts[a])
	}
	return res
}

// concatSlices concatenates vs. Slices of different types are
// combined as []float64 if all are numeric and as []string otherwise.
func concatSlices(vs []table.Slice) table.Slice {
	if len(vs) == 1 {
		return vs[0]
	}
	same, numeric := true, true
	t0 := reflect.TypeOf(vs[0])
	for _, v := range vs {
		if reflect.TypeOf(v) != t0 {
			same = false
		}
		if !dataset.IsNumeric(v) {
			numeric = false
		}
	}
	switch {
	case same:
		ts := make([]slice.T, len(vs))
		for i, v := range vs {
			ts[i] = v
		}
		return slice.Concat(ts...)
	case numeric:
		var out []float64
		for _, v := range vs {
			fs, _ := dataset.Floats(v)
			out = append(out, fs...)
		}
		return out
	}
	var out []string
	for _, v := range vs {
		out = append(out, dataset.Strings(v)...)
	}
	return out
}
