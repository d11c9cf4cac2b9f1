// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"reflect"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
)

// Discrete is a scale for categorical position aesthetics. Level i
// (in sorted order, or the order of Levels) is placed at position
// i+1.
type Discrete struct {
	Aes []element.Aes

	// Levels, if non-nil, fixes the set and order of levels.
	// Values not in Levels are dropped (mapped to NaN).
	Levels []string
}

// DiscreteX returns a discrete scale for the x position aesthetics.
func DiscreteX() *Discrete {
	return &Discrete{Aes: element.XFamily}
}

// DiscreteY returns a discrete scale for the y position aesthetics.
func DiscreteY() *Discrete {
	return &Discrete{Aes: element.YFamily}
}

func (s *Discrete) Kind() element.Kind { return element.ScaleKind }

func (s *Discrete) Aesthetics() []element.Aes { return s.Aes }

func (s *Discrete) Doc() element.Doc {
	return levelsDoc("scale.discrete", s.Aes, s.Levels)
}

func (s *Discrete) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	levels, index := levelsOf(s.Aes, datas, s.Levels)
	lab := func(v float64) string {
		i := int(math.Round(v)) - 1
		if i < 0 || i >= len(levels) || v != math.Round(v) {
			return ""
		}
		return levels[i]
	}
	for i, d := range datas {
		a := aess[i]
		for _, ae := range s.Aes {
			v := d.Get(ae)
			if v == nil {
				continue
			}
			strs := dataset.Strings(v)
			pos := make([]float64, len(strs))
			for j, str := range strs {
				if k, ok := index[str]; ok {
					pos[j] = float64(k + 1)
				} else {
					pos[j] = math.NaN()
				}
			}
			a.Set(ae, pos)
			a.SetTitle(ae, d.Title(ae))
			a.SetLabeler(ae, lab)
			a.SetLevels(ae, levels)
		}
	}
	return nil
}

// levelsOf returns the distinct values of aesthetics aes across all
// of datas, as strings, and an index from level to position. If
// explicit is non-nil, it is used as is. Otherwise values are sorted
// in their natural order when they all have one sortable type, and
// as strings otherwise.
func levelsOf(aes []element.Aes, datas []*element.Data, explicit []string) ([]string, map[string]int) {
	levels := explicit
	if levels == nil {
		var vals []slice.T
		for _, d := range datas {
			for _, ae := range aes {
				if v := d.Get(ae); v != nil {
					vals = append(vals, v)
				}
			}
		}
		levels = sortedLevels(vals)
	}
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		if _, ok := index[l]; !ok {
			index[l] = i
		}
	}
	return levels, index
}

func sortedLevels(vals []slice.T) []string {
	if len(vals) == 0 {
		return []string{}
	}
	t0 := reflect.TypeOf(vals[0])
	for _, v := range vals {
		if reflect.TypeOf(v) != t0 {
			t0 = nil
			break
		}
	}
	if t0 != nil {
		all := slice.NubAppend(vals...)
		if slice.CanSort(all) {
			slice.Sort(all)
		}
		return dataset.Strings(all)
	}
	seen := map[string]bool{}
	var strs []string
	for _, v := range vals {
		for _, s := range dataset.Strings(v) {
			if !seen[s] {
				seen[s] = true
				strs = append(strs, s)
			}
		}
	}
	sort.Strings(strs)
	return strs
}

// indexValues maps each value of v to its level index, or -1.
func indexValues(v table.Slice, index map[string]int) []int {
	strs := dataset.Strings(v)
	out := make([]int, len(strs))
	for i, s := range strs {
		if k, ok := index[s]; ok {
			out[i] = k
		} else {
			out[i] = -1
		}
	}
	return out
}

func levelsDoc(typ string, aes []element.Aes, levels []string) element.Doc {
	d := element.Doc{"type": typ, "aes": element.AesStrings(aes)}
	if levels != nil {
		d["levels"] = levels
	}
	return d
}

func decodeDiscrete(d element.Doc) (element.Element, error) {
	return &Discrete{Aes: d.AesList("aes", element.XFamily), Levels: d.Strings("levels")}, nil
}
