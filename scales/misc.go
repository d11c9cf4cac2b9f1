// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
)

// Shape maps each level to a marker shape index. Shapes repeat after
// the last one.
type Shape struct {
	Levels []string
}

func (s *Shape) Kind() element.Kind { return element.ScaleKind }

func (s *Shape) Aesthetics() []element.Aes { return []element.Aes{element.Shape} }

func (s *Shape) Doc() element.Doc {
	return levelsDoc("scale.shape", s.Aesthetics(), s.Levels)
}

func (s *Shape) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	applyIndex(element.Shape, s.Levels, aess, datas)
	return nil
}

// Group assigns each distinct value a group number. Geometries that
// connect points draw one series per group.
type Group struct{}

func (s *Group) Kind() element.Kind { return element.ScaleKind }

func (s *Group) Aesthetics() []element.Aes { return []element.Aes{element.Group} }

func (s *Group) Doc() element.Doc {
	return element.Doc{"type": "scale.group"}
}

func (s *Group) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	applyIndex(element.Group, nil, aess, datas)
	return nil
}

// applyIndex sets ae on each of aess to the level index of each
// value. Values not among levels get -1.
func applyIndex(ae element.Aes, levels []string, aess []*element.Aesthetics, datas []*element.Data) {
	levels, index := levelsOf([]element.Aes{ae}, datas, levels)
	for i, d := range datas {
		v := d.Get(ae)
		if v == nil {
			continue
		}
		aess[i].Set(ae, indexValues(v, index))
		aess[i].SetTitle(ae, d.Title(ae))
		aess[i].SetLevels(ae, levels)
	}
}

// Label formats values as text for the label aesthetic.
type Label struct{}

func (s *Label) Kind() element.Kind { return element.ScaleKind }

func (s *Label) Aesthetics() []element.Aes { return []element.Aes{element.Label} }

func (s *Label) Doc() element.Doc {
	return element.Doc{"type": "scale.label"}
}

func (s *Label) Apply(aess []*element.Aesthetics, datas []*element.Data) error {
	for i, d := range datas {
		v := d.Get(element.Label)
		if v == nil {
			continue
		}
		aess[i].Set(element.Label, dataset.Strings(v))
		aess[i].SetTitle(element.Label, d.Title(element.Label))
	}
	return nil
}
