// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import "github.com/aclements/ggdecl/element"

func init() {
	element.Register("scale.continuous", decodeContinuous)
	element.Register("scale.discrete", decodeDiscrete)
	element.Register("scale.continuous_color", decodeContinuousColor)
	element.Register("scale.discrete_color", decodeDiscreteColor)
	element.Register("scale.continuous_size", decodeContinuousSize)
	element.Register("scale.discrete_size", decodeDiscreteSize)
	element.Register("scale.shape", func(d element.Doc) (element.Element, error) {
		return &Shape{Levels: d.Strings("levels")}, nil
	})
	element.Register("scale.group", func(element.Doc) (element.Element, error) {
		return &Group{}, nil
	})
	element.Register("scale.label", func(element.Doc) (element.Element, error) {
		return &Label{}, nil
	})
}

// DefaultContinuous returns a new instance of the default scale for
// continuous values of aesthetic a, or nil if there is none. Position
// scales cover the whole axis family of a.
func DefaultContinuous(a element.Aes) element.Scale {
	switch {
	case element.InXFamily(a):
		return ContinuousX()
	case element.InYFamily(a):
		return ContinuousY()
	}
	switch a {
	case element.Color:
		return &ContinuousColor{}
	case element.Size:
		return &ContinuousSize{}
	case element.Label:
		return &Label{}
	}
	return nil
}

// DefaultDiscrete returns a new instance of the default scale for
// discrete values of aesthetic a, or nil if there is none. The color
// scale uses th's palette.
func DefaultDiscrete(a element.Aes, th *element.Theme) element.Scale {
	switch {
	case element.InXFamily(a):
		return DiscreteX()
	case element.InYFamily(a):
		return DiscreteY()
	}
	switch a {
	case element.Color:
		s := &DiscreteColor{}
		if th != nil {
			s.Palette = th.Palette
		}
		return s
	case element.Size:
		return &DiscreteSize{}
	case element.Shape:
		return &Shape{}
	case element.Group:
		return &Group{}
	case element.Label:
		return &Label{}
	}
	return nil
}
