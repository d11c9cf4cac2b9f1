// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides statistic elements, which derive new
// aesthetic values from scaled ones.
package stats

import (
	"github.com/aclements/ggdecl/element"
)

func init() {
	element.Register("stat.identity", func(element.Doc) (element.Element, error) {
		return Identity{}, nil
	})
	element.Register("stat.ticks", decodeTicks)
	element.Register("stat.bin", decodeBin)
	element.Register("stat.smooth", decodeSmooth)
	element.Register("stat.density", decodeDensity)
}

// Identity is the statistic that leaves its input unchanged. A layer
// whose statistic is Identity uses its geometry's default statistic.
type Identity struct{}

func (Identity) Kind() element.Kind                { return element.StatisticKind }
func (Identity) Aesthetics() []element.Aes         { return nil }
func (Identity) DefaultScales() []element.Scale    { return nil }
func (Identity) Apply(a *element.Aesthetics) error { return nil }
func (Identity) Doc() element.Doc                  { return element.Doc{"type": "stat.identity"} }

// IsIdentity reports whether s is nil or the Identity statistic.
func IsIdentity(s element.Statistic) bool {
	if s == nil {
		return true
	}
	_, ok := s.(Identity)
	return ok
}

// rowAes are the aesthetics that hold one value per data row.
var rowAes = []element.Aes{
	element.X, element.Y, element.XMin, element.XMax, element.YMin, element.YMax,
	element.XEnd, element.YEnd, element.XIntercept, element.YIntercept,
	element.Color, element.Size, element.Shape, element.Label, element.Group,
}

// dropRows removes every per-row aesthetic of a. Statistics that
// produce new rows call it before setting their output.
func dropRows(a *element.Aesthetics) {
	for _, ae := range rowAes {
		a.Set(ae, nil)
	}
}
