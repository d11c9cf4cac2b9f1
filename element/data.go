// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/aclements/go-gg/table"
)

// Data is the raw, unscaled values bound to each aesthetic by a
// mapping, together with a title for each: the source text of the
// mapping that produced it.
type Data struct {
	vals   map[Aes]table.Slice
	titles map[Aes]string
}

// NewData returns an empty Data.
func NewData() *Data {
	return &Data{vals: map[Aes]table.Slice{}, titles: map[Aes]string{}}
}

// Set binds values v with the given title to aesthetic a.
func (d *Data) Set(a Aes, v table.Slice, title string) {
	d.vals[a] = v
	d.titles[a] = title
}

// Get returns the values bound to a, or nil.
func (d *Data) Get(a Aes) table.Slice {
	if d == nil {
		return nil
	}
	return d.vals[a]
}

// Has reports whether a has values.
func (d *Data) Has(a Aes) bool {
	return d.Get(a) != nil
}

// Title returns the title of a.
func (d *Data) Title(a Aes) string {
	if d == nil {
		return ""
	}
	return d.titles[a]
}

// Aes returns the aesthetics with values, sorted by name.
func (d *Data) Aes() []Aes {
	if d == nil {
		return nil
	}
	as := make([]Aes, 0, len(d.vals))
	for a := range d.vals {
		as = append(as, a)
	}
	return SortAes(as)
}
