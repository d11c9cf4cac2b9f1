// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"errors"
	"fmt"
	"sort"
)

// Aes is the name of an aesthetic: a visual channel such as x
// position or color.
type Aes string

// Mappable aesthetics.
const (
	X          Aes = "x"
	Y          Aes = "y"
	XMin       Aes = "xmin"
	XMax       Aes = "xmax"
	YMin       Aes = "ymin"
	YMax       Aes = "ymax"
	XEnd       Aes = "xend"
	YEnd       Aes = "yend"
	XIntercept Aes = "xintercept"
	YIntercept Aes = "yintercept"
	Color      Aes = "color"
	Size       Aes = "size"
	Shape      Aes = "shape"
	Label      Aes = "label"
	Group      Aes = "group"
)

// Derived aesthetics are produced by scales and statistics and cannot
// be mapped.
const (
	XTick          Aes = "xtick"
	YTick          Aes = "ytick"
	XTickLabel     Aes = "xtick_label"
	YTickLabel     Aes = "ytick_label"
	XGrid          Aes = "xgrid"
	YGrid          Aes = "ygrid"
	XViewMin       Aes = "xviewmin"
	XViewMax       Aes = "xviewmax"
	YViewMin       Aes = "yviewmin"
	YViewMax       Aes = "yviewmax"
	ColorKeyColors Aes = "color_key_colors"
	ColorKeyLabels Aes = "color_key_labels"
)

// ErrUnknownAesthetic is returned when a mapping names an aesthetic
// that does not exist or cannot be mapped.
var ErrUnknownAesthetic = errors.New("unrecognized aesthetic")

var mappable = map[Aes]bool{
	X: true, Y: true, XMin: true, XMax: true, YMin: true, YMax: true,
	XEnd: true, YEnd: true, XIntercept: true, YIntercept: true,
	Color: true, Size: true, Shape: true, Label: true, Group: true,
}

// XFamily and YFamily are the position aesthetics of each axis in
// the order used to choose axis labels.
var (
	XFamily = []Aes{X, XMin, XMax, XIntercept, XEnd}
	YFamily = []Aes{Y, YMin, YMax, YIntercept, YEnd}
)

// CheckMappable returns an error wrapping ErrUnknownAesthetic if a
// cannot be mapped.
func CheckMappable(a Aes) error {
	if !mappable[a] {
		return fmt.Errorf("%w %q", ErrUnknownAesthetic, string(a))
	}
	return nil
}

// InXFamily reports whether a is an x position aesthetic.
func InXFamily(a Aes) bool {
	return inFamily(XFamily, a)
}

// InYFamily reports whether a is a y position aesthetic.
func InYFamily(a Aes) bool {
	return inFamily(YFamily, a)
}

func inFamily(fam []Aes, a Aes) bool {
	for _, f := range fam {
		if f == a {
			return true
		}
	}
	return false
}

// SortAes sorts aesthetic names in place and returns them.
func SortAes(as []Aes) []Aes {
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	return as
}
