// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Class is the classification of a column of values as continuous or
// discrete.
type Class int

const (
	Discrete Class = iota
	Continuous
)

func (c Class) String() string {
	if c == Continuous {
		return "continuous"
	}
	return "discrete"
}

// MaxDiscreteInts is the largest number of distinct values an integer
// column can have and still be classified as discrete.
const MaxDiscreteInts = 20

// Classify classifies the values of v. Floating-point values are
// always continuous. Integer values are continuous if there are more
// than MaxDiscreteInts distinct values. Everything else is discrete.
func Classify(v table.Slice) Class {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return Discrete
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		return Continuous
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if reflect.ValueOf(slice.Nub(v)).Len() > MaxDiscreteInts {
			return Continuous
		}
	}
	return Discrete
}

// IsNumeric reports whether v is a slice of integers or floats.
func IsNumeric(v table.Slice) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Floats converts v to []float64. It returns false if v is not a
// numeric slice.
func Floats(v table.Slice) ([]float64, bool) {
	if fs, ok := v.([]float64); ok {
		return fs, true
	}
	if !IsNumeric(v) {
		return nil, false
	}
	var fs []float64
	slice.Convert(&fs, v)
	return fs, true
}

// Strings formats each element of v. Strings are returned as is.
func Strings(v table.Slice) []string {
	if ss, ok := v.([]string); ok {
		return ss
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	ss := make([]string, rv.Len())
	for i := range ss {
		ss[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return ss
}

// Colors returns v as a []color.Color, or false if its elements are
// not colors.
func Colors(v table.Slice) ([]color.Color, bool) {
	if cs, ok := v.([]color.Color); ok {
		return cs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || !rv.Type().Elem().Implements(reflect.TypeOf((*color.Color)(nil)).Elem()) {
		return nil, false
	}
	cs := make([]color.Color, rv.Len())
	for i := range cs {
		cs[i] = rv.Index(i).Interface().(color.Color)
	}
	return cs, true
}

// Len returns the length of slice v, or 0 if v is not a slice.
func Len(v table.Slice) int {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return 0
	}
	return rv.Len()
}
