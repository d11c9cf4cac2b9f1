// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"fmt"
	"sort"
	"sync"
)

// Doc is the serialized form of an element: a JSON-compatible map
// with a "type" key naming the element's decoder.
type Doc map[string]interface{}

// Type returns d's "type" key.
func (d Doc) Type() string {
	s, _ := d["type"].(string)
	return s
}

// Str returns the string value of key, or def.
func (d Doc) Str(key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

// Float returns the numeric value of key, or def. ok is false if key
// is present but not a number.
func (d Doc) Float(key string, def float64) (v float64, ok bool) {
	switch x := d[key].(type) {
	case nil:
		return def, true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return def, false
}

// OptFloat returns the numeric value of key, or nil if key is absent.
func (d Doc) OptFloat(key string) *float64 {
	if _, ok := d[key]; !ok {
		return nil
	}
	v, ok := d.Float(key, 0)
	if !ok {
		return nil
	}
	return &v
}

// Int returns the integer value of key, or def.
func (d Doc) Int(key string, def int) int {
	v, ok := d.Float(key, float64(def))
	if !ok {
		return def
	}
	return int(v)
}

// Bool returns the boolean value of key, or def.
func (d Doc) Bool(key string, def bool) bool {
	if b, ok := d[key].(bool); ok {
		return b
	}
	return def
}

// Strings returns the list of strings at key, or nil.
func (d Doc) Strings(key string) []string {
	switch x := d[key].(type) {
	case []string:
		return x
	case []interface{}:
		ss := make([]string, 0, len(x))
		for _, v := range x {
			ss = append(ss, fmt.Sprint(v))
		}
		return ss
	case string:
		return []string{x}
	}
	return nil
}

// Floats returns the list of numbers at key, or nil.
func (d Doc) Floats(key string) []float64 {
	switch x := d[key].(type) {
	case []float64:
		return x
	case []interface{}:
		fs := make([]float64, 0, len(x))
		for _, v := range x {
			if f, ok := (Doc{"v": v}).Float("v", 0); ok {
				fs = append(fs, f)
			}
		}
		return fs
	}
	return nil
}

// AesList returns the aesthetic names listed at key, or def.
func (d Doc) AesList(key string, def []Aes) []Aes {
	ss := d.Strings(key)
	if ss == nil {
		return def
	}
	as := make([]Aes, len(ss))
	for i, s := range ss {
		as[i] = Aes(s)
	}
	return as
}

// AesStrings converts as to strings for a Doc.
func AesStrings(as []Aes) []string {
	ss := make([]string, len(as))
	for i, a := range as {
		ss[i] = string(a)
	}
	return ss
}

// A DecodeFunc rebuilds an element from its Doc.
type DecodeFunc func(d Doc) (Element, error)

var decoders struct {
	sync.Mutex
	m map[string]DecodeFunc
}

// Register registers the decoder for elements whose Doc has type typ.
// It panics if typ is already registered.
func Register(typ string, f DecodeFunc) {
	decoders.Lock()
	defer decoders.Unlock()
	if decoders.m == nil {
		decoders.m = make(map[string]DecodeFunc)
	}
	if _, ok := decoders.m[typ]; ok {
		panic("element: duplicate registration of " + typ)
	}
	decoders.m[typ] = f
}

// Decode rebuilds an element from d using the decoder registered for
// d's type.
func Decode(d Doc) (Element, error) {
	decoders.Lock()
	f := decoders.m[d.Type()]
	decoders.Unlock()
	if f == nil {
		return nil, fmt.Errorf("unknown element type %q", d.Type())
	}
	e, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", d.Type(), err)
	}
	return e, nil
}

// Registered returns the registered element types, sorted.
func Registered() []string {
	decoders.Lock()
	defer decoders.Unlock()
	var typs []string
	for typ := range decoders.m {
		typs = append(typs, typ)
	}
	sort.Strings(typs)
	return typs
}
