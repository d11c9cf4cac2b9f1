// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestInherit(t *testing.T) {
	plot := NewAesthetics()
	plot.Set(X, []float64{1, 2})
	plot.Set(XTick, []float64{0, 5})
	plot.SetTitle(X, "time")

	layer := NewAesthetics()
	layer.Set(X, []float64{9})
	layer.Inherit(plot)

	if got := layer.Floats(X); !reflect.DeepEqual(got, []float64{9}) {
		t.Errorf("x was overwritten: %v", got)
	}
	if got := layer.Floats(XTick); !reflect.DeepEqual(got, []float64{0, 5}) {
		t.Errorf("xtick not inherited: %v", got)
	}
	if got := layer.Title(X); got != "time" {
		t.Errorf("title not inherited: %q", got)
	}
}

func TestConcat(t *testing.T) {
	a, b := NewAesthetics(), NewAesthetics()
	a.Set(X, []float64{1, 2})
	a.SetLevels(Color, []string{"a"})
	b.Set(X, []int{3})
	b.Set(Y, []string{"u"})
	a.Set(ColorKeyLabels, []string{"k1"})
	b.Set(ColorKeyLabels, []string{"k1"})
	b.SetLevels(Color, []string{"b"})

	c := Concat(a, b)
	if got := c.Floats(X); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("x = %v", got)
	}
	if got := c.Strings(Y); !reflect.DeepEqual(got, []string{"u"}) {
		t.Errorf("y = %v", got)
	}
	if got := c.Strings(ColorKeyLabels); !reflect.DeepEqual(got, []string{"k1"}) {
		t.Errorf("key labels = %v", got)
	}
	if got := c.Levels(Color); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("levels = %v", got)
	}

	mixed := concatSlices([]table.Slice{[]int{1}, []string{"x"}})
	if !reflect.DeepEqual(mixed, []string{"1", "x"}) {
		t.Errorf("mixed concat = %#v", mixed)
	}
}

func TestLabel(t *testing.T) {
	a := NewAesthetics()
	if got := a.Label(X, 2.5); got != "2.5" {
		t.Errorf("default label = %s", got)
	}
	a.SetLabeler(X, func(v float64) string { return "L" })
	if got := a.Label(X, 2.5); got != "L" {
		t.Errorf("labeler label = %s", got)
	}
}

func TestCheckMappable(t *testing.T) {
	for _, a := range []Aes{X, YMin, Color, Group} {
		if err := CheckMappable(a); err != nil {
			t.Errorf("%s: %v", a, err)
		}
	}
	for _, a := range []Aes{"colour", XTick, ""} {
		if err := CheckMappable(a); !errors.Is(err, ErrUnknownAesthetic) {
			t.Errorf("%q: want ErrUnknownAesthetic, got %v", a, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		s    string
		want color.Color
	}{
		{"#4c72b0", color.NRGBA{0x4c, 0x72, 0xb0, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
	} {
		got, err := ParseColor(test.s)
		if err != nil || got != test.want {
			t.Errorf("ParseColor(%s) = %v, %v", test.s, got, err)
		}
	}
	for _, bad := range []string{"red", "#12345", "#gggggg", "4c72b0"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%s) succeeded", bad)
		}
	}
}

func TestDocHelpers(t *testing.T) {
	d := Doc{
		"type":  "scale.test",
		"aes":   []interface{}{"x", "xmin"},
		"min":   3,
		"max":   4.5,
		"bad":   "x",
		"ticks": []interface{}{1, 2.5},
	}
	if got := d.AesList("aes", nil); !reflect.DeepEqual(got, []Aes{X, XMin}) {
		t.Errorf("AesList = %v", got)
	}
	if v := d.OptFloat("min"); v == nil || *v != 3 {
		t.Errorf("OptFloat(min) = %v", v)
	}
	if v := d.OptFloat("none"); v != nil {
		t.Errorf("OptFloat(none) = %v", *v)
	}
	if _, ok := d.Float("bad", 0); ok {
		t.Errorf("Float(bad) ok")
	}
	if got := d.Floats("ticks"); !reflect.DeepEqual(got, []float64{1, 2.5}) {
		t.Errorf("Floats = %v", got)
	}
}

type fakeScale struct{ aes []Aes }

func (s *fakeScale) Kind() Kind        { return ScaleKind }
func (s *fakeScale) Aesthetics() []Aes { return s.aes }
func (s *fakeScale) Doc() Doc {
	return Doc{"type": "test.fake", "aes": AesStrings(s.aes)}
}
func (s *fakeScale) Apply(aess []*Aesthetics, ds []*Data) error { return nil }

func TestDecode(t *testing.T) {
	Register("test.fake", func(d Doc) (Element, error) {
		return &fakeScale{d.AesList("aes", nil)}, nil
	})
	e, err := Decode((&fakeScale{[]Aes{Y}}).Doc())
	if err != nil {
		t.Fatal(err)
	}
	if got := e.(*fakeScale).aes; !reflect.DeepEqual(got, []Aes{Y}) {
		t.Errorf("decoded aes = %v", got)
	}
	if _, err := Decode(Doc{"type": "test.missing"}); err == nil {
		t.Errorf("unknown type decoded")
	}
	if s := ScaleKind.String(); s != "scale" {
		t.Errorf("ScaleKind = %s", s)
	}
}
