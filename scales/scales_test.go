// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/element"
)

func data(kv ...interface{}) *element.Data {
	d := element.NewData()
	for i := 0; i < len(kv); i += 2 {
		a := kv[i].(element.Aes)
		d.Set(a, kv[i+1].(table.Slice), string(a)+"col")
	}
	return d
}

func apply(t *testing.T, s element.Scale, datas ...*element.Data) []*element.Aesthetics {
	t.Helper()
	aess := make([]*element.Aesthetics, len(datas))
	for i := range aess {
		aess[i] = element.NewAesthetics()
	}
	if err := s.Apply(aess, datas); err != nil {
		t.Fatalf("%T.Apply: %v", s, err)
	}
	return aess
}

func TestContinuous(t *testing.T) {
	lo := 1.0
	s := &Continuous{Aes: element.XFamily, Trans: Sqrt, Min: &lo}
	aess := apply(t, s, data(element.X, []int{4, 9}, element.XMin, []float64{16}))
	if got := aess[0].Floats(element.X); !reflect.DeepEqual(got, []float64{2, 3}) {
		t.Errorf("x = %v", got)
	}
	if got := aess[0].Floats(element.XMin); !reflect.DeepEqual(got, []float64{4}) {
		t.Errorf("xmin = %v", got)
	}
	if got := aess[0].Floats(element.XViewMin); !reflect.DeepEqual(got, []float64{1}) {
		t.Errorf("xviewmin = %v", got)
	}
	if got := aess[0].Label(element.X, 2); got != "4" {
		t.Errorf("label(2) = %q", got)
	}
	if got := aess[0].Title(element.X); got != "xcol" {
		t.Errorf("title = %q", got)
	}

	bad := &Continuous{Aes: []element.Aes{element.X}}
	err := bad.Apply([]*element.Aesthetics{element.NewAesthetics()}, []*element.Data{data(element.X, []string{"a"})})
	if err == nil {
		t.Errorf("continuous scale accepted strings")
	}
}

func TestDiscrete(t *testing.T) {
	s := DiscreteX()
	aess := apply(t, s,
		data(element.X, []string{"b", "a"}),
		data(element.X, []string{"c", "a"}))
	if got := aess[0].Floats(element.X); !reflect.DeepEqual(got, []float64{2, 1}) {
		t.Errorf("layer 0 x = %v", got)
	}
	if got := aess[1].Floats(element.X); !reflect.DeepEqual(got, []float64{3, 1}) {
		t.Errorf("layer 1 x = %v", got)
	}
	if got := aess[1].Levels(element.X); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("levels = %v", got)
	}
	if got := aess[0].Label(element.X, 3); got != "c" {
		t.Errorf("label(3) = %q", got)
	}

	// Integers sort numerically, not as strings.
	aess = apply(t, DiscreteX(), data(element.X, []int{10, 9, 10}))
	if got := aess[0].Levels(element.X); !reflect.DeepEqual(got, []string{"9", "10"}) {
		t.Errorf("int levels = %v", got)
	}

	// Explicit levels fix the order and drop other values.
	aess = apply(t, &Discrete{Aes: []element.Aes{element.X}, Levels: []string{"z", "a"}},
		data(element.X, []string{"a", "q"}))
	got := aess[0].Floats(element.X)
	if got[0] != 2 || !math.IsNaN(got[1]) {
		t.Errorf("explicit levels x = %v", got)
	}
}

func TestDiscreteColor(t *testing.T) {
	s := &DiscreteColor{Palette: []string{"#ff0000", "#00ff00"}}
	aess := apply(t, s, data(element.Color, []string{"u", "v", "w", "u"}))
	red := color.NRGBA{0xff, 0, 0, 0xff}
	green := color.NRGBA{0, 0xff, 0, 0xff}
	want := []color.Color{red, green, red, red}
	if got := aess[0].Colors(element.Color); !reflect.DeepEqual(got, want) {
		t.Errorf("colors = %v, want %v", got, want)
	}
	if got := aess[0].Strings(element.ColorKeyLabels); !reflect.DeepEqual(got, []string{"u", "v", "w"}) {
		t.Errorf("key labels = %v", got)
	}
	if got := len(aess[0].Colors(element.ColorKeyColors)); got != 3 {
		t.Errorf("%d key colors, want 3", got)
	}

	if _, err := decodeDiscreteColor(element.Doc{"palette": []interface{}{"nope"}}); err == nil {
		t.Errorf("bad palette decoded")
	}
}

func TestContinuousColor(t *testing.T) {
	aess := apply(t, &ContinuousColor{}, data(element.Color, []float64{0, 5, 10, math.NaN()}))
	cs := aess[0].Colors(element.Color)
	if len(cs) != 4 {
		t.Fatalf("got %d colors", len(cs))
	}
	if cs[0] == cs[2] {
		t.Errorf("endpoints map to the same color %v", cs[0])
	}
	if cs[3] != color.Transparent {
		t.Errorf("NaN maps to %v", cs[3])
	}
	if got := aess[0].Strings(element.ColorKeyLabels); !reflect.DeepEqual(got, []string{"0", "2.5", "5", "7.5", "10"}) {
		t.Errorf("key labels = %v", got)
	}
}

func TestSize(t *testing.T) {
	aess := apply(t, &ContinuousSize{Min: 1, Max: 5}, data(element.Size, []int{0, 5, 10}))
	if got := aess[0].Floats(element.Size); !reflect.DeepEqual(got, []float64{1, 3, 5}) {
		t.Errorf("continuous size = %v", got)
	}
	aess = apply(t, &DiscreteSize{Min: 2, Max: 4}, data(element.Size, []string{"s", "l", "m", "s"}))
	if got := aess[0].Floats(element.Size); !reflect.DeepEqual(got, []float64{4, 2, 3, 4}) {
		t.Errorf("discrete size = %v", got)
	}
}

func TestIndexScales(t *testing.T) {
	aess := apply(t, &Group{}, data(element.Group, []string{"b", "a", "b"}))
	if got := aess[0].Ints(element.Group); !reflect.DeepEqual(got, []int{1, 0, 1}) {
		t.Errorf("group = %v", got)
	}
	aess = apply(t, &Label{}, data(element.Label, []float64{1.5, 2}))
	if got := aess[0].Strings(element.Label); !reflect.DeepEqual(got, []string{"1.5", "2"}) {
		t.Errorf("label = %v", got)
	}
}

func TestDefaults(t *testing.T) {
	if s, ok := DefaultContinuous(element.XMin).(*Continuous); !ok || !reflect.DeepEqual(s.Aes, element.XFamily) {
		t.Errorf("DefaultContinuous(xmin) = %#v", DefaultContinuous(element.XMin))
	}
	if _, ok := DefaultDiscrete(element.Y, nil).(*Discrete); !ok {
		t.Errorf("DefaultDiscrete(y) = %#v", DefaultDiscrete(element.Y, nil))
	}
	th := element.DefaultTheme()
	th.Palette = []string{"#000000"}
	if s := DefaultDiscrete(element.Color, th).(*DiscreteColor); !reflect.DeepEqual(s.Palette, th.Palette) {
		t.Errorf("discrete color palette = %v", s.Palette)
	}
	if s := DefaultContinuous(element.Shape); s != nil {
		t.Errorf("DefaultContinuous(shape) = %#v", s)
	}
}

func TestRoundTrip(t *testing.T) {
	max := 10.0
	for _, s := range []element.Scale{
		&Continuous{Aes: []element.Aes{element.Y}, Trans: Sqrt, Max: &max, Format: "%.1f"},
		&Discrete{Aes: element.XFamily, Levels: []string{"a", "b"}},
		&DiscreteColor{Palette: []string{"#123456"}},
		&ContinuousColor{},
		&ContinuousSize{Min: 1, Max: 3},
		&DiscreteSize{Min: 1, Max: 3, Levels: []string{"x"}},
		&Shape{},
		&Group{},
		&Label{},
	} {
		e, err := element.Decode(s.Doc())
		if err != nil {
			t.Errorf("%T: %v", s, err)
			continue
		}
		if !reflect.DeepEqual(e, s) {
			t.Errorf("%T: decoded %#v, want %#v", s, e, s)
		}
	}
	if _, err := element.Decode(element.Doc{"type": "scale.continuous", "trans": "cube"}); err == nil {
		t.Errorf("unknown transformation decoded")
	}
}
