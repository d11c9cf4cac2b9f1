// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/geoms"
	"github.com/aclements/ggdecl/guides"
	"github.com/aclements/ggdecl/scales"
	"github.com/aclements/ggdecl/stats"
)

func prices() *dataset.Dataset {
	t := table.NewBuilder(nil).
		Add("time", []float64{0, 1, 2, 3, 4}).
		Add("price", []float64{10, 12, 11, 15, 14}).
		Add("sym", []string{"a", "b", "a", "b", "a"}).
		Done()
	return dataset.New("prices", t)
}

// captureWarnings redirects Warning for the rest of the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Warning
	Warning = log.New(&buf, "", 0)
	t.Cleanup(func() { Warning = old })
	return &buf
}

func mustPlot(t *testing.T, s *Session, ds *dataset.Dataset, m Mapping) *Plot {
	t.Helper()
	p, err := s.NewPlot(ds, m)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestRenderNoLayers(t *testing.T) {
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price"))
	if _, err := p.Render(); !errors.Is(err, ErrNoLayers) {
		t.Fatalf("want ErrNoLayers, got %v", err)
	}
}

func TestEndToEnd(t *testing.T) {
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price"))
	if err := p.Add(&geoms.Point{}); err != nil {
		t.Fatal(err)
	}

	r := p.Resolve()
	for _, a := range []element.Aes{element.X, element.Y} {
		if _, ok := r.Scales[a].(*scales.Continuous); !ok {
			t.Errorf("scale for %s is %T, want *scales.Continuous", a, r.Scales[a])
		}
	}

	root, err := p.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	panels := root.Find("panel")
	if len(panels) != 1 {
		t.Fatalf("want 1 panel, got %d", len(panels))
	}
	pts := panels[0].Find("geom:point")
	if len(pts) != 1 || len(pts[0].Prims) != 5 {
		t.Fatalf("want 1 point layer with 5 marks, got %v", pts)
	}
	for _, tag := range []string{"guide:xticks", "guide:yticks"} {
		if n := len(root.Find(tag)); n != 1 {
			t.Errorf("want 1 %s node, got %d", tag, n)
		}
	}
	texts := strings.Join(root.Texts(), "\n")
	for _, want := range []string{"time", "price"} {
		if !strings.Contains(texts, want) {
			t.Errorf("rendered text %q missing label %q", texts, want)
		}
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price", "color", "sym"))
	if err := p.Add(&geoms.Point{}, &geoms.Line{}); err != nil {
		t.Fatal(err)
	}
	a, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Texts()) != len(b.Texts()) {
		t.Errorf("second render differs: %v vs %v", a.Texts(), b.Texts())
	}
	if n := len(a.Find("guide:colorkey")); n != 1 {
		t.Errorf("want 1 color key, got %d", n)
	}
	if len(p.Guides()) != 0 {
		t.Errorf("Render added guides to the plot: %v", p.Guides())
	}
}

func TestAddStatisticWithoutLayer(t *testing.T) {
	p := mustPlot(t, NewSession(), prices(), M("x", "time"))
	if err := p.Add(&stats.Bin{}); err != nil {
		t.Fatal(err)
	}
	if len(p.Layers()) != 1 {
		t.Fatalf("want 1 layer, got %d", len(p.Layers()))
	}
	l := p.Layers()[0]
	if _, ok := l.Geom().(geoms.Nil); !ok {
		t.Errorf("geometry is %T, want geoms.Nil", l.Geom())
	}
	if _, ok := l.Stat().(*stats.Bin); !ok {
		t.Errorf("statistic is %T, want *stats.Bin", l.Stat())
	}
}

func TestLayerInheritance(t *testing.T) {
	s := NewSession()
	ds := prices()
	other := prices()
	p := mustPlot(t, s, ds, M("x", "time", "y", "price"))
	err := p.Add(
		&geoms.Point{},
		NewLayer(&geoms.Line{}).WithData(other),
		NewLayer(&geoms.Line{}).WithMapping(M("x", "time", "y", "time")),
		NewLayer(&geoms.Point{}).WithMapping(Mapping{}),
	)
	if err != nil {
		t.Fatal(err)
	}
	ls := p.Layers()
	if ls[0].Data() != p.Data() {
		t.Errorf("layer 0 does not share the plot's Data")
	}
	if ls[3].Data() != p.Data() {
		t.Errorf("layer with an empty mapping does not share the plot's Data")
	}
	if ls[1].Dataset() != other || !ls[1].Mapping().Equal(p.Mapping()) || ls[1].Data() == p.Data() {
		t.Errorf("layer 1 should use its dataset with the plot mapping")
	}
	if ls[2].Dataset() != ds || ls[2].Mapping().Equal(p.Mapping()) {
		t.Errorf("layer 2 should use the plot dataset with its mapping")
	}
	if s.Len() != 2 {
		t.Errorf("session has %d datasets, want 2", s.Len())
	}
}

func TestBadMapping(t *testing.T) {
	s := NewSession()
	if _, err := s.NewPlot(prices(), M("colour", "sym")); !errors.Is(err, element.ErrUnknownAesthetic) {
		t.Errorf("unknown aesthetic: got %v", err)
	}
	if _, err := s.NewPlot(prices(), M("x", "nope")); !errors.Is(err, dataset.ErrUnknownColumn) {
		t.Errorf("unknown column: got %v", err)
	}
	if _, err := ValueOf(1.5); !errors.Is(err, ErrBadMappingValue) {
		t.Errorf("ValueOf(1.5): got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("failed plots registered %d datasets", s.Len())
	}
}

func TestEvalMappingBoolExpr(t *testing.T) {
	e, err := Expr("(price > 11) == true")
	if err != nil {
		t.Fatal(err)
	}
	d, err := EvalMapping(Mapping{element.Color: e}, prices())
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, false, true, true}
	if got, _ := d.Get(element.Color).([]bool); !reflect.DeepEqual(got, want) {
		t.Errorf("color = %v, want %v", d.Get(element.Color), want)
	}
}

func TestUnusedMappingWarns(t *testing.T) {
	buf := captureWarnings(t)
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price", "label", "sym"))
	if err := p.Add(&geoms.Point{}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Render(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "aesthetic label is mapped to sym") {
		t.Errorf("missing warning, got %q", buf.String())
	}
}

func TestStack(t *testing.T) {
	s := NewSession()
	p1 := mustPlot(t, s, prices(), M("x", "time", "y", "price"))
	p2 := mustPlot(t, s, prices(), M("x", "price"))
	p1.Add(&geoms.Point{})
	p2.Add(&geoms.Histogram{Bins: 4})
	n, err := HStack(p1, p2)
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Cells()) != 2 || len(n.Find("panel")) != 2 {
		t.Errorf("want 2 stacked panels")
	}
	empty := mustPlot(t, s, prices(), nil)
	if _, err := VStack(p1, empty); !errors.Is(err, ErrNoLayers) {
		t.Errorf("VStack with empty plot: got %v", err)
	}
}

func TestTitleGuide(t *testing.T) {
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price"))
	p.Add(&geoms.Line{}, &guides.Title{Text: "Prices"})
	root, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(root.Find("guide:title")); n != 1 {
		t.Errorf("want 1 title, got %d", n)
	}
}
