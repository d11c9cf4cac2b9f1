// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aclements/ggdecl/coords"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/expr"
	"github.com/aclements/ggdecl/geoms"
	"github.com/aclements/ggdecl/guides"
	"github.com/aclements/ggdecl/scales"
	"github.com/aclements/ggdecl/stats"
)

// roundTrip serializes p through JSON and deserializes it in the
// same session.
func roundTrip(t *testing.T, p *Plot) *Plot {
	t.Helper()
	b, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	q, err := p.Session().Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, b)
	}
	t.Cleanup(q.Close)
	return q
}

func TestRoundTripSharedData(t *testing.T) {
	s := NewSession()
	p := mustPlot(t, s, prices(), M("x", "time", "y", "price"))
	p.Add(&geoms.Point{}, NewLayer(&geoms.Line{}).WithMapping(M("x", "time", "y", "time")))

	q := roundTrip(t, p)
	if q.Dataset() != p.Dataset() {
		t.Errorf("dataset was not restored by reference")
	}
	ls := q.Layers()
	if len(ls) != 2 {
		t.Fatalf("want 2 layers, got %d", len(ls))
	}
	if ls[0].Data() != q.Data() {
		t.Errorf("layer sharing the plot's dataset and mapping has its own Data")
	}
	if ls[1].Data() == q.Data() {
		t.Errorf("layer with its own mapping shares the plot's Data")
	}
	if s.Len() != 1 {
		t.Errorf("session has %d datasets, want 1", s.Len())
	}
}

func TestRoundTripMapping(t *testing.T) {
	e := expr.MustParse("log(price) * 2 + time")
	m := M("x", "time", "y", 1, "color", e)
	p := mustPlot(t, NewSession(), prices(), m)
	p.Add(&geoms.Point{})

	q := roundTrip(t, p)
	got := q.Mapping()
	if got[element.X] != Column("time") {
		t.Errorf("x = %#v, want Column(time)", got[element.X])
	}
	if got[element.Y] != Position(1) {
		t.Errorf("y = %#v, want Position(1)", got[element.Y])
	}
	ge, ok := got[element.Color].(Expression)
	if !ok || !expr.Equal(ge.Expr, e) {
		t.Errorf("color = %v, want expression %v", got[element.Color], e)
	}
	if !got.Equal(m) {
		t.Errorf("mapping %v != %v", got, m)
	}
}

func TestRoundTripElements(t *testing.T) {
	lo := 0.0
	p := mustPlot(t, NewSession(), prices(), M("x", "time", "y", "price"))
	p.Add(
		NewLayer(&geoms.Line{}).WithStat(&stats.Smooth{Method: stats.LeastSquares}),
		&scales.Continuous{Aes: []element.Aes{element.Y}, Trans: scales.Log10},
		&coords.Cartesian{YMin: &lo},
		&guides.Title{Text: "Prices"},
	)
	p.AddPlotStat(&stats.Ticks{Axis: "y", Max: 4})

	q := roundTrip(t, p)
	want, _ := Serialize(p)
	got, _ := Serialize(q)
	wb, _ := json.Marshal(want)
	gb, _ := json.Marshal(got)
	if string(wb) != string(gb) {
		t.Errorf("round trip changed document:\n got %s\nwant %s", gb, wb)
	}
	if _, ok := q.Layers()[0].Stat().(*stats.Smooth); !ok {
		t.Errorf("layer statistic is %T", q.Layers()[0].Stat())
	}
}

func TestRoundTripNoPlotData(t *testing.T) {
	s := NewSession()
	p := mustPlot(t, s, nil, nil)
	if err := p.Add(NewLayer(&geoms.Point{}).WithData(prices()).WithMapping(M("x", "time", "y", "price"))); err != nil {
		t.Fatal(err)
	}
	doc, err := Serialize(p)
	if err != nil {
		t.Fatal(err)
	}
	if doc.DataSource != nil {
		t.Errorf("plot data_source = %+v, want null", doc.DataSource)
	}
	if ref := doc.Layers[0].DataSource; ref == nil || ref.Type != "Ref" {
		t.Errorf("layer data_source = %+v, want a Ref", ref)
	}

	q := roundTrip(t, p)
	if q.Dataset() != nil {
		t.Errorf("round trip gave plot dataset %v", q.Dataset())
	}
	if q.Layers()[0].Dataset() != p.Layers()[0].Dataset() {
		t.Errorf("layer dataset not preserved by reference")
	}
}

func TestSerializeUnregistered(t *testing.T) {
	s := NewSession()
	p := mustPlot(t, s, prices(), M("x", "time"))
	p.Add(&geoms.Point{})
	p.Close()
	if _, err := Serialize(p); !errors.Is(err, ErrInlineData) {
		t.Errorf("serializing released dataset: got %v", err)
	}
}

func TestDeserializeErrors(t *testing.T) {
	s := NewSession()
	if _, err := s.Deserialize(&PlotDoc{DataSource: &RefDoc{"Ref", "0123"}}); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("missing ref: got %v", err)
	}
	if _, err := s.Deserialize(&PlotDoc{DataSource: &RefDoc{"Inline", ""}}); !errors.Is(err, ErrInlineData) {
		t.Errorf("inline data: got %v", err)
	}

	ds := prices()
	id := s.Register(ds)
	defer s.Release(id)
	doc := &PlotDoc{
		DataSource: &RefDoc{"Ref", id},
		Mapping:    MappingDoc{"x": {"String", "time"}},
		Layers:     []LayerDoc{{Geom: element.Doc{"type": "scale.discrete"}}},
	}
	if _, err := s.Deserialize(doc); err == nil || !strings.Contains(err.Error(), "not a") {
		t.Errorf("scale as geometry: got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("failed deserialize leaked registrations: %d", s.Len())
	}
}

func TestUnknownWireType(t *testing.T) {
	buf := captureWarnings(t)
	m, err := deserializeMapping(MappingDoc{"x": {"Lambda", "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0 {
		t.Errorf("unknown value type was kept: %v", m)
	}
	if !strings.Contains(buf.String(), `unknown value type "Lambda"`) {
		t.Errorf("missing warning, got %q", buf.String())
	}
}

func TestSession(t *testing.T) {
	s := NewSession()
	a, b := prices(), prices()
	ida := s.Register(a)
	if s.Register(a) != ida {
		t.Errorf("re-registering returned a new id")
	}
	idb := s.Register(b)
	if ida == idb || len(ida) != 32 {
		t.Errorf("bad ids %q %q", ida, idb)
	}
	if got, err := s.Lookup(ida); err != nil || got != a {
		t.Errorf("Lookup = %v, %v", got, err)
	}
	s.Release(ida)
	if _, err := s.Lookup(ida); err != nil {
		t.Errorf("released one of two references: %v", err)
	}
	s.Release(ida)
	if _, err := s.Lookup(ida); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Lookup after release: %v", err)
	}
	if _, ok := s.ID(a); ok {
		t.Errorf("evicted dataset still has an id")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
