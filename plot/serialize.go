// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/expr"
)

// ErrInlineData is returned when a plot document would have to carry
// a dataset's values rather than a reference to a registered dataset.
var ErrInlineData = errors.New("inline data sources are not supported")

// PlotDoc is the serialized form of a Plot.
//
// DataSource is nil (JSON null) for a plot created without a dataset,
// whose layers all name their own. Every other data source, in the
// plot or a layer, is a Ref.
type PlotDoc struct {
	Layers     []LayerDoc    `json:"layers"`
	Scales     []element.Doc `json:"scales"`
	Statistics []element.Doc `json:"statistics"`
	Coord      element.Doc   `json:"coord"`
	Guides     []element.Doc `json:"guides"`
	Mapping    MappingDoc    `json:"mapping"`
	DataSource *RefDoc       `json:"data_source"`
}

// LayerDoc is the serialized form of a Layer.
type LayerDoc struct {
	DataSource *RefDoc     `json:"data_source"`
	Mapping    MappingDoc  `json:"mapping"`
	Statistic  element.Doc `json:"statistic"`
	Geom       element.Doc `json:"geom"`
}

// RefDoc refers to a dataset registered in a Session.
type RefDoc struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// MappingDoc is the serialized form of a Mapping.
type MappingDoc map[string]ValueDoc

// ValueDoc is one serialized mapping value. Type is "String", "Int",
// or "Expr".
type ValueDoc struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Serialize returns the document form of p. Datasets are written as
// references to p's session, so the document can only be deserialized
// by the same session.
func Serialize(p *Plot) (*PlotDoc, error) {
	ref, err := p.ref(p.ds)
	if err != nil {
		return nil, err
	}
	doc := &PlotDoc{
		Mapping:    serializeMapping(p.mapping),
		DataSource: ref,
		Coord:      p.coord.Doc(),
		Layers:     []LayerDoc{},
		Scales:     docs(p.scales),
		Statistics: docs(p.plotStats),
		Guides:     docs(p.guides),
	}
	for i, l := range p.layers {
		ld, err := SerializeLayer(p, l)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		doc.Layers = append(doc.Layers, *ld)
	}
	return doc, nil
}

// SerializeLayer returns the document form of l, a layer of p.
func SerializeLayer(p *Plot, l *Layer) (*LayerDoc, error) {
	ref, err := p.ref(l.ds)
	if err != nil {
		return nil, err
	}
	return &LayerDoc{
		DataSource: ref,
		Mapping:    serializeMapping(l.mapping),
		Statistic:  l.stat.Doc(),
		Geom:       l.geom.Doc(),
	}, nil
}

func (p *Plot) ref(ds *dataset.Dataset) (*RefDoc, error) {
	if ds == nil {
		return nil, nil
	}
	id, ok := p.session.ID(ds)
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", ds, ErrInlineData)
	}
	return &RefDoc{Type: "Ref", Value: id}, nil
}

func docs[E element.Element](es []E) []element.Doc {
	out := make([]element.Doc, 0, len(es))
	for _, e := range es {
		out = append(out, e.Doc())
	}
	return out
}

func serializeMapping(m Mapping) MappingDoc {
	out := MappingDoc{}
	for _, a := range m.Aes() {
		switch v := m[a].(type) {
		case Column:
			out[string(a)] = ValueDoc{"String", string(v)}
		case Position:
			out[string(a)] = ValueDoc{"Int", int(v)}
		case Expression:
			out[string(a)] = ValueDoc{"Expr", v.String()}
		default:
			Warning.Printf("dropping mapping of %s: cannot serialize %T", a, v)
		}
	}
	return out
}

func deserializeMapping(d MappingDoc) (Mapping, error) {
	m := Mapping{}
	for name, vd := range d {
		a := element.Aes(name)
		switch vd.Type {
		case "String":
			s, ok := vd.Value.(string)
			if !ok {
				return nil, fmt.Errorf("aesthetic %s: %w: String value %v", a, ErrBadMappingValue, vd.Value)
			}
			m[a] = Column(s)
		case "Int":
			v, err := ValueOf(vd.Value)
			if err != nil {
				return nil, fmt.Errorf("aesthetic %s: %w", a, err)
			}
			if _, ok := v.(Position); !ok {
				return nil, fmt.Errorf("aesthetic %s: %w: Int value %v", a, ErrBadMappingValue, vd.Value)
			}
			m[a] = v
		case "Expr":
			s, ok := vd.Value.(string)
			if !ok {
				return nil, fmt.Errorf("aesthetic %s: %w: Expr value %v", a, ErrBadMappingValue, vd.Value)
			}
			e, err := expr.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("aesthetic %s: %w", a, err)
			}
			m[a] = Expression{e}
		default:
			Warning.Printf("dropping mapping of %s: unknown value type %q", a, vd.Type)
		}
	}
	return m, nil
}

func (s *Session) deref(r *RefDoc) (*dataset.Dataset, error) {
	if r == nil {
		return nil, nil
	}
	if r.Type != "Ref" {
		return nil, fmt.Errorf("data source of type %q: %w", r.Type, ErrInlineData)
	}
	return s.Lookup(r.Value)
}

// Deserialize rebuilds a plot from doc. Dataset references are looked
// up in s. A layer whose dataset and mapping equal the plot's shares
// the plot's Data.
func (s *Session) Deserialize(doc *PlotDoc) (*Plot, error) {
	ds, err := s.deref(doc.DataSource)
	if err != nil {
		return nil, err
	}
	m, err := deserializeMapping(doc.Mapping)
	if err != nil {
		return nil, err
	}
	p, err := s.NewPlot(ds, m)
	if err != nil {
		return nil, err
	}
	ok := false
	defer func() {
		if !ok {
			p.Close()
		}
	}()

	for i, ld := range doc.Layers {
		b, err := s.deserializeLayer(p, ld)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := p.addLayer(b); err != nil {
			return nil, err
		}
	}
	if doc.Coord != nil {
		c, err := decodeAs[element.Coordinate](doc.Coord)
		if err != nil {
			return nil, err
		}
		p.coord = c
	}
	for _, d := range doc.Scales {
		sc, err := decodeAs[element.Scale](d)
		if err != nil {
			return nil, err
		}
		p.scales = append(p.scales, sc)
	}
	for _, d := range doc.Statistics {
		st, err := decodeAs[element.Statistic](d)
		if err != nil {
			return nil, err
		}
		p.AddPlotStat(st)
	}
	for _, d := range doc.Guides {
		g, err := decodeAs[element.Guide](d)
		if err != nil {
			return nil, err
		}
		p.guides = append(p.guides, g)
	}
	ok = true
	return p, nil
}

func (s *Session) deserializeLayer(p *Plot, ld LayerDoc) (*LayerBuilder, error) {
	geom, err := decodeAs[element.Geometry](ld.Geom)
	if err != nil {
		return nil, err
	}
	b := NewLayer(geom)
	if ld.Statistic != nil {
		if b.Stat, err = decodeAs[element.Statistic](ld.Statistic); err != nil {
			return nil, err
		}
	}
	ds, err := s.deref(ld.DataSource)
	if err != nil {
		return nil, err
	}
	m, err := deserializeMapping(ld.Mapping)
	if err != nil {
		return nil, err
	}
	if ds != p.ds || !m.Equal(p.mapping) {
		b.Dataset, b.Mapping = ds, m
	}
	return b, nil
}

// decodeAs decodes d and checks that it is an element of type E.
func decodeAs[E element.Element](d element.Doc) (E, error) {
	var zero E
	e, err := element.Decode(d)
	if err != nil {
		return zero, err
	}
	x, ok := e.(E)
	if !ok {
		return zero, fmt.Errorf("%s is a %v, not a %T", d.Type(), e.Kind(), &zero)
	}
	return x, nil
}

// Marshal returns the JSON encoding of p's document.
func Marshal(p *Plot) ([]byte, error) {
	doc, err := Serialize(p)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "\t")
}

// Unmarshal rebuilds a plot from the JSON produced by Marshal.
func (s *Session) Unmarshal(data []byte) (*Plot, error) {
	var doc PlotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return s.Deserialize(&doc)
}
