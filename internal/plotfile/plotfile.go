// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotfile reads YAML plot descriptions and builds plots
// from them.
//
// A plot file names its datasets, the plot's dataset and mapping, and
// its layers and other elements:
//
//	datasets:
//	  prices: {csv: prices.csv}
//	  trades: {json: trades.json, jq: ".trades[]"}
//	  db:     {driver: sqlite, dsn: "file:t.db", query: "select * from t"}
//	data: prices
//	mapping: {x: time, y: price, color: {expr: "price > 10"}}
//	layers:
//	  - geom: point
//	  - {geom: line, stat: smooth, data: trades, mapping: {x: t, y: p}}
//	scales:  [{type: scale.continuous, aes: [y], trans: log10}]
//	guides:  [{type: guide.title, text: Prices}]
//	coord:   {type: coord.cartesian, ymin: 0}
//
// Element entries are element documents. A bare name or a type
// without a family prefix is given the prefix of its position, so
// "point" in a layer's geom is "geom.point".
package plotfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/expr"
	"github.com/aclements/ggdecl/plot"
	"gopkg.in/yaml.v3"
)

// File is a parsed plot file.
type File struct {
	Datasets   map[string]Source      `yaml:"datasets"`
	Data       string                 `yaml:"data"`
	Mapping    map[string]interface{} `yaml:"mapping"`
	Layers     []Layer                `yaml:"layers"`
	Scales     []interface{}          `yaml:"scales"`
	Statistics []interface{}          `yaml:"statistics"`
	Guides     []interface{}          `yaml:"guides"`
	Coord      interface{}            `yaml:"coord"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Source describes where a dataset's rows come from. Exactly one of
// CSV, JSON, Bench, or Query must be set.
type Source struct {
	CSV   string `yaml:"csv"`
	JSON  string `yaml:"json"`
	JQ    string `yaml:"jq"`
	Bench string `yaml:"bench"`

	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Query  string `yaml:"query"`
}

// Layer is one layer of a plot file. Data names a dataset from the
// file's datasets.
type Layer struct {
	Geom    interface{}            `yaml:"geom"`
	Stat    interface{}            `yaml:"stat"`
	Data    string                 `yaml:"data"`
	Mapping map[string]interface{} `yaml:"mapping"`
}

// Parse parses a plot file. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the plot file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Build loads f's datasets and builds its plot in session s. Each
// dataset is loaded once, so every reference to the same name shares
// one *dataset.Dataset.
func (f *File) Build(ctx context.Context, s *plot.Session) (*plot.Plot, error) {
	dss, err := f.LoadDatasets(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := lookup(dss, f.Data)
	if err != nil {
		return nil, err
	}
	m, err := Mapping(f.Mapping)
	if err != nil {
		return nil, err
	}
	p, err := s.NewPlot(ds, m)
	if err != nil {
		return nil, err
	}
	if err := f.addElements(p, dss); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (f *File) addElements(p *plot.Plot, dss map[string]*dataset.Dataset) error {
	for i, l := range f.Layers {
		b, err := l.builder(dss)
		if err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if err := p.Add(b); err != nil {
			return err
		}
	}
	for _, group := range []struct {
		family  string
		entries []interface{}
	}{
		{"scale", f.Scales},
		{"guide", f.Guides},
	} {
		for _, ent := range group.entries {
			e, err := Element(group.family, ent)
			if err != nil {
				return err
			}
			if err := p.Add(e); err != nil {
				return err
			}
		}
	}
	for _, ent := range f.Statistics {
		e, err := Element("stat", ent)
		if err != nil {
			return err
		}
		st, ok := e.(element.Statistic)
		if !ok {
			return fmt.Errorf("statistics: %s is a %v", e.Doc().Type(), e.Kind())
		}
		p.AddPlotStat(st)
	}
	if f.Coord != nil {
		e, err := Element("coord", f.Coord)
		if err != nil {
			return err
		}
		if err := p.Add(e); err != nil {
			return err
		}
	}
	return nil
}

func (l Layer) builder(dss map[string]*dataset.Dataset) (*plot.LayerBuilder, error) {
	if l.Geom == nil {
		return nil, fmt.Errorf("missing geom")
	}
	e, err := Element("geom", l.Geom)
	if err != nil {
		return nil, err
	}
	g, ok := e.(element.Geometry)
	if !ok {
		return nil, fmt.Errorf("geom: %s is a %v", e.Doc().Type(), e.Kind())
	}
	b := plot.NewLayer(g)
	if l.Stat != nil {
		e, err := Element("stat", l.Stat)
		if err != nil {
			return nil, err
		}
		st, ok := e.(element.Statistic)
		if !ok {
			return nil, fmt.Errorf("stat: %s is a %v", e.Doc().Type(), e.Kind())
		}
		b.WithStat(st)
	}
	if l.Data != "" {
		ds, err := lookup(dss, l.Data)
		if err != nil {
			return nil, err
		}
		b.WithData(ds)
	}
	if l.Mapping != nil {
		m, err := Mapping(l.Mapping)
		if err != nil {
			return nil, err
		}
		b.WithMapping(m)
	}
	return b, nil
}

func lookup(dss map[string]*dataset.Dataset, name string) (*dataset.Dataset, error) {
	if name == "" {
		return nil, nil
	}
	ds, ok := dss[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	return ds, nil
}

// LoadDatasets loads every dataset f names, in name order.
func (f *File) LoadDatasets(ctx context.Context) (map[string]*dataset.Dataset, error) {
	names := make([]string, 0, len(f.Datasets))
	for name := range f.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	dss := make(map[string]*dataset.Dataset, len(names))
	for _, name := range names {
		ds, err := f.Datasets[name].load(ctx, name, f.Dir)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", name, err)
		}
		dss[name] = ds
	}
	return dss, nil
}

func (src Source) load(ctx context.Context, name, dir string) (*dataset.Dataset, error) {
	n := 0
	for _, s := range []string{src.CSV, src.JSON, src.Bench, src.Query} {
		if s != "" {
			n++
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("exactly one of csv, json, bench, or query must be set")
	}
	if src.Query != "" {
		db, err := dataset.OpenSQL(src.Driver, src.DSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return dataset.QuerySQL(ctx, db, name, src.Query)
	}

	var path string
	var read func(string, io.Reader) (*dataset.Dataset, error)
	switch {
	case src.CSV != "":
		path, read = src.CSV, dataset.ReadCSV
	case src.Bench != "":
		path, read = src.Bench, dataset.ReadBenchmarks
	default:
		path = src.JSON
		read = func(name string, r io.Reader) (*dataset.Dataset, error) {
			return dataset.ReadJSON(name, r, src.JQ)
		}
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return read(name, r)
}

// Mapping converts a plot file mapping to a plot.Mapping. Strings are
// column names, integers are column positions, and {expr: src} is an
// expression.
func Mapping(m map[string]interface{}) (plot.Mapping, error) {
	out := plot.Mapping{}
	for k, v := range m {
		if em, ok := v.(map[string]interface{}); ok {
			src, ok := em["expr"].(string)
			if !ok || len(em) != 1 {
				return nil, fmt.Errorf("aesthetic %s: %w: %v", k, plot.ErrBadMappingValue, v)
			}
			e, err := expr.Parse(src)
			if err != nil {
				return nil, fmt.Errorf("aesthetic %s: %w", k, err)
			}
			out[element.Aes(k)] = plot.Expression{Expr: e}
			continue
		}
		val, err := plot.ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("aesthetic %s: %w", k, err)
		}
		out[element.Aes(k)] = val
	}
	return out, nil
}

// Element decodes a plot file element entry of the given family. ent
// is either a type name or a map with a "type" key.
func Element(family string, ent interface{}) (element.Element, error) {
	d := element.Doc{}
	switch ent := ent.(type) {
	case string:
		d["type"] = ent
	case map[string]interface{}:
		for k, v := range ent {
			d[k] = v
		}
	default:
		return nil, fmt.Errorf("%s: entry must be a name or a map, not %T", family, ent)
	}
	typ := d.Type()
	if typ == "" {
		return nil, fmt.Errorf("%s: missing type", family)
	}
	if !strings.Contains(typ, ".") {
		d["type"] = family + "." + typ
	}
	return element.Decode(d)
}
