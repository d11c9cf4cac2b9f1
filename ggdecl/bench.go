// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/aclements/ggdecl/internal/plotfile"
	"github.com/spf13/cobra"
)

// benchFiles returns one plot file per unit. Each plots unit against
// the x key for every input, one layer per input.
func benchFiles(paths, units []string, x, color string, line bool) ([]*plotfile.File, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no benchmark files")
	}
	var files []*plotfile.File
	for _, unit := range units {
		f := &plotfile.File{
			Datasets: map[string]plotfile.Source{},
			Data:     "f0",
			Mapping:  map[string]interface{}{"x": x, "y": unit},
			Guides:   []interface{}{map[string]interface{}{"type": "guide.title", "text": unit}},
		}
		if color != "" {
			f.Mapping["color"] = color
		}
		for i, path := range paths {
			name := fmt.Sprintf("f%d", i)
			f.Datasets[name] = plotfile.Source{Bench: path}
			geoms := []string{"point"}
			if line {
				geoms = append(geoms, "line")
			}
			for _, g := range geoms {
				l := plotfile.Layer{Geom: g}
				if i > 0 {
					l.Data = name
				}
				f.Layers = append(f.Layers, l)
			}
		}
		files = append(files, f)
	}
	return files, nil
}

func (a *app) benchCmd() *cobra.Command {
	var (
		units    []string
		x, color string
		line     bool
	)
	cmd := &cobra.Command{
		Use:   "bench [flags] bench.txt...",
		Short: "Plot Go benchmark results",
		Long: `Bench reads files in the Go benchmark format and plots each unit
against a benchmark key, one plot per unit. Keys are "name", "gomaxprocs",
configuration keys, and "/key:value" components of benchmark names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := benchFiles(args, units, x, color, line)
			if err != nil {
				return err
			}
			for i, arg := range args {
				a.verbose.Printf("f%d: %s", i, filepath.Clean(arg))
			}
			return a.renderFiles(cmd.Context(), cmd.OutOrStdout(), files)
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVar(&units, "unit", []string{"ns/op"}, "plot `unit` (repeatable)")
	fs.StringVar(&x, "x", "name", "benchmark `key` for the x axis")
	fs.StringVar(&color, "color", "", "benchmark `key` to color by")
	fs.BoolVar(&line, "line", false, "connect points with lines")
	fs.StringP("output", "o", "", "write SVG to `file` (default stdout)")
	fs.Int("width", 0, "width of each plot in pixels")
	fs.Int("height", 0, "height of each plot in pixels")
	fs.String("stack", "", "stack plots (h)orizontally or (v)ertically")
	return cmd
}
