// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/ggdecl/draw"
	"github.com/aclements/ggdecl/internal/plotfile"
	"github.com/aclements/ggdecl/plot"
	"github.com/fsnotify/fsnotify"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

// quick is a plot described by command-line flags.
type quick struct {
	data  string
	geoms []string
	maps  []string
}

func (q *quick) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&q.data, "data", "", "plot the CSV, JSON, or benchmark `file` instead of plot files")
	fs.StringArrayVar(&q.geoms, "geom", nil, "add a layer `geom[:stat]` to the --data plot (repeatable)")
	fs.StringArrayVar(&q.maps, "map", nil, "map aesthetics with shell-quoted `aes=value` pairs")
}

// inputs returns the plot files named by args, or the --data plot.
func (q *quick) inputs(args []string) ([]*plotfile.File, error) {
	if q.data == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("no plot files")
		}
		return loadFiles(args)
	}
	if len(args) != 0 {
		return nil, fmt.Errorf("--data cannot be combined with plot files")
	}
	f, err := quickFile(q.data, q.geoms, q.maps)
	if err != nil {
		return nil, err
	}
	return []*plotfile.File{f}, nil
}

// quickFile builds a plot file for dataset path with one layer per
// geom. Each geom is "name" or "name:stat". maps holds shell-quoted
// words of the form aes=value. A value that is an integer is a column
// position, "expr:src" is an expression, and anything else is a
// column name.
func quickFile(path string, geoms, maps []string) (*plotfile.File, error) {
	var src plotfile.Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		src.CSV = path
	case ".json":
		src.JSON = path
	default:
		src.Bench = path
	}
	f := &plotfile.File{
		Datasets: map[string]plotfile.Source{"data": src},
		Data:     "data",
		Mapping:  map[string]interface{}{},
	}
	for _, m := range maps {
		words, err := shellquote.Split(m)
		if err != nil {
			return nil, fmt.Errorf("--map %q: %w", m, err)
		}
		for _, w := range words {
			aes, val, ok := strings.Cut(w, "=")
			if !ok || aes == "" {
				return nil, fmt.Errorf("--map: %q is not aes=value", w)
			}
			if src, ok := strings.CutPrefix(val, "expr:"); ok {
				f.Mapping[aes] = map[string]interface{}{"expr": src}
			} else if n, err := strconv.Atoi(val); err == nil {
				f.Mapping[aes] = n
			} else {
				f.Mapping[aes] = val
			}
		}
	}
	if len(geoms) == 0 {
		geoms = []string{"point"}
	}
	for _, g := range geoms {
		geom, stat, _ := strings.Cut(g, ":")
		l := plotfile.Layer{Geom: geom}
		if stat != "" {
			l.Stat = stat
		}
		f.Layers = append(f.Layers, l)
	}
	return f, nil
}

func (a *app) renderCmd() *cobra.Command {
	var (
		q     quick
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "render [flags] [plot.yaml...]",
		Short: "Render plot files to SVG",
		Long: `Render renders each plot file and writes one SVG. Several plots are
stacked vertically, or horizontally with --stack=h.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.render(cmd.Context(), cmd.OutOrStdout(), &q, args); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if a.cfg.Output == "" {
				return fmt.Errorf("--watch requires --output")
			}
			paths := args
			if q.data != "" {
				paths = []string{q.data}
			}
			return a.watch(cmd.Context(), paths, func() {
				if err := a.render(cmd.Context(), cmd.OutOrStdout(), &q, args); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "ggdecl: %v\n", err)
				}
			})
		},
	}
	q.addFlags(cmd)
	fs := cmd.Flags()
	fs.StringP("output", "o", "", "write SVG to `file` (default stdout)")
	fs.Int("width", 0, "width of each plot in pixels")
	fs.Int("height", 0, "height of each plot in pixels")
	fs.String("stack", "", "stack several plots (h)orizontally or (v)ertically")
	fs.Float64("theme-font-size", 0, "font size in pixels")
	fs.Float64("theme-point-size", 0, "point radius in pixels")
	fs.BoolVar(&watch, "watch", false, "re-render when inputs change")
	return cmd
}

// render renders the plots named by args (or q) to the configured
// output, or stdout.
func (a *app) render(ctx context.Context, stdout io.Writer, q *quick, args []string) error {
	files, err := q.inputs(args)
	if err != nil {
		return err
	}
	return a.renderFiles(ctx, stdout, files)
}

// renderFiles renders files, stacked if there are several.
func (a *app) renderFiles(ctx context.Context, stdout io.Writer, files []*plotfile.File) error {
	plots, err := a.buildPlots(ctx, files)
	if err != nil {
		return err
	}
	defer closeAll(plots)

	var root *draw.Node
	w, h := a.cfg.Width, a.cfg.Height
	switch {
	case len(plots) == 1:
		root, err = plots[0].Render()
	case a.cfg.Stack == "h":
		root, err = plot.HStack(plots...)
		w *= len(plots)
	default:
		root, err = plot.VStack(plots...)
		h *= len(plots)
	}
	if err != nil {
		return err
	}

	out := stdout
	if a.cfg.Output != "" {
		f, err := os.Create(a.cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := draw.WriteSVG(out, root, w, h, a.cfg.Theme.FontSize); err != nil {
		return err
	}
	if a.cfg.Output != "" {
		a.verbose.Printf("wrote %s", a.cfg.Output)
	}
	return nil
}

// watch calls fn after each change to one of paths until ctx is
// done. Bursts of changes are coalesced.
func (a *app) watch(ctx context.Context, paths []string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Watch directories so editors that replace files are seen.
	watched := map[string]bool{}
	names := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		names[abs] = true
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := w.Add(dir); err != nil {
				return err
			}
			watched[dir] = true
		}
	}
	a.verbose.Printf("watching %d file(s)", len(names))

	const debounce = 100 * time.Millisecond
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if abs, _ := filepath.Abs(ev.Name); !names[abs] {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, fn)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.verbose.Printf("watch: %v", err)
		}
	}
}
