// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/plot"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func (a *app) docCmd() *cobra.Command {
	var q quick
	cmd := &cobra.Command{
		Use:   "doc [flags] [plot.yaml...]",
		Short: "Print the serialized form of plot files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := q.inputs(args)
			if err != nil {
				return err
			}
			plots, err := a.buildPlots(cmd.Context(), files)
			if err != nil {
				return err
			}
			defer closeAll(plots)
			for _, p := range plots {
				b, err := plot.Marshal(p)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b); err != nil {
					return err
				}
			}
			return nil
		},
	}
	q.addFlags(cmd)
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	var q quick
	cmd := &cobra.Command{
		Use:   "inspect [flags] [plot.yaml...]",
		Short: "Show the scale and guides each plot resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := q.inputs(args)
			if err != nil {
				return err
			}
			plots, err := a.buildPlots(cmd.Context(), files)
			if err != nil {
				return err
			}
			defer closeAll(plots)
			for _, p := range plots {
				writeResolution(cmd.OutOrStdout(), p.Resolve())
			}
			return nil
		},
	}
	q.addFlags(cmd)
	return cmd
}

// writeResolution prints a table of each used or mapped aesthetic
// with its scale and source, followed by the plot's guides.
func writeResolution(w io.Writer, r *plot.Resolution) {
	set := map[element.Aes]bool{}
	for a := range r.Used {
		set[a] = true
	}
	for a := range r.Mapped {
		set[a] = true
	}
	as := make([]element.Aes, 0, len(set))
	for a := range set {
		as = append(as, a)
	}
	element.SortAes(as)

	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)
	t.AppendHeader(prettytable.Row{"aesthetic", "scale", "mapped to", "used"})
	for _, a := range as {
		scale := "(unscaled)"
		if s := r.Scales[a]; s != nil {
			scale = s.Doc().Type()
		}
		src := "-"
		if v, ok := r.Mapped[a]; ok {
			src = v.String()
		}
		used := ""
		if r.Used[a] {
			used = "yes"
		}
		t.AppendRow(prettytable.Row{a, scale, src, used})
	}
	t.Render()

	var gs []string
	for _, g := range r.Guides {
		gs = append(gs, g.Doc().Type())
	}
	var ss []string
	for _, s := range r.PlotStats {
		ss = append(ss, s.Doc().Type())
	}
	fmt.Fprintf(w, "guides: %s\nplot statistics: %s\n", strings.Join(gs, ", "), strings.Join(ss, ", "))
}

func (a *app) dataCmd() *cobra.Command {
	var q quick
	cmd := &cobra.Command{
		Use:   "data [flags] [plot.yaml...]",
		Short: "Print the datasets of plot files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := q.inputs(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, f := range files {
				dss, err := f.LoadDatasets(cmd.Context())
				if err != nil {
					return err
				}
				names := make([]string, 0, len(dss))
				for name := range dss {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					ds := dss[name]
					fmt.Fprintf(w, "# %s (%d rows)\n", name, ds.Len())
					if err := table.Fprint(w, ds.Table()); err != nil {
						return err
					}
					fmt.Fprintln(w)
				}
			}
			return nil
		},
	}
	q.addFlags(cmd)
	return cmd
}
