// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aclements/ggdecl/internal/config"
	"github.com/aclements/ggdecl/internal/plotfile"
	"github.com/aclements/ggdecl/plot"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// version is set at build time.
var version = "devel"

// app is the state shared by ggdecl's subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	session *plot.Session

	// verbose logs progress to stderr when cfg.Verbose is set.
	verbose *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{session: plot.NewSession(), verbose: log.New(io.Discard, "ggdecl: ", 0)}
	root := &cobra.Command{
		Use:   "ggdecl",
		Short: "Render declarative grammar-of-graphics plots",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			if cfg.Verbose {
				a.verbose.SetOutput(cmd.ErrOrStderr())
			}
			if cfg.File != "" {
				a.verbose.Printf("using config file %s", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "read settings from `file` (default ./"+config.DefaultFile+")")
	pf.BoolP("verbose", "v", false, "print progress to stderr")

	root.AddCommand(
		a.renderCmd(),
		a.docCmd(),
		a.inspectCmd(),
		a.dataCmd(),
		a.benchCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ggdecl %s\n", version)
			return err
		},
	}
}

// loadFiles parses the plot files at paths concurrently.
func loadFiles(paths []string) ([]*plotfile.File, error) {
	files := make([]*plotfile.File, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := plotfile.Load(path)
			files[i] = f
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// buildPlots builds the plots of files concurrently in a's session
// and applies the configured theme. On error, no plots are returned
// and every plot that was built is closed.
func (a *app) buildPlots(ctx context.Context, files []*plotfile.File) ([]*plot.Plot, error) {
	plots := make([]*plot.Plot, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			p, err := f.Build(ctx, a.session)
			if err != nil {
				if len(files) > 1 {
					err = fmt.Errorf("plot %d: %w", i, err)
				}
				return err
			}
			th := a.cfg.Theme
			p.Theme = &th
			plots[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		closeAll(plots)
		return nil, err
	}
	a.verbose.Printf("built %d plot(s); %d dataset(s) registered", len(plots), a.session.Len())
	return plots, nil
}

func closeAll(plots []*plot.Plot) {
	for _, p := range plots {
		if p != nil {
			p.Close()
		}
	}
}
