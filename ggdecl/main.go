// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ggdecl renders declarative plot files to SVG.
//
// A plot file is a YAML description of datasets, a mapping from
// aesthetics to columns, and layers of geometries. See package
// internal/plotfile for the format. For one-off plots, the render
// command also accepts a dataset and mapping on the command line:
//
//	ggdecl render --data prices.csv --geom point --geom line:smooth \
//		--map 'x=time y=price color=expr:"price > 10"' -o prices.svg
//
// Subcommands:
//
//	render   render plot files to SVG
//	doc      print the serialized form of plot files
//	inspect  show how each aesthetic of a plot is scaled
//	data     print the datasets of plot files
//	bench    plot Go benchmark results
//	version  print the version
//
// Settings are read from ggdecl.yaml, GGDECL_ environment variables,
// and flags. See package internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetPrefix("ggdecl: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
