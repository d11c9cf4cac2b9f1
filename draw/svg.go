// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"
)

// FontFamily is the font-family of SVG output.
var FontFamily = `Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif`

// WriteSVG lays out root in a width x height pixel canvas and writes
// it to w as SVG. fontSize is the default text size in pixels.
func WriteSVG(w io.Writer, root *Node, width, height int, fontSize float64) error {
	ew := &errWriter{w: w}
	root.SetLayout(0, 0, float64(width), float64(height))

	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="%s"`, fontSize, FontFamily))
	p := &painter{canvas: canvas}
	p.node(root, nil)
	canvas.End()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

type painter struct {
	canvas *svg.SVG
	clips  int
}

// node paints n. units is the coordinate system inherited by
// overlays.
func (p *painter) node(n *Node, units *Units) {
	c := p.canvas
	x, y, _, _ := n.Layout()
	iw, ih := n.inner()
	m := n.Margins
	c.Group(fmt.Sprintf(`transform="translate(%.6g,%.6g)"`, x+m.Left, y+m.Top))
	defer c.Gend()

	if n.Units != nil {
		units = n.Units
	}
	if n.Clip {
		p.clips++
		id := fmt.Sprintf("clip%d", p.clips)
		c.ClipPath(`id="` + id + `"`)
		c.Rect(0, 0, round(iw), round(ih))
		c.ClipEnd()
		c.Group(`clip-path="url(#` + id + `)"`)
	}

	t := transform{units, iw, ih}
	for _, prim := range n.Prims {
		prim.paint(c, t)
	}
	for _, o := range n.Overlays {
		p.node(o, units)
	}
	if n.Clip {
		c.Gend()
	}
	for _, cell := range n.cells {
		p.node(cell, nil)
	}
}
