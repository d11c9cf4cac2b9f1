// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/ajstarks/svgo"
)

// Style is the paint of a primitive. A nil color means "none".
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	Opacity     float64 // 0 means opaque
	FontSize    float64 // pixels; 0 inherits
	Dash        string  // SVG stroke-dasharray
}

func (s Style) css() string {
	parts := []string{cssPaint("fill", s.Fill), cssPaint("stroke", s.Stroke)}
	if s.Stroke != nil && s.StrokeWidth > 0 {
		parts = append(parts, fmt.Sprintf("stroke-width:%.6g", s.StrokeWidth))
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		parts = append(parts, fmt.Sprintf("opacity:%.6g", s.Opacity))
	}
	if s.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%.6gpx", s.FontSize))
	}
	if s.Dash != "" {
		parts = append(parts, "stroke-dasharray:"+s.Dash)
	}
	return strings.Join(parts, ";")
}

// cssPaint returns a CSS property assignment of c to prop.
func cssPaint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	// Un-premultiply.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	s := fmt.Sprintf("%s:#%02x%02x%02x", prop, r>>8, g>>8, b>>8)
	if a != 0xffff {
		s += fmt.Sprintf(";%s-opacity:%.4g", prop, float64(a)/0xffff)
	}
	return s
}

// Hex formats c as an SVG hex color.
func Hex(c color.Color) string {
	return strings.TrimPrefix(strings.SplitN(cssPaint("", c), ";", 2)[0], ":")
}

// transform maps a node's Units to pixels in its content box.
type transform struct {
	u    *Units
	w, h float64
}

func (t transform) x(v float64) float64 {
	if t.u == nil || t.u.W == 0 {
		return v
	}
	return (v - t.u.X0) / t.u.W * t.w
}

func (t transform) y(v float64) float64 {
	if t.u == nil || t.u.H == 0 {
		return v
	}
	return (v - t.u.Y0) / t.u.H * t.h
}

// Prim is a drawing primitive.
type Prim interface {
	paint(c *svg.SVG, t transform)
}

// Marker shapes.
const (
	ShapeCircle = iota
	ShapeSquare
	ShapeTriangle
	ShapeDiamond
	ShapeCross
	numShapes
)

// Marker is a point marker centered at (X, Y). R is its radius in
// pixels.
type Marker struct {
	X, Y, R float64
	Shape   int
	Style   Style
}

// Path is a polyline through (Xs[i], Ys[i]). Non-finite points break
// the line.
type Path struct {
	Xs, Ys []float64
	Closed bool
	Style  Style
}

// Rect is a rectangle with corners (X0, Y0) and (X1, Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

// Anchors for Text.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Text is a string drawn at (X, Y) offset by (Dx, Dy) pixels. Rotate
// is in degrees clockwise. VAlign is the vertical position of (X, Y)
// relative to the text: "top", "middle", or "" for baseline.
type Text struct {
	X, Y, Dx, Dy float64
	S            string
	Anchor       string
	VAlign       string
	Rotate       float64
	Style        Style
}

func (m *Marker) paint(c *svg.SVG, t transform) {
	x, y, r := t.x(m.X), t.y(m.Y), m.R
	if !isFinite(x) || !isFinite(y) {
		return
	}
	style := m.Style.css()
	switch m.Shape % numShapes {
	case ShapeCircle:
		c.Circle(round(x), round(y), round(math.Max(r, 1)), style)
	case ShapeSquare:
		c.Path(polyPath([]float64{x - r, x + r, x + r, x - r}, []float64{y - r, y - r, y + r, y + r}, true), style)
	case ShapeTriangle:
		c.Path(polyPath([]float64{x, x + r, x - r}, []float64{y - r, y + r, y + r}, true), style)
	case ShapeDiamond:
		c.Path(polyPath([]float64{x, x + r, x, x - r}, []float64{y - r, y, y + r, y}, true), style)
	case ShapeCross:
		p := polyPath([]float64{x - r, x + r}, []float64{y - r, y + r}, false) +
			polyPath([]float64{x - r, x + r}, []float64{y + r, y - r}, false)
		if m.Style.Stroke == nil {
			m2 := m.Style
			m2.Stroke, m2.StrokeWidth = m.Style.Fill, 2
			style = m2.css()
		}
		c.Path(p, style)
	}
}

func (p *Path) paint(c *svg.SVG, t transform) {
	xs := make([]float64, len(p.Xs))
	ys := make([]float64, len(p.Ys))
	for i := range xs {
		xs[i], ys[i] = t.x(p.Xs[i]), t.y(p.Ys[i])
	}
	if d := polyPath(xs, ys, p.Closed); d != "" {
		c.Path(d, p.Style.css())
	}
}

func (r *Rect) paint(c *svg.SVG, t transform) {
	x0, y0, x1, y1 := t.x(r.X0), t.y(r.Y0), t.x(r.X1), t.y(r.Y1)
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	c.Path(polyPath([]float64{x0, x1, x1, x0}, []float64{y0, y0, y1, y1}, true), r.Style.css())
}

func (tx *Text) paint(c *svg.SVG, t transform) {
	x, y := t.x(tx.X)+tx.Dx, t.y(tx.Y)+tx.Dy
	if !isFinite(x) || !isFinite(y) {
		return
	}
	attrs := []string{}
	if tx.Anchor != "" {
		attrs = append(attrs, `text-anchor="`+tx.Anchor+`"`)
	}
	switch tx.VAlign {
	case "top":
		attrs = append(attrs, `dy=".8em"`)
	case "middle":
		attrs = append(attrs, `dy=".3em"`)
	}
	if tx.Rotate != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%.6g %d %d)"`, tx.Rotate, round(x), round(y)))
	}
	if tx.Style.Fill == nil {
		tx.Style.Fill = color.Black
	}
	attrs = append(attrs, `style="`+tx.Style.css()+`"`)
	c.Text(round(x), round(y), tx.S, attrs...)
}

// polyPath returns SVG path data through the finite points of xs and
// ys.
func polyPath(xs, ys []float64, closed bool) string {
	var path []byte
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, 'L')
		}
		path = appendCoord(path, xs[i])
		path = append(path, ' ')
		path = appendCoord(path, ys[i])
	}
	if closed && len(path) > 0 {
		path = append(path, 'Z')
	}
	return string(path)
}

// appendCoord appends x to b. Negative zero is written as 0.
func appendCoord(b []byte, x float64) []byte {
	if x == 0 {
		x = 0
	}
	return strconv.AppendFloat(b, x, 'g', 6, 64)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
