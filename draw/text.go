// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MeasureText returns the approximate width and leading in pixels of
// s set in a font of pixel size size.
//
// Widths come from the metrics of the 7x13 bitmap face scaled to
// size.
func MeasureText(s string, size float64) (width, leading float64) {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)
	scale := size / float64(face.Height)
	return float64(adv) / 64 * scale, 1.25 * size
}
