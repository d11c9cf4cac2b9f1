// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme holds the visual settings that are not derived from data.
// Colors are "#rrggbb" or "#rrggbbaa" strings.
type Theme struct {
	FontSize      float64  `koanf:"font_size" json:"font_size"`
	TitleFontSize float64  `koanf:"title_font_size" json:"title_font_size"`
	TextColor     string   `koanf:"text_color" json:"text_color"`
	TickColor     string   `koanf:"tick_color" json:"tick_color"`
	PanelFill     string   `koanf:"panel_fill" json:"panel_fill"`
	GridColor     string   `koanf:"grid_color" json:"grid_color"`
	GridWidth     float64  `koanf:"grid_width" json:"grid_width"`
	DefaultColor  string   `koanf:"default_color" json:"default_color"`
	Palette       []string `koanf:"palette" json:"palette"`
	PointSize     float64  `koanf:"point_size" json:"point_size"`
	LineWidth     float64  `koanf:"line_width" json:"line_width"`
	BarWidth      float64  `koanf:"bar_width" json:"bar_width"`
	GuidePad      float64  `koanf:"guide_pad" json:"guide_pad"`
	PlotMargin    float64  `koanf:"plot_margin" json:"plot_margin"`
	KeySwatch     float64  `koanf:"key_swatch" json:"key_swatch"`
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return &Theme{
		FontSize:      12,
		TitleFontSize: 16,
		TextColor:     "#222222",
		TickColor:     "#666666",
		PanelFill:     "#eeeeee",
		GridColor:     "#ffffff",
		GridWidth:     1.5,
		DefaultColor:  "#4c72b0",
		Palette:       []string{"#4c72b0", "#55a868", "#c44e52", "#8172b2", "#ccb974", "#64b5cd"},
		PointSize:     3,
		LineWidth:     2,
		BarWidth:      0.8,
		GuidePad:      4,
		PlotMargin:    10,
		KeySwatch:     12,
	}
}

// Color parses one of the theme's color strings. Unparseable colors
// are drawn black.
func (th *Theme) Color(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.Black
	}
	return c
}

// PaletteColors returns the discrete palette as colors.
func (th *Theme) PaletteColors() []color.Color {
	pal := th.Palette
	if len(pal) == 0 {
		pal = DefaultTheme().Palette
	}
	cs := make([]color.Color, len(pal))
	for i, s := range pal {
		cs[i] = th.Color(s)
	}
	return cs
}

// ParseColor parses a "#rgb", "#rrggbb", or "#rrggbbaa" color.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 || !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
