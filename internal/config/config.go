// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads ggdecl's settings.
//
// Settings come from, in increasing precedence: built-in defaults,
// a ggdecl.yaml file, GGDECL_ environment variables, and command-line
// flags that were explicitly set. Nested keys in the environment use
// a double underscore, as in GGDECL_THEME__FONT_SIZE.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aclements/ggdecl/element"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is the config file loaded from the current directory
// when none is named.
const DefaultFile = "ggdecl.yaml"

const envPrefix = "GGDECL_"

// Config is ggdecl's configuration.
type Config struct {
	Width   int           `koanf:"width"`
	Height  int           `koanf:"height"`
	Output  string        `koanf:"output"`
	Stack   string        `koanf:"stack"`
	Verbose bool          `koanf:"verbose"`
	Theme   element.Theme `koanf:"theme"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	th := element.DefaultTheme()
	return map[string]interface{}{
		"width":                 640,
		"height":                480,
		"output":                "",
		"stack":                 "v",
		"verbose":               false,
		"theme.font_size":       th.FontSize,
		"theme.title_font_size": th.TitleFontSize,
		"theme.text_color":      th.TextColor,
		"theme.tick_color":      th.TickColor,
		"theme.panel_fill":      th.PanelFill,
		"theme.grid_color":      th.GridColor,
		"theme.grid_width":      th.GridWidth,
		"theme.default_color":   th.DefaultColor,
		"theme.palette":         th.Palette,
		"theme.point_size":      th.PointSize,
		"theme.line_width":      th.LineWidth,
		"theme.bar_width":       th.BarWidth,
		"theme.guide_pad":       th.GuidePad,
		"theme.plot_margin":     th.PlotMargin,
		"theme.key_swatch":      th.KeySwatch,
	}
}

// Load loads the configuration. cfgFile names the config file; if it
// is empty, DefaultFile is used when it exists. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	// GGDECL_THEME__POINT_SIZE -> theme.point_size
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return FlagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FlagKey returns the config key set by the flag name. Flags named
// "theme-x-y" set theme.x_y. Other names are converted to snake case.
func FlagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "theme-"); ok {
		return "theme." + strings.ReplaceAll(rest, "-", "_")
	}
	return strings.ReplaceAll(name, "-", "_")
}

// Validate checks c for values that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bad output size %dx%d", c.Width, c.Height)
	}
	switch c.Stack {
	case "h", "v":
	default:
		return fmt.Errorf("stack must be h or v, not %q", c.Stack)
	}
	for _, s := range append([]string{c.Theme.TextColor, c.Theme.TickColor, c.Theme.PanelFill, c.Theme.GridColor, c.Theme.DefaultColor}, c.Theme.Palette...) {
		if _, err := element.ParseColor(s); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}
	if c.Theme.FontSize <= 0 {
		return fmt.Errorf("theme: font size must be positive")
	}
	return nil
}
