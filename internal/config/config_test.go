// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ggdecl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("width", 640, "")
	fs.String("stack", "v", "")
	fs.Float64("theme-point-size", 3, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "v", cfg.Stack)
	assert.Equal(t, "", cfg.File)
	assert.Equal(t, 12.0, cfg.Theme.FontSize)
	assert.Len(t, cfg.Theme.Palette, 6)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
width: 800
height: 300
stack: h
theme:
  point_size: 5
  text_color: "#000000"
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, "h", cfg.Stack)
	assert.Equal(t, 5.0, cfg.Theme.PointSize)
	assert.Equal(t, "#000000", cfg.Theme.TextColor)
	assert.Equal(t, "#666666", cfg.Theme.TickColor, "unset theme keys keep defaults")

	t.Setenv("GGDECL_WIDTH", "900")
	t.Setenv("GGDECL_THEME__POINT_SIZE", "6")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.Width)
	assert.Equal(t, 6.0, cfg.Theme.PointSize)

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--width=1000", "--theme-point-size=7"}))
	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 7.0, cfg.Theme.PointSize)
	assert.Equal(t, "h", cfg.Stack, "unset flags do not override the file")
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"stack", "stack: diagonal\n"},
		{"size", "width: 0\n"},
		{"color", "theme:\n  grid_color: white\n"},
		{"font", "theme:\n  font_size: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), nil)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "width", FlagKey("width"))
	assert.Equal(t, "theme.point_size", FlagKey("theme-point-size"))
	assert.Equal(t, "some_flag", FlagKey("some-flag"))
}

// chdir changes the working directory to dir for the rest of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
