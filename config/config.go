// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads viewport settings from a TOML file.
//
// The file maps one key per setting; all keys are optional, and settings
// absent from the file keep their defaults. Values that are present but
// invalid — an unparseable color, an out-of-range grid size — are
// reported through the viewport logger and replaced with the previous
// value, so a broken settings file degrades instead of failing.
//
//	antialias = true
//	show_grid = true
//	zoom_to_cursor = true
//	background_color = "#000"
//	axis_color = "#ffc800"
//	major_grid_color = "#c0c0c0"
//	minor_grid_color = "#404040"
//	minor_grid_size = 64
//	major_grid_every = 8
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/viewport"
)

// file is the TOML schema. Pointer fields distinguish "absent" from
// zero values.
type file struct {
	Antialias      *bool  `toml:"antialias"`
	ShowGrid       *bool  `toml:"show_grid"`
	ZoomToCursor   *bool  `toml:"zoom_to_cursor"`
	Background     string `toml:"background_color"`
	AxisColor      string `toml:"axis_color"`
	GridMajorColor string `toml:"major_grid_color"`
	GridMinorColor string `toml:"minor_grid_color"`
	GridSize       *int   `toml:"minor_grid_size"`
	GridMajorEvery *int   `toml:"major_grid_every"`
}

// Load reads the settings file at path into a fresh BaseConfig with
// defaults applied. The returned config is marked modified so an engine
// picks it up on the next frame.
func Load(path string) (*viewport.BaseConfig, error) {
	cfg := viewport.NewBaseConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads the settings file at path into an existing config,
// leaving settings the file doesn't mention untouched, and marks the
// config modified. Use it to re-apply a settings file to a live config
// at runtime.
func LoadInto(path string, cfg *viewport.BaseConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	apply(&f, cfg)
	cfg.SetModified()
	return nil
}

// apply copies the file's present, valid values onto cfg.
func apply(f *file, cfg *viewport.BaseConfig) {
	if f.Antialias != nil {
		cfg.Antialias = *f.Antialias
	}
	if f.ShowGrid != nil {
		cfg.ShowGrid = *f.ShowGrid
	}
	if f.ZoomToCursor != nil {
		cfg.ZoomToCursor = *f.ZoomToCursor
	}

	cfg.Background = colorValue(f.Background, "background_color", cfg.Background)
	cfg.AxisColor = colorValue(f.AxisColor, "axis_color", cfg.AxisColor)
	cfg.GridMajorColor = colorValue(f.GridMajorColor, "major_grid_color", cfg.GridMajorColor)
	cfg.GridMinorColor = colorValue(f.GridMinorColor, "minor_grid_color", cfg.GridMinorColor)

	cfg.GridSize = intValue(f.GridSize, "minor_grid_size", 1, cfg.GridSize)
	cfg.GridMajorEvery = intValue(f.GridMajorEvery, "major_grid_every", 1, cfg.GridMajorEvery)
}

// intValue validates an optional integer against a minimum, keeping the
// fallback and logging a warning when the value is out of range.
func intValue(v *int, name string, minValue, fallback int) int {
	if v == nil {
		return fallback
	}
	if *v < minValue {
		viewport.Logger().Warn("config: value out of range",
			slog.String("key", name), slog.Int("value", *v), slog.Int("min", minValue))
		return fallback
	}
	return *v
}

// colorValue parses an optional hex color, keeping the fallback and
// logging a warning when the string is invalid.
func colorValue(v, name string, fallback color.Color) color.Color {
	if v == "" {
		return fallback
	}
	c, err := ParseColor(v)
	if err != nil {
		viewport.Logger().Warn("config: invalid color",
			slog.String("key", name), slog.String("value", v))
		return fallback
	}
	return c
}

// ParseColor parses a hex color in "#rgb" or "#rrggbb" form.
func ParseColor(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("config: color %q missing leading '#'", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		// Expand the shortened form: #fa0 -> #ffaa00.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("config: color %q must be #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("config: color %q is not valid hex: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
