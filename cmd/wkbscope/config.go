package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"wkbscope/internal/tui"
)

type fileConfig struct {
	ZoomStep   float64 `toml:"zoom_step"`
	MaxDepth   int     `toml:"max_depth"`
	TreeHeight int     `toml:"tree_height"`
	ShowPoints bool    `toml:"show_points"`
	ShowLines  bool    `toml:"show_lines"`
	ShowPolys  bool    `toml:"show_polygons"`
}

// loadOptions reads viewer defaults from path; a missing file keeps the
// built-in defaults.
func loadOptions(path string) (tui.Options, error) {
	opts := tui.DefaultOptions()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return tui.Options{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("zoom_step") && raw.ZoomStep > 1 {
		opts.ZoomStep = raw.ZoomStep
	}
	if meta.IsDefined("max_depth") && raw.MaxDepth > 0 {
		opts.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("tree_height") && raw.TreeHeight > 0 {
		opts.TreeHeight = raw.TreeHeight
	}
	if meta.IsDefined("show_points") {
		opts.ShowPoints = raw.ShowPoints
	}
	if meta.IsDefined("show_lines") {
		opts.ShowLines = raw.ShowLines
	}
	if meta.IsDefined("show_polygons") {
		opts.ShowPolys = raw.ShowPolys
	}
	return opts, nil
}
