/*
Package config holds the settings of a curve sketching session: canvas and
coordinate range, grid, fitting parameters and export targets.

Configuration files are YAML or TOML, selected by file extension. Keys
missing from a file keep their default values. Out-of-range values are
clamped the way the interactive sketcher clamps its input fields.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'foilcurve'
func tracer() tracing.Trace {
	return tracing.Select("foilcurve")
}

var (
	// ErrFormat indicates a configuration file with an unknown extension.
	ErrFormat = errors.New("unsupported configuration format")
	// ErrInvalid indicates a setting which cannot be clamped into shape.
	ErrInvalid = errors.New("invalid configuration")
)

// Fitting methods.
const (
	MethodBSpline = "bspline"
	MethodHobby   = "hobby"
)

// Limits for clamped settings.
const (
	MinNumPoints = 100
	MaxNumPoints = 1000
	MinGridStep  = 0.01
	MaxGridStep  = 1.0
)

// Config is the complete set of session settings.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas" toml:"canvas"`
	Range  RangeConfig  `yaml:"range" toml:"range"`
	Grid   GridConfig   `yaml:"grid" toml:"grid"`
	Fit    FitConfig    `yaml:"fit" toml:"fit"`
	Export ExportConfig `yaml:"export" toml:"export"`
}

// CanvasConfig is the drawing area size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// RangeConfig is the coordinate range shown on the canvas.
type RangeConfig struct {
	XMin float64 `yaml:"x_min" toml:"x_min"`
	XMax float64 `yaml:"x_max" toml:"x_max"`
	YMin float64 `yaml:"y_min" toml:"y_min"`
	YMax float64 `yaml:"y_max" toml:"y_max"`
}

// GridConfig holds grid line spacing per axis.
type GridConfig struct {
	XStep float64 `yaml:"x_step" toml:"x_step"`
	YStep float64 `yaml:"y_step" toml:"y_step"`
}

// FitConfig holds the curve fitting parameters.
type FitConfig struct {
	NumPoints  int     `yaml:"num_points" toml:"num_points"`
	Smoothness float64 `yaml:"smoothness" toml:"smoothness"`
	Method     string  `yaml:"method" toml:"method"`
}

// ExportConfig names the export targets and solid dimensions.
type ExportConfig struct {
	Dir       string  `yaml:"dir" toml:"dir"`
	TextFile  string  `yaml:"text_file" toml:"text_file"`
	SolidFile string  `yaml:"solid_file" toml:"solid_file"`
	Chord     float64 `yaml:"chord" toml:"chord"`
	Thickness float64 `yaml:"thickness" toml:"thickness"`
	ASCII     bool    `yaml:"ascii" toml:"ascii"`
}

// Default returns the settings of a fresh sketching session.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 600, Height: 300},
		Range:  RangeConfig{XMin: 0, XMax: 1, YMin: -0.5, YMax: 0.5},
		Grid:   GridConfig{XStep: 0.05, YStep: 0.05},
		Fit:    FitConfig{NumPoints: 500, Smoothness: 0.0001, Method: MethodBSpline},
		Export: ExportConfig{
			Dir:       ".",
			TextFile:  "airfoil_coordinates.txt",
			SolidFile: "airfoil.stl",
			Chord:     1.0,
			Thickness: 0.001,
		},
	}
}

// Load reads a configuration file on top of the defaults and normalizes the
// result. Files ending in .yaml or .yml are read as YAML, files ending in
// .toml as TOML. A leading '~' in path is expanded.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := Default()
	if err = unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = conf.Normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("configuration loaded from %s", path)
	return conf, nil
}

// Normalize clamps settings into their valid ranges. It returns an error
// for settings which have no sensible clamped value.
func (conf *Config) Normalize() error {
	def := Default()
	if conf.Canvas.Width <= 0 || conf.Canvas.Height <= 0 {
		conf.Canvas = def.Canvas
	}
	r := conf.CoordinateRange().Clamped()
	conf.Range = RangeConfig{XMin: r.X.Min, XMax: r.X.Max, YMin: r.Y.Min, YMax: r.Y.Max}
	conf.Grid.XStep = clamp(conf.Grid.XStep, MinGridStep, MaxGridStep)
	conf.Grid.YStep = clamp(conf.Grid.YStep, MinGridStep, MaxGridStep)
	conf.Fit.NumPoints = min(max(conf.Fit.NumPoints, MinNumPoints), MaxNumPoints)
	if !(conf.Fit.Smoothness >= 0) {
		conf.Fit.Smoothness = 0
	}
	conf.Fit.Method = strings.ToLower(strings.TrimSpace(conf.Fit.Method))
	switch conf.Fit.Method {
	case "":
		conf.Fit.Method = MethodBSpline
	case MethodBSpline, MethodHobby:
	default:
		return fmt.Errorf("%w: unknown fit method %q", ErrInvalid, conf.Fit.Method)
	}
	if !(conf.Export.Chord > 0) {
		return fmt.Errorf("%w: chord length %g", ErrInvalid, conf.Export.Chord)
	}
	if !(conf.Export.Thickness > 0) {
		return fmt.Errorf("%w: thickness %g", ErrInvalid, conf.Export.Thickness)
	}
	if conf.Export.Dir == "" {
		conf.Export.Dir = def.Export.Dir
	}
	dir, err := homedir.Expand(conf.Export.Dir)
	if err != nil {
		return err
	}
	conf.Export.Dir = dir
	if conf.Export.TextFile == "" {
		conf.Export.TextFile = def.Export.TextFile
	}
	if conf.Export.SolidFile == "" {
		conf.Export.SolidFile = def.Export.SolidFile
	}
	return nil
}

// CoordinateRange returns the configured range.
func (conf *Config) CoordinateRange() foilcurve.CoordinateRange {
	return foilcurve.NewCoordinateRange(conf.Range.XMin, conf.Range.XMax, conf.Range.YMin, conf.Range.YMax)
}

// CanvasSize returns the configured canvas.
func (conf *Config) CanvasSize() foilcurve.Canvas {
	return foilcurve.Canvas{Width: conf.Canvas.Width, Height: conf.Canvas.Height}
}

// GridLines returns the x and y positions of the grid lines.
func (conf *Config) GridLines() ([]float64, []float64) {
	r := conf.CoordinateRange()
	return foilcurve.GridLines(r.X, conf.Grid.XStep), foilcurve.GridLines(r.Y, conf.Grid.YStep)
}

// TextPath is the path of the coordinate file.
func (conf *Config) TextPath() string {
	return filepath.Join(conf.Export.Dir, conf.Export.TextFile)
}

// SolidPath is the path of the STL file.
func (conf *Config) SolidPath() string {
	return filepath.Join(conf.Export.Dir, conf.Export.SolidFile)
}

func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
