/*
Command foilcurve fits, validates and exports closed airfoil outlines.

	foilcurve fit points.txt            fit a curve through points, print it
	foilcurve fit --export points.txt   fit, validate and write text + STL
	foilcurve check curve.txt           check a sampled curve for overlaps
	foilcurve solid curve.txt out.stl   extrude a coordinate file into a solid
	foilcurve sketch script.txt         replay a sketching session
	foilcurve watch points.txt          re-run fit and export on every change

Settings are read from a YAML or TOML file given with --config.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/foilcurve/config"
	"github.com/npillmayer/foilcurve/session"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'foilcurve'
func tracer() tracing.Trace {
	return tracing.Select("foilcurve")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the settings shared by all commands.
type app struct {
	configPath string
	conf       *config.Config
	numPoints  int
	smoothness float64
	method     string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "foilcurve",
		Short:         "Fit, validate and export closed airfoil curves",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file (.yaml, .yml or .toml)")
	flags.IntVarP(&a.numPoints, "num-points", "n", 0, "number of curve samples (100..1000)")
	flags.Float64VarP(&a.smoothness, "smoothness", "s", -1, "smoothing factor, 0 interpolates")
	flags.StringVarP(&a.method, "method", "m", "", "fit method: bspline or hobby")
	root.AddCommand(
		newFitCmd(a),
		newCheckCmd(a),
		newSolidCmd(a),
		newSketchCmd(a),
		newWatchCmd(a),
	)
	return root
}

// loadConfig reads the configuration file, if any, and applies the fit flags
// on top of it.
func (a *app) loadConfig(cmd *cobra.Command) error {
	if a.configPath == "" {
		a.conf = config.Default()
	} else {
		conf, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.conf = conf
	}
	flags := cmd.Flags()
	if flags.Changed("num-points") {
		a.conf.Fit.NumPoints = a.numPoints
	}
	if flags.Changed("smoothness") {
		a.conf.Fit.Smoothness = a.smoothness
	}
	if flags.Changed("method") {
		a.conf.Fit.Method = a.method
	}
	if err := a.conf.Normalize(); err != nil {
		return fmt.Errorf("command line: %w", err)
	}
	return nil
}

// newSession creates a session with the configured parameters, exporting
// to the configured files.
func (a *app) newSession() session.State {
	return session.New(session.ParamsFromConfig(a.conf), a.exporter())
}
