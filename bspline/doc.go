/*
Package bspline fits a smooth parametric B-spline through an ordered sequence
of points and samples it into a closed curve.

The fitting follows the classic parametric curve fitting scheme as known from
Dierckx' FITPACK: points are parameterized by cumulative chord length, the
spline degree is at most cubic, and a smoothing factor s trades fidelity for
smoothness. With s = 0 the spline interpolates all points. With s > 0 the
fitter starts with a single polynomial piece and inserts knots where the
residuals are largest, until the sum of squared residuals is at most s.

Usage

	curve, err := bspline.Fit(points, 500, 0.0001)
	if errors.Is(err, bspline.ErrTooFewPoints) {
	    // curve holds the unchanged input points: draw straight segments
	} else if err != nil {
	    curve = bspline.Polyline(points)
	}

A curve returned without error is explicitly closed: its last sample repeats
the first one bit for bit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// MinPoints is the number of points needed for a cubic fit.
const MinPoints = 4

// MaxDegree is the highest spline degree used.
const MaxDegree = 3

var (
	// ErrTooFewPoints indicates that a spline fit is not possible. It is a
	// warning: Fit returns the unchanged input points along with it.
	ErrTooFewPoints = errors.New("not enough points for a smooth spline")
	// ErrDegenerateFit indicates that the input does not admit a spline, e.g.
	// because consecutive points coincide.
	ErrDegenerateFit = errors.New("spline fit failed")
	// ErrInvalidParameter indicates a negative smoothing factor or a sample
	// count below 2.
	ErrInvalidParameter = errors.New("invalid fit parameter")
)
