/*
Package hobby fits a smooth closed curve through a sequence of knots, using
John Hobby's algorithm as known from MetaFont and MetaPost.

Compared to a smoothing B-spline, a Hobby spline always passes through every
knot and needs no smoothing parameter: the tangent directions at the knots
are chosen such that the mock curvature is continuous. All knots are
standard smooth knots with tension 1; the path is always a cycle.

	path := Nullpath().Knot(P(1,1)).Knot(P(2,2)).Knot(P(3,1)).Knot(P(2,0)).Cycle()
	controls, err := FindControls(path)

yields the Bézier control points of a curve close to a circle:

	(1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
	 .. (2,2) .. controls (2.5523,2.0000) and (3.0000,1.5523)
	 .. (3,1) .. controls (3.0000,0.4477) and (2.5523,0.0000)
	 .. (2,0) .. controls (1.4477,0.0000) and (1.0000,0.4477)
	 .. cycle

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hobby

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const _epsilon = 0.0000001

var (
	// ErrTooFewKnots indicates a path with fewer than 3 distinct knots.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrOpenPath indicates a path which has not been closed by Cycle().
	ErrOpenPath = errors.New("only cyclic paths are supported")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrInvalidParameter indicates a sample count below 2.
	ErrInvalidParameter = errors.New("invalid sample count")
)
