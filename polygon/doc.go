/*
Package polygon deals with closed polygonal rings: building them, checking
them for simplicity and validity, and measuring their area.

Polygons are built with a small builder API, similar to paths in package
hobby:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

The central use of this package is Validate, which inspects a densely sampled
closed curve. A curve is rejected if its path crosses itself, if it does not
form a valid polygon ring, or if it encloses no area. Validation fails closed:
any unexpected failure during the checks is reported as an overlap.

Internally a polygon keeps its ring as a contour of package
github.com/akavel/polyclip-go, which provides bounding boxes, point
containment and boolean operations. Simplicity, ring validity and area are
decided by package github.com/peterstace/simplefeatures/geom, following the
OGC simple features rules.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrSelfIntersecting indicates a path which crosses or touches itself.
	ErrSelfIntersecting = errors.New("curve self-intersects")
	// ErrInvalidPolygon indicates a ring which does not bound a region.
	ErrInvalidPolygon = errors.New("invalid polygon")
	// ErrZeroArea indicates a ring enclosing no area.
	ErrZeroArea = errors.New("zero area")
	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")
)
