/*
Package mesh creates triangulated 3D solids from closed 2D rings and writes
them as STL files.

A ring is checked for simplicity, triangulated by ear clipping and extruded
along z, which results in a watertight triangle soup: bottom cap, top cap and
side walls.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mesh

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mesh'
func tracer() tracing.Trace {
	return tracing.Select("mesh")
}

var (
	// ErrDegenerateRing indicates a ring with fewer than 3 vertices or no area.
	ErrDegenerateRing = errors.New("degenerate ring")
	// ErrTriangulation indicates a ring which could not be triangulated,
	// usually because it intersects itself.
	ErrTriangulation = errors.New("triangulation failed")
	// ErrThickness indicates a non-positive extrusion height.
	ErrThickness = errors.New("extrusion height must be positive")
)
