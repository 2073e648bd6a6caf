/*
Package boundary exports a validated closed curve: as a coordinate text file,
and as an extruded 3D solid for downstream meshing.

The coordinate format has one sample per line, x and y as fixed-point
numbers with 6 decimals, separated by a tab:

	1.000000	0.000000
	0.998027	0.000712
	...
	1.000000	0.000000

There is no header. The last line repeats the first one. Readers split lines
at any whitespace, so files written by other tools load as well.

Files are written atomically: either the complete file replaces its
predecessor, or an error is returned and the previous file stays in place.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package boundary

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mesh'
func tracer() tracing.Trace {
	return tracing.Select("mesh")
}

var (
	// ErrFileNotFound indicates a missing coordinate file.
	ErrFileNotFound = errors.New("coordinate file not found")
	// ErrMalformed indicates a line which does not hold two numbers.
	ErrMalformed = errors.New("malformed coordinate line")
	// ErrInvalidDimension indicates a non-positive chord length.
	ErrInvalidDimension = errors.New("chord length must be positive")
)

// SolidName is the name given to exported solids.
const SolidName = "airfoil"
