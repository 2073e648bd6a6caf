/*
Package session threads the state of a sketching session through a pure
reducer.

A front end holds a State value and feeds every user interaction into
Reduce, which returns the successor state:

	st := session.New(session.DefaultParams(), exporter)
	st, err = session.Reduce(st, session.Click{PX: 120, PY: 80})
	st, err = session.Reduce(st, session.Undo{})

Reduce never modifies the state it is given. After each event the curve
is fitted to the current points and validated; results are memoized, so
re-running a state is cheap. The only event with side effects is Export,
which is refused unless the current curve is a validated spline fit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package session

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'foilcurve'
func tracer() tracing.Trace {
	return tracing.Select("foilcurve")
}

var (
	// ErrNotEnoughPoints indicates an export request for fewer than 4
	// points, or for a curve which is not a spline fit.
	ErrNotEnoughPoints = errors.New("not enough points for export")
	// ErrGeometry indicates an export request for a curve which failed
	// validation.
	ErrGeometry = errors.New("curve geometry is not exportable")
	// ErrNoExporter indicates an export request to a session without exporter.
	ErrNoExporter = errors.New("no exporter configured")
)

// Warnings, reported in State.Warnings. None of them blocks the session.
const (
	WarnTooFewPoints = "at least 4 points are needed for a smooth curve"
	WarnFitFailed    = "curve fit failed, showing straight segments"
	WarnOutOfRange   = "curve leaves the coordinate range"
	WarnNoUndo       = "nothing to undo"
	WarnNoRedo       = "nothing to redo"
	WarnDuplicate    = "click already processed"
)
