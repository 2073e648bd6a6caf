/*
Package pointstore holds the ordered sequence of sketched points together
with a linear undo/redo history.

The store is driven by an interactive front end which re-executes its whole
pipeline on every user event. Two guards keep such re-runs from corrupting
the history: a click identical to the last processed click is ignored, and
a suppress flag, raised by undo, redo and clear, keeps the restored point
sequence from being pushed as a new snapshot until the next point intake.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pointstore

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'foilcurve'
func tracer() tracing.Trace {
	return tracing.Select("foilcurve")
}
