package session

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
)

// Event is a user interaction, to be applied by Reduce.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Click is a pointer click on the canvas, in pixel coordinates.
type Click struct {
	PX, PY float64
}

// AddPoint adds a point given in user coordinates.
type AddPoint struct {
	P foilcurve.Pair
}

// Undo steps back in history.
type Undo struct{}

// Redo steps forward in history.
type Redo struct{}

// Clear removes all points and resets the history.
type Clear struct{}

// Rerun re-processes the current state without new input.
type Rerun struct{}

// Export writes the current curve through the session's exporter.
type Export struct{}

// SetFit changes the fitting parameters. Zero values keep the current
// setting, except for Smoothness, which is taken as is.
type SetFit struct {
	NumPoints  int
	Smoothness float64
	Method     string
}

func (Click) isEvent()    {}
func (AddPoint) isEvent() {}
func (Undo) isEvent()     {}
func (Redo) isEvent()     {}
func (Clear) isEvent()    {}
func (Rerun) isEvent()    {}
func (Export) isEvent()   {}
func (SetFit) isEvent()   {}

func (e Click) String() string    { return fmt.Sprintf("click(%g,%g)", e.PX, e.PY) }
func (e AddPoint) String() string { return "point" + e.P.String() }
func (Undo) String() string       { return "undo" }
func (Redo) String() string       { return "redo" }
func (Clear) String() string      { return "clear" }
func (Rerun) String() string      { return "rerun" }
func (Export) String() string     { return "export" }
func (e SetFit) String() string {
	return fmt.Sprintf("fit(%d,%g,%s)", e.NumPoints, e.Smoothness, e.Method)
}
