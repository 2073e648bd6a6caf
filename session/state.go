package session

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/config"
	"github.com/npillmayer/foilcurve/pointstore"
	"github.com/npillmayer/foilcurve/polygon"
)

// Params are the settings a session derives its curve with.
type Params struct {
	Canvas     foilcurve.Canvas
	Range      foilcurve.CoordinateRange
	NumPoints  int
	Smoothness float64
	Method     string
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default())
}

// ParamsFromConfig extracts session parameters from a configuration.
func ParamsFromConfig(conf *config.Config) Params {
	return Params{
		Canvas:     conf.CanvasSize(),
		Range:      conf.CoordinateRange().Clamped(),
		NumPoints:  conf.Fit.NumPoints,
		Smoothness: conf.Fit.Smoothness,
		Method:     conf.Fit.Method,
	}
}

// Exporter persists a validated curve. It returns the paths written.
type Exporter interface {
	Export(c *foilcurve.Curve) (textPath, solidPath string, err error)
}

// Artifacts are the files written by the last successful export.
type Artifacts struct {
	TextPath  string
	SolidPath string
}

// State is the complete state of a sketching session. It is a value:
// Reduce returns a new State and leaves its argument untouched. Curves
// referenced by a State are shared between states and must not be modified.
type State struct {
	Params     Params
	Curve      *foilcurve.Curve         // current curve, spline fit or straight segments
	Smooth     bool                     // is Curve a spline fit?
	Validation polygon.ValidationResult // validation of Curve
	Warnings   []string                 // warnings raised by the last event
	Exported   Artifacts                // result of the last export
	store      *pointstore.Store
	exporter   Exporter
	fits       *fitCache
}

// New creates an empty session. exporter may be nil for sessions which
// never export.
func New(params Params, exporter Exporter) State {
	st := State{
		Params:   params,
		store:    pointstore.New(),
		exporter: exporter,
		fits:     newFitCache(),
	}
	st.derive()
	return st
}

// Points returns a copy of the current points.
func (st State) Points() []foilcurve.Pair {
	return st.store.Points()
}

// CanUndo is a predicate: is there a history step to go back to?
func (st State) CanUndo() bool {
	return st.store.History().CanUndo()
}

// CanRedo is a predicate: is there a history step to go forward to?
func (st State) CanRedo() bool {
	return st.store.History().CanRedo()
}

// HistoryLen returns the number of history snapshots.
func (st State) HistoryLen() int {
	return st.store.History().Len()
}

// Exportable returns nil if the current curve may be exported, and the
// reason otherwise.
func (st State) Exportable() error {
	if st.store.N() < 4 || !st.Smooth {
		return ErrNotEnoughPoints
	}
	if err := st.Validation.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrGeometry, err)
	}
	return nil
}

func (st State) clone() State {
	next := st
	next.store = st.store.Clone()
	next.Warnings = nil
	return next
}

func (st *State) warn(msg string) {
	tracer().Infof("warning: %s", msg)
	st.Warnings = append(st.Warnings, msg)
}
