package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/bspline"
	"github.com/npillmayer/foilcurve/config"
	"github.com/npillmayer/foilcurve/hobby"
	"github.com/npillmayer/foilcurve/pointstore"
	"github.com/npillmayer/foilcurve/polygon"
)

// Reduce applies an event to a state and returns the successor state, with
// curve and validation derived from the successor's points.
//
// st is never modified. Errors are returned for refused or failed exports
// and for invalid parameter changes; the returned state is valid in any
// case and keeps the points and history of st.
func Reduce(st State, ev Event) (State, error) {
	tracer().Debugf("event %v", ev)
	next := st.clone()
	switch e := ev.(type) {
	case Click:
		p := foilcurve.PixelToCustom(e.PX, e.PY, next.Params.Canvas, next.Params.Range)
		if !next.store.AppendClick(pointstore.Click{X: e.PX, Y: e.PY}, p) {
			next.warn(WarnDuplicate)
		}
	case AddPoint:
		next.store.Append(e.P)
	case Undo:
		if err := next.store.Undo(); errors.Is(err, pointstore.ErrNoUndo) {
			next.warn(WarnNoUndo)
		}
	case Redo:
		if err := next.store.Redo(); errors.Is(err, pointstore.ErrNoRedo) {
			next.warn(WarnNoRedo)
		}
	case Clear:
		next.store.Clear()
		next.Exported = Artifacts{}
	case Rerun:
		next.store.Snapshot()
	case SetFit:
		params, err := next.Params.withFit(e)
		if err != nil {
			return st, err
		}
		next.Params = params
	case Export:
		next.derive()
		return next.export()
	default:
		return st, fmt.Errorf("unknown event %v", ev)
	}
	next.derive()
	return next, nil
}

func (st State) export() (State, error) {
	if err := st.Exportable(); err != nil {
		tracer().Infof("export refused: %v", err)
		return st, err
	}
	if st.exporter == nil {
		return st, ErrNoExporter
	}
	textPath, solidPath, err := st.exporter.Export(st.Curve)
	if err != nil {
		tracer().Errorf("export failed: %v", err)
		return st, err
	}
	st.Exported = Artifacts{TextPath: textPath, SolidPath: solidPath}
	return st, nil
}

func (p Params) withFit(e SetFit) (Params, error) {
	if e.NumPoints != 0 {
		p.NumPoints = min(max(e.NumPoints, config.MinNumPoints), config.MaxNumPoints)
	}
	if !(e.Smoothness >= 0) {
		return p, fmt.Errorf("%w: smoothness %g", config.ErrInvalid, e.Smoothness)
	}
	p.Smoothness = e.Smoothness
	if m := strings.ToLower(e.Method); m != "" {
		if m != config.MethodBSpline && m != config.MethodHobby {
			return p, fmt.Errorf("%w: unknown fit method %q", config.ErrInvalid, e.Method)
		}
		p.Method = m
	}
	return p, nil
}

// derive sets curve and validation from the current points.
func (st *State) derive() {
	points := st.store.Points()
	key := fitKey(points, st.Params)
	d, ok := st.fits.get(key, points, st.Params)
	if !ok {
		d = fitAndValidate(points, st.Params)
		st.fits.put(key, points, st.Params, d)
	}
	st.Curve, st.Smooth, st.Validation = d.curve, d.smooth, d.validation
	for _, w := range d.warnings {
		st.warn(w)
	}
}

// fitAndValidate fits a curve to points, falling back to straight segments
// if a spline cannot be fitted, and validates the result.
func fitAndValidate(points []foilcurve.Pair, p Params) derived {
	var d derived
	if len(points) == 0 {
		d.curve = foilcurve.NewCurve(0)
		d.validation = polygon.ValidateCurve(d.curve)
		return d
	}
	curve, err := fit(points, p)
	switch {
	case err == nil:
		d.curve, d.smooth = curve, true
	case len(points) < bspline.MinPoints:
		d.curve = bspline.Polyline(points)
		d.warnings = append(d.warnings, WarnTooFewPoints)
	default:
		tracer().Errorf("fit of %d points failed: %v", len(points), err)
		d.curve = bspline.Polyline(points)
		d.warnings = append(d.warnings, WarnFitFailed)
	}
	d.validation = polygon.ValidateCurve(d.curve)
	if d.smooth && !d.validation.IsOverlapping && leavesRange(d.curve, p.Range) {
		d.warnings = append(d.warnings, WarnOutOfRange)
	}
	return d
}

func fit(points []foilcurve.Pair, p Params) (*foilcurve.Curve, error) {
	if len(points) < bspline.MinPoints {
		return nil, bspline.ErrTooFewPoints
	}
	if p.Method == config.MethodHobby {
		return hobby.Fit(points, p.NumPoints)
	}
	return bspline.Fit(points, p.NumPoints, p.Smoothness)
}

// leavesRange is a predicate: does a valid closed curve extend beyond r?
func leavesRange(c *foilcurve.Curve, r foilcurve.CoordinateRange) bool {
	lo, hi := c.Bounds()
	if r.Contains(lo) && r.Contains(hi) {
		return false
	}
	box := polygon.Box(foilcurve.P(r.X.Min, r.Y.Min), foilcurve.P(r.X.Max, r.Y.Max))
	outside, err := polygon.FromCurve(c).AreaOutside(box)
	if err != nil {
		tracer().Errorf("range check: %v", err)
		return true
	}
	return outside > foilcurve.Epsilon
}
