package session

import (
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/boundary"
	"github.com/npillmayer/foilcurve/bspline"
	"github.com/npillmayer/foilcurve/config"
	"github.com/npillmayer/foilcurve/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls int
	curve *foilcurve.Curve
	err   error
}

func (r *recorder) Export(c *foilcurve.Curve) (string, string, error) {
	r.calls++
	r.curve = c
	if r.err != nil {
		return "", "", r.err
	}
	return "coords.txt", "solid.stl", nil
}

func ellipse(n int, cx, rx, ry float64) []foilcurve.Pair {
	pts := make([]foilcurve.Pair, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = foilcurve.P(cx+rx*math.Cos(a), ry*math.Sin(a))
	}
	return pts
}

func feed(t *testing.T, st State, pts ...foilcurve.Pair) State {
	t.Helper()
	var err error
	for _, p := range pts {
		st, err = Reduce(st, AddPoint{P: p})
		require.NoError(t, err)
	}
	return st
}

func TestNewSession(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := New(DefaultParams(), nil)
	assert.Empty(t, st.Points())
	assert.Equal(t, 0, st.Curve.N())
	assert.False(t, st.Smooth)
	assert.Equal(t, polygon.MsgNotEnoughPoints, st.Validation.Message)
	assert.Empty(t, st.Warnings)
	assert.Equal(t, 1, st.HistoryLen())
	assert.ErrorIs(t, st.Exportable(), ErrNotEnoughPoints)
}

func TestReduceDoesNotModifyState(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st0 := New(DefaultParams(), nil)
	st1 := feed(t, st0, ellipse(3, 0.5, 0.4, 0.1)...)
	st2, err := Reduce(st1, Undo{})
	require.NoError(t, err)
	assert.Empty(t, st0.Points())
	assert.Len(t, st1.Points(), 3)
	assert.Len(t, st2.Points(), 2)
	assert.True(t, st1.CanUndo())
	assert.False(t, st1.CanRedo())
	assert.True(t, st2.CanRedo())
}

func TestClicksAreMapped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := New(DefaultParams(), nil)
	st, err := Reduce(st, Click{PX: 600, PY: 150})
	require.NoError(t, err)
	st, err = Reduce(st, Click{PX: 0, PY: 0})
	require.NoError(t, err)
	assert.Equal(t, []foilcurve.Pair{foilcurve.P(1, 0), foilcurve.P(0, 0.5)}, st.Points())
	st, err = Reduce(st, Click{PX: 0, PY: 0})
	require.NoError(t, err)
	assert.Len(t, st.Points(), 2, "repeated click must be ignored")
	assert.Contains(t, st.Warnings, WarnDuplicate)
	assert.Contains(t, st.Warnings, WarnTooFewPoints)
}

func TestCurveFollowsPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	pts := ellipse(12, 0.5, 0.45, 0.1)
	st := feed(t, New(DefaultParams(), nil), pts[:3]...)
	assert.False(t, st.Smooth)
	assert.Equal(t, 3, st.Curve.N())
	assert.Equal(t, []string{WarnTooFewPoints}, st.Warnings)
	st = feed(t, st, pts[3:]...)
	assert.True(t, st.Smooth)
	assert.Empty(t, st.Warnings)
	assert.Equal(t, 501, st.Curve.N())
	assert.True(t, st.Curve.IsClosed())
	assert.False(t, st.Validation.IsOverlapping, st.Validation.Message)
	assert.NoError(t, st.Exportable())
}

func TestUndoRedoWarnings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := New(DefaultParams(), nil)
	st, err := Reduce(st, Undo{})
	require.NoError(t, err)
	assert.Equal(t, []string{WarnNoUndo}, st.Warnings)
	st, err = Reduce(st, Redo{})
	require.NoError(t, err)
	assert.Equal(t, []string{WarnNoRedo}, st.Warnings)
	st = feed(t, st, foilcurve.P(0.1, 0.1))
	st, _ = Reduce(st, Undo{})
	st, _ = Reduce(st, Rerun{})
	assert.True(t, st.CanRedo(), "rerun after undo must keep the redo branch")
	st, _ = Reduce(st, Redo{})
	assert.Equal(t, []foilcurve.Pair{foilcurve.P(0.1, 0.1)}, st.Points())
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := feed(t, New(DefaultParams(), nil), ellipse(8, 0.5, 0.4, 0.1)...)
	st, err := Reduce(st, Clear{})
	require.NoError(t, err)
	assert.Empty(t, st.Points())
	assert.Equal(t, 1, st.HistoryLen())
	assert.False(t, st.CanUndo())
	assert.Equal(t, 0, st.Curve.N())
}

func TestRerunIsMemoized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := feed(t, New(DefaultParams(), nil), ellipse(10, 0.5, 0.4, 0.1)...)
	n := st.fits.Len()
	again, err := Reduce(st, Rerun{})
	require.NoError(t, err)
	assert.Same(t, st.Curve, again.Curve)
	assert.Equal(t, n, again.fits.Len())
	finer, err := Reduce(st, SetFit{NumPoints: 200, Smoothness: 0})
	require.NoError(t, err)
	assert.Equal(t, 201, finer.Curve.N())
	assert.Equal(t, n+1, finer.fits.Len())
	assert.Equal(t, 501, st.Curve.N())
}

func TestFitCacheChecksInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	fc := newFitCache()
	params := DefaultParams()
	square := []foilcurve.Pair{
		foilcurve.P(0, 0), foilcurve.P(1, 0), foilcurve.P(1, 1), foilcurve.P(0, 1),
	}
	key := fitKey(square, params)
	fc.put(key, square, params, derived{curve: bspline.Polyline(square)})
	d, ok := fc.get(key, square, params)
	require.True(t, ok)
	assert.Equal(t, 4, d.curve.N())
	// a different input stored under the same key must not be returned
	other := append(slices.Clone(square[:3]), foilcurve.P(0, 2))
	_, ok = fc.get(key, other, params)
	assert.False(t, ok)
	changed := params
	changed.Smoothness = params.Smoothness + 1
	_, ok = fc.get(key, square, changed)
	assert.False(t, ok)
	// stored points are not aliased by the caller
	square[0] = foilcurve.P(5, 5)
	_, ok = fc.get(key, []foilcurve.Pair{
		foilcurve.P(0, 0), foilcurve.P(1, 0), foilcurve.P(1, 1), foilcurve.P(0, 1),
	}, params)
	assert.True(t, ok)
}

func TestFitFailureFallsBackToPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rec := &recorder{}
	st := feed(t, New(DefaultParams(), rec),
		foilcurve.P(0.2, 0), foilcurve.P(0.5, 0.1), foilcurve.P(0.5, 0.1),
		foilcurve.P(0.8, 0), foilcurve.P(0.5, -0.1))
	assert.Len(t, st.Points(), 5)
	assert.False(t, st.Smooth)
	assert.Equal(t, []string{WarnFitFailed}, st.Warnings)
	assert.Equal(t, 5, st.Curve.N(), "polyline through the points")
	assert.ErrorIs(t, st.Exportable(), ErrNotEnoughPoints)
	_, err := Reduce(st, Export{})
	assert.ErrorIs(t, err, ErrNotEnoughPoints)
	assert.Zero(t, rec.calls)
	// dropping the duplicate makes the fit succeed again
	st, err = Reduce(st, Clear{})
	require.NoError(t, err)
	st = feed(t, st, foilcurve.P(0.2, 0), foilcurve.P(0.5, 0.1),
		foilcurve.P(0.8, 0), foilcurve.P(0.5, -0.1))
	assert.True(t, st.Smooth)
	assert.NotContains(t, st.Warnings, WarnFitFailed)
}

func TestSetFit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := feed(t, New(DefaultParams(), nil), ellipse(10, 0.5, 0.4, 0.1)...)
	_, err := Reduce(st, SetFit{Smoothness: -1})
	assert.ErrorIs(t, err, config.ErrInvalid)
	_, err = Reduce(st, SetFit{Method: "nurbs"})
	assert.ErrorIs(t, err, config.ErrInvalid)
	st, err = Reduce(st, SetFit{NumPoints: 5000, Smoothness: 0, Method: "Hobby"})
	require.NoError(t, err)
	assert.Equal(t, config.MaxNumPoints, st.Params.NumPoints)
	assert.Equal(t, config.MethodHobby, st.Params.Method)
	assert.True(t, st.Smooth)
	assert.Equal(t, 1001, st.Curve.N())
	assert.False(t, st.Validation.IsOverlapping, st.Validation.Message)
}

func TestOutOfRangeWarning(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	st := feed(t, New(DefaultParams(), nil), ellipse(10, 1.0, 0.45, 0.1)...)
	assert.True(t, st.Smooth)
	assert.Contains(t, st.Warnings, WarnOutOfRange)
	assert.NoError(t, st.Exportable(), "range warnings do not block export")
}

func TestExportGating(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rec := &recorder{}
	st := feed(t, New(DefaultParams(), rec), ellipse(3, 0.5, 0.4, 0.1)...)
	_, err := Reduce(st, Export{})
	assert.ErrorIs(t, err, ErrNotEnoughPoints)
	//
	bowtie := []foilcurve.Pair{
		foilcurve.P(0, 0), foilcurve.P(1, 1), foilcurve.P(1, 0), foilcurve.P(0, 1),
	}
	st = feed(t, New(DefaultParams(), rec), bowtie...)
	require.True(t, st.Smooth)
	require.True(t, st.Validation.IsOverlapping)
	after, err := Reduce(st, Export{})
	assert.ErrorIs(t, err, ErrGeometry)
	assert.ErrorIs(t, err, polygon.ErrSelfIntersecting)
	assert.Len(t, after.Points(), 4, "refused export keeps the points")
	assert.Equal(t, 0, rec.calls)
	//
	_, err = Reduce(feed(t, New(DefaultParams(), nil), ellipse(8, 0.5, 0.4, 0.1)...), Export{})
	assert.ErrorIs(t, err, ErrNoExporter)
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rec := &recorder{}
	st := feed(t, New(DefaultParams(), rec), ellipse(12, 0.5, 0.45, 0.1)...)
	st, err := Reduce(st, Export{})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.calls)
	assert.Same(t, st.Curve, rec.curve)
	assert.Equal(t, Artifacts{TextPath: "coords.txt", SolidPath: "solid.stl"}, st.Exported)
	//
	rec.err = errors.New("disk full")
	failed, err := Reduce(st, Export{})
	assert.EqualError(t, err, "disk full")
	assert.Len(t, failed.Points(), 12)
}

func TestExportToFiles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	ex := boundary.Exporter{
		Dir:       dir,
		TextName:  "airfoil_coordinates.txt",
		SolidName: "airfoil.stl",
		Chord:     1.0,
		Thickness: 0.001,
	}
	st := feed(t, New(DefaultParams(), ex), ellipse(12, 0.5, 0.45, 0.1)...)
	st, err := Reduce(st, Export{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "airfoil.stl"), st.Exported.SolidPath)
	assert.FileExists(t, st.Exported.TextPath)
	assert.FileExists(t, st.Exported.SolidPath)
	pts, err := boundary.LoadText(st.Exported.TextPath)
	require.NoError(t, err)
	assert.Len(t, pts, st.Curve.N())
}
