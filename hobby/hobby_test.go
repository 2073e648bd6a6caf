package hobby

import (
	"math"
	"testing"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() *Path {
	return Nullpath().
		Knot(foilcurve.P(1, 1)).
		Knot(foilcurve.P(2, 2)).
		Knot(foilcurve.P(3, 1)).
		Knot(foilcurve.P(2, 0)).Cycle()
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	assert.Equal(t, "(1,1) .. (2,2) .. (3,1) .. (2,0) .. cycle", AsString(diamond(), nil))
}

func TestControlsDiamond(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := diamond()
	controls, err := FindControls(path)
	require.NoError(t, err)
	t.Log(AsString(path, controls))
	expect := []struct {
		got, want foilcurve.Pair
	}{
		{controls.PostControl(0), foilcurve.P(1.0000, 1.5523)},
		{controls.PreControl(1), foilcurve.P(1.4477, 2.0000)},
		{controls.PostControl(1), foilcurve.P(2.5523, 2.0000)},
		{controls.PostControl(2), foilcurve.P(3.0000, 0.4477)},
		{controls.PreControl(3), foilcurve.P(2.5523, 0.0000)},
		{controls.PreControl(0), foilcurve.P(1.0000, 0.4477)},
	}
	for i, e := range expect {
		assert.InDelta(t, e.want.X(), e.got.X(), 0.0002, "control #%d", i)
		assert.InDelta(t, e.want.Y(), e.got.Y(), 0.0002, "control #%d", i)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := Nullpath().Knot(foilcurve.P(0, 0)).Knot(foilcurve.P(1, 0)).Cycle()
	assert.ErrorIs(t, p.Validate(), ErrTooFewKnots)
	p = Nullpath().Knot(foilcurve.P(0, 0)).Knot(foilcurve.P(1, 0)).Knot(foilcurve.P(1, 1))
	assert.ErrorIs(t, p.Validate(), ErrOpenPath)
	p = Nullpath().Knot(foilcurve.P(0, 0)).Knot(foilcurve.P(1, 0)).Knot(foilcurve.P(1, 0)).
		Knot(foilcurve.P(1, 1)).Cycle()
	assert.ErrorIs(t, p.Validate(), ErrDegenerateSegment)
	p = Nullpath().Knot(foilcurve.P(0, 0)).Knot(foilcurve.P(math.NaN(), 0)).
		Knot(foilcurve.P(1, 1)).Cycle()
	assert.ErrorIs(t, p.Validate(), ErrInvalidKnot)
	assert.NoError(t, diamond().Validate())
}

func TestFromPointsDropsTerminalKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	pts := []foilcurve.Pair{
		foilcurve.P(1, 1), foilcurve.P(2, 2), foilcurve.P(3, 1), foilcurve.P(2, 0), foilcurve.P(1, 1),
	}
	path := FromPoints(pts)
	assert.Equal(t, 4, path.N())
	assert.True(t, path.cycle)
	assert.Equal(t, foilcurve.P(1, 1), path.Z(4))
	assert.Equal(t, foilcurve.P(2, 0), path.Z(-1))
}

func TestFit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	pts := []foilcurve.Pair{
		foilcurve.P(1, 1), foilcurve.P(2, 2), foilcurve.P(3, 1), foilcurve.P(2, 0),
	}
	curve, err := Fit(pts, 400)
	require.NoError(t, err)
	require.Equal(t, 401, curve.N())
	assert.True(t, curve.IsClosed())
	for k, p := range pts {
		assert.Equal(t, p, curve.At(100*k), "curve must pass through knot %d", k)
	}
	center := foilcurve.P(2, 1)
	for i := 0; i < curve.N(); i++ {
		r := curve.At(i).Dist(center)
		assert.InDelta(t, 1.0, r, 0.01, "sample %d off the circle", i)
	}
	assert.False(t, polygon.ValidateCurve(curve).IsOverlapping)
}

func TestFitRejects(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Fit([]foilcurve.Pair{foilcurve.P(0, 0), foilcurve.P(1, 0)}, 100)
	assert.ErrorIs(t, err, ErrTooFewKnots)
	_, err = Fit([]foilcurve.Pair{foilcurve.P(0, 0), foilcurve.P(1, 0), foilcurve.P(1, 1)}, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
