package bspline

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/foilcurve"
	"gonum.org/v1/gonum/mat"
)

// Fit fits a smoothing B-spline through points and samples it at numPoints
// uniformly spaced parameters. The returned curve is closed explicitly and
// has numPoints+1 samples.
//
// With fewer than MinPoints points, Fit returns the points unchanged as a
// curve together with an error wrapping ErrTooFewPoints; callers treat this
// as a warning and draw straight segments. Any other error leaves the curve
// nil; see Polyline for the fallback.
func Fit(points []foilcurve.Pair, numPoints int, smoothness float64) (*foilcurve.Curve, error) {
	if numPoints < 2 {
		return nil, fmt.Errorf("%w: sample count %d", ErrInvalidParameter, numPoints)
	}
	if len(points) < MinPoints {
		tracer().Infof("%d points given, need %d for a cubic spline", len(points), MinPoints)
		return Polyline(points), fmt.Errorf("%w: need at least %d, have %d",
			ErrTooFewPoints, MinPoints, len(points))
	}
	spline, err := Prepare(points, smoothness)
	if err != nil {
		return nil, err
	}
	return spline.Sample(numPoints), nil
}

// Polyline returns the points unchanged as a curve of straight segments.
// The curve is not closed.
func Polyline(points []foilcurve.Pair) *foilcurve.Curve {
	return foilcurve.CurveFromPairs(points)
}

// Degree returns the spline degree used for m points: min(3, m-1).
func Degree(m int) int {
	return min(MaxDegree, m-1)
}

// Prepare computes the B-spline representation of a parametric curve through
// points, with smoothing factor s (0 = interpolation).
func Prepare(points []foilcurve.Pair, s float64) (*Spline, error) {
	if s < 0 || math.IsNaN(s) {
		return nil, fmt.Errorf("%w: smoothing factor %g", ErrInvalidParameter, s)
	}
	m := len(points)
	k := Degree(m)
	if k < 1 {
		return nil, fmt.Errorf("%w: cannot fit degree %d to %d points", ErrTooFewPoints, k, m)
	}
	u, err := chordParameters(points)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fitting degree %d spline to %d points, s = %g", k, m, s)
	if s == 0 || m == k+1 {
		return interpolate(points, u, k)
	}
	return smooth(points, u, k, s)
}

// chordParameters assigns each point its normalized cumulative chord length.
func chordParameters(points []foilcurve.Pair) ([]float64, error) {
	u := make([]float64, len(points))
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: point %d is %s", ErrDegenerateFit, i, p)
		}
		if i == 0 {
			continue
		}
		d := points[i-1].Dist(p)
		if d == 0 {
			return nil, fmt.Errorf("%w: points %d and %d coincide", ErrDegenerateFit, i-1, i)
		}
		u[i] = u[i-1] + d
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	u[len(u)-1] = 1
	return u, nil
}

func interpolate(points []foilcurve.Pair, u []float64, k int) (*Spline, error) {
	t := clampedKnots(u[0], u[len(u)-1], k, interpolationKnots(u, k))
	return leastSquares(points, u, k, t)
}

// smooth inserts knots into the interval with the largest residual until
// the residual sum drops to s. Once every possible knot is used, the result
// is the interpolating spline.
func smooth(points []foilcurve.Pair, u []float64, k int, s float64) (*Spline, error) {
	maxInterior := len(points) - k - 1
	var interior []float64
	for len(interior) < maxInterior {
		t := clampedKnots(u[0], u[len(u)-1], k, interior)
		spline, err := leastSquares(points, u, k, t)
		if err != nil {
			tracer().Debugf("least squares with %d knots failed: %v", len(interior), err)
			break
		}
		if spline.Fp <= s {
			tracer().Debugf("fp = %g <= s with %d interior knots", spline.Fp, len(interior))
			return spline, nil
		}
		knot, ok := spline.nextKnot(points)
		if !ok {
			break
		}
		interior = append(interior, knot)
		sort.Float64s(interior)
	}
	return interpolate(points, u, k)
}

// leastSquares solves for the coefficients of a spline with knots t which
// fits points at parameters u best, in the least squares sense.
func leastSquares(points []foilcurve.Pair, u []float64, k int, t []float64) (*Spline, error) {
	m, n := len(points), len(t)-k-1
	a := mat.NewDense(m, n, nil)
	b := mat.NewDense(m, 2, nil)
	for i, ui := range u {
		l := span(t, k, n, ui)
		for r, nr := range basis(t, k, l, ui) {
			a.Set(i, l-k+r, nr)
		}
		b.Set(i, 0, points[i].X())
		b.Set(i, 1, points[i].Y())
	}
	var c mat.Dense
	if err := c.Solve(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateFit, err)
	}
	spline := &Spline{
		K:     k,
		Knots: t,
		Cx:    mat.Col(nil, 0, &c),
		Cy:    mat.Col(nil, 1, &c),
		U:     u,
	}
	for i := range spline.Cx {
		if !foilcurve.IsFinite(spline.Cx[i]) || !foilcurve.IsFinite(spline.Cy[i]) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", ErrDegenerateFit, i)
		}
	}
	for i, ui := range u {
		spline.Fp += residual(spline.Eval(ui), points[i])
	}
	return spline, nil
}

// nextKnot selects the knot interval with the largest sum of residuals among
// those containing data parameters strictly inside, and returns the median
// of these parameters as the new knot.
func (s *Spline) nextKnot(points []foilcurve.Pair) (float64, bool) {
	n := s.N()
	fpint := make([]float64, n)
	inside := make([][]float64, n)
	for i, ui := range s.U {
		l := span(s.Knots, s.K, n, ui)
		fpint[l] += residual(s.Eval(ui), points[i])
		if s.Knots[l] < ui && ui < s.Knots[l+1] {
			inside[l] = append(inside[l], ui)
		}
	}
	best, found := -1.0, false
	var knot float64
	for l := s.K; l < n; l++ {
		if len(inside[l]) == 0 || fpint[l] <= best {
			continue
		}
		best, found = fpint[l], true
		knot = inside[l][len(inside[l])/2]
	}
	return knot, found
}

func residual(p, q foilcurve.Pair) float64 {
	dx, dy := p.X()-q.X(), p.Y()-q.Y()
	return dx*dx + dy*dy
}
