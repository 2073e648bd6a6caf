package hobby

import (
	"math"

	"github.com/npillmayer/foilcurve"
)

// Controls collects calculated spline control points.
type Controls struct {
	prec  []foilcurve.Pair // control point i-
	postc []foilcurve.Pair // control point i+
}

// PreControl returns the control point before z.i.
func (ctrls *Controls) PreControl(i int) foilcurve.Pair {
	return ctrls.prec[i%len(ctrls.prec)]
}

// PostControl returns the control point after z.i.
func (ctrls *Controls) PostControl(i int) foilcurve.Pair {
	return ctrls.postc[i%len(ctrls.postc)]
}

// FindControls finds the Hobby-spline control points for a given cyclic
// skeleton path. It validates the path and returns an error for
// invalid geometry.
func FindControls(path *Path) (*Controls, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	n := path.N()
	u := make([]float64, n+2)
	v := make([]float64, n+2)
	w := make([]float64, n+2)
	theta := make([]float64, n+2)
	u[0], v[0], w[0] = 0, 0, 1
	buildEqs(path, u, v, w)
	endCycle(path, theta, u, v, w)
	controls := setControls(path, theta)
	tracer().Debugf("%s", AsString(path, controls))
	return controls, nil
}

// With all tensions 1, the equations for mock curvature continuity at z.i
// reduce to
//
//	θ.(i-1)/d.(i-1) + 2(θ.i + ψ.i)/d.(i-1) = -2θ.i/d.i - (θ.(i+1) + ψ.(i+1))/d.i
//
// which is solved by forward elimination, carrying the dependency on θ.0
// in w.
func buildEqs(path *Path, u, v, w []float64) {
	n := path.N()
	for i := 1; i <= n; i++ {
		A := 1 / path.d(i-1)
		B := 2 / path.d(i-1)
		C := 2 / path.d(i)
		D := 1 / path.d(i)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*path.psi(i) - D*path.psi(i+1) - A*v[i-1]) / t
		w[i] = -A * w[i-1] / t
	}
}

func endCycle(path *Path, theta, u, v, w []float64) {
	n := path.N()
	var a, b float64 = 0, 1
	for i := n; i > 0; i-- {
		a = v[i] - a*u[i]
		b = w[i] - b*u[i]
	}
	t0 := (v[n] - a*u[n]) / (1 - (w[n] - b*u[n]))
	v[0] = t0
	for i := 1; i <= n; i++ {
		v[i] += w[i] * t0
	}
	theta[0], theta[n] = t0, t0
	for i := n - 1; i > 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func setControls(path *Path, theta []float64) *Controls {
	n := path.N()
	controls := &Controls{
		prec:  make([]foilcurve.Pair, n),
		postc: make([]foilcurve.Pair, n),
	}
	for i := 0; i < n; i++ {
		phi := -path.psi(i+1) - theta[i+1]
		p2, p3 := controlPoints(phi, theta[i], path.delta(i))
		controls.postc[i] = path.Z(i) + p2
		controls.prec[(i+1)%n] = path.Z(i+1) - p3
	}
	return controls
}

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sincos(theta) // in-angle
	sf, cf := math.Sincos(phi)   // out-angle
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// Calculate control point offsets between z.i and z.[i+1].
func controlPoints(phi, theta float64, dvec foilcurve.Pair) (foilcurve.Pair, foilcurve.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	dx, dy := dvec.F()
	uv1 := foilcurve.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := foilcurve.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1.Scaled(rho / 3), uv2.Scaled(sigma / 3)
}
