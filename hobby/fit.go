package hobby

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
)

// Fit passes a closed Hobby spline through points and samples it at
// numPoints positions, evenly spaced in path time. The result is closed
// explicitly, i.e. it holds numPoints+1 samples.
func Fit(points []foilcurve.Pair, numPoints int) (*foilcurve.Curve, error) {
	if numPoints < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParameter, numPoints)
	}
	path := FromPoints(points)
	controls, err := FindControls(path)
	if err != nil {
		return nil, err
	}
	curve := Sample(path, controls, numPoints)
	tracer().Infof("hobby fit through %d knots, %d samples", path.N(), curve.N())
	return curve, nil
}

// Sample evaluates a solved path at numPoints positions and closes the result.
// Segment i is the cubic Bézier curve from z.i to z.(i+1); path time t
// runs from 0 to N.
func Sample(path *Path, controls *Controls, numPoints int) *foilcurve.Curve {
	n := path.N()
	curve := foilcurve.NewCurve(numPoints + 1)
	for j := 0; j < numPoints; j++ {
		t := float64(j) * float64(n) / float64(numPoints)
		seg := int(t)
		if seg >= n {
			seg = n - 1
		}
		curve.Append(bezier(path.Z(seg), controls.PostControl(seg),
			controls.PreControl(seg+1), path.Z(seg+1), t-float64(seg)))
	}
	curve.Close()
	return curve
}

// De Casteljau evaluation of a cubic Bézier segment.
func bezier(p0, c0, c1, p1 foilcurve.Pair, t float64) foilcurve.Pair {
	if t == 0 {
		return p0
	}
	lerp := func(a, b foilcurve.Pair) foilcurve.Pair {
		return a + (b - a).Scaled(t)
	}
	a, b, c := lerp(p0, c0), lerp(c0, c1), lerp(c1, p1)
	d, e := lerp(a, b), lerp(b, c)
	return lerp(d, e)
}
