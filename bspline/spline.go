package bspline

import (
	"sort"

	"github.com/npillmayer/foilcurve"
)

// Spline is a parametric B-spline curve (x(u), y(u)) of degree K.
//
// Knots has length len(Cx)+K+1; the first and last K+1 knots are repeated
// end knots. U holds the parameters of the fitted data points.
type Spline struct {
	K      int
	Knots  []float64
	Cx, Cy []float64
	U      []float64
	Fp     float64 // sum of squared residuals of the fit
}

// N returns the number of coefficients.
func (s *Spline) N() int {
	return len(s.Cx)
}

// Domain returns the parameter interval the spline is defined on.
func (s *Spline) Domain() (float64, float64) {
	return s.Knots[s.K], s.Knots[s.N()]
}

// Eval evaluates the spline at parameter u. Parameters outside the domain are
// clamped to it.
func (s *Spline) Eval(u float64) foilcurve.Pair {
	lo, hi := s.Domain()
	if u < lo {
		u = lo
	} else if u > hi {
		u = hi
	}
	l := span(s.Knots, s.K, s.N(), u)
	b := basis(s.Knots, s.K, l, u)
	var x, y float64
	for r, nr := range b {
		x += nr * s.Cx[l-s.K+r]
		y += nr * s.Cy[l-s.K+r]
	}
	return foilcurve.P(x, y)
}

// Sample evaluates the spline at n uniformly spaced parameters spanning the
// parameter range of the fitted points, then closes the curve by appending
// the first sample. The result has n+1 samples.
func (s *Spline) Sample(n int) *foilcurve.Curve {
	curve := foilcurve.NewCurve(n + 1)
	u0, u1 := s.U[0], s.U[len(s.U)-1]
	for i, u := range linspace(u0, u1, n) {
		p := s.Eval(u)
		if i == 0 {
			tracer().Debugf("first sample at u=%g: %s", u, p)
		}
		curve.Append(p)
	}
	curve.Close()
	return curve
}

// span finds index l with t[l] <= u < t[l+1], k <= l < n. At the right end
// of the domain, the last non-empty interval is used.
func span(t []float64, k, n int, u float64) int {
	if u >= t[n] {
		l := n - 1
		for l > k && t[l] == t[n] {
			l--
		}
		return l
	}
	if u <= t[k] {
		return k
	}
	// first index in t[k+1:n+1] with t > u, minus one
	i := sort.Search(n-k, func(i int) bool {
		return t[k+1+i] > u
	})
	return k + i
}

// basis computes the k+1 non-vanishing basis functions N[l-k..l] at u
// (Cox–de Boor recursion, triangular scheme).
func basis(t []float64, k, l int, u float64) []float64 {
	N := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	N[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = u - t[l+1-j]
		right[j] = t[l+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		N[j] = saved
	}
	return N
}

// linspace returns n values evenly spaced over [a,b], including both ends.
func linspace(a, b float64, n int) []float64 {
	v := make([]float64, n)
	if n == 1 {
		v[0] = a
		return v
	}
	step := (b - a) / float64(n-1)
	for i := range v {
		v[i] = a + float64(i)*step
	}
	v[n-1] = b
	return v
}

// clampedKnots creates a knot vector for n coefficients of degree k over
// [a,b] with the given interior knots.
func clampedKnots(a, b float64, k int, interior []float64) []float64 {
	t := make([]float64, 0, len(interior)+2*(k+1))
	for i := 0; i <= k; i++ {
		t = append(t, a)
	}
	t = append(t, interior...)
	for i := 0; i <= k; i++ {
		t = append(t, b)
	}
	return t
}

// interpolationKnots places the m-k-1 interior knots for interpolating m
// points at parameters u: at data parameters for odd k, between them for
// even k.
func interpolationKnots(u []float64, k int) []float64 {
	m := len(u)
	interior := make([]float64, 0, m-k-1)
	for j := 0; j < m-k-1; j++ {
		if k%2 == 1 {
			interior = append(interior, u[j+(k+1)/2])
		} else {
			interior = append(interior, (u[j+k/2]+u[j+k/2+1])/2)
		}
	}
	return interior
}
