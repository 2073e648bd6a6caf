package foilcurve

import "math"

// Curve is a dense sampling of a parametric curve, stored as two coordinate
// sequences of equal length. Curves produced by a spline fit are explicitly
// closed: the last sample repeats the first one bit for bit.
type Curve struct {
	Xs []float64
	Ys []float64
}

// NewCurve creates an empty curve with room for n samples.
func NewCurve(n int) *Curve {
	return &Curve{
		Xs: make([]float64, 0, n),
		Ys: make([]float64, 0, n),
	}
}

// CurveFromPairs copies a sequence of pairs into a curve, unchanged.
func CurveFromPairs(pts []Pair) *Curve {
	c := NewCurve(len(pts))
	for _, p := range pts {
		c.Append(p)
	}
	return c
}

// N returns the number of samples.
func (c *Curve) N() int {
	if c == nil {
		return 0
	}
	return len(c.Xs)
}

// At returns sample i.
func (c *Curve) At(i int) Pair {
	return P(c.Xs[i], c.Ys[i])
}

// Append adds a sample at the end.
func (c *Curve) Append(p Pair) {
	c.Xs = append(c.Xs, p.X())
	c.Ys = append(c.Ys, p.Y())
}

// Pairs returns the samples as pairs.
func (c *Curve) Pairs() []Pair {
	pts := make([]Pair, c.N())
	for i := range pts {
		pts[i] = c.At(i)
	}
	return pts
}

// IsClosed is a predicate: does the last sample equal the first one exactly?
// Curves with fewer than 2 samples are not closed.
func (c *Curve) IsClosed() bool {
	n := c.N()
	if n < 2 {
		return false
	}
	return c.Xs[0] == c.Xs[n-1] && c.Ys[0] == c.Ys[n-1]
}

// Close appends a copy of the first sample, unconditionally.
func (c *Curve) Close() {
	if c.N() == 0 {
		return
	}
	c.Xs = append(c.Xs, c.Xs[0])
	c.Ys = append(c.Ys, c.Ys[0])
}

// Bounds returns the lower left and upper right corner of the bounding box.
func (c *Curve) Bounds() (Pair, Pair) {
	if c.N() == 0 {
		return Origin, Origin
	}
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	for i := range c.Xs {
		minx, maxx = math.Min(minx, c.Xs[i]), math.Max(maxx, c.Xs[i])
		miny, maxy = math.Min(miny, c.Ys[i]), math.Max(maxy, c.Ys[i])
	}
	return P(minx, miny), P(maxx, maxy)
}
