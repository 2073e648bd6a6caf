package foilcurve

import "math"

// RangeEpsilon is the minimum extent an axis range is widened to when a
// caller supplies min >= max.
const RangeEpsilon = 0.1

// Range is a closed interval [Min,Max] on one axis.
type Range struct {
	Min, Max float64
}

// Extent returns Max-Min.
func (r Range) Extent() float64 {
	return r.Max - r.Min
}

// Contains is a predicate: is Min <= v <= Max ?
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// CoordinateRange is the user-defined coordinate system shown on a canvas.
type CoordinateRange struct {
	X, Y Range
}

// NewCoordinateRange creates a range [xmin,xmax]×[ymin,ymax]. The range is
// not clamped; see Clamped.
func NewCoordinateRange(xmin, xmax, ymin, ymax float64) CoordinateRange {
	return CoordinateRange{X: Range{xmin, xmax}, Y: Range{ymin, ymax}}
}

// Clamped returns a copy of r with min < max enforced on both axes: an
// inverted or empty axis is widened to [min, min+RangeEpsilon].
func (r CoordinateRange) Clamped() CoordinateRange {
	if r.X.Min >= r.X.Max {
		tracer().Infof("x range [%g,%g] is empty, clamping", r.X.Min, r.X.Max)
		r.X.Max = r.X.Min + RangeEpsilon
	}
	if r.Y.Min >= r.Y.Max {
		tracer().Infof("y range [%g,%g] is empty, clamping", r.Y.Min, r.Y.Max)
		r.Y.Max = r.Y.Min + RangeEpsilon
	}
	return r
}

// Contains is a predicate: is p inside the range (borders included)?
func (r CoordinateRange) Contains(p Pair) bool {
	return r.X.Contains(p.X()) && r.Y.Contains(p.Y())
}

// Canvas holds the pixel dimensions of an input surface. Pixel y grows
// downwards.
type Canvas struct {
	Width, Height int
}

// PixelToCustom maps pixel coordinates on canvas to user coordinates.
//
//	x = xmin + (px/W)·(xmax-xmin)
//	y = ymin + (1 - py/H)·(ymax-ymin)
func PixelToCustom(px, py float64, canvas Canvas, r CoordinateRange) Pair {
	w, h := float64(canvas.Width), float64(canvas.Height)
	x := r.X.Min + (px/w)*r.X.Extent()
	y := r.Y.Min + (1-py/h)*r.Y.Extent()
	return P(x, y)
}

// CustomToPixel is the inverse of PixelToCustom. An axis with an empty range
// maps to pixel 0.
func CustomToPixel(p Pair, canvas Canvas, r CoordinateRange) (float64, float64) {
	w, h := float64(canvas.Width), float64(canvas.Height)
	var px, py float64
	if dx := r.X.Extent(); dx != 0 {
		px = (p.X() - r.X.Min) / dx * w
	}
	if dy := r.Y.Extent(); dy != 0 {
		py = h - (p.Y()-r.Y.Min)/dy*h
	}
	return px, py
}

// PixelTransform returns the affine transform user coordinates → pixels, for
// mapping many points at once (e.g., a sampled curve). r must be clamped.
func (r CoordinateRange) PixelTransform(canvas Canvas) AT {
	w, h := float64(canvas.Width), float64(canvas.Height)
	toOrigin := Translation(P(-r.X.Min, -r.Y.Min))
	scale := Scaling(w/r.X.Extent(), -h/r.Y.Extent())
	flip := Translation(P(0, h))
	return toOrigin.Combine(scale).Combine(flip)
}

// CurveToPixels maps the samples of a curve in user coordinates to pixel
// positions on canvas.
func CurveToPixels(c *Curve, canvas Canvas, r CoordinateRange) *Curve {
	m := r.Clamped().PixelTransform(canvas)
	px := NewCurve(c.N())
	for i := 0; i < c.N(); i++ {
		px.Append(m.Transform(c.At(i)))
	}
	return px
}

// GridLines returns the positions of grid lines with distance step which fall
// into axis range r. Grid lines are aligned to multiples of step.
func GridLines(r Range, step float64) []float64 {
	if step <= 0 || !IsFinite(step) || r.Min > r.Max {
		return nil
	}
	start := math.Floor(r.Min/step) * step
	end := math.Ceil(r.Max/step) * step
	var lines []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > end {
			break
		}
		if r.Contains(v) {
			lines = append(lines, v)
		}
	}
	return lines
}
