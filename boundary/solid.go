package boundary

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/mesh"
	"github.com/npillmayer/foilcurve/polygon"
)

// RingTolerance is the distance, relative to the chord length, below which
// two consecutive ring vertices are considered the same.
const RingTolerance = 1e-7

// CleanRing drops every point closer than tol to the previously kept point.
// The first point is always kept.
func CleanRing(pts []foilcurve.Pair, tol float64) []foilcurve.Pair {
	if len(pts) == 0 {
		return nil
	}
	ring := []foilcurve.Pair{pts[0]}
	for _, p := range pts[1:] {
		if p.Dist(ring[len(ring)-1]) >= tol {
			ring = append(ring, p)
		}
	}
	return ring
}

// CloseRing makes sure the ring ends where it starts, then drops the
// closing vertex. A last point within tol of the first on both axes is
// snapped onto it, otherwise the first point is appended. The result does
// not repeat its first vertex.
//
// tol is an absolute distance with no relative component; PrepareRing scales
// it with the chord, other callers have to do so themselves.
func CloseRing(pts []foilcurve.Pair, tol float64) []foilcurve.Pair {
	if len(pts) < 2 {
		return pts
	}
	ring := make([]foilcurve.Pair, len(pts), len(pts)+1)
	copy(ring, pts)
	first, last := ring[0], ring[len(ring)-1]
	if math.Abs(first.X()-last.X()) <= tol && math.Abs(first.Y()-last.Y()) <= tol {
		ring[len(ring)-1] = first
	} else {
		ring = append(ring, first)
	}
	if len(ring) > 1 && ring[len(ring)-1] == first {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// PrepareRing scales a sequence of normalized points by chord and turns it
// into a ring without near-duplicate vertices, ready for triangulation.
func PrepareRing(pts []foilcurve.Pair, chord float64) []foilcurve.Pair {
	scaled := make([]foilcurve.Pair, len(pts))
	for i, p := range pts {
		scaled[i] = p.Scaled(chord)
	}
	tol := RingTolerance * chord
	ring := CloseRing(CleanRing(scaled, tol), tol)
	if len(ring) > 2 && ring[len(ring)-1].Dist(ring[0]) < tol {
		ring = ring[:len(ring)-1] // snapping may leave a near-duplicate behind
	}
	return ring
}

// ToSolid loads a coordinate file and extrudes its outline into a solid of
// the given thickness. Coordinates are taken as fractions of chord. Outlines
// failing the overlap check of package polygon are rejected with its error.
func ToSolid(textPath string, chord, thickness float64) (*mesh.Mesh, error) {
	if !(chord > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidDimension, chord)
	}
	pts, err := LoadText(textPath)
	if err != nil {
		return nil, err
	}
	ring := PrepareRing(pts, chord)
	tracer().Debugf("%s: %d points, ring of %d vertices", textPath, len(pts), len(ring))
	if err := checkRing(ring); err != nil {
		return nil, fmt.Errorf("%s: %w", textPath, err)
	}
	m, err := mesh.Extrude(ring, thickness)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", textPath, err)
	}
	m.Name = SolidName
	return m, nil
}

// checkRing runs the overlap check on a prepared ring, closed for the check.
func checkRing(ring []foilcurve.Pair) error {
	if len(ring) < 3 {
		return fmt.Errorf("%w: ring has %d vertices", polygon.ErrInvalidPolygon, len(ring))
	}
	closed := foilcurve.CurveFromPairs(append(slices.Clone(ring), ring[0]))
	return polygon.ValidateCurve(closed).Err()
}

// ExportSolid converts a coordinate file into an STL file at stlPath. Any
// failure leaves no partial output behind.
func ExportSolid(textPath, stlPath string, chord, thickness float64, ascii bool) error {
	m, err := ToSolid(textPath, chord, thickness)
	if err != nil {
		tracer().Errorf("solid export: %v", err)
		return err
	}
	err = writeAtomic(stlPath, func(w io.Writer) error {
		if ascii {
			return m.WriteASCIISTL(w)
		}
		return m.WriteBinarySTL(w)
	})
	if err != nil {
		return err
	}
	tracer().Infof("wrote solid %q with %d facets to %s", m.Name, len(m.Triangles), stlPath)
	return nil
}

// Exporter writes both artifacts of a validated curve.
type Exporter struct {
	Dir       string
	TextName  string
	SolidName string
	Chord     float64
	Thickness float64
	ASCII     bool
}

// Export writes the curve as a coordinate file and then converts that file
// into a solid. It returns the paths written.
func (e Exporter) Export(c *foilcurve.Curve) (textPath, stlPath string, err error) {
	textPath = joinPath(e.Dir, e.TextName)
	stlPath = joinPath(e.Dir, e.SolidName)
	if err = SaveText(textPath, c); err != nil {
		return "", "", err
	}
	if err = ExportSolid(textPath, stlPath, e.Chord, e.Thickness, e.ASCII); err != nil {
		return textPath, "", err
	}
	return textPath, stlPath, nil
}
