package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/foilcurve"
	"github.com/peterstace/simplefeatures/geom"
)

// Polygon is a closed polygonal ring. The ring is stored without a redundant
// closing vertex: the last knot implicitly connects back to the first one.
type Polygon struct {
	ring  polyclip.Contour
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a vertex to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p foilcurve.Pair) *Polygon {
	pg.ring.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners, in
// counter-clockwise order starting at the lower left corner.
func Box(a, b foilcurve.Pair) *Polygon {
	x0, x1 := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	y0, y1 := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().Knot(foilcurve.P(x0, y0)).Knot(foilcurve.P(x1, y0)).
		Knot(foilcurve.P(x1, y1)).Knot(foilcurve.P(x0, y1)).Cycle()
}

// FromCurve creates a polygon from the samples of a curve. Consecutive
// duplicate samples and an explicit closing sample are dropped.
func FromCurve(c *foilcurve.Curve) *Polygon {
	return FromPairs(c.Pairs())
}

// FromPairs creates a polygon from a path of vertices, see FromCurve.
func FromPairs(path []foilcurve.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range dedupe(path) {
		pg.Knot(p)
	}
	if n := pg.N(); n > 1 && pg.Pt(0) == pg.Pt(n-1) {
		pg.ring = pg.ring[:n-1]
	}
	return pg.Cycle()
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return len(pg.ring)
}

// IsCycle is a predicate: has this polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns vertex i mod N.
func (pg *Polygon) Pt(i int) foilcurve.Pair {
	n := pg.N()
	i = ((i % n) + n) % n
	return foilcurve.P(pg.ring[i].X, pg.ring[i].Y)
}

// Pairs returns the vertices, without a closing vertex.
func (pg *Polygon) Pairs() []foilcurve.Pair {
	pts := make([]foilcurve.Pair, pg.N())
	for i := range pts {
		pts[i] = pg.Pt(i)
	}
	return pts
}

// Contour returns a copy of the ring as a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	return pg.ring.Clone()
}

// BoundingBox returns lower left and upper right corner of the polygon.
func (pg *Polygon) BoundingBox() (foilcurve.Pair, foilcurve.Pair) {
	bb := pg.ring.BoundingBox()
	return foilcurve.P(bb.Min.X, bb.Min.Y), foilcurve.P(bb.Max.X, bb.Max.Y)
}

// Contains is a predicate: is p inside the polygon?
func (pg *Polygon) Contains(p foilcurve.Pair) bool {
	return pg.ring.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// SignedArea returns the area of the ring, positive for counter-clockwise
// orientation.
func (pg *Polygon) SignedArea() float64 {
	if pg.N() < 3 {
		return 0
	}
	return pg.geometry().Area(geom.SignedArea)
}

// Area returns the absolute area of the ring.
func (pg *Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// AreaOutside returns the area of pg which lies outside of polygon clip.
func (pg *Polygon) AreaOutside(clip *Polygon) (area float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipping failed: %v", r)
		}
	}()
	subject := polyclip.Polygon{pg.ring}
	diff := subject.Construct(polyclip.DIFFERENCE, polyclip.Polygon{clip.ring})
	for _, c := range diff {
		part := &Polygon{ring: c, cycle: true}
		area += part.Area()
	}
	return area, nil
}

// Valid checks if pg is a valid polygon: at least 3 distinct finite
// vertices, and a ring which does not cross or touch itself.
func (pg *Polygon) Valid() error {
	if pg.N() < 3 {
		return fmt.Errorf("%w: ring has %d distinct vertices", ErrInvalidPolygon, pg.N())
	}
	for i := range pg.ring {
		if !pg.Pt(i).IsFinite() {
			return fmt.Errorf("%w at vertex %d", ErrNonFinite, i)
		}
	}
	if err := pg.geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolygon, err)
	}
	return nil
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Pt(i).String())
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

// dedupe drops vertices equal to their predecessor.
func dedupe(path []foilcurve.Pair) []foilcurve.Pair {
	out := make([]foilcurve.Pair, 0, len(path))
	for i, p := range path {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
