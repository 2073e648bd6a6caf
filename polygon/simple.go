package polygon

import (
	"github.com/npillmayer/foilcurve"
	"github.com/peterstace/simplefeatures/geom"
)

// IsSimplePath is a predicate: is the path free of self-intersections?
//
// A path whose last vertex equals its first one is a closed ring; there, the
// first and last edge meet at the start vertex legally. Any other contact
// between non-adjacent edges, including touching, makes a path non-simple,
// as does an edge doubling back onto its predecessor. Repeated consecutive
// vertices are ignored.
func IsSimplePath(path []foilcurve.Pair) bool {
	v := dedupe(path)
	if len(v) < 2 {
		return true
	}
	return lineString(v).IsSimple()
}

// lineString converts a path into an XY line string.
func lineString(path []foilcurve.Pair) geom.LineString {
	coords := make([]float64, 0, 2*len(path))
	for _, p := range path {
		coords = append(coords, p.X(), p.Y())
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}

// lineRing returns the polygon's vertices as a closed line string.
func (pg *Polygon) lineRing() geom.LineString {
	if pg.N() == 0 {
		return lineString(nil)
	}
	return lineString(append(pg.Pairs(), pg.Pt(0)))
}

// geometry returns pg as a polygon of package simplefeatures/geom.
func (pg *Polygon) geometry() geom.Polygon {
	return geom.NewPolygon([]geom.LineString{pg.lineRing()})
}
