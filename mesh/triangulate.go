package mesh

import (
	"fmt"
	"slices"

	"github.com/npillmayer/foilcurve"
	"github.com/npillmayer/foilcurve/polygon"
)

// SignedArea returns the area of a ring, positive if it is oriented
// counter-clockwise. The ring must not repeat its first vertex.
func SignedArea(ring []foilcurve.Pair) float64 {
	pg := polygon.NullPolygon()
	for _, p := range ring {
		pg.Knot(p)
	}
	return pg.Cycle().SignedArea()
}

// CounterClockwise returns the ring in counter-clockwise orientation,
// reversing a copy if necessary.
func CounterClockwise(ring []foilcurve.Pair) []foilcurve.Pair {
	ccw := slices.Clone(ring)
	if SignedArea(ccw) < 0 {
		slices.Reverse(ccw)
	}
	return ccw
}

// Triangulate splits a simple ring into triangles by ear clipping. The ring
// must be counter-clockwise and must not repeat its first vertex; triangles
// are returned as counter-clockwise index triples into ring. Rings which
// cross or touch themselves are rejected with ErrTriangulation.
func Triangulate(ring []foilcurve.Pair) ([][3]int, error) {
	n := len(ring)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerateRing, n)
	}
	if area := SignedArea(ring); area <= 0 {
		return nil, fmt.Errorf("%w: signed area %g", ErrDegenerateRing, area)
	}
	if err := polygon.FromPairs(ring).Valid(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]int, 0, n-2)
	cursor := 0
	for len(idx) > 3 {
		m := len(idx)
		clipped := false
		for step := 0; step < m; step++ {
			i := (cursor + step) % m
			if isEar(ring, idx, i) {
				prev, next := idx[(i+m-1)%m], idx[(i+1)%m]
				tris = append(tris, [3]int{prev, idx[i], next})
				idx = slices.Delete(idx, i, i+1)
				cursor = i % len(idx)
				clipped = true
				break
			}
		}
		if clipped {
			continue
		}
		// no ear: drop a vertex on a straight run, it spans no triangle
		if i := straightVertex(ring, idx); i >= 0 {
			idx = slices.Delete(idx, i, i+1)
			continue
		}
		return nil, fmt.Errorf("%w: no ear among %d remaining vertices", ErrTriangulation, m)
	}
	if orient(ring[idx[0]], ring[idx[1]], ring[idx[2]]) > 0 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	tracer().Debugf("triangulated ring of %d vertices into %d triangles", n, len(tris))
	return tris, nil
}

func orient(a, b, c foilcurve.Pair) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// isEar checks if the vertex at position i of the remaining polygon idx
// forms a convex corner whose triangle contains no other vertex.
func isEar(ring []foilcurve.Pair, idx []int, i int) bool {
	m := len(idx)
	a, b, c := ring[idx[(i+m-1)%m]], ring[idx[i]], ring[idx[(i+1)%m]]
	if orient(a, b, c) <= 0 {
		return false
	}
	for j := 0; j < m; j++ {
		p := ring[idx[j]]
		if p == a || p == b || p == c {
			continue
		}
		if orient(a, b, p) >= 0 && orient(b, c, p) >= 0 && orient(c, a, p) >= 0 {
			return false
		}
	}
	return true
}

func straightVertex(ring []foilcurve.Pair, idx []int) int {
	m := len(idx)
	for i := range idx {
		if orient(ring[idx[(i+m-1)%m]], ring[idx[i]], ring[idx[(i+1)%m]]) == 0 {
			return i
		}
	}
	return -1
}
