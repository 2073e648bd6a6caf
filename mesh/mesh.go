package mesh

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a facet with counter-clockwise vertices, seen from outside.
type Triangle [3]r3.Vec

// Normal returns the unit normal of t, or the zero vector for a triangle
// without area.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Mesh is a triangulated surface, stored as a triangle soup.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// Extrude triangulates a closed ring in the xy-plane and sweeps it from z=0
// to z=height. The ring must not repeat its first vertex; orientation does
// not matter. The result is a closed solid with outward facing triangles;
// a surface which does not close up is reported as ErrTriangulation.
func Extrude(ring []foilcurve.Pair, height float64) (*Mesh, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("%w: %g", ErrThickness, height)
	}
	ccw := CounterClockwise(ring)
	tris, err := Triangulate(ccw)
	if err != nil {
		return nil, err
	}
	bottom := func(i int) r3.Vec { return r3.Vec{X: ccw[i].X(), Y: ccw[i].Y()} }
	top := func(i int) r3.Vec { return r3.Vec{X: ccw[i].X(), Y: ccw[i].Y(), Z: height} }
	m := &Mesh{Triangles: make([]Triangle, 0, 2*len(tris)+2*len(ccw))}
	for _, t := range tris {
		m.Triangles = append(m.Triangles,
			Triangle{bottom(t[0]), bottom(t[2]), bottom(t[1])},
			Triangle{top(t[0]), top(t[1]), top(t[2])})
	}
	for i := range ccw {
		j := (i + 1) % len(ccw)
		m.Triangles = append(m.Triangles,
			Triangle{bottom(i), bottom(j), top(j)},
			Triangle{bottom(i), top(j), top(i)})
	}
	if !m.IsWatertight() {
		return nil, fmt.Errorf("%w: extruded ring of %d vertices is not watertight", ErrTriangulation, len(ccw))
	}
	tracer().Infof("extruded ring of %d vertices to %d triangles, height %g",
		len(ccw), len(m.Triangles), height)
	return m, nil
}

// Bounds returns the corners of the axis aligned bounding box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Triangles) == 0 {
		return r3.Box{}
	}
	box := r3.Box{Min: m.Triangles[0][0], Max: m.Triangles[0][0]}
	for _, t := range m.Triangles {
		for _, v := range t {
			box.Min = r3.Vec{X: min(box.Min.X, v.X), Y: min(box.Min.Y, v.Y), Z: min(box.Min.Z, v.Z)}
			box.Max = r3.Vec{X: max(box.Max.X, v.X), Y: max(box.Max.Y, v.Y), Z: max(box.Max.Z, v.Z)}
		}
	}
	return box
}

// IsWatertight is a predicate: is every edge shared by exactly two
// triangles, traversed once in each direction?
func (m *Mesh) IsWatertight() bool {
	type edge struct{ a, b r3.Vec }
	count := make(map[edge]int)
	for _, t := range m.Triangles {
		for k := 0; k < 3; k++ {
			count[edge{t[k], t[(k+1)%3]}]++
		}
	}
	for e, c := range count {
		if c != 1 || count[edge{e.b, e.a}] != 1 {
			return false
		}
	}
	return len(count) > 0
}

// ZeroAreaTriangles counts triangles without area.
func (m *Mesh) ZeroAreaTriangles() int {
	n := 0
	for _, t := range m.Triangles {
		if t.Normal() == (r3.Vec{}) {
			n++
		}
	}
	return n
}
