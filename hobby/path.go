package hobby

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/npillmayer/foilcurve"
)

// Path is a cyclic skeleton path of smooth knots. To construct a path, start
// with Nullpath() and extend it by Knot(…) calls.
type Path struct {
	points []foilcurve.Pair
	cycle  bool
}

// Nullpath creates an empty path, to be extended by subsequent builder calls.
func Nullpath() *Path {
	return &Path{}
}

// Knot adds a smooth knot to a path. Part of builder functionality.
func (path *Path) Knot(p foilcurve.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// Cycle closes the path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// FromPoints creates a cyclic path from a point sequence. A last point which
// repeats the first one is dropped, as the cycle connects them anyway.
func FromPoints(points []foilcurve.Pair) *Path {
	n := len(points)
	if n > 1 && cmplx.Abs((points[0]-points[n-1]).C()) <= _epsilon {
		n--
	}
	path := &Path{points: make([]foilcurve.Pair, n), cycle: true}
	copy(path.points, points[:n])
	return path
}

// N returns the knot count.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) foilcurve.Pair {
	n := path.N()
	return path.points[((i%n)+n)%n]
}

func (path *Path) delta(i int) foilcurve.Pair {
	return path.Z(i+1) - path.Z(i)
}

func (path *Path) d(i int) float64 {
	r, _ := cmplx.Polar(path.delta(i).C())
	return r
}

// Turning angle at z.i.
func (path *Path) psi(i int) float64 {
	return reduceAngle(cmplx.Phase(path.delta(i).C()) - cmplx.Phase(path.delta(i-1).C()))
}

// Validate checks if a path is solvable.
func (path *Path) Validate() error {
	if !path.cycle {
		return ErrOpenPath
	}
	n := path.N()
	if n < 3 {
		return fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		if !path.points[i].IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n; i++ {
		if path.d(i) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, (i+1)%n)
		}
	}
	return nil
}

// AsString returns a path in MetaFont notation. If controls is non-nil,
// control points are included.
func AsString(path *Path, controls *Controls) string {
	var sb strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			if controls != nil {
				fmt.Fprintf(&sb, " and %s\n  .. ", ptstring(controls.PreControl(i), true))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(path.Z(i), false))
		if controls != nil {
			fmt.Fprintf(&sb, " .. controls %s", ptstring(controls.PostControl(i), true))
		}
	}
	if controls != nil && path.N() > 0 {
		fmt.Fprintf(&sb, " and %s\n ", ptstring(controls.PreControl(0), true))
	}
	sb.WriteString(" .. cycle")
	return sb.String()
}
