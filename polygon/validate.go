package polygon

import (
	"fmt"

	"github.com/npillmayer/foilcurve"
)

// Messages reported by Validate.
const (
	MsgNotEnoughPoints = "not enough points"
	MsgSelfIntersects  = "curve self-intersects"
	MsgInvalidPolygon  = "invalid polygon"
	MsgZeroArea        = "zero area"
	MsgValid           = "valid"
)

// ValidationResult is the outcome of an overlap check.
type ValidationResult struct {
	IsOverlapping bool
	Message       string
}

// Err maps an overlapping result to one of the package's errors, and a
// non-overlapping one to nil.
func (r ValidationResult) Err() error {
	if !r.IsOverlapping {
		return nil
	}
	switch r.Message {
	case MsgSelfIntersects:
		return ErrSelfIntersecting
	case MsgInvalidPolygon:
		return ErrInvalidPolygon
	case MsgZeroArea:
		return ErrZeroArea
	}
	return fmt.Errorf("%w: %s", ErrInvalidPolygon, r.Message)
}

// ValidateCurve is Validate for a curve.
func ValidateCurve(c *foilcurve.Curve) ValidationResult {
	if c == nil {
		return Validate(nil, nil)
	}
	return Validate(c.Xs, c.Ys)
}

// Validate checks a sampled closed curve for self-intersection, polygon
// validity and degenerate area, in this order, and reports the first
// failing check.
//
// Fewer than 3 samples cannot form a region and are reported as not
// overlapping; callers gate on a minimum point count themselves. Every other
// failure, including unexpected ones, is reported as an overlap.
func Validate(xs, ys []float64) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			L().Errorf("overlap check failed: %v", r)
			result = ValidationResult{true, fmt.Sprintf("overlap check failed: %v", r)}
		}
	}()
	if len(xs) != len(ys) {
		return ValidationResult{true, fmt.Sprintf("coordinate count mismatch: %d x, %d y", len(xs), len(ys))}
	}
	if len(xs) < 3 {
		return ValidationResult{false, MsgNotEnoughPoints}
	}
	path := make([]foilcurve.Pair, len(xs))
	for i := range xs {
		path[i] = foilcurve.P(xs[i], ys[i])
		if !path[i].IsFinite() {
			return ValidationResult{true, fmt.Sprintf("%v at sample %d", ErrNonFinite, i)}
		}
	}
	if !IsSimplePath(path) {
		return ValidationResult{true, MsgSelfIntersects}
	}
	pg := FromPairs(path)
	if err := pg.Valid(); err != nil {
		L().Infof("polygon rejected: %v", err)
		return ValidationResult{true, MsgInvalidPolygon}
	}
	if pg.Area() == 0 {
		return ValidationResult{true, MsgZeroArea}
	}
	L().Debugf("curve with %d samples is valid, area %g", len(xs), pg.Area())
	return ValidationResult{false, MsgValid}
}
