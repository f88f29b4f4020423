package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Real is the scalar type used by every geometric primitive.
type Real = float64

// Tolerance is the comparison policy shared by all predicates in this package:
// two finite values are equal when their difference is within Abs, or within
// Rel scaled by the larger magnitude.
type Tolerance struct {
	Abs Real `json:"abs"`
	Rel Real `json:"rel"`
}

// DefaultTolerance is 1e-6 absolute and 1e-6 relative.
var DefaultTolerance = Tolerance{Abs: 1e-6, Rel: 1e-6}

var tol = DefaultTolerance

// SetTolerance replaces the package tolerance. Call it once at start-up,
// before any geometry is built; it is not safe to change concurrently.
func SetTolerance(t Tolerance) error {
	if !isFinite(t.Abs) || !isFinite(t.Rel) || t.Abs <= 0 || t.Rel < 0 {
		return errors.Wrapf(ErrInvalidArgument, "tolerance abs=%g rel=%g", t.Abs, t.Rel)
	}
	tol = t
	return nil
}

// CurrentTolerance returns the tolerance in effect.
func CurrentTolerance() Tolerance { return tol }

// Cmp compares a and b under the package tolerance and returns -1, 0 or 1.
// NaN on either side compares as greater, equal infinities compare equal.
func Cmp(a, b Real) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 1
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		switch {
		case a == b:
			return 0
		case a < b:
			return -1
		default:
			return 1
		}
	}
	diff := math.Abs(a - b)
	if diff <= tol.Abs {
		return 0
	}
	if diff <= tol.Rel*math.Max(math.Abs(a), math.Abs(b)) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Equal reports whether a and b are equal within tolerance.
func Equal(a, b Real) bool { return Cmp(a, b) == 0 }

// IsZero reports whether x is zero for a quantity of the given magnitude.
func IsZero(x, scale Real) bool {
	if math.IsNaN(x) {
		return false
	}
	d := math.Abs(x)
	return d <= tol.Abs || d <= tol.Rel*scale
}

// Eps is the effective tolerance for a quantity of the given magnitude.
func Eps(scale Real) Real {
	return math.Max(tol.Abs, tol.Rel*scale)
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
