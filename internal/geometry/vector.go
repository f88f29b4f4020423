package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Vector3D is a point or direction in 3D space. It is an immutable value:
// every operation returns a new vector.
type Vector3D r3.Vector

// Axis indices for Component.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// V is shorthand for Vector3D{x, y, z}.
func V(x, y, z Real) Vector3D { return Vector3D{X: x, Y: y, Z: z} }

func (v Vector3D) r3() r3.Vector { return r3.Vector(v) }

// Add returns v+o.
func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D(v.r3().Add(o.r3())) }

// Sub returns v-o.
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D(v.r3().Sub(o.r3())) }

// Mul scales v by s.
func (v Vector3D) Mul(s Real) Vector3D { return Vector3D(v.r3().Mul(s)) }

// Cross returns the vector product v×o.
func (v Vector3D) Cross(o Vector3D) Vector3D { return Vector3D(v.r3().Cross(o.r3())) }

// Dot returns the scalar product.
func (v Vector3D) Dot(o Vector3D) Real { return v.r3().Dot(o.r3()) }

// Len returns the Euclidean length of the vector.
func (v Vector3D) Len() Real { return v.r3().Norm() }

// Distance returns the Euclidean distance between two points.
func (v Vector3D) Distance(o Vector3D) Real { return v.Sub(o).Len() }

// Div divides by s; a zero divisor (within tolerance) is rejected.
func (v Vector3D) Div(s Real) (Vector3D, error) {
	if IsZero(s, 1) {
		return Vector3D{}, errors.Wrapf(ErrInvalidArgument, "division of %v by %g", v, s)
	}
	return v.Mul(1 / s), nil
}

// Normalize returns a unit-length version of the vector. Only an exactly
// zero vector is rejected, short vectors normalize fine.
func (v Vector3D) Normalize() (Vector3D, error) {
	if !v.IsValid() || v.Len() == 0 {
		return Vector3D{}, errors.Wrapf(ErrInvalidArgument, "cannot normalize %v", v)
	}
	return Vector3D(v.r3().Normalize()), nil
}

// IsValid reports whether all components are finite.
func (v Vector3D) IsValid() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsZero reports whether the vector length is zero at unit scale.
func (v Vector3D) IsZero() bool { return v.IsZeroScaled(1) }

// IsZeroScaled reports whether the vector length is negligible for a
// quantity of magnitude scale.
func (v Vector3D) IsZeroScaled(scale Real) bool {
	return IsZero(v.Len(), scale)
}

// IsCollinear reports whether v and o are parallel or anti-parallel.
// A zero vector is collinear with everything.
//
// |v×o| is the longer vector's length times the offset of the shorter one's
// tip from its line, so the absolute bound applies to that offset. Use
// Line.Contains, not this, to put a point on a line.
func (v Vector3D) IsCollinear(o Vector3D) bool {
	lv, lo := v.Len(), o.Len()
	c := v.Cross(o).Len()
	return c <= tol.Abs*math.Max(lv, lo) || c <= tol.Rel*lv*lo
}

// IsCodirected reports whether v and o are collinear and point the same way.
func (v Vector3D) IsCodirected(o Vector3D) bool {
	return v.IsCollinear(o) && v.Dot(o) >= 0
}

// IsMatch reports whether two points coincide.
func (v Vector3D) IsMatch(o Vector3D) bool { return v.Sub(o).IsZero() }

// Component returns the coordinate along axis (AxisX, AxisY or AxisZ).
func (v Vector3D) Component(axis int) Real {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// DominantAxis returns the axis with the largest absolute component.
func (v Vector3D) DominantAxis() int {
	return int(v.r3().LargestComponent())
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
