package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Plane is {p : normal·p = D} with a unit normal.
type Plane struct {
	point  Vector3D
	normal Vector3D
	d      Real
}

// NewPlane builds a plane through point with the given (not necessarily unit) normal.
func NewPlane(point, normal Vector3D) (Plane, error) {
	if !point.IsValid() {
		return Plane{}, errors.Wrapf(ErrInvalidArgument, "plane point %v", point)
	}
	n, err := normal.Normalize()
	if err != nil {
		return Plane{}, errors.Wrap(err, "plane normal")
	}
	return Plane{point: point, normal: n, d: n.Dot(point)}, nil
}

// Point returns the point the plane was built through.
func (pl Plane) Point() Vector3D { return pl.point }

// Normal returns the unit normal.
func (pl Plane) Normal() Vector3D { return pl.normal }

// D returns the offset in Normal()·x = D.
func (pl Plane) D() Real { return pl.d }

// Distance between two planes; meaningful only when their normals are collinear.
func (pl Plane) Distance(o Plane) Real {
	sign := -1.0
	if pl.normal.IsCodirected(o.normal) {
		sign = 1.0
	}
	return math.Abs(pl.d - sign*o.d)
}

// IsMatch reports whether both planes are the same plane.
func (pl Plane) IsMatch(o Plane) bool {
	if !pl.normal.IsCollinear(o.normal) {
		return false
	}
	return IsZero(pl.Distance(o), math.Max(math.Abs(pl.d), math.Abs(o.d)))
}

// IsParallel reports whether the planes are parallel and distinct.
func (pl Plane) IsParallel(o Plane) bool {
	if !pl.normal.IsCollinear(o.normal) {
		return false
	}
	return !IsZero(pl.Distance(o), math.Max(math.Abs(pl.d), math.Abs(o.d)))
}

// Contains reports whether p lies on the plane.
func (pl Plane) Contains(p Vector3D) bool {
	return IsZero(p.Dot(pl.normal)-pl.d, p.Len())
}

// ContainsLine reports whether the whole line lies on the plane.
func (pl Plane) ContainsLine(l Line) bool {
	return IsZero(pl.normal.Dot(l.dir), l.dir.Len()) && pl.Contains(l.origin)
}

// Intersects reports whether the line crosses the plane or lies in it.
func (pl Plane) Intersects(l Line) bool {
	return !IsZero(pl.normal.Dot(l.dir), l.dir.Len()) || pl.ContainsLine(l)
}

// IntersectPoint returns the point where l meets the plane. A line lying in
// the plane yields its origin. Asking for a line that misses the plane is
// an ErrLogic.
func (pl Plane) IntersectPoint(l Line) (Vector3D, error) {
	if !pl.Intersects(l) {
		return Vector3D{}, errors.Wrapf(ErrLogic, "line %v does not meet plane", l)
	}
	denom := pl.normal.Dot(l.dir)
	if IsZero(denom, l.dir.Len()) {
		return l.origin, nil
	}
	t := (pl.d - pl.normal.Dot(l.origin)) / denom
	return l.origin.Add(l.dir.Mul(t)), nil
}
