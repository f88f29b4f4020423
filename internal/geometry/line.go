package geometry

import (
	"fmt"

	"github.com/pkg/errors"
)

// Line is the infinite line origin + t*dir.
type Line struct {
	origin Vector3D
	dir    Vector3D
}

// NewLine builds a line; the direction must be finite and non-zero. The
// direction is stored with unit length.
func NewLine(origin, dir Vector3D) (Line, error) {
	if !origin.IsValid() || !dir.IsValid() {
		return Line{}, errors.Wrapf(ErrInvalidArgument, "line origin %v dir %v", origin, dir)
	}
	if dir.IsZero() {
		return Line{}, errors.Wrapf(ErrInvalidArgument, "line direction %v is zero", dir)
	}
	u, err := dir.Normalize()
	if err != nil {
		return Line{}, err
	}
	return Line{origin: origin, dir: u}, nil
}

// Origin returns the point the line was built through.
func (l Line) Origin() Vector3D { return l.origin }

// Dir returns the unit direction.
func (l Line) Dir() Vector3D { return l.dir }

// IsValid is false only for the zero Line.
func (l Line) IsValid() bool {
	return l.origin.IsValid() && l.dir.IsValid() && !l.dir.IsZero()
}

// Distance returns the perpendicular distance from p to the line.
func (l Line) Distance(p Vector3D) Real {
	return p.Sub(l.origin).Cross(l.dir).Len() / l.dir.Len()
}

// Contains reports whether p lies on the line.
func (l Line) Contains(p Vector3D) bool {
	return l.Distance(p) <= Eps(p.Sub(l.origin).Len())
}

// IsMatch reports whether both lines are the same infinite line.
func (l Line) IsMatch(o Line) bool {
	return l.dir.IsCollinear(o.dir) && l.Contains(o.origin)
}

// IsParallel reports whether the lines are parallel and distinct.
func (l Line) IsParallel(o Line) bool {
	return l.dir.IsCollinear(o.dir) && !l.Contains(o.origin)
}

// Intersects reports whether the lines share at least one point.
func (l Line) Intersects(o Line) bool {
	if l.IsMatch(o) {
		return true
	}
	if l.IsParallel(o) {
		return false
	}
	n := l.dir.Cross(o.dir)
	v := o.origin.Sub(l.origin)
	return IsZero(v.Dot(n), v.Len()*n.Len())
}

// IntersectPoint returns the single crossing point of two lines.
// ok is false for skew, parallel or identical lines.
//
//	l: p1 + t*d1
//	o: p2 + s*d2
func (l Line) IntersectPoint(o Line) (p Vector3D, ok bool) {
	if l.IsMatch(o) || !l.Intersects(o) {
		return Vector3D{}, false
	}
	p1, d1 := l.origin, l.dir
	p2, d2 := o.origin, o.dir

	n := d1.Cross(d2)
	n2 := n.Dot(n)
	if n2 == 0 {
		return Vector3D{}, false
	}
	w := p2.Sub(p1)
	t := w.Cross(d2).Dot(n) / n2
	s := w.Cross(d1).Dot(n) / n2

	a := p1.Add(d1.Mul(t))
	b := p2.Add(d2.Mul(s))
	if !a.IsMatch(b) {
		return Vector3D{}, false
	}
	return a, true
}

func (l Line) String() string {
	return fmt.Sprintf("origin=%v dir=%v", l.origin, l.dir)
}
