package geometry

import (
	"math"

	"github.com/golang/geo/r1"
)

// Section is the closed segment [A, B]. A zero-length section behaves as the
// point A in every predicate.
type Section struct {
	A, B Vector3D
}

// NewSection returns the segment between a and b.
func NewSection(a, b Vector3D) Section { return Section{A: a, B: b} }

// IsValid reports whether both ends are finite and distinct.
func (s Section) IsValid() bool {
	return s.A.IsValid() && s.B.IsValid() && !s.IsDegenerate()
}

// IsDegenerate reports whether both ends coincide.
func (s Section) IsDegenerate() bool { return s.A.IsMatch(s.B) }

// Length returns |B-A|.
func (s Section) Length() Real { return s.A.Distance(s.B) }

// Line returns the line through A and B; it fails for a degenerate section.
func (s Section) Line() (Line, error) {
	return NewLine(s.A, s.B.Sub(s.A))
}

// Contains reports whether p lies on the segment, endpoints included.
func (s Section) Contains(p Vector3D) bool {
	if s.IsDegenerate() {
		return p.IsMatch(s.A)
	}
	ab := s.B.Sub(s.A)
	ap := p.Sub(s.A)
	l := ab.Len()
	// perpendicular offset from the segment's line
	if ap.Cross(ab).Len()/l > Eps(math.Max(ap.Len(), l)) {
		return false
	}
	// (p-a)·(p-b) is positive past either end, ~|ab|*overshoot.
	return ap.Dot(p.Sub(s.B)) <= Eps(l)*l
}

// Intersects reports whether two segments share at least one point.
func (s Section) Intersects(o Section) bool {
	if s.IsDegenerate() {
		return o.Contains(s.A)
	}
	if o.IsDegenerate() {
		return s.Contains(o.A)
	}
	l1, err := s.Line()
	if err != nil {
		return false
	}
	l2, err := o.Line()
	if err != nil {
		return false
	}
	if l1.IsMatch(l2) {
		return s.overlaps(o)
	}
	if !l1.Intersects(l2) {
		return false
	}
	p, ok := l1.IntersectPoint(l2)
	return ok && s.Contains(p) && o.Contains(p)
}

// overlaps tests two collinear segments for 1-D overlap on the axis along
// which s spreads the most.
func (s Section) overlaps(o Section) bool {
	axis := s.B.Sub(s.A).DominantAxis()
	i1 := r1.IntervalFromPoint(s.A.Component(axis)).AddPoint(s.B.Component(axis))
	i2 := r1.IntervalFromPoint(o.A.Component(axis)).AddPoint(o.B.Component(axis))
	scale := math.Max(
		math.Max(math.Abs(i1.Lo), math.Abs(i1.Hi)),
		math.Max(math.Abs(i2.Lo), math.Abs(i2.Hi)),
	)
	return i1.Expanded(Eps(scale)).Intersects(i2)
}

// IntersectsLine reports whether the segment touches the infinite line l.
func (s Section) IntersectsLine(l Line) bool {
	if s.IsDegenerate() {
		return l.Contains(s.A)
	}
	sl, err := s.Line()
	if err != nil {
		return false
	}
	if sl.IsMatch(l) {
		return true
	}
	p, ok := sl.IntersectPoint(l)
	return ok && s.Contains(p)
}

// IsBelong reports whether the whole segment lies on l.
func (s Section) IsBelong(l Line) bool {
	return l.Contains(s.A) && l.Contains(s.B)
}

// IntersectPoint returns the point where the segment's line crosses l.
// The point is not checked against the segment bounds.
func (s Section) IntersectPoint(l Line) (Vector3D, bool) {
	if s.IsDegenerate() {
		return s.A, l.Contains(s.A)
	}
	sl, err := s.Line()
	if err != nil {
		return Vector3D{}, false
	}
	return sl.IntersectPoint(l)
}
