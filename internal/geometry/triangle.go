package geometry

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Triangle is an ordered vertex triple. It may be degenerate: all three
// vertices coincide (a point) or they are collinear (a section).
type Triangle struct {
	a, b, c  Vector3D
	centroid Vector3D
}

// NewTriangle builds a triangle; vertices must be finite.
func NewTriangle(a, b, c Vector3D) (Triangle, error) {
	if !a.IsValid() || !b.IsValid() || !c.IsValid() {
		return Triangle{}, errors.Wrapf(ErrInvalidArgument, "triangle %v %v %v", a, b, c)
	}
	return Triangle{a: a, b: b, c: c, centroid: a.Add(b).Add(c).Mul(1.0 / 3)}, nil
}

// A returns the first vertex.
func (t Triangle) A() Vector3D { return t.a }

// B returns the second vertex.
func (t Triangle) B() Vector3D { return t.b }

// C returns the third vertex.
func (t Triangle) C() Vector3D { return t.c }

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Vector3D { return t.centroid }

// Vertices returns a, b, c in order.
func (t Triangle) Vertices() [3]Vector3D { return [3]Vector3D{t.a, t.b, t.c} }

// Edges returns ab, bc, ca.
func (t Triangle) Edges() [3]Section {
	return [3]Section{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

// IsPoint reports whether all three vertices coincide.
func (t Triangle) IsPoint() bool {
	return t.b.Sub(t.a).IsZero() && t.c.Sub(t.a).IsZero()
}

// IsSection reports whether the triangle collapses to a segment.
func (t Triangle) IsSection() bool {
	if t.IsPoint() {
		return false
	}
	for _, e := range t.Edges() {
		if e.IsDegenerate() {
			return true
		}
	}
	return t.b.Sub(t.a).IsCollinear(t.c.Sub(t.a))
}

// Plane returns the supporting plane. Degenerate triangles have none.
func (t Triangle) Plane() (Plane, error) {
	if t.IsPoint() || t.IsSection() {
		return Plane{}, errors.Wrapf(ErrLogic, "degenerate triangle %v has no plane", t)
	}
	return NewPlane(t.a, t.b.Sub(t.a).Cross(t.c.Sub(t.a)))
}

// span returns the longest of the three vertex pairs. For a section-like
// triangle it covers all three vertices.
func (t Triangle) span() Section {
	edges := t.Edges()
	best := edges[0]
	for _, e := range edges[1:] {
		if e.Length() > best.Length() {
			best = e
		}
	}
	return best
}

// Intersects reports whether two triangles share at least one point.
// Touching counts. The relation is symmetric.
func (t Triangle) Intersects(o Triangle) bool {
	switch {
	case t.IsPoint() && o.IsPoint():
		return t.a.IsMatch(o.a)
	case t.IsPoint() && o.IsSection():
		return o.span().Contains(t.a)
	case t.IsSection() && o.IsPoint():
		return t.span().Contains(o.a)
	case t.IsSection() && o.IsSection():
		return t.span().Intersects(o.span())
	case t.IsPoint():
		return o.containsPoint(t.a)
	case o.IsPoint():
		return t.containsPoint(o.a)
	case t.IsSection():
		return o.IntersectsSection(t.span())
	case o.IsSection():
		return t.IntersectsSection(o.span())
	}

	p1, err := t.Plane()
	if err != nil {
		return false
	}
	p2, err := o.Plane()
	if err != nil {
		return false
	}
	if p1.IsMatch(p2) {
		return t.intersect2D(o)
	}
	if p1.IsParallel(p2) {
		return false
	}
	return t.intersect3D(o, p1, p2)
}

// containsPoint is Contains for an arbitrary point in space.
func (t Triangle) containsPoint(p Vector3D) bool {
	pl, err := t.Plane()
	if err != nil {
		return false
	}
	return pl.Contains(p) && t.Contains(p)
}

// IntersectsSection reports whether the segment s touches the triangle.
func (t Triangle) IntersectsSection(s Section) bool {
	switch {
	case t.IsPoint():
		return s.Contains(t.a)
	case t.IsSection():
		return t.span().Intersects(s)
	case s.IsDegenerate():
		return t.containsPoint(s.A)
	}

	pl, err := t.Plane()
	if err != nil {
		return false
	}
	l, err := s.Line()
	if err != nil {
		return false
	}
	if !pl.Intersects(l) {
		return false
	}
	if pl.ContainsLine(l) {
		if t.Contains(s.A) || t.Contains(s.B) {
			return true
		}
		for _, e := range t.Edges() {
			if e.Intersects(s) {
				return true
			}
		}
		return false
	}
	x, err := pl.IntersectPoint(l)
	if err != nil {
		return false
	}
	return s.Contains(x) && t.Contains(x)
}

// Contains reports whether p, assumed to lie in the triangle's plane, is
// inside the triangle or on its boundary.
func (t Triangle) Contains(p Vector3D) bool {
	pl, err := t.Plane()
	if err != nil {
		return false
	}
	n := pl.Normal()
	eps := Eps(t.span().Length())

	var pos, neg int
	for _, e := range t.Edges() {
		dir := e.B.Sub(e.A)
		// signed in-plane distance from the edge's line
		side := n.Cross(dir).Dot(p.Sub(e.A)) / dir.Len()
		if side >= -eps {
			pos++
		}
		if side <= eps {
			neg++
		}
	}
	return pos == 3 || neg == 3
}

// intersect2D handles two proper triangles in the same plane.
func (t Triangle) intersect2D(o Triangle) bool {
	for _, v := range o.Vertices() {
		if t.Contains(v) {
			return true
		}
	}
	for _, v := range t.Vertices() {
		if o.Contains(v) {
			return true
		}
	}
	for _, e1 := range t.Edges() {
		for _, e2 := range o.Edges() {
			if e1.Intersects(e2) {
				return true
			}
		}
	}
	return false
}

// intersect3D handles two proper triangles in non-parallel planes: both are
// cut by the planes' common line and the two chords must overlap.
func (t Triangle) intersect3D(o Triangle, p1, p2 Plane) bool {
	l, err := planesLine(p1, p2)
	if err != nil {
		return false
	}
	c1, ok := t.chord(l)
	if !ok {
		return false
	}
	c2, ok := o.chord(l)
	if !ok {
		return false
	}
	// degenerate chords act as points
	return c1.Intersects(c2)
}

// chord returns the part of l covered by the triangle, as the two extreme
// contact points along l. ok is false when fewer than two contacts exist.
func (t Triangle) chord(l Line) (Section, bool) {
	pts := make([]Vector3D, 0, 6)
	for _, e := range t.Edges() {
		if e.IsBelong(l) {
			pts = append(pts, e.A, e.B)
			continue
		}
		if !e.IntersectsLine(l) {
			continue
		}
		if p, ok := e.IntersectPoint(l); ok {
			pts = append(pts, p)
		} else {
			pts = append(pts, e.A, e.B)
		}
	}
	if len(pts) < 2 {
		return Section{}, false
	}

	dir, origin := l.Dir(), l.Origin()
	lo, hi := pts[0], pts[0]
	tLo := pts[0].Sub(origin).Dot(dir)
	tHi := tLo
	for _, p := range pts[1:] {
		tp := p.Sub(origin).Dot(dir)
		if tp < tLo {
			lo, tLo = p, tp
		}
		if tp > tHi {
			hi, tHi = p, tp
		}
	}
	return Section{A: lo, B: hi}, true
}

// planesLine returns the common line of two non-parallel planes. The origin
// is computed from the raw n1×n2; NewLine stores the unit direction.
func planesLine(p1, p2 Plane) (Line, error) {
	n1, n2 := p1.Normal(), p2.Normal()
	dir := n1.Cross(n2)
	dd := dir.Dot(dir)
	if dd == 0 || math.IsNaN(dd) {
		return Line{}, errors.Wrap(ErrLogic, "planes do not cross")
	}
	origin := n2.Mul(p1.D()).Sub(n1.Mul(p2.D())).Cross(dir).Mul(1 / dd)
	return NewLine(origin, dir)
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.a, t.b, t.c)
}
