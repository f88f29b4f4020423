package bvh

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"

	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// AABB is an axis-aligned bounding box. Flat boxes (Min == Max on some axis)
// are valid: an axis-aligned triangle has one by construction.
type AABB struct {
	Min, Max geometry.Vector3D
}

// NewAABB returns the box of a triangle's three vertices.
func NewAABB(t geometry.Triangle) AABB {
	b := AABB{Min: t.A(), Max: t.A()}
	return b.Expand(t)
}

// IsValid reports whether both corners are finite and Min <= Max on every axis.
func (b AABB) IsValid() bool {
	if !b.Min.IsValid() || !b.Max.IsValid() {
		return false
	}
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Expand returns the box grown to also cover t.
func (b AABB) Expand(t geometry.Triangle) AABB {
	for _, v := range t.Vertices() {
		b = b.addPoint(v)
	}
	return b
}

func (b AABB) addPoint(v geometry.Vector3D) AABB {
	return AABB{
		Min: geometry.V(math.Min(b.Min.X, v.X), math.Min(b.Min.Y, v.Y), math.Min(b.Min.Z, v.Z)),
		Max: geometry.V(math.Max(b.Max.X, v.X), math.Max(b.Max.Y, v.Y), math.Max(b.Max.Z, v.Z)),
	}
}

// Merge returns the smallest box covering both b and o.
func (b AABB) Merge(o AABB) AABB {
	return b.addPoint(o.Min).addPoint(o.Max)
}

// Extent returns Max - Min.
func (b AABB) Extent() geometry.Vector3D { return b.Max.Sub(b.Min) }

// WidestAxis returns the axis with the largest extent. Ties go to X, then Y.
func (b AABB) WidestAxis() int {
	e := b.Extent()
	switch {
	case e.X >= e.Y && e.X >= e.Z:
		return geometry.AxisX
	case e.Y >= e.Z:
		return geometry.AxisY
	default:
		return geometry.AxisZ
	}
}

func (b AABB) interval(axis int) r1.Interval {
	return r1.Interval{Lo: b.Min.Component(axis), Hi: b.Max.Component(axis)}
}

func (b AABB) eps(o AABB) geometry.Real {
	scale := 0.0
	for _, v := range []geometry.Vector3D{b.Min, b.Max, o.Min, o.Max} {
		scale = math.Max(scale, math.Abs(v.Component(v.DominantAxis())))
	}
	return geometry.Eps(scale)
}

// Intersects reports whether the boxes overlap on all three axes, touching
// within tolerance included.
func (b AABB) Intersects(o AABB) bool {
	eps := b.eps(o)
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		if !b.interval(axis).Expanded(eps).Intersects(o.interval(axis)) {
			return false
		}
	}
	return true
}

// IsInside reports whether b lies within o, within tolerance.
func (b AABB) IsInside(o AABB) bool {
	eps := b.eps(o)
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		if !o.interval(axis).Expanded(eps).ContainsInterval(b.interval(axis)) {
			return false
		}
	}
	return true
}

func (b AABB) String() string {
	return fmt.Sprintf("min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}
