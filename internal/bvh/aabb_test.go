package bvh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	g "github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

func tri(t testing.TB, a, b, c g.Vector3D) g.Triangle {
	t.Helper()
	tr, err := g.NewTriangle(a, b, c)
	require.NoError(t, err)
	return tr
}

func box(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{Min: g.V(minX, minY, minZ), Max: g.V(maxX, maxY, maxZ)}
}

func TestNewAABB(t *testing.T) {
	b := NewAABB(tri(t, g.V(1, 5, -2), g.V(-3, 2, 0), g.V(0, 7, 4)))
	assert.Equal(t, box(-3, 2, -2, 1, 7, 4), b)
	assert.True(t, b.IsValid())

	flat := NewAABB(tri(t, g.V(0, 0, 0), g.V(1, 0, 0), g.V(0, 1, 0)))
	assert.True(t, flat.IsValid())
	assert.Equal(t, g.V(1, 1, 0), flat.Extent())

	assert.False(t, box(1, 0, 0, 0, 1, 1).IsValid())
}

func TestAABBExpandUpdatesMinAndMax(t *testing.T) {
	b := NewAABB(tri(t, g.V(0, 0, 0), g.V(1, 0, 0), g.V(0, 1, 0)))
	b = b.Expand(tri(t, g.V(-1, 3, 2), g.V(5, -2, 0), g.V(0, 0, -4)))
	assert.Equal(t, box(-1, -2, -4, 5, 3, 2), b)
}

func TestAABBMerge(t *testing.T) {
	a := box(0, 0, 0, 1, 2, 3)
	b := box(-1, 1, 2, 2, 1.5, 3.5)
	assert.Equal(t, box(-1, 0, 0, 2, 2, 3.5), a.Merge(b))
	assert.Equal(t, a.Merge(b), b.Merge(a))
}

func TestAABBIntersects(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlap", box(0.5, 0.5, 0.5, 2, 2, 2), true},
		{"touch face", box(1, 0, 0, 2, 1, 1), true},
		{"gap within eps", box(1+5e-7, 0, 0, 2, 1, 1), true},
		{"gap", box(1.01, 0, 0, 2, 1, 1), false},
		{"apart on z only", box(0, 0, 3, 1, 1, 4), false},
		{"contained", box(0.2, 0.2, 0.2, 0.3, 0.3, 0.3), true},
		{"flat on face", box(0, 0, 1, 1, 1, 1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(a))
		})
	}
}

func TestAABBIsInside(t *testing.T) {
	outer := box(0, 0, 0, 4, 4, 4)
	assert.True(t, box(1, 1, 1, 2, 2, 2).IsInside(outer))
	assert.True(t, outer.IsInside(outer))
	assert.True(t, box(0, 0, 0, 4+5e-7, 4, 4).IsInside(outer))
	assert.False(t, box(1, 1, 1, 5, 2, 2).IsInside(outer))
	assert.False(t, outer.IsInside(box(1, 1, 1, 2, 2, 2)))
}

func TestAABBWidestAxis(t *testing.T) {
	tests := []struct {
		name string
		b    AABB
		want int
	}{
		{"x", box(0, 0, 0, 3, 1, 1), g.AxisX},
		{"y", box(0, 0, 0, 1, 3, 1), g.AxisY},
		{"z", box(0, 0, 0, 1, 1, 3), g.AxisZ},
		{"cube picks x", box(0, 0, 0, 2, 2, 2), g.AxisX},
		{"y ties z", box(0, 0, 0, 1, 2, 2), g.AxisY},
		{"x ties z", box(0, 0, 0, 2, 1, 2), g.AxisX},
		{"point", box(1, 1, 1, 1, 1, 1), g.AxisX},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.b.WidestAxis())
		})
	}
}
