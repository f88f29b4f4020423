package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tri(t *testing.T, a, b, c Vector3D) Triangle {
	t.Helper()
	tr, err := NewTriangle(a, b, c)
	require.NoError(t, err)
	return tr
}

func dot(t *testing.T, p Vector3D) Triangle { return tri(t, p, p, p) }

func TestNewTriangle(t *testing.T) {
	tr := tri(t, V(0, 0, 0), V(3, 0, 0), V(0, 3, 0))
	assert.True(t, tr.Centroid().IsMatch(V(1, 1, 0)), tr.Centroid().String())
	assert.Equal(t, [3]Vector3D{V(0, 0, 0), V(3, 0, 0), V(0, 3, 0)}, tr.Vertices())
	assert.Equal(t, NewSection(V(3, 0, 0), V(0, 3, 0)), tr.Edges()[1])

	pl, err := tr.Plane()
	require.NoError(t, err)
	assert.Equal(t, V(0, 0, 1), pl.Normal())

	_, err = NewTriangle(V(0, 0, 0), V(1, 0, 0), V(0, math.Inf(1), 0))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTriangleClassification(t *testing.T) {
	tests := []struct {
		name             string
		a, b, c          Vector3D
		point, isSection bool
	}{
		{"proper", V(0, 0, 0), V(1, 0, 0), V(0, 1, 0), false, false},
		{"tiny proper", V(0, 0, 0), V(1e-3, 0, 0), V(0, 1e-3, 0), false, false},
		{"point", V(1, 2, 3), V(1, 2, 3), V(1, 2, 3), true, false},
		{"collinear", V(0, 0, 0), V(1, 0, 0), V(2, 0, 0), false, true},
		{"two coincide", V(0, 0, 0), V(0, 0, 0), V(1, 0, 0), false, true},
		{"last two coincide", V(0, 0, 0), V(1, 1, 1), V(1, 1, 1), false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := tri(t, tc.a, tc.b, tc.c)
			assert.Equal(t, tc.point, tr.IsPoint())
			assert.Equal(t, tc.isSection, tr.IsSection())
			_, err := tr.Plane()
			if tc.point || tc.isSection {
				assert.ErrorIs(t, err, ErrLogic)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTriangleContains(t *testing.T) {
	tr := tri(t, V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
	assert.True(t, tr.Contains(V(0.5, 0.5, 0)))
	assert.True(t, tr.Contains(V(1, 1, 0)))
	assert.True(t, tr.Contains(V(0, 0, 0)))
	assert.False(t, tr.Contains(V(1.5, 1.5, 0)))
	assert.False(t, tr.Contains(V(-0.1, 0.5, 0)))

	small := tri(t, V(0, 0, 0), V(1e-3, 0, 0), V(0, 1e-3, 0))
	assert.False(t, small.Contains(V(1, 1, 0)))
	assert.True(t, small.Contains(V(2e-4, 2e-4, 0)))
}

func TestTriangleIntersects(t *testing.T) {
	xy := tri(t, V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	big := tri(t, V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
	seg := tri(t, V(0, 0, 0), V(2, 0, 0), V(1, 0, 0))

	tests := []struct {
		name   string
		t1, t2 Triangle
		want   bool
	}{
		{"coplanar nested", xy, tri(t, V(0.2, 0, 0), V(1, 0, 0), V(0.2, 0.8, 0)), true},
		{"coplanar partial", xy, tri(t, V(0.5, -0.2, 0), V(1, -0.2, 0), V(0.5, 0.5, 0)), true},
		{"coplanar touch at vertex", xy, tri(t, V(1, 0, 0), V(2, 0, 0), V(1, 1, 0)), true},
		{"coplanar touch along edge", xy, tri(t, V(0, 1, 0), V(1, 0, 0), V(1, 1, 0)), true},
		{"coplanar shared edge reversed", xy, tri(t, V(1, 0, 0), V(0, 1, 0), V(1, 1, 0)), true},
		{"coplanar disjoint", xy, tri(t, V(2, 0, 0), V(3, 0, 0), V(2, 1, 0)), false},
		{"coplanar far away", xy, tri(t, V(100, 100, 0), V(101, 100, 0), V(100, 101, 0)), false},
		{"coplanar one inside another", tri(t, V(0, 0, 0), V(4, 0, 0), V(0, 4, 0)), tri(t, V(1, 1, 0), V(2, 1, 0), V(1, 2, 0)), true},
		{"identical", xy, xy, true},
		{"parallel planes", xy, tri(t, V(0, 0, 1), V(1, 0, 1), V(0, 1, 1)), false},
		{"almost parallel", xy, tri(t, V(0, 0, 1e-5), V(1, 0, 1e-5), V(0, 1, 1e-5)), false},
		{"inside but raised", tri(t, V(0, 0, 0), V(4, 0, 0), V(0, 4, 0)), tri(t, V(1, 1, 1), V(2, 1, 1), V(1, 2, 1)), false},
		{"crossing line x=1", big, tri(t, V(1, -1, -1), V(1, 1, 1), V(1, 1, -1)), true},
		{"pierced by segment", big, tri(t, V(1, -1, -1), V(1, 1, -1), V(1, 0, 1)), true},
		{"touch at point only", big, tri(t, V(2, 0, 0), V(2, 1, 1), V(2, -1, 1)), true},
		{"touch at shared vertex", xy, tri(t, V(0, 0, 0), V(0, 1, -1), V(1, 0, -1)), true},
		{"edge edge contact", xy, tri(t, V(1, 0, 0), V(1, 1, 1), V(1, -1, 1)), true},
		{"slice through", tri(t, V(0, 0, 0), V(3, 0, 0), V(0, 3, 0)), tri(t, V(0, 1, -1), V(3, 1, 1), V(1, 1, -1)), true},
		{"inner line cross", tri(t, V(0, 0, 0), V(3, 0, 0), V(0, 3, 0)), tri(t, V(1, 1, -1), V(1, 1, 1), V(1.5, 0.5, 0)), true},
		{"vertex on plane", xy, tri(t, V(0, 0, 0), V(1, -1, -1), V(1, 1, 1)), true},
		{"skew planes", big, tri(t, V(0, 0, 1), V(2, 2, -1), V(2, 0, 1)), true},
		{"non-parallel miss", big, tri(t, V(5, 5, -1), V(5, 5, 1), V(6, 5, 0)), false},
		{"plane crossed outside", xy, tri(t, V(2, 0, -1), V(2, 0, 1), V(2, 1, 0)), false},
		{"near coplanar crossing", tri(t, V(10, -5, 0), V(11, -5, 0), V(10, 5, 0)), tri(t, V(10, -5, -1e-5), V(11, -5, -1e-5), V(10, 5, 1e-5)), true},
		{"near coplanar crossing far out", tri(t, V(1000, -5, 0), V(1001, -5, 0), V(1000, 5, 0)), tri(t, V(1000, -5, -1e-5), V(1001, -5, -1e-5), V(1000, 5, 1e-5)), true},

		{"point point same", dot(t, V(1, 2, 3)), dot(t, V(1, 2, 3)), true},
		{"point point apart", dot(t, V(0, 0, 0)), dot(t, V(1, 0, 0)), false},
		{"point on section", seg, dot(t, V(1, 0, 0)), true},
		{"point off section", seg, dot(t, V(3, 0, 0)), false},
		{"point on triangle", xy, dot(t, V(0.25, 0.25, 0)), true},
		{"point above triangle", xy, dot(t, V(0.25, 0.25, 1)), false},
		{"sections overlap", tri(t, V(0, 0, 0), V(1, 0, 0), V(2, 0, 0)), tri(t, V(1, 0, 0), V(3, 0, 0), V(2, 0, 0)), true},
		{"sections apart", tri(t, V(0, 0, 0), V(1, 0, 0), V(0.5, 0, 0)), tri(t, V(2, 0, 0), V(3, 0, 0), V(2.5, 0, 0)), false},
		{"sections skew", tri(t, V(0, 0, 0), V(1, 0, 0), V(0.5, 0, 0)), tri(t, V(0, 0, 1), V(0, 1, 1), V(0, 0.5, 1)), false},
		{"section crosses triangle in plane", big, tri(t, V(1, -1, 0), V(1, 3, 0), V(1, 0, 0)), true},
		{"section inside triangle", big, tri(t, V(0.2, 0.2, 0), V(0.6, 0.6, 0), V(0.4, 0.4, 0)), true},
		{"section pierces triangle", big, tri(t, V(0.5, 0.5, -1), V(0.5, 0.5, 1), V(0.5, 0.5, 0.5)), true},
		{"section in parallel plane", big, tri(t, V(0, 0, 1), V(2, 0, 1), V(1, 0, 1)), false},
		{"section beside triangle", big, tri(t, V(3, 3, -1), V(3, 3, 1), V(3, 3, 0)), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.t1.Intersects(tc.t2))
			assert.Equal(t, tc.want, tc.t2.Intersects(tc.t1), "symmetry")
		})
	}
}

// Planes z=0 and z=theta*y share the x axis. The tilted triangle straddles
// it with the same chord as the flat one, or two units further along x.
func TestTriangleIntersectsNearCoplanar(t *testing.T) {
	for _, x0 := range []Real{0, 10, 1000} {
		for _, theta := range []Real{1.5e-6, 1e-5, 1e-4} {
			flat := tri(t, V(x0, -5, 0), V(x0+1, -5, 0), V(x0, 5, 0))
			tilted := func(dx Real) Triangle {
				return tri(t, V(x0+dx, -5, -5*theta), V(x0+dx+1, -5, -5*theta), V(x0+dx, 5, 5*theta))
			}
			for _, tc := range []struct {
				dx   Real
				want bool
			}{{0, true}, {0.25, true}, {2, false}} {
				name := fmt.Sprintf("x0=%g theta=%g dx=%g", x0, theta, tc.dx)
				t.Run(name, func(t *testing.T) {
					o := tilted(tc.dx)
					assert.Equal(t, tc.want, flat.Intersects(o))
					assert.Equal(t, tc.want, o.Intersects(flat), "symmetry")
				})
			}
		}
	}
}

func TestTriangleIntersectsSection(t *testing.T) {
	tr := tri(t, V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
	assert.True(t, tr.IntersectsSection(NewSection(V(1, -1, 0), V(1, 3, 0))))
	assert.True(t, tr.IntersectsSection(NewSection(V(0.5, 0.5, 1), V(0.5, 0.5, -1))))
	assert.True(t, tr.IntersectsSection(NewSection(V(0.5, 0.5, 0), V(0.5, 0.5, 0))))
	assert.False(t, tr.IntersectsSection(NewSection(V(0.5, 0.5, 1), V(0.5, 0.5, 2))))
	assert.False(t, tr.IntersectsSection(NewSection(V(3, 0, 0), V(3, 1, 0))))
}
