package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

func newUnitTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		shader.NewFlat(core.NewVec3(0.5, 0.5, 0.5)),
	)
}

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the XY plane
	triangle := newUnitTriangle()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		limit     float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle interior",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     1000,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray outside triangle",
			origin:    core.NewVec3(0.9, 0.9, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Ray hits triangle edge",
			origin:    core.NewVec3(0.5, 0, -1),
			direction: core.NewVec3(0, 0, 1),
			limit:     1000,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits from behind",
			origin:    core.NewVec3(0.25, 0.25, -2),
			direction: core.NewVec3(0, 0, 1),
			limit:     1000,
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "Unnormalized direction scales distance",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, -2),
			limit:     1000,
			shouldHit: true,
			expectedT: 0.5,
		},
		{
			name:      "Ray parallel to triangle plane",
			origin:    core.NewVec3(0.25, 0.25, 0),
			direction: core.NewVec3(1, 0, 0),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Ray parallel above triangle plane",
			origin:    core.NewVec3(-1, 0.25, 1),
			direction: core.NewVec3(1, 0, 0),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray origin",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, 1),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Existing hit is closer",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     0.5,
			shouldHit: false,
		},
		{
			name:      "Existing hit at exactly the same distance",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     1.0,
			shouldHit: false,
		},
		{
			name:      "Hit closer than epsilon",
			origin:    core.NewVec3(0.25, 0.25, core.Epsilon/2),
			direction: core.NewVec3(0, 0, -1),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Negative lambda",
			origin:    core.NewVec3(0.25, -0.1, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     1000,
			shouldHit: false,
		},
		{
			name:      "Negative mue",
			origin:    core.NewVec3(-0.1, 0.25, 1),
			direction: core.NewVec3(0, 0, -1),
			limit:     1000,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayWithLimit(tt.origin, tt.direction, tt.limit)
			before := math.Float64bits(ray.T)

			isHit := triangle.Intersect(&ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}

			if !tt.shouldHit {
				if math.Float64bits(ray.T) != before {
					t.Errorf("Expected T unchanged at %f on miss, got %f", tt.limit, ray.T)
				}
				return
			}

			if math.Abs(ray.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, ray.T)
			}

			// Hit point must lie in the triangle's plane
			if point := ray.HitPoint(); math.Abs(point.Z) > 1e-9 {
				t.Errorf("Hit point %v is not on the triangle plane", point)
			}
		})
	}
}

func TestTriangle_ParallelRayRejectedFromAnyOrigin(t *testing.T) {
	triangle := newUnitTriangle()

	origins := []core.Vec3{
		core.NewVec3(-5, 0.25, 0),
		core.NewVec3(-5, 0.25, 3),
		core.NewVec3(0.1, 0.1, 0),
		core.NewVec3(0, 0, -7),
	}

	for _, origin := range origins {
		ray := core.NewRayWithLimit(origin, core.NewVec3(1, 0, 0), 1000)
		if triangle.Intersect(&ray) {
			t.Errorf("Expected parallel ray from %v to miss", origin)
		}
		if ray.T != 1000 {
			t.Errorf("Expected T unchanged, got %f", ray.T)
		}
	}
}

func TestTriangle_IntersectNarrowsSearch(t *testing.T) {
	near := newUnitTriangle()
	far := NewTriangle(
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(0, 1, -1),
		near.Shader(),
	)

	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	if !near.Intersect(&ray) {
		t.Fatal("Expected near triangle to be hit")
	}
	if far.Intersect(&ray) {
		t.Error("Expected far triangle to be rejected once the near hit is recorded")
	}
	if math.Abs(ray.T-1) > 1e-9 {
		t.Errorf("Expected T=1, got %f", ray.T)
	}
}

func TestTriangle_GetNormal(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  core.Vec3
		expected core.Vec3
	}{
		{
			name:     "Counter-clockwise in XY plane",
			a:        core.NewVec3(0, 0, 0),
			b:        core.NewVec3(1, 0, 0),
			c:        core.NewVec3(0, 1, 0),
			expected: core.NewVec3(0, 0, 1),
		},
		{
			name:     "Reversed winding flips normal",
			a:        core.NewVec3(0, 0, 0),
			b:        core.NewVec3(0, 1, 0),
			c:        core.NewVec3(1, 0, 0),
			expected: core.NewVec3(0, 0, -1),
		},
		{
			name:     "Large triangle still unit length",
			a:        core.NewVec3(0, 0, 0),
			b:        core.NewVec3(0, 0, 100),
			c:        core.NewVec3(100, 0, 0),
			expected: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangle := NewTriangle(tt.a, tt.b, tt.c, nil)

			// The normal is independent of the ray
			for _, ray := range []core.Ray{
				core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
				core.NewRay(core.NewVec3(3, -2, 1), core.NewVec3(1, 1, 1)),
			} {
				normal := triangle.GetNormal(ray)
				if normal.Subtract(tt.expected).Length() > 1e-12 {
					t.Errorf("Expected normal %v, got %v", tt.expected, normal)
				}
				if math.Abs(normal.Length()-1) > 1e-12 {
					t.Errorf("Expected unit normal, got length %f", normal.Length())
				}
			}
		})
	}
}

func TestTriangle_Vertices(t *testing.T) {
	triangle := newUnitTriangle()
	a, b, c := triangle.Vertices()

	if a != core.NewVec3(0, 0, 0) || b != core.NewVec3(1, 0, 0) || c != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected vertices %v %v %v", a, b, c)
	}
}
