package scene

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name       string
		primitives int
		lights     int
	}{
		{"cylinder", 1 + 1 + 3 + 3, 2},
		{"spheregrid", 2 + sphereGridSize*sphereGridSize, 2},
		{"trianglemesh", 1 + 12 + 6 + 20, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Expected built-in scene %q", tt.name)
			}
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if s.PrimitiveCount() != tt.primitives {
				t.Errorf("Expected %d primitives, got %d", tt.primitives, s.PrimitiveCount())
			}
			if len(s.Lights) != tt.lights {
				t.Errorf("Expected %d lights, got %d", tt.lights, len(s.Lights))
			}

			ray := s.Camera.GetRay(0.5, 0.5)
			if _, hit := s.Intersect(&ray); !hit {
				t.Error("Expected the center camera ray to hit")
			}
		})
	}
}

func TestSphereGridScene_DiscStage(t *testing.T) {
	s := NewSphereGridScene()
	disc, ok := s.Primitives[1].(*geometry.Disc)
	if !ok {
		t.Fatalf("Expected a disc stage, got %T", s.Primitives[1])
	}

	// Straight down between spheres lands on the stage, above the ground plane
	ray := core.NewRay(core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0))
	hit, ok := s.Intersect(&ray)
	if !ok || hit != disc {
		t.Fatalf("Expected the disc to be hit, got %T", hit)
	}
	if math.Abs(ray.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got %f", ray.T)
	}
}

func TestTriangleMeshScene_CenterHitsPyramid(t *testing.T) {
	s := NewTriangleMeshScene()
	// Slightly left of center, away from the pyramid's front edge
	ray := s.Camera.GetRay(0.45, 0.5)

	hit, ok := s.Intersect(&ray)
	if !ok {
		t.Fatal("Expected the center ray to hit")
	}
	if _, isTriangle := hit.(*geometry.Triangle); !isTriangle {
		t.Errorf("Expected a pyramid triangle, got %T", hit)
	}
	if got := hit.GetNormal(ray).Z; got <= 0 {
		t.Errorf("Expected the pyramid face to point toward the camera, got normal z %f", got)
	}
}

func TestCylinderScene_CapsCloseTheCylinder(t *testing.T) {
	s := NewCylinderScene()

	// Straight down onto the red cylinder's top cap
	ray := core.NewRay(core.NewVec3(1.8, 5, 0), core.NewVec3(0, -1, 0))
	hit, ok := s.Intersect(&ray)
	if !ok {
		t.Fatal("Expected the top cap to be hit")
	}
	if _, isDisc := hit.(*geometry.Disc); !isDisc {
		t.Fatalf("Expected a disc cap, got %T", hit)
	}
	if math.Abs(ray.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", ray.T)
	}
	if n := hit.GetNormal(ray); n != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected the cap to face up, got %v", n)
	}
}
