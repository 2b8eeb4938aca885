package scene

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

func newTestScene() *Scene {
	return New("test", geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1,
		VFov:        60,
	})
}

// layer returns a unit triangle in the plane z = depth
func layer(depth float64, sh shader.Shader) *geometry.Triangle {
	return geometry.NewTriangle(
		core.NewVec3(0, 0, depth),
		core.NewVec3(1, 0, depth),
		core.NewVec3(0, 1, depth),
		sh,
	)
}

func TestScene_IntersectFindsNearest(t *testing.T) {
	s := newTestScene()
	near := layer(0, shader.NewFlat(core.NewVec3(1, 0, 0)))
	mid := layer(-1, shader.NewFlat(core.NewVec3(0, 1, 0)))
	far := layer(-2, shader.NewFlat(core.NewVec3(0, 0, 1)))

	orders := [][]geometry.Primitive{
		{near, mid, far},
		{far, mid, near},
		{mid, far, near},
	}

	for _, order := range orders {
		s.Primitives = order
		ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

		hit, ok := s.Intersect(&ray)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if hit != near {
			t.Errorf("Expected nearest triangle, got %v", hit)
		}
		if math.Abs(ray.T-1) > 1e-9 {
			t.Errorf("Expected T=1, got %f", ray.T)
		}
	}
}

func TestScene_IntersectMissLeavesRay(t *testing.T) {
	s := newTestScene()
	s.Add(layer(0, nil), layer(-1, nil))

	ray := core.NewRayWithLimit(core.NewVec3(5, 5, 1), core.NewVec3(0, 0, -1), 1000)
	if _, ok := s.Intersect(&ray); ok {
		t.Fatal("Expected a miss")
	}
	if ray.T != 1000 {
		t.Errorf("Expected T to stay 1000, got %f", ray.T)
	}
}

func TestScene_NearestHitIsOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depths := rapid.SliceOfN(rapid.Float64Range(-20, 0.9), 1, 10).Draw(t, "depths")

		prims := make([]geometry.Primitive, len(depths))
		nearest := core.Infinity
		for i, d := range depths {
			prims[i] = layer(d, nil)
			if dist := 1 - d; dist < nearest {
				nearest = dist
			}
		}

		s := newTestScene()
		s.Add(rapid.Permutation(prims).Draw(t, "order")...)

		ray := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1))
		if _, ok := s.Intersect(&ray); !ok {
			t.Fatal("expected a hit")
		}
		if math.Abs(ray.T-nearest) > 1e-9 {
			t.Fatalf("expected nearest distance %v, got %v", nearest, ray.T)
		}
	})
}

func TestScene_Occluded(t *testing.T) {
	s := newTestScene()
	s.Add(layer(0, nil))

	blocked := core.NewRayWithLimit(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), 5)
	if !s.Occluded(blocked) {
		t.Error("Expected ray through triangle to be occluded")
	}
	if blocked.T != 5 {
		t.Errorf("Expected caller's ray untouched, got T=%f", blocked.T)
	}

	short := core.NewRayWithLimit(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), 0.5)
	if s.Occluded(short) {
		t.Error("Expected occluder beyond the limit to be ignored")
	}

	clear := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1))
	if s.Occluded(clear) {
		t.Error("Expected ray away from triangle to be clear")
	}
}

func TestScene_Trace(t *testing.T) {
	s := newTestScene()
	s.Background = core.NewVec3(0.1, 0.2, 0.3)
	red := core.NewVec3(1, 0, 0)
	s.Add(layer(0, shader.NewFlat(red)), layer(-1, nil))

	if got := s.Trace(core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))); got != red {
		t.Errorf("Expected red, got %v", got)
	}
	if got := s.Trace(core.NewRay(core.NewVec3(5, 5, 1), core.NewVec3(0, 0, -1))); got != s.Background {
		t.Errorf("Expected background, got %v", got)
	}
	// Hitting a primitive without a shader falls back to the background
	if got := s.Trace(core.NewRay(core.NewVec3(0.25, 0.25, -0.5), core.NewVec3(0, 0, -1))); got != s.Background {
		t.Errorf("Expected background for unshaded primitive, got %v", got)
	}
}

func TestScene_BindShaders(t *testing.T) {
	s := newTestScene()
	phong := shader.NewPhong(core.NewVec3(1, 1, 1), 0.1, 0.9, 0, 1)
	s.Add(layer(0, phong), layer(-1, phong), layer(-2, shader.NewFlat(core.NewVec3(1, 1, 1))))
	s.AddLight(lights.NewPoint(core.NewVec3(0, 0, 10), core.NewVec3(1, 1, 1)))

	s.BindShaders()

	if len(phong.Lights) != 1 {
		t.Errorf("Expected 1 light bound, got %d", len(phong.Lights))
	}
	if phong.Scene != s {
		t.Error("Expected shader to use the scene for shadows")
	}
}

func TestScene_ShadowFromTriangle(t *testing.T) {
	s := newTestScene()
	ground := shader.NewPhong(core.NewVec3(1, 1, 1), 0, 1, 0, 1)
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))
	// Blocker between the light and the ground around x=0.2, z=0.2
	s.Add(geometry.NewTriangle(
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 1),
		core.NewVec3(1, 1, 0),
		shader.NewFlat(core.NewVec3(0, 0, 0)),
	))
	s.AddLight(lights.NewPoint(core.NewVec3(0.2, 3, 0.2), core.NewVec3(9, 9, 9)))
	s.BindShaders()

	shadowed := s.Trace(core.NewRay(core.NewVec3(0.2, 0.5, 0.2), core.NewVec3(0, -1, 0)))
	lit := s.Trace(core.NewRay(core.NewVec3(5, 0.5, 5), core.NewVec3(0, -1, 0)))

	if shadowed.Length() != 0 {
		t.Errorf("Expected shadowed point to be black, got %v", shadowed)
	}
	if lit.Length() == 0 {
		t.Error("Expected lit point to receive light")
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	expected := []string{"cornell", "cylinder", "default", "sdf", "spheregrid", "trianglemesh"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}

	if _, ok := Lookup("missing"); ok {
		t.Error("Expected unknown scene lookup to fail")
	}

	s, ok := Lookup("default")
	if !ok {
		t.Fatal("Expected default scene")
	}
	if s.PrimitiveCount() == 0 || len(s.Lights) == 0 {
		t.Errorf("Expected default scene with primitives and lights, got %d/%d", s.PrimitiveCount(), len(s.Lights))
	}
}

func TestCornellScene_CenterRayHitsBackWall(t *testing.T) {
	s := NewCornellScene()
	ray := s.Camera.GetRay(0.5, 0.9)

	hit, ok := s.Intersect(&ray)
	if !ok {
		t.Fatal("Expected camera ray to hit the box")
	}
	if _, isTriangle := hit.(*geometry.Triangle); !isTriangle {
		t.Errorf("Expected a wall triangle, got %T", hit)
	}
}
