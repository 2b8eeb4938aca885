package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Primitives   []geometry.Primitive // Objects in the scene
	Lights       []lights.Light       // Lights in the scene
	Background   core.Vec3            // Color for rays that hit nothing
}

// New creates an empty scene viewed through the given camera
func New(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Primitives:   make([]geometry.Primitive, 0),
		Lights:       make([]lights.Light, 0),
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(prims ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, prims...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// BindShaders connects every Phong shader used in the scene to the scene's
// lights and shadow queries. Call it after all primitives and lights are added.
func (s *Scene) BindShaders() {
	for _, p := range s.Primitives {
		if phong, ok := p.Shader().(*shader.Phong); ok {
			phong.Lights = s.Lights
			phong.Scene = s
		}
	}
}

// PrimitiveCount returns the number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Primitives)
}

// Intersect tests the ray against every primitive and returns the nearest
// one hit. On return ray.T holds the distance to that hit.
func (s *Scene) Intersect(ray *core.Ray) (geometry.Primitive, bool) {
	var nearest geometry.Primitive
	for _, p := range s.Primitives {
		if p.Intersect(ray) {
			nearest = p
		}
	}
	return nearest, nearest != nil
}

// Occluded reports whether any primitive blocks the ray. The ray is passed
// by value so the caller's copy is not modified.
func (s *Scene) Occluded(ray core.Ray) bool {
	for _, p := range s.Primitives {
		if geometry.Occludes(p, ray) {
			return true
		}
	}
	return false
}

// Trace returns the color seen along the ray
func (s *Scene) Trace(ray core.Ray) core.Vec3 {
	color, _ := s.TraceHit(ray)
	return color
}

// TraceHit is Trace that also reports whether any primitive was hit
func (s *Scene) TraceHit(ray core.Ray) (core.Vec3, bool) {
	hit, ok := s.Intersect(&ray)
	if !ok {
		return s.Background, false
	}

	sh := hit.Shader()
	if sh == nil {
		return s.Background, true
	}

	return sh.Shade(shader.Interaction{
		Ray:    ray,
		Normal: hit.GetNormal(ray),
	}), true
}
