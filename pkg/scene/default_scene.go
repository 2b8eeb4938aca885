package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// NewDefaultScene creates a scene with a triangle pyramid, a sphere and a ground plane
func NewDefaultScene() *Scene {
	s := New("default", geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	})
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	// Shaders are shared between all faces that use them
	ground := shader.NewPhong(core.NewVec3(0.6, 0.6, 0.6), 0.2, 0.8, 0.0, 1)
	red := shader.NewPhong(core.NewVec3(0.8, 0.2, 0.15), 0.15, 0.7, 0.4, 30)
	blue := shader.NewPhong(core.NewVec3(0.15, 0.25, 0.8), 0.15, 0.7, 0.6, 60)

	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))

	// Square pyramid to the left
	apex := core.NewVec3(-0.9, 1.2, 0)
	base := [4]core.Vec3{
		core.NewVec3(-1.5, 0, 0.6),
		core.NewVec3(-0.3, 0, 0.6),
		core.NewVec3(-0.3, 0, -0.6),
		core.NewVec3(-1.5, 0, -0.6),
	}
	for i := range base {
		s.Add(geometry.NewTriangle(base[i], base[(i+1)%4], apex, red))
	}

	s.Add(geometry.NewSphere(core.NewVec3(0.9, 0.6, 0), 0.6, blue))

	s.AddLight(
		lights.NewPoint(core.NewVec3(2, 4, 3), core.NewVec3(20, 20, 20)),
		lights.NewDirectional(core.NewVec3(-1, -2, -1), core.NewVec3(0.3, 0.3, 0.3)),
	)

	s.BindShaders()
	return s
}
