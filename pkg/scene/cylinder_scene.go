package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// NewCylinderScene creates a scene with open and capped cylinders lit by a
// spot light
func NewCylinderScene() *Scene {
	s := New("cylinder", geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	})
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	gray := shader.NewPhong(core.NewVec3(0.5, 0.5, 0.5), 0.2, 0.8, 0, 1)
	red := shader.NewPhong(core.NewVec3(0.8, 0.2, 0.2), 0.15, 0.75, 0.3, 20)
	blue := shader.NewPhong(core.NewVec3(0.2, 0.2, 0.8), 0.15, 0.75, 0.3, 20)
	gold := shader.NewPhong(core.NewVec3(0.8, 0.6, 0.2), 0.1, 0.6, 0.9, 80)

	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), gray))

	// Open tube angled toward the camera so its inside wall is visible
	s.Add(geometry.NewCylinder(core.NewVec3(-0.3, 1.0, -1.5), core.NewVec3(0, 1.2, 2.0), 0.35, gold))

	// Upright and lying cylinders closed with disc caps
	s.Add(cappedCylinder(core.NewVec3(1.8, 0, 0), core.NewVec3(1.8, 2, 0), 0.5, red)...)
	s.Add(cappedCylinder(core.NewVec3(-2.5, 0.3, 0), core.NewVec3(-1.5, 0.3, 0), 0.3, blue)...)

	s.AddLight(
		lights.NewSpot(core.NewVec3(0, 6, 2), core.NewVec3(0, 0, 0), core.NewVec3(120, 115, 110), 35, 10),
		lights.NewDirectional(core.NewVec3(-1, -2, -1), core.NewVec3(0.25, 0.25, 0.3)),
	)

	s.BindShaders()
	return s
}

// cappedCylinder returns a cylinder wall with a disc closing each end
func cappedCylinder(base, top core.Vec3, radius float64, sh shader.Shader) []geometry.Primitive {
	axis := top.Subtract(base)
	return []geometry.Primitive{
		geometry.NewCylinder(base, top, radius, sh),
		geometry.NewDisc(base, axis.Negate(), radius, sh),
		geometry.NewDisc(top, axis, radius, sh),
	}
}
