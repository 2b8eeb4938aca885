package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// NewCornellScene creates a classic Cornell box built from triangles
func NewCornellScene() *Scene {
	s := New("cornell", geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	})

	white := shader.NewPhong(core.NewVec3(0.73, 0.73, 0.73), 0.1, 0.9, 0, 1)
	red := shader.NewPhong(core.NewVec3(0.65, 0.05, 0.05), 0.1, 0.9, 0, 1)
	green := shader.NewPhong(core.NewVec3(0.12, 0.45, 0.15), 0.1, 0.9, 0, 1)
	glossy := shader.NewPhong(core.NewVec3(0.8, 0.8, 0.9), 0.1, 0.6, 0.8, 80)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Floor. All walls face into the box
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white)...)
	// Ceiling
	s.Add(geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)...)
	// Back wall
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white)...)
	// Left wall
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)...)
	// Right wall
	s.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green)...)

	// Tall block and a sphere
	s.Add(geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)...)
	s.Add(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, glossy))

	s.AddLight(lights.NewPoint(core.NewVec3(278, 540, 278), core.NewVec3(3e5, 3e5, 3e5)))

	s.BindShaders()
	return s
}
