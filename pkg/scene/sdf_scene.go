package scene

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// sdfMeshCells is the marching cubes resolution for the SDF scene. Every
// triangle is tested against every ray, so it is kept low.
const sdfMeshCells = 32

// NewCSGSolid builds a rounded cube with a spherical bite taken out of it and
// a cylinder through the middle
func NewCSGSolid() (sdf.SDF3, error) {
	box, err := sdf.Box3D(v3.Vec{X: 1.6, Y: 1.6, Z: 1.6}, 0.15)
	if err != nil {
		return nil, errors.Wrap(err, "box")
	}
	sphere, err := sdf.Sphere3D(1.05)
	if err != nil {
		return nil, errors.Wrap(err, "sphere")
	}
	cylinder, err := sdf.Cylinder3D(2.4, 0.35, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cylinder")
	}

	rounded := sdf.Intersect3D(box, sphere)
	return sdf.Difference3D(rounded, cylinder), nil
}

// NewSDFScene creates a scene whose centerpiece is a CSG solid tessellated into triangles
func NewSDFScene() *Scene {
	s := New("sdf", geometry.CameraConfig{
		Center:      core.NewVec3(3, 2.5, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	})
	s.Background = core.NewVec3(0.05, 0.05, 0.08)

	ground := shader.NewPhong(core.NewVec3(0.5, 0.5, 0.5), 0.2, 0.8, 0, 1)
	s.Add(geometry.NewPlane(core.NewVec3(0, -0.8, 0), core.NewVec3(0, 1, 0), ground))

	solid, err := NewCSGSolid()
	if err != nil {
		// Only reachable if the fixed dimensions above become invalid
		panic(err)
	}
	gold := shader.NewPhong(core.NewVec3(0.85, 0.65, 0.2), 0.15, 0.75, 0.5, 40)
	s.Add(MeshFromSDF(solid, sdfMeshCells, gold)...)

	s.AddLight(
		lights.NewPoint(core.NewVec3(3, 5, 3), core.NewVec3(30, 30, 30)),
		lights.NewPoint(core.NewVec3(-4, 2, 1), core.NewVec3(6, 6, 8)),
	)

	s.BindShaders()
	return s
}
