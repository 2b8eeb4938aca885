package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/shader"
)

// NewTriangleMeshScene creates a scene showcasing indexed triangle meshes:
// a rotated box, a pyramid and an icosahedron on a ground plane
func NewTriangleMeshScene() *Scene {
	s := New("trianglemesh", geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	})
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	s.AddLight(
		lights.NewPoint(core.NewVec3(2, 6, 3), core.NewVec3(40, 38, 35)),
		lights.NewPoint(core.NewVec3(-3, 4, 2), core.NewVec3(10, 11, 13)),
	)

	s.Add(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		shader.NewPhong(core.NewVec3(0.7, 0.7, 0.7), 0.15, 0.8, 0, 1),
	))

	red := shader.NewPhong(core.NewVec3(0.8, 0.2, 0.2), 0.1, 0.7, 0.5, 40)
	blue := shader.NewPhong(core.NewVec3(0.2, 0.3, 0.8), 0.1, 0.8, 0.2, 10)
	gold := shader.NewPhong(core.NewVec3(0.8, 0.6, 0.2), 0.1, 0.6, 0.8, 80)

	s.Add(mustMesh(createBoxMesh(core.NewVec3(-2, 0.5, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, math.Pi/6, 0), red))...)
	s.Add(mustMesh(createPyramidMesh(core.NewVec3(0, 1, 0), 1.5, 2.0, core.NewVec3(0, math.Pi/4, 0), blue))...)
	s.Add(mustMesh(createIcosahedronMesh(core.NewVec3(2, 0.8, 0), 0.8, core.NewVec3(0, math.Pi/3, 0), gold))...)

	s.BindShaders()
	return s
}

// mustMesh panics on an error from a built-in mesh, whose indices are fixed
func mustMesh(prims []geometry.Primitive, err error) []geometry.Primitive {
	if err != nil {
		panic(err)
	}
	return prims
}

// meshOptions rotates around center when rotation is non-zero
func meshOptions(center, rotation core.Vec3) *geometry.TriangleMeshOptions {
	if rotation == (core.Vec3{}) {
		return nil
	}
	return &geometry.TriangleMeshOptions{Rotation: &rotation, Center: &center}
}

// createBoxMesh creates a triangle mesh representing a box
func createBoxMesh(center, size, rotation core.Vec3, sh shader.Shader) ([]geometry.Primitive, error) {
	h := size.Multiply(0.5)
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-h.X, -h.Y, -h.Z)), // 0: left-bottom-back
		center.Add(core.NewVec3(+h.X, -h.Y, -h.Z)), // 1: right-bottom-back
		center.Add(core.NewVec3(+h.X, +h.Y, -h.Z)), // 2: right-top-back
		center.Add(core.NewVec3(-h.X, +h.Y, -h.Z)), // 3: left-top-back
		center.Add(core.NewVec3(-h.X, -h.Y, +h.Z)), // 4: left-bottom-front
		center.Add(core.NewVec3(+h.X, -h.Y, +h.Z)), // 5: right-bottom-front
		center.Add(core.NewVec3(+h.X, +h.Y, +h.Z)), // 6: right-top-front
		center.Add(core.NewVec3(-h.X, +h.Y, +h.Z)), // 7: left-top-front
	}

	// Counter-clockwise seen from outside, so normals face out
	faces := []int{
		0, 2, 1, 0, 3, 2, // back (Z-)
		4, 5, 6, 4, 6, 7, // front (Z+)
		0, 4, 7, 0, 7, 3, // left (X-)
		1, 2, 6, 1, 6, 5, // right (X+)
		0, 1, 5, 0, 5, 4, // bottom (Y-)
		3, 7, 6, 3, 6, 2, // top (Y+)
	}

	return geometry.NewTriangleMesh(vertices, faces, sh, meshOptions(center, rotation))
}

// createPyramidMesh creates a triangle mesh representing a square pyramid
func createPyramidMesh(center core.Vec3, baseSize, height float64, rotation core.Vec3, sh shader.Shader) ([]geometry.Primitive, error) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)), // 0: left-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)), // 1: right-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)), // 2: right-front
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)), // 3: left-front
		center.Add(core.NewVec3(0, +halfHeight, 0)),                 // 4: apex
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // base
		1, 0, 4, // back
		2, 1, 4, // right
		3, 2, 4, // front
		0, 3, 4, // left
	}

	return geometry.NewTriangleMesh(vertices, faces, sh, meshOptions(center, rotation))
}

// createIcosahedronMesh creates a triangle mesh representing an icosahedron
// with its vertices at the given radius from center
func createIcosahedronMesh(center core.Vec3, radius float64, rotation core.Vec3, sh shader.Shader) ([]geometry.Primitive, error) {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	unit := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0),
		core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi),
		core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1),
		core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(unit))
	for i, v := range unit {
		vertices[i] = center.Add(v.Multiply(scale))
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, sh, meshOptions(center, rotation))
}
