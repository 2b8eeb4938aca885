package scene

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/shader"
)

// MeshFromSDF tessellates a signed distance field with marching cubes and
// returns the resulting triangles. cells controls the resolution along the
// longest bounding box axis. Degenerate triangles produced by the
// tessellation are dropped.
func MeshFromSDF(s sdf.SDF3, cells int, sh shader.Shader) []geometry.Primitive {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	prims := make([]geometry.Primitive, 0, len(triangles))
	for _, tri := range triangles {
		a, b, c := toVec3(tri[0]), toVec3(tri[1]), toVec3(tri[2])
		if geometry.IsDegenerate(a, b, c) {
			continue
		}
		prims = append(prims, geometry.NewTriangle(a, b, c, sh))
	}
	return prims
}

func toVec3(v v3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
