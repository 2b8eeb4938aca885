package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// NewQuad splits the parallelogram spanned by u and v at corner into two
// triangles. Both triangles face along u × v.
func NewQuad(corner, u, v core.Vec3, sh shader.Shader) []Primitive {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)

	return []Primitive{
		NewTriangle(corner, p1, p2, sh),
		NewTriangle(corner, p2, p3, sh),
	}
}

// NewBox creates the twelve triangles of an axis-aligned box with outward
// facing normals
func NewBox(minCorner, maxCorner core.Vec3, sh shader.Shader) []Primitive {
	d := maxCorner.Subtract(minCorner)
	dx := core.NewVec3(d.X, 0, 0)
	dy := core.NewVec3(0, d.Y, 0)
	dz := core.NewVec3(0, 0, d.Z)

	faces := [][]Primitive{
		NewQuad(minCorner, dz, dy, sh),                                           // -X
		NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), dy, dz, sh), // +X
		NewQuad(minCorner, dx, dz, sh),                                           // -Y
		NewQuad(core.NewVec3(minCorner.X, maxCorner.Y, minCorner.Z), dz, dx, sh), // +Y
		NewQuad(minCorner, dy, dx, sh),                                           // -Z
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), dx, dy, sh), // +Z
	}

	prims := make([]Primitive, 0, 12)
	for _, face := range faces {
		prims = append(prims, face...)
	}
	return prims
}
