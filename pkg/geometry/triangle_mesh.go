package geometry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Rotation *core.Vec3 // Optional rotation in radians around X, then Y, then Z
	Center   *core.Vec3 // Optional center point for rotation
}

// NewTriangleMesh creates one triangle per group of three face indices.
// All triangles share sh. Degenerate triangles are dropped.
// options may be nil.
func NewTriangleMesh(vertices []core.Vec3, faces []int, sh shader.Shader, options *TriangleMeshOptions) ([]Primitive, error) {
	if len(faces)%3 != 0 {
		return nil, errors.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	for i, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, errors.Errorf("face index %d references vertex %d of %d", i, idx, len(vertices))
		}
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			// Translate to center, rotate, then translate back
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	prims := make([]Primitive, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		a, b, c := workingVertices[faces[i]], workingVertices[faces[i+1]], workingVertices[faces[i+2]]
		if IsDegenerate(a, b, c) {
			continue
		}
		prims = append(prims, NewTriangle(a, b, c, sh))
	}
	return prims, nil
}

// IsDegenerate reports whether a, b and c are too close to collinear to form
// a triangle with a usable normal
func IsDegenerate(a, b, c core.Vec3) bool {
	return b.Subtract(a).Cross(c.Subtract(a)).LengthSquared() < 1e-18
}

// rotateVertex rotates a vertex around the origin using Euler angles
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	// Rotation around X axis
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	// Rotation around Y axis
	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	// Rotation around Z axis
	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
