// Package geometry implements the primitives a ray can be tested against.
package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Primitive is a shape that can be hit by rays
type Primitive interface {
	// Intersect reports whether the ray hits the primitive at a distance in
	// (core.Epsilon, ray.T). On a hit ray.T is lowered to that distance; on a
	// miss the ray is left untouched.
	Intersect(ray *core.Ray) bool

	// Occluded reports whether anything of the primitive lies along the ray.
	// Implementations in this package delegate to Intersect and so lower ray.T
	// the same way. Use Occludes for a query that leaves the ray alone.
	Occluded(ray *core.Ray) bool

	// GetNormal returns the unit outward normal for a ray that has already
	// hit the primitive.
	GetNormal(ray core.Ray) core.Vec3

	// Shader returns the shader the primitive was created with
	Shader() shader.Shader
}

// Occludes reports whether p blocks the ray without modifying the caller's
// ray. The ray is tested on a copy, so its T is unchanged afterwards.
func Occludes(p Primitive, ray core.Ray) bool {
	return p.Occluded(&ray)
}

// noCopy makes go vet's copylocks check flag primitives copied by value
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// prim holds the state shared by every primitive
type prim struct {
	noCopy noCopy
	shader shader.Shader
}

// Shader returns the primitive's shader
func (p *prim) Shader() shader.Shader {
	return p.shader
}
