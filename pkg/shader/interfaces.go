// Package shader defines the shading strategies attached to primitives.
// A single shader value is typically shared by many primitives.
package shader

import "github.com/df07/go-raycaster/pkg/core"

// Shader computes the color seen along a ray that hit a surface
type Shader interface {
	Shade(in Interaction) core.Vec3
}

// Occluder answers visibility queries without touching the caller's ray
type Occluder interface {
	Occluded(ray core.Ray) bool
}

// Interaction describes a ray/surface hit as seen by a shader
type Interaction struct {
	Ray    core.Ray  // The ray, with T set to the hit distance
	Normal core.Vec3 // Unit surface normal at the hit
}

// Point returns the hit position
func (in Interaction) Point() core.Vec3 {
	return in.Ray.HitPoint()
}

// FacingNormal returns the normal flipped toward the ray origin
func (in Interaction) FacingNormal() core.Vec3 {
	if in.Ray.Direction.Dot(in.Normal) > 0 {
		return in.Normal.Negate()
	}
	return in.Normal
}
