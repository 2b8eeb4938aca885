package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	prim
	center core.Vec3 // Center of the disc
	normal core.Vec3 // Unit normal
	radius float64   // Radius of the disc
}

// NewDisc creates a new disc. The normal is normalized.
func NewDisc(center, normal core.Vec3, radius float64, sh shader.Shader) *Disc {
	return &Disc{
		prim:   prim{shader: sh},
		center: center,
		normal: normal.Normalize(),
		radius: radius,
	}
}

// Center returns the center of the disc
func (d *Disc) Center() core.Vec3 { return d.center }

// Radius returns the radius of the disc
func (d *Disc) Radius() float64 { return d.radius }

// Intersect tests the ray against the disc's plane and keeps hits within radius
func (d *Disc) Intersect(ray *core.Ray) bool {
	denom := d.normal.Dot(ray.Direction)
	if math.Abs(denom) < core.Epsilon {
		return false // Ray is parallel to disc
	}

	t := d.normal.Dot(d.center.Subtract(ray.Origin)) / denom
	if t >= ray.T || t < core.Epsilon {
		return false
	}

	if ray.At(t).Subtract(d.center).LengthSquared() > d.radius*d.radius {
		return false // Outside disc
	}

	ray.T = t
	return true
}

// Occluded implements Primitive by delegating to Intersect
func (d *Disc) Occluded(ray *core.Ray) bool {
	return d.Intersect(ray)
}

// GetNormal returns the disc normal
func (d *Disc) GetNormal(core.Ray) core.Vec3 {
	return d.normal
}
