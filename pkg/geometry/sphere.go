package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Sphere represents a sphere shape
type Sphere struct {
	prim
	center core.Vec3
	radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, sh shader.Shader) *Sphere {
	return &Sphere{
		prim:   prim{shader: sh},
		center: center,
		radius: radius,
	}
}

// Center returns the sphere's center
func (s *Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere's radius
func (s *Sphere) Radius() float64 { return s.radius }

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray *core.Ray) bool {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one for rays starting inside
	root := (-halfB - sqrtD) / a
	if root < core.Epsilon || root >= ray.T {
		root = (-halfB + sqrtD) / a
		if root < core.Epsilon || root >= ray.T {
			return false
		}
	}

	ray.T = root
	return true
}

// Occluded implements Primitive by delegating to Intersect
func (s *Sphere) Occluded(ray *core.Ray) bool {
	return s.Intersect(ray)
}

// GetNormal returns the outward normal at the ray's hit point
func (s *Sphere) GetNormal(ray core.Ray) core.Vec3 {
	return ray.HitPoint().Subtract(s.center).Normalize()
}
