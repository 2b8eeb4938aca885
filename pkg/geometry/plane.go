package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	prim
	point  core.Vec3 // A point on the plane
	normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(point, normal core.Vec3, sh shader.Shader) *Plane {
	return &Plane{
		prim:   prim{shader: sh},
		point:  point,
		normal: normal.Normalize(),
	}
}

// Point returns the point the plane was defined with
func (p *Plane) Point() core.Vec3 { return p.point }

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray *core.Ray) bool {
	denominator := ray.Direction.Dot(p.normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < core.Epsilon {
		return false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.point.Subtract(ray.Origin).Dot(p.normal) / denominator
	if t >= ray.T || t < core.Epsilon {
		return false
	}

	ray.T = t
	return true
}

// Occluded implements Primitive by delegating to Intersect
func (p *Plane) Occluded(ray *core.Ray) bool {
	return p.Intersect(ray)
}

// GetNormal returns the plane normal
func (p *Plane) GetNormal(core.Ray) core.Vec3 {
	return p.normal
}
