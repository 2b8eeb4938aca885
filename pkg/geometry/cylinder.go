package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Cylinder represents a finite cylinder shape (open-ended, no caps)
type Cylinder struct {
	prim
	baseCenter core.Vec3
	topCenter  core.Vec3
	radius     float64

	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance between base and top
}

// NewCylinder creates a new cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, sh shader.Shader) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)

	return &Cylinder{
		prim:       prim{shader: sh},
		baseCenter: baseCenter,
		topCenter:  topCenter,
		radius:     radius,
		axis:       axisVector.Normalize(),
		height:     axisVector.Length(),
	}
}

// BaseCenter returns the center of the bottom rim
func (c *Cylinder) BaseCenter() core.Vec3 { return c.baseCenter }

// TopCenter returns the center of the top rim
func (c *Cylinder) TopCenter() core.Vec3 { return c.topCenter }

// Radius returns the cylinder radius
func (c *Cylinder) Radius() float64 { return c.radius }

// Intersect tests if a ray intersects with the cylinder wall
func (c *Cylinder) Intersect(ray *core.Ray) bool {
	delta := ray.Origin.Subtract(c.baseCenter)

	dv := ray.Direction.Dot(c.axis) // D · V̂
	deltaV := delta.Dot(c.axis)     // Δ · V̂

	// at² + bt + cc = 0 for the infinite cylinder
	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.radius*c.radius

	if math.Abs(a) < core.Epsilon {
		return false // Parallel to the axis
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearer root first; the farther one covers rays seeing the inside wall
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t >= ray.T || t < core.Epsilon {
			continue
		}
		h := deltaV + t*dv
		if h < 0 || h > c.height {
			continue
		}
		ray.T = t
		return true
	}
	return false
}

// Occluded implements Primitive by delegating to Intersect
func (c *Cylinder) Occluded(ray *core.Ray) bool {
	return c.Intersect(ray)
}

// GetNormal returns the radial normal at the ray's hit point
func (c *Cylinder) GetNormal(ray core.Ray) core.Vec3 {
	point := ray.HitPoint()
	h := point.Subtract(c.baseCenter).Dot(c.axis)
	axisPoint := c.baseCenter.Add(c.axis.Multiply(h))
	return point.Subtract(axisPoint).Normalize()
}
