package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/shader"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	prim
	a, b, c core.Vec3
}

// NewTriangle creates a new triangle from three vertices. The winding
// a -> b -> c decides which side the normal points to.
func NewTriangle(a, b, c core.Vec3, sh shader.Shader) *Triangle {
	return &Triangle{
		prim: prim{shader: sh},
		a:    a,
		b:    b,
		c:    c,
	}
}

// Vertices returns the triangle's three vertices
func (t *Triangle) Vertices() (a, b, c core.Vec3) {
	return t.a, t.b, t.c
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray *core.Ray) bool {
	edge1 := t.b.Subtract(t.a)
	edge2 := t.c.Subtract(t.a)

	pvec := ray.Direction.Cross(edge2)

	// Ray lies in (or parallel to) the triangle's plane
	det := edge1.Dot(pvec)
	if math.Abs(det) < core.Epsilon {
		return false
	}

	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(t.a)
	lambda := tvec.Dot(pvec) * invDet
	if lambda < 0 || lambda > 1 {
		return false
	}

	qvec := tvec.Cross(edge1)
	mue := ray.Direction.Dot(qvec) * invDet
	if mue < 0 || lambda+mue > 1 {
		return false
	}

	f := edge2.Dot(qvec) * invDet
	if f >= ray.T || f < core.Epsilon {
		return false
	}

	ray.T = f
	return true
}

// Occluded implements Primitive by delegating to Intersect
func (t *Triangle) Occluded(ray *core.Ray) bool {
	return t.Intersect(ray)
}

// GetNormal returns the triangle's plane normal. It does not depend on the
// ray since the triangle is flat.
func (t *Triangle) GetNormal(core.Ray) core.Vec3 {
	edge1 := t.b.Subtract(t.a)
	edge2 := t.c.Subtract(t.a)
	return edge1.Cross(edge2).Normalize()
}
