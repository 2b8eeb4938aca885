package core

import "math"

// Epsilon is the tolerance shared by every intersection test. Hits closer
// than Epsilon are rejected, as are rays whose determinant falls below it.
const Epsilon = 1e-4

// Infinity is the default upper bound of a ray's search interval
var Infinity = math.Inf(1)

// Ray represents a ray with an origin, a direction and the distance to the
// closest hit found so far.
//
// T starts at the upper bound of the search. Every primitive that accepts a
// hit lowers it, so after a ray has been tested against a set of primitives
// T holds the distance to the nearest one.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	T         float64
}

// NewRay creates a new ray with an unbounded search interval
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, T: Infinity}
}

// NewRayWithLimit creates a ray that only accepts hits closer than limit
func NewRayWithLimit(origin, direction Vec3, limit float64) Ray {
	return Ray{Origin: origin, Direction: direction, T: limit}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HitPoint returns the point at the ray's current distance T
func (r Ray) HitPoint() Vec3 {
	return r.At(r.T)
}

// HasHit reports whether T was lowered below limit
func (r Ray) HasHit(limit float64) bool {
	return r.T < limit
}
