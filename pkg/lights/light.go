package lights

import "github.com/df07/go-raycaster/pkg/core"

// Sample describes the light arriving at a surface point
type Sample struct {
	Direction core.Vec3 // Unit vector from the surface point toward the light
	Distance  float64   // Distance to the light, core.Infinity for directional lights
	Intensity core.Vec3 // Radiance arriving at the point
}

// Light is anything that can illuminate a point in the scene
type Light interface {
	// Illuminate returns the light arriving at point, or false if the light
	// cannot reach it at all.
	Illuminate(point core.Vec3) (Sample, bool)
}
