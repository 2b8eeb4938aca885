package lights

import "github.com/df07/go-raycaster/pkg/core"

// Point is an omni-directional light with inverse-square falloff
type Point struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPoint creates a new point light
func NewPoint(position, intensity core.Vec3) *Point {
	return &Point{Position: position, Intensity: intensity}
}

// Illuminate implements Light
func (p *Point) Illuminate(point core.Vec3) (Sample, bool) {
	toLight := p.Position.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq == 0 {
		return Sample{}, false
	}

	return Sample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Intensity: p.Intensity.Multiply(1.0 / distSq),
	}, true
}
