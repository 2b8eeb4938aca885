package lights

import "github.com/df07/go-raycaster/pkg/core"

// Directional is a light infinitely far away, such as the sun.
// Direction is the direction the light travels in.
type Directional struct {
	Direction core.Vec3
	Intensity core.Vec3
}

// NewDirectional creates a new directional light
func NewDirectional(direction, intensity core.Vec3) *Directional {
	return &Directional{Direction: direction.Normalize(), Intensity: intensity}
}

// Illuminate implements Light
func (d *Directional) Illuminate(point core.Vec3) (Sample, bool) {
	if d.Direction.LengthSquared() == 0 {
		return Sample{}, false
	}
	return Sample{
		Direction: d.Direction.Negate(),
		Distance:  core.Infinity,
		Intensity: d.Intensity,
	}, true
}
