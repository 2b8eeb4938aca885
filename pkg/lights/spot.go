package lights

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Spot is a point light restricted to a cone, with a smooth falloff band
// at the cone's edge
type Spot struct {
	position        core.Vec3 // Light position in world space
	direction       core.Vec3 // Normalized direction vector (from -> to)
	intensity       core.Vec3
	cosTotalWidth   float64 // Cosine of total cone angle (outer edge)
	cosFalloffStart float64 // Cosine of falloff start angle (inner cone)
}

// NewSpot creates a spot light at from aimed at to.
// coneAngleDegrees is the half-angle of the lit cone; the outermost
// coneDeltaAngleDegrees of it fade to black.
func NewSpot(from, to, intensity core.Vec3, coneAngleDegrees, coneDeltaAngleDegrees float64) *Spot {
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &Spot{
		position:        from,
		direction:       to.Subtract(from).Normalize(),
		intensity:       intensity,
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Position returns the light position
func (sl *Spot) Position() core.Vec3 { return sl.position }

// Illuminate implements Light. Points outside the cone are not lit.
func (sl *Spot) Illuminate(point core.Vec3) (Sample, bool) {
	toLight := sl.position.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq == 0 {
		return Sample{}, false
	}
	distance := math.Sqrt(distSq)
	toLight = toLight.Multiply(1 / distance)

	attenuation := sl.falloff(sl.direction.Dot(toLight.Negate()))
	if attenuation == 0 {
		return Sample{}, false
	}

	return Sample{
		Direction: toLight,
		Distance:  distance,
		Intensity: sl.intensity.Multiply(attenuation / distSq),
	}, true
}

// falloff maps the cosine between the spot axis and the direction to the
// lit point to an attenuation in [0, 1]
func (sl *Spot) falloff(cosAngle float64) float64 {
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	// Quartic curve across the transition band
	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}
