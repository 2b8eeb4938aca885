package shader

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// EyeLight shades as if a light sat at the eye: surfaces facing the viewer
// are brightest, grazing surfaces go dark.
type EyeLight struct {
	Color core.Vec3
}

// NewEyeLight creates a new eye light shader
func NewEyeLight(color core.Vec3) *EyeLight {
	return &EyeLight{Color: color}
}

// Shade implements the Shader interface
func (e *EyeLight) Shade(in Interaction) core.Vec3 {
	cosTheta := math.Abs(in.Normal.Dot(in.Ray.Direction.Normalize()))
	return e.Color.Multiply(cosTheta)
}
